package voicecatalog

func companyVoices() []CompanyVoice {
	return []CompanyVoice{
		// Banking & Finance
		{
			ID:          "natwest",
			Name:        "NatWest Bank",
			Description: "Professional, trustworthy banking voice",
			Tone:        "professional",
			Style:       "formal",
			Phrases: []string{
				"Thank you for calling NatWest",
				"I'm calling from NatWest regarding your account",
				"For security purposes, I need to verify some details",
				"Is this a convenient time to speak?",
				"I understand your concern, let me help you with that",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. Our services provide excellent value and security for your money.",
				"time":       "I appreciate you're busy. This will only take a few minutes and could save you money.",
				"skepticism": "I completely understand your caution. NatWest has been serving customers for over 300 years.",
			},
		},
		{
			ID:          "hsbc",
			Name:        "HSBC Bank",
			Description: "International banking expertise with local knowledge",
			Tone:        "professional",
			Style:       "international",
			Phrases: []string{
				"Welcome to HSBC, the world's local bank",
				"I'm calling from HSBC regarding your account",
				"We're here to support your financial goals",
				"How may I help you with your banking needs?",
				"Your financial wellbeing is our priority",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand your concerns about cost. HSBC offers competitive rates and flexible solutions.",
				"time":       "I know your time is valuable. This call could help you optimize your financial situation.",
				"skepticism": "I understand your hesitation. HSBC has been trusted globally for over 150 years.",
			},
		},
		{
			ID:          "barclays",
			Name:        "Barclays Bank",
			Description: "Innovative banking solutions with personal touch",
			Tone:        "professional",
			Style:       "innovative",
			Phrases: []string{
				"Hello, this is Barclays calling",
				"I'm calling from Barclays about your account",
				"We have some exciting opportunities for you",
				"Let me explain how this can benefit you",
				"Your success is our success",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost matters. Barclays offers competitive rates with added value services.",
				"time":       "I respect your time. This opportunity could significantly improve your financial position.",
				"skepticism": "I appreciate your caution. Barclays has been innovating in banking for over 300 years.",
			},
		},
		{
			ID:          "lloyds",
			Name:        "Lloyds Bank",
			Description: "Traditional banking with modern solutions",
			Tone:        "professional",
			Style:       "traditional",
			Phrases: []string{
				"Good day, this is Lloyds Bank calling",
				"I'm calling from Lloyds regarding your account",
				"We have some important information to share",
				"This could help you save money",
				"We're here to support you",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand your concern about cost. Lloyds offers competitive rates and excellent service.",
				"time":       "I know you're busy. This could save you time and money in the long run.",
				"skepticism": "I understand your hesitation. Lloyds has been helping customers for over 250 years.",
			},
		},
		{
			ID:          "santander",
			Name:        "Santander Bank",
			Description: "Customer-focused banking with Spanish heritage",
			Tone:        "professional",
			Style:       "customer_focused",
			Phrases: []string{
				"Hello, this is Santander calling",
				"I'm calling from Santander about your account",
				"We have some great news for you",
				"This could benefit you significantly",
				"We're committed to your financial success",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. Santander offers competitive rates with excellent service.",
				"time":       "I appreciate your time. This opportunity could improve your financial situation.",
				"skepticism": "I understand your caution. Santander has been serving customers for over 160 years.",
			},
		},
		// E-commerce & Retail
		{
			ID:          "amazon",
			Name:        "Amazon",
			Description: "Customer-obsessed e-commerce giant",
			Tone:        "friendly",
			Style:       "customer_obsessed",
			Phrases: []string{
				"Hello, this is Amazon calling",
				"I'm calling from Amazon about your order",
				"We want to make sure you're completely satisfied",
				"How can we make this right for you?",
				"Your satisfaction is our priority",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand price matters. Amazon offers competitive prices and excellent value.",
				"time":       "I know your time is valuable. This will help you get the best deal.",
				"skepticism": "I understand your concern. Amazon is committed to customer satisfaction.",
			},
		},
		// Major US Banks
		{
			ID:          "jpmorgan",
			Name:        "JPMorgan Chase",
			Description: "Leading US investment and commercial bank",
			Tone:        "professional",
			Style:       "prestigious",
			Phrases: []string{
				"Good day, this is JPMorgan Chase calling",
				"I'm calling from JPMorgan regarding your account",
				"We have some important financial opportunities for you",
				"This could significantly benefit your portfolio",
				"We're committed to your financial success",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. JPMorgan offers competitive rates with exceptional service.",
				"time":       "I respect your time. This opportunity could enhance your financial position.",
				"skepticism": "I appreciate your caution. JPMorgan has been a trusted financial partner for over 200 years.",
			},
		},
		{
			ID:          "bank_of_america",
			Name:        "Bank of America",
			Description: "Major US retail and commercial bank",
			Tone:        "professional",
			Style:       "accessible",
			Phrases: []string{
				"Hello, this is Bank of America calling",
				"I'm calling from Bank of America about your account",
				"We have some great financial solutions for you",
				"This could help you achieve your financial goals",
				"We're here to support your financial journey",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost matters. Bank of America offers competitive rates and valuable benefits.",
				"time":       "I know your time is valuable. This could save you money and time.",
				"skepticism": "I understand your hesitation. Bank of America has been serving customers for over 90 years.",
			},
		},
		{
			ID:          "wells_fargo",
			Name:        "Wells Fargo",
			Description: "Major US diversified financial services",
			Tone:        "professional",
			Style:       "community_focused",
			Phrases: []string{
				"Good day, this is Wells Fargo calling",
				"I'm calling from Wells Fargo regarding your account",
				"We have some important information to share",
				"This could help you manage your finances better",
				"We're here to help you succeed",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. Wells Fargo offers competitive rates and comprehensive services.",
				"time":       "I appreciate your time. This could improve your financial situation.",
				"skepticism": "I understand your caution. Wells Fargo has been helping customers for over 170 years.",
			},
		},
		// Australian Banks
		{
			ID:          "commonwealth_bank",
			Name:        "Commonwealth Bank of Australia",
			Description: "Australia's largest bank",
			Tone:        "professional",
			Style:       "australian",
			Phrases: []string{
				"G'day, this is Commonwealth Bank calling",
				"I'm calling from CommBank about your account",
				"We've got some great opportunities for you",
				"This could really help you out",
				"We're here to support you, mate",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. CommBank offers competitive rates and excellent value.",
				"time":       "I know you're flat out. This could save you time and money.",
				"skepticism": "I understand your hesitation. CommBank has been helping Aussies for over 100 years.",
			},
		},
		{
			ID:          "anz",
			Name:        "ANZ Bank",
			Description: "Major Australian and New Zealand bank",
			Tone:        "professional",
			Style:       "international",
			Phrases: []string{
				"Hello, this is ANZ calling",
				"I'm calling from ANZ regarding your account",
				"We have some important updates for you",
				"This could benefit your financial situation",
				"We're committed to your success",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost matters. ANZ offers competitive rates with great service.",
				"time":       "I know your time is valuable. This could help you financially.",
				"skepticism": "I understand your caution. ANZ has been trusted for over 180 years.",
			},
		},
		// German Banks
		{
			ID:          "deutsche_bank",
			Name:        "Deutsche Bank",
			Description: "Major German investment bank",
			Tone:        "professional",
			Style:       "european",
			Phrases: []string{
				"Guten Tag, this is Deutsche Bank calling",
				"I'm calling from Deutsche Bank regarding your account",
				"We have some important financial information",
				"This could significantly benefit you",
				"We're here to support your financial goals",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. Deutsche Bank offers competitive rates with European expertise.",
				"time":       "I respect your time. This opportunity could enhance your financial position.",
				"skepticism": "I appreciate your caution. Deutsche Bank has been a trusted financial partner for over 150 years.",
			},
		},
		// Major Tech Companies
		{
			ID:          "google",
			Name:        "Google",
			Description: "Global technology leader",
			Tone:        "innovative",
			Style:       "tech_forward",
			Phrases: []string{
				"Hello, this is Google calling",
				"I'm calling from Google about your account",
				"We have some exciting updates for you",
				"This could help you grow your business",
				"We're here to help you succeed online",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost matters. Google offers excellent value and measurable results.",
				"time":       "I know your time is valuable. This could save you time and increase efficiency.",
				"skepticism": "I understand your hesitation. Google is trusted by millions of businesses worldwide.",
			},
		},
		{
			ID:          "microsoft",
			Name:        "Microsoft",
			Description: "Global technology and cloud services",
			Tone:        "professional",
			Style:       "enterprise",
			Phrases: []string{
				"Hello, this is Microsoft calling",
				"I'm calling from Microsoft about your account",
				"We have some important updates for you",
				"This could help you work more efficiently",
				"We're here to empower your productivity",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. Microsoft offers competitive pricing with excellent ROI.",
				"time":       "I respect your time. This could significantly improve your workflow.",
				"skepticism": "I appreciate your caution. Microsoft has been empowering businesses for over 40 years.",
			},
		},
		{
			ID:          "apple",
			Name:        "Apple",
			Description: "Premium technology and services",
			Tone:        "premium",
			Style:       "sophisticated",
			Phrases: []string{
				"Hello, this is Apple calling",
				"I'm calling from Apple about your account",
				"We have some exciting news for you",
				"This could enhance your Apple experience",
				"We're here to help you get the most from your devices",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost matters. Apple offers premium quality and exceptional value.",
				"time":       "I know your time is valuable. This could save you time and improve your experience.",
				"skepticism": "I understand your hesitation. Apple is committed to delivering the best user experience.",
			},
		},
		{
			ID:          "asos",
			Name:        "ASOS",
			Description: "Fashion-forward online retailer",
			Tone:        "trendy",
			Style:       "fashion_forward",
			Phrases: []string{
				"Hey, this is ASOS calling",
				"I'm calling from ASOS about your order",
				"We have some amazing fashion updates for you",
				"This could help you stay on trend",
				"We're here to help you look amazing",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand style matters. ASOS offers great fashion at amazing prices.",
				"time":       "I know you're busy. This will help you stay stylish effortlessly.",
				"skepticism": "I understand your hesitation. ASOS is trusted by millions of fashion lovers.",
			},
		},
		{
			ID:          "use_prompt",
			Name:        "Use Prompt",
			Description: "Extract company name and details from your prompt",
			Tone:        "custom",
			Style:       "extracted",
			Phrases: []string{
				"Hello, this is an important call",
				"I'm calling regarding your account",
				"This is about your service",
				"We need to discuss something important",
				"Thank you for your time",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. Let me explain the value.",
				"time":       "I appreciate you're busy. This will only take a few minutes.",
				"skepticism": "I understand your concerns. Let me address them.",
			},
		},
	}
}
