package voicecatalog

func scriptModes() []ScriptMode {
	return []ScriptMode{
		// Financial Services
		{
			ID:   "banking",
			Name: "Banking & Finance",
			Tone: "professional, trustworthy, authoritative",
			Phrases: []string{
				"This is regarding your account",
				"For security purposes",
				"We need to verify your identity",
				"This is a secure call",
				"Your account information",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"Oh, okay. What do you need from me?",
					"Sure, I can help with that.",
					"Yes, I'm interested in protecting my account.",
					"What information do you need?",
					"That sounds important, go ahead.",
				},
				"suspicious": {
					"I'm not sure about this. How do I know you're really from the bank?",
					"This sounds like a scam. I'm going to hang up.",
					"I don't give out personal information over the phone.",
					"I need to verify who you are first.",
					"I'm going to call the bank directly to check this.",
				},
				"busy": {
					"I'm really busy right now. Can you call back later?",
					"I don't have time for this right now.",
					"I'm in the middle of something important.",
					"Can we do this another time?",
					"I'm not available right now.",
				},
				"confused": {
					"I don't understand what you're asking for.",
					"Can you explain this more clearly?",
					"What exactly do you need from me?",
					"I'm not sure what this is about.",
					"Can you slow down and explain again?",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I completely understand your concern about security. This is exactly why we're calling - to protect your account.",
				"busy":           "I know your time is valuable, which is why this call will only take 2 minutes to secure your account.",
				"not_interested": "I understand, but this is about protecting your money and personal information.",
			},
			ComplianceNotes: "Must comply with banking regulations, verify identity, maintain security protocols",
		},
		{
			ID:   "payment",
			Name: "Payment Processing",
			Tone: "urgent, professional, solution-focused",
			Phrases: []string{
				"Payment issue detected",
				"Immediate action required",
				"Your payment method",
				"Transaction processing",
				"Account verification needed",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"Oh no! What's wrong with my payment?",
					"I need to fix this right away. What do I do?",
					"Yes, please help me resolve this.",
					"What information do you need from me?",
					"This is urgent, let's get this sorted.",
				},
				"suspicious": {
					"I don't believe this. How do I know you're legitimate?",
					"This sounds like a scam. I'm not giving you any information.",
					"I need to verify this with my bank first.",
					"I'm going to hang up and call my bank directly.",
					"I don't trust this call at all.",
				},
				"busy": {
					"I'm really busy. Can this wait?",
					"I don't have time for this right now.",
					"Can you call back later?",
					"I'm in a meeting, this will have to wait.",
					"I'm not available right now.",
				},
				"confused": {
					"I don't understand what the problem is.",
					"Can you explain what's wrong with my payment?",
					"What exactly needs to be fixed?",
					"I'm not sure what you're asking for.",
					"Can you be more specific about the issue?",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is exactly why we need to verify your payment information immediately.",
				"busy":           "This is urgent - your payment is at risk. It will only take 1 minute to resolve.",
				"not_interested": "This isn't optional - your payment method needs immediate attention.",
			},
			ComplianceNotes: "Must verify payment details, maintain PCI compliance, secure transaction processing",
		},
		{
			ID:   "insurance",
			Name: "Insurance Services",
			Tone: "caring, professional, reassuring",
			Phrases: []string{
				"Your policy coverage",
				"Claims processing",
				"Premium payment",
				"Policy renewal",
				"Coverage verification",
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about protecting your coverage and ensuring you're properly insured.",
				"busy":           "I know you're busy, but this affects your coverage. It's important we get this sorted quickly.",
				"not_interested": "This is about your protection and coverage. We need to ensure you're properly insured.",
			},
			ComplianceNotes: "Must verify policy details, maintain insurance regulations, ensure proper coverage",
		},
		{
			ID:   "debt_collection",
			Name: "Debt Collection",
			Tone: "firm but respectful, professional, persistent",
			Phrases: []string{
				"This is an automated call from",
				"We are calling regarding your unpaid/unsettled balance/fine with us of",
				"Press 1 now to pay now",
				"Press 2 for call back at a later time",
				"Press 3 to hang up",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"I want to pay this now",
					"Yes, I'll make a payment",
					"I can pay today",
					"Let me pay this off",
					"I'll take care of this right away",
				},
				"suspicious": {
					"I don't believe this is legitimate",
					"I need to verify this debt first",
					"I'm going to call the company directly",
					"This sounds like a scam",
					"I don't recognize this debt",
				},
				"busy": {
					"I'm busy right now, call back later",
					"I can't deal with this now",
					"I'm at work, call me back",
					"I don't have time for this",
					"Can you call back tomorrow?",
				},
				"confused": {
					"I don't understand what this is about",
					"Can you explain this debt to me?",
					"I don't remember this charge",
					"What is this for exactly?",
					"I need more information about this",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about resolving your account and finding a solution.",
				"busy":           "I know you're busy, but this affects your credit. Let's resolve this quickly.",
				"not_interested": "This isn't optional - we need to resolve your outstanding balance.",
			},
			ComplianceNotes: "Must follow FDCPA regulations, maintain professional conduct, offer payment options",
		},
		// Technology
		{
			ID:   "tech_support",
			Name: "Tech Support",
			Tone: "helpful, patient, technical",
			Phrases: []string{
				"Technical issue detected",
				"System maintenance",
				"Account security",
				"Software update",
				"Troubleshooting required",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"Yes, I've been having problems with my computer.",
					"I need help with this technical issue.",
					"What do you need me to do?",
					"I'm ready to follow your instructions.",
					"Let's get this fixed right away.",
				},
				"suspicious": {
					"I don't trust remote access calls. How do I know you're legitimate?",
					"This sounds like a scam. I'm not giving you access to my computer.",
					"I need to verify who you are first.",
					"I'm going to call the company directly to check this.",
					"I don't believe this is a real tech support call.",
				},
				"busy": {
					"I'm really busy right now. Can you call back later?",
					"I don't have time for this technical stuff right now.",
					"I'm in the middle of something important.",
					"Can we schedule this for another time?",
					"I'm not available right now.",
				},
				"confused": {
					"I don't understand what the technical problem is.",
					"Can you explain this in simpler terms?",
					"What exactly is wrong with my computer?",
					"I'm not very technical, can you help me understand?",
					"Can you walk me through this step by step?",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about fixing your technical issue and securing your account.",
				"busy":           "I know you're busy, but this technical issue needs immediate attention to prevent further problems.",
				"not_interested": "This technical issue will only get worse if we don't fix it now.",
			},
			ComplianceNotes: "Must verify user identity, maintain system security, provide technical assistance",
		},
		{
			ID:   "software_sales",
			Name: "Software Sales",
			Tone: "enthusiastic, professional, solution-focused",
			Phrases: []string{
				"Software solution",
				"Productivity improvement",
				"Cost savings",
				"Efficiency boost",
				"Business growth",
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about improving your business with proven software solutions.",
				"busy":           "I know you're busy, which is exactly why this software will save you time and money.",
				"not_interested": "This software could revolutionize your business operations and increase your profits.",
			},
			ComplianceNotes: "Must provide accurate product information, maintain sales ethics, offer legitimate solutions",
		},
		// Sales & Marketing
		{
			ID:   "lead_generation",
			Name: "Lead Generation",
			Tone: "professional, curious, engaging",
			Phrases: []string{
				"Business opportunity",
				"Market research",
				"Industry insights",
				"Growth potential",
				"Competitive advantage",
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about legitimate business opportunities and market research.",
				"busy":           "I know you're busy, which is why I'll be brief. This could significantly impact your business.",
				"not_interested": "This opportunity could transform your business. Let me explain how.",
			},
			ComplianceNotes: "Must provide accurate information, respect privacy, maintain professional standards",
		},
		{
			ID:   "cold_calling",
			Name: "Cold Calling",
			Tone: "confident, persistent, professional",
			Phrases: []string{
				"Business opportunity",
				"Quick question",
				"Value proposition",
				"Time-sensitive offer",
				"Exclusive opportunity",
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about legitimate business opportunities and value.",
				"busy":           "I know you're busy, which is why I'll be brief. This could significantly impact your business.",
				"not_interested": "This opportunity could transform your business. Let me explain how.",
			},
			ComplianceNotes: "Must respect do-not-call lists, maintain professional conduct, provide accurate information",
		},
		// Customer Service
		{
			ID:   "customer_support",
			Name: "Customer Support",
			Tone: "helpful, patient, solution-focused",
			Phrases: []string{
				"How can I help you",
				"Account assistance",
				"Issue resolution",
				"Customer satisfaction",
				"Service improvement",
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about helping you with your account and resolving any issues.",
				"busy":           "I know you're busy, which is why I'll help you quickly resolve this issue.",
				"not_interested": "This is about improving your experience and resolving any problems you may have.",
			},
			ComplianceNotes: "Must verify customer identity, maintain service standards, resolve issues effectively",
		},
		{
			ID:   "complaint_handling",
			Name: "Complaint Handling",
			Tone: "apologetic, empathetic, solution-focused",
			Phrases: []string{
				"I sincerely apologize",
				"We value your feedback",
				"Let me resolve this",
				"Customer satisfaction is our priority",
				"We'll make this right",
			},
			ObjectionHandling: map[string]string{
				"suspicious":     "I understand your concern. This is about making things right and ensuring your satisfaction.",
				"busy":           "I know you're busy, which is why I'll resolve this quickly and efficiently.",
				"not_interested": "This is about fixing the problem and ensuring you're completely satisfied.",
			},
			ComplianceNotes: "Must address complaints professionally, maintain customer satisfaction, resolve issues effectively",
		},
		{
			ID:   "fraud",
			Name: "Fraud Prevention",
			Tone: "urgent_but_calm, professional",
			Phrases: []string{
				"This is an urgent security call from [Company]",
				"We've detected suspicious activity on your account",
				"We need to verify this transaction immediately",
				"This is to protect your account from fraud",
				"Please confirm this activity is authorized by you",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"Yes, that's me",
					"I authorized that transaction",
					"Thank you for calling about this",
					"I'm glad you caught this",
					"What do I need to do?",
				},
				"suspicious": {
					"I don't trust this call",
					"This seems like a scam",
					"I need to call the bank directly",
					"I'm not giving you any information",
					"I'm hanging up now",
				},
				"busy": {
					"I'm busy right now",
					"Can this wait?",
					"I don't have time for this",
					"Call me back later",
					"I'm in a meeting",
				},
				"confused": {
					"I don't understand what happened",
					"What activity are you talking about?",
					"Can you explain what you detected?",
					"I don't remember doing that",
					"What account is this about?",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious": "I understand your concern about security. This is exactly why we're calling - to protect your account from fraud.",
				"busy":       "This is urgent and time-sensitive. We need to act quickly to protect your account.",
				"confused":   "Don't worry, we're here to help. This is just a verification call to ensure your account is secure.",
			},
			ComplianceNotes: "Must follow strict fraud prevention protocols and never ask for full account details.",
		},
		{
			ID:   "shopping",
			Name: "Shopping/E-commerce",
			Tone: "friendly, helpful, enthusiastic",
			Phrases: []string{
				"Thank you for your recent order with [Store]",
				"I'm calling about your recent purchase",
				"We have an update on your order",
				"Your order is ready for delivery",
				"We need to confirm some details for your order",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"That's great news!",
					"I'm excited to receive it",
					"When will it arrive?",
					"Perfect, thank you for the update",
					"I can't wait to get it",
				},
				"suspicious": {
					"I didn't order anything",
					"This seems suspicious",
					"I need to check my account",
					"I don't remember placing an order",
					"This might be a scam",
				},
				"busy": {
					"I'm busy right now",
					"Can you call back later?",
					"I don't have time for this",
					"I'm in the middle of something",
					"Not right now, sorry",
				},
				"confused": {
					"I don't remember ordering anything",
					"What order are you talking about?",
					"Can you explain what I ordered?",
					"I'm not sure about this",
					"What's this about?",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious": "I understand your concern. This is a legitimate call from [Store] about your recent order.",
				"busy":       "I know you're busy. This will only take a moment to confirm your order details.",
				"confused":   "Let me help clarify what this is about. You recently placed an order with us.",
			},
			ComplianceNotes: "Must comply with consumer protection laws and data privacy regulations.",
		},
		{
			ID:   "utilities",
			Name: "Utilities",
			Tone: "helpful, professional, informative",
			Phrases: []string{
				"This is regarding your utility account",
				"We need to discuss your service",
				"This is about your bill",
				"We're here to help with your account",
				"This is an important update about your service",
			},
			CustomerResponses: map[string][]string{
				"positive": {
					"That's helpful, thank you",
					"I appreciate the information",
					"What do I need to do?",
					"This is good to know",
					"Thank you for calling",
				},
				"suspicious": {
					"I'm not sure about this",
					"This seems suspicious",
					"I need to verify this",
					"I don't trust this call",
					"I'm going to call the company directly",
				},
				"busy": {
					"I'm busy right now",
					"Can you call back later?",
					"I don't have time for this",
					"I'm in a meeting",
					"Not right now",
				},
				"confused": {
					"I don't understand what this is about",
					"What account are you talking about?",
					"Can you explain this more clearly?",
					"I'm not sure what you mean",
					"What's this regarding?",
				},
			},
			ObjectionHandling: map[string]string{
				"suspicious": "I understand your concern. This is a legitimate call from [Utility Company] about your account.",
				"busy":       "I know your time is valuable. This is regarding an important matter with your utility service.",
				"confused":   "Let me explain this clearly. This is about your utility account with us.",
			},
			ComplianceNotes: "Must comply with utility regulations and consumer protection laws.",
		},
	}
}
