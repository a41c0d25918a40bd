package voicecatalog

func humanizedVoices() []HumanizedVoice {
	commonObjections := map[string]string{
		"price":      "I understand cost is important. This will actually save you money in the long run.",
		"time":       "I know you're probably busy, but this will only take a few minutes.",
		"skepticism": "I completely understand your hesitation. Let me explain why this is different.",
	}

	matureObjections := map[string]string{
		"price":      "I understand your concerns about cost. This investment will pay for itself quickly.",
		"time":       "I appreciate your time. This consultation could save you significant money.",
		"skepticism": "I understand your caution. I've been in this business for years and this is legitimate.",
	}

	youngWomanObjections := map[string]string{
		"price":      "I know money is tight for everyone right now. This actually helps you save money.",
		"time":       "I know you're probably really busy, but this could change your situation.",
		"skepticism": "I totally get why you'd be skeptical. Let me explain why this is different.",
	}

	caringWomanObjections := map[string]string{
		"price":      "I understand your budget concerns. This is designed to help people save money.",
		"time":       "I know your time is precious. This could make a real difference to your situation.",
		"skepticism": "I understand your hesitation. I've helped many people in similar situations.",
	}

	warmWomanObjections := map[string]string{
		"price":      "I know money's tight for everyone. This is designed to help you save.",
		"time":       "I understand you're busy, but this could really help your situation.",
		"skepticism": "I can see why you'd be cautious. Let me explain why this is legitimate.",
	}

	matureManObjections := map[string]string{
		"price":      "I understand money's tight for everyone. This actually helps you save money.",
		"time":       "I know you're probably busy, but this will only take a few minutes.",
		"skepticism": "I can see why you'd be skeptical. Let me explain why this is different.",
	}

	return []HumanizedVoice{
		{
			ID: "british_man_young", Name: "Young British Man",
			Description: "Friendly, energetic British male voice (20-30)",
			Accent:      "British", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "energetic",
			Phrases: []string{
				"Hi there, how are you doing today?",
				"I hope I'm not catching you at a bad time",
				"I just wanted to have a quick chat with you",
				"That sounds brilliant, let me tell you more",
				"Thanks so much for your time today",
			},
			ObjectionHandling: map[string]string{
				"price":      "I totally get that cost is important. Let me show you how this actually saves you money.",
				"time":       "I know you're probably busy, but this will only take a couple of minutes.",
				"skepticism": "I completely understand your hesitation. Let me explain why this is different.",
			},
		},
		{
			ID: "scottish_man_young", Name: "Young Scottish Man",
			Description: "Friendly Scottish male voice with local expressions (20-30)",
			Accent:      "Scottish", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "local",
			Phrases: []string{
				"Hiya, how are you getting on?",
				"I hope I'm no bothering you",
				"I just wanted to have a wee chat",
				"That sounds brilliant, let me tell you more",
				"Thanks very much for your time",
			},
			ObjectionHandling: commonObjections,
		},
		{
			ID: "irish_man_young", Name: "Young Irish Man",
			Description: "Friendly Irish male voice with local expressions (20-30)",
			Accent:      "Irish", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "warm",
			Phrases: []string{
				"Hello there, how are you keeping?",
				"I hope I'm not disturbing you",
				"I just wanted to have a quick word",
				"That sounds grand, let me tell you more",
				"Thanks a million for your time",
			},
			ObjectionHandling: commonObjections,
		},
		{
			ID: "australian_man_young", Name: "Young Australian Man",
			Description: "Friendly Australian male voice with local expressions (20-30)",
			Accent:      "Australian", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "casual",
			Phrases: []string{
				"G'day, how are you going?",
				"I hope I'm not catching you at a bad time",
				"I just wanted to have a quick chat",
				"That sounds great, let me tell you more",
				"Thanks heaps for your time",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand cost is important. This will actually save you money in the long run.",
				"time":       "I know you're probably flat out, but this will only take a few minutes.",
				"skepticism": "I completely understand your hesitation. Let me explain why this is different.",
			},
		},
		{
			ID: "french_man_young", Name: "Young French Man",
			Description: "Professional French male voice with French expressions (20-30)",
			Accent:      "French", Gender: "Male", AgeRange: "20-30",
			Tone: "professional", Style: "sophisticated",
			Phrases: []string{
				"Bonjour, comment allez-vous?",
				"J'espère que je ne vous dérange pas",
				"Je voulais juste avoir une petite conversation",
				"Cela semble excellent, laissez-moi vous en dire plus",
				"Merci beaucoup pour votre temps",
			},
			ObjectionHandling: map[string]string{
				"price":      "Je comprends que le coût est important. Cela vous fera économiser de l'argent à long terme.",
				"time":       "Je sais que vous êtes probablement occupé, mais cela ne prendra que quelques minutes.",
				"skepticism": "Je comprends parfaitement votre hésitation. Laissez-moi vous expliquer pourquoi c'est différent.",
			},
		},
		{
			ID: "german_man_young", Name: "Young German Man",
			Description: "Professional German male voice with German expressions (20-30)",
			Accent:      "German", Gender: "Male", AgeRange: "20-30",
			Tone: "professional", Style: "efficient",
			Phrases: []string{
				"Guten Tag, wie geht es Ihnen?",
				"Ich hoffe, ich störe Sie nicht",
				"Ich wollte nur kurz mit Ihnen sprechen",
				"Das klingt ausgezeichnet, lassen Sie mich mehr erzählen",
				"Vielen Dank für Ihre Zeit",
			},
			ObjectionHandling: map[string]string{
				"price":      "Ich verstehe, dass Kosten wichtig sind. Das wird Ihnen langfristig Geld sparen.",
				"time":       "Ich weiß, dass Sie wahrscheinlich beschäftigt sind, aber das dauert nur wenige Minuten.",
				"skepticism": "Ich verstehe Ihre Bedenken vollkommen. Lassen Sie mich erklären, warum das anders ist.",
			},
		},
		{
			ID: "spanish_man_young", Name: "Young Spanish Man",
			Description: "Friendly Spanish male voice with Spanish expressions (20-30)",
			Accent:      "Spanish", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "warm",
			Phrases: []string{
				"Hola, ¿cómo está usted?",
				"Espero no molestarle",
				"Solo quería tener una pequeña conversación",
				"Eso suena excelente, déjeme contarle más",
				"Muchas gracias por su tiempo",
			},
			ObjectionHandling: map[string]string{
				"price":      "Entiendo que el costo es importante. Esto le ahorrará dinero a largo plazo.",
				"time":       "Sé que probablemente está ocupado, pero esto solo tomará unos minutos.",
				"skepticism": "Entiendo completamente su hesitación. Déjeme explicarle por qué esto es diferente.",
			},
		},
		{
			ID: "italian_man_young", Name: "Young Italian Man",
			Description: "Friendly Italian male voice with Italian expressions (20-30)",
			Accent:      "Italian", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "passionate",
			Phrases: []string{
				"Ciao, come sta?",
				"Spero di non disturbarla",
				"Volevo solo fare una piccola chiacchierata",
				"Sembra fantastico, lasciami raccontare di più",
				"Grazie mille per il suo tempo",
			},
			ObjectionHandling: map[string]string{
				"price":      "Capisco che il costo è importante. Questo vi farà risparmiare denaro a lungo termine.",
				"time":       "So che probabilmente è occupato, ma questo richiederà solo pochi minuti.",
				"skepticism": "Capisco completamente la sua esitazione. Lasciami spiegare perché questo è diverso.",
			},
		},
		{
			ID: "canadian_man_young", Name: "Young Canadian Man",
			Description: "Friendly Canadian male voice with local expressions (20-30)",
			Accent:      "Canadian", Gender: "Male", AgeRange: "20-30",
			Tone: "friendly", Style: "polite",
			Phrases: []string{
				"Hello there, how are you doing?",
				"I hope I'm not bothering you",
				"I just wanted to have a quick chat",
				"That sounds great, let me tell you more",
				"Thanks so much for your time",
			},
			ObjectionHandling: commonObjections,
		},
		{
			ID: "british_man_middle", Name: "Middle-aged British Man",
			Description: "Professional, trustworthy British male voice (35-50)",
			Accent:      "British", Gender: "Male", AgeRange: "35-50",
			Tone: "professional", Style: "trustworthy",
			Phrases: []string{
				"Good day, I hope you're well",
				"I'm calling to discuss something that might interest you",
				"I understand your concerns, let me address them",
				"This could really benefit you and your family",
				"I appreciate you taking the time to listen",
			},
			ObjectionHandling: matureObjections,
		},
		{
			ID: "british_woman_young", Name: "Young British Woman",
			Description: "Warm, approachable British female voice (20-30)",
			Accent:      "British", Gender: "Female", AgeRange: "20-30",
			Tone: "warm", Style: "approachable",
			Phrases: []string{
				"Hello, I hope you're having a lovely day",
				"I'm calling to share something exciting with you",
				"I completely understand where you're coming from",
				"This could really make a difference for you",
				"Thank you so much for listening to me",
			},
			ObjectionHandling: youngWomanObjections,
		},
		{
			ID: "british_woman_middle", Name: "Middle-aged British Woman",
			Description: "Caring, experienced British female voice (35-50)",
			Accent:      "British", Gender: "Female", AgeRange: "35-50",
			Tone: "caring", Style: "experienced",
			Phrases: []string{
				"Good morning, I hope you're keeping well",
				"I'm calling because I think this could help you",
				"I understand your situation completely",
				"This has helped many people in your position",
				"I really appreciate you giving me your time",
			},
			ObjectionHandling: caringWomanObjections,
		},
		{
			ID: "scottish_man", Name: "Scottish Man",
			Description: "Friendly, authentic Scottish male voice",
			Accent:      "Scottish", Gender: "Male", AgeRange: "30-50",
			Tone: "friendly", Style: "authentic",
			Phrases: []string{
				"Hello there, how are you doing?",
				"I'm calling to tell you about something that might interest you",
				"I can see why you'd be concerned about that",
				"This could really help you out, you know",
				"Thanks for taking the time to speak with me",
			},
			ObjectionHandling: map[string]string{
				"price":      "Aye, I understand money's tight. This actually helps you save in the long run.",
				"time":       "I know you're busy, but this will only take a wee minute.",
				"skepticism": "I can see why you'd be wary. Let me explain why this is genuine.",
			},
		},
		{
			ID: "scottish_woman", Name: "Scottish Woman",
			Description: "Warm, genuine Scottish female voice",
			Accent:      "Scottish", Gender: "Female", AgeRange: "30-50",
			Tone: "warm", Style: "genuine",
			Phrases: []string{
				"Hello, I hope you're keeping well",
				"I'm calling to share something that might help you",
				"I completely understand your concerns",
				"This has helped many people like yourself",
				"Thank you so much for your time today",
			},
			ObjectionHandling: warmWomanObjections,
		},
		{
			ID: "irish_man", Name: "Irish Man",
			Description: "Charming, conversational Irish male voice",
			Accent:      "Irish", Gender: "Male", AgeRange: "30-50",
			Tone: "charming", Style: "conversational",
			Phrases: []string{
				"Hello there, how are you getting on?",
				"I'm calling to tell you about something that might interest you",
				"I can see why you'd have concerns about that",
				"This could really make a difference for you",
				"Thanks for taking the time to chat with me",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand money's tight for everyone. This actually helps you save money.",
				"time":       "I know you're probably busy, but this will only take a few minutes.",
				"skepticism": "I can see why you'd be skeptical. Let me explain why this is different.",
			},
		},
		{
			ID: "irish_woman", Name: "Irish Woman",
			Description: "Kind, empathetic Irish female voice",
			Accent:      "Irish", Gender: "Female", AgeRange: "30-50",
			Tone: "kind", Style: "empathetic",
			Phrases: []string{
				"Hello, I hope you're keeping well",
				"I'm calling because I think this could help you",
				"I completely understand your situation",
				"This has helped many people in your position",
				"I really appreciate you giving me your time",
			},
			ObjectionHandling: warmWomanObjections,
		},
		{
			ID: "american_man_young", Name: "Young American Man",
			Description: "Energetic, confident American male voice (20-30)",
			Accent:      "American", Gender: "Male", AgeRange: "20-30",
			Tone: "energetic", Style: "confident",
			Phrases: []string{
				"Hey there, how's it going?",
				"I'm calling to tell you about something awesome",
				"I totally get where you're coming from",
				"This could really change things for you",
				"Thanks for taking the time to talk with me",
			},
			ObjectionHandling: map[string]string{
				"price":      "I totally understand cost is a concern. This actually saves you money in the long run.",
				"time":       "I know you're probably busy, but this will only take a couple of minutes.",
				"skepticism": "I completely get why you'd be skeptical. Let me explain why this is different.",
			},
		},
		{
			ID: "american_man_middle", Name: "Middle-aged American Man",
			Description: "Professional, experienced American male voice (35-50)",
			Accent:      "American", Gender: "Male", AgeRange: "35-50",
			Tone: "professional", Style: "experienced",
			Phrases: []string{
				"Good day, I hope you're doing well",
				"I'm calling to discuss something that might benefit you",
				"I understand your concerns, let me address them",
				"This could really help you and your family",
				"I appreciate you taking the time to listen",
			},
			ObjectionHandling: matureObjections,
		},
		{
			ID: "american_woman_young", Name: "Young American Woman",
			Description: "Friendly, enthusiastic American female voice (20-30)",
			Accent:      "American", Gender: "Female", AgeRange: "20-30",
			Tone: "friendly", Style: "enthusiastic",
			Phrases: []string{
				"Hi there, I hope you're having a great day",
				"I'm calling to share something exciting with you",
				"I completely understand where you're coming from",
				"This could really make a difference for you",
				"Thank you so much for listening to me",
			},
			ObjectionHandling: youngWomanObjections,
		},
		{
			ID: "american_woman_middle", Name: "Middle-aged American Woman",
			Description: "Caring, professional American female voice (35-50)",
			Accent:      "American", Gender: "Female", AgeRange: "35-50",
			Tone: "caring", Style: "professional",
			Phrases: []string{
				"Good morning, I hope you're keeping well",
				"I'm calling because I think this could help you",
				"I understand your situation completely",
				"This has helped many people in your position",
				"I really appreciate you giving me your time",
			},
			ObjectionHandling: caringWomanObjections,
		},
		{
			ID: "australian_man", Name: "Australian Man",
			Description: "Relaxed, friendly Australian male voice",
			Accent:      "Australian", Gender: "Male", AgeRange: "30-50",
			Tone: "relaxed", Style: "friendly",
			Phrases: []string{
				"G'day, how are you going?",
				"I'm calling to tell you about something that might interest you",
				"I can see why you'd be concerned about that",
				"This could really help you out, mate",
				"Thanks for taking the time to have a chat",
			},
			ObjectionHandling: map[string]string{
				"price":      "I understand money's tight for everyone. This actually helps you save in the long run.",
				"time":       "I know you're probably busy, but this will only take a few minutes.",
				"skepticism": "I can see why you'd be skeptical. Let me explain why this is different.",
			},
		},
		{
			ID: "australian_woman", Name: "Australian Woman",
			Description: "Warm, genuine Australian female voice",
			Accent:      "Australian", Gender: "Female", AgeRange: "30-50",
			Tone: "warm", Style: "genuine",
			Phrases: []string{
				"Hello, I hope you're keeping well",
				"I'm calling to share something that might help you",
				"I completely understand your concerns",
				"This has helped many people like yourself",
				"Thank you so much for your time today",
			},
			ObjectionHandling: warmWomanObjections,
		},
		{
			ID: "canadian_man", Name: "Canadian Man",
			Description: "Polite, professional Canadian male voice",
			Accent:      "Canadian", Gender: "Male", AgeRange: "30-50",
			Tone: "polite", Style: "professional",
			Phrases: []string{
				"Hello there, how are you doing today?",
				"I'm calling to tell you about something that might interest you",
				"I can see why you'd have concerns about that",
				"This could really make a difference for you",
				"Thanks for taking the time to speak with me",
			},
			ObjectionHandling: matureManObjections,
		},
		{
			ID: "canadian_woman", Name: "Canadian Woman",
			Description: "Kind, helpful Canadian female voice",
			Accent:      "Canadian", Gender: "Female", AgeRange: "30-50",
			Tone: "kind", Style: "helpful",
			Phrases: []string{
				"Hello, I hope you're keeping well",
				"I'm calling because I think this could help you",
				"I completely understand your situation",
				"This has helped many people in your position",
				"I really appreciate you giving me your time",
			},
			ObjectionHandling: warmWomanObjections,
		},
	}
}
