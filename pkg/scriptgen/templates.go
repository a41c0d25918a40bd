package scriptgen

// templateBuilder produces the body of an auto-call script for one intent.
// Builders are deterministic: identical inputs give byte-identical lines.
type templateBuilder func(voice Persona, productInfo string, analysis EnhancedAnalysis) []string

// templateBuilders maps every known intent to its builder. Lookups that
// miss the table fall back to buildGenericScript, so selection stays total
// over any future intent value.
var templateBuilders = map[Intent]templateBuilder{
	IntentPaymentCollection: buildPaymentCollectionScript,
	IntentDebtCollection:    buildDebtCollectionScript,
	IntentBalanceInquiry:    buildBalanceInquiryScript,
	IntentServiceUpdate:     buildServiceUpdateScript,
	IntentFraudPrevention:   buildFraudPreventionScript,
	IntentBanking:           buildBankingScript,
	IntentShopping:          buildShoppingScript,
	IntentUtilities:         buildUtilitiesScript,
}

// buildScript dispatches on the merged intent, falling back to the generic
// builder for unknown labels.
func buildScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	builder, ok := templateBuilders[analysis.Intent]
	if !ok {
		builder = buildGenericScript
	}
	return builder(voice, productInfo, analysis)
}

func orPlaceholder(amount, placeholder string) string {
	if amount == "" {
		return placeholder
	}
	return amount
}

func defaultDepartment(analysis EnhancedAnalysis, fallback string) string {
	if analysis.Department == "" {
		return fallback
	}
	return analysis.Department
}

func buildPaymentCollectionScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	amount := orPlaceholder(analysis.Amount, "the amount")

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling regarding your payment of " + amount + ".",
		"AGENT: Press 1 to pay now, 2 for payment plan, or 3 to speak to someone.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"CUSTOMER: [Presses key - possible responses:]",
		"  - Press 1: \"I want to pay now\"",
		"  - Press 2: \"I need a payment plan\"",
		"  - Press 3: \"I want to speak to someone\"",
		"",
		"CUSTOMER: [Presses 1 - Payment]",
		"AGENT: Thank you for choosing to pay now. Please enter your 16-digit card number after the beep.",
		"SYSTEM: [Wait for input - 15 second timeout]",
		"CUSTOMER: [Enters card number]",
		"AGENT: Please enter your card expiry date in MM/YY format.",
		"SYSTEM: [Wait for input - 10 second timeout]",
		"CUSTOMER: [Enters expiry date]",
		"AGENT: Please enter your 3-digit security code on the back of your card.",
		"SYSTEM: [Wait for input - 10 second timeout]",
		"CUSTOMER: [Enters CVV]",
		"AGENT: Please confirm the payment amount of " + amount + ". Press 1 for yes, 2 for no.",
		"SYSTEM: [Wait for confirmation - 5 second timeout]",
		"CUSTOMER: [Presses 1]",
		"AGENT: Payment processed successfully. You will receive a confirmation email shortly. Thank you!",
		"",
		"CUSTOMER: [Presses 2 - Payment Plan]",
		"AGENT: I understand you need a payment plan. Let me transfer you to our payment department.",
		"AGENT: Please hold while I connect you.",
		"",
		"CUSTOMER: [Presses 3 - Speak to Someone]",
		"AGENT: I'll transfer you to one of our representatives who can help you with your payment.",
		"AGENT: Please hold while I connect you.",
	}
}

func buildDebtCollectionScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	amount := orPlaceholder(analysis.Amount, "the amount")
	specificIssue := analysis.SpecificIssue

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling regarding your " + specificIssue + " of " + amount + ".",
		"AGENT: Press 1 to pay now, 2 for payment plan, or 3 to speak to someone.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"CUSTOMER: [Presses key - possible responses:]",
		"  - Press 1: \"I want to pay now\"",
		"  - Press 2: \"I need a payment plan\"",
		"  - Press 3: \"I want to speak to someone\"",
		"",
		"CUSTOMER: [Presses 1 - Pay Now]",
		"AGENT: Thank you for choosing to pay now. Please enter your 16-digit card number after the beep.",
		"SYSTEM: [Wait for input - 15 second timeout]",
		"CUSTOMER: [Enters card number]",
		"AGENT: Please enter your card expiry date in MM/YY format.",
		"SYSTEM: [Wait for input - 10 second timeout]",
		"CUSTOMER: [Enters expiry date]",
		"AGENT: Please enter your 3-digit security code on the back of your card.",
		"SYSTEM: [Wait for input - 10 second timeout]",
		"CUSTOMER: [Enters CVV]",
		"AGENT: Please confirm the payment amount of " + amount + ". Press 1 for yes, 2 for no.",
		"SYSTEM: [Wait for confirmation - 5 second timeout]",
		"CUSTOMER: [Presses 1]",
		"AGENT: Payment processed successfully. Your " + specificIssue + " has been cleared. Thank you!",
		"",
		"CUSTOMER: [Presses 2 - Payment Plan]",
		"AGENT: I understand you need a payment plan for your " + specificIssue + ". Let me transfer you to our collections department.",
		"AGENT: Please hold while I connect you.",
		"",
		"CUSTOMER: [Presses 3 - Speak to Someone]",
		"AGENT: I'll transfer you to one of our representatives who can help you with your " + specificIssue + ".",
		"AGENT: Please hold while I connect you.",
	}
}

func buildFraudPreventionScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	department := defaultDepartment(analysis, "fraud team")

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling from our " + department + " regarding a potential security concern with your account.",
		"AGENT: Press 1 to verify your identity, 2 to speak to our fraud team, or 3 to end the call.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - Verify Identity]",
		"AGENT: Thank you for choosing to verify. For security purposes, please enter the last 4 digits of your social security number.",
		"SYSTEM: [Wait for input - 10 second timeout]",
		"CUSTOMER: [Enters last 4 digits]",
		"AGENT: Please confirm your date of birth in MM/DD/YYYY format.",
		"SYSTEM: [Wait for input - 10 second timeout]",
		"CUSTOMER: [Enters date of birth]",
		"AGENT: Thank you for verifying your identity. We have detected suspicious activity on your account.",
		"AGENT: Press 1 to secure your account now, 2 to speak to a fraud specialist, or 3 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Speak to Fraud Team]",
		"AGENT: I'll transfer you to our fraud prevention team immediately.",
		"AGENT: Please hold while I connect you to a specialist.",
		"",
		"CUSTOMER: [Presses 3 - End Call]",
		"AGENT: If you have any concerns about your account security, please call us immediately at our fraud hotline.",
		"AGENT: Thank you for your time.",
	}
}

func buildBankingScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	department := defaultDepartment(analysis, "banking services")

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling from our " + department + " regarding your account.",
		"AGENT: Press 1 for account information, 2 to speak to a banking specialist, or 3 to end the call.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - Account Information]",
		"AGENT: Please enter your account number or the last 4 digits of your social security number.",
		"SYSTEM: [Wait for input - 15 second timeout]",
		"CUSTOMER: [Enters account information]",
		"AGENT: Thank you. I can see your account information. How can I assist you today?",
		"AGENT: Press 1 for balance inquiry, 2 for transaction history, 3 to speak to someone, or 4 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Speak to Banking Specialist]",
		"AGENT: I'll transfer you to one of our banking specialists.",
		"AGENT: Please hold while I connect you.",
	}
}

func buildShoppingScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	department := defaultDepartment(analysis, "customer service")

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling from our " + department + " regarding your recent order.",
		"AGENT: Press 1 for order status, 2 to speak to customer service, or 3 to end the call.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - Order Status]",
		"AGENT: Please enter your order number or the email address used for the purchase.",
		"SYSTEM: [Wait for input - 15 second timeout]",
		"CUSTOMER: [Enters order information]",
		"AGENT: Thank you. I can see your order details. Your order is currently being processed.",
		"AGENT: Press 1 for shipping updates, 2 to modify your order, 3 to speak to someone, or 4 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Speak to Customer Service]",
		"AGENT: I'll transfer you to our customer service team.",
		"AGENT: Please hold while I connect you.",
	}
}

func buildUtilitiesScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	department := defaultDepartment(analysis, "utility services")

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling from our " + department + " regarding your utility service.",
		"AGENT: Press 1 for account information, 2 to speak to a service representative, or 3 to end the call.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - Account Information]",
		"AGENT: Please enter your account number or service address.",
		"SYSTEM: [Wait for input - 15 second timeout]",
		"CUSTOMER: [Enters account information]",
		"AGENT: Thank you. I can see your utility account. How can I assist you today?",
		"AGENT: Press 1 for bill inquiry, 2 for service updates, 3 to speak to someone, or 4 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Speak to Service Representative]",
		"AGENT: I'll transfer you to one of our service representatives.",
		"AGENT: Please hold while I connect you.",
	}
}

func buildBalanceInquiryScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName
	amount := orPlaceholder(analysis.Amount, "your current balance")

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling to inform you about your account balance of " + amount + ".",
		"AGENT: Press 1 for more details, 2 to make a payment, or 3 to speak to someone.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - More Details]",
		"AGENT: Your current balance is " + amount + ". This includes any recent transactions and fees.",
		"AGENT: Press 1 to make a payment, 2 to speak to someone, or 3 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Make Payment]",
		"AGENT: I'll transfer you to our payment department to process your payment.",
		"AGENT: Please hold while I connect you.",
		"",
		"CUSTOMER: [Presses 3 - Speak to Someone]",
		"AGENT: I'll transfer you to one of our representatives who can help you with your account.",
		"AGENT: Please hold while I connect you.",
	}
}

func buildServiceUpdateScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: We are calling to inform you about an important service update.",
		"AGENT: Press 1 to hear the update, 2 to speak to someone, or 3 to end the call.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - Hear Update]",
		"AGENT: [Service update details based on prompt]",
		"AGENT: Press 1 if you have questions, 2 to speak to someone, or 3 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Speak to Someone]",
		"AGENT: I'll transfer you to one of our representatives who can help you with your service.",
		"AGENT: Please hold while I connect you.",
	}
}

func buildGenericScript(voice Persona, productInfo string, analysis EnhancedAnalysis) []string {
	companyName := analysis.CompanyName

	return []string{
		"AGENT: Hi, this is an automated call from " + companyName + ".",
		"AGENT: " + productInfo,
		"AGENT: Press 1 for more information, 2 to speak to someone, or 3 to end the call.",
		"SYSTEM: [Wait for keypad input - 5 second timeout]",
		"",
		"CUSTOMER: [Presses 1 - More Information]",
		"AGENT: [Additional information based on prompt]",
		"AGENT: Press 1 to speak to someone, 2 to end the call.",
		"",
		"CUSTOMER: [Presses 2 - Speak to Someone]",
		"AGENT: I'll transfer you to one of our representatives who can help you.",
		"AGENT: Please hold while I connect you.",
	}
}
