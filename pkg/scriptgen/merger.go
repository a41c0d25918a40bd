package scriptgen

// categoryIntents maps a selected script mode to the intent it forces.
// An explicit selection always beats the classifier's keyword guess.
var categoryIntents = map[string]Intent{
	"fraud_prevention":   IntentFraudPrevention,
	"banking":            IntentBanking,
	"shopping":           IntentShopping,
	"utilities":          IntentUtilities,
	"debt_collection":    IntentDebtCollection,
	"payment_processing": IntentPaymentCollection,
	"balance_inquiry":    IntentBalanceInquiry,
	"service_update":     IntentServiceUpdate,
}

// Merge folds the selected script mode, call type and negative prompts into
// the classifier output and attaches the mode's department and tone context.
func Merge(analysis IntentAnalysis, scriptMode, callType, negativePrompts string) EnhancedAnalysis {
	enhanced := EnhancedAnalysis{
		IntentAnalysis:  analysis,
		Category:        "general",
		CallType:        callType,
		NegativePrompts: negativePrompts,
	}

	if intent, ok := categoryIntents[scriptMode]; ok {
		enhanced.Intent = intent
		enhanced.Category = scriptMode
	}

	switch scriptMode {
	case "fraud_prevention":
		enhanced.Urgency = UrgencyHigh
		enhanced.Tone = "urgent and professional"
		enhanced.Department = "fraud team"
	case "banking":
		enhanced.Urgency = UrgencyNormal
		enhanced.Tone = "professional and reassuring"
		enhanced.Department = "banking services"
	case "shopping":
		enhanced.Urgency = UrgencyNormal
		enhanced.Tone = "friendly and helpful"
		enhanced.Department = "customer service"
	case "utilities":
		enhanced.Urgency = UrgencyNormal
		enhanced.Tone = "helpful and informative"
		enhanced.Department = "utility services"
	}

	return enhanced
}
