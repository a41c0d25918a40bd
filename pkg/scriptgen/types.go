package scriptgen

// Intent is the coarse purpose of a call, classified from free prompt text
// or forced by an explicitly selected script mode.
type Intent string

const (
	IntentPaymentCollection Intent = "payment_collection"
	IntentDebtCollection    Intent = "debt_collection"
	IntentBalanceInquiry    Intent = "balance_inquiry"
	IntentServiceUpdate     Intent = "service_update"
	IntentFraudPrevention   Intent = "fraud_prevention"
	IntentBanking           Intent = "banking"
	IntentShopping          Intent = "shopping"
	IntentUtilities         Intent = "utilities"
	IntentGeneral           Intent = "general"
)

const (
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

const (
	ScriptTypeAutocall  = "autocall"
	ScriptTypeHumanized = "humanized"
	ScriptTypeBoth      = "both"

	CallTypeInbound  = "inbound"
	CallTypeOutbound = "outbound"
)

// IntentAnalysis is the classifier output for a single prompt. Amount is
// empty when no monetary pattern was found; templates substitute a
// placeholder phrase instead.
type IntentAnalysis struct {
	Intent        Intent
	Amount        string
	CompanyName   string
	SpecificIssue string
	Urgency       string
}

// EnhancedAnalysis is the classifier output merged with the explicitly
// selected script mode and request options.
type EnhancedAnalysis struct {
	IntentAnalysis
	Category        string
	CallType        string
	NegativePrompts string
	Tone            string
	Department      string
}

// InteractiveElement is a caller supplied in-call prompt rendered into the
// script in the order given.
type InteractiveElement struct {
	Type         string   `json:"type" validate:"required,oneof=menu input confirmation pause"`
	Prompt       string   `json:"prompt" validate:"required_unless=Type pause"`
	Options      []string `json:"options,omitempty"`
	Validation   string   `json:"validation,omitempty"`
	Confirmation string   `json:"confirmation,omitempty"`
	Duration     int      `json:"duration,omitempty"`
}

// Persona is the resolved voice a script was generated with. It is a
// flattened view over company and humanized catalog entries.
type Persona struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Tone              string            `json:"tone"`
	Style             string            `json:"style"`
	Phrases           []string          `json:"phrases"`
	ObjectionHandling map[string]string `json:"objection_handling"`
}

// Script is a generated call script together with the request parameters
// echoed back. It has no identity until the caller persists it.
type Script struct {
	Text                string               `json:"script_text"`
	Voice               Persona              `json:"voice"`
	ScriptType          string               `json:"script_type"`
	CallType            string               `json:"call_type"`
	ScriptMode          string               `json:"script_mode"`
	ProductInfo         string               `json:"product_info"`
	NegativePrompts     string               `json:"negative_prompts"`
	InteractiveElements []InteractiveElement `json:"interactive_elements,omitempty"`
}

// CallContext is extracted from an auto-call script so a humanized
// follow-up can reference the issue and amount the bot already mentioned.
type CallContext struct {
	CompanyName string
	IssueType   string
	Amount      string
	Urgency     string
	Department  string
}
