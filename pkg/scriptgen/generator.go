package scriptgen

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ScriptForge/pkg/voicecatalog"
)

var (
	ErrVoiceNotFound     = errors.New("voice template not found")
	ErrInvalidScriptType = errors.New("script type must be 'autocall' or 'humanized'")
)

// IGenerator produces call scripts from the static voice and mode catalogs.
// All methods are pure over the request and the immutable catalog data, so
// a single generator is safe for concurrent use.
type IGenerator interface {
	Generate(req Request) (Script, error)
	GenerateAutocall(req Request) (Script, error)
	GenerateHumanized(req Request) (Script, error)
	GenerateConnected(autocall Script, req Request) (Script, error)
	AnalyzeCallContext(scriptText string) CallContext
}

// Request carries the caller's script generation parameters.
type Request struct {
	ScriptType          string
	VoiceID             string
	CallType            string
	ScriptMode          string
	ProductInfo         string
	NegativePrompts     string
	InteractiveElements []InteractiveElement
}

type generator struct {
	catalog voicecatalog.ICatalog
}

func New(catalog voicecatalog.ICatalog) IGenerator {
	return &generator{catalog: catalog}
}

func (g *generator) Generate(req Request) (Script, error) {
	switch req.ScriptType {
	case ScriptTypeAutocall:
		return g.GenerateAutocall(req)
	case ScriptTypeHumanized:
		return g.GenerateHumanized(req)
	default:
		return Script{}, ErrInvalidScriptType
	}
}

// GenerateAutocall builds a keypad-driven script for the auto-call bot:
// classify the prompt, merge in the selected mode, fill the intent template
// and append any caller supplied interactive elements.
func (g *generator) GenerateAutocall(req Request) (Script, error) {
	voice, err := g.resolveCompanyVoice(req.VoiceID, req.ProductInfo)
	if err != nil {
		return Script{}, err
	}

	analysis := Classify(req.ProductInfo)
	enhanced := Merge(analysis, req.ScriptMode, req.CallType, req.NegativePrompts)

	lines := buildScript(voice, req.ProductInfo, enhanced)
	if len(req.InteractiveElements) > 0 {
		lines = append(lines, "")
		lines = append(lines, RenderInteractive(req.InteractiveElements)...)
	}

	return Script{
		Text:                strings.Join(lines, "\n"),
		Voice:               voice,
		ScriptType:          ScriptTypeAutocall,
		CallType:            req.CallType,
		ScriptMode:          req.ScriptMode,
		ProductInfo:         req.ProductInfo,
		NegativePrompts:     req.NegativePrompts,
		InteractiveElements: req.InteractiveElements,
	}, nil
}

// GenerateHumanized builds an agent-facing script with customer response
// illustrations, objection handling and compliance notes from the mode
// configuration.
func (g *generator) GenerateHumanized(req Request) (Script, error) {
	voice, err := g.resolveHumanizedVoice(req.VoiceID, req.ProductInfo)
	if err != nil {
		return Script{}, err
	}

	mode := g.catalog.ModeConfig(req.ScriptMode)
	companyName := voice.Name

	var lines []string
	if req.CallType == CallTypeInbound {
		lines = append(lines, "AGENT: Thank you for calling "+companyName+". This is "+voice.Name+" from our "+mode.Department+" team.")
	} else {
		lines = append(lines,
			"AGENT: Hi, this is "+voice.Name+" from "+companyName+".",
			"AGENT: We are calling from our "+mode.Department+" team regarding "+req.ProductInfo+".",
		)
	}

	switch req.ScriptMode {
	case "fraud_prevention":
		lines = append(lines,
			"AGENT: I'm calling about a potential security concern with your account.",
			"AGENT: We've detected some unusual activity that we need to verify with you.",
		)
	case "banking":
		lines = append(lines, "AGENT: I'm calling about your banking account and some important information we need to discuss.")
	case "shopping":
		lines = append(lines, "AGENT: I'm calling about your recent order and wanted to provide you with an update.")
	case "utilities":
		lines = append(lines, "AGENT: I'm calling about your utility service and some important information regarding your account.")
	}

	lines = append(lines, "AGENT: "+req.ProductInfo)

	if len(mode.CustomerResponses) > 0 {
		lines = append(lines, "", "--- CUSTOMER RESPONSES ---")
		for _, responseType := range sortedMapKeys(mode.CustomerResponses) {
			lines = append(lines, "", "CUSTOMER: [If "+responseType+":]")
			responses := mode.CustomerResponses[responseType]
			if len(responses) > 2 {
				responses = responses[:2]
			}
			for i, response := range responses {
				lines = append(lines, "  "+strconv.Itoa(i+1)+`. "`+response+`"`)
			}
		}
	}

	lines = append(lines, "", "--- OBJECTION HANDLING ---")
	objections := mode.ObjectionHandling
	if len(objections) == 0 {
		objections = voice.ObjectionHandling
	}
	for _, objectionType := range sortedStringMapKeys(objections) {
		lines = append(lines,
			"",
			"CUSTOMER: [If they say '"+objectionType+"']",
			"AGENT: "+objections[objectionType],
		)
	}

	if strings.TrimSpace(req.NegativePrompts) != "" {
		lines = append(lines,
			"",
			"--- AVOID THESE TOPICS ---",
			"DO NOT mention: "+req.NegativePrompts,
		)
	}

	if mode.ComplianceNotes != "" {
		lines = append(lines,
			"",
			"--- COMPLIANCE NOTES ---",
			"AGENT: [Remember: "+mode.ComplianceNotes+"]",
		)
	}

	lines = append(lines,
		"",
		"--- CLOSING ---",
		"AGENT: Is there anything else I can help you with today?",
		"AGENT: Thank you for taking the time to speak with me. Have a great day!",
	)

	return Script{
		Text:            strings.Join(lines, "\n"),
		Voice:           voice,
		ScriptType:      ScriptTypeHumanized,
		CallType:        req.CallType,
		ScriptMode:      req.ScriptMode,
		ProductInfo:     req.ProductInfo,
		NegativePrompts: req.NegativePrompts,
	}, nil
}

var contextCompanyRe = regexp.MustCompile(`calling from ([A-Za-z\s]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`)

// AnalyzeCallContext extracts the company, amount and issue an auto-call
// script mentioned so a follow-up call can reference them.
func (g *generator) AnalyzeCallContext(scriptText string) CallContext {
	ctx := CallContext{
		CompanyName: "our company",
		IssueType:   "general inquiry",
		Urgency:     UrgencyNormal,
		Department:  "customer service",
	}

	if m := contextCompanyRe.FindStringSubmatch(scriptText); m != nil {
		ctx.CompanyName = strings.TrimSpace(m[1])
	}
	if m := amountRe.FindStringSubmatch(scriptText); m != nil {
		ctx.Amount = "£" + m[1]
	}

	lower := strings.ToLower(scriptText)
	switch {
	case containsAny(lower, []string{"payment", "pay now", "unsettled balance", "outstanding balance"}):
		ctx.IssueType = "payment"
		ctx.Urgency = UrgencyHigh
	case containsAny(lower, []string{"fraud", "security", "suspicious activity"}):
		ctx.IssueType = "security"
		ctx.Urgency = UrgencyHigh
		ctx.Department = "fraud team"
	case containsAny(lower, []string{"order", "purchase", "shipping"}):
		ctx.IssueType = "order"
	case containsAny(lower, []string{"utility", "bill", "service"}):
		ctx.IssueType = "utility"
		ctx.Department = "utility services"
	}

	return ctx
}

// GenerateConnected builds a humanized follow-up that acknowledges what the
// auto-call already told the customer.
func (g *generator) GenerateConnected(autocall Script, req Request) (Script, error) {
	callCtx := g.AnalyzeCallContext(autocall.Text)

	voice, err := g.resolveHumanizedVoice(req.VoiceID, req.ProductInfo)
	if err != nil {
		return Script{}, err
	}

	companyName := voice.Name
	if companyName == "" {
		companyName = callCtx.CompanyName
	}

	var lines []string
	if req.CallType == CallTypeInbound {
		lines = append(lines, "AGENT: Thank you for calling "+companyName+". This is "+voice.Name+" from our "+callCtx.Department+" team.")
	} else {
		lines = append(lines,
			"AGENT: Hi, this is "+voice.Name+" from "+companyName+".",
			"AGENT: I'm calling to follow up on our recent automated call regarding your "+callCtx.IssueType+".",
		)
	}

	switch callCtx.IssueType {
	case "payment":
		amount := orPlaceholder(callCtx.Amount, "the amount")
		lines = append(lines, "AGENT: I understand you may have questions about the payment of "+amount+" we discussed.")
	case "security":
		lines = append(lines, "AGENT: I'm calling to help you with the security concern we mentioned in our automated call.")
	case "order":
		lines = append(lines, "AGENT: I wanted to personally follow up on your order and make sure everything is going smoothly.")
	case "utility":
		lines = append(lines, "AGENT: I'm calling to discuss your utility service and the information we shared earlier.")
	}

	lines = append(lines, "AGENT: "+req.ProductInfo)

	lines = append(lines, "", "--- CUSTOMER RESPONSES ---")
	switch callCtx.IssueType {
	case "payment":
		lines = append(lines,
			"",
			"CUSTOMER: [If they want to pay now:]",
			`  1. "Yes, I'd like to pay now"`,
			`  2. "I need a payment plan"`,
			"",
			"CUSTOMER: [If they have questions:]",
			`  1. "Can you explain the charges?"`,
			`  2. "I don't recognize this amount"`,
		)
	case "security":
		lines = append(lines,
			"",
			"CUSTOMER: [If they're concerned:]",
			`  1. "I'm worried about my account"`,
			`  2. "What should I do?"`,
			"",
			"CUSTOMER: [If they're skeptical:]",
			`  1. "How do I know this is legitimate?"`,
			`  2. "I don't trust this call"`,
		)
	}

	lines = append(lines,
		"",
		"--- OBJECTION HANDLING ---",
		"",
		"CUSTOMER: [If they say 'I'm not interested']",
		"AGENT: I completely understand. I just wanted to make sure you have all the information you need about this important matter.",
		"",
		"CUSTOMER: [If they say 'I'm busy']",
		"AGENT: I appreciate your time. This is important, so I'll be brief and get you the help you need quickly.",
		"",
		"CUSTOMER: [If they say 'I don't trust this']",
		"AGENT: I understand your caution. You can verify this call by calling us back at our main number, or I can provide you with a reference number.",
	)

	if strings.TrimSpace(req.NegativePrompts) != "" {
		lines = append(lines,
			"",
			"--- AVOID THESE TOPICS ---",
			"DO NOT mention: "+req.NegativePrompts,
		)
	}

	lines = append(lines,
		"",
		"--- CLOSING ---",
		"AGENT: Is there anything else I can help you with regarding this matter?",
		"AGENT: Thank you for taking the time to speak with me. Have a great day!",
	)

	return Script{
		Text:            strings.Join(lines, "\n"),
		Voice:           voice,
		ScriptType:      ScriptTypeHumanized,
		CallType:        req.CallType,
		ScriptMode:      req.ScriptMode,
		ProductInfo:     req.ProductInfo,
		NegativePrompts: req.NegativePrompts,
	}, nil
}

// resolveCompanyVoice looks up a company voice, building one from the
// prompt when the caller selects "use_prompt".
func (g *generator) resolveCompanyVoice(voiceID, productInfo string) (Persona, error) {
	if voiceID == voicecatalog.UsePromptVoiceID {
		return companyPersona(g.catalog.CompanyVoiceFromPrompt(productInfo)), nil
	}
	voice, ok := g.catalog.CompanyVoice(voiceID)
	if !ok {
		return Persona{}, ErrVoiceNotFound
	}
	return companyPersona(voice), nil
}

// resolveHumanizedVoice prefers the humanized catalog and falls back to the
// company catalog, matching how callers mix the two voice sets.
func (g *generator) resolveHumanizedVoice(voiceID, productInfo string) (Persona, error) {
	if voiceID == voicecatalog.UsePromptVoiceID {
		return companyPersona(g.catalog.CompanyVoiceFromPrompt(productInfo)), nil
	}
	if voice, ok := g.catalog.HumanizedVoice(voiceID); ok {
		return humanizedPersona(voice), nil
	}
	if voice, ok := g.catalog.CompanyVoice(voiceID); ok {
		return companyPersona(voice), nil
	}
	return Persona{}, ErrVoiceNotFound
}

func companyPersona(v voicecatalog.CompanyVoice) Persona {
	return Persona{
		ID:                v.ID,
		Name:              v.Name,
		Description:       v.Description,
		Tone:              v.Tone,
		Style:             v.Style,
		Phrases:           v.Phrases,
		ObjectionHandling: v.ObjectionHandling,
	}
}

func humanizedPersona(v voicecatalog.HumanizedVoice) Persona {
	return Persona{
		ID:                v.ID,
		Name:              v.Name,
		Description:       v.Description,
		Tone:              v.Tone,
		Style:             v.Style,
		Phrases:           v.Phrases,
		ObjectionHandling: v.ObjectionHandling,
	}
}

func sortedMapKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedStringMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
