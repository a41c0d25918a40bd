package voicecatalog

// UsePromptVoiceID selects no catalog entry; the voice is derived from the
// caller's prompt text instead.
const UsePromptVoiceID = "use_prompt"

// CompanyVoice is a branded voice template used to flavor generated scripts.
type CompanyVoice struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Tone              string            `json:"tone"`
	Style             string            `json:"style"`
	Phrases           []string          `json:"phrases"`
	ObjectionHandling map[string]string `json:"objection_handling"`
	CompanyType       string            `json:"company_type,omitempty"`
	Industry          string            `json:"industry,omitempty"`
}

// HumanizedVoice describes an accent/gender/age persona for agent-read scripts.
type HumanizedVoice struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Accent            string            `json:"accent"`
	Gender            string            `json:"gender"`
	AgeRange          string            `json:"age_range"`
	Tone              string            `json:"tone"`
	Style             string            `json:"style"`
	Phrases           []string          `json:"phrases"`
	ObjectionHandling map[string]string `json:"objection_handling"`
}

// ScriptMode carries the industry-specific wording for one campaign category.
type ScriptMode struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Tone              string              `json:"tone"`
	Department        string              `json:"department,omitempty"`
	Phrases           []string            `json:"phrases"`
	CustomerResponses map[string][]string `json:"customer_responses,omitempty"`
	ObjectionHandling map[string]string   `json:"objection_handling"`
	ComplianceNotes   string              `json:"compliance_notes"`
}

type HumanizedFilter struct {
	Accent   string
	Gender   string
	AgeRange string
}

type HumanizedOptions struct {
	Accents   []string `json:"accents"`
	Genders   []string `json:"genders"`
	AgeRanges []string `json:"age_ranges"`
}

func (v CompanyVoice) clone() CompanyVoice {
	v.Phrases = append([]string(nil), v.Phrases...)
	v.ObjectionHandling = cloneStringMap(v.ObjectionHandling)
	return v
}

func (v HumanizedVoice) clone() HumanizedVoice {
	v.Phrases = append([]string(nil), v.Phrases...)
	v.ObjectionHandling = cloneStringMap(v.ObjectionHandling)
	return v
}

func (m ScriptMode) clone() ScriptMode {
	m.Phrases = append([]string(nil), m.Phrases...)
	m.ObjectionHandling = cloneStringMap(m.ObjectionHandling)

	if m.CustomerResponses != nil {
		responses := make(map[string][]string, len(m.CustomerResponses))
		for kind, lines := range m.CustomerResponses {
			responses[kind] = append([]string(nil), lines...)
		}
		m.CustomerResponses = responses
	}

	return m
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
