package voicecatalog

import (
	"sort"
	"strings"
)

// ICatalog is the lookup surface over the built-in voice and mode tables.
// The tables are built once at startup and never mutated; every lookup
// returns a copy so callers cannot corrupt the shared data.
type ICatalog interface {
	CompanyVoices() []CompanyVoice
	CompanyVoice(id string) (CompanyVoice, bool)
	CompanyVoiceFromPrompt(prompt string) CompanyVoice

	HumanizedVoices(filter HumanizedFilter) []HumanizedVoice
	HumanizedVoice(id string) (HumanizedVoice, bool)
	HumanizedOptions() HumanizedOptions

	Modes() []ScriptMode
	Mode(id string) (ScriptMode, bool)
	ModeConfig(id string) ScriptMode
}

type catalog struct {
	companyVoices   []CompanyVoice
	companyByID     map[string]int
	humanizedVoices []HumanizedVoice
	humanizedByID   map[string]int
	modes           []ScriptMode
	modeByID        map[string]int
}

func New() ICatalog {
	c := &catalog{
		companyVoices:   companyVoices(),
		humanizedVoices: humanizedVoices(),
		modes:           scriptModes(),
		companyByID:     make(map[string]int),
		humanizedByID:   make(map[string]int),
		modeByID:        make(map[string]int),
	}

	for i, v := range c.companyVoices {
		c.companyByID[v.ID] = i
	}
	for i, v := range c.humanizedVoices {
		c.humanizedByID[v.ID] = i
	}
	for i, m := range c.modes {
		c.modeByID[m.ID] = i
	}

	return c
}

func (c *catalog) CompanyVoices() []CompanyVoice {
	out := make([]CompanyVoice, 0, len(c.companyVoices))
	for _, v := range c.companyVoices {
		out = append(out, v.clone())
	}
	return out
}

func (c *catalog) CompanyVoice(id string) (CompanyVoice, bool) {
	idx, ok := c.companyByID[id]
	if !ok {
		return CompanyVoice{}, false
	}
	return c.companyVoices[idx].clone(), true
}

func (c *catalog) HumanizedVoices(filter HumanizedFilter) []HumanizedVoice {
	var out []HumanizedVoice
	for _, v := range c.humanizedVoices {
		if filter.Accent != "" && !strings.EqualFold(v.Accent, filter.Accent) {
			continue
		}
		if filter.Gender != "" && !strings.EqualFold(v.Gender, filter.Gender) {
			continue
		}
		if filter.AgeRange != "" && v.AgeRange != filter.AgeRange {
			continue
		}
		out = append(out, v.clone())
	}
	return out
}

func (c *catalog) HumanizedVoice(id string) (HumanizedVoice, bool) {
	idx, ok := c.humanizedByID[id]
	if !ok {
		return HumanizedVoice{}, false
	}
	return c.humanizedVoices[idx].clone(), true
}

func (c *catalog) HumanizedOptions() HumanizedOptions {
	accents := make(map[string]struct{})
	genders := make(map[string]struct{})
	ageRanges := make(map[string]struct{})

	for _, v := range c.humanizedVoices {
		accents[v.Accent] = struct{}{}
		genders[v.Gender] = struct{}{}
		ageRanges[v.AgeRange] = struct{}{}
	}

	return HumanizedOptions{
		Accents:   sortedKeys(accents),
		Genders:   sortedKeys(genders),
		AgeRanges: sortedKeys(ageRanges),
	}
}

func (c *catalog) Modes() []ScriptMode {
	out := make([]ScriptMode, 0, len(c.modes))
	for _, m := range c.modes {
		out = append(out, m.clone())
	}
	return out
}

func (c *catalog) Mode(id string) (ScriptMode, bool) {
	idx, ok := c.modeByID[id]
	if !ok {
		return ScriptMode{}, false
	}
	return c.modes[idx].clone(), true
}

// ModeConfig returns the mode configuration, falling back to a general
// default for unknown ids. Unknown modes are never an error.
func (c *catalog) ModeConfig(id string) ScriptMode {
	if mode, ok := c.Mode(id); ok {
		if mode.Department == "" {
			mode.Department = "customer service"
		}
		return mode
	}

	return ScriptMode{
		ID:                id,
		Name:              "General",
		Tone:              "professional",
		Department:        "customer service",
		CustomerResponses: map[string][]string{},
		ObjectionHandling: map[string]string{},
		ComplianceNotes:   "Follow standard compliance procedures",
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
