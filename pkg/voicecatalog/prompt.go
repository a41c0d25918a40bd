package voicecatalog

import (
	"regexp"
	"strings"
)

var promptCompanyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)the company is ([A-Za-z0-9\s&]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`),
	regexp.MustCompile(`(?i)my company is ([A-Za-z0-9\s&]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`),
	regexp.MustCompile(`(?i)company name is ([A-Za-z0-9\s&]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`),
	regexp.MustCompile(`(?i)calling from ([A-Za-z0-9\s&]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`),
	regexp.MustCompile(`(?i)this is ([A-Za-z0-9\s&]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`),
	regexp.MustCompile(`(?i)from ([A-Za-z0-9\s&]+?)(?:\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)|\s*[.,]|\s*$)`),
	regexp.MustCompile(`(?i)([A-Za-z0-9\s&]+?)\s+(?:Bank|Banking|Ltd|Limited|Inc|Corp|Corporation|Group|Holdings|PLC|plc)`),
	regexp.MustCompile(`(?i)([A-Za-z0-9\s&]+?)\s+(?:calling|phoning|contacting)`),
	regexp.MustCompile(`(?i)([A-Za-z0-9\s&]+?)\s+(?:regarding|about|concerning)`),
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CompanyVoiceFromPrompt builds a custom voice by extracting the company name
// and business type from free prompt text. Used when the caller selects the
// "use_prompt" voice instead of a catalog entry.
func (c *catalog) CompanyVoiceFromPrompt(prompt string) CompanyVoice {
	companyName := "Custom Company"
	for _, pattern := range promptCompanyPatterns {
		match := pattern.FindStringSubmatch(prompt)
		if match == nil {
			continue
		}
		name := whitespaceRe.ReplaceAllString(strings.TrimSpace(match[1]), " ")
		if len(name) > 2 {
			companyName = name
			break
		}
	}

	companyType, industry, tone, style := classifyCompanyType(prompt)

	return CompanyVoice{
		ID:          "use_prompt",
		Name:        companyName,
		Description: "Uses your prompt to determine voice style for " + companyName,
		Tone:        tone,
		Style:       style,
		Phrases:     promptPhrases(companyType, companyName),
		ObjectionHandling: map[string]string{
			"price":      "I understand cost is important. Let me explain the value.",
			"time":       "I appreciate you're busy. This will only take a few minutes.",
			"skepticism": "I understand your concerns. Let me address them.",
		},
		CompanyType: companyType,
		Industry:    industry,
	}
}

func classifyCompanyType(prompt string) (companyType, industry, tone, style string) {
	lower := strings.ToLower(prompt)

	containsAny := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("bank", "banking", "financial", "finance", "account", "loan", "mortgage"):
		return "banking", "financial_services", "professional", "formal"
	case containsAny("shop", "store", "retail", "order", "purchase", "fashion", "clothing"):
		return "retail", "e_commerce", "friendly", "customer_focused"
	case containsAny("utility", "electric", "gas", "water", "energy", "service"):
		return "utilities", "utilities", "helpful", "service_oriented"
	case containsAny("fraud", "security", "suspicious", "verify", "protect"):
		return "security", "security_services", "urgent", "security_focused"
	default:
		return "general", "general", "professional", "custom"
	}
}

func promptPhrases(companyType, companyName string) []string {
	switch companyType {
	case "banking":
		return []string{
			"Hello, this is an important call from " + companyName,
			"I'm calling regarding your account",
			"This is about your banking service",
			"We need to discuss something important",
			"Thank you for your time",
		}
	case "retail":
		return []string{
			"Hi, this is " + companyName + " calling",
			"I'm calling about your recent order",
			"We have some great news for you",
			"This could help you save money",
			"Thank you for being a valued customer",
		}
	case "utilities":
		return []string{
			"Hello, this is " + companyName + " calling",
			"I'm calling about your utility service",
			"We have important information for you",
			"This could help you save on your bills",
			"Thank you for choosing " + companyName,
		}
	case "security":
		return []string{
			"Hello, this is an urgent call from " + companyName,
			"I'm calling about a security concern",
			"This is about protecting your account",
			"We need to verify some information",
			"Thank you for your immediate attention",
		}
	default:
		return []string{
			"Hello, this is an important call",
			"I'm calling regarding your account",
			"This is about your service",
			"We need to discuss something important",
			"Thank you for your time",
		}
	}
}
