package scriptgen

import (
	"regexp"
	"strings"
)

var amountRe = regexp.MustCompile(`£?(\d+\.?\d*)`)

// Company name patterns tried in priority order. The first match whose
// cleaned capture is longer than 2 characters wins.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)company\s+is\s+([A-Za-z\s]+?)(?:\s+Bank|\s+Banking|\.|,|$)`),
	regexp.MustCompile(`(?i)calling\s+from\s+([A-Za-z\s]+?)(?:\s+Bank|\s+Banking|\.|,|$)`),
	regexp.MustCompile(`(?i)this\s+is\s+([A-Za-z\s]+?)(?:\s+Bank|\s+Banking|\.|,|$)`),
	regexp.MustCompile(`(?i)from\s+([A-Za-z\s]+?)(?:\s+Bank|\s+Banking|\.|,|$)`),
	regexp.MustCompile(`(?i)([A-Za-z\s]+?)\s+Bank`),
}

var spaceRe = regexp.MustCompile(`\s+`)

// intentRules is the keyword priority table. Rules are evaluated top to
// bottom against the lower-cased prompt and the first hit wins, so debt
// phrases beat payment phrases and payment phrases beat balance phrases.
var intentRules = []struct {
	keywords []string
	intent   Intent
	issue    string
	urgency  string
}{
	{[]string{"unsettled balance", "outstanding balance", "unpaid balance"}, IntentDebtCollection, "unsettled balance", UrgencyHigh},
	{[]string{"fine", "penalty", "late fee"}, IntentDebtCollection, "fine", UrgencyHigh},
	{[]string{"payment", "pay now", "immediate payment"}, IntentPaymentCollection, "payment", UrgencyHigh},
	{[]string{"balance", "account balance", "check balance"}, IntentBalanceInquiry, "balance inquiry", UrgencyNormal},
	{[]string{"service", "update", "maintenance", "outage"}, IntentServiceUpdate, "service update", UrgencyNormal},
}

// Classify inspects free prompt text and produces an intent guess, the
// extracted monetary amount and company name. Pure function of its input.
func Classify(productInfo string) IntentAnalysis {
	lower := strings.ToLower(productInfo)

	var amount string
	if m := amountRe.FindStringSubmatch(productInfo); m != nil {
		amount = "£" + m[1]
	}

	companyName := "our company"
	for _, pattern := range companyPatterns {
		m := pattern.FindStringSubmatch(productInfo)
		if m == nil {
			continue
		}
		name := spaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if len(name) > 2 {
			companyName = name
			break
		}
	}

	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			return IntentAnalysis{
				Intent:        rule.intent,
				Amount:        amount,
				CompanyName:   companyName,
				SpecificIssue: rule.issue,
				Urgency:       rule.urgency,
			}
		}
	}

	return IntentAnalysis{
		Intent:        IntentGeneral,
		Amount:        amount,
		CompanyName:   companyName,
		SpecificIssue: "general inquiry",
		Urgency:       UrgencyNormal,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
