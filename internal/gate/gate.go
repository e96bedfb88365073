// Package gate decides whether an article is worth a paid summarization
// call. Three keyword tiers with strict precedence: blacklist beats
// everything, then the technical whitelist, then the business whitelist,
// then default-deny. The verdict only controls LLM spend, never display.
package gate

import (
	"regexp"
	"strings"

	"SecNewsScanner/internal/domain"
)

var cveExpr = regexp.MustCompile(`cve-\d{4}-\d{4,}`)

// cvssHighExpr catches explicit mentions of CVSS scores of 9 or above.
var cvssHighExpr = regexp.MustCompile(`cvss[:\s]+(?:9\.?\d*|10(?:\.0*)?)\b`)

// Decide evaluates the lower-cased title+description against the keyword
// tiers. First match wins: an article carrying both a blacklist phrase and a
// CVE is still rejected.
func Decide(article domain.Article) domain.FilterDecision {
	text := strings.ToLower(article.Text())

	if kw, ok := firstMatch(text, blacklist); ok {
		return domain.FilterDecision{Process: false, Category: domain.GateBlocked, MatchedKeyword: kw}
	}

	if m := cveExpr.FindString(text); m != "" {
		return domain.FilterDecision{Process: true, Category: domain.GateTechnical, MatchedKeyword: m}
	}
	if m := cvssHighExpr.FindString(text); m != "" {
		return domain.FilterDecision{Process: true, Category: domain.GateTechnical, MatchedKeyword: m}
	}
	if kw, ok := firstMatch(text, technicalWhitelist); ok {
		return domain.FilterDecision{Process: true, Category: domain.GateTechnical, MatchedKeyword: kw}
	}

	if kw, ok := firstMatch(text, businessWhitelist); ok {
		return domain.FilterDecision{Process: true, Category: domain.GateBusiness, MatchedKeyword: kw}
	}

	return domain.FilterDecision{Process: false, Category: domain.GateNoMatch}
}

func firstMatch(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
