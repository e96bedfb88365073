package intel

import (
	"strings"

	"SecNewsScanner/internal/domain"
)

// ClassifyCIA maps text to CIA+NR impact tags via keyword-group matching.
// When nothing matches, the article still carries an "integrity" tag: every
// news item is treated as at least an integrity-relevant event so downstream
// dashboards never see an unclassified article.
func ClassifyCIA(text string) []domain.CIATag {
	lower := strings.ToLower(text)
	var tags []domain.CIATag
	for _, group := range ciaKeywords {
		for _, kw := range group.Keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, group.Tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		tags = []domain.CIATag{domain.TagIntegrity}
	}
	return tags
}

// CIAImpactScores is the severity-oriented sibling of ClassifyCIA: instead
// of a boolean per dimension it returns a score in {0,1,2,3} taken from the
// highest-priority matching keyword tier (3 direct, 2 indirect,
// 1 tangential).
func CIAImpactScores(text string) map[domain.CIATag]int {
	lower := strings.ToLower(text)
	scores := make(map[domain.CIATag]int, len(ciaImpactTiers))
	for _, dim := range ciaImpactTiers {
		scores[dim.Tag] = 0
		for tier, keywords := range dim.Tiers {
			if containsAny(lower, keywords) {
				scores[dim.Tag] = 3 - tier
				break
			}
		}
	}
	return scores
}

// ClassifySeverity buckets an article by keyword signal and, when present,
// its CVSS score. Defaults to low.
func ClassifySeverity(text string, cvss *float64) domain.SeverityLevel {
	lower := strings.ToLower(text)

	if containsAny(lower, severityKeywords[domain.SeverityCritical]) {
		return domain.SeverityCritical
	}
	if cvss != nil && *cvss >= 9.0 {
		return domain.SeverityCritical
	}
	if containsAny(lower, severityKeywords[domain.SeverityHigh]) {
		return domain.SeverityHigh
	}
	if cvss != nil && *cvss >= 7.0 {
		return domain.SeverityHigh
	}
	if containsAny(lower, severityKeywords[domain.SeverityMedium]) {
		return domain.SeverityMedium
	}
	if cvss != nil && *cvss >= 4.0 {
		return domain.SeverityMedium
	}
	return domain.SeverityLow
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
