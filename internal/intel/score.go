package intel

import "SecNewsScanner/internal/domain"

// Fixed contributions of the CISO relevance score. The raw sum can exceed
// 100; the stored value is clamped, never normalized, so ranking among high
// scorers stays monotone in the raw magnitude.
const (
	weightCVE        = 30
	weightHighCVSS   = 20
	weightActor      = 15
	weightProduct    = 15
	weightPatch      = 10
	weightOfficial   = 10
	weightMITRE      = 10
	weightIOC        = 5
	weightRegulatory = 5
	weightCritical   = 10
	weightHigh       = 5

	highCVSSThreshold = 8.0
	maxRelevanceScore = 100
)

// RelevanceScore combines extracted metadata into a bounded 0-100 score.
// Pure and deterministic: the same metadata always yields the same score.
func RelevanceScore(m domain.Metadata) int {
	score := 0
	if len(m.CVEs) > 0 {
		score += weightCVE
	}
	if m.CVSSScore != nil && *m.CVSSScore >= highCVSSThreshold {
		score += weightHighCVSS
	}
	if len(m.ThreatActors) > 0 {
		score += weightActor
	}
	if len(m.AffectedProducts) > 0 {
		score += weightProduct
	}
	if m.PatchAvailable {
		score += weightPatch
	}
	if m.IsOfficialSource {
		score += weightOfficial
	}
	if len(m.MITREAttackTechniques) > 0 {
		score += weightMITRE
	}
	if !m.IOCs.Empty() {
		score += weightIOC
	}
	if len(m.RegulatoryKeywords) > 0 {
		score += weightRegulatory
	}
	switch m.SeverityLevel {
	case domain.SeverityCritical:
		score += weightCritical
	case domain.SeverityHigh:
		score += weightHigh
	}
	if score > maxRelevanceScore {
		score = maxRelevanceScore
	}
	return score
}
