package domain

// SeverityLevel buckets an article by apparent impact.
type SeverityLevel string

const (
	SeverityCritical SeverityLevel = "critical"
	SeverityHigh     SeverityLevel = "high"
	SeverityMedium   SeverityLevel = "medium"
	SeverityLow      SeverityLevel = "low"
)

// Rank orders severities for sorting: critical > high > medium > low.
func (s SeverityLevel) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

// CIATag is one dimension of the CIA+NR security-impact taxonomy.
type CIATag string

const (
	TagConfidentiality CIATag = "confidentiality"
	TagIntegrity       CIATag = "integrity"
	TagAvailability    CIATag = "availability"
	TagNonRepudiation  CIATag = "non-repudiation"
)

// IOCSet holds indicators of compromise found in article text.
// Each category is capped at 10 entries to bound payload size.
type IOCSet struct {
	IPs     []string
	Domains []string
	Hashes  []string
}

// Empty reports whether no indicator of any category was found.
func (s IOCSet) Empty() bool {
	return len(s.IPs) == 0 && len(s.Domains) == 0 && len(s.Hashes) == 0
}

// Metadata is the structured threat-intel view of an article. RelevanceScore
// is a pure function of the other fields; once Processed is true the whole
// record is frozen and re-enrichment is a no-op.
type Metadata struct {
	CVEs                  []string
	CVSSScore             *float64
	MITREAttackTechniques []string
	ThreatActors          []string
	AffectedProducts      []string
	PatchAvailable        bool
	IOCs                  IOCSet
	IsOfficialSource      bool
	RegulatoryKeywords    []string
	SeverityLevel         SeverityLevel
	CIATags               []CIATag
	DaysSincePublished    int
	RelevanceScore        int
	Processed             bool
}

// GateCategory classifies the pre-summarization gate outcome.
type GateCategory string

const (
	GateTechnical GateCategory = "technical"
	GateBusiness  GateCategory = "business"
	GateBlocked   GateCategory = "blocked"
	GateNoMatch   GateCategory = "no_match"
)

// FilterDecision is the gate verdict for a single article. Computed right
// before the summarization call and never persisted.
type FilterDecision struct {
	Process        bool
	Category       GateCategory
	MatchedKeyword string
}

// FilterConfig narrows an article collection; every set option is an
// independent AND-ed predicate, zero values impose no constraint.
type FilterConfig struct {
	OnlyWithCVE         bool
	MinCVSS             float64
	OnlyWithPatch       bool
	OnlyWithIOCs        bool
	OnlyOfficialSources bool
	OnlyRegulatory      bool
	SeverityLevel       string // "", "all", or a SeverityLevel value
	MinRelevanceScore   int
	MaxDaysOld          *int
}
