package intel

import (
	"testing"

	"SecNewsScanner/internal/domain"
)

func TestRelevanceScoreWeights(t *testing.T) {
	t.Parallel()

	cvss95 := 9.5
	cvss79 := 7.9

	cases := []struct {
		name string
		m    domain.Metadata
		want int
	}{
		{"empty metadata", domain.Metadata{SeverityLevel: domain.SeverityLow}, 0},
		{
			"cve plus critical cvss",
			domain.Metadata{
				CVEs:          []string{"CVE-2024-0001"},
				CVSSScore:     &cvss95,
				SeverityLevel: domain.SeverityCritical,
			},
			60, // 30 + 20 + 10
		},
		{
			"cvss below high threshold",
			domain.Metadata{CVSSScore: &cvss79, SeverityLevel: domain.SeverityLow},
			0,
		},
		{
			"high severity adds five",
			domain.Metadata{SeverityLevel: domain.SeverityHigh},
			5,
		},
		{
			"actor product patch official",
			domain.Metadata{
				ThreatActors:     []string{"lockbit"},
				AffectedProducts: []string{"fortinet"},
				PatchAvailable:   true,
				IsOfficialSource: true,
				SeverityLevel:    domain.SeverityLow,
			},
			50, // 15 + 15 + 10 + 10
		},
		{
			"mitre ioc regulatory",
			domain.Metadata{
				MITREAttackTechniques: []string{"T1078"},
				IOCs:                  domain.IOCSet{IPs: []string{"10.0.0.1"}},
				RegulatoryKeywords:    []string{"gdpr"},
				SeverityLevel:         domain.SeverityLow,
			},
			20, // 10 + 5 + 5
		},
	}

	for _, tc := range cases {
		if got := RelevanceScore(tc.m); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestRelevanceScoreClampedToHundred(t *testing.T) {
	t.Parallel()

	cvss98 := 9.8
	m := domain.Metadata{
		CVEs:                  []string{"CVE-2024-0001"},
		CVSSScore:             &cvss98,
		ThreatActors:          []string{"lockbit"},
		AffectedProducts:      []string{"vmware"},
		PatchAvailable:        true,
		IsOfficialSource:      true,
		MITREAttackTechniques: []string{"T1486"},
		IOCs:                  domain.IOCSet{Hashes: []string{"deadbeef"}},
		RegulatoryKeywords:    []string{"nis2"},
		SeverityLevel:         domain.SeverityCritical,
	}

	// Raw sum is 130; stored value is clamped, not normalized.
	if got := RelevanceScore(m); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestRelevanceScoreBounded(t *testing.T) {
	t.Parallel()

	severities := []domain.SeverityLevel{
		domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical,
	}
	for _, sev := range severities {
		for _, withCVE := range []bool{false, true} {
			m := domain.Metadata{SeverityLevel: sev}
			if withCVE {
				m.CVEs = []string{"CVE-2024-1"}
			}
			got := RelevanceScore(m)
			if got < 0 || got > 100 {
				t.Fatalf("score %d out of [0,100] for %s cve=%v", got, sev, withCVE)
			}
		}
	}
}

func TestRelevanceScoreDeterministic(t *testing.T) {
	t.Parallel()

	cvss := 8.8
	m := domain.Metadata{
		CVEs:          []string{"CVE-2024-2"},
		CVSSScore:     &cvss,
		SeverityLevel: domain.SeverityHigh,
	}
	first := RelevanceScore(m)
	for i := 0; i < 5; i++ {
		if got := RelevanceScore(m); got != first {
			t.Fatalf("score changed between calls: %d vs %d", got, first)
		}
	}
}
