package intel

import (
	"testing"

	"SecNewsScanner/internal/domain"
)

func TestClassifyCIA(t *testing.T) {
	t.Parallel()

	tags := ClassifyCIA("Massive data breach follows a DDoS attack on the provider")
	if len(tags) != 2 {
		t.Fatalf("expected confidentiality and availability, got %v", tags)
	}
	if tags[0] != domain.TagConfidentiality || tags[1] != domain.TagAvailability {
		t.Fatalf("unexpected tag order: %v", tags)
	}
}

func TestClassifyCIADefaultsToIntegrity(t *testing.T) {
	t.Parallel()

	tags := ClassifyCIA("Vendor publishes quarterly research report")
	if len(tags) != 1 || tags[0] != domain.TagIntegrity {
		t.Fatalf("expected integrity fallback, got %v", tags)
	}
}

func TestClassifyCIASpanishKeywords(t *testing.T) {
	t.Parallel()

	tags := ClassifyCIA("Detectada filtración de datos tras una denegación de servicio")
	if len(tags) != 2 {
		t.Fatalf("expected confidentiality and availability, got %v", tags)
	}
}

func TestCIAImpactScores(t *testing.T) {
	t.Parallel()

	scores := CIAImpactScores("Ransomware crew confirms data breach, audit log review ongoing")
	if scores[domain.TagAvailability] != 3 {
		t.Fatalf("ransomware should score availability 3, got %d", scores[domain.TagAvailability])
	}
	if scores[domain.TagConfidentiality] != 3 {
		t.Fatalf("data breach should score confidentiality 3, got %d", scores[domain.TagConfidentiality])
	}
	if scores[domain.TagNonRepudiation] != 2 {
		t.Fatalf("audit log should score non-repudiation 2, got %d", scores[domain.TagNonRepudiation])
	}
	if scores[domain.TagIntegrity] != 0 {
		t.Fatalf("integrity should score 0, got %d", scores[domain.TagIntegrity])
	}
}

func TestCIAImpactScoresTakeHighestTier(t *testing.T) {
	t.Parallel()

	// Both a tier-2 ("outage") and tier-3 ("wiper") availability keyword:
	// the direct tier wins.
	scores := CIAImpactScores("Wiper malware caused a week-long outage")
	if scores[domain.TagAvailability] != 3 {
		t.Fatalf("expected tier-3 score, got %d", scores[domain.TagAvailability])
	}
}

func TestClassifySeverity(t *testing.T) {
	t.Parallel()

	cvss98 := 9.8
	cvss75 := 7.5
	cvss50 := 5.0

	cases := []struct {
		name string
		text string
		cvss *float64
		want domain.SeverityLevel
	}{
		{"critical keyword", "critical vulnerability actively exploited", nil, domain.SeverityCritical},
		{"critical cvss", "a new flaw was disclosed", &cvss98, domain.SeverityCritical},
		{"high keyword", "remote code execution possible", nil, domain.SeverityHigh},
		{"high cvss", "a new flaw was disclosed", &cvss75, domain.SeverityHigh},
		{"medium keyword", "information disclosure issue", nil, domain.SeverityMedium},
		{"medium cvss", "a new flaw was disclosed", &cvss50, domain.SeverityMedium},
		{"default low", "vendor announces conference keynote", nil, domain.SeverityLow},
		{"spanish critical", "fallo crítico bajo explotación activa", nil, domain.SeverityCritical},
	}

	for _, tc := range cases {
		if got := ClassifySeverity(tc.text, tc.cvss); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}
