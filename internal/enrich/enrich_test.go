package enrich

import (
	"reflect"
	"testing"
	"time"

	"SecNewsScanner/internal/domain"
)

var now = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestEnrichFullPass(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		ID:          "a1",
		Title:       "CVE-2024-12345 critical vulnerability, CVSS: 9.8, actively exploited",
		Description: "LockBit deployed via T1078 against Fortinet devices. Patch available. C2 at 45.33.12.9.",
		PubDate:     now.AddDate(0, 0, -3),
		Official:    true,
	}

	enriched := Enrich(article, now)
	m := enriched.Metadata

	if !m.Processed {
		t.Fatalf("expected processed flag set")
	}
	if len(m.CVEs) != 1 || m.CVEs[0] != "CVE-2024-12345" {
		t.Fatalf("unexpected cves: %v", m.CVEs)
	}
	if m.CVSSScore == nil || *m.CVSSScore != 9.8 {
		t.Fatalf("unexpected cvss: %v", m.CVSSScore)
	}
	if m.SeverityLevel != domain.SeverityCritical {
		t.Fatalf("expected critical severity, got %s", m.SeverityLevel)
	}
	if len(m.ThreatActors) == 0 {
		t.Fatalf("expected threat actors from expensive pass")
	}
	if len(m.MITREAttackTechniques) != 1 || m.MITREAttackTechniques[0] != "T1078" {
		t.Fatalf("unexpected techniques: %v", m.MITREAttackTechniques)
	}
	if len(m.IOCs.IPs) != 1 {
		t.Fatalf("expected one IOC ip, got %v", m.IOCs.IPs)
	}
	if !m.PatchAvailable {
		t.Fatalf("expected patch signal")
	}
	if !m.IsOfficialSource {
		t.Fatalf("official flag must carry over from the source")
	}
	if m.DaysSincePublished != 3 {
		t.Fatalf("expected 3 days since published, got %d", m.DaysSincePublished)
	}
	if m.RelevanceScore <= 0 || m.RelevanceScore > 100 {
		t.Fatalf("relevance score out of range: %d", m.RelevanceScore)
	}
}

func TestEnrichIsIdempotent(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		ID:          "a2",
		Title:       "CVE-2024-9999 exploited in the wild",
		Description: "Details emerging.",
		PubDate:     now.AddDate(0, 0, -1),
	}

	first := Enrich(article, now)
	// Re-enriching much later must not change anything, including the
	// first-enrichment DaysSincePublished.
	second := Enrich(first, now.AddDate(0, 1, 0))

	if !reflect.DeepEqual(first.Metadata, second.Metadata) {
		t.Fatalf("metadata changed on re-enrichment:\nfirst:  %+v\nsecond: %+v", first.Metadata, second.Metadata)
	}
}

func TestEnrichSkipsExpensivePassForQuietArticles(t *testing.T) {
	t.Parallel()

	article := domain.Article{
		ID:          "a3",
		Title:       "Vendor schedules annual user conference",
		Description: "Registration for the Fortinet event opens with T1078 trivia and 10.1.2.3 demo labs.",
		PubDate:     now.AddDate(0, 0, -2),
	}

	enriched := Enrich(article, now)
	m := enriched.Metadata

	if !m.Processed {
		t.Fatalf("expected processed flag set")
	}
	if m.SeverityLevel != domain.SeverityLow {
		t.Fatalf("expected low severity, got %s", m.SeverityLevel)
	}
	// No CVE and low severity: the expensive extractions are skipped even
	// though the text would have matched them.
	if len(m.ThreatActors) != 0 || len(m.AffectedProducts) != 0 {
		t.Fatalf("expensive pass should be skipped: actors=%v products=%v", m.ThreatActors, m.AffectedProducts)
	}
	if len(m.MITREAttackTechniques) != 0 || !m.IOCs.Empty() {
		t.Fatalf("expensive pass should be skipped: mitre=%v iocs=%+v", m.MITREAttackTechniques, m.IOCs)
	}
}

func TestEnrichEmptyDescription(t *testing.T) {
	t.Parallel()

	article := domain.Article{ID: "a4", Title: "Quiet day", PubDate: now}
	enriched := Enrich(article, now)

	m := enriched.Metadata
	if !m.Processed {
		t.Fatalf("expected processed flag set")
	}
	if len(m.CVEs) != 0 || m.CVSSScore != nil {
		t.Fatalf("empty input must yield empty extractions")
	}
	if len(m.CIATags) != 1 || m.CIATags[0] != domain.TagIntegrity {
		t.Fatalf("expected integrity fallback tag, got %v", m.CIATags)
	}
	if m.DaysSincePublished != 0 {
		t.Fatalf("expected 0 days, got %d", m.DaysSincePublished)
	}
}
