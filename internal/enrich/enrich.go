// Package enrich attaches threat-intel metadata to fetched articles.
package enrich

import (
	"time"

	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/intel"
)

// Enrich populates article.Metadata and returns the enriched copy. Once
// Metadata.Processed is true the article is returned unchanged, so repeated
// enrichment is a no-op.
//
// Extraction runs in two tiers as a latency/cost optimization: the cheap
// pass (CVE, CVSS, severity, CIA tags, patch/regulatory flags) always runs;
// the longer vocabulary scans (MITRE techniques, threat actors, affected
// products, IOCs) only run when the cheap pass found a CVE or classified
// severity as high or critical. Articles below that bar get sparser
// metadata.
//
// DaysSincePublished is computed against the supplied now and therefore
// reflects the time of first enrichment; callers needing live recency must
// recompute it separately.
func Enrich(article domain.Article, now time.Time) domain.Article {
	if article.Metadata.Processed {
		return article
	}

	text := article.Text()
	m := domain.Metadata{}

	m.CVEs = intel.ExtractCVEs(text)
	if score, ok := intel.ExtractCVSS(text); ok {
		m.CVSSScore = &score
	}
	m.SeverityLevel = intel.ClassifySeverity(text, m.CVSSScore)
	m.CIATags = intel.ClassifyCIA(text)
	m.PatchAvailable = intel.HasPatchSignal(text)
	m.RegulatoryKeywords = intel.ExtractRegulatoryKeywords(text)
	m.IsOfficialSource = article.Official
	m.DaysSincePublished = daysSince(article.PubDate, now)

	if len(m.CVEs) > 0 || m.SeverityLevel == domain.SeverityHigh || m.SeverityLevel == domain.SeverityCritical {
		m.MITREAttackTechniques = intel.ExtractMITRETechniques(text)
		m.ThreatActors = intel.ExtractThreatActors(text)
		m.AffectedProducts = intel.ExtractAffectedProducts(text)
		m.IOCs.IPs, m.IOCs.Domains, m.IOCs.Hashes = intel.ExtractIOCs(text)
	}

	m.RelevanceScore = intel.RelevanceScore(m)
	m.Processed = true

	article.Metadata = m
	return article
}

func daysSince(pubDate, now time.Time) int {
	if pubDate.IsZero() || now.Before(pubDate) {
		return 0
	}
	return int(now.Sub(pubDate).Hours() / 24)
}
