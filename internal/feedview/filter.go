// Package feedview applies display-side filtering and priority ordering to
// an enriched article collection. The caller owns both the unfiltered
// collection and the filter config; nothing here keeps ambient state.
package feedview

import (
	"sort"

	"SecNewsScanner/internal/domain"
)

// Filter returns the subsequence of articles satisfying every set option in
// cfg, preserving the relative order of survivors. A nil CVSS score fails
// any MinCVSS constraint; it is never coerced to zero.
func Filter(articles []domain.Article, cfg domain.FilterConfig) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if matches(a, cfg) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a domain.Article, cfg domain.FilterConfig) bool {
	m := a.Metadata

	if cfg.OnlyWithCVE && len(m.CVEs) == 0 {
		return false
	}
	if cfg.MinCVSS > 0 {
		if m.CVSSScore == nil || *m.CVSSScore < cfg.MinCVSS {
			return false
		}
	}
	if cfg.OnlyWithPatch && !m.PatchAvailable {
		return false
	}
	if cfg.OnlyWithIOCs && m.IOCs.Empty() {
		return false
	}
	if cfg.OnlyOfficialSources && !m.IsOfficialSource {
		return false
	}
	if cfg.OnlyRegulatory && len(m.RegulatoryKeywords) == 0 {
		return false
	}
	if cfg.SeverityLevel != "" && cfg.SeverityLevel != "all" {
		if string(m.SeverityLevel) != cfg.SeverityLevel {
			return false
		}
	}
	if cfg.MinRelevanceScore > 0 && m.RelevanceScore < cfg.MinRelevanceScore {
		return false
	}
	if cfg.MaxDaysOld != nil && m.DaysSincePublished > *cfg.MaxDaysOld {
		return false
	}
	return true
}

// Sort orders articles by priority: relevance score descending, then
// severity rank descending, then publish date descending. The sort is
// stable so full ties keep their incoming relative order.
func Sort(articles []domain.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		mi, mj := articles[i].Metadata, articles[j].Metadata
		if mi.RelevanceScore != mj.RelevanceScore {
			return mi.RelevanceScore > mj.RelevanceScore
		}
		if ri, rj := mi.SeverityLevel.Rank(), mj.SeverityLevel.Rank(); ri != rj {
			return ri > rj
		}
		return articles[i].PubDate.After(articles[j].PubDate)
	})
}
