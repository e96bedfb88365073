// Package intel turns raw article text into structured threat-intel
// metadata: CVE/CVSS extraction, IOC harvesting, CIA+NR classification and
// CISO relevance scoring. Everything here is a pure function over text;
// extractors never fail, absence of a match yields an empty result.
package intel

import (
	"regexp"
	"strconv"
	"strings"
)

// maxIOCsPerCategory bounds each IOC list to keep persisted payloads small.
const maxIOCsPerCategory = 10

var (
	cveExpr    = regexp.MustCompile(`(?i)CVE-\d{4}-\d{4,}`)
	cvssExpr   = regexp.MustCompile(`(?i)CVSS[:\s]+(\d+\.?\d*)`)
	mitreExpr  = regexp.MustCompile(`\bT\d{4}(?:\.\d{3})?\b`)
	ipv4Expr   = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)
	domainExpr = regexp.MustCompile(`\b[a-z0-9][a-z0-9-]{1,62}(?:\.[a-z0-9][a-z0-9-]{0,62})*\.(?:com|net|org|io|ru|cn|xyz|top|info|biz|onion)\b`)
	hashExpr   = regexp.MustCompile(`\b(?:[a-fA-F0-9]{64}|[a-fA-F0-9]{40}|[a-fA-F0-9]{32})\b`)
	patchExpr  = regexp.MustCompile(`(?i)\b(patch(?:ed|es)?|hotfix|fix(?:ed|es)?|update available|security update|mitigation|workaround|parche|parcheado|actualizaci[oó]n|corregid[oa]|soluci[oó]n)\b`)
)

// ExtractCVEs returns deduplicated, upper-cased CVE identifiers in order of
// first appearance.
func ExtractCVEs(text string) []string {
	matches := cveExpr.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		id := strings.ToUpper(m)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ExtractCVSS returns the highest CVSS score mentioned in the text. Values
// outside [0,10] are untrusted and discarded rather than clamped; ok is
// false when no valid score remains.
func ExtractCVSS(text string) (float64, bool) {
	matches := cvssExpr.FindAllStringSubmatch(text, -1)
	var best float64
	found := false
	for _, m := range matches {
		score, err := strconv.ParseFloat(m[1], 64)
		if err != nil || score < 0 || score > 10 {
			continue
		}
		if !found || score > best {
			best = score
			found = true
		}
	}
	return best, found
}

// ExtractMITRETechniques returns deduplicated ATT&CK technique IDs (T1078,
// T1059.001, ...) in order of first appearance.
func ExtractMITRETechniques(text string) []string {
	matches := mitreExpr.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// ExtractThreatActors returns the vocabulary subset present in the text.
// Substring containment, not token matching: "conti" inside an unrelated
// word is a known false positive accepted for simplicity.
func ExtractThreatActors(text string) []string {
	return matchVocabulary(text, threatActors)
}

// ExtractAffectedProducts returns the product vocabulary subset present.
func ExtractAffectedProducts(text string) []string {
	return matchVocabulary(text, affectedProducts)
}

// ExtractRegulatoryKeywords returns the regulatory vocabulary subset present.
func ExtractRegulatoryKeywords(text string) []string {
	return matchVocabulary(text, regulatoryKeywords)
}

// HasPatchSignal reports whether the text mentions patch or fix availability
// (English and Spanish variants).
func HasPatchSignal(text string) bool {
	return patchExpr.MatchString(text)
}

// ExtractIOCs harvests IPv4 addresses, domain-like tokens and MD5/SHA1/SHA256
// digests, each category deduplicated and capped at 10.
func ExtractIOCs(text string) (ips, domains, hashes []string) {
	lower := strings.ToLower(text)
	ips = capped(dedupe(ipv4Expr.FindAllString(text, -1)))
	domains = capped(dedupe(domainExpr.FindAllString(lower, -1)))
	hashes = capped(dedupe(hashExpr.FindAllString(lower, -1)))
	return ips, domains, hashes
}

func matchVocabulary(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, term := range vocabulary {
		if strings.Contains(lower, term) {
			out = append(out, term)
		}
	}
	return out
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func capped(values []string) []string {
	if len(values) > maxIOCsPerCategory {
		return values[:maxIOCsPerCategory]
	}
	return values
}
