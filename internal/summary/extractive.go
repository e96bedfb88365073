package summary

import (
	"strings"

	"SecNewsScanner/internal/domain"
)

const (
	extractiveMaxSentences = 3
	extractiveMaxLen       = 200
)

// ExtractiveSummary builds a local summary from the first three sentences of
// the description, capped at 200 characters. An empty description degrades
// to the title so the summary field is never left blank.
func ExtractiveSummary(article domain.Article) string {
	description := strings.TrimSpace(article.Description)
	if description == "" {
		return truncate(strings.TrimSpace(article.Title), extractiveMaxLen)
	}

	sentences := splitSentences(description)
	if len(sentences) > extractiveMaxSentences {
		sentences = sentences[:extractiveMaxSentences]
	}

	return truncate(strings.Join(sentences, " "), extractiveMaxLen)
}

// splitSentences cuts text at sentence-ending punctuation followed by a
// space. Good enough for news-feed prose; abbreviations may oversplit.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			if i+1 < len(runes) && runes[i+1] != ' ' {
				continue
			}
			sentence := strings.TrimSpace(string(runes[start : i+1]))
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 1
		}
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}
