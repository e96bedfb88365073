package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// SourceCategory groups feed sources by the kind of outlet they are.
type SourceCategory string

const (
	SourceGeneral      SourceCategory = "general"
	SourceCorporate    SourceCategory = "corporate"
	SourceIntelligence SourceCategory = "intelligence"
	SourceBlog         SourceCategory = "blog"
)

// SummaryOrigin records which path produced an article summary.
type SummaryOrigin string

const (
	SummaryAI         SummaryOrigin = "ai"
	SummaryExtractive SummaryOrigin = "extractive"
)

// Article is a core entity describing a single news item fetched from a feed.
// Identity derives from a normalized hash of the link; the fetched fields are
// immutable, enrichment only attaches Metadata and a Summary.
type Article struct {
	ID             string
	Title          string
	Description    string
	Link           string
	PubDate        time.Time
	SourceName     string
	SourceColor    string
	SourceCategory SourceCategory
	Thumbnail      string
	Author         string
	Official       bool

	Summary       string
	SummaryOrigin SummaryOrigin
	Metadata      Metadata
}

// LinkID derives the stable article identity from its link.
func LinkID(link string) string {
	normalized := strings.TrimRight(strings.TrimSpace(strings.ToLower(link)), "/")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// Text returns the title and description joined for keyword analysis.
func (a Article) Text() string {
	return strings.TrimSpace(a.Title + " " + a.Description)
}
