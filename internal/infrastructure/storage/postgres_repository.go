package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/ports"
)

// PostgresRepository persists enriched articles into Postgres. Writes are
// insert-or-merge upserts keyed by the link hash, so re-running a pipeline
// never clobbers unrelated fields and an AI summary is never downgraded to
// an extractive one.
type PostgresRepository struct {
	db *sql.DB
}

var _ ports.ArticleRepository = (*PostgresRepository)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// AlreadyProcessed returns a map with IDs that already exist in storage.
func (r *PostgresRepository) AlreadyProcessed(ctx context.Context, ids []string) (map[string]bool, error) {
	if r.db == nil || len(ids) == 0 {
		return map[string]bool{}, nil
	}

	query, args, err := psql.Select("id").From("articles").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build processed query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query processed: %w", err)
	}
	defer rows.Close()

	result := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		result[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

// SaveEnriched upserts the enriched article snapshot.
func (r *PostgresRepository) SaveEnriched(ctx context.Context, a domain.Article) error {
	if r.db == nil {
		return nil
	}

	m := a.Metadata
	query, args, err := psql.Insert("articles").
		Columns(
			"id", "title", "description", "link", "pub_date",
			"source_name", "source_color", "source_category", "thumbnail", "author",
			"summary", "summary_origin",
			"cves", "cvss_score", "mitre_techniques", "threat_actors", "affected_products",
			"patch_available", "ioc_ips", "ioc_domains", "ioc_hashes",
			"official_source", "regulatory_keywords", "severity_level", "cia_tags",
			"days_since_published", "relevance_score", "processed",
		).
		Values(
			a.ID, a.Title, a.Description, a.Link, a.PubDate,
			a.SourceName, a.SourceColor, string(a.SourceCategory), a.Thumbnail, a.Author,
			a.Summary, string(a.SummaryOrigin),
			pq.StringArray(m.CVEs), m.CVSSScore, pq.StringArray(m.MITREAttackTechniques),
			pq.StringArray(m.ThreatActors), pq.StringArray(m.AffectedProducts),
			m.PatchAvailable, pq.StringArray(m.IOCs.IPs), pq.StringArray(m.IOCs.Domains),
			pq.StringArray(m.IOCs.Hashes),
			m.IsOfficialSource, pq.StringArray(m.RegulatoryKeywords), string(m.SeverityLevel),
			pq.StringArray(tagsToStrings(m.CIATags)),
			m.DaysSincePublished, m.RelevanceScore, m.Processed,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
            summary = CASE
                WHEN articles.summary_origin = 'ai' AND EXCLUDED.summary_origin = 'extractive'
                THEN articles.summary ELSE EXCLUDED.summary END,
            summary_origin = CASE
                WHEN articles.summary_origin = 'ai' AND EXCLUDED.summary_origin = 'extractive'
                THEN articles.summary_origin ELSE EXCLUDED.summary_origin END,
            cves = EXCLUDED.cves,
            cvss_score = EXCLUDED.cvss_score,
            mitre_techniques = EXCLUDED.mitre_techniques,
            threat_actors = EXCLUDED.threat_actors,
            affected_products = EXCLUDED.affected_products,
            patch_available = EXCLUDED.patch_available,
            ioc_ips = EXCLUDED.ioc_ips,
            ioc_domains = EXCLUDED.ioc_domains,
            ioc_hashes = EXCLUDED.ioc_hashes,
            regulatory_keywords = EXCLUDED.regulatory_keywords,
            severity_level = EXCLUDED.severity_level,
            cia_tags = EXCLUDED.cia_tags,
            relevance_score = EXCLUDED.relevance_score,
            processed = EXCLUDED.processed,
            updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert article %s: %w", a.ID, err)
	}

	return nil
}

// List reads enriched articles matching the query, newest-relevance first.
func (r *PostgresRepository) List(ctx context.Context, q ports.ListQuery) ([]domain.Article, error) {
	if r.db == nil {
		return nil, nil
	}

	builder := psql.Select(
		"id", "title", "description", "link", "pub_date",
		"source_name", "source_color", "source_category", "thumbnail", "author",
		"summary", "summary_origin",
		"cves", "cvss_score", "mitre_techniques", "threat_actors", "affected_products",
		"patch_available", "ioc_ips", "ioc_domains", "ioc_hashes",
		"official_source", "regulatory_keywords", "severity_level", "cia_tags",
		"days_since_published", "relevance_score", "processed",
	).From("articles")

	if q.MinRelevanceScore > 0 {
		builder = builder.Where(sq.GtOrEq{"relevance_score": q.MinRelevanceScore})
	}
	if q.SeverityLevel != "" && q.SeverityLevel != "all" {
		builder = builder.Where(sq.Eq{"severity_level": q.SeverityLevel})
	}
	if q.OfficialOnly {
		builder = builder.Where(sq.Eq{"official_source": true})
	}
	if !q.Since.IsZero() {
		builder = builder.Where(sq.GtOrEq{"pub_date": q.Since})
	}

	limit := q.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	builder = builder.
		OrderBy("relevance_score DESC", "pub_date DESC").
		Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, nil
}

func scanArticle(rows *sql.Rows) (domain.Article, error) {
	var (
		a                             domain.Article
		sourceCategory, summaryOrigin string
		severity                      string
		cves, mitre, actors, products pq.StringArray
		iocIPs, iocDomains, iocHashes pq.StringArray
		regulatory, ciaTags           pq.StringArray
		cvss                          sql.NullFloat64
	)

	err := rows.Scan(
		&a.ID, &a.Title, &a.Description, &a.Link, &a.PubDate,
		&a.SourceName, &a.SourceColor, &sourceCategory, &a.Thumbnail, &a.Author,
		&a.Summary, &summaryOrigin,
		&cves, &cvss, &mitre, &actors, &products,
		&a.Metadata.PatchAvailable, &iocIPs, &iocDomains, &iocHashes,
		&a.Metadata.IsOfficialSource, &regulatory, &severity, &ciaTags,
		&a.Metadata.DaysSincePublished, &a.Metadata.RelevanceScore, &a.Metadata.Processed,
	)
	if err != nil {
		return domain.Article{}, fmt.Errorf("scan article: %w", err)
	}

	a.SourceCategory = domain.SourceCategory(sourceCategory)
	a.SummaryOrigin = domain.SummaryOrigin(summaryOrigin)
	a.Metadata.CVEs = cves
	if cvss.Valid {
		score := cvss.Float64
		a.Metadata.CVSSScore = &score
	}
	a.Metadata.MITREAttackTechniques = mitre
	a.Metadata.ThreatActors = actors
	a.Metadata.AffectedProducts = products
	a.Metadata.IOCs = domain.IOCSet{IPs: iocIPs, Domains: iocDomains, Hashes: iocHashes}
	a.Metadata.RegulatoryKeywords = regulatory
	a.Metadata.SeverityLevel = domain.SeverityLevel(severity)
	a.Metadata.CIATags = stringsToTags(ciaTags)
	a.Official = a.Metadata.IsOfficialSource

	return a, nil
}

func tagsToStrings(tags []domain.CIATag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func stringsToTags(values []string) []domain.CIATag {
	if len(values) == 0 {
		return nil
	}
	out := make([]domain.CIATag, len(values))
	for i, v := range values {
		out[i] = domain.CIATag(v)
	}
	return out
}
