// Package api exposes the enriched article collection over HTTP. Query
// parameters map onto the display filter config; results are filtered and
// priority-sorted before encoding.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"SecNewsScanner/internal/domain"
	"SecNewsScanner/internal/feedview"
	"SecNewsScanner/internal/ports"
)

// Server serves read-only article queries.
type Server struct {
	repository ports.ArticleRepository
	logger     *slog.Logger
}

// NewServer wires the repository behind the HTTP handlers.
func NewServer(repository ports.ArticleRepository, logger *slog.Logger) *Server {
	return &Server{repository: repository, logger: logger}
}

// Router builds the chi router with middleware and routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/articles", s.handleListArticles)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	if s.repository == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "repository not initialized"})
		return
	}

	listQuery, filterCfg, err := parseQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	articles, err := s.repository.List(r.Context(), listQuery)
	if err != nil {
		s.logger.Error("list articles failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "query failed"})
		return
	}

	articles = feedview.Filter(articles, filterCfg)
	feedview.Sort(articles)

	writeJSON(w, http.StatusOK, map[string]any{
		"articles": toDTOs(articles),
		"count":    len(articles),
	})
}

// parseQuery maps request parameters onto the repository query (pushed to
// SQL) and the in-memory filter config (the finer-grained predicates).
func parseQuery(r *http.Request) (ports.ListQuery, domain.FilterConfig, error) {
	q := r.URL.Query()
	listQuery := ports.ListQuery{}
	filterCfg := domain.FilterConfig{}

	if v := q.Get("min_relevance"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return listQuery, filterCfg, errInvalidParam("min_relevance")
		}
		listQuery.MinRelevanceScore = n
		filterCfg.MinRelevanceScore = n
	}
	if v := q.Get("severity"); v != "" {
		listQuery.SeverityLevel = v
		filterCfg.SeverityLevel = v
	}
	if q.Get("official") == "true" {
		listQuery.OfficialOnly = true
		filterCfg.OnlyOfficialSources = true
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return listQuery, filterCfg, errInvalidParam("limit")
		}
		listQuery.Limit = n
	}

	filterCfg.OnlyWithCVE = q.Get("with_cve") == "true"
	filterCfg.OnlyWithPatch = q.Get("with_patch") == "true"
	filterCfg.OnlyWithIOCs = q.Get("with_iocs") == "true"
	filterCfg.OnlyRegulatory = q.Get("regulatory") == "true"

	if v := q.Get("min_cvss"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return listQuery, filterCfg, errInvalidParam("min_cvss")
		}
		filterCfg.MinCVSS = f
	}
	if v := q.Get("max_days_old"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return listQuery, filterCfg, errInvalidParam("max_days_old")
		}
		filterCfg.MaxDaysOld = &n
		listQuery.Since = time.Now().UTC().AddDate(0, 0, -n)
	}

	return listQuery, filterCfg, nil
}

type paramError string

func (e paramError) Error() string { return "invalid parameter: " + string(e) }

func errInvalidParam(name string) error { return paramError(name) }

type articleDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Link           string    `json:"link"`
	PubDate        time.Time `json:"pub_date"`
	SourceName     string    `json:"source_name"`
	SourceColor    string    `json:"source_color"`
	SourceCategory string    `json:"source_category"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	Author         string    `json:"author,omitempty"`
	Summary        string    `json:"summary"`
	SummaryOrigin  string    `json:"summary_origin"`

	CVEs               []string `json:"cves,omitempty"`
	CVSSScore          *float64 `json:"cvss_score,omitempty"`
	MITRETechniques    []string `json:"mitre_techniques,omitempty"`
	ThreatActors       []string `json:"threat_actors,omitempty"`
	AffectedProducts   []string `json:"affected_products,omitempty"`
	PatchAvailable     bool     `json:"patch_available"`
	IOCIPs             []string `json:"ioc_ips,omitempty"`
	IOCDomains         []string `json:"ioc_domains,omitempty"`
	IOCHashes          []string `json:"ioc_hashes,omitempty"`
	OfficialSource     bool     `json:"official_source"`
	RegulatoryKeywords []string `json:"regulatory_keywords,omitempty"`
	SeverityLevel      string   `json:"severity_level"`
	CIATags            []string `json:"cia_tags,omitempty"`
	DaysSincePublished int      `json:"days_since_published"`
	RelevanceScore     int      `json:"relevance_score"`
}

func toDTOs(articles []domain.Article) []articleDTO {
	out := make([]articleDTO, 0, len(articles))
	for _, a := range articles {
		m := a.Metadata
		tags := make([]string, len(m.CIATags))
		for i, t := range m.CIATags {
			tags[i] = string(t)
		}
		out = append(out, articleDTO{
			ID:             a.ID,
			Title:          a.Title,
			Description:    a.Description,
			Link:           a.Link,
			PubDate:        a.PubDate,
			SourceName:     a.SourceName,
			SourceColor:    a.SourceColor,
			SourceCategory: string(a.SourceCategory),
			Thumbnail:      a.Thumbnail,
			Author:         a.Author,
			Summary:        a.Summary,
			SummaryOrigin:  string(a.SummaryOrigin),

			CVEs:               m.CVEs,
			CVSSScore:          m.CVSSScore,
			MITRETechniques:    m.MITREAttackTechniques,
			ThreatActors:       m.ThreatActors,
			AffectedProducts:   m.AffectedProducts,
			PatchAvailable:     m.PatchAvailable,
			IOCIPs:             m.IOCs.IPs,
			IOCDomains:         m.IOCs.Domains,
			IOCHashes:          m.IOCs.Hashes,
			OfficialSource:     m.IsOfficialSource,
			RegulatoryKeywords: m.RegulatoryKeywords,
			SeverityLevel:      string(m.SeverityLevel),
			CIATags:            tags,
			DaysSincePublished: m.DaysSincePublished,
			RelevanceScore:     m.RelevanceScore,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
