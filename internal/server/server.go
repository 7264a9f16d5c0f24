// Package server exposes the pipeline stages over HTTP for the prospecting
// front end. Response envelopes follow the taxonomy in the pipeline: "no
// results" is a populated-but-empty success, and only discovery or
// configuration failures surface as 500s.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ventapel/prospect-cli/internal/discovery"
	"github.com/ventapel/prospect-cli/internal/enrich"
	"github.com/ventapel/prospect-cli/internal/intel"
	"github.com/ventapel/prospect-cli/internal/model"
	"github.com/ventapel/prospect-cli/internal/pipeline"
	"github.com/ventapel/prospect-cli/internal/scoring"
)

// Server holds the pipeline stages. Any stage may be nil when its provider
// credential is not configured; its endpoint then reports a configuration
// error instead of failing at startup.
type Server struct {
	Engine    *discovery.Engine
	Enricher  *enrich.Enricher
	Extractor *intel.Extractor
	Scorer    scoring.Scorer
	Pipeline  *pipeline.Pipeline
}

// Router builds the chi router with permissive CORS for the front end.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/api/search", s.handleSearch)
	r.Post("/api/enrich", s.handleEnrich)
	r.Post("/api/intel", s.handleIntel)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/run", s.handleRun)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type searchRequest struct {
	Filters discovery.SearchFilters `json:"filters"`
	Page    int                     `json:"page"`
}

type searchResponse struct {
	Success bool `json:"success"`
	*discovery.SearchResult
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if s.Engine == nil {
		writeError(w, http.StatusInternalServerError, "Apollo API key not configured")
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Page > 0 {
		req.Filters.Page = req.Page
	}

	result, err := s.Engine.Search(r.Context(), req.Filters)
	if err != nil {
		zap.L().Error("search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to fetch companies")
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Success: true, SearchResult: result})
}

type enrichRequest struct {
	Contact *struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Title       string `json:"title"`
		Seniority   string `json:"seniority"`
		LinkedinURL string `json:"linkedin_url"`
		Email       string `json:"email"`
		EmailStatus string `json:"email_status"`
		Company     string `json:"company"`
	} `json:"contact"`
}

func (s *Server) handleEnrich(w http.ResponseWriter, r *http.Request) {
	if s.Enricher == nil {
		writeError(w, http.StatusInternalServerError, "Lusha API key not configured")
		return
	}

	var req enrichRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Contact == nil {
		writeError(w, http.StatusBadRequest, "Contact data required")
		return
	}

	contact := model.Contact{
		ID:          req.Contact.ID,
		Name:        req.Contact.Name,
		Title:       req.Contact.Title,
		Seniority:   req.Contact.Seniority,
		LinkedinURL: req.Contact.LinkedinURL,
		EmailStatus: model.EmailStatus(req.Contact.EmailStatus),
	}
	if req.Contact.Email != "" {
		contact.Emails = []string{req.Contact.Email}
	}
	contact.NeedsEnrichment = len(contact.Emails) == 0 || contact.EmailStatus != model.EmailVerified

	result, err := s.Enricher.Enrich(r.Context(), contact, req.Contact.Company)
	if err != nil {
		zap.L().Error("enrichment failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success":           false,
			"error":             "Lusha enrichment failed",
			"lusha_credit_used": false,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type intelRequest struct {
	Company *companyPayload `json:"company"`
}

type companyPayload struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Industry      string  `json:"industry"`
	WebsiteURL    string  `json:"website_url"`
	PrimaryDomain string  `json:"primary_domain"`
	EmployeeCount int     `json:"estimated_num_employees"`
	AnnualRevenue float64 `json:"annual_revenue"`
}

func (p *companyPayload) toModel() model.Company {
	return model.Company{
		ID:            p.ID,
		Name:          p.Name,
		City:          p.City,
		Industry:      p.Industry,
		WebsiteURL:    p.WebsiteURL,
		PrimaryDomain: p.PrimaryDomain,
		EmployeeCount: p.EmployeeCount,
		AnnualRevenue: p.AnnualRevenue,
	}
}

type intelResponse struct {
	Success     bool   `json:"success"`
	Intel       bool   `json:"intel"`
	CompanyName string `json:"company_name,omitempty"`
	Message     string `json:"message,omitempty"`
	*model.SignalBundle
}

func (s *Server) handleIntel(w http.ResponseWriter, r *http.Request) {
	// Intel is best-effort: configuration gaps answer 200 so the front end
	// can continue without intelligence.
	if s.Extractor == nil {
		writeJSON(w, http.StatusOK, intelResponse{Message: "Serper API key not configured"})
		return
	}

	var req intelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Company == nil || req.Company.Name == "" {
		writeJSON(w, http.StatusOK, intelResponse{Message: "Company name is required"})
		return
	}

	bundle := s.Extractor.Gather(r.Context(), req.Company.toModel())
	writeJSON(w, http.StatusOK, intelResponse{
		Success:      true,
		Intel:        true,
		CompanyName:  req.Company.Name,
		SignalBundle: bundle,
	})
}

type analyzeRequest struct {
	Company *companyPayload `json:"company"`
	Contact *struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Title     string `json:"title"`
		Seniority string `json:"seniority"`
		Email     string `json:"email"`
	} `json:"contact"`
	Intel *model.SignalBundle `json:"intel"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var company model.Company
	if req.Company != nil {
		company = req.Company.toModel()
	}
	var contact model.Contact
	if req.Contact != nil {
		contact = model.Contact{
			ID:        req.Contact.ID,
			Name:      req.Contact.Name,
			Title:     req.Contact.Title,
			Seniority: req.Contact.Seniority,
		}
		if req.Contact.Email != "" {
			contact.Emails = []string{req.Contact.Email}
		}
	}

	// The waterfall scorer is total: any model failure falls back to the
	// deterministic path, so this endpoint always returns a full score.
	score, err := s.Scorer.Score(r.Context(), company, contact, req.Intel)
	if err != nil {
		zap.L().Error("scoring failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to score lead")
		return
	}

	writeJSON(w, http.StatusOK, score)
}

type runRequest struct {
	Filters discovery.SearchFilters `json:"filters"`
	Options pipeline.Options        `json:"options"`
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if s.Pipeline == nil {
		writeError(w, http.StatusInternalServerError, "pipeline not configured")
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.Pipeline.Run(r.Context(), req.Filters, req.Options)
	if err != nil {
		zap.L().Error("pipeline run failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "pipeline run failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"run":     result,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
