// Package chi exposes the discovery HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
	domsearch "github.com/saintgiong/discovery/internal/domain/search"
	healthuc "github.com/saintgiong/discovery/internal/usecase/health"
	profileuc "github.com/saintgiong/discovery/internal/usecase/profile"
	searchuc "github.com/saintgiong/discovery/internal/usecase/search"
	syncuc "github.com/saintgiong/discovery/internal/usecase/syncer"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server is the HTTP API over the profile, search, sync and health services.
type Server struct {
	profiles      *profileuc.Service
	candidates    *searchuc.Service
	sync          *syncuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. sync can be nil when the manual
// re-sync endpoint is disabled.
func NewServer(
	profiles *profileuc.Service,
	candidates *searchuc.Service,
	sync *syncuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		profiles:   profiles,
		candidates: candidates,
		sync:       sync,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrCandidateNotFound, http.StatusNotFound, codeCandidateNotFound),
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, codeProfileNotFound),
		sentinelHandler(domain.ErrIndexUnavailable, http.StatusServiceUnavailable, codeIndexUnavailable),
		sentinelHandler(domain.ErrUpstreamUnavailable, http.StatusBadGateway, codeUpstreamUnavailable),
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", s.CreateProfile)
			r.Get("/{id}", s.GetProfile)
			r.Put("/{id}", s.UpdateProfile)
			r.Delete("/{id}", s.DeleteProfile)
		})
		r.Get("/companies/{companyId}/profiles", s.ListCompanyProfiles)

		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", s.SearchCandidates)
			r.Get("/{id}", s.GetCandidate)
		})

		if s.sync != nil {
			r.Post("/sync", s.TriggerSync)
		}
	})
}

// CreateProfile handles POST /api/v1/profiles.
func (s *Server) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.profiles.Create(r.Context(), req.toInput())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/profiles/%s", p.ID()))
	writeJSON(w, http.StatusCreated, profileToResponse(p))
}

// GetProfile handles GET /api/v1/profiles/{id}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := s.profiles.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(p))
}

// UpdateProfile handles PUT /api/v1/profiles/{id}.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.profiles.Update(r.Context(), id, req.toInput())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profileToResponse(p))
}

// DeleteProfile handles DELETE /api/v1/profiles/{id}.
func (s *Server) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := s.profiles.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCompanyProfiles handles GET /api/v1/companies/{companyId}/profiles.
func (s *Server) ListCompanyProfiles(w http.ResponseWriter, r *http.Request) {
	companyID, ok := pathID(w, r, "companyId")
	if !ok {
		return
	}

	profiles, err := s.profiles.ListByCompany(r.Context(), companyID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		items[i] = profileToResponse(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// SearchCandidates handles GET /api/v1/candidates.
func (s *Server) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	req, page, err := searchRequestFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	result, err := s.candidates.Search(r.Context(), req, page)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]candidateResponse, len(result.Candidates))
	for i := range result.Candidates {
		items[i] = candidateToResponse(&result.Candidates[i])
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Items: items,
		Total: result.Total,
		Page:  result.Page.Number,
		Size:  result.Page.Size,
	})
}

// GetCandidate handles GET /api/v1/candidates/{id}.
func (s *Server) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	doc, err := s.candidates.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidateToResponse(&doc))
}

// TriggerSync handles POST /api/v1/sync: a synchronous full re-sync pass.
func (s *Server) TriggerSync(w http.ResponseWriter, r *http.Request) {
	stats, err := s.sync.Sync(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, syncToResponse(stats))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// searchRequestFromQuery maps URL query parameters onto a search request.
// Multi-valued parameters accept comma-separated lists.
func searchRequestFromQuery(r *http.Request) (domsearch.Request, domsearch.Page, error) {
	q := r.URL.Query()

	req := domsearch.Request{
		Name:            q.Get("name"),
		Keyword:         q.Get("keyword"),
		Location:        q.Get("location"),
		EducationLevels: splitList(q.Get("educationLevels")),
	}

	if v := q.Get("isCountry"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, domsearch.Page{}, fmt.Errorf("invalid isCountry %q", v)
		}
		req.LocationCountry = b
	}

	for _, raw := range splitList(q.Get("skillIds")) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, domsearch.Page{}, fmt.Errorf("invalid skill id %q", raw)
		}
		req.SkillIDs = append(req.SkillIDs, id)
	}

	exp, err := domsearch.ParseExperienceFilter(q.Get("workExperience"))
	if err != nil {
		return req, domsearch.Page{}, err
	}
	req.Experience = exp

	var page domsearch.Page
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, page, fmt.Errorf("invalid page %q", v)
		}
		page.Number = n
	}
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, page, fmt.Errorf("invalid size %q", v)
		}
		page.Size = n
	}

	return req, page, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// pathID parses a UUID path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, fmt.Sprintf("invalid %s: %v", name, err))
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrCandidateNotFound,
		domain.ErrProfileNotFound,
		domain.ErrIndexUnavailable,
		domain.ErrUpstreamUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
