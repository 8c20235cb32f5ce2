// Package chi is the HTTP boundary of the search backend. It is the single
// catch point for errors: everything below propagates, everything here is
// logged and mapped to the portal envelope without leaking details.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ngdp/geoportal/internal/domain"
	"github.com/ngdp/geoportal/internal/metrics"
	chatbotuc "github.com/ngdp/geoportal/internal/usecase/chatbot"
	healthuc "github.com/ngdp/geoportal/internal/usecase/health"
	searchuc "github.com/ngdp/geoportal/internal/usecase/search"
	statsuc "github.com/ngdp/geoportal/internal/usecase/stats"
)

// Limits holds the search pagination bounds from configuration.
type Limits struct {
	DefaultLimit int
	MaxLimit     int
}

// Server wires the usecase services to routes.
type Server struct {
	search  *searchuc.Service
	chatbot *chatbotuc.Service
	stats   *statsuc.Service
	health  *healthuc.Service
	logger  *zap.Logger
	limits  Limits
}

// NewServer creates the API server.
func NewServer(
	search *searchuc.Service,
	chatbot *chatbotuc.Service,
	stats *statsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
	limits Limits,
) *Server {
	if limits.DefaultLimit <= 0 {
		limits.DefaultLimit = 10
	}
	if limits.MaxLimit <= 0 {
		limits.MaxLimit = 100
	}
	return &Server{
		search:  search,
		chatbot: chatbot,
		stats:   stats,
		health:  health,
		logger:  logger,
		limits:  limits,
	}
}

// Mount registers the API routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/search", s.handleSearch)
	r.Post("/chatbot/ask", s.handleChatbot)
	r.Get("/statistics", s.handleStatistics)
	r.Get("/healthz", s.handleHealthz)
}

// searchData is the success payload of GET /search.
type searchData struct {
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Count   int           `json:"count"`
	Results []domain.Card `json:"results"`
}

// handleSearch serves GET /search?query=&page=&limit=.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(r, "limit", s.limits.DefaultLimit)
	if limit < 1 {
		limit = s.limits.DefaultLimit
	}
	if limit > s.limits.MaxLimit {
		limit = s.limits.MaxLimit
	}
	skip := (page - 1) * limit

	cards, err := s.search.Global(r.Context(), query, skip, limit)
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		writeFailure(w, "Query cannot be empty.", codeValidation)
		return
	case errors.Is(err, domain.ErrNoResults):
		metrics.SearchRequestsTotal.WithLabelValues("search", "empty").Inc()
		metrics.SearchResultCards.Observe(0)
		writeFailure(w, "No results found.", codeNotFound)
		return
	case err != nil:
		s.logger.Error("global search failed", zap.String("query", query), zap.Error(err))
		metrics.SearchRequestsTotal.WithLabelValues("search", "error").Inc()
		writeFailure(w, "Internal error", codeInternal)
		return
	}

	metrics.SearchRequestsTotal.WithLabelValues("search", "ok").Inc()
	metrics.SearchResultCards.Observe(float64(len(cards)))
	writeSuccess(w, "Success", searchData{
		Page:    page,
		Limit:   limit,
		Count:   len(cards),
		Results: cards,
	})
}

// askRequest is the POST /chatbot/ask body.
type askRequest struct {
	UserQuestion string `json:"user_question"`
}

// askData is the success payload of POST /chatbot/ask. Message is raw HTML
// for the chat widget.
type askData struct {
	Message string `json:"message"`
}

// handleChatbot serves POST /chatbot/ask. The widget always receives
// renderable HTML: result cards, a localized fallback, or a localized
// apology - never a raw error.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserQuestion) == "" {
		writeFailure(w, "user_question is required.", codeValidation)
		return
	}

	ans, err := s.chatbot.Ask(r.Context(), req.UserQuestion)
	if err != nil {
		lang := domain.DetectLanguage(req.UserQuestion)
		s.logger.Error("chatbot search failed", zap.Error(err))
		metrics.SearchRequestsTotal.WithLabelValues("chatbot", "error").Inc()
		writeFailure(w, s.chatbot.InternalErrorMessage(lang), codeInternal)
		return
	}

	if ans.Fallback {
		metrics.SearchRequestsTotal.WithLabelValues("chatbot", "empty").Inc()
		metrics.ChatbotFallbackTotal.WithLabelValues(string(ans.Lang)).Inc()
		writeSuccess(w, "No relevant answers found.", askData{Message: ans.HTML})
		return
	}

	metrics.SearchRequestsTotal.WithLabelValues("chatbot", "ok").Inc()
	writeSuccess(w, "Chatbot search results retrieved successfully.", askData{Message: ans.HTML})
}

// handleStatistics serves GET /statistics.
func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	summary, err := s.stats.Summarize(r.Context())
	if err != nil {
		s.logger.Error("visit summary failed", zap.Error(err))
		writeFailure(w, "Internal error", codeInternal)
		return
	}
	writeSuccess(w, "Statistics summary", summary)
}

// handleHealthz serves GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Check(r.Context()); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
