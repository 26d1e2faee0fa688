package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/usecase"
	"shortlink/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Handler handles HTTP requests for link operations
type Handler struct {
	service *usecase.LinkService
	logger  *zap.Logger
	db      *sql.DB
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.LinkService, logger *zap.Logger, db *sql.DB) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		db:      db,
	}
}

// CreateLinkRequest represents the request body for creating a short link
type CreateLinkRequest struct {
	TargetURL string `json:"target_url"`
}

// Validate checks the request body against the link constraints.
func (r CreateLinkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TargetURL,
			validation.Required.Error("target_url is required"),
			validation.Length(1, domain.MaxTargetURLLength),
			is.URL.Error("invalid URL format"),
			validation.By(absoluteHTTPURL),
		),
	)
}

// absoluteHTTPURL rejects URLs that are not absolute http(s) URLs with a host.
func absoluteHTTPURL(value interface{}) error {
	raw, _ := value.(string)
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("URL scheme must be http or https")
	}
	if parsed.Host == "" {
		return errors.New("URL must include a host")
	}
	return nil
}

// CreateLink handles POST /api/v1/links
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem := problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with 'target_url' field",
		)
		writeProblem(w, problem)
		return
	}

	if err := req.Validate(); err != nil {
		problem := problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidURL,
			"Invalid URL",
			err.Error(),
		)
		writeProblem(w, problem)
		return
	}

	result, err := h.service.CreateShortLink(r.Context(), req.TargetURL)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidURL) {
			problem := problemdetails.New(
				http.StatusBadRequest,
				problemdetails.TypeInvalidURL,
				"Invalid URL",
				err.Error(),
			)
			writeProblem(w, problem)
			return
		}

		h.logger.Error("failed to create short link", zap.Error(err))
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		)
		writeProblem(w, problem)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Redirect handles GET /{code}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	target, err := h.service.RedirectAndTrack(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			problem := problemdetails.New(
				http.StatusNotFound,
				problemdetails.TypeNotFound,
				"Not Found",
				"Short link not found: "+code,
			)
			writeProblem(w, problem)
			return
		}

		h.logger.Error("redirect failed",
			zap.String("short_code", code),
			zap.Error(err),
		)
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		)
		writeProblem(w, problem)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 0
	if p := query.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed >= 0 {
			page = parsed
		}
	}

	size := defaultPageSize
	if s := query.Get("size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 1 && parsed <= maxPageSize {
			size = parsed
		}
	}

	stats, err := h.service.GetStats(r.Context(), page, size)
	if err != nil {
		h.logger.Error("failed to assemble stats page", zap.Error(err))
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Failed to load link statistics",
		)
		writeProblem(w, problem)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Reason: "database unavailable: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}
