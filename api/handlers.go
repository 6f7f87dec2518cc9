/*
handlers.go - HTTP API handlers for the forecast engine

PURPOSE:
  Exposes the forecast calculator via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Forecast:
    POST   /api/forecast                 Forecast a submitted form
    GET    /api/catalog                  Reward tables in use

  Presets:
    GET    /api/presets                  List built-in profiles
    POST   /api/presets/{id}/forecast    Forecast a profile

  Plans:
    GET    /api/plans                    List saved drafts
    POST   /api/plans                    Save a new draft
    GET    /api/plans/{id}               Get a draft
    PUT    /api/plans/{id}               Replace a draft
    DELETE /api/plans/{id}               Delete a draft
    POST   /api/plans/{id}/forecast      Forecast a draft against today

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Store: Saved plan persistence
  - Clock: The single source of "today"
  - Calculator: Swappable when the catalog is reloaded

REQUEST FLOW:
  1. Parse HTTP request
  2. Read today once
  3. Validate and convert the form (factory)
  4. Calculate
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, unknown selectors, malformed JSON
  - 404: Unknown preset or plan
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - presets.go, plans.go: Preset and plan endpoints
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/warp/jade-forecast/factory"
	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store generic.RecordStore
	Clock generic.Clock

	calc atomic.Pointer[rewards.Calculator]
}

// NewHandler creates a new handler with the given store and calculator.
func NewHandler(store generic.RecordStore, calc *rewards.Calculator) *Handler {
	h := &Handler{
		Store: store,
		Clock: generic.SystemClock{},
	}
	h.calc.Store(calc)
	return h
}

// Calculator returns the calculator currently serving requests.
func (h *Handler) Calculator() *rewards.Calculator {
	return h.calc.Load()
}

// SetCalculator swaps the calculator. In-flight requests finish on the old one.
func (h *Handler) SetCalculator(c *rewards.Calculator) {
	h.calc.Store(c)
}

// =============================================================================
// FORECAST HANDLERS
// =============================================================================

// Forecast validates the submitted form and returns the forecast.
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	raw, err := factory.Decode(body)
	if err != nil {
		ForecastsTotal.WithLabelValues(sourceForm, outcomeRejected).Inc()
		writeDomainError(w, err)
		return
	}

	h.forecast(w, sourceForm, raw)
}

// forecast runs one form through validation and the calculator. Today is
// read exactly once so validation and calculation agree on it.
func (h *Handler) forecast(w http.ResponseWriter, source string, raw factory.RequestJSON) {
	today := h.Clock.Today()

	req, err := factory.Build(raw, today)
	if err != nil {
		ForecastsTotal.WithLabelValues(source, outcomeRejected).Inc()
		writeDomainError(w, err)
		return
	}

	result := h.Calculator().Calculate(req, today)

	ForecastsTotal.WithLabelValues(source, outcomeOK).Inc()
	ForecastHorizonDays.Observe(float64(result.Period.Days()))
	ForecastPulls.Observe(float64(result.Pulls.Total))

	writeJSON(w, http.StatusOK, toForecastDTO(result))
}

// GetCatalog returns the reward tables, anchors and intervals in use.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCatalogDTO(h.Calculator().Catalog()))
}

// Health reports liveness and today's date as the server sees it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"today":  h.Clock.Today().String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps engine errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	var verrs generic.ValidationErrors
	var sel *generic.SelectorError

	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Code:    "validation_failed",
			Details: verrs,
		})
	case errors.As(err, &sel):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Code:    "invalid_option",
			Details: []generic.FieldError{{Field: sel.Field, Code: "invalid_option", Message: sel.Error()}},
		})
	case generic.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid request", err)
	case generic.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

// decodeBody decodes an optional JSON body. An empty body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", generic.ErrInvalidInput, err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", generic.ErrInvalidInput, err)
	}
	return nil
}
