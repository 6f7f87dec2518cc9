package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/warp/jade-forecast/factory"
	"github.com/warp/jade-forecast/generic"
)

// planKind is the record kind of a saved plan.
const planKind = "plan"

// maxPlanNameLength bounds plan names like source names.
const maxPlanNameLength = factory.MaxSourceNameLength

// =============================================================================
// PLAN HANDLERS
// =============================================================================

// ListPlans returns every saved draft ordered by name.
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListRecords(r.Context(), planKind)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list plans", err)
		return
	}

	dtos := make([]PlanDTO, 0, len(records))
	for _, rec := range records {
		dto, err := toPlanDTO(rec)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Corrupt plan record", err)
			return
		}
		dtos = append(dtos, dto)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePlan saves a new draft. Drafts are stored as entered; they are
// validated only when forecast.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	h.savePlan(w, r, uuid.NewString(), http.StatusCreated)
}

// UpdatePlan replaces an existing draft.
func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Store.GetRecord(r.Context(), planKind, id); err != nil {
		writeDomainError(w, err)
		return
	}
	h.savePlan(w, r, id, http.StatusOK)
}

func (h *Handler) savePlan(w http.ResponseWriter, r *http.Request, id string, status int) {
	var req SavePlanRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > maxPlanNameLength {
		writeDomainError(w, generic.ValidationErrors{{
			Field:   "name",
			Code:    "invalid_name",
			Message: fmt.Sprintf("must be 1 to %d characters", maxPlanNameLength),
		}})
		return
	}

	payload, err := json.Marshal(req.Request)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode plan", err)
		return
	}

	rec := generic.Record{ID: id, Kind: planKind, Name: name, PayloadJSON: string(payload)}
	if err := h.Store.SaveRecord(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save plan", err)
		return
	}
	PlansSaved.Inc()

	saved, err := h.Store.GetRecord(r.Context(), planKind, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read saved plan", err)
		return
	}
	dto, err := toPlanDTO(*saved)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Corrupt plan record", err)
		return
	}
	writeJSON(w, status, dto)
}

// GetPlan returns one draft.
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetRecord(r.Context(), planKind, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	dto, err := toPlanDTO(*rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Corrupt plan record", err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// DeletePlan removes a draft.
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteRecord(r.Context(), planKind, chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ForecastPlan forecasts a stored draft against today's date.
func (h *Handler) ForecastPlan(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.GetRecord(r.Context(), planKind, chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	dto, err := toPlanDTO(*rec)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Corrupt plan record", err)
		return
	}
	h.forecast(w, sourcePlan, dto.Request)
}

func toPlanDTO(rec generic.Record) (PlanDTO, error) {
	var raw factory.RequestJSON
	if err := json.Unmarshal([]byte(rec.PayloadJSON), &raw); err != nil {
		return PlanDTO{}, fmt.Errorf("plan %s: %w", rec.ID, err)
	}
	return PlanDTO{
		ID:        rec.ID,
		Name:      rec.Name,
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		Request:   raw,
	}, nil
}
