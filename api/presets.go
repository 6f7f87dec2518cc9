package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/jade-forecast/factory"
	"github.com/warp/jade-forecast/generic"
	"github.com/warp/jade-forecast/rewards"
)

// defaultHorizonMonths is the preset forecast horizon when none is given.
const defaultHorizonMonths = 3

// ListPresets returns the built-in player profiles as form values.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets := rewards.Presets()
	dtos := make([]PresetDTO, len(presets))
	for i, p := range presets {
		dtos[i] = PresetDTO{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Request:     factory.ToJSON(p.Request),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ForecastPreset forecasts a built-in profile up to the given end date.
func (h *Handler) ForecastPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	preset, ok := rewards.FindPreset(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Preset not found", fmt.Errorf("%w: preset %q", generic.ErrRecordNotFound, id))
		return
	}

	var body PresetForecastRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeDomainError(w, err)
		return
	}

	raw := factory.ToJSON(preset.Request)
	raw.EndDate = body.EndDate
	if raw.EndDate == "" {
		raw.EndDate = h.Clock.Today().AddMonths(defaultHorizonMonths).String()
	}

	h.forecast(w, sourcePreset, raw)
}
