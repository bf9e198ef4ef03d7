package server

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/cloudmigrate/migration-estimator/internal/engine"
)

// Handler serves the estimation API.
type Handler struct {
	engine *engine.Engine
}

// NewHandler returns a Handler over the given engine.
func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Estimate decodes a MigrationConfig, runs one estimation pass and writes
// the result. Configuration errors map to 400, internal inconsistencies
// to 500.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var cfg engine.MigrationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	result, err := h.engine.Estimate(ctx, cfg)
	if err != nil {
		var cfgErr *engine.ConfigError
		if errors.As(err, &cfgErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: cfgErr.Reason, Field: cfgErr.Field})
			return
		}
		logger.Error().Err(err).Msg("estimation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
