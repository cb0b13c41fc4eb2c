package qaoa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/aristath/quantum-portfolio/internal/modules/runs"
)

// Handler handles QAOA HTTP requests.
type Handler struct {
	service  *Service
	runsRepo *runs.Repository
	log      zerolog.Logger
}

// NewHandler creates a new QAOA handler.
func NewHandler(service *Service, runsRepo *runs.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		service:  service,
		runsRepo: runsRepo,
		log:      log.With().Str("handler", "qaoa").Logger(),
	}
}

// HandleSolve runs the full pipeline for a posted problem record and
// persists the result.
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Solve(req)
	if err != nil {
		h.log.Error().Err(err).Msg("Solve failed")
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if h.runsRepo != nil {
		if err := h.persist(result); err != nil {
			// The solve succeeded; losing the archive record is not fatal.
			h.log.Error().Err(err).Str("run_id", result.RunID).Msg("Failed to persist run")
		}
	}

	h.writeJSON(w, http.StatusOK, result)
}

// HandleListRuns returns recent persisted runs.
func (h *Handler) HandleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	list, err := h.runsRepo.List(limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  list,
		"count": len(list),
	})
}

// HandleGetRun returns one persisted run including the full result payload.
func (h *Handler) HandleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.runsRepo.Get(id)
	if errors.Is(err, runs.ErrNotFound) {
		h.writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, run)
}

func (h *Handler) persist(result *Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return h.runsRepo.Save(runs.Run{
		ID:               result.RunID,
		CreatedAt:        time.Now(),
		NumAssets:        result.NumAssets,
		Cardinality:      result.Cardinality,
		Depth:            result.Depth,
		Shots:            result.Shots,
		Seed:             result.Seed,
		BestExpectation:  result.BestExpectation,
		Bitstring:        result.Selection.Bitstring,
		Objective:        result.Selection.Objective,
		AnnualReturn:     result.Metrics.AnnualReturn,
		AnnualVolatility: result.Metrics.AnnualVolatility,
		Degraded:         result.Degraded,
		ResultJSON:       string(payload),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
