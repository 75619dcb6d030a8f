package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/schnapsen-go/internal/api/request"
	"github.com/mcoot/schnapsen-go/internal/api/response"
	"github.com/mcoot/schnapsen-go/internal/model"
	"github.com/mcoot/schnapsen-go/internal/services/arena"
	"github.com/mcoot/schnapsen-go/internal/services/strategy"
	"github.com/mcoot/schnapsen-go/internal/storage"
)

// MatchHandler handles tournament and match record endpoints
type MatchHandler struct {
	arena   *arena.Service
	storage storage.Storage
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(arenaService *arena.Service, store storage.Storage) *MatchHandler {
	return &MatchHandler{
		arena:   arenaService,
		storage: store,
	}
}

// RunTournament handles POST /api/v1/tournaments
func (h *MatchHandler) RunTournament(w http.ResponseWriter, r *http.Request) {
	var req request.TournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.VariantA == "" || req.VariantB == "" {
		WriteError(w, NewInvalidRequestError("variant_a and variant_b are required"))
		return
	}
	if req.Pairs <= 0 {
		WriteError(w, NewInvalidRequestError("pairs must be positive"))
		return
	}

	weights := strategy.DefaultWeights
	if len(req.Weights) > 0 {
		if err := json.Unmarshal(req.Weights, &weights); err != nil {
			WriteError(w, NewInvalidRequestError("invalid weights"))
			return
		}
	}

	record, err := h.arena.RunTournament(r.Context(), arena.TournamentSpec{
		VariantA: req.VariantA,
		VariantB: req.VariantB,
		Pairs:    req.Pairs,
		Seed:     req.Seed,
		Workers:  req.Workers,
		Weights:  weights,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MatchFromModel(record))
}

// List handles GET /api/v1/results
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.storage.ListMatchRecords(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	matches := make([]response.MatchResponse, 0, len(records))
	for _, record := range records {
		matches = append(matches, response.MatchFromModel(record))
	}

	response.JSON(w, http.StatusOK, response.MatchListResponse{Matches: matches})
}

// Get handles GET /api/v1/results/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.storage.GetMatchRecord(r.Context(), model.MatchID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchFromModel(record))
}

// Delete handles DELETE /api/v1/results/{id}
func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.storage.DeleteMatchRecord(r.Context(), model.MatchID(id)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
