package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/schnapsen-go/internal/api/request"
	"github.com/mcoot/schnapsen-go/internal/api/response"
	"github.com/mcoot/schnapsen-go/internal/dependencies/random"
	"github.com/mcoot/schnapsen-go/internal/services/strategy"
)

// StrategyHandler handles strategy-related endpoints
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// List handles GET /api/v1/strategies
func (h *StrategyHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.StrategiesResponse{
		Strategies: strategy.Variants(),
	})
}

// Decide handles POST /api/v1/decide
func (h *StrategyHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req request.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Variant == "" {
		WriteError(w, NewInvalidRequestError("variant is required"))
		return
	}
	if req.State == nil {
		WriteError(w, NewInvalidRequestError("state is required"))
		return
	}
	if len(req.LegalMoves) == 0 {
		WriteError(w, NewInvalidRequestError("legal_moves must not be empty"))
		return
	}

	// A fixed seed makes the decision reproducible for the same request
	composer, err := strategy.NewVariant(req.Variant, random.NewSeeded(req.Seed))
	if err != nil {
		WriteError(w, err)
		return
	}

	move, err := composer.ChooseMove(req.State, req.LegalMoves)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DecideResponse{
		Variant: req.Variant,
		Move:    move,
	})
}
