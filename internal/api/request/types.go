package request

import (
	"encoding/json"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// DecideRequest asks a strategy variant to choose one move for a position
type DecideRequest struct {
	Variant    string             `json:"variant"`
	Seed       int64              `json:"seed"`
	State      *model.PublicState `json:"state"`
	LegalMoves []model.Move       `json:"legal_moves"`
}

// TournamentRequest asks the arena to run a paired-seed tournament.
// Weights, when present, overlay the default tuning the same way a weights
// file does; omitted fields keep their defaults.
type TournamentRequest struct {
	VariantA string          `json:"variant_a"`
	VariantB string          `json:"variant_b"`
	Pairs    int             `json:"pairs"`
	Seed     int64           `json:"seed"`
	Workers  int             `json:"workers,omitempty"`
	Weights  json.RawMessage `json:"weights,omitempty"`
}
