package response

import (
	"time"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// StrategiesResponse lists the available variant names
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
}

// DecideResponse is the move a variant chose for a position
type DecideResponse struct {
	Variant string     `json:"variant"`
	Move    model.Move `json:"move"`
}

// MatchResponse is the API view of a stored match record
type MatchResponse struct {
	ID          string    `json:"id"`
	VariantA    string    `json:"variant_a"`
	VariantB    string    `json:"variant_b"`
	Seed        int64     `json:"seed"`
	Games       int       `json:"games"`
	WinsA       int       `json:"wins_a"`
	WinsB       int       `json:"wins_b"`
	GamePointsA int       `json:"game_points_a"`
	GamePointsB int       `json:"game_points_b"`
	WinRateA    float64   `json:"win_rate_a"`
	CreatedAt   time.Time `json:"created_at"`
}

// MatchFromModel converts a model MatchRecord to its API representation
func MatchFromModel(record *model.MatchRecord) MatchResponse {
	return MatchResponse{
		ID:          string(record.ID),
		VariantA:    record.VariantA,
		VariantB:    record.VariantB,
		Seed:        record.Seed,
		Games:       record.Games,
		WinsA:       record.WinsA,
		WinsB:       record.WinsB,
		GamePointsA: record.GamePointsA,
		GamePointsB: record.GamePointsB,
		WinRateA:    record.WinRateA(),
		CreatedAt:   record.CreatedAt,
	}
}

// MatchListResponse wraps a list of match records
type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
}
