package model

import "time"

// MatchID identifies a stored tournament result
type MatchID string

// MatchRecord is the persisted outcome of a tournament between two strategy
// variants. Games are played in seed-sharing pairs with roles swapped, so
// Games is always twice the pair count.
type MatchRecord struct {
	ID       MatchID `json:"id"`
	VariantA string  `json:"variant_a"`
	VariantB string  `json:"variant_b"`
	Seed     int64   `json:"seed"`
	Games    int     `json:"games"`
	WinsA    int     `json:"wins_a"`
	WinsB    int     `json:"wins_b"`
	// GamePointsA/B accumulate the 1-3 game points awarded per win
	GamePointsA int       `json:"game_points_a"`
	GamePointsB int       `json:"game_points_b"`
	CreatedAt   time.Time `json:"created_at"`
}

// WinRateA returns variant A's win rate over the match
func (r *MatchRecord) WinRateA() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.WinsA) / float64(r.Games)
}
