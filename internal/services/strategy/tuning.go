package strategy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights are the tunable constants combining probability, point value and
// declaration bonuses into a utility score. They are deliberately exposed as
// configuration: the right values are an empirical question answered by
// win-rate tournaments, not something baked into the code.
type Weights struct {
	// LossProbability scales the flat penalty for a likely lost trick
	LossProbability float64 `json:"loss_probability"`
	// CardExposure scales the penalty for donating the played card's points
	// into a lost trick
	CardExposure float64 `json:"card_exposure"`
	// TrickPoints scales the reward for points won with the trick
	TrickPoints float64 `json:"trick_points"`

	// MarriageBonus rewards declaring a marriage (additional layer)
	MarriageBonus float64 `json:"marriage_bonus"`
	// ExchangeBonus rewards the trump jack exchange (additional layer)
	ExchangeBonus float64 `json:"exchange_bonus"`
	// MarriagePreserve penalizes playing away half of an intact
	// king-queen pair (additional layer)
	MarriagePreserve float64 `json:"marriage_preserve"`
	// TrumpControlBonus rewards cheap leads while holding the strongest
	// remaining trump (additional layer)
	TrumpControlBonus float64 `json:"trump_control_bonus"`
	// CloseBonus is the swing applied to closing the talon depending on
	// whether the hand projects to 66 points (additional layer)
	CloseBonus float64 `json:"close_bonus"`

	// FoldThreshold is the led-card point value at or below which a trick
	// is cheap enough to concede rather than spend a high card on
	FoldThreshold int `json:"fold_threshold"`
	// FoldWinnerCost is the minimum point value of the cheapest winning
	// card before conceding a cheap trick becomes preferable
	FoldWinnerCost int `json:"fold_winner_cost"`

	// MarriageBreakPenalty and BareSuitPenalty are the risk layer's
	// exposure penalties; both shrink when the risk factor says to play
	// bolder and grow when it says to play safe
	MarriageBreakPenalty float64 `json:"marriage_break_penalty"`
	BareSuitPenalty      float64 `json:"bare_suit_penalty"`
}

// DefaultWeights is the tuning the nine stock variants play with
var DefaultWeights = Weights{
	LossProbability: 10.0,
	CardExposure:    1.0,
	TrickPoints:     1.0,

	MarriageBonus:     30.0,
	ExchangeBonus:     25.0,
	MarriagePreserve:  4.0,
	TrumpControlBonus: 1.5,
	CloseBonus:        20.0,

	FoldThreshold:  3,
	FoldWinnerCost: 10,

	MarriageBreakPenalty: 5.0,
	BareSuitPenalty:      2.0,
}

// LoadWeights reads a JSON weights file, overlaying the defaults so a file
// only needs to name the values it changes
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("reading weights file: %w", err)
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("parsing weights file: %w", err)
	}
	return w, nil
}
