package strategy

import (
	"fmt"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// Estimator computes opponent-hand probabilities from public information
// only: cards seen so far, the talon size and the opponent's hand size.
// While the talon holds hidden cards the estimates are genuinely
// probabilistic; once every unseen card must be in the opponent's hand the
// same formulas collapse to certainty.
type Estimator struct{}

// HoldProbability estimates the chance that the given card sits in the
// opponent's hand. Cards already revealed as the opponent's are certain;
// querying a card whose location is otherwise determined (own hand, played,
// the up-card) is a caller contract breach and returns ErrCardAccounted.
func (Estimator) HoldProbability(st *model.PublicState, c model.Card) (float64, error) {
	for _, k := range st.KnownOpponentCards {
		if k == c {
			return 1, nil
		}
	}
	if st.Seen(c) {
		return 0, fmt.Errorf("%s: %w", c, model.ErrCardAccounted)
	}

	unseen := len(st.UnseenCards())
	if unseen == 0 {
		return 0, nil
	}
	hidden := st.HiddenOpponentCards()
	return float64(hidden) / float64(unseen), nil
}

// Distribution returns the hold probability for every unseen card. The
// values are non-negative and sum to the number of hidden opponent cards.
func (e Estimator) Distribution(st *model.PublicState) map[model.Card]float64 {
	unseen := st.UnseenCards()
	dist := make(map[model.Card]float64, len(unseen))
	if len(unseen) == 0 {
		return dist
	}
	p := float64(st.HiddenOpponentCards()) / float64(len(unseen))
	for _, c := range unseen {
		dist[c] = p
	}
	return dist
}

// BeatProbability estimates the chance the opponent can beat the candidate
// card in the current trick context. The candidate must be in the caller's
// hand. When following, the outcome against the led card is already
// determined and the result is exactly 0 or 1.
func (e Estimator) BeatProbability(st *model.PublicState, c model.Card) (float64, error) {
	if !st.Hand.Contains(c) {
		return 0, fmt.Errorf("candidate %s: %w", c, model.ErrCardAccounted)
	}

	if st.LeaderMove != nil {
		led, ok := st.LeaderMove.PlayedCard()
		if !ok {
			return 0, nil
		}
		if c.Beats(led, st.Trump) {
			return 0, nil
		}
		return 1, nil
	}

	// Any known opponent card that beats the candidate is certain danger
	for _, k := range st.KnownOpponentCards {
		if k.Beats(c, st.Trump) {
			return 1, nil
		}
	}

	unseen := st.UnseenCards()
	dangerous := 0
	for _, u := range unseen {
		if u.Beats(c, st.Trump) {
			dangerous++
		}
	}

	return drawAtLeastOne(len(unseen), dangerous, st.HiddenOpponentCards()), nil
}

// drawAtLeastOne is the hypergeometric probability that drawing h cards
// without replacement from a pool of u containing d marked cards yields at
// least one marked card. With u == h (the end phase) it is exactly 0 or 1.
func drawAtLeastOne(u, d, h int) float64 {
	if d <= 0 || u <= 0 || h <= 0 {
		return 0
	}
	if d > u-h {
		return 1
	}
	pNone := 1.0
	for i := 0; i < h; i++ {
		pNone *= float64(u-d-i) / float64(u-i)
	}
	return 1 - pNone
}
