package strategy

import (
	"github.com/mcoot/schnapsen-go/internal/model"
)

// FoldingAdvisor concedes tricks that cannot be won, or that are cheap
// enough that winning them would waste a high card, by promoting the
// lowest-cost legal card to the top of the ranking. It never acts on a
// decisive trick.
type FoldingAdvisor struct {
	weights Weights
}

func (f *FoldingAdvisor) Apply(st *model.PublicState, scored []scoredMove) ([]scoredMove, error) {
	// Folding is a follower's call; a leader always has something to gain
	if st.LeaderMove == nil {
		return scored, nil
	}
	led, ok := st.LeaderMove.PlayedCard()
	if !ok {
		return scored, nil
	}
	stake := led.Points()

	cheapestWin := -1
	for i, sm := range scored {
		if !sm.hasCard || !sm.certainWin {
			continue
		}
		if cheapestWin < 0 || sm.card.Points() < scored[cheapestWin].card.Points() {
			cheapestWin = i
		}
	}

	if cheapestWin >= 0 {
		if f.decisiveTrick(st, stake, scored[cheapestWin].card) {
			return scored, nil
		}
		// Winnable and worth winning: leave the ranking alone unless the
		// trick is cheap and the cheapest winner is expensive
		if stake > f.weights.FoldThreshold ||
			scored[cheapestWin].card.Points() < f.weights.FoldWinnerCost {
			return scored, nil
		}
	}

	return promoteCheapest(scored), nil
}

// decisiveTrick reports whether the outcome of this trick can end the game:
// winning it would carry us to 66, conceding it could carry the opponent to
// 66, or it is the last trick of the end phase
func (f *FoldingAdvisor) decisiveTrick(st *model.PublicState, stake int, winner model.Card) bool {
	if st.MyPoints.Total()+stake+winner.Points() >= 66 {
		return true
	}
	lowest, ok := st.Hand.Lowest()
	if ok && st.OpponentPoints.Total()+stake+lowest.Points() >= 66 {
		return true
	}
	if st.Phase() == model.EndPhase && len(st.Hand) == 1 {
		return true
	}
	return false
}

// promoteCheapest re-weights the minimal-cost card move above everything else
func promoteCheapest(scored []scoredMove) []scoredMove {
	out := make([]scoredMove, len(scored))
	copy(out, scored)

	cheapest := -1
	maxScore := out[0].score
	for i, sm := range out {
		if sm.score > maxScore {
			maxScore = sm.score
		}
		if !sm.hasCard {
			continue
		}
		if cheapest < 0 ||
			sm.card.Points() < out[cheapest].card.Points() ||
			(sm.card.Points() == out[cheapest].card.Points() && sm.card.Index() < out[cheapest].card.Index()) {
			cheapest = i
		}
	}
	if cheapest >= 0 {
		out[cheapest].score = maxScore + 1
		out[cheapest].pinned = true
	}
	return out
}
