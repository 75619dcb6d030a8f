package strategy

import (
	"github.com/mcoot/schnapsen-go/internal/model"
)

// RiskAssessor penalizes moves that create exposure: breaking an intact
// marriage pair or baring a plain suit. Penalties are additive and shrink
// when the game state calls for bolder play; a move that wins the trick with
// certainty is never penalized, so risk only re-ranks close alternatives.
type RiskAssessor struct {
	weights Weights
}

func (r *RiskAssessor) Apply(st *model.PublicState, scored []scoredMove) ([]scoredMove, error) {
	factor := riskFactor(st)

	out := make([]scoredMove, len(scored))
	copy(out, scored)
	for i := range out {
		sm := &out[i]
		if !sm.hasCard || sm.certainWin || sm.pinned {
			continue
		}

		penalty := 0.0
		if partner, ok := marriagePartner(sm.card); ok && st.Hand.Contains(partner) {
			penalty += r.weights.MarriageBreakPenalty
		}
		if sm.card.Suit != st.Trump && len(st.Hand.OfSuit(sm.card.Suit)) == 1 {
			penalty += r.weights.BareSuitPenalty
		}

		sm.score -= penalty / factor
	}
	return out, nil
}

// riskFactor maps the score situation to an appetite for risk: above 1 when
// trailing (exposure matters less than catching up), below 1 when ahead
func riskFactor(st *model.PublicState) float64 {
	my := st.MyPoints.Total()
	opp := st.OpponentPoints.Total()
	diff := my - opp

	switch {
	case opp >= 50:
		if diff <= -20 {
			return 1.8
		}
		return 1.3
	case my >= 50:
		if diff >= 20 {
			return 0.5
		}
		return 0.8
	case diff >= 20:
		return 0.7
	case diff >= 10:
		return 0.85
	case diff <= -20:
		return 1.5
	case diff <= -10:
		return 1.25
	default:
		return 1.0
	}
}
