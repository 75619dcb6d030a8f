package strategy

import (
	"github.com/mcoot/schnapsen-go/internal/model"
)

// scoredMove pairs a legal move with its running utility score. Scores only
// order candidates within a single decision; there is no fixed scale.
type scoredMove struct {
	move    model.Move
	card    model.Card
	hasCard bool
	// loseProb is the estimated chance the trick is lost if this move is
	// played; exactly 0 or 1 when following
	loseProb   float64
	certainWin bool
	// pinned marks a score an earlier layer fixed as final; later layers
	// leave it alone
	pinned bool
	score  float64
}

// declarationsIgnored is the score the base evaluator assigns to moves it
// does not model (marriage, exchange, close); card plays always exist
// alongside them, so these are never chosen without the additional layer.
const declarationsIgnored = -1e9

// Evaluator turns the legal move set into utility scores by combining the
// loss probability, the points put at risk and the points to be gained.
// With the additional layer enabled it also values declarations, marriage
// preservation and cheap leads under trump control.
type Evaluator struct {
	est        Estimator
	weights    Weights
	additional bool
}

func newEvaluator(w Weights, additional bool) *Evaluator {
	return &Evaluator{weights: w, additional: additional}
}

// Score produces one scoredMove per legal move, in the same order
func (e *Evaluator) Score(st *model.PublicState, legal []model.Move) ([]scoredMove, error) {
	if len(legal) == 0 {
		return nil, model.ErrNoLegalMoves
	}

	scored := make([]scoredMove, 0, len(legal))
	for _, m := range legal {
		sm := scoredMove{move: m}
		sm.card, sm.hasCard = m.PlayedCard()

		switch m.Type {
		case model.MovePlayCard, model.MoveMarriage:
			p, err := e.est.BeatProbability(st, sm.card)
			if err != nil {
				return nil, err
			}
			sm.loseProb = p
			sm.certainWin = p == 0
			sm.score = e.cardScore(st, sm.card, p)

			if m.Type == model.MoveMarriage {
				if e.additional {
					pts := 20.0
					if m.Suit == st.Trump {
						pts = 40.0
					}
					sm.score += e.weights.MarriageBonus + pts
				} else {
					sm.score = declarationsIgnored
				}
			} else if e.additional {
				sm.score += e.additionalAdjust(st, sm.card)
			}

		case model.MoveExchangeTrump:
			if e.additional {
				sm.score = e.weights.ExchangeBonus
			} else {
				sm.score = declarationsIgnored
			}

		case model.MoveCloseTalon:
			if e.additional {
				sm.score = e.closeScore(st)
			} else {
				sm.score = declarationsIgnored
			}
		}

		scored = append(scored, sm)
	}
	return scored, nil
}

// cardScore combines the win reward, the donation penalty and the flat loss
// penalty for putting the given card on the table
func (e *Evaluator) cardScore(st *model.PublicState, card model.Card, loseProb float64) float64 {
	stake := float64(card.Points())
	if st.LeaderMove != nil {
		if led, ok := st.LeaderMove.PlayedCard(); ok {
			stake += float64(led.Points())
		}
	}
	return e.weights.TrickPoints*(1-loseProb)*stake -
		e.weights.CardExposure*loseProb*float64(card.Points()) -
		e.weights.LossProbability*loseProb
}

// additionalAdjust applies the position-specific adjustments of the
// additional layer to a plain card play
func (e *Evaluator) additionalAdjust(st *model.PublicState, card model.Card) float64 {
	adjust := 0.0

	// Keep intact king-queen pairs together
	if partner, ok := marriagePartner(card); ok && st.Hand.Contains(partner) {
		adjust -= e.weights.MarriagePreserve
	}

	// Cheap non-trump leads are good while we own the strongest live trump
	if st.IsLeading() && card.Suit != st.Trump && card.Points() <= model.King.Points() &&
		hasTrumpControl(st) {
		adjust += e.weights.TrumpControlBonus
	}

	return adjust
}

// closeScore projects whether closing the talon wins: current points plus
// the value of tricks the hand wins with certainty, with an average unseen
// card from the opponent on each
func (e *Evaluator) closeScore(st *model.PublicState) float64 {
	projected := float64(st.MyPoints.Total())
	mean := meanUnseenPoints(st)
	for _, c := range st.Hand {
		if p, err := e.est.BeatProbability(st, c); err == nil && p == 0 {
			projected += float64(c.Points()) + mean
		}
	}
	if projected >= 66 {
		return e.weights.CloseBonus
	}
	return -e.weights.CloseBonus
}

// marriagePartner returns the other half of a potential marriage pair
func marriagePartner(c model.Card) (model.Card, bool) {
	switch c.Rank {
	case model.King:
		return model.Card{Suit: c.Suit, Rank: model.Queen}, true
	case model.Queen:
		return model.Card{Suit: c.Suit, Rank: model.King}, true
	default:
		return model.Card{}, false
	}
}

// hasTrumpControl reports whether the hand holds a trump no live card beats
func hasTrumpControl(st *model.PublicState) bool {
	for _, c := range st.Hand.OfSuit(st.Trump) {
		if isBossTrump(st, c) {
			return true
		}
	}
	return false
}

func isBossTrump(st *model.PublicState, c model.Card) bool {
	for _, u := range st.UnseenCards() {
		if u.Suit == st.Trump && u.Rank > c.Rank {
			return false
		}
	}
	for _, k := range st.KnownOpponentCards {
		if k.Suit == st.Trump && k.Rank > c.Rank {
			return false
		}
	}
	return true
}

// meanUnseenPoints is the average point value over the unseen pool
func meanUnseenPoints(st *model.PublicState) float64 {
	unseen := st.UnseenCards()
	if len(unseen) == 0 {
		return 0
	}
	total := 0
	for _, c := range unseen {
		total += c.Points()
	}
	return float64(total) / float64(len(unseen))
}
