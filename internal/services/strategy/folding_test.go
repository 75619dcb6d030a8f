package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/schnapsen-go/internal/model"
)

type FoldingSuite struct {
	suite.Suite
	advisor *FoldingAdvisor
}

func TestFoldingSuite(t *testing.T) {
	suite.Run(t, new(FoldingSuite))
}

func (s *FoldingSuite) SetupTest() {
	s.advisor = &FoldingAdvisor{weights: DefaultWeights}
}

// followState builds a following position against the given led card
func followState(hand model.Hand, led model.Card) *model.PublicState {
	move := model.PlayCard(led)
	return &model.PublicState{
		Hand:             hand,
		Trump:            model.Hearts,
		TalonSize:        5,
		OpponentHandSize: len(hand),
		LeaderMove:       &move,
	}
}

func scoreMoves(st *model.PublicState, moves []model.Move) []scoredMove {
	eval := newEvaluator(DefaultWeights, true)
	scored, err := eval.Score(st, moves)
	if err != nil {
		panic(err)
	}
	return scored
}

func topMove(scored []scoredMove) model.Move {
	best := 0
	for i := 1; i < len(scored); i++ {
		if scored[i].score > scored[best].score {
			best = i
		}
	}
	return scored[best].move
}

func (s *FoldingSuite) TestLeaderIsLeftAlone() {
	st := &model.PublicState{
		Hand:             model.Hand{{Suit: model.Clubs, Rank: model.Jack}},
		Trump:            model.Hearts,
		TalonSize:        5,
		OpponentHandSize: 1,
	}
	scored := scoreMoves(st, []model.Move{model.PlayCard(st.Hand[0])})

	out, err := s.advisor.Apply(st, scored)
	s.Require().NoError(err)
	s.Equal(scored, out)
}

func (s *FoldingSuite) TestUnwinnableTrickFoldsCheapest() {
	// Led trump ace: nothing in hand can win; fold the cheapest card
	// rather than the evaluator's pick
	hand := model.Hand{
		{Suit: model.Clubs, Rank: model.Ten},
		{Suit: model.Spades, Rank: model.Jack},
		{Suit: model.Diamonds, Rank: model.King},
	}
	st := followState(hand, model.Card{Suit: model.Hearts, Rank: model.Ace})

	moves := make([]model.Move, len(hand))
	for i, c := range hand {
		moves[i] = model.PlayCard(c)
	}
	scored := scoreMoves(st, moves)

	out, err := s.advisor.Apply(st, scored)
	s.Require().NoError(err)
	s.Equal(model.PlayCard(model.Card{Suit: model.Spades, Rank: model.Jack}), topMove(out))

	// The fold is final; later layers must not demote it
	for _, sm := range out {
		s.Equal(sm.move == topMove(out), sm.pinned)
	}
}

func (s *FoldingSuite) TestCheapTrickNotWorthAHighWinner() {
	// A jack is led; the only winner is the trump ace. Spending eleven
	// points of trump on a two point trick is declined.
	hand := model.Hand{
		{Suit: model.Hearts, Rank: model.Ace},
		{Suit: model.Clubs, Rank: model.Jack},
	}
	st := followState(hand, model.Card{Suit: model.Spades, Rank: model.Jack})

	moves := []model.Move{model.PlayCard(hand[0]), model.PlayCard(hand[1])}
	scored := scoreMoves(st, moves)

	out, err := s.advisor.Apply(st, scored)
	s.Require().NoError(err)
	s.Equal(model.PlayCard(model.Card{Suit: model.Clubs, Rank: model.Jack}), topMove(out))
}

func (s *FoldingSuite) TestValuableTrickIsContested() {
	// A ten is led: worth taking with the ace
	hand := model.Hand{
		{Suit: model.Spades, Rank: model.Ace},
		{Suit: model.Clubs, Rank: model.Jack},
	}
	st := followState(hand, model.Card{Suit: model.Spades, Rank: model.Ten})

	moves := []model.Move{model.PlayCard(hand[0]), model.PlayCard(hand[1])}
	scored := scoreMoves(st, moves)

	out, err := s.advisor.Apply(st, scored)
	s.Require().NoError(err)
	s.Equal(model.PlayCard(model.Card{Suit: model.Spades, Rank: model.Ace}), topMove(out))
}

func (s *FoldingSuite) TestDecisiveTrickIsNeverFolded() {
	// Winning the cheap trick carries us over 66: take it whatever it costs
	hand := model.Hand{
		{Suit: model.Hearts, Rank: model.Ace},
		{Suit: model.Clubs, Rank: model.Jack},
	}
	st := followState(hand, model.Card{Suit: model.Spades, Rank: model.Jack})
	st.MyPoints = model.Points{Direct: 55}

	moves := []model.Move{model.PlayCard(hand[0]), model.PlayCard(hand[1])}
	scored := scoreMoves(st, moves)

	out, err := s.advisor.Apply(st, scored)
	s.Require().NoError(err)
	s.Equal(model.PlayCard(model.Card{Suit: model.Hearts, Rank: model.Ace}), topMove(out))
}
