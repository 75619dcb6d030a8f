package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/schnapsen-go/internal/model"
)

type EvaluatorSuite struct {
	suite.Suite
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

// leadState is a fresh-deal leading position holding the club marriage
func leadState() *model.PublicState {
	return &model.PublicState{
		Hand: model.Hand{
			{Suit: model.Clubs, Rank: model.Queen},
			{Suit: model.Clubs, Rank: model.King},
			{Suit: model.Diamonds, Rank: model.Jack},
			{Suit: model.Spades, Rank: model.Ten},
			{Suit: model.Hearts, Rank: model.Ace},
		},
		Trump:            model.Hearts,
		TrumpUpCard:      &model.Card{Suit: model.Hearts, Rank: model.Jack},
		TalonSize:        10,
		OpponentHandSize: 5,
	}
}

func (s *EvaluatorSuite) TestScorePreservesOrderAndLength() {
	st := leadState()
	legal := []model.Move{
		model.PlayCard(st.Hand[0]),
		model.PlayCard(st.Hand[1]),
		model.DeclareMarriage(model.Clubs),
		model.CloseTalon(),
	}

	eval := newEvaluator(DefaultWeights, true)
	scored, err := eval.Score(st, legal)
	s.Require().NoError(err)
	s.Require().Len(scored, len(legal))
	for i := range legal {
		s.Equal(legal[i], scored[i].move)
	}
}

func (s *EvaluatorSuite) TestScoreEmptyLegalSet() {
	eval := newEvaluator(DefaultWeights, true)
	_, err := eval.Score(leadState(), nil)
	s.ErrorIs(err, model.ErrNoLegalMoves)
}

func (s *EvaluatorSuite) TestBaseIgnoresDeclarations() {
	st := leadState()
	legal := []model.Move{
		model.PlayCard(st.Hand[2]),
		model.DeclareMarriage(model.Clubs),
		model.ExchangeTrump(),
		model.CloseTalon(),
	}

	eval := newEvaluator(DefaultWeights, false)
	scored, err := eval.Score(st, legal)
	s.Require().NoError(err)

	// Every declaration sinks below any card play
	for _, sm := range scored[1:] {
		s.Less(sm.score, scored[0].score)
		s.Equal(declarationsIgnored, sm.score)
	}
}

func (s *EvaluatorSuite) TestAdditionalValuesMarriage() {
	st := leadState()
	legal := []model.Move{
		model.PlayCard(st.Hand[0]), // the queen on its own
		model.DeclareMarriage(model.Clubs),
	}

	eval := newEvaluator(DefaultWeights, true)
	scored, err := eval.Score(st, legal)
	s.Require().NoError(err)

	// Declaring dominates quietly playing the queen
	s.Greater(scored[1].score, scored[0].score)
}

func (s *EvaluatorSuite) TestAdditionalValuesTrumpMarriageHigher() {
	st := leadState()
	st.Hand = model.Hand{
		{Suit: model.Clubs, Rank: model.Queen},
		{Suit: model.Clubs, Rank: model.King},
		{Suit: model.Hearts, Rank: model.Queen},
		{Suit: model.Hearts, Rank: model.King},
		{Suit: model.Spades, Rank: model.Jack},
	}

	legal := []model.Move{
		model.DeclareMarriage(model.Clubs),
		model.DeclareMarriage(model.Hearts),
	}

	eval := newEvaluator(DefaultWeights, true)
	scored, err := eval.Score(st, legal)
	s.Require().NoError(err)

	s.Greater(scored[1].score, scored[0].score)
}

func (s *EvaluatorSuite) TestCertainLossIsPenalized() {
	led := model.PlayCard(model.Card{Suit: model.Spades, Rank: model.King})
	st := &model.PublicState{
		Hand: model.Hand{
			{Suit: model.Spades, Rank: model.Ace},
			{Suit: model.Spades, Rank: model.Queen},
		},
		Trump:            model.Hearts,
		TalonSize:        5,
		OpponentHandSize: 2,
		LeaderMove:       &led,
	}
	legal := []model.Move{
		model.PlayCard(st.Hand[0]),
		model.PlayCard(st.Hand[1]),
	}

	eval := newEvaluator(DefaultWeights, false)
	scored, err := eval.Score(st, legal)
	s.Require().NoError(err)

	s.True(scored[0].certainWin)
	s.Equal(0.0, scored[0].loseProb)
	s.False(scored[1].certainWin)
	s.Equal(1.0, scored[1].loseProb)
	s.Greater(scored[0].score, scored[1].score)
}

func (s *EvaluatorSuite) TestMarriagePreservePenalty() {
	st := leadState()

	eval := newEvaluator(DefaultWeights, true)

	// The lone diamond jack and the club queen carry similar trick value,
	// but the queen is half of an intact marriage
	scored, err := eval.Score(st, []model.Move{
		model.PlayCard(model.Card{Suit: model.Clubs, Rank: model.Queen}),
	})
	s.Require().NoError(err)
	withPair := scored[0].score

	st.Hand[1] = model.Card{Suit: model.Diamonds, Rank: model.King} // break the pair
	scored, err = eval.Score(st, []model.Move{
		model.PlayCard(model.Card{Suit: model.Clubs, Rank: model.Queen}),
	})
	s.Require().NoError(err)
	withoutPair := scored[0].score

	s.Less(withPair, withoutPair)
}

func (s *EvaluatorSuite) TestCloseScoreReflectsProjectedWin() {
	eval := newEvaluator(DefaultWeights, true)

	// A commanding hand near the finish line projects past 66
	strong := leadState()
	strong.Hand = model.Hand{
		{Suit: model.Hearts, Rank: model.Ace},
		{Suit: model.Hearts, Rank: model.Ten},
		{Suit: model.Hearts, Rank: model.King},
		{Suit: model.Spades, Rank: model.Ace},
		{Suit: model.Clubs, Rank: model.Ace},
	}
	strong.TrumpUpCard = &model.Card{Suit: model.Hearts, Rank: model.Jack}
	strong.MyPoints = model.Points{Direct: 40}
	s.Equal(DefaultWeights.CloseBonus, eval.closeScore(strong))

	// A weak hand with no points does not
	weak := leadState()
	weak.Hand = model.Hand{
		{Suit: model.Clubs, Rank: model.Jack},
		{Suit: model.Clubs, Rank: model.Queen},
		{Suit: model.Diamonds, Rank: model.Jack},
		{Suit: model.Diamonds, Rank: model.Queen},
		{Suit: model.Spades, Rank: model.Jack},
	}
	s.Equal(-DefaultWeights.CloseBonus, eval.closeScore(weak))
}
