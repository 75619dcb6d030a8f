package strategy

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/schnapsen-go/internal/model"
)

type EstimatorSuite struct {
	suite.Suite
	est Estimator
}

func TestEstimatorSuite(t *testing.T) {
	suite.Run(t, new(EstimatorSuite))
}

// stateWithUnseen builds a state where exactly the given cards are unseen:
// everything else outside the hand is in the played pile
func stateWithUnseen(hand model.Hand, unseen []model.Card, trump model.Suit, oppHand, talon int) *model.PublicState {
	isOut := func(c model.Card) bool {
		if hand.Contains(c) {
			return true
		}
		for _, u := range unseen {
			if u == c {
				return true
			}
		}
		return false
	}

	st := &model.PublicState{
		Hand:             hand,
		Trump:            trump,
		TalonSize:        talon,
		OpponentHandSize: oppHand,
	}
	for _, c := range model.Deck() {
		if !isOut(c) {
			st.Played = append(st.Played, c)
		}
	}
	return st
}

func (s *EstimatorSuite) TestHoldProbabilityFreshDeal() {
	st := &model.PublicState{
		Hand: model.Hand{
			{Suit: model.Clubs, Rank: model.Jack},
			{Suit: model.Clubs, Rank: model.Queen},
			{Suit: model.Clubs, Rank: model.King},
			{Suit: model.Clubs, Rank: model.Ten},
			{Suit: model.Clubs, Rank: model.Ace},
		},
		Trump:            model.Hearts,
		TrumpUpCard:      &model.Card{Suit: model.Hearts, Rank: model.Jack},
		TalonSize:        10,
		OpponentHandSize: 5,
	}

	// 14 unseen cards, 5 hidden in the opponent's hand
	p, err := s.est.HoldProbability(st, model.Card{Suit: model.Spades, Rank: model.Ace})
	s.Require().NoError(err)
	s.InDelta(5.0/14.0, p, 1e-12)
}

func (s *EstimatorSuite) TestHoldProbabilityKnownOpponentCard() {
	st := &model.PublicState{
		Hand:               model.Hand{{Suit: model.Clubs, Rank: model.Jack}},
		Trump:              model.Hearts,
		OpponentHandSize:   5,
		TalonSize:          9,
		KnownOpponentCards: []model.Card{{Suit: model.Hearts, Rank: model.King}},
	}

	p, err := s.est.HoldProbability(st, model.Card{Suit: model.Hearts, Rank: model.King})
	s.Require().NoError(err)
	s.Equal(1.0, p)
}

func (s *EstimatorSuite) TestHoldProbabilityAccountedCard() {
	st := &model.PublicState{
		Hand:             model.Hand{{Suit: model.Clubs, Rank: model.Jack}},
		Trump:            model.Hearts,
		OpponentHandSize: 5,
		TalonSize:        9,
	}

	// Own card
	_, err := s.est.HoldProbability(st, model.Card{Suit: model.Clubs, Rank: model.Jack})
	s.ErrorIs(err, model.ErrCardAccounted)

	// Played card
	st.Played = []model.Card{{Suit: model.Diamonds, Rank: model.Ten}}
	_, err = s.est.HoldProbability(st, model.Card{Suit: model.Diamonds, Rank: model.Ten})
	s.ErrorIs(err, model.ErrCardAccounted)
}

func (s *EstimatorSuite) TestDistributionSumsToHiddenCount() {
	st := &model.PublicState{
		Hand: model.Hand{
			{Suit: model.Clubs, Rank: model.Jack},
			{Suit: model.Clubs, Rank: model.Queen},
			{Suit: model.Clubs, Rank: model.King},
			{Suit: model.Clubs, Rank: model.Ten},
			{Suit: model.Clubs, Rank: model.Ace},
		},
		Trump:              model.Hearts,
		TrumpUpCard:        &model.Card{Suit: model.Hearts, Rank: model.Jack},
		TalonSize:          10,
		OpponentHandSize:   5,
		KnownOpponentCards: []model.Card{{Suit: model.Hearts, Rank: model.King}},
	}

	dist := s.est.Distribution(st)
	s.Len(dist, 13)

	sum := 0.0
	for c, p := range dist {
		s.GreaterOrEqual(p, 0.0, "card %s", c)
		s.LessOrEqual(p, 1.0, "card %s", c)
		sum += p
	}
	s.InDelta(float64(st.HiddenOpponentCards()), sum, 1e-9)
}

func (s *EstimatorSuite) TestBeatProbabilityFollowingIsCertain() {
	led := model.PlayCard(model.Card{Suit: model.Spades, Rank: model.King})
	st := &model.PublicState{
		Hand: model.Hand{
			{Suit: model.Spades, Rank: model.Ace},
			{Suit: model.Spades, Rank: model.Queen},
			{Suit: model.Hearts, Rank: model.Jack},
		},
		Trump:            model.Hearts,
		TalonSize:        5,
		OpponentHandSize: 3,
		LeaderMove:       &led,
	}

	// Heading with the ace wins for sure
	p, err := s.est.BeatProbability(st, model.Card{Suit: model.Spades, Rank: model.Ace})
	s.Require().NoError(err)
	s.Equal(0.0, p)

	// Ducking with the queen loses for sure
	p, err = s.est.BeatProbability(st, model.Card{Suit: model.Spades, Rank: model.Queen})
	s.Require().NoError(err)
	s.Equal(1.0, p)

	// Trumping in wins for sure
	p, err = s.est.BeatProbability(st, model.Card{Suit: model.Hearts, Rank: model.Jack})
	s.Require().NoError(err)
	s.Equal(0.0, p)
}

func (s *EstimatorSuite) TestBeatProbabilityRequiresOwnCard() {
	st := &model.PublicState{
		Hand:             model.Hand{{Suit: model.Clubs, Rank: model.Jack}},
		Trump:            model.Hearts,
		TalonSize:        9,
		OpponentHandSize: 5,
	}

	_, err := s.est.BeatProbability(st, model.Card{Suit: model.Spades, Rank: model.Ace})
	s.ErrorIs(err, model.ErrCardAccounted)
}

func (s *EstimatorSuite) TestBeatProbabilityLeadingMidGame() {
	// Two unseen cards, one of which beats the candidate; one hidden
	// opponent card and one talon card: exactly a coin flip
	hand := model.Hand{{Suit: model.Clubs, Rank: model.Jack}}
	unseen := []model.Card{
		{Suit: model.Clubs, Rank: model.Ace},
		{Suit: model.Diamonds, Rank: model.Jack},
	}
	st := stateWithUnseen(hand, unseen, model.Spades, 1, 1)

	p, err := s.est.BeatProbability(st, model.Card{Suit: model.Clubs, Rank: model.Jack})
	s.Require().NoError(err)
	s.InDelta(0.5, p, 1e-12)
}

func (s *EstimatorSuite) TestBeatProbabilityEndPhaseIsCertain() {
	// Talon exhausted: both unseen cards sit in the opponent's hand
	hand := model.Hand{
		{Suit: model.Clubs, Rank: model.Jack},
		{Suit: model.Spades, Rank: model.Ace},
	}
	unseen := []model.Card{
		{Suit: model.Clubs, Rank: model.Ace},
		{Suit: model.Diamonds, Rank: model.Jack},
	}
	st := stateWithUnseen(hand, unseen, model.Spades, 2, 0)

	// Every unseen card must be in the opponent's hand
	for _, c := range unseen {
		p, err := s.est.HoldProbability(st, c)
		s.Require().NoError(err)
		s.Equal(1.0, p, "card %s", c)
	}

	// The club ace is certainly there to beat the club jack
	p, err := s.est.BeatProbability(st, model.Card{Suit: model.Clubs, Rank: model.Jack})
	s.Require().NoError(err)
	s.Equal(1.0, p)

	// Nothing beats the trump ace
	p, err = s.est.BeatProbability(st, model.Card{Suit: model.Spades, Rank: model.Ace})
	s.Require().NoError(err)
	s.Equal(0.0, p)
}

func (s *EstimatorSuite) TestBeatProbabilityKnownDanger() {
	st := &model.PublicState{
		Hand:               model.Hand{{Suit: model.Clubs, Rank: model.King}},
		Trump:              model.Hearts,
		TalonSize:          7,
		OpponentHandSize:   5,
		KnownOpponentCards: []model.Card{{Suit: model.Clubs, Rank: model.Ace}},
	}

	p, err := s.est.BeatProbability(st, model.Card{Suit: model.Clubs, Rank: model.King})
	s.Require().NoError(err)
	s.Equal(1.0, p)
}

func (s *EstimatorSuite) TestDrawAtLeastOneBounds() {
	s.Equal(0.0, drawAtLeastOne(10, 0, 5))
	s.Equal(0.0, drawAtLeastOne(0, 0, 0))
	s.Equal(1.0, drawAtLeastOne(5, 3, 4))

	// 1 - C(8,5)/C(10,5) with 2 marked cards
	p := drawAtLeastOne(10, 2, 5)
	s.InDelta(1.0-(8.0*7.0*6.0*5.0*4.0)/(10.0*9.0*8.0*7.0*6.0), p, 1e-12)
	s.Greater(p, 0.0)
	s.Less(p, 1.0)
}
