package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeckHasTwentyUniqueCards(t *testing.T) {
	deck := Deck()
	assert.Len(t, deck, DeckSize)

	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestDeckPointsTotal(t *testing.T) {
	total := 0
	for _, c := range Deck() {
		total += c.Points()
	}
	// 4 suits x (2+3+4+10+11)
	assert.Equal(t, 120, total)
}

func TestRankPoints(t *testing.T) {
	assert.Equal(t, 2, Jack.Points())
	assert.Equal(t, 3, Queen.Points())
	assert.Equal(t, 4, King.Points())
	assert.Equal(t, 10, Ten.Points())
	assert.Equal(t, 11, Ace.Points())
}

func TestBeats(t *testing.T) {
	trump := Hearts

	// Same suit decides by rank
	assert.True(t, Card{Spades, Ace}.Beats(Card{Spades, Ten}, trump))
	assert.False(t, Card{Spades, King}.Beats(Card{Spades, Ten}, trump))

	// Ten outranks king despite its rank name
	assert.True(t, Card{Clubs, Ten}.Beats(Card{Clubs, King}, trump))

	// Any trump beats any plain card
	assert.True(t, Card{Hearts, Jack}.Beats(Card{Spades, Ace}, trump))

	// Off suit, off trump never wins
	assert.False(t, Card{Diamonds, Ace}.Beats(Card{Spades, Jack}, trump))
}

func TestHandLowest(t *testing.T) {
	h := Hand{
		{Spades, Ace},
		{Clubs, Jack},
		{Diamonds, Jack},
		{Hearts, Ten},
	}
	lowest, ok := h.Lowest()
	assert.True(t, ok)
	// Ties on points break by canonical index: clubs before diamonds
	assert.Equal(t, Card{Clubs, Jack}, lowest)

	_, ok = Hand{}.Lowest()
	assert.False(t, ok)
}

func TestMovePlayedCard(t *testing.T) {
	c := Card{Spades, Ten}
	card, ok := PlayCard(c).PlayedCard()
	assert.True(t, ok)
	assert.Equal(t, c, card)

	// A marriage leads its queen
	card, ok = DeclareMarriage(Hearts).PlayedCard()
	assert.True(t, ok)
	assert.Equal(t, Card{Hearts, Queen}, card)

	_, ok = ExchangeTrump().PlayedCard()
	assert.False(t, ok)
	_, ok = CloseTalon().PlayedCard()
	assert.False(t, ok)
}

func TestPublicStatePhase(t *testing.T) {
	st := &PublicState{TalonSize: 9}
	assert.Equal(t, TalonPhase, st.Phase())

	st.TalonSize = 0
	assert.Equal(t, EndPhase, st.Phase())

	st = &PublicState{TalonSize: 5, TalonClosed: true}
	assert.Equal(t, EndPhase, st.Phase())
}

func TestUnseenCardsExcludesAllKnownLocations(t *testing.T) {
	up := Card{Hearts, Jack}
	led := PlayCard(Card{Spades, Ace})
	st := &PublicState{
		Hand:               Hand{{Clubs, Jack}, {Clubs, Queen}},
		Trump:              Hearts,
		TrumpUpCard:        &up,
		Played:             []Card{{Diamonds, Ten}, {Diamonds, Ace}},
		KnownOpponentCards: []Card{{Hearts, King}},
		LeaderMove:         &led,
		TalonSize:          7,
		OpponentHandSize:   5,
	}

	unseen := st.UnseenCards()
	assert.Len(t, unseen, DeckSize-7)
	for _, c := range unseen {
		assert.False(t, st.Seen(c), "unseen card %s reported as seen", c)
	}

	assert.Equal(t, 4, st.HiddenOpponentCards())
}
