package game

import (
	"github.com/mcoot/schnapsen-go/internal/dependencies/random"
	"github.com/mcoot/schnapsen-go/internal/model"
)

// Seat identifies one of the two players
type Seat int

const (
	SeatA Seat = 0
	SeatB Seat = 1
)

// Other returns the opposing seat
func (s Seat) Other() Seat {
	return 1 - s
}

func (s Seat) String() string {
	if s == SeatA {
		return "A"
	}
	return "B"
}

// HandSize is the number of cards each player holds while the talon lasts
const HandSize = 5

// WinningPoints is the direct point total that ends the game
const WinningPoints = 66

type playerState struct {
	hand   model.Hand
	points model.Points
	tricks int
	// known holds cards in this player's hand that the opponent has seen
	// (marriage partners, the exchanged trump card)
	known []model.Card
}

// Game holds the full (referee's) state of one Schnapsen game. Players never
// see a Game directly; they receive a PublicState built by PerspectiveOf.
type Game struct {
	trump  model.Suit
	upCard *model.Card
	talon  []model.Card
	closed bool
	// closerSeat and closeOppTricks record who closed the talon and how many
	// tricks the opponent had at that moment, for the failed-close penalty
	closerSeat     Seat
	closeOppTricks int

	players [2]playerState
	leader  Seat
	// ledMove is the move currently on the table, nil between tricks
	ledMove *model.Move
	played  []model.Card

	over       bool
	winner     Seat
	gamePoints int
}

// New deals a fresh game using the given random source: five cards each,
// one face-up trump card, and a nine-card talon
func New(rnd random.Random) *Game {
	deck := model.Deck()
	rnd.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	g := &Game{leader: SeatA}
	g.players[SeatA].hand = model.Hand(deck[0:HandSize]).Clone()
	g.players[SeatB].hand = model.Hand(deck[HandSize : 2*HandSize]).Clone()

	up := deck[2*HandSize]
	g.upCard = &up
	g.trump = up.Suit
	g.talon = append([]model.Card(nil), deck[2*HandSize+1:]...)
	return g
}

// Trump returns the trump suit
func (g *Game) Trump() model.Suit {
	return g.trump
}

// Leader returns the seat leading the current trick
func (g *Game) Leader() Seat {
	return g.leader
}

// ToAct returns the seat whose turn it is
func (g *Game) ToAct() Seat {
	if g.ledMove != nil {
		return g.leader.Other()
	}
	return g.leader
}

// Over reports whether the game has finished
func (g *Game) Over() bool {
	return g.over
}

// Winner returns the winning seat and the 1-3 game points awarded.
// Only meaningful once Over() is true.
func (g *Game) Winner() (Seat, int) {
	return g.winner, g.gamePoints
}

// Points returns the current score of the given seat
func (g *Game) Points(seat Seat) model.Points {
	return g.players[seat].points
}

// Tricks returns how many tricks the given seat has taken
func (g *Game) Tricks(seat Seat) int {
	return g.players[seat].tricks
}

// Hand returns a copy of the given seat's hand. Exposed for tests and for
// building perspectives; strategies only ever see the PublicState copy.
func (g *Game) Hand(seat Seat) model.Hand {
	return g.players[seat].hand.Clone()
}

// TalonSize returns the number of cards left to draw, including the up-card
func (g *Game) TalonSize() int {
	n := len(g.talon)
	if g.upCard != nil {
		n++
	}
	return n
}

// Closed reports whether the talon has been closed
func (g *Game) Closed() bool {
	return g.closed
}

// PerspectiveOf builds the immutable view of the game for the given seat
func (g *Game) PerspectiveOf(seat Seat) *model.PublicState {
	opp := seat.Other()

	st := &model.PublicState{
		Hand:             g.players[seat].hand.Clone(),
		Trump:            g.trump,
		TalonSize:        g.TalonSize(),
		TalonClosed:      g.closed,
		OpponentHandSize: len(g.players[opp].hand),
		Played:           append([]model.Card(nil), g.played...),
		MyPoints:         g.players[seat].points,
		OpponentPoints:   g.players[opp].points,
		MyTricks:         g.players[seat].tricks,
		OpponentTricks:   g.players[opp].tricks,
	}
	if g.upCard != nil {
		up := *g.upCard
		st.TrumpUpCard = &up
	}
	if len(g.players[opp].known) > 0 {
		st.KnownOpponentCards = append([]model.Card(nil), g.players[opp].known...)
	}
	if g.ledMove != nil && g.leader == opp {
		led := *g.ledMove
		st.LeaderMove = &led
	}
	return st
}
