package game

import (
	"fmt"

	"github.com/mcoot/schnapsen-go/internal/dependencies/random"
	"github.com/mcoot/schnapsen-go/internal/model"
)

// Player chooses one legal move given its public view of the game.
// Implementations must return a move from the supplied legal set.
type Player interface {
	ChooseMove(state *model.PublicState, legal []model.Move) (model.Move, error)
}

// Result is the outcome of one completed game
type Result struct {
	Winner     Seat
	GamePoints int
	PointsA    model.Points
	PointsB    model.Points
	TricksA    int
	TricksB    int
}

// maxTurns is a safety limit for the PlayGame loop; a game of Schnapsen
// never takes more than a few dozen moves
const maxTurns = 200

// Apply validates and executes one move for the given seat, resolving the
// trick and drawing from the talon when the move completes one
func (g *Game) Apply(seat Seat, move model.Move) error {
	if g.over {
		return model.ErrGameOver
	}
	if g.ToAct() != seat {
		return model.ErrNotYourTurn
	}
	if !g.isLegal(seat, move) {
		return model.ErrIllegalMove
	}

	switch move.Type {
	case model.MoveExchangeTrump:
		g.exchangeTrump(seat)
		return nil
	case model.MoveCloseTalon:
		g.closed = true
		g.closerSeat = seat
		g.closeOppTricks = g.players[seat.Other()].tricks
		return nil
	case model.MoveMarriage:
		g.declareMarriage(seat, move)
		return nil
	case model.MovePlayCard:
		if g.ledMove == nil {
			g.lead(seat, move)
			return nil
		}
		g.answer(seat, move.Card)
		return nil
	default:
		return model.ErrIllegalMove
	}
}

// exchangeTrump swaps the trump jack for the face-up trump card. The swapped
// in card is public knowledge, as is the jack now sitting under the talon.
func (g *Game) exchangeTrump(seat Seat) {
	p := &g.players[seat]
	jack := model.Card{Suit: g.trump, Rank: model.Jack}
	taken := *g.upCard

	p.hand = removeCard(p.hand, jack)
	p.known = removeCard(p.known, jack)
	p.hand = append(p.hand, taken)
	p.known = append(p.known, taken)

	g.upCard = &jack
}

// declareMarriage scores the declaration and leads the queen. Marriage
// points stay pending until the declarer has taken a trick.
func (g *Game) declareMarriage(seat Seat, move model.Move) {
	p := &g.players[seat]

	pts := 20
	if move.Suit == g.trump {
		pts = 40
	}
	if p.tricks > 0 {
		p.points.Direct += pts
	} else {
		p.points.Pending += pts
	}

	// Both cards are shown; the king stays in hand as public knowledge
	king := model.Card{Suit: move.Suit, Rank: model.King}
	if !model.Hand(p.known).Contains(king) {
		p.known = append(p.known, king)
	}

	g.lead(seat, move)
	g.checkWin(seat)
}

// lead puts the move's card on the table and removes it from the hand
func (g *Game) lead(seat Seat, move model.Move) {
	card, ok := move.PlayedCard()
	if ok {
		p := &g.players[seat]
		p.hand = removeCard(p.hand, card)
		p.known = removeCard(p.known, card)
	}
	led := move
	g.ledMove = &led
}

// answer completes the trick, awards points, draws and checks for the end
// of the game
func (g *Game) answer(seat Seat, card model.Card) {
	p := &g.players[seat]
	p.hand = removeCard(p.hand, card)
	p.known = removeCard(p.known, card)

	led, _ := g.ledMove.PlayedCard()
	w := trickWinner(g.leader, led, card, g.trump)

	pw := &g.players[w]
	pw.points.Direct += led.Points() + card.Points()
	pw.tricks++
	if pw.points.Pending > 0 {
		pw.points.Direct += pw.points.Pending
		pw.points.Pending = 0
	}

	g.played = append(g.played, led, card)
	g.ledMove = nil
	g.leader = w

	if !g.closed && g.TalonSize() > 0 {
		g.draw(w)
		g.draw(w.Other())
	}

	if g.checkWin(w) {
		return
	}
	if len(g.players[SeatA].hand) == 0 && len(g.players[SeatB].hand) == 0 {
		g.finishExhausted(w)
	}
}

// draw moves the next talon card into the seat's hand. The final draw is the
// face-up trump card, which the opponent has seen.
func (g *Game) draw(seat Seat) {
	p := &g.players[seat]
	if len(g.talon) > 0 {
		p.hand = append(p.hand, g.talon[0])
		g.talon = g.talon[1:]
		return
	}
	if g.upCard != nil {
		p.hand = append(p.hand, *g.upCard)
		p.known = append(p.known, *g.upCard)
		g.upCard = nil
	}
}

// checkWin ends the game if the seat has reached 66 direct points
func (g *Game) checkWin(seat Seat) bool {
	if g.players[seat].points.Direct < WinningPoints {
		return false
	}
	loser := seat.Other()
	points := 1
	if g.players[loser].tricks == 0 {
		points = 3
	} else if g.players[loser].points.Total() < 33 {
		points = 2
	}
	g.over = true
	g.winner = seat
	g.gamePoints = points
	return true
}

// finishExhausted settles a game where every card was played without either
// side reaching 66: the last trick wins, unless a failed talon close hands
// the win to the closer's opponent
func (g *Game) finishExhausted(lastTrickWinner Seat) {
	g.over = true
	if g.closed {
		g.winner = g.closerSeat.Other()
		g.gamePoints = 2
		if g.closeOppTricks == 0 {
			g.gamePoints = 3
		}
		return
	}
	g.winner = lastTrickWinner
	g.gamePoints = 1
}

func removeCard(cards []model.Card, c model.Card) []model.Card {
	for i, card := range cards {
		if card == c {
			return append(cards[:i:i], cards[i+1:]...)
		}
	}
	return cards
}

// PlayGame deals a game from the random source and drives the two players to
// completion; leader takes the first lead
func PlayGame(leader, follower Player, rnd random.Random) (*Result, error) {
	g := New(rnd)
	players := [2]Player{leader, follower}

	for turn := 0; turn < maxTurns && !g.over; turn++ {
		seat := g.ToAct()
		legal := g.LegalMoves(seat)
		if len(legal) == 0 {
			return nil, fmt.Errorf("seat %s has no legal moves: %w", seat, model.ErrNoLegalMoves)
		}

		move, err := players[seat].ChooseMove(g.PerspectiveOf(seat), legal)
		if err != nil {
			return nil, fmt.Errorf("seat %s failed to choose: %w", seat, err)
		}
		if err := g.Apply(seat, move); err != nil {
			return nil, fmt.Errorf("seat %s played %s: %w", seat, move, err)
		}
	}

	if !g.over {
		return nil, fmt.Errorf("game did not finish within %d turns", maxTurns)
	}

	winner, points := g.Winner()
	return &Result{
		Winner:     winner,
		GamePoints: points,
		PointsA:    g.players[SeatA].points,
		PointsB:    g.players[SeatB].points,
		TricksA:    g.players[SeatA].tricks,
		TricksB:    g.players[SeatB].tricks,
	}, nil
}
