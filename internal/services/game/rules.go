package game

import (
	"github.com/mcoot/schnapsen-go/internal/model"
)

// LegalMoves returns every move the given seat may make right now. The
// result is empty when it is not that seat's turn or the game is over.
func (g *Game) LegalMoves(seat Seat) []model.Move {
	if g.over || g.ToAct() != seat {
		return nil
	}

	if g.ledMove == nil {
		return g.leaderMoves(seat)
	}
	return g.followerMoves(seat)
}

// leaderMoves lists the options when leading: any card, plus marriage,
// exchange and close declarations where available
func (g *Game) leaderMoves(seat Seat) []model.Move {
	hand := g.players[seat].hand
	moves := make([]model.Move, 0, len(hand)+3)
	for _, c := range hand {
		moves = append(moves, model.PlayCard(c))
	}

	for s := model.Clubs; s <= model.Spades; s++ {
		if hand.Contains(model.Card{Suit: s, Rank: model.King}) &&
			hand.Contains(model.Card{Suit: s, Rank: model.Queen}) {
			moves = append(moves, model.DeclareMarriage(s))
		}
	}

	if !g.closed && g.upCard != nil && len(g.talon) > 0 &&
		hand.Contains(model.Card{Suit: g.trump, Rank: model.Jack}) {
		moves = append(moves, model.ExchangeTrump())
	}

	if !g.closed && g.TalonSize() > 0 {
		moves = append(moves, model.CloseTalon())
	}

	return moves
}

// followerMoves lists the options when answering a led card. While the talon
// is open, anything goes. Once it is exhausted or closed the follower must
// follow suit, must beat the led card if able, and must trump when void.
func (g *Game) followerMoves(seat Seat) []model.Move {
	hand := g.players[seat].hand
	led, _ := g.ledMove.PlayedCard()

	if !g.closed && g.TalonSize() > 0 {
		moves := make([]model.Move, 0, len(hand))
		for _, c := range hand {
			moves = append(moves, model.PlayCard(c))
		}
		return moves
	}

	sameSuit := hand.OfSuit(led.Suit)
	if len(sameSuit) > 0 {
		var higher []model.Card
		for _, c := range sameSuit {
			if c.Rank > led.Rank {
				higher = append(higher, c)
			}
		}
		if len(higher) > 0 {
			return playMoves(higher)
		}
		return playMoves(sameSuit)
	}

	if led.Suit != g.trump {
		trumps := hand.OfSuit(g.trump)
		if len(trumps) > 0 {
			return playMoves(trumps)
		}
	}

	return playMoves(hand)
}

func playMoves(cards []model.Card) []model.Move {
	moves := make([]model.Move, len(cards))
	for i, c := range cards {
		moves[i] = model.PlayCard(c)
	}
	return moves
}

// trickWinner resolves a completed trick: same suit decides by rank, trump
// beats plain suits, and otherwise the leader keeps the trick
func trickWinner(leader Seat, led, answer model.Card, trump model.Suit) Seat {
	if answer.Beats(led, trump) {
		return leader.Other()
	}
	return leader
}

// isLegal reports whether the move appears in the seat's current legal set
func (g *Game) isLegal(seat Seat, move model.Move) bool {
	for _, m := range g.LegalMoves(seat) {
		if m == move {
			return true
		}
	}
	return false
}
