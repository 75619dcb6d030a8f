package model

import "fmt"

// MoveType distinguishes the kinds of actions a player may take on their turn
type MoveType int

const (
	// MovePlayCard plays a single card into the trick
	MovePlayCard MoveType = iota
	// MoveMarriage declares a king-queen pair and leads the queen
	MoveMarriage
	// MoveExchangeTrump swaps the trump jack for the face-up trump card
	MoveExchangeTrump
	// MoveCloseTalon turns the talon face down, ending draws and forcing
	// strict following rules for the rest of the game
	MoveCloseTalon
)

// Move is one legal action. Construct moves through the helper functions so
// that equality comparison of moves behaves as expected.
type Move struct {
	Type MoveType `json:"type"`
	// Card is set for MovePlayCard
	Card Card `json:"card,omitempty"`
	// Suit is set for MoveMarriage
	Suit Suit `json:"suit,omitempty"`
}

// PlayCard builds a card-play move
func PlayCard(c Card) Move {
	return Move{Type: MovePlayCard, Card: c}
}

// DeclareMarriage builds a marriage declaration for the given suit
func DeclareMarriage(s Suit) Move {
	return Move{Type: MoveMarriage, Suit: s}
}

// ExchangeTrump builds a trump jack exchange move
func ExchangeTrump() Move {
	return Move{Type: MoveExchangeTrump}
}

// CloseTalon builds a talon-closing move
func CloseTalon() Move {
	return Move{Type: MoveCloseTalon}
}

// PlayedCard returns the card the move puts on the table, if any.
// A marriage leads the queen of its suit; exchange and close place no card.
func (m Move) PlayedCard() (Card, bool) {
	switch m.Type {
	case MovePlayCard:
		return m.Card, true
	case MoveMarriage:
		return Card{Suit: m.Suit, Rank: Queen}, true
	default:
		return Card{}, false
	}
}

func (m Move) String() string {
	switch m.Type {
	case MovePlayCard:
		return fmt.Sprintf("play %s", m.Card)
	case MoveMarriage:
		return fmt.Sprintf("marriage %s", m.Suit)
	case MoveExchangeTrump:
		return "exchange trump jack"
	case MoveCloseTalon:
		return "close talon"
	default:
		return "unknown move"
	}
}
