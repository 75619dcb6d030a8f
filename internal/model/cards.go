package model

import "fmt"

// Suit is one of the four card suits
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in the deck
const NumSuits = 4

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank is one of the five ranks in the 20-card deck.
// The iota order is also the trick-taking strength order (Jack lowest, Ace highest).
type Rank int

const (
	Jack Rank = iota
	Queen
	King
	Ten
	Ace
)

// NumRanks is the number of ranks in the deck
const NumRanks = 5

// Points returns the card points awarded for winning this rank in a trick
func (r Rank) Points() int {
	switch r {
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	case Ten:
		return 10
	case Ace:
		return 11
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ten:
		return "10"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is an immutable (suit, rank) pair
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Points returns the card's trick point value
func (c Card) Points() int {
	return c.Rank.Points()
}

// Index returns a stable 0..19 index for the card, used for deterministic ordering
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank)
}

// Beats reports whether playing c as follower wins a trick led with led,
// given the trump suit
func (c Card) Beats(led Card, trump Suit) bool {
	if c.Suit == led.Suit {
		return c.Rank > led.Rank
	}
	return c.Suit == trump
}

// DeckSize is the number of cards in the Schnapsen deck
const DeckSize = NumSuits * NumRanks

// Deck returns the full 20-card deck in canonical index order
func Deck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Clubs; s <= Spades; s++ {
		for r := Jack; r <= Ace; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Hand is the set of cards currently held by one player.
// It is owned and mutated by the engine; strategies only read it.
type Hand []Card

// Contains reports whether the hand holds the given card
func (h Hand) Contains(c Card) bool {
	for _, card := range h {
		if card == c {
			return true
		}
	}
	return false
}

// OfSuit returns the cards of the given suit, in hand order
func (h Hand) OfSuit(s Suit) []Card {
	var cards []Card
	for _, card := range h {
		if card.Suit == s {
			cards = append(cards, card)
		}
	}
	return cards
}

// Lowest returns the card with the fewest points, breaking ties by canonical
// index so the result is reproducible
func (h Hand) Lowest() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}
	best := h[0]
	for _, card := range h[1:] {
		if card.Points() < best.Points() ||
			(card.Points() == best.Points() && card.Index() < best.Index()) {
			best = card
		}
	}
	return best, true
}

// Clone returns a copy of the hand
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}
