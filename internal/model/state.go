package model

// Phase identifies which stage of the game a state belongs to
type Phase int

const (
	// TalonPhase is the hidden-information stage: the talon still holds
	// cards, players draw after each trick and need not follow suit
	TalonPhase Phase = iota
	// EndPhase begins once the talon is exhausted or closed: strict
	// following rules apply and all card locations are determined
	EndPhase
)

// Points tracks one player's score. Direct points count toward the 66
// target; pending points are declared marriage points that only convert to
// direct points once the declarer has won a trick.
type Points struct {
	Direct  int `json:"direct"`
	Pending int `json:"pending"`
}

// Total returns direct plus pending points
func (p Points) Total() int {
	return p.Direct + p.Pending
}

// PublicState is the snapshot of the game visible to one player for a single
// decision. It is built fresh by the engine each turn and never mutated by
// strategies.
type PublicState struct {
	// Hand is the player's own cards
	Hand Hand `json:"hand"`
	// Trump is the trump suit for this game
	Trump Suit `json:"trump"`
	// TrumpUpCard is the face-up trump card under the talon, nil once it
	// has been drawn or the talon closed
	TrumpUpCard *Card `json:"trump_up_card,omitempty"`
	// TalonSize is the number of cards left to draw, including the up-card
	TalonSize int `json:"talon_size"`
	// TalonClosed reports whether a player closed the talon
	TalonClosed bool `json:"talon_closed"`
	// OpponentHandSize is the number of cards the opponent holds
	OpponentHandSize int `json:"opponent_hand_size"`
	// Played holds every card from completed tricks, both sides
	Played []Card `json:"played"`
	// KnownOpponentCards are cards known to sit in the opponent's hand,
	// revealed by marriage declarations or the trump exchange
	KnownOpponentCards []Card `json:"known_opponent_cards,omitempty"`
	// LeaderMove is the move the opponent led this trick with, nil when
	// this player is leading
	LeaderMove *Move `json:"leader_move,omitempty"`
	// MyPoints and OpponentPoints are the running scores
	MyPoints       Points `json:"my_points"`
	OpponentPoints Points `json:"opponent_points"`
	// MyTricks and OpponentTricks count tricks taken so far
	MyTricks       int `json:"my_tricks"`
	OpponentTricks int `json:"opponent_tricks"`
}

// Phase returns the stage the game is in from this state's point of view
func (s *PublicState) Phase() Phase {
	if s.TalonClosed || s.TalonSize == 0 {
		return EndPhase
	}
	return TalonPhase
}

// IsLeading reports whether this player leads the current trick
func (s *PublicState) IsLeading() bool {
	return s.LeaderMove == nil
}

// Seen reports whether the card's location is already determined from this
// player's point of view: in hand, played, face up under the talon, or known
// to be held by the opponent
func (s *PublicState) Seen(c Card) bool {
	if s.Hand.Contains(c) {
		return true
	}
	if s.TrumpUpCard != nil && *s.TrumpUpCard == c {
		return true
	}
	for _, p := range s.Played {
		if p == c {
			return true
		}
	}
	for _, k := range s.KnownOpponentCards {
		if k == c {
			return true
		}
	}
	if s.LeaderMove != nil {
		if led, ok := s.LeaderMove.PlayedCard(); ok && led == c {
			return true
		}
	}
	return false
}

// UnseenCards returns the cards whose location is unknown to this player:
// somewhere in the hidden talon or the unrevealed part of the opponent's hand
func (s *PublicState) UnseenCards() []Card {
	var unseen []Card
	for _, c := range Deck() {
		if !s.Seen(c) {
			unseen = append(unseen, c)
		}
	}
	return unseen
}

// HiddenOpponentCards returns how many opponent cards are not publicly known
func (s *PublicState) HiddenOpponentCards() int {
	n := s.OpponentHandSize - len(s.KnownOpponentCards)
	if n < 0 {
		return 0
	}
	return n
}
