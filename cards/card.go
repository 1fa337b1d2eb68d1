package cards

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Joker is the zero rank so that a zero-value
// Card is a joker rather than a phantom ace of spades.
type Rank int

const (
	Joker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Joker:
		return "Joker"
	default:
		if r >= Two && r <= Ten {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// NewJoker creates a joker, which carries no suit
func NewJoker() Card {
	return Card{Rank: Joker}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	if c.Rank == Joker {
		return "Joker"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Rank != Joker && c.Suit.IsRed()
}

// IsJoker returns true if the card is a joker
func (c Card) IsJoker() bool {
	return c.Rank == Joker
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

// Value returns the scoring value of the card: aces count 11, face cards
// count 10, number cards count their face value. Jokers score 0 and are
// handled by the settlement rules instead.
func (c Card) Value() int {
	switch {
	case c.Rank == Joker:
		return 0
	case c.Rank == Ace:
		return 11
	case c.IsFaceCard():
		return 10
	default:
		return int(c.Rank)
	}
}
