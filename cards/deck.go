package cards

import (
	"math/rand"
)

// StandardDeckSize is the size of a deck without jokers.
const StandardDeckSize = 52

// Deck represents an ordered deck of cards dealt from the top
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// DeckOption configures deck construction
type DeckOption func(*Deck)

// WithJokers adds two jokers to the deck before shuffling
func WithJokers() DeckOption {
	return func(d *Deck) {
		d.cards = append(d.cards, NewJoker(), NewJoker())
	}
}

// NewDeck creates a new shuffled deck with an explicit RNG. Pass a seeded
// source (see internal/randutil) for reproducible shuffles.
func NewDeck(rng *rand.Rand, opts ...DeckOption) *Deck {
	d := &Deck{
		cards: make([]Card, 0, StandardDeckSize+2),
		rng:   rng,
	}

	// Canonical order: suits outer loop, ranks inner loop. The shuffle is
	// only reproducible for a given seed because this order is fixed.
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	for _, opt := range opts {
		opt(d)
	}

	d.Shuffle()
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates and resets the
// deal cursor
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// Size returns the total number of cards in the deck
func (d *Deck) Size() int {
	return len(d.cards)
}

// CardsRemaining returns the number of cards left to deal
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
