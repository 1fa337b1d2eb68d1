package cards

import (
	"math/rand"
	"testing"
)

func TestCardValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		card Card
		want int
	}{
		{"ace counts eleven", NewCard(Spades, Ace), 11},
		{"king counts ten", NewCard(Hearts, King), 10},
		{"queen counts ten", NewCard(Diamonds, Queen), 10},
		{"jack counts ten", NewCard(Clubs, Jack), 10},
		{"ten counts ten", NewCard(Spades, Ten), 10},
		{"two counts two", NewCard(Hearts, Two), 2},
		{"seven counts seven", NewCard(Clubs, Seven), 7},
		{"joker counts zero", NewJoker(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	if got := NewCard(Spades, Ace).String(); got != "A♠" {
		t.Errorf("Expected 'A♠', got %s", got)
	}
	if got := NewCard(Hearts, Ten).String(); got != "10♥" {
		t.Errorf("Expected '10♥', got %s", got)
	}
	if got := NewJoker().String(); got != "Joker" {
		t.Errorf("Expected 'Joker', got %s", got)
	}
}

func TestCardColor(t *testing.T) {
	t.Parallel()
	if !NewCard(Hearts, Two).IsRed() {
		t.Error("Hearts should be red")
	}
	if !NewCard(Diamonds, King).IsRed() {
		t.Error("Diamonds should be red")
	}
	if NewCard(Spades, Two).IsRed() {
		t.Error("Spades should be black")
	}
	if NewJoker().IsRed() {
		t.Error("Joker has no color")
	}
}

func TestDeckComposition(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(1)))
	if deck.Size() != StandardDeckSize {
		t.Fatalf("Expected %d cards, got %d", StandardDeckSize, deck.Size())
	}

	seen := make(map[Card]bool)
	for _, c := range deck.Deal(StandardDeckSize) {
		if c.IsJoker() {
			t.Errorf("Standard deck should not contain jokers")
		}
		if seen[c] {
			t.Errorf("Duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != StandardDeckSize {
		t.Errorf("Expected %d unique cards, got %d", StandardDeckSize, len(seen))
	}
}

func TestDeckWithJokers(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(1)), WithJokers())
	if deck.Size() != StandardDeckSize+2 {
		t.Fatalf("Expected %d cards, got %d", StandardDeckSize+2, deck.Size())
	}

	jokers := 0
	for _, c := range deck.Deal(deck.Size()) {
		if c.IsJoker() {
			jokers++
		}
	}
	if jokers != 2 {
		t.Errorf("Expected 2 jokers, got %d", jokers)
	}
}

func TestShuffleDeterminism(t *testing.T) {
	t.Parallel()
	a := NewDeck(rand.New(rand.NewSource(42)))
	b := NewDeck(rand.New(rand.NewSource(42)))

	cardsA := a.Deal(StandardDeckSize)
	cardsB := b.Deal(StandardDeckSize)
	for i := range cardsA {
		if cardsA[i] != cardsB[i] {
			t.Fatalf("Same seed diverged at index %d: %s vs %s", i, cardsA[i], cardsB[i])
		}
	}

	c := NewDeck(rand.New(rand.NewSource(43)))
	cardsC := c.Deal(StandardDeckSize)
	same := true
	for i := range cardsA {
		if cardsA[i] != cardsC[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical permutations")
	}
}

func TestDealConsumesDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(7)))

	hand := deck.Deal(4)
	if len(hand) != 4 {
		t.Fatalf("Expected 4 cards, got %d", len(hand))
	}
	if deck.CardsRemaining() != StandardDeckSize-4 {
		t.Errorf("Expected %d remaining, got %d", StandardDeckSize-4, deck.CardsRemaining())
	}

	// Five players of four cards always fit in a 52-card deck
	for range 4 {
		if cards := deck.Deal(4); cards == nil {
			t.Fatal("Deck ran out dealing five hands")
		}
	}

	if deck.Deal(StandardDeckSize) != nil {
		t.Error("Overdrawing should return nil")
	}
}

func TestShuffleResetsCursor(t *testing.T) {
	t.Parallel()
	deck := NewDeck(rand.New(rand.NewSource(9)))
	deck.Deal(20)
	deck.Shuffle()
	if deck.CardsRemaining() != StandardDeckSize {
		t.Errorf("Shuffle should reset the cursor, %d remaining", deck.CardsRemaining())
	}
}
