package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())

	assert.Equal(t, Card{Rank: 2, Suit: Spades}, deck.Cards[0])

	assert.Equal(t, Card{Rank: 14, Suit: Diamonds}, deck.Cards[51])

	assert.Equal(t, "8315378a6fd6dc6dd3e56c567657fd2275de151e", deck.HashCode())

	deck.Shuffle(1)
	expected := deck.HashCode()
	assert.Equal(t, int64(1), deck.GetSeed())
	assert.NotEqual(t, "8315378a6fd6dc6dd3e56c567657fd2275de151e", expected)

	// same seed, same order
	deck.Shuffle(1)
	assert.Equal(t, expected, deck.HashCode())

	deck.Shuffle(2)
	assert.NotEqual(t, expected, deck.HashCode())
}

func TestDeck_ShuffleKeepsEveryCard(t *testing.T) {
	d := New()
	d.Shuffle(42)

	seen := make(map[Card]bool)
	for _, c := range d.Cards {
		seen[c] = true
	}

	assert.Equal(t, 52, len(seen))
	assert.Panics(t, func() {
		d.Shuffle(-1)
	})
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		_, err := deck.Draw()
		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != (Card{}) {
		t.Errorf("expected zero card, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}

	assert.Equal(t, ErrEndOfDeck, deck.Burn())

	deck.Shuffle(7)
	if !deck.CanDraw(52) {
		t.Errorf("expected Shuffle() to reshuffle the deck")
	}
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.NoError(d.Burn())
	cards, err := d.DrawN(3)
	a.NoError(err)
	a.Equal("3s,4s,5s", CardsToString(cards))
	a.Equal(48, d.CardsLeft())

	_, err = d.DrawN(49)
	a.Equal(ErrEndOfDeck, err)
	a.Equal(48, d.CardsLeft())
}
