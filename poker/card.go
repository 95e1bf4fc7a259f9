package poker

import (
	"fmt"
	"strings"
)

// Weight is a card rank on the 0..13 scale. Two through King occupy 1..12
// and Ace occupies 13; the auxiliary AceLow value 0 exists so the wheel
// straight can treat an ace as the lowest card. Only the 13 canonical
// weights (Two through Ace) are ever dealt from a deck.
type Weight uint8

const (
	AceLow Weight = iota
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
	Ace
)

const weightSymbols = "123456789TJQKA"

var weightNames = [14]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace",
}

// ParseWeight converts a weight symbol into its Weight. The symbol '1'
// denotes the ace-low weight.
func ParseWeight(symbol byte) (Weight, error) {
	i := strings.IndexByte(weightSymbols, symbol)
	if i < 0 {
		return 0, fmt.Errorf("invalid weight symbol: %q", symbol)
	}
	return Weight(i), nil
}

// Symbol returns the canonical one-byte symbol, '1' for the ace-low value.
func (w Weight) Symbol() byte {
	if w > Ace {
		return '?'
	}
	return weightSymbols[w]
}

// Name returns the display name. AceLow and Ace are both named "Ace".
func (w Weight) Name() string {
	if w > Ace {
		return "Unknown"
	}
	return weightNames[w]
}

func (w Weight) String() string {
	return string(w.Symbol())
}

// Suit is one of the four card suits. Suits are unordered among
// themselves: the numeric values exist only as array indexes and carry no
// rank meaning.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitSymbols = "cdhs"

var (
	suitGlyphs = [4]string{"♣", "♦", "♥", "♠"}
	suitNames  = [4]string{"clubs", "diamonds", "hearts", "spades"}
)

// ParseSuit converts a suit symbol into its Suit.
func ParseSuit(symbol byte) (Suit, error) {
	i := strings.IndexByte(suitSymbols, symbol)
	if i < 0 {
		return 0, fmt.Errorf("invalid suit symbol: %q", symbol)
	}
	return Suit(i), nil
}

// Symbol returns the canonical one-byte symbol: 'c', 'd', 'h' or 's'.
func (s Suit) Symbol() byte {
	if s > Spades {
		return '?'
	}
	return suitSymbols[s]
}

// Glyph returns the display glyph: ♣, ♦, ♥ or ♠.
func (s Suit) Glyph() string {
	if s > Spades {
		return "?"
	}
	return suitGlyphs[s]
}

// Name returns the display name, e.g. "diamonds".
func (s Suit) Name() string {
	if s > Spades {
		return "unknown"
	}
	return suitNames[s]
}

func (s Suit) String() string {
	return string(s.Symbol())
}

// Card is a concrete playing card. InHand marks a card dealt into a
// player's private hand; deck and table cards always carry it false. Cards
// are plain values and never change after construction.
type Card struct {
	Weight Weight
	Suit   Suit
	InHand bool
}

// ParseCard builds a card from a two-symbol code such as "Qd". The weight
// symbol '1' is accepted and yields an ace-low card; decks never contain
// one, but the classifier produces them for wheel straights.
func ParseCard(s string) (Card, error) {
	if s == "" {
		return Card{}, fmt.Errorf("empty card string")
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}
	w, err := ParseWeight(s[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return Card{Weight: w, Suit: suit}, nil
}

// Equal reports whether two cards are the same deck card. InHand is
// ignored: a card does not become a different card by being dealt into a
// hand.
func (c Card) Equal(o Card) bool {
	return c.Weight == o.Weight && c.Suit == o.Suit
}

// Less orders cards by weight alone; suits never influence ordering.
func (c Card) Less(o Card) bool {
	return c.Weight < o.Weight
}

func (c Card) String() string {
	return c.Weight.String() + c.Suit.String()
}

// Pretty renders the card with its suit glyph, e.g. "Q♦".
func (c Card) Pretty() string {
	return c.Weight.String() + c.Suit.Glyph()
}

// Name is the long display form, e.g. "Queen of diamonds".
func (c Card) Name() string {
	return c.Weight.Name() + " of " + c.Suit.Name()
}
