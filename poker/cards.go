package poker

import (
	"fmt"
	"strings"
)

// Group capacities. Raw combination groups hold at most seven cards (two
// private plus up to five shared); tables and hands are fixed collaborators
// with their own bounds.
const (
	MaxGroupCards = 7
	TableMax      = 5
	HandSize      = 2
)

// CardGroup is an ordered, capacity-bounded collection of distinct cards.
// Construct with NewCardGroup or ParseCards; the zero value holds nothing.
type CardGroup struct {
	cards []Card
	max   int
}

// NewCardGroup returns an empty group holding at most max cards.
func NewCardGroup(max int) *CardGroup {
	return &CardGroup{max: max}
}

// ParseCards builds a group from slash-separated notation such as
// "3d/Tc/As". A compact run without separators ("3dTcAs") is also
// accepted. Parsing fails on an empty string, a malformed card, a
// duplicate card, or more cards than max.
func ParseCards(s string, max int) (*CardGroup, error) {
	codes, err := splitCardCodes(s)
	if err != nil {
		return nil, err
	}
	g := NewCardGroup(max)
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		if err := g.Add(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func splitCardCodes(s string) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("empty cards string")
	}
	if strings.Contains(s, "/") {
		return strings.Split(s, "/"), nil
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid cards string: %q", s)
	}
	codes := make([]string, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		codes = append(codes, s[i:i+2])
	}
	return codes, nil
}

// Add appends cards in order, rejecting overflow and duplicates.
func (g *CardGroup) Add(cards ...Card) error {
	for _, c := range cards {
		if len(g.cards) >= g.max {
			return fmt.Errorf("group is full (%d cards max)", g.max)
		}
		if g.Contains(c) {
			return fmt.Errorf("duplicate card: %s", c)
		}
		g.cards = append(g.cards, c)
	}
	return nil
}

// Contains reports whether the group holds the exact card, by weight and
// suit.
func (g *CardGroup) Contains(c Card) bool {
	for _, o := range g.cards {
		if o.Equal(c) {
			return true
		}
	}
	return false
}

// Cards returns a copy of the group's cards in insertion order.
func (g *CardGroup) Cards() []Card {
	out := make([]Card, len(g.cards))
	copy(out, g.cards)
	return out
}

// Len returns the number of cards currently held.
func (g *CardGroup) Len() int {
	return len(g.cards)
}

// Max returns the group's capacity.
func (g *CardGroup) Max() int {
	return g.max
}

// Clear empties the group for reuse.
func (g *CardGroup) Clear() {
	g.cards = g.cards[:0]
}

// DealFrom replaces the group's contents with n cards from the deck.
func (g *CardGroup) DealFrom(d *Deck, n int) error {
	if n > g.max {
		return fmt.Errorf("cannot deal %d cards into a group of %d", n, g.max)
	}
	cards, err := d.Deal(n)
	if err != nil {
		return err
	}
	g.cards = append(g.cards[:0], cards...)
	return nil
}

func (g *CardGroup) String() string {
	parts := make([]string, len(g.cards))
	for i, c := range g.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, "/")
}

// Table holds the shared community cards, at most five.
type Table struct {
	CardGroup
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{CardGroup{max: TableMax}}
}

// ParseTable builds a table from card notation, e.g. "6s/Jc/Ah/9h/3d".
func ParseTable(s string) (*Table, error) {
	g, err := ParseCards(s, TableMax)
	if err != nil {
		return nil, err
	}
	return &Table{*g}, nil
}

// Hand holds a player's two private cards. Filling a hand (by parsing,
// dealing, or adding the second card) marks both cards InHand, reorders
// them higher weight first, and derives the short hand type: "QQ" for
// pairs, otherwise weight symbols plus 's' (suited) or 'o' (offsuit), as
// in "AKs".
type Hand struct {
	CardGroup
	handType string
	pair     bool
}

// NewHand returns an empty hand.
func NewHand() *Hand {
	return &Hand{CardGroup: CardGroup{max: HandSize}}
}

// ParseHand builds a hand from notation for exactly two cards, e.g.
// "Jd/Jh".
func ParseHand(s string) (*Hand, error) {
	g, err := ParseCards(s, HandSize)
	if err != nil {
		return nil, err
	}
	if g.Len() != HandSize {
		return nil, fmt.Errorf("hand needs exactly %d cards, got %d", HandSize, g.Len())
	}
	h := &Hand{CardGroup: *g}
	h.received()
	return h, nil
}

// Add appends to the hand; when the second card arrives the hand is typed
// and its cards marked private.
func (h *Hand) Add(cards ...Card) error {
	if err := h.CardGroup.Add(cards...); err != nil {
		return err
	}
	if h.Len() == HandSize {
		h.received()
	}
	return nil
}

// DealFrom replaces the hand with two cards from the deck.
func (h *Hand) DealFrom(d *Deck) error {
	if err := h.CardGroup.DealFrom(d, HandSize); err != nil {
		return err
	}
	h.received()
	return nil
}

func (h *Hand) received() {
	for i := range h.cards {
		h.cards[i].InHand = true
	}
	if h.cards[0].Weight < h.cards[1].Weight {
		h.cards[0], h.cards[1] = h.cards[1], h.cards[0]
	}
	h.handType = h.cards[0].Weight.String() + h.cards[1].Weight.String()
	h.pair = h.cards[0].Weight == h.cards[1].Weight
	if !h.pair {
		if h.cards[0].Suit == h.cards[1].Suit {
			h.handType += "s"
		} else {
			h.handType += "o"
		}
	}
}

// Type returns the short hand type, empty until the hand is full.
func (h *Hand) Type() string {
	return h.handType
}

// IsPair reports whether both cards share a weight.
func (h *Hand) IsPair() bool {
	return h.pair
}

// Clear empties the hand and resets its type.
func (h *Hand) Clear() {
	h.CardGroup.Clear()
	h.handType = ""
	h.pair = false
}
