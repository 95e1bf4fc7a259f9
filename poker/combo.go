package poker

import (
	"fmt"
	"sort"
	"strings"
)

// ComboKind enumerates the nine combination kinds ordered from weakest to
// strongest. The numeric values are the first comparison key.
type ComboKind uint8

const (
	HighCard ComboKind = iota + 1
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var comboKindNames = [...]string{
	HighCard:      "high card",
	OnePair:       "one pair",
	TwoPairs:      "two pairs",
	ThreeOfAKind:  "three of a kind",
	Straight:      "straight",
	Flush:         "flush",
	FullHouse:     "full house",
	FourOfAKind:   "four of a kind",
	StraightFlush: "straight flush",
}

// String returns the display name of the kind.
func (k ComboKind) String() string {
	if k < HighCard || k > StraightFlush {
		return "unknown"
	}
	return comboKindNames[k]
}

// Combo is a classified combination: a kind and the exactly five cards
// representing it, defining cards first and kickers after, each sub-group
// descending by weight. A combo never changes once built. The contribution
// flags stay false unless ClassifyShowdown was asked to compute them.
type Combo struct {
	kind  ComboKind
	cards [5]Card

	real        bool
	nominal     bool
	halfNominal bool
}

// Classify finds the best five-card combination in a raw group of five to
// seven distinct cards. The group itself is never modified.
func Classify(group *CardGroup) (*Combo, error) {
	if group == nil {
		return nil, fmt.Errorf("classification needs a card group")
	}
	cards := group.Cards()
	if err := validateComboInput(cards); err != nil {
		return nil, err
	}
	combo, _, _ := classify(cards)
	return combo, nil
}

// ClassifyString classifies card notation directly, e.g.
// "6s/Jc/Ah/9h/3d/Jd".
func ClassifyString(s string) (*Combo, error) {
	group, err := ParseCards(s, MaxGroupCards)
	if err != nil {
		return nil, err
	}
	return Classify(group)
}

// ClassifyShowdown classifies the cards formed by a table and a two-card
// hand together. With contribution set, a second pass fills the combo's
// contribution flags from the hand cards' InHand marks.
func ClassifyShowdown(table *Table, hand *Hand, contribution bool) (*Combo, error) {
	if table == nil || hand == nil {
		return nil, fmt.Errorf("showdown classification needs both a table and a hand")
	}
	if hand.Len() != HandSize {
		return nil, fmt.Errorf("hand needs exactly %d cards, got %d", HandSize, hand.Len())
	}
	cards := append(table.Cards(), hand.Cards()...)
	if err := validateComboInput(cards); err != nil {
		return nil, err
	}
	combo, sorted, weights := classify(cards)
	if contribution {
		combo.contribution(sorted, weights)
	}
	return combo, nil
}

func validateComboInput(cards []Card) error {
	if len(cards) < 5 || len(cards) > MaxGroupCards {
		return fmt.Errorf("classification needs 5 to %d cards, got %d", MaxGroupCards, len(cards))
	}
	for i, c := range cards {
		for _, o := range cards[i+1:] {
			if c.Equal(o) {
				return fmt.Errorf("duplicate card: %s", c)
			}
		}
	}
	return nil
}

// classify runs the priority decision over a private ascending copy of the
// cards. A suit reaching five cards short-circuits into the flush family;
// otherwise the repeat shapes and the straight check decide in fixed
// order. The sorted copy and weight summary are returned for the
// contribution pass.
func classify(cards []Card) (*Combo, []Card, weightRepeats) {
	sorted := sortedByWeight(cards)
	weights, suits := analyzeRepeats(sorted)
	combo := &Combo{}

	if suits.fiveOrMore {
		flushCards := filterBySuit(sorted, suits.flushSuit)
		seq := findSequence(flushCards)
		if seq.fiveInARow {
			combo.kind = StraightFlush
			copy(combo.cards[:], seq.orderCards)
		} else {
			combo.kind = Flush
			fillTopFive(combo, flushCards)
		}
		return combo, sorted, weights
	}

	seq := findSequence(sorted)
	switch {
	case weights.hasFour:
		combo.kind = FourOfAKind
		n := copy(combo.cards[:], filterByWeight(sorted, weights.four))
		fillKickers(combo, n, sorted)
	case weights.hasThree && weights.hasTwo:
		combo.kind = FullHouse
		n := copy(combo.cards[:], filterByWeight(sorted, weights.three))
		copy(combo.cards[n:], filterByWeight(sorted, weights.two)[:2])
	case seq.fiveInARow:
		combo.kind = Straight
		copy(combo.cards[:], seq.orderCards)
	case weights.hasThree:
		combo.kind = ThreeOfAKind
		n := copy(combo.cards[:], filterByWeight(sorted, weights.three))
		fillKickers(combo, n, sorted)
	case weights.hasDoublePair:
		combo.kind = TwoPairs
		n := copy(combo.cards[:], filterByWeight(sorted, weights.pairHigh))
		n += copy(combo.cards[n:], filterByWeight(sorted, weights.pairLow))
		fillKickers(combo, n, sorted)
	case weights.hasTwo:
		combo.kind = OnePair
		n := copy(combo.cards[:], filterByWeight(sorted, weights.two))
		fillKickers(combo, n, sorted)
	default:
		combo.kind = HighCard
		fillTopFive(combo, sorted)
	}
	return combo, sorted, weights
}

func sortedByWeight(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })
	return out
}

func filterByWeight(cards []Card, w Weight) []Card {
	out := make([]Card, 0, 4)
	for _, c := range cards {
		if c.Weight == w {
			out = append(out, c)
		}
	}
	return out
}

func filterBySuit(cards []Card, s Suit) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// fillTopFive takes the five highest cards of an ascending list,
// descending.
func fillTopFive(combo *Combo, sorted []Card) {
	top := sorted[len(sorted)-5:]
	for i, c := range top {
		combo.cards[4-i] = c
	}
}

// fillKickers completes the combination to five cards with the highest
// remaining cards whose weights are outside the defining cards.
func fillKickers(combo *Combo, defined int, sorted []Card) {
	n := defined
	for i := len(sorted) - 1; i >= 0 && n < len(combo.cards); i-- {
		c := sorted[i]
		if weightAmong(combo.cards[:defined], c.Weight) {
			continue
		}
		combo.cards[n] = c
		n++
	}
}

func weightAmong(cards []Card, w Weight) bool {
	for _, c := range cards {
		if c.Weight == w {
			return true
		}
	}
	return false
}

// Kind returns the combination kind.
func (c *Combo) Kind() ComboKind {
	return c.kind
}

// Name returns the kind's display name, e.g. "full house".
func (c *Combo) Name() string {
	return c.kind.String()
}

// Cards returns the five combination cards, defining cards first, kickers
// last.
func (c *Combo) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards[:])
	return out
}

// IsReal reports that the hand was essential to the combination.
func (c *Combo) IsReal() bool {
	return c.real
}

// IsNominal reports that the combination stands without any hand card.
func (c *Combo) IsNominal() bool {
	return c.nominal
}

// IsHalfNominal reports that the hand touched only one of the two
// weight-groups of a full house or two pairs.
func (c *Combo) IsHalfNominal() bool {
	return c.halfNominal
}

// Compare orders two combos: negative when c ranks below o, zero on a
// tie, positive when above. Kind decides first, then the five cards
// compare by weight in order; suits never break ties.
func (c *Combo) Compare(o *Combo) int {
	if c.kind != o.kind {
		if c.kind < o.kind {
			return -1
		}
		return 1
	}
	for i := range c.cards {
		a, b := c.cards[i].Weight, o.cards[i].Weight
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether c ranks strictly below o.
func (c *Combo) Less(o *Combo) bool {
	return c.Compare(o) < 0
}

func (c *Combo) String() string {
	parts := make([]string, len(c.cards))
	for i, card := range c.cards {
		parts[i] = card.String()
	}
	return c.kind.String() + " " + strings.Join(parts, " ")
}
