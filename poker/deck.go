package poker

import (
	"fmt"
	"math/rand"
)

// Deck is a standard 52-card deck: four suits of the thirteen canonical
// weights, no ace-low cards. A deck is not safe for concurrent use.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand // random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck. A nil rng falls back to the global
// source; pass a seeded rng for reproducible deals.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for w := Two; w <= Ace; w++ {
			d.cards[i] = Card{Weight: w, Suit: suit}
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle restores all 52 cards and reorders them with Fisher-Yates.
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

// Deal removes and returns n cards. It fails on a non-positive count or
// when fewer than n cards remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 1 {
		return nil, fmt.Errorf("deal count must be positive, got %d", n)
	}
	if n > d.CardsRemaining() {
		return nil, fmt.Errorf("cannot deal %d cards, %d remaining", n, d.CardsRemaining())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne removes and returns a single card.
func (d *Deck) DealOne() (Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Reset restores and reshuffles the deck.
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns the number of undealt cards.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
