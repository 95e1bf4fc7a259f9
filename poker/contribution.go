package poker

// contribution fills the combo's contribution flags from the InHand marks
// of its source cards. Compound kinds (full house, two pairs) check each
// of their two weight-groups independently: hand cards in both is real,
// in one half-nominal, in neither nominal. Single-group kinds check only
// their defining cards, everything else all five.
func (c *Combo) contribution(sorted []Card, weights weightRepeats) {
	switch c.kind {
	case FullHouse:
		set := filterByWeight(sorted, weights.three)
		pair := filterByWeight(sorted, weights.two)
		c.groupContribution(set, pair)
	case TwoPairs:
		c.groupContribution(c.cards[:2], c.cards[2:4])
	default:
		defining := c.cards[:]
		switch c.kind {
		case FourOfAKind:
			defining = c.cards[:4]
		case ThreeOfAKind:
			defining = c.cards[:3]
		case OnePair:
			defining = c.cards[:2]
		}
		if anyInHand(defining) {
			c.real = true
		} else {
			c.nominal = true
		}
	}
}

func (c *Combo) groupContribution(first, second []Card) {
	touched := 0
	if anyInHand(first) {
		touched++
	}
	if anyInHand(second) {
		touched++
	}
	switch touched {
	case 2:
		c.real = true
	case 1:
		c.halfNominal = true
	default:
		c.nominal = true
	}
}

func anyInHand(cards []Card) bool {
	for _, c := range cards {
		if c.InHand {
			return true
		}
	}
	return false
}
