package poker

// sequenceResult reports the best straight window found in a card list.
type sequenceResult struct {
	fiveInARow bool
	orderCards []Card // the matched run, highest weight first
	maxInARow  int    // longest run seen, bookkeeping only
}

// findSequence scans an ascending card list for the highest run of five
// consecutive weights. The list is first normalized for the wheel: when
// an ace is present, a weight-zero copy of it joins the list, so the rank
// table has fourteen slots with an ace filling both ends. The scan runs
// high to low and stops at the first run of five.
func findSequence(sorted []Card) sequenceResult {
	cards := normalizeLowAce(sorted)

	var slots [14]Card
	var present [14]bool
	for _, c := range cards {
		slots[c.Weight] = c
		present[c.Weight] = true
	}

	var res sequenceResult
	run := make([]Card, 0, 5)
	for i := int(Ace); i >= 0; i-- {
		if !present[i] {
			if len(run) > res.maxInARow {
				res.maxInARow = len(run)
			}
			run = run[:0]
			continue
		}
		run = append(run, slots[i])
		if len(run) == 5 {
			res.fiveInARow = true
			res.orderCards = append([]Card(nil), run...)
			res.maxInARow = 5
			return res
		}
	}
	if len(run) > res.maxInARow {
		res.maxInARow = len(run)
	}
	return res
}

// normalizeLowAce prepends a weight-zero copy of the last ace in sorted
// order when any ace is present. The copy keeps that ace's suit and
// InHand flag, so a wheel straight still reports hand contribution.
func normalizeLowAce(sorted []Card) []Card {
	var ace Card
	found := false
	for _, c := range sorted {
		if c.Weight == Ace {
			ace = c
			found = true
		}
	}
	if !found {
		return sorted
	}
	out := make([]Card, 0, len(sorted)+1)
	out = append(out, Card{Weight: AceLow, Suit: ace.Suit, InHand: ace.InHand})
	return append(out, sorted...)
}
