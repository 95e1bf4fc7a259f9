package poker

// weightRepeats summarizes weight repetition in a sorted card group.
// byCount buckets the distinct weights by how many cards carry them, in
// ascending weight order; the named fields resolve the tie-breaks the
// combination selector dispatches on.
type weightRepeats struct {
	byCount [5][]Weight // index = occurrence count 1..4

	four    Weight
	hasFour bool

	three    Weight
	hasThree bool

	// two holds the best pair weight. With two triples it holds the
	// lower triple, whose cards supply the full-house pair.
	two         Weight
	hasTwo      bool
	doubleThree bool

	// pairLow and pairHigh are the top two pair weights when at least
	// two distinct pairs exist and nothing stronger does.
	pairLow       Weight
	pairHigh      Weight
	hasDoublePair bool
	hasTriplePair bool
}

// suitRepeats summarizes suit repetition in a card group.
type suitRepeats struct {
	byCount    [8][]Suit // index = occurrence count 1..7
	maxRepeats int
	flushSuit  Suit // the suit holding maxRepeats cards
	fiveOrMore bool
}

// analyzeRepeats indexes a card group by weight and suit repetition.
// Input order must be ascending by weight so that bucket order resolves
// ties toward the higher weight.
func analyzeRepeats(sorted []Card) (weightRepeats, suitRepeats) {
	var wr weightRepeats
	var sr suitRepeats

	var seenWeights [14]bool
	var seenSuits [4]bool
	for _, c := range sorted {
		if !seenWeights[c.Weight] {
			seenWeights[c.Weight] = true
			n := 0
			for _, o := range sorted {
				if o.Weight == c.Weight {
					n++
				}
			}
			wr.byCount[n] = append(wr.byCount[n], c.Weight)
		}
		if !seenSuits[c.Suit] {
			seenSuits[c.Suit] = true
			n := 0
			for _, o := range sorted {
				if o.Suit == c.Suit {
					n++
				}
			}
			sr.byCount[n] = append(sr.byCount[n], c.Suit)
		}
	}

	wr.resolve()
	sr.resolve()
	return wr, sr
}

func (r *weightRepeats) resolve() {
	switch {
	case len(r.byCount[4]) > 0:
		r.four = r.byCount[4][0]
		r.hasFour = true
	case len(r.byCount[3]) > 0:
		threes := r.byCount[3]
		r.three = threes[len(threes)-1]
		r.hasThree = true
		if twos := r.byCount[2]; len(twos) > 0 {
			r.two = twos[len(twos)-1]
			r.hasTwo = true
		}
		if len(threes) == 2 {
			r.two = threes[0]
			r.hasTwo = true
			r.doubleThree = true
		}
	case len(r.byCount[2]) > 1:
		twos := r.byCount[2]
		r.pairLow = twos[len(twos)-2]
		r.pairHigh = twos[len(twos)-1]
		r.hasDoublePair = true
		r.hasTriplePair = len(twos) == 3
	case len(r.byCount[2]) == 1:
		r.two = r.byCount[2][0]
		r.hasTwo = true
	}
}

func (r *suitRepeats) resolve() {
	for n := len(r.byCount) - 1; n >= 1; n-- {
		if len(r.byCount[n]) > 0 {
			r.maxRepeats = n
			r.flushSuit = r.byCount[n][0]
			r.fiveOrMore = n >= 5
			return
		}
	}
}
