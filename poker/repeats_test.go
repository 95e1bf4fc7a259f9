package poker

import "testing"

func TestAnalyzeWeightRepeats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, wr weightRepeats)
	}{
		{
			name:  "four of a kind",
			input: "5c/5d/5h/5s/2c/9d/Kh",
			check: func(t *testing.T, wr weightRepeats) {
				if !wr.hasFour || wr.four != Five {
					t.Errorf("four = %v (%v), want Five", wr.four, wr.hasFour)
				}
			},
		},
		{
			name:  "triple with a pair",
			input: "Qc/Qd/Qh/9c/9d/5s/2h",
			check: func(t *testing.T, wr weightRepeats) {
				if !wr.hasThree || wr.three != Queen {
					t.Errorf("three = %v (%v), want Queen", wr.three, wr.hasThree)
				}
				if !wr.hasTwo || wr.two != Nine {
					t.Errorf("two = %v (%v), want Nine", wr.two, wr.hasTwo)
				}
				if wr.doubleThree {
					t.Error("doubleThree should be false with a single triple")
				}
			},
		},
		{
			name:  "triple with two pairs keeps the higher pair",
			input: "Qc/Qd/Qh/9c/9d/5s/5h",
			check: func(t *testing.T, wr weightRepeats) {
				if wr.two != Nine {
					t.Errorf("two = %v, want Nine", wr.two)
				}
			},
		},
		{
			name:  "two triples split into set and pair source",
			input: "3c/3d/3h/7c/7d/7h/2s",
			check: func(t *testing.T, wr weightRepeats) {
				if wr.three != Seven {
					t.Errorf("three = %v, want Seven", wr.three)
				}
				if wr.two != Three {
					t.Errorf("two = %v, want Three", wr.two)
				}
				if !wr.doubleThree {
					t.Error("doubleThree should be set")
				}
			},
		},
		{
			name:  "two pairs",
			input: "9c/9d/4c/4d/Ah/Js/2c",
			check: func(t *testing.T, wr weightRepeats) {
				if !wr.hasDoublePair {
					t.Fatal("hasDoublePair should be set")
				}
				if wr.pairHigh != Nine || wr.pairLow != Four {
					t.Errorf("pairs = %v/%v, want Nine/Four", wr.pairHigh, wr.pairLow)
				}
				if wr.hasTriplePair {
					t.Error("hasTriplePair should be false with two pairs")
				}
			},
		},
		{
			name:  "three pairs keep the top two and mark the surplus",
			input: "4c/4d/9c/9d/Kc/Kd/2s",
			check: func(t *testing.T, wr weightRepeats) {
				if wr.pairHigh != King || wr.pairLow != Nine {
					t.Errorf("pairs = %v/%v, want King/Nine", wr.pairHigh, wr.pairLow)
				}
				if !wr.hasTriplePair {
					t.Error("hasTriplePair should be set")
				}
			},
		},
		{
			name:  "single pair",
			input: "Jc/Jd/Ah/9h/6s/3d/2c",
			check: func(t *testing.T, wr weightRepeats) {
				if !wr.hasTwo || wr.two != Jack {
					t.Errorf("two = %v (%v), want Jack", wr.two, wr.hasTwo)
				}
				if wr.hasDoublePair {
					t.Error("hasDoublePair should be false")
				}
			},
		},
		{
			name:  "no repeats",
			input: "Ah/Kd/Jc/9h/6s/3d/2c",
			check: func(t *testing.T, wr weightRepeats) {
				if wr.hasFour || wr.hasThree || wr.hasTwo || wr.hasDoublePair {
					t.Errorf("unexpected repeats: %+v", wr)
				}
			},
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			wr, _ := analyzeRepeats(sortedCards(t, tc.input))
			tc.check(t, wr)
		})
	}
}

func TestAnalyzeSuitRepeats(t *testing.T) {
	t.Parallel()

	t.Run("rainbow board", func(t *testing.T) {
		t.Parallel()
		_, sr := analyzeRepeats(sortedCards(t, "Ah/Kd/Jc/9s/6h"))
		if sr.fiveOrMore {
			t.Error("fiveOrMore should be false")
		}
		if sr.maxRepeats != 2 {
			t.Errorf("maxRepeats = %d, want 2", sr.maxRepeats)
		}
	})

	t.Run("five of one suit", func(t *testing.T) {
		t.Parallel()
		_, sr := analyzeRepeats(sortedCards(t, "Ah/Kh/Jh/9h/6h/3c/2d"))
		if !sr.fiveOrMore {
			t.Fatal("fiveOrMore should be set")
		}
		if sr.flushSuit != Hearts {
			t.Errorf("flushSuit = %v, want hearts", sr.flushSuit)
		}
		if sr.maxRepeats != 5 {
			t.Errorf("maxRepeats = %d, want 5", sr.maxRepeats)
		}
	})

	t.Run("six of one suit", func(t *testing.T) {
		t.Parallel()
		_, sr := analyzeRepeats(sortedCards(t, "Ah/Kh/Jh/9h/6h/3h/2d"))
		if sr.maxRepeats != 6 {
			t.Errorf("maxRepeats = %d, want 6", sr.maxRepeats)
		}
	})
}
