package poker

import (
	"strings"
	"testing"
)

func comboCardCodes(c *Combo) string {
	parts := make([]string, 0, 5)
	for _, card := range c.Cards() {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, "/")
}

func TestClassifyKinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		wantKind  ComboKind
		wantCards string
	}{
		{
			name:      "high card",
			input:     "6s/Jc/Ah/9h/3d/Kd/2c",
			wantKind:  HighCard,
			wantCards: "Ah/Kd/Jc/9h/6s",
		},
		{
			name:      "one pair with kickers",
			input:     "6s/Jc/Ah/9h/3d/Jd/2c",
			wantKind:  OnePair,
			wantCards: "Jc/Jd/Ah/9h/6s",
		},
		{
			name:      "two pairs high pair first",
			input:     "9c/9d/4c/4d/Ah/Js/2c",
			wantKind:  TwoPairs,
			wantCards: "9c/9d/4c/4d/Ah",
		},
		{
			name:      "three pairs drop the lowest to a kicker slot",
			input:     "4c/4d/9c/9d/Kc/Kd/2s",
			wantKind:  TwoPairs,
			wantCards: "Kc/Kd/9c/9d/4d",
		},
		{
			name:      "three of a kind",
			input:     "6s/Jc/Ah/9h/Jd/Jh/2c",
			wantKind:  ThreeOfAKind,
			wantCards: "Jc/Jd/Jh/Ah/9h",
		},
		{
			name:      "straight",
			input:     "2c/3d/4h/5s/6c/Td/Jh",
			wantKind:  Straight,
			wantCards: "6c/5s/4h/3d/2c",
		},
		{
			name:      "wheel straight with low ace",
			input:     "Ah/2d/3c/4s/5h/9c/Td",
			wantKind:  Straight,
			wantCards: "5h/4s/3c/2d/1h",
		},
		{
			name:      "flush keeps the five highest suited cards",
			input:     "Ah/2h/5h/9h/Jh/Kh/3c",
			wantKind:  Flush,
			wantCards: "Ah/Kh/Jh/9h/5h",
		},
		{
			name:      "full house from a triple and a pair",
			input:     "Qc/Qd/Qh/9c/9d/5s/5h",
			wantKind:  FullHouse,
			wantCards: "Qc/Qd/Qh/9c/9d",
		},
		{
			name:      "two triples form a full house around the higher",
			input:     "3c/3d/3h/7c/7d/7h/2s",
			wantKind:  FullHouse,
			wantCards: "7c/7d/7h/3c/3d",
		},
		{
			name:      "four of a kind",
			input:     "5c/5d/5h/5s/2c/9d/Kh",
			wantKind:  FourOfAKind,
			wantCards: "5c/5d/5h/5s/Kh",
		},
		{
			name:      "straight flush",
			input:     "3h/4h/5h/6h/7h/Kc/Kd",
			wantKind:  StraightFlush,
			wantCards: "7h/6h/5h/4h/3h",
		},
		{
			name:      "steel wheel",
			input:     "Ah/2h/3h/4h/5h/Kc/Qd",
			wantKind:  StraightFlush,
			wantCards: "5h/4h/3h/2h/1h",
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			combo, err := ClassifyString(tc.input)
			if err != nil {
				t.Fatalf("ClassifyString(%q) failed: %v", tc.input, err)
			}
			if combo.Kind() != tc.wantKind {
				t.Errorf("Kind() = %v, want %v", combo.Kind(), tc.wantKind)
			}
			if got := comboCardCodes(combo); got != tc.wantCards {
				t.Errorf("Cards() = %s, want %s", got, tc.wantCards)
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	t.Parallel()

	t.Run("flush outranks a mixed-suit straight", func(t *testing.T) {
		t.Parallel()
		combo, err := ClassifyString("2h/5h/9h/Jh/Kh/Qc/Td")
		if err != nil {
			t.Fatalf("ClassifyString failed: %v", err)
		}
		if combo.Kind() != Flush {
			t.Errorf("Kind() = %v, want %v", combo.Kind(), Flush)
		}
	})

	t.Run("straight outranks three of a kind", func(t *testing.T) {
		t.Parallel()
		combo, err := ClassifyString("4c/4d/4h/5s/6c/7d/8h")
		if err != nil {
			t.Fatalf("ClassifyString failed: %v", err)
		}
		if combo.Kind() != Straight {
			t.Errorf("Kind() = %v, want %v", combo.Kind(), Straight)
		}
		if got := comboCardCodes(combo); got != "8h/7d/6c/5s/4h" {
			t.Errorf("Cards() = %s, want 8h/7d/6c/5s/4h", got)
		}
	})

	t.Run("straight outranks two pairs", func(t *testing.T) {
		t.Parallel()
		combo, err := ClassifyString("4c/4d/5s/5c/6d/7h/8h")
		if err != nil {
			t.Fatalf("ClassifyString failed: %v", err)
		}
		if combo.Kind() != Straight {
			t.Errorf("Kind() = %v, want %v", combo.Kind(), Straight)
		}
	})

	t.Run("flush outranks three of a kind", func(t *testing.T) {
		t.Parallel()
		combo, err := ClassifyString("Ah/Kh/9h/5h/2h/Ac/Ad")
		if err != nil {
			t.Fatalf("ClassifyString failed: %v", err)
		}
		if combo.Kind() != Flush {
			t.Errorf("Kind() = %v, want %v", combo.Kind(), Flush)
		}
		if got := comboCardCodes(combo); got != "Ah/Kh/9h/5h/2h" {
			t.Errorf("Cards() = %s, want Ah/Kh/9h/5h/2h", got)
		}
	})

	t.Run("straight flush wins over a pocket pair", func(t *testing.T) {
		t.Parallel()
		combo, err := ClassifyString("3h/4h/5h/6h/7h/Ac/Ad")
		if err != nil {
			t.Fatalf("ClassifyString failed: %v", err)
		}
		if combo.Kind() != StraightFlush {
			t.Errorf("Kind() = %v, want %v", combo.Kind(), StraightFlush)
		}
	})
}

// Re-classifying a combo's own five cards yields the same combo. Holds
// even for wheels, where the reported cards carry the ace-low copy.
func TestClassifyRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"6s/Jc/Ah/9h/3d/Kd/2c",
		"6s/Jc/Ah/9h/3d/Jd/2c",
		"4c/4d/9c/9d/Kc/Kd/2s",
		"6s/Jc/Ah/9h/Jd/Jh/2c",
		"2c/3d/4h/5s/6c/Td/Jh",
		"Ah/2d/3c/4s/5h/9c/Td",
		"Ah/2h/5h/9h/Jh/Kh/3c",
		"Qc/Qd/Qh/9c/9d/5s/5h",
		"5c/5d/5h/5s/2c/9d/Kh",
		"3h/4h/5h/6h/7h/Kc/Kd",
		"Ah/2h/3h/4h/5h/Kc/Qd",
	}

	for _, in := range inputs {
		input := in
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			first, err := ClassifyString(input)
			if err != nil {
				t.Fatalf("ClassifyString(%q) failed: %v", input, err)
			}

			regroup := NewCardGroup(MaxGroupCards)
			if err := regroup.Add(first.Cards()...); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			second, err := Classify(regroup)
			if err != nil {
				t.Fatalf("Classify of the reported cards failed: %v", err)
			}

			if second.Kind() != first.Kind() {
				t.Errorf("round-trip kind = %v, want %v", second.Kind(), first.Kind())
			}
			if got, want := comboCardCodes(second), comboCardCodes(first); got != want {
				t.Errorf("round-trip cards = %s, want %s", got, want)
			}
		})
	}
}

func TestClassifyValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "four cards", input: "2c/3d/4h/5s", wantErr: "needs 5 to 7 cards"},
		{name: "eight cards", input: "2c/3d/4h/5s/6c/7d/8h/9s", wantErr: "full"},
		{name: "duplicate card", input: "2c/3d/4h/5s/6c/2c", wantErr: "duplicate card"},
		{name: "malformed card", input: "2c/3d/4h/5s/banana", wantErr: "invalid"},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ClassifyString(tc.input)
			if err == nil {
				t.Fatalf("ClassifyString(%q) expected error containing %q, got none", tc.input, tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tc.wantErr)
			}
		})
	}

	if _, err := Classify(nil); err == nil {
		t.Error("Classify(nil) should fail")
	}
}

func TestClassifyLeavesGroupUntouched(t *testing.T) {
	t.Parallel()
	group, err := ParseCards("Kd/2c/9h/2d/Ah/6s/Jc", MaxGroupCards)
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	before := group.String()
	if _, err := Classify(group); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if group.String() != before {
		t.Errorf("group changed: %s, want %s", group, before)
	}
}

func TestClassifyShowdown(t *testing.T) {
	t.Parallel()
	table, err := ParseTable("6s/Jc/Ah/9h/3d")
	if err != nil {
		t.Fatalf("ParseTable failed: %v", err)
	}
	hand, err := ParseHand("Jd/Jh")
	if err != nil {
		t.Fatalf("ParseHand failed: %v", err)
	}

	combo, err := ClassifyShowdown(table, hand, false)
	if err != nil {
		t.Fatalf("ClassifyShowdown failed: %v", err)
	}
	if combo.Kind() != ThreeOfAKind {
		t.Errorf("Kind() = %v, want %v", combo.Kind(), ThreeOfAKind)
	}
	if combo.IsReal() || combo.IsNominal() || combo.IsHalfNominal() {
		t.Error("contribution flags should stay false without the contribution pass")
	}

	if _, err := ClassifyShowdown(nil, hand, false); err == nil {
		t.Error("nil table should fail")
	}
	if _, err := ClassifyShowdown(table, nil, false); err == nil {
		t.Error("nil hand should fail")
	}

	short := NewHand()
	qd, _ := ParseCard("Qd")
	if err := short.Add(qd); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := ClassifyShowdown(table, short, false); err == nil {
		t.Error("one-card hand should fail")
	}

	overlap, err := ParseHand("6s/2c")
	if err != nil {
		t.Fatalf("ParseHand failed: %v", err)
	}
	if _, err := ClassifyShowdown(table, overlap, false); err == nil {
		t.Error("a hand card repeating a table card should fail")
	}
}

func TestComboCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{
			name: "kind decides first",
			a:    "3h/4h/5h/6h/7h",
			b:    "5c/5d/5h/5s/Kh",
			want: 1,
		},
		{
			name: "higher pair wins within a kind",
			a:    "Jc/Jd/2h/5s/9c",
			b:    "Tc/Td/Ah/Ks/Qc",
			want: 1,
		},
		{
			name: "kickers break pair ties",
			a:    "Jc/Jd/Ah/5s/9c",
			b:    "Jh/Js/Kh/Qs/Tc",
			want: 1,
		},
		{
			name: "full houses with equal triples rank by pair",
			a:    "Qc/Qd/Qh/9c/9d",
			b:    "Qc/Qd/Qs/5s/5h",
			want: 1,
		},
		{
			name: "suits never break ties",
			a:    "Jc/Jd/Ah/9h/6s",
			b:    "Jh/Js/Ad/9c/6d",
			want: 0,
		},
		{
			name: "wheel loses to a six-high straight",
			a:    "Ah/2d/3c/4s/5h",
			b:    "2h/3s/4d/5c/6h",
			want: -1,
		},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := ClassifyString(tc.a)
			if err != nil {
				t.Fatalf("ClassifyString(%q) failed: %v", tc.a, err)
			}
			b, err := ClassifyString(tc.b)
			if err != nil {
				t.Fatalf("ClassifyString(%q) failed: %v", tc.b, err)
			}
			if got := a.Compare(b); got != tc.want {
				t.Errorf("Compare = %d, want %d", got, tc.want)
			}
			if got := b.Compare(a); got != -tc.want {
				t.Errorf("reverse Compare = %d, want %d", got, -tc.want)
			}
			if a.Less(b) != (tc.want < 0) {
				t.Errorf("Less = %v, want %v", a.Less(b), tc.want < 0)
			}
		})
	}
}

func TestComboString(t *testing.T) {
	t.Parallel()
	combo, err := ClassifyString("Qc/Qd/Qh/9c/9d/5s/5h")
	if err != nil {
		t.Fatalf("ClassifyString failed: %v", err)
	}
	want := "full house Qc Qd Qh 9c 9d"
	if combo.String() != want {
		t.Errorf("String() = %q, want %q", combo.String(), want)
	}
}

func TestComboKindString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind ComboKind
		want string
	}{
		{HighCard, "high card"},
		{OnePair, "one pair"},
		{TwoPairs, "two pairs"},
		{ThreeOfAKind, "three of a kind"},
		{Straight, "straight"},
		{Flush, "flush"},
		{FullHouse, "full house"},
		{FourOfAKind, "four of a kind"},
		{StraightFlush, "straight flush"},
		{ComboKind(0), "unknown"},
		{ComboKind(10), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("ComboKind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func BenchmarkClassifyFive(b *testing.B) {
	group, err := ParseCards("6s/Jc/Ah/9h/3d", MaxGroupCards)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Classify(group); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassifySix(b *testing.B) {
	group, err := ParseCards("6s/Jc/Ah/9h/3d/Jd", MaxGroupCards)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Classify(group); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassifySeven(b *testing.B) {
	group, err := ParseCards("6s/Jc/Ah/9h/3d/Jd/Jh", MaxGroupCards)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Classify(group); err != nil {
			b.Fatal(err)
		}
	}
}
