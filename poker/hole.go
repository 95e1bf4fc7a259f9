package poker

// HoleCategory is a coarse preflop strength bucket for two private cards.
type HoleCategory string

const (
	CategoryPremium HoleCategory = "Premium"
	CategoryStrong  HoleCategory = "Strong"
	CategoryMedium  HoleCategory = "Medium"
	CategoryWeak    HoleCategory = "Weak"
	CategoryTrash   HoleCategory = "Trash"
	CategoryUnknown HoleCategory = "Unknown"
)

// CategorizeHole buckets two hole cards. Premium is JJ+ and AK; Strong is
// TT plus AQ and AJ; Medium is 77-99 and suited broadway; Weak is the
// remaining pairs and close suited connectors; everything else is Trash.
func CategorizeHole(a, b Card) HoleCategory {
	low, high := a.Weight, b.Weight
	if low > high {
		low, high = high, low
	}
	suited := a.Suit == b.Suit
	pair := low == high

	switch {
	case pair && low >= Jack:
		return CategoryPremium
	case high == Ace && low == King:
		return CategoryPremium
	case pair && low == Ten:
		return CategoryStrong
	case high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case pair && low >= Seven:
		return CategoryMedium
	case suited && low >= Ten:
		return CategoryMedium
	case pair:
		return CategoryWeak
	case suited && high-low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}

// Category buckets the hand, or Unknown until it holds both cards.
func (h *Hand) Category() HoleCategory {
	if h.Len() != HandSize {
		return CategoryUnknown
	}
	return CategorizeHole(h.cards[0], h.cards[1])
}
