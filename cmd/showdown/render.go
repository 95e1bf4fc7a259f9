package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/showdown/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func renderCard(c poker.Card) string {
	switch c.Suit {
	case poker.Diamonds, poker.Hearts:
		return redSuitStyle.Render(c.Pretty())
	default:
		return blackSuitStyle.Render(c.Pretty())
	}
}

func renderCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}

func renderCombo(combo *poker.Combo) string {
	return kindStyle.Render(combo.Name()) + "  " + renderCards(combo.Cards())
}

// contributionVerdict names how the hand figured in the combination.
// Empty when no contribution pass ran.
func contributionVerdict(combo *poker.Combo) string {
	switch {
	case combo.IsReal():
		return "real"
	case combo.IsHalfNominal():
		return "half nominal"
	case combo.IsNominal():
		return "nominal"
	default:
		return ""
	}
}
