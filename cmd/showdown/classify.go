package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/poker"
)

// ClassifyCmd classifies either a raw card group or a table/hand pair.
type ClassifyCmd struct {
	Cards        string `arg:"" optional:"" help:"Five to seven cards, e.g. '6s/Jc/Ah/9h/3d/Jd'"`
	Table        string `short:"t" help:"Table cards, classified together with --hand"`
	Hand         string `help:"Two private cards, classified together with --table"`
	Contribution bool   `short:"c" help:"Report how the hand contributed (needs --table and --hand)"`
}

func (c *ClassifyCmd) Run(logger *log.Logger) error {
	combo, err := c.classify(logger)
	if err != nil {
		return err
	}
	fmt.Println(renderCombo(combo))
	if c.Contribution {
		fmt.Printf("hand contribution: %s\n", contributionVerdict(combo))
	}
	return nil
}

func (c *ClassifyCmd) classify(logger *log.Logger) (*poker.Combo, error) {
	switch {
	case c.Cards != "" && (c.Table != "" || c.Hand != ""):
		return nil, fmt.Errorf("pass either a card group or --table with --hand, not both")
	case c.Cards != "":
		if c.Contribution {
			return nil, fmt.Errorf("contribution needs --table and --hand")
		}
		logger.Debug("classifying raw group", "cards", c.Cards)
		return poker.ClassifyString(c.Cards)
	case c.Table != "" && c.Hand != "":
		table, err := poker.ParseTable(c.Table)
		if err != nil {
			return nil, err
		}
		hand, err := poker.ParseHand(c.Hand)
		if err != nil {
			return nil, err
		}
		logger.Debug("classifying showdown", "table", c.Table, "hand", hand.Type())
		return poker.ClassifyShowdown(table, hand, c.Contribution)
	default:
		return nil, fmt.Errorf("pass a card group, or both --table and --hand")
	}
}

// CompareCmd classifies two groups and prints which ranks higher.
type CompareCmd struct {
	First  string `arg:"" help:"First card group"`
	Second string `arg:"" help:"Second card group"`
}

func (c *CompareCmd) Run() error {
	first, err := poker.ClassifyString(c.First)
	if err != nil {
		return fmt.Errorf("first group: %w", err)
	}
	second, err := poker.ClassifyString(c.Second)
	if err != nil {
		return fmt.Errorf("second group: %w", err)
	}

	fmt.Println(renderCombo(first))
	fmt.Println(renderCombo(second))
	switch first.Compare(second) {
	case 1:
		fmt.Println(winStyle.Render("first wins"))
	case -1:
		fmt.Println(winStyle.Render("second wins"))
	default:
		fmt.Println(tieStyle.Render("tie"))
	}
	return nil
}
