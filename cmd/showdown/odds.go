package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/equity"
	"github.com/lox/showdown/poker"
)

// OddsCmd estimates equity for a hand against random opponents.
type OddsCmd struct {
	Hand       string `arg:"" help:"Two private cards, e.g. 'As/Ad'"`
	Table      string `short:"t" help:"Known table cards, e.g. 'Qh/Jh/Th'"`
	Opponents  int    `default:"1" help:"Number of opponents"`
	Iterations int    `short:"i" default:"10000" help:"Monte Carlo iterations"`
	Workers    int    `help:"Parallel workers (0 for auto)"`
	Seed       int64  `default:"0" help:"RNG seed (0 for random)"`
}

func (c *OddsCmd) Run(logger *log.Logger) error {
	hand, err := poker.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	var table *poker.Table
	if c.Table != "" {
		if table, err = poker.ParseTable(c.Table); err != nil {
			return err
		}
	}

	est := equity.New(equity.Config{
		Opponents:  c.Opponents,
		Iterations: c.Iterations,
		Workers:    c.Workers,
		Seed:       c.Seed,
		Logger:     logger.WithPrefix("equity"),
	})
	result, err := est.Run(context.Background(), hand, table)
	if err != nil {
		return err
	}

	if table != nil {
		fmt.Printf("%s\n%s\n\n", headerStyle.Render("table"), renderCards(table.Cards()))
	}

	pct := func(n int) string {
		return fmt.Sprintf("%.1f%%", float64(n)/float64(result.Samples)*100)
	}
	lo, hi := result.ConfidenceInterval95()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("category"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"),
		headerStyle.Render("equity"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		renderCards(hand.Cards()),
		string(hand.Category()),
		winStyle.Render(pct(result.Wins)),
		tieStyle.Render(pct(result.Ties)),
		lossStyle.Render(pct(result.Losses)),
		fmt.Sprintf("%.1f%% [%.1f%%-%.1f%%]", result.Equity()*100, lo*100, hi*100))
	w.Flush()

	fmt.Printf("\n%d samples vs %d opponent(s) in %v\n",
		result.Samples, c.Opponents, result.Elapsed.Truncate(time.Millisecond))
	return nil
}
