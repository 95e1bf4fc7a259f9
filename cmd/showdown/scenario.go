package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/scenario"
	"github.com/lox/showdown/poker"
)

// ScenarioCmd ranks the seats of a showdown described in an HCL file.
type ScenarioCmd struct {
	File string `arg:"" type:"existingfile" help:"Scenario file to run"`
}

func (c *ScenarioCmd) Run(logger *log.Logger) error {
	s, err := scenario.Load(c.File)
	if err != nil {
		return err
	}
	logger.Debug("loaded scenario", "name", s.Name, "seats", len(s.Seats))

	results, err := s.Run()
	if err != nil {
		return err
	}

	table, err := poker.ParseTable(s.Table)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n\n", headerStyle.Render(s.Name), renderCards(table.Cards()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if s.Contribution {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			headerStyle.Render("rank"),
			headerStyle.Render("seat"),
			headerStyle.Render("hand"),
			headerStyle.Render("combination"),
			headerStyle.Render("contribution"))
	} else {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			headerStyle.Render("rank"),
			headerStyle.Render("seat"),
			headerStyle.Render("hand"),
			headerStyle.Render("combination"))
	}
	for _, r := range results {
		if s.Contribution {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				r.Rank, r.Seat, renderCards(r.Hand.Cards()), renderCombo(r.Combo),
				contributionVerdict(r.Combo))
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			r.Rank, r.Seat, renderCards(r.Hand.Cards()), renderCombo(r.Combo))
	}
	w.Flush()

	winners := scenario.Winners(results)
	names := make([]string, len(winners))
	for i, r := range winners {
		names[i] = r.Seat
	}
	if len(winners) == 1 {
		fmt.Printf("\n%s wins\n", winStyle.Render(names[0]))
	} else {
		fmt.Printf("\n%s split the pot\n", winStyle.Render(strings.Join(names, ", ")))
	}
	return nil
}
