// Package scenario loads showdown descriptions from HCL files and
// ranks the seats they define.
package scenario

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/showdown/poker"
)

// Scenario describes one showdown: shared table cards and the named
// seats contesting them.
//
//	table = "6s/Jc/Ah/9h/3d"
//
//	seat "alice" {
//	  hand = "Jd/Jh"
//	}
type Scenario struct {
	Name         string `hcl:"name,optional"`
	Table        string `hcl:"table"`
	Contribution bool   `hcl:"contribution,optional"`
	Seats        []Seat `hcl:"seat,block"`
}

// Seat is one named participant and their two private cards.
type Seat struct {
	Name string `hcl:"name,label"`
	Hand string `hcl:"hand"`
}

// SeatResult is a classified seat. Rank is 1-based with tied seats
// sharing a rank, as in competition ranking.
type SeatResult struct {
	Seat  string
	Hand  *poker.Hand
	Combo *poker.Combo
	Rank  int
}

// Load reads and validates a scenario from an HCL file.
func Load(filename string) (*Scenario, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scenario file: %s", diags.Error())
	}

	var s Scenario
	diags = gohcl.DecodeBody(file.Body, nil, &s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scenario: %s", diags.Error())
	}

	if s.Name == "" {
		s.Name = filename
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario is playable: a table of at least three
// cards, at least one seat, unique seat names, and no card appearing
// twice anywhere.
func (s *Scenario) Validate() error {
	table, err := poker.ParseTable(s.Table)
	if err != nil {
		return fmt.Errorf("table: %w", err)
	}
	if table.Len() < 3 {
		return fmt.Errorf("table needs at least 3 cards, got %d", table.Len())
	}

	if len(s.Seats) == 0 {
		return fmt.Errorf("scenario needs at least one seat")
	}

	names := make(map[string]bool, len(s.Seats))
	dealt := table.Cards()
	for _, seat := range s.Seats {
		if seat.Name == "" {
			return fmt.Errorf("seat name cannot be empty")
		}
		if names[seat.Name] {
			return fmt.Errorf("duplicate seat name: %s", seat.Name)
		}
		names[seat.Name] = true

		hand, err := poker.ParseHand(seat.Hand)
		if err != nil {
			return fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		for _, c := range hand.Cards() {
			for _, other := range dealt {
				if c.Equal(other) {
					return fmt.Errorf("seat %s: card %s is already in play", seat.Name, c)
				}
			}
			dealt = append(dealt, c)
		}
	}
	return nil
}

// Run classifies every seat against the table and returns the results
// ranked strongest first.
func (s *Scenario) Run() ([]SeatResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	table, err := poker.ParseTable(s.Table)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}

	results := make([]SeatResult, 0, len(s.Seats))
	for _, seat := range s.Seats {
		hand, err := poker.ParseHand(seat.Hand)
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		combo, err := poker.ClassifyShowdown(table, hand, s.Contribution)
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", seat.Name, err)
		}
		results = append(results, SeatResult{Seat: seat.Name, Hand: hand, Combo: combo})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[j].Combo.Less(results[i].Combo)
	})
	for i := range results {
		if i > 0 && results[i].Combo.Compare(results[i-1].Combo) == 0 {
			results[i].Rank = results[i-1].Rank
			continue
		}
		results[i].Rank = i + 1
	}
	return results, nil
}

// Winners returns the seats sharing the top rank.
func Winners(results []SeatResult) []SeatResult {
	winners := make([]SeatResult, 0, 1)
	for _, r := range results {
		if r.Rank != 1 {
			break
		}
		winners = append(winners, r)
	}
	return winners
}
