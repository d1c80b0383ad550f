// Package export renders a GameState into the operator-facing YAML report
// format.
package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"guildhall/core/state"
)

// Report is the flattened, human-readable snapshot written to disk. It is a
// read-only projection of GameState, not a save file: codec.EncodeState
// remains the canonical, reloadable representation.
type Report struct {
	Day          uint64 `yaml:"day"`
	GuildRank    string `yaml:"guild_rank"`
	Reputation   int    `yaml:"reputation"`
	Stability    int    `yaml:"region_stability"`
	MoneyCopper  int64  `yaml:"money_copper"`
	Reserved     int64  `yaml:"reserved_copper"`
	Trophies     int64  `yaml:"trophies_stock"`
	OpenBoard    int    `yaml:"open_board_contracts"`
	ActiveWIP    int    `yaml:"active_in_progress"`
	ReturnsReady int    `yaml:"returns_awaiting_close"`
	RosterSize   int    `yaml:"roster_size"`
	TaxDueDay    uint64 `yaml:"tax_due_day"`
	TaxAmountDue int64  `yaml:"tax_amount_due"`
}

// BuildReport projects s into a Report.
func BuildReport(s state.GameState) Report {
	openBoard, activeWIP := 0, 0
	for _, b := range s.Contracts.Board {
		if b.Status.String() == "OPEN" {
			openBoard++
		}
	}
	for _, a := range s.Contracts.Active {
		if a.Status.String() == "WIP" {
			activeWIP++
		}
	}
	return Report{
		Day:          s.Meta.DayIndex,
		GuildRank:    s.Guild.Rank.String(),
		Reputation:   s.Guild.Reputation,
		Stability:    s.Region.Stability,
		MoneyCopper:  int64(s.Economy.MoneyCopper),
		Reserved:     int64(s.Economy.ReservedCopper),
		Trophies:     s.Economy.TrophiesStock,
		OpenBoard:    openBoard,
		ActiveWIP:    activeWIP,
		ReturnsReady: len(s.Contracts.Returns),
		RosterSize:   len(s.Heroes.Roster),
		TaxDueDay:    s.Meta.TaxDueDay,
		TaxAmountDue: s.Meta.TaxAmountDue,
	}
}

// WriteFile renders s's report as YAML and writes it to path.
func WriteFile(path string, s state.GameState) error {
	data, err := yaml.Marshal(BuildReport(s))
	if err != nil {
		return fmt.Errorf("export: marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
