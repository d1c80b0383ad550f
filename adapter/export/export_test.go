package export

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"guildhall/core/state"
	"guildhall/core/types"
)

func reportState() state.GameState {
	s := state.New(3)
	s.Meta.DayIndex = 12
	s.Guild.Rank = types.RankE
	s.Economy.MoneyCopper = 12345
	s.Economy.ReservedCopper = 200
	s.Economy.TrophiesStock = 4
	s.Contracts.Board = []state.BoardContract{
		{ID: 1, Status: types.BoardStatusOpen},
		{ID: 2, Status: types.BoardStatusLocked},
	}
	s.Contracts.Active = []state.ActiveContract{
		{ID: 1, BoardContractID: 2, Status: types.ActiveStatusWIP, DaysRemaining: 1},
		{ID: 2, BoardContractID: 2, Status: types.ActiveStatusClosed},
	}
	s.Heroes.Roster = []state.Hero{{ID: 1}, {ID: 2}, {ID: 3}}
	return s
}

func TestBuildReportCountsByStatus(t *testing.T) {
	r := BuildReport(reportState())

	if r.Day != 12 || r.GuildRank != "E" {
		t.Fatalf("header fields wrong: %+v", r)
	}
	if r.OpenBoard != 1 {
		t.Fatalf("expected 1 OPEN board, got %d", r.OpenBoard)
	}
	if r.ActiveWIP != 1 {
		t.Fatalf("expected 1 WIP active, got %d", r.ActiveWIP)
	}
	if r.RosterSize != 3 {
		t.Fatalf("expected roster 3, got %d", r.RosterSize)
	}
	if r.MoneyCopper != 12345 || r.Reserved != 200 || r.Trophies != 4 {
		t.Fatalf("economy fields wrong: %+v", r)
	}
}

func TestWriteFileRoundTripsAsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := WriteFile(path, reportState()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r != BuildReport(reportState()) {
		t.Fatalf("round trip diverged: %+v", r)
	}
}
