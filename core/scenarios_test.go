package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"guildhall/core/codec"
	"guildhall/core/command"
	"guildhall/core/events"
	"guildhall/core/invariants"
	"guildhall/core/rng"
	"guildhall/core/state"
	"guildhall/core/types"
)

func TestRejectedCommandLeavesStateUntouched(t *testing.T) {
	engine := NewEngine()
	s := state.New(42)
	r := rng.New(100)

	newState, evts := engine.Step(s, command.Command{
		Kind: command.PostContract, CmdID: 1, InboxID: 1, Fee: -5, Salvage: types.SalvageGuild,
	}, r)

	require.Len(t, evts, 1)
	e := evts[0]
	require.Equal(t, events.TypeCommandRejected, e.Type)
	require.Equal(t, uint64(1), e.Seq)
	require.Equal(t, "InvalidArgument", e.Attributes["reason"])
	require.Equal(t, "PostContract", e.Attributes["cmd_type"])

	require.Equal(t, uint64(0), newState.Meta.Revision)
	require.Equal(t, s, newState)
	require.Zero(t, r.Draws(), "validation must not touch the RNG")
}

func TestReplayTripleMatchesAcrossRuns(t *testing.T) {
	run := func() (string, string, uint64) {
		engine := NewEngine()
		s := state.New(42)
		r := rng.New(100)
		newState, evts := engine.Step(s, command.Command{Kind: command.AdvanceDay, CmdID: 1}, r)

		stateHash, err := codec.HashState(newState)
		require.NoError(t, err)
		eventHash, err := codec.HashEvents(evts)
		require.NoError(t, err)
		return stateHash, eventHash, r.Draws()
	}

	s1, e1, d1 := run()
	s2, e2, d2 := run()
	require.Equal(t, s1, s2, "state hash must replay identically")
	require.Equal(t, e1, e2, "event hash must replay identically")
	require.Equal(t, d1, d2, "draw count must replay identically")
	require.NotZero(t, d1, "a day tick must consume draws")
}

func TestThreeMissedTaxPaymentsShutTheGuildDown(t *testing.T) {
	engine := NewEngine()
	s := state.New(42)
	r := rng.New(100)

	var dayEvents []types.EventRecord
	for day := 1; day <= 28; day++ {
		var evts []types.EventRecord
		s, evts = engine.Step(s, command.Command{Kind: command.AdvanceDay, CmdID: uint64(day)}, r)
		dayEvents = evts
	}

	missedIdx, shutdownIdx := -1, -1
	for i, e := range dayEvents {
		switch e.Type {
		case events.TypeTaxMissed:
			if e.Attributes["missed_count"] == "3" {
				missedIdx = i
			}
		case events.TypeGuildShutdown:
			shutdownIdx = i
			require.Equal(t, "tax_evasion", e.Attributes["reason"])
		}
	}
	require.GreaterOrEqual(t, missedIdx, 0, "day 28 must record the third missed payment")
	require.Greater(t, shutdownIdx, missedIdx, "guild.shutdown must follow tax.missed{3}")
	require.Equal(t, events.TypeDayEnded, dayEvents[len(dayEvents)-1].Type)
}

func TestInvariantViolationIsReportedBeforeDayEnded(t *testing.T) {
	engine := NewEngine()
	s := state.New(42)
	// A LOCKED board with no in-flight child: the strict exactly-one
	// reading must flag it after the day tick.
	s.Meta.NextContractID = 2
	s.Contracts.Board = []state.BoardContract{{
		ID: 1, Title: "Purge the Sealed Crypt", Rank: types.RankF,
		Fee: 50, Salvage: types.SalvageGuild, Status: types.BoardStatusLocked,
	}}
	s.Economy.ReservedCopper = 50

	r := rng.New(100)
	_, evts := engine.Step(s, command.Command{Kind: command.AdvanceDay, CmdID: 1}, r)

	violationIdx := -1
	for i, e := range evts {
		if e.Type == events.TypeInvariantViolated &&
			e.Attributes["id"] == invariants.CONTRACTS__LOCKED_BOARD_HAS_NON_CLOSED_ACTIVE {
			violationIdx = i
		}
	}
	require.GreaterOrEqual(t, violationIdx, 0, "verifier must flag the orphaned LOCKED board")
	require.Equal(t, events.TypeDayEnded, evts[len(evts)-1].Type, "day.ended must stay last")
	require.Less(t, violationIdx, len(evts)-1, "violation must be inserted before day.ended")

	for i, e := range evts {
		require.Equal(t, uint64(i+1), e.Seq, "seq must be contiguous after the insertion")
	}
}

func TestAdvanceDayBoundaries(t *testing.T) {
	engine := NewEngine()
	s := state.New(7)
	r := rng.New(7)

	newState, evts := engine.Step(s, command.Command{Kind: command.AdvanceDay, CmdID: 1}, r)
	require.Equal(t, s.Meta.Revision+1, newState.Meta.Revision)
	require.Equal(t, s.Meta.DayIndex+1, newState.Meta.DayIndex)
	require.Equal(t, events.TypeDayStarted, evts[0].Type)
	require.Equal(t, events.TypeDayEnded, evts[len(evts)-1].Type)
	require.Empty(t, invariants.Verify(newState), "a routine day tick must leave the state consistent")
}

func TestLongRunStaysInvariantClean(t *testing.T) {
	engine := NewEngine()
	s := state.New(9)
	r := rng.New(9)

	for day := 1; day <= 60; day++ {
		var evts []types.EventRecord
		s, evts = engine.Step(s, command.Command{Kind: command.AdvanceDay, CmdID: uint64(day)}, r)
		for _, e := range evts {
			require.NotEqual(t, events.TypeInvariantViolated, e.Type,
				"day %d surfaced a violation: %v", day, e.Attributes)
		}
	}
}

func TestSaveLoadRoundTripAfterSimulation(t *testing.T) {
	engine := NewEngine()
	s := state.New(5)
	r := rng.New(5)
	for day := 1; day <= 10; day++ {
		s, _ = engine.Step(s, command.Command{Kind: command.AdvanceDay, CmdID: uint64(day)}, r)
	}

	data, err := codec.EncodeState(s)
	require.NoError(t, err)
	loaded, err := codec.DecodeState(data)
	require.NoError(t, err)

	expected := s.Clone()
	expected.Heroes.ArrivalsToday = nil
	require.Equal(t, expected, loaded)

	h1, err := codec.HashState(loaded)
	require.NoError(t, err)
	h2, err := codec.HashState(expected)
	require.NoError(t, err)
	require.Equal(t, h2, h1)
}
