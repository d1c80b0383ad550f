package state

import (
	"testing"

	"guildhall/core/types"
)

func TestNewStartsConsistent(t *testing.T) {
	s := New(42)
	if s.Meta.Seed != 42 {
		t.Fatalf("seed must be recorded, got %d", s.Meta.Seed)
	}
	if s.Meta.DayIndex != 0 || s.Meta.Revision != 0 {
		t.Fatalf("clocks must start at zero: %+v", s.Meta)
	}
	if s.Meta.NextContractID != 1 || s.Meta.NextHeroID != 1 || s.Meta.NextActiveID != 1 {
		t.Fatalf("id counters must start at 1: %+v", s.Meta)
	}
	if s.Guild.Rank != types.RankF {
		t.Fatalf("a fresh guild starts at rank F, got %s", s.Guild.Rank)
	}
	if s.Economy.MoneyCopper < s.Economy.ReservedCopper {
		t.Fatalf("reserved must never exceed money: %+v", s.Economy)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := New(1)
	s.Contracts.Inbox = []ContractDraft{{ID: 1, Title: "Clear the Goblin Warren"}}
	s.Contracts.Active = []ActiveContract{{ID: 1, HeroIDs: []types.HeroID{1, 2}}}
	s.Contracts.Returns = []ReturnPacket{{ActiveContractID: 1, HeroIDs: []types.HeroID{1}, ReasonTags: []string{"suspected_theft"}}}
	s.Heroes.Roster = []Hero{{ID: 1, Name: "Aldric Ashford"}}
	s.Heroes.ArrivalsToday = []types.HeroID{1}

	clone := s.Clone()
	clone.Contracts.Inbox[0].Title = "changed"
	clone.Contracts.Active[0].HeroIDs[0] = 99
	clone.Contracts.Returns[0].HeroIDs[0] = 99
	clone.Contracts.Returns[0].ReasonTags[0] = "changed"
	clone.Heroes.Roster[0].Name = "changed"
	clone.Heroes.ArrivalsToday[0] = 99
	clone.Economy.MoneyCopper = 0

	if s.Contracts.Inbox[0].Title != "Clear the Goblin Warren" {
		t.Fatalf("clone shares inbox storage with the original")
	}
	if s.Contracts.Active[0].HeroIDs[0] != 1 {
		t.Fatalf("clone shares active hero ids with the original")
	}
	if s.Contracts.Returns[0].HeroIDs[0] != 1 || s.Contracts.Returns[0].ReasonTags[0] != "suspected_theft" {
		t.Fatalf("clone shares return packet storage with the original")
	}
	if s.Heroes.Roster[0].Name != "Aldric Ashford" {
		t.Fatalf("clone shares roster storage with the original")
	}
	if s.Heroes.ArrivalsToday[0] != 1 {
		t.Fatalf("clone shares arrivals storage with the original")
	}
	if s.Economy.MoneyCopper == 0 {
		t.Fatalf("clone shares economy with the original")
	}
}

func TestIssueCountersAdvance(t *testing.T) {
	m := New(1).Meta

	id1, m := m.IssueContractID()
	id2, m := m.IssueContractID()
	if id1 != 1 || id2 != 2 || m.NextContractID != 3 {
		t.Fatalf("contract counter broken: %d %d next=%d", id1, id2, m.NextContractID)
	}

	h1, m := m.IssueHeroID()
	a1, m := m.IssueActiveID()
	if h1 != 1 || a1 != 1 {
		t.Fatalf("counters must be independent: hero=%d active=%d", h1, a1)
	}
	if m.NextHeroID != 2 || m.NextActiveID != 2 {
		t.Fatalf("counters must advance: %+v", m)
	}
}

func TestRemoveFromArrivalsKeepsSubsetOfRoster(t *testing.T) {
	h := Heroes{
		Roster:        []Hero{{ID: 1}, {ID: 2}},
		ArrivalsToday: []types.HeroID{1, 2},
	}
	h.Roster = h.Remove(2)
	h.ArrivalsToday = h.RemoveFromArrivals(2)

	if len(h.Roster) != 1 || h.Roster[0].ID != 1 {
		t.Fatalf("remove must drop exactly hero 2: %+v", h.Roster)
	}
	if len(h.ArrivalsToday) != 1 || h.ArrivalsToday[0] != 1 {
		t.Fatalf("arrivals must stay a subset of the roster: %+v", h.ArrivalsToday)
	}
}
