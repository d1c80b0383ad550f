package state

// Meta holds the root bookkeeping fields that are not part of any single
// sub-aggregate: save compatibility, the seed, the day/revision clocks, the
// three monotonic id counters, and tax tracking.
type Meta struct {
	SaveVersion int    `json:"save_version"`
	Seed        uint32 `json:"seed"`
	DayIndex    uint64 `json:"day_index"`
	Revision    uint64 `json:"revision"`

	NextContractID int64 `json:"next_contract_id"`
	NextHeroID     int64 `json:"next_hero_id"`
	NextActiveID   int64 `json:"next_active_id"`

	TaxDueDay      uint64 `json:"tax_due_day"`
	TaxAmountDue   int64  `json:"tax_amount_due"`
	TaxPenalty     int64  `json:"tax_penalty"`
	TaxMissedCount int    `json:"tax_missed_count"`
}

// Clone returns an independent copy of m.
func (m Meta) Clone() Meta { return m }

// IssueContractID returns the next contract/draft id and the Meta advanced
// past it. Board contracts inherit their draft's id, so this one counter
// serves both the Inbox and the Board.
func (m Meta) IssueContractID() (int64, Meta) {
	id := m.NextContractID
	m.NextContractID++
	return id, m
}

// IssueHeroID returns the next hero id and the Meta advanced past it.
func (m Meta) IssueHeroID() (int64, Meta) {
	id := m.NextHeroID
	m.NextHeroID++
	return id, m
}

// IssueActiveID returns the next active-contract id and the Meta advanced
// past it.
func (m Meta) IssueActiveID() (int64, Meta) {
	id := m.NextActiveID
	m.NextActiveID++
	return id, m
}
