package events

const (
	TypeDayStarted = "day.started"
	TypeDayEnded   = "day.ended"
)

// DayStarted opens Phase 0 of the AdvanceDay pipeline.
type DayStarted struct {
	Day uint64
}

func (DayStarted) EventType() string { return TypeDayStarted }

func (e DayStarted) Attributes() map[string]string {
	return map[string]string{"day": itoa(int64(e.Day))}
}

// DaySnapshot captures the headline state at the close of a day tick.
type DaySnapshot struct {
	Day           uint64
	Revision      uint64
	MoneyCopper   int64
	TrophiesStock int64
	Stability     int
	Reputation    int
	InboxCount    int
	BoardCount    int
	ActiveCount   int
	ReturnsCount  int
}

// DayEnded is always the last domain event of a day; Phase 8 emits it after
// capturing the DaySnapshot.
type DayEnded struct {
	Snapshot DaySnapshot
}

func (DayEnded) EventType() string { return TypeDayEnded }

func (e DayEnded) Attributes() map[string]string {
	s := e.Snapshot
	return map[string]string{
		"day":            itoa(int64(s.Day)),
		"revision":       itoa(int64(s.Revision)),
		"money_copper":   itoa(s.MoneyCopper),
		"trophies_stock": itoa(s.TrophiesStock),
		"stability":      itoa(int64(s.Stability)),
		"reputation":     itoa(int64(s.Reputation)),
		"inbox_count":    itoa(int64(s.InboxCount)),
		"board_count":    itoa(int64(s.BoardCount)),
		"active_count":   itoa(int64(s.ActiveCount)),
		"returns_count":  itoa(int64(s.ReturnsCount)),
	}
}
