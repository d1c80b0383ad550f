package events

const (
	TypeTaxDue        = "tax.due"
	TypeTaxMissed     = "tax.missed"
	TypeGuildShutdown = "guild.shutdown"
)

// TaxDue is emitted at the end of Phase 7 with the newly scheduled due day
// and amount.
type TaxDue struct {
	DueDay uint64
	Amount int64
}

func (TaxDue) EventType() string { return TypeTaxDue }

func (e TaxDue) Attributes() map[string]string {
	return map[string]string{
		"due_day": itoa(int64(e.DueDay)),
		"amount":  itoa(e.Amount),
	}
}

// TaxMissed is emitted when Phase 7 finds an outstanding balance at the due
// day.
type TaxMissed struct {
	MissedCount int
	Penalty     int64
}

func (TaxMissed) EventType() string { return TypeTaxMissed }

func (e TaxMissed) Attributes() map[string]string {
	return map[string]string{
		"missed_count": itoa(int64(e.MissedCount)),
		"penalty":      itoa(e.Penalty),
	}
}

// GuildShutdown is emitted when tax delinquency reaches TAX_MAX_MISSED.
type GuildShutdown struct {
	Reason string
}

func (GuildShutdown) EventType() string { return TypeGuildShutdown }

func (e GuildShutdown) Attributes() map[string]string {
	return map[string]string{"reason": e.Reason}
}
