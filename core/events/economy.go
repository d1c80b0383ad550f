package events

const (
	TypeTrophiesSold = "economy.trophies_sold"
	TypeTaxPaid      = "economy.tax_paid"
)

// TrophiesSold is emitted when SellTrophies converts stock into money.
type TrophiesSold struct {
	Amount         int64
	ProceedsCopper int64
}

func (TrophiesSold) EventType() string { return TypeTrophiesSold }

func (e TrophiesSold) Attributes() map[string]string {
	return map[string]string{
		"amount":          itoa(e.Amount),
		"proceeds_copper": itoa(e.ProceedsCopper),
	}
}

// TaxPaid is emitted when a PayTax command clears some or all of the amount
// due.
type TaxPaid struct {
	Amount       int64
	RemainingDue int64
}

func (TaxPaid) EventType() string { return TypeTaxPaid }

func (e TaxPaid) Attributes() map[string]string {
	return map[string]string{
		"amount":        itoa(e.Amount),
		"remaining_due": itoa(e.RemainingDue),
	}
}
