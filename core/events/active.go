package events

import "guildhall/core/types"

const (
	TypeContractTaken        = "contract.taken"
	TypeWipAdvanced          = "contract.wip_advanced"
	TypeContractResolved     = "contract.resolved"
	TypeTrophyTheftSuspected = "contract.trophy_theft_suspected"
	TypeReturnClosed         = "contract.return_closed"
)

// ContractTaken is emitted when a hero picks up a board contract in Phase 4.
type ContractTaken struct {
	HeroID   types.HeroID
	BoardID  types.BoardContractID
	ActiveID types.ActiveContractID
}

func (ContractTaken) EventType() string { return TypeContractTaken }

func (e ContractTaken) Attributes() map[string]string {
	return map[string]string{
		"hero_id":   itoa(int64(e.HeroID)),
		"board_id":  itoa(int64(e.BoardID)),
		"active_id": itoa(int64(e.ActiveID)),
	}
}

// WipAdvanced is emitted once per WIP active contract per day in Phase 5.
type WipAdvanced struct {
	ActiveID      types.ActiveContractID
	DaysRemaining int
}

func (WipAdvanced) EventType() string { return TypeWipAdvanced }

func (e WipAdvanced) Attributes() map[string]string {
	return map[string]string{
		"active_id":      itoa(int64(e.ActiveID)),
		"days_remaining": itoa(int64(e.DaysRemaining)),
	}
}

// ContractResolved is emitted when a WIP contract reaches zero days
// remaining and its outcome has been determined.
type ContractResolved struct {
	ActiveID            types.ActiveContractID
	Outcome             types.Outcome
	Quality             types.Quality
	TrophiesCount       int
	RequiresPlayerClose bool
}

func (ContractResolved) EventType() string { return TypeContractResolved }

func (e ContractResolved) Attributes() map[string]string {
	return map[string]string{
		"active_id":             itoa(int64(e.ActiveID)),
		"outcome":               e.Outcome.String(),
		"quality":               e.Quality.String(),
		"trophies_count":        itoa(int64(e.TrophiesCount)),
		"requires_player_close": btoa(e.RequiresPlayerClose),
	}
}

// TrophyTheftSuspected is emitted when the theft model triggers on a
// resolution, capturing both the expected and the reported trophy counts.
type TrophyTheftSuspected struct {
	ActiveID      types.ActiveContractID
	ExpectedCount int
	ReportedCount int
}

func (TrophyTheftSuspected) EventType() string { return TypeTrophyTheftSuspected }

func (e TrophyTheftSuspected) Attributes() map[string]string {
	return map[string]string{
		"active_id":      itoa(int64(e.ActiveID)),
		"expected_count": itoa(int64(e.ExpectedCount)),
		"reported_count": itoa(int64(e.ReportedCount)),
	}
}

// ReturnClosed is emitted when a return packet is closed, whether by the
// auto-close path at resolution or by an explicit CloseReturn command.
type ReturnClosed struct {
	ActiveID types.ActiveContractID
	BoardID  types.BoardContractID
}

func (ReturnClosed) EventType() string { return TypeReturnClosed }

func (e ReturnClosed) Attributes() map[string]string {
	return map[string]string{
		"active_id": itoa(int64(e.ActiveID)),
		"board_id":  itoa(int64(e.BoardID)),
	}
}
