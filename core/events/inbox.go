package events

import "guildhall/core/types"

const (
	TypeInboxGenerated       = "inbox.generated"
	TypeContractAutoResolved = "contract.auto_resolved"
	TypeContractPosted       = "contract.posted"
	TypeContractCreated      = "contract.created"
	TypeContractUpdated      = "contract.updated"
	TypeContractCancelled    = "contract.cancelled"
)

// InboxGenerated lists the drafts created during Phase 1, sorted by id.
type InboxGenerated struct {
	DraftIDs []types.ContractDraftID
}

func (InboxGenerated) EventType() string { return TypeInboxGenerated }

func (e InboxGenerated) Attributes() map[string]string {
	return map[string]string{"draft_ids": idList(e.DraftIDs)}
}

// ContractAutoResolved is emitted once per aged-out inbox draft in Phase 3.
type ContractAutoResolved struct {
	DraftID types.ContractDraftID
	Bucket  types.AutoResolveBucket
}

func (ContractAutoResolved) EventType() string { return TypeContractAutoResolved }

func (e ContractAutoResolved) Attributes() map[string]string {
	return map[string]string{
		"draft_id": itoa(int64(e.DraftID)),
		"bucket":   e.Bucket.String(),
	}
}

// ContractPosted is emitted when a PostContract command moves a draft from
// the inbox onto the board.
type ContractPosted struct {
	BoardID       types.BoardContractID
	Fee           int64
	Salvage       types.SalvagePolicy
	ClientDeposit int64
}

func (ContractPosted) EventType() string { return TypeContractPosted }

func (e ContractPosted) Attributes() map[string]string {
	return map[string]string{
		"board_id":       itoa(int64(e.BoardID)),
		"fee":            itoa(e.Fee),
		"salvage":        e.Salvage.String(),
		"client_deposit": itoa(e.ClientDeposit),
	}
}

// ContractCreated is emitted when CreateContract inserts a new draft
// directly into the inbox.
type ContractCreated struct {
	DraftID types.ContractDraftID
	Title   string
	Rank    types.Rank
}

func (ContractCreated) EventType() string { return TypeContractCreated }

func (e ContractCreated) Attributes() map[string]string {
	return map[string]string{
		"draft_id": itoa(int64(e.DraftID)),
		"title":    e.Title,
		"rank":     e.Rank.String(),
	}
}

// ContractUpdated is emitted when UpdateContractTerms changes a draft or
// board contract's fee/salvage terms.
type ContractUpdated struct {
	ContractID int64
	Fee        int64
	Salvage    types.SalvagePolicy
}

func (ContractUpdated) EventType() string { return TypeContractUpdated }

func (e ContractUpdated) Attributes() map[string]string {
	return map[string]string{
		"contract_id": itoa(e.ContractID),
		"fee":         itoa(e.Fee),
		"salvage":     e.Salvage.String(),
	}
}

// ContractCancelled is emitted when CancelContract removes a draft or an
// OPEN board contract.
type ContractCancelled struct {
	ContractID int64
	Refunded   int64
}

func (ContractCancelled) EventType() string { return TypeContractCancelled }

func (e ContractCancelled) Attributes() map[string]string {
	return map[string]string{
		"contract_id": itoa(e.ContractID),
		"refunded":    itoa(e.Refunded),
	}
}
