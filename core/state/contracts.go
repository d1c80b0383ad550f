package state

import "guildhall/core/types"

// ContractDraft is an unposted contract sitting in the inbox, awaiting a
// PostContract, CancelContract, or an inbox auto-resolve.
type ContractDraft struct {
	ID                 types.ContractDraftID `json:"id"`
	CreatedDay         uint64                `json:"created_day"`
	NextAutoResolveDay uint64                `json:"next_auto_resolve_day"`
	Title              string                `json:"title"`
	RankSuggested      types.Rank            `json:"rank_suggested"`
	FeeOffered         types.Copper          `json:"fee_offered"`
	Salvage            types.SalvagePolicy   `json:"salvage"`
	BaseDifficulty     int                   `json:"base_difficulty"`
	ClientDeposit      types.Copper          `json:"client_deposit"`
}

// Clone returns an independent copy of d.
func (d ContractDraft) Clone() ContractDraft { return d }

// BoardContract is a posted, publicly visible contract.
type BoardContract struct {
	ID             types.BoardContractID `json:"id"`
	PostedDay      uint64                `json:"posted_day"`
	Title          string                `json:"title"`
	Rank           types.Rank            `json:"rank"`
	Fee            types.Copper          `json:"fee"`
	Salvage        types.SalvagePolicy   `json:"salvage"`
	BaseDifficulty int                   `json:"base_difficulty"`
	Status         types.BoardStatus     `json:"status"`
	ClientDeposit  types.Copper          `json:"client_deposit"`
}

// Clone returns an independent copy of b.
func (b BoardContract) Clone() BoardContract { return b }

// ActiveContract is an in-progress engagement between one or more heroes and
// a posted contract.
type ActiveContract struct {
	ID              types.ActiveContractID `json:"id"`
	BoardContractID types.BoardContractID  `json:"board_contract_id"`
	TakenDay        uint64                 `json:"taken_day"`
	DaysRemaining   int                    `json:"days_remaining"`
	HeroIDs         []types.HeroID         `json:"hero_ids"`
	Status          types.ActiveStatus     `json:"status"`
}

// Clone returns an independent deep copy of a.
func (a ActiveContract) Clone() ActiveContract {
	clone := a
	if len(a.HeroIDs) > 0 {
		clone.HeroIDs = append([]types.HeroID(nil), a.HeroIDs...)
	}
	return clone
}

// ReturnPacket is the journaled record of a resolved contract, created
// whether the contract auto-closed or requires a manual CloseReturn.
type ReturnPacket struct {
	ActiveContractID    types.ActiveContractID `json:"active_contract_id"`
	BoardContractID     types.BoardContractID  `json:"board_contract_id"`
	HeroIDs             []types.HeroID         `json:"hero_ids"`
	ResolvedDay         uint64                 `json:"resolved_day"`
	Outcome             types.Outcome          `json:"outcome"`
	TrophiesCount       int                    `json:"trophies_count"`
	TrophiesQuality     types.Quality          `json:"trophies_quality"`
	ReasonTags          []string               `json:"reason_tags"`
	RequiresPlayerClose bool                   `json:"requires_player_close"`
	SuspectedTheft      bool                   `json:"suspected_theft"`
}

// Clone returns an independent deep copy of r.
func (r ReturnPacket) Clone() ReturnPacket {
	clone := r
	if len(r.HeroIDs) > 0 {
		clone.HeroIDs = append([]types.HeroID(nil), r.HeroIDs...)
	}
	if len(r.ReasonTags) > 0 {
		clone.ReasonTags = append([]string(nil), r.ReasonTags...)
	}
	return clone
}

// Contracts is the root aggregate of the four contract collections, each
// ordered by ascending id.
type Contracts struct {
	Inbox   []ContractDraft  `json:"inbox"`
	Board   []BoardContract  `json:"board"`
	Active  []ActiveContract `json:"active"`
	Returns []ReturnPacket   `json:"returns"`
}

// Clone returns an independent deep copy of c.
func (c Contracts) Clone() Contracts {
	clone := Contracts{}
	if len(c.Inbox) > 0 {
		clone.Inbox = append([]ContractDraft(nil), c.Inbox...)
	}
	if len(c.Board) > 0 {
		clone.Board = append([]BoardContract(nil), c.Board...)
	}
	if len(c.Active) > 0 {
		clone.Active = make([]ActiveContract, len(c.Active))
		for i, a := range c.Active {
			clone.Active[i] = a.Clone()
		}
	}
	if len(c.Returns) > 0 {
		clone.Returns = make([]ReturnPacket, len(c.Returns))
		for i, r := range c.Returns {
			clone.Returns[i] = r.Clone()
		}
	}
	return clone
}

// FindDraft returns the draft with the given id, if present.
func (c Contracts) FindDraft(id types.ContractDraftID) (ContractDraft, bool) {
	for _, d := range c.Inbox {
		if d.ID == id {
			return d, true
		}
	}
	return ContractDraft{}, false
}

// FindBoard returns the board contract with the given id, if present.
func (c Contracts) FindBoard(id types.BoardContractID) (BoardContract, bool) {
	for _, b := range c.Board {
		if b.ID == id {
			return b, true
		}
	}
	return BoardContract{}, false
}

// FindActive returns the active contract with the given id, if present.
func (c Contracts) FindActive(id types.ActiveContractID) (ActiveContract, bool) {
	for _, a := range c.Active {
		if a.ID == id {
			return a, true
		}
	}
	return ActiveContract{}, false
}

// FindReturnByActive returns the return packet referencing the given active
// contract id, if present.
func (c Contracts) FindReturnByActive(id types.ActiveContractID) (ReturnPacket, bool) {
	for _, r := range c.Returns {
		if r.ActiveContractID == id {
			return r, true
		}
	}
	return ReturnPacket{}, false
}

// RemoveDraft returns a copy of Inbox with the given draft id removed.
func (c Contracts) RemoveDraft(id types.ContractDraftID) []ContractDraft {
	out := make([]ContractDraft, 0, len(c.Inbox))
	for _, d := range c.Inbox {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}

// RemoveReturn returns a copy of Returns with the packet for the given active
// contract id removed.
func (c Contracts) RemoveReturn(activeID types.ActiveContractID) []ReturnPacket {
	out := make([]ReturnPacket, 0, len(c.Returns))
	for _, r := range c.Returns {
		if r.ActiveContractID != activeID {
			out = append(out, r)
		}
	}
	return out
}
