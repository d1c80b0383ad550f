package types

import "fmt"

// ContractDraftID identifies a ContractDraft sitting in the inbox.
type ContractDraftID int64

// BoardContractID identifies a posted BoardContract. It is inherited from the
// draft it was posted from, so BoardContractID and ContractDraftID share the
// same numbering space.
type BoardContractID int64

// ActiveContractID identifies an ActiveContract. It is issued from its own
// monotonic counter, independent of the board/draft id space.
type ActiveContractID int64

// HeroID identifies a Hero in the roster.
type HeroID int64

func (id ContractDraftID) String() string  { return fmt.Sprintf("draft#%d", int64(id)) }
func (id BoardContractID) String() string  { return fmt.Sprintf("board#%d", int64(id)) }
func (id ActiveContractID) String() string { return fmt.Sprintf("active#%d", int64(id)) }
func (id HeroID) String() string           { return fmt.Sprintf("hero#%d", int64(id)) }
