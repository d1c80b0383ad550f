package http

import (
	"encoding/json"

	"guildhall/core/types"
)

func intoContractDraftID(v int64) types.ContractDraftID   { return types.ContractDraftID(v) }
func intoActiveContractID(v int64) types.ActiveContractID { return types.ActiveContractID(v) }
func intoSalvagePolicy(v int) types.SalvagePolicy         { return types.SalvagePolicy(v) }
func intoProofPolicy(v int) types.ProofPolicy             { return types.ProofPolicy(v) }
func intoRank(v int) types.Rank                           { return types.Rank(v) }

func jsonMarshalEvents(events []types.EventRecord) ([]byte, error) {
	if events == nil {
		events = []types.EventRecord{}
	}
	return json.Marshal(events)
}
