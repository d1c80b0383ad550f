package events

const TypeStabilityUpdated = "region.stability_updated"

// StabilityUpdated is emitted whenever the region's stability score changes,
// in Phase 3 (auto-resolve penalties) and Phase 6 (success/failure delta).
type StabilityUpdated struct {
	Old int
	New int
}

func (StabilityUpdated) EventType() string { return TypeStabilityUpdated }

func (e StabilityUpdated) Attributes() map[string]string {
	return map[string]string{
		"old": itoa(int64(e.Old)),
		"new": itoa(int64(e.New)),
	}
}
