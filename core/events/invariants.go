package events

const TypeInvariantViolated = "invariant.violated"

// InvariantViolated is emitted for each violation the verifier finds after a
// transition. State is kept as-is; the violation is surfaced, not rolled
// back.
type InvariantViolated struct {
	ID      string
	Details string
}

func (InvariantViolated) EventType() string { return TypeInvariantViolated }

func (e InvariantViolated) Attributes() map[string]string {
	return map[string]string{
		"id":      e.ID,
		"details": e.Details,
	}
}
