// Package session wraps core.Engine.Step with a uuid-tagged in-memory audit
// trail: every handled command gets a request id for later inspection. A
// Session is the single mutation point adapters (HTTP, CLI) drive; it owns
// the current GameState, the RNG, and a bounded ring buffer of past
// commands and the events they produced.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"guildhall/config"
	"guildhall/core"
	"guildhall/core/command"
	"guildhall/core/rng"
	"guildhall/core/state"
	"guildhall/core/types"
	"guildhall/observability"
)

// DefaultAuditCapacity bounds the audit ring buffer when none is supplied.
const DefaultAuditCapacity = 512

// AuditEntry records one Step call: its correlation id, the command that
// triggered it, the events it produced, and when it happened. GlobalStart is
// the cumulative event count before this entry's events, since every Step
// renumbers its own events from 1 and so Seq alone cannot order across
// commands.
type AuditEntry struct {
	RequestID   string
	Command     command.Command
	Events      []types.EventRecord
	AppliedAt   time.Time
	GlobalStart uint64
}

// Session serializes access to a single GameState/RNG pair behind a mutex,
// since the reducer itself is a pure function with no concurrency story of
// its own.
type Session struct {
	mu       sync.Mutex
	engine   core.Engine
	state    state.GameState
	rng      *rng.Source
	audit    []AuditEntry
	capacity int
	total    uint64
	metrics  *observability.EngineMetrics
	now      func() time.Time
}

// New starts a session from a freshly seeded GameState.
func New(seed uint32) *Session {
	return &Session{
		engine:   core.NewEngine(),
		state:    state.New(seed),
		rng:      rng.New(seed),
		capacity: DefaultAuditCapacity,
		metrics:  observability.Engine(),
		now:      time.Now,
	}
}

// NewWithConstants starts a session from a freshly seeded GameState, wiring
// a loaded config.Constants into the engine before anything runs.
func NewWithConstants(seed uint32, c config.Constants) (*Session, error) {
	engine, err := core.NewEngineWithConstants(c)
	if err != nil {
		return nil, err
	}
	return &Session{
		engine:   engine,
		state:    state.New(seed),
		rng:      rng.New(seed),
		capacity: DefaultAuditCapacity,
		metrics:  observability.Engine(),
		now:      time.Now,
	}, nil
}

// Resume starts a session from an already-loaded GameState, reseeding the
// RNG from the state's own recorded seed so replay stays deterministic.
func Resume(s state.GameState) *Session {
	return &Session{
		engine:   core.NewEngine(),
		state:    s,
		rng:      rng.New(s.Meta.Seed),
		capacity: DefaultAuditCapacity,
		metrics:  observability.Engine(),
		now:      time.Now,
	}
}

// Apply drives one command through the reducer, records it in the audit
// trail under a fresh request id, and returns both the request id and the
// events produced.
func (s *Session) Apply(cmd command.Command) (requestID string, events []types.EventRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	newState, evts := s.engine.Step(s.state, cmd, s.rng)
	s.state = newState

	rejected := false
	violationIDs := make([]string, 0)
	for _, e := range evts {
		if e.Type == "command.rejected" {
			rejected = true
		}
		if e.Type == "invariant.violated" {
			violationIDs = append(violationIDs, e.Attributes["id"])
		}
	}
	s.metrics.ObserveStep(cmd.Kind.String(), rejected, violationIDs, s.state.Meta.Revision, s.now().Sub(start))

	id := uuid.NewString()
	entry := AuditEntry{RequestID: id, Command: cmd, Events: evts, AppliedAt: s.now(), GlobalStart: s.total}
	s.total += uint64(len(evts))
	s.audit = append(s.audit, entry)
	if len(s.audit) > s.capacity {
		s.audit = s.audit[len(s.audit)-s.capacity:]
	}
	return id, evts
}

// State returns a defensive copy of the current GameState.
func (s *Session) State() state.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// EventsSince returns every retained event whose cumulative global index is
// at or past the since cursor, in emission order. The global index is
// unrelated to an event's own Envelope.Seq, which only orders events within
// the single Step call that produced them.
func (s *Session) EventsSince(since uint64) []types.EventRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.EventRecord, 0)
	for _, entry := range s.audit {
		for i, e := range entry.Events {
			if entry.GlobalStart+uint64(i) >= since {
				out = append(out, e)
			}
		}
	}
	return out
}

// TotalEvents returns the cumulative count of events emitted so far, usable
// as the cursor value for a subsequent EventsSince call.
func (s *Session) TotalEvents() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Audit returns a copy of the audit trail retained so far, oldest first.
func (s *Session) Audit() []AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]AuditEntry, len(s.audit))
	copy(out, s.audit)
	return out
}
