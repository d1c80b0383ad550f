// Package seqctx implements the reducer's append-only event sequencing
// context described by the reducer algorithm: handlers and pipeline phases
// emit events into it without ever assigning their own seq; final numbering
// happens once, after any invariant violations have been inserted.
package seqctx

import (
	"guildhall/core/events"
	"guildhall/core/types"
)

// Context collects events for a single reducer step. Handlers call Emit;
// the reducer alone calls InsertBeforeDayEnded and RenumberFrom1.
type Context struct {
	day      uint64
	revision uint64
	cmdID    uint64
	events   []types.EventRecord
}

// New returns a fresh Context for one reducer step.
func New(day, revision, cmdID uint64) *Context {
	return &Context{day: day, revision: revision, cmdID: cmdID}
}

// Emit assigns the event a placeholder seq (its current position) and
// appends it. Final seq values are only correct after RenumberFrom1.
func (c *Context) Emit(eventType string, attrs map[string]string) {
	c.events = append(c.events, types.EventRecord{
		Envelope: types.Envelope{
			Day:      c.day,
			Revision: c.revision,
			CmdID:    c.cmdID,
			Seq:      uint64(len(c.events) + 1),
		},
		Type:       eventType,
		Attributes: attrs,
	})
}

// EmitEvent is a convenience wrapper over Emit for concrete core/events
// payloads.
func (c *Context) EmitEvent(e events.Event) {
	c.Emit(e.EventType(), e.Attributes())
}

// InsertBeforeDayEnded inserts extra immediately before a trailing DayEnded
// event, or at the end if the last event is not DayEnded.
func (c *Context) InsertBeforeDayEnded(extra []types.EventRecord) {
	if len(extra) == 0 {
		return
	}
	if n := len(c.events); n > 0 && c.events[n-1].Type == "day.ended" {
		head := append([]types.EventRecord(nil), c.events[:n-1]...)
		head = append(head, extra...)
		head = append(head, c.events[n-1])
		c.events = head
		return
	}
	c.events = append(c.events, extra...)
}

// BuildRecords renders a batch of concrete events into EventRecords stamped
// with this context's day/revision/cmd_id, ready for InsertBeforeDayEnded.
// Seq is a placeholder until RenumberFrom1 runs.
func (c *Context) BuildRecords(evs []events.Event) []types.EventRecord {
	out := make([]types.EventRecord, len(evs))
	for i, e := range evs {
		out[i] = types.EventRecord{
			Envelope: types.Envelope{
				Day:      c.day,
				Revision: c.revision,
				CmdID:    c.cmdID,
			},
			Type:       e.EventType(),
			Attributes: e.Attributes(),
		}
	}
	return out
}

// RenumberFrom1 rewrites every event's seq field to reflect final emission
// order, starting at 1. It is the only place seq is authoritative.
func (c *Context) RenumberFrom1() []types.EventRecord {
	for i := range c.events {
		c.events[i].Seq = uint64(i + 1)
	}
	return c.events
}

// Events returns the events recorded so far, in current order, without
// renumbering.
func (c *Context) Events() []types.EventRecord {
	return c.events
}
