package types

// Envelope carries the four fields every emitted event shares, regardless of
// its concrete payload: the day it happened on, the state revision it was
// produced under, the command correlation id that triggered it, and its
// position in the final, renumbered event list for that step.
type Envelope struct {
	Day      uint64 `json:"day"`
	Revision uint64 `json:"revision"`
	CmdID    uint64 `json:"cmd_id"`
	Seq      uint64 `json:"seq"`
}

// EventRecord is the canonical, wire/hash-level shape of an emitted event: an
// envelope, a type tag, and a flat string-keyed attribute map. Concrete event
// payloads (in package core/events) render themselves down to this shape;
// nothing outside the reducer ever needs to know the full set of concrete
// event types.
type EventRecord struct {
	Envelope
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}
