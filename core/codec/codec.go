// Package codec implements the canonical, deterministic encoding of
// GameState and event lists, and the SHA-256 hashing built on top of it.
// Canonical encoding relies on two properties of Go's encoding/json that
// hold for every type in core/state and core/types used here: struct fields
// marshal in declaration order (never alphabetical, never map-iteration
// order), and map[string]string keys marshal in sorted order — together
// these give every object type a fixed, platform-independent key order
// without a hand-rolled writer.
package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"guildhall/core/errors"
	"guildhall/core/state"
	"guildhall/core/types"
)

// EncodeState renders s into its canonical byte form. arrivals_today is
// dropped by the `json:"-"` tag on state.Heroes.ArrivalsToday, satisfying the
// save-format rule that it is never persisted.
func EncodeState(s state.GameState) ([]byte, error) {
	return canonicalMarshal(s)
}

// DecodeState parses canonical bytes into a GameState. It fails with
// ErrIncompatibleVersion if the embedded save_version does not match the
// version this build understands, and with ErrMalformedSave for anything
// that fails to parse at all. ArrivalsToday is always empty after decode,
// matching the save format's reconstitution rule.
func DecodeState(data []byte) (state.GameState, error) {
	var versionProbe struct {
		Meta struct {
			SaveVersion int `json:"save_version"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(data, &versionProbe); err != nil {
		return state.GameState{}, errors.ErrMalformedSave
	}
	if versionProbe.Meta.SaveVersion != state.SaveVersion {
		return state.GameState{}, errors.ErrIncompatibleVersion
	}
	var s state.GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return state.GameState{}, errors.ErrMalformedSave
	}
	s.Heroes.ArrivalsToday = nil
	return s, nil
}

// EncodeEvents renders an event list into its canonical byte form, preserving
// emission order.
func EncodeEvents(events []types.EventRecord) ([]byte, error) {
	return canonicalMarshal(events)
}

// HashState returns the SHA-256 hash of s's canonical encoding, as 64
// lowercase hex characters. This is the golden replay fingerprint for state.
func HashState(s state.GameState) (string, error) {
	data, err := EncodeState(s)
	if err != nil {
		return "", err
	}
	return hashBytes(data), nil
}

// HashEvents returns the SHA-256 hash of the event list's canonical
// encoding, as 64 lowercase hex characters. This is the golden replay
// fingerprint for the event stream.
func HashEvents(events []types.EventRecord) (string, error) {
	data, err := EncodeEvents(events)
	if err != nil {
		return "", err
	}
	return hashBytes(data), nil
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// canonicalMarshal marshals v with HTML-escaping disabled (so titles/reasons
// containing '<', '>', '&' hash identically regardless of how they reached
// the engine) and without the trailing newline json.Marshal's sibling
// encoder helper appends.
func canonicalMarshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
