package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestSetupOutputRenamesStandardKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupOutput("guildhall-test", "dev", &buf)
	logger.Info("hello", "component", "test")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	for _, key := range []string{"timestamp", "severity", "message", "service", "env"} {
		if _, ok := line[key]; !ok {
			t.Fatalf("expected key %q in log line: %v", key, line)
		}
	}
	if line["message"] != "hello" {
		t.Fatalf("expected message 'hello', got %v", line["message"])
	}
	if line["severity"] != "INFO" {
		t.Fatalf("expected severity INFO, got %v", line["severity"])
	}
}

func TestMaskFieldRedactsUnlistedKeys(t *testing.T) {
	attr := MaskField("session_token", "abc123")
	if attr.Value.String() != RedactedValue {
		t.Fatalf("unlisted key must redact, got %q", attr.Value.String())
	}

	allowed := MaskField("reason", "tax_evasion")
	if allowed.Value.String() != "tax_evasion" {
		t.Fatalf("allowlisted key must pass through, got %q", allowed.Value.String())
	}

	empty := MaskField("session_token", "")
	if empty.Value.String() != "" {
		t.Fatalf("empty values pass through unredacted, got %q", empty.Value.String())
	}
}

func TestRedactionAllowlistIsSortedAndStable(t *testing.T) {
	keys := RedactionAllowlist()
	if len(keys) == 0 {
		t.Fatalf("allowlist must not be empty")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("allowlist not sorted at %d: %q >= %q", i, keys[i-1], keys[i])
		}
	}
	if !IsAllowlisted("Reason") {
		t.Fatalf("allowlist lookup must be case-insensitive")
	}
}
