package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if info == "" {
		t.Fatal("Info returned empty string")
	}
	if !strings.HasPrefix(info, "vapdash ") {
		t.Errorf("Info = %q, want vapdash prefix", info)
	}
	if !strings.Contains(info, "commit:") {
		t.Errorf("Info = %q, want commit field", info)
	}
}

func TestInfoStable(t *testing.T) {
	// Repeated calls must return the same resolved values.
	if Info() != Info() {
		t.Error("Info is not stable across calls")
	}
}
