package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	vcs := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T10:00:00+02:00"},
		},
	}

	tests := []struct {
		name     string
		linked   Info
		bi       *debug.BuildInfo
		expected Info
	}{
		{
			name:     "nothing known",
			expected: Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"},
		},
		{
			name:     "build info only",
			bi:       vcs,
			expected: Info{Version: "v0.4.1", Commit: "0123456789ab-dirty", BuildDate: "2025-03-01T08:00:00Z"},
		},
		{
			name:     "linker values win",
			linked:   Info{Version: " v1.0.0 ", Commit: "abc", BuildDate: "today"},
			bi:       vcs,
			expected: Info{Version: "v1.0.0", Commit: "abc", BuildDate: "today"},
		},
		{
			name:     "devel module version",
			bi:       &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"},
		},
	}

	for _, test := range tests {
		if got := resolve(test.linked, test.bi); got != test.expected {
			t.Errorf("%s:\nExpected: %+v\nGot:      %+v", test.name, test.expected, got)
		}
	}
}

func TestDataIsStable(t *testing.T) {
	first := Data()
	if first != Data() {
		t.Fatalf("expected Data to be computed once")
	}
	if first.Version == "" || first.Commit == "" || first.BuildDate == "" {
		t.Fatalf("expected every field to be filled, got %+v", first)
	}
	if !strings.HasPrefix(first.String(), "tally ") {
		t.Fatalf("unexpected version line %q", first.String())
	}
}
