package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func restore(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFromBuildInfo(t *testing.T) {
	restore(t)
	Version, Commit, Date = "dev", "none", "unknown"

	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2025-06-01T10:00:00Z"},
		},
	})

	if Version != "v0.3.1" || Commit != "0123456789abcdef" || Date != "2025-06-01T10:00:00Z" {
		t.Errorf("got %s %s %s", Version, Commit, Date)
	}
	if got := ShortCommit(); got != "0123456" {
		t.Errorf("ShortCommit() = %q", got)
	}
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	restore(t)
	Version, Commit, Date = "v1.0.0", "abc", "today"

	fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}},
	})
	if Version != "v1.0.0" || Commit != "abc" || Date != "today" {
		t.Errorf("ldflags values overwritten: %s %s %s", Version, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	restore(t)
	out := Template()
	if !strings.HasPrefix(out, "{{.Name}} version ") || !strings.Contains(out, "commit: ") {
		t.Errorf("Template() = %q", out)
	}
	if !strings.HasPrefix(UserAgent(), "tagflow/") {
		t.Errorf("UserAgent() = %q", UserAgent())
	}
}
