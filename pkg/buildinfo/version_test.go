package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	vcs := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	tests := []struct {
		name string
		in   Info
		bi   debug.BuildInfo
		want Info
	}{
		{
			name: "placeholders filled from toolchain",
			in:   Info{unknownVersion, unknownCommit, unknownDate},
			bi:   debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}, Settings: vcs},
			want: Info{"v0.3.0", "abc123-dirty", "2026-01-02T03:04:05Z"},
		},
		{
			name: "ldflags win",
			in:   Info{"v1.0.0", "deadbeef", "2025-12-20"},
			bi:   debug.BuildInfo{Main: debug.Module{Version: "v0.3.0"}, Settings: vcs},
			want: Info{"v1.0.0", "deadbeef", "2025-12-20"},
		},
		{
			name: "devel build keeps dev",
			in:   Info{unknownVersion, unknownCommit, unknownDate},
			bi:   debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{unknownVersion, unknownCommit, unknownDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.merge(&tt.bi); got != tt.want {
				t.Errorf("merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") || !strings.Contains(tmpl, "commit: ") {
		t.Errorf("Template() = %q", tmpl)
	}
}

func TestInfoString(t *testing.T) {
	got := Info{"v1", "c", "d"}.String()
	if got != "version: v1\ncommit: c\nbuilt: d" {
		t.Errorf("String() = %q", got)
	}
}
