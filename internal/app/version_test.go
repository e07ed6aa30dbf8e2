package app

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {
	vcs := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "9f8e7d6c5b4a39281706f5e4d3c2b1a098765432"},
		{Key: "vcs.time", Value: "2026-02-17T00:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}}

	tests := []struct {
		name               string
		info               *debug.BuildInfo
		ldCommit, ldBuilt  string
		wantCommit, wantAt string
	}{
		{"no metadata", nil, "", "", "unknown", "unknown"},
		{"vcs stamp", vcs, "", "", "9f8e7d6c5b4a-dirty", "2026-02-17T00:00:00Z"},
		{"ldflags win", vcs, "abc1234", "2026-02-01", "abc1234", "2026-02-01"},
		{"empty build info", &debug.BuildInfo{}, "", "", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevCommit, prevBuilt := Commit, BuildTime
			t.Cleanup(func() { Commit, BuildTime = prevCommit, prevBuilt })
			Commit, BuildTime = tt.ldCommit, tt.ldBuilt

			commit, built := stamp(tt.info)
			assert.Equal(t, tt.wantCommit, commit)
			assert.Equal(t, tt.wantAt, built)
		})
	}
}

func TestBuildVersion_StartsWithVersion(t *testing.T) {
	assert.True(t, strings.HasPrefix(BuildVersion(), Version+" (commit: "))
}
