package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest, current string
		want            bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.10.0", "1.9.0", true},
		{"v2.0.0", "1.99.99", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3-dirty", false},
		{"1.2.2", "1.2.3", false},
		{"garbage", "0.1.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isNewer(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}

func TestFormatVersion(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild }()

	Version, Commit, BuildTime = "1.0.0", "", ""
	assert.Equal(t, "1.0.0 (development)", FormatVersion())

	Commit, BuildTime = "abc1234", "2026-10-19T10:00:00Z"
	assert.Equal(t, "1.0.0 (commit: abc1234, built at: 2026-10-19T10:00:00Z)", FormatVersion())

	BuildTime = ""
	assert.Equal(t, "1.0.0 (commit: abc1234)", FormatVersion())
}

func TestStampFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     buildStamp
	}{
		{
			name: "tagged clean build",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc1234def5678"},
				{Key: "vcs.time", Value: "2026-10-19T07:00:00-03:00"},
				{Key: "vcs.modified", Value: "false"},
				{Key: "vcs.tag", Value: "v1.4.0"},
			},
			want: buildStamp{version: "1.4.0", commit: "abc1234", builtAt: "2026-10-19T10:00:00Z"},
		},
		{
			name: "dirty tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.tag", Value: "v1.4.0"},
				{Key: "vcs.modified", Value: "TRUE"},
			},
			want: buildStamp{version: "1.4.0-dirty"},
		},
		{
			name: "no tag keeps the version unset",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.time", Value: "yesterday"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: buildStamp{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stampFromSettings(tt.settings))
		})
	}
}

func TestBuildStampKeepsLdflags(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild }()

	Version, Commit, BuildTime = devVersion, "fromldf", ""
	buildStamp{version: "1.4.0", commit: "abc1234", builtAt: "2026-10-19T10:00:00Z"}.apply()

	assert.Equal(t, "1.4.0", Version)
	assert.Equal(t, "fromldf", Commit)
	assert.Equal(t, "2026-10-19T10:00:00Z", BuildTime)
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(`{"tag_name": "v2.1.0"}`))
		case "/untagged":
			_, _ = w.Write([]byte(`{}`))
		case "/broken":
			_, _ = w.Write([]byte(`{"tag_name":`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	latest, err := latestRelease(ctx, srv.Client(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", latest)

	_, err = latestRelease(ctx, srv.Client(), srv.URL+"/untagged")
	assert.ErrorContains(t, err, "no tag")

	_, err = latestRelease(ctx, srv.Client(), srv.URL+"/broken")
	assert.ErrorContains(t, err, "decoding release")

	_, err = latestRelease(ctx, srv.Client(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "404")
}
