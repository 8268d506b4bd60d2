// Package version carries the build stamp of the carbonscope binary.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const (
	devVersion = "0.0.0-dev"

	// releasesURL aponta para a última release publicada.
	releasesURL = "https://api.github.com/repos/diillson/carbonscope-dashboard-go/releases/latest"

	releaseCheckTimeout = 3 * time.Second
)

// Version, Commit and BuildTime are set with -ldflags "-X"; otherwise init
// fills them from the VCS settings the toolchain embeds in the binary.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

func init() {
	if Version != devVersion {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		stampFromSettings(info.Settings).apply()
	}
}

// buildStamp is what the vcs.* build settings say about this binary.
type buildStamp struct {
	version string
	commit  string
	builtAt string
}

func stampFromSettings(settings []debug.BuildSetting) buildStamp {
	var stamp buildStamp
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				stamp.commit = s.Value[:7]
			}
		case "vcs.time":
			if ts, err := time.Parse(time.RFC3339, s.Value); err == nil {
				stamp.builtAt = ts.UTC().Format(time.RFC3339)
			}
		case "vcs.modified":
			dirty = strings.EqualFold(s.Value, "true")
		case "vcs.tag":
			stamp.version = strings.TrimPrefix(s.Value, "v")
		}
	}
	if stamp.version != "" && dirty {
		stamp.version += "-dirty"
	}
	return stamp
}

// apply preenche apenas o que ldflags deixou vazio.
func (b buildStamp) apply() {
	if b.version != "" {
		Version = b.version
	}
	if Commit == "" {
		Commit = b.commit
	}
	if BuildTime == "" {
		BuildTime = b.builtAt
	}
}

// CheckLatestVersion prints an update hint when a newer release exists.
// Development builds and network failures are silent.
func CheckLatestVersion(currentVersion string) {
	if strings.HasSuffix(currentVersion, "-dev") {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), releaseCheckTimeout)
	defer cancel()

	latest, err := latestRelease(ctx, http.DefaultClient, releasesURL)
	if err != nil || !isNewer(latest, currentVersion) {
		return
	}
	pterm.Warning.Printfln("A new version of CarbonScope Dashboard is available: %s", latest)
	pterm.Info.Println("Please update using: go install github.com/diillson/carbonscope-dashboard-go/cmd/carbonscope@latest")
}

// latestRelease lê o tag_name da release mais recente, sem o prefixo "v".
func latestRelease(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release lookup returned %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("decoding release: %w", err)
	}
	if release.TagName == "" {
		return "", fmt.Errorf("release has no tag")
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}

// isNewer compara major.minor.patch numericamente; sufixos como "-dirty" são ignorados.
func isNewer(latest, current string) bool {
	l, c := versionParts(latest), versionParts(current)
	for i := range l {
		if l[i] != c[i] {
			return l[i] > c[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var parts [3]int
	v = strings.TrimPrefix(v, "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	for i, field := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(field)
		if err != nil {
			break
		}
		parts[i] = n
	}
	return parts
}

// FormatVersion renders the stamp for --version and the banner,
// e.g. "1.2.3 (commit: abc1234, built at: 2026-10-19T10:00:00Z)".
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	switch {
	case Commit == "" && BuildTime == "":
		return ver + " (development)"
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	}

	commit := Commit
	if commit == "" {
		commit = "development"
	}
	return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, commit, BuildTime)
}
