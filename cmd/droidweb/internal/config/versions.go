package config

import (
	"fmt"
	"sort"

	"golang.org/x/mod/semver"
)

// Release describes the SDK packages backing one supported Android version.
type Release struct {
	Version    string // marketing version, e.g. "13"
	APILevel   int    // e.g. 33
	BuildTools string // e.g. "33.0.2"
}

// Platform returns the sdkmanager package id for the platform.
func (r Release) Platform() string {
	return fmt.Sprintf("platforms;android-%d", r.APILevel)
}

// BuildToolsPackage returns the sdkmanager package id for the build tools.
func (r Release) BuildToolsPackage() string {
	return "build-tools;" + r.BuildTools
}

var releases = map[string]Release{
	"10": {Version: "10", APILevel: 29, BuildTools: "29.0.3"},
	"11": {Version: "11", APILevel: 30, BuildTools: "30.0.3"},
	"12": {Version: "12", APILevel: 31, BuildTools: "31.0.0"},
	"13": {Version: "13", APILevel: 33, BuildTools: "33.0.2"},
}

// SupportedVersions returns the supported Android versions, oldest first.
// Ordering follows the build-tools version so it never depends on how the
// marketing versions happen to sort as strings.
func SupportedVersions() []string {
	out := make([]string, 0, len(releases))
	for v := range releases {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return semver.Compare(canonical(releases[out[i]].BuildTools), canonical(releases[out[j]].BuildTools)) < 0
	})
	return out
}

// LatestVersion returns the newest supported Android version.
func LatestVersion() string {
	versions := SupportedVersions()
	return versions[len(versions)-1]
}

// IsLatest reports whether version is the newest supported version.
func IsLatest(version string) bool {
	return version == LatestVersion()
}

// LookupRelease validates version and returns its release data.
func LookupRelease(version string) (Release, error) {
	r, ok := releases[version]
	if !ok {
		return Release{}, &UnsupportedVersionError{Value: version, Supported: SupportedVersions()}
	}
	return r, nil
}

// ValidateVersion returns an *UnsupportedVersionError if version is not supported.
func ValidateVersion(version string) error {
	_, err := LookupRelease(version)
	return err
}

// canonical turns "33.0.2" into "v33.0.2" for x/mod/semver.
func canonical(v string) string {
	if v == "" {
		return ""
	}
	if v[0] != 'v' {
		v = "v" + v
	}
	return semver.Canonical(v)
}
