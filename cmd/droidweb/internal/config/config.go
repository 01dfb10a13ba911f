// Package config resolves the project configuration from droidweb.yaml,
// command-line overrides and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = "droidweb.yaml"

// DefaultProjectName is used when no name is given on the command line.
const DefaultProjectName = "MyAndroidApp"

// DefaultJavaVersion is the language level pinned by gradle init.
const DefaultJavaVersion = 21

// File represents the optional droidweb.yaml configuration.
type File struct {
	App       AppConfig       `yaml:"app"`
	Android   AndroidConfig   `yaml:"android"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// AndroidConfig contains the target Android version.
type AndroidConfig struct {
	Version string `yaml:"version,omitempty"`
}

// ToolchainConfig pins tool locations and the Java language level.
type ToolchainConfig struct {
	Toolchain   `yaml:",inline"`
	JavaVersion int `yaml:"java_version,omitempty"`
}

// Project is the resolved configuration for one invocation.
type Project struct {
	Name           string
	Path           string
	AppID          string
	AndroidVersion string
	JavaVersion    int
	Toolchain      Toolchain

	// NameFallback is the directory name Name would have been derived from
	// when it was not a valid project name and DefaultProjectName was used
	// instead.
	NameFallback string
}

// Overrides carries values given on the command line. Empty fields defer to
// droidweb.yaml and then to defaults.
type Overrides struct {
	Name           string
	AndroidVersion string
	Gradle         string
	SDKRoot        string
}

// Release returns the SDK release data for the project's Android version.
func (p *Project) Release() (Release, error) {
	return LookupRelease(p.AndroidVersion)
}

// AssetsDir returns app/src/main/assets under the project.
func (p *Project) AssetsDir() string {
	return filepath.Join(p.Path, "app", "src", "main", "assets")
}

// JavaSourceDir returns app/src/main/java under the project.
func (p *Project) JavaSourceDir() string {
	return filepath.Join(p.Path, "app", "src", "main", "java")
}

// LoadFile reads droidweb.yaml from dir if present.
func LoadFile(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &f, nil
}

// SaveFile writes f to droidweb.yaml in dir.
func SaveFile(dir string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", FileName, err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}

// ToFile converts the resolved project back into its file representation.
// A fallback name is not persisted.
func (p *Project) ToFile() *File {
	name := p.Name
	if p.NameFallback != "" {
		name = ""
	}
	return &File{
		App:     AppConfig{Name: name, ID: p.AppID},
		Android: AndroidConfig{Version: p.AndroidVersion},
		Toolchain: ToolchainConfig{
			Toolchain:   p.Toolchain,
			JavaVersion: p.JavaVersion,
		},
	}
}

// Resolve loads droidweb.yaml from dir (if present) and applies overrides and
// defaults. dir does not need to exist yet.
func Resolve(dir string, o Overrides) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	f, err := LoadFile(abs)
	if err != nil {
		return nil, err
	}

	// Explicit names must be valid. A name taken from the directory only
	// labels the project, so an unusable one falls back to the default.
	name, fallback := firstNonEmpty(o.Name, f.App.Name), ""
	if name == "" {
		name = filepath.Base(abs)
		if ValidateProjectName(name) != nil {
			name, fallback = DefaultProjectName, name
		}
	}
	if err := ValidateProjectName(name); err != nil {
		return nil, fmt.Errorf("invalid project name %q: %w", name, err)
	}

	appID := strings.TrimSpace(f.App.ID)
	if appID == "" {
		appID = DefaultAppID(firstNonEmpty(fallback, name))
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	version := firstNonEmpty(o.AndroidVersion, f.Android.Version, LatestVersion())
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}

	java := f.Toolchain.JavaVersion
	if java == 0 {
		java = DefaultJavaVersion
	}

	return &Project{
		Name:           name,
		NameFallback:   fallback,
		Path:           abs,
		AppID:          appID,
		AndroidVersion: version,
		JavaVersion:    java,
		Toolchain: Toolchain{
			Gradle:  firstNonEmpty(o.Gradle, f.Toolchain.Gradle),
			SDKRoot: firstNonEmpty(o.SDKRoot, f.Toolchain.SDKRoot),
		},
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

var validProjectName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateProjectName checks that a project name starts with a letter and
// contains only letters, digits, underscores, and hyphens.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: project name cannot be empty", ErrInvalidProject)
	}
	// Redundant with the regex, but clearer for the common mistakes.
	if strings.HasPrefix(name, ".") {
		return fmt.Errorf("%w: project name cannot start with a dot", ErrInvalidProject)
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("%w: project name cannot start with a hyphen", ErrInvalidProject)
	}
	if !validProjectName.MatchString(name) {
		return fmt.Errorf("%w: project name must start with a letter and contain only letters, numbers, underscores, and hyphens", ErrInvalidProject)
	}
	return nil
}

// ValidateDirectory rejects project locations that would be dangerous to
// create: filesystem roots, the current/parent directory, and root-level
// absolute paths such as /etc or C:\Users.
func ValidateDirectory(dir string) error {
	switch dir {
	case "", "/", ".", "..":
		return fmt.Errorf("%w: directory %q is not a valid project location", ErrInvalidProject, dir)
	}
	if isVolumeRoot(dir) {
		return fmt.Errorf("%w: directory %q is not a valid project location", ErrInvalidProject, dir)
	}
	if filepath.IsAbs(dir) && isVolumeRoot(filepath.Dir(dir)) {
		return fmt.Errorf("%w: refusing to create project at root-level path %q", ErrInvalidProject, dir)
	}
	return nil
}

func isVolumeRoot(dir string) bool {
	return dir == filepath.VolumeName(dir)+string(filepath.Separator)
}

// DefaultAppID derives a Java package name such as com.example.myandroidapp.
func DefaultAppID(name string) string {
	return "com.example." + sanitizeSegment(name)
}

func sanitizeSegment(segment string) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		return "app"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
