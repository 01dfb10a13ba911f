package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "myapp", false},
		{"default", DefaultProjectName, false},
		{"with hyphen", "my-app", false},
		{"with underscore", "my_app", false},
		{"with numbers", "app2", false},

		{"empty", "", true},
		{"starts with dot", ".hidden", true},
		{"starts with hyphen", "-bad", true},
		{"starts with number", "1app", true},
		{"has spaces", "my app", true},
		{"has slash", "my/app", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidProject) {
				t.Errorf("expected ErrInvalidProject, got %v", err)
			}
		})
	}
}

func TestValidateDirectory(t *testing.T) {
	type tc struct {
		name    string
		dir     string
		wantErr bool
	}
	tests := []tc{
		{"simple name", "myapp", false},
		{"relative path", "projects/myapp", false},
		{"empty", "", true},
		{"root slash", "/", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
	}
	if runtime.GOOS != "windows" {
		tests = append(tests,
			tc{"absolute nested", "/home/user/projects/myapp", false},
			tc{"root-level /etc", "/etc", true},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDirectory(tt.dir)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDirectory(%q) error = %v, wantErr %v", tt.dir, err, tt.wantErr)
			}
		})
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "WebShell")

	p, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.Name != "WebShell" {
		t.Errorf("Name = %q, want WebShell", p.Name)
	}
	if p.AppID != "com.example.webshell" {
		t.Errorf("AppID = %q, want com.example.webshell", p.AppID)
	}
	if p.AndroidVersion != "13" {
		t.Errorf("AndroidVersion = %q, want 13", p.AndroidVersion)
	}
	if p.JavaVersion != DefaultJavaVersion {
		t.Errorf("JavaVersion = %d, want %d", p.JavaVersion, DefaultJavaVersion)
	}
	if want := filepath.Join(dir, "app", "src", "main", "assets"); p.AssetsDir() != want {
		t.Errorf("AssetsDir = %q, want %q", p.AssetsDir(), want)
	}
}

func TestResolveFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `app:
  name: shell
  id: org.acme.shell
android:
  version: "11"
toolchain:
  gradle: /opt/gradle/bin/gradle
  java_version: 17
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.Name != "shell" || p.AppID != "org.acme.shell" || p.AndroidVersion != "11" {
		t.Errorf("unexpected project from file: %+v", p)
	}
	if p.Toolchain.Gradle != "/opt/gradle/bin/gradle" || p.JavaVersion != 17 {
		t.Errorf("unexpected toolchain from file: %+v", p)
	}

	p, err = Resolve(dir, Overrides{AndroidVersion: "12", Gradle: "/usr/bin/gradle"})
	if err != nil {
		t.Fatalf("Resolve with overrides failed: %v", err)
	}
	if p.AndroidVersion != "12" {
		t.Errorf("override version = %q, want 12", p.AndroidVersion)
	}
	if p.Toolchain.Gradle != "/usr/bin/gradle" {
		t.Errorf("override gradle = %q", p.Toolchain.Gradle)
	}
}

func TestResolveRejectsUnsupportedVersion(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "app"), Overrides{AndroidVersion: "9"})
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestResolveRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("app: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(dir, Overrides{Name: "app"}); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "roundtrip")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p, err := Resolve(dir, Overrides{AndroidVersion: "10", SDKRoot: "/sdk"})
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveFile(dir, p.ToFile()); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `version: "10"`) {
		t.Errorf("expected quoted version in file, got:\n%s", data)
	}

	again, err := Resolve(dir, Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	if again.AndroidVersion != "10" || again.Toolchain.SDKRoot != "/sdk" {
		t.Errorf("reloaded project = %+v", again)
	}
}

func TestDefaultAppID(t *testing.T) {
	tests := map[string]string{
		"MyAndroidApp": "com.example.myandroidapp",
		"my-app":       "com.example.myapp",
		"2fast":        "com.example.a2fast",
		"___":          "com.example.app",
	}
	for in, want := range tests {
		if got := DefaultAppID(in); got != want {
			t.Errorf("DefaultAppID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolveDirectoryNameFallback(t *testing.T) {
	for _, tt := range []struct {
		base  string
		appID string
	}{
		{"My Application", "com.example.myapplication"},
		{"my.app", "com.example.myapp"},
		{"2048game", "com.example.a2048game"},
	} {
		p, err := Resolve(filepath.Join(t.TempDir(), tt.base), Overrides{})
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.base, err)
			continue
		}
		if p.Name != DefaultProjectName || p.NameFallback != tt.base {
			t.Errorf("Resolve(%q): Name = %q, NameFallback = %q", tt.base, p.Name, p.NameFallback)
		}
		if p.AppID != tt.appID {
			t.Errorf("Resolve(%q): AppID = %q, want %q", tt.base, p.AppID, tt.appID)
		}
	}
}

func TestResolveRejectsExplicitName(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "ok"), Overrides{Name: "My Application"}); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("override: expected ErrInvalidProject, got %v", err)
	}

	dir := t.TempDir()
	if err := SaveFile(dir, &File{App: AppConfig{Name: "2048game"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(dir, Overrides{}); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("droidweb.yaml: expected ErrInvalidProject, got %v", err)
	}
}
