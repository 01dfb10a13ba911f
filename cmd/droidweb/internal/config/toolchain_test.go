package config

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func fakeEnv(vars map[string]string, onPath map[string]string) Env {
	return Env{
		Getenv: func(k string) string { return vars[k] },
		LookPath: func(name string) (string, error) {
			if p, ok := onPath[name]; ok {
				return p, nil
			}
			return "", exec.ErrNotFound
		},
		GOOS: "linux",
	}
}

func TestSupportedVersions(t *testing.T) {
	got := SupportedVersions()
	want := []string{"10", "11", "12", "13"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SupportedVersions() = %v, want %v", got, want)
	}
	if LatestVersion() != "13" {
		t.Errorf("LatestVersion() = %q, want 13", LatestVersion())
	}
	if !IsLatest("13") || IsLatest("12") {
		t.Error("IsLatest mismatch")
	}
}

func TestLookupRelease(t *testing.T) {
	for _, v := range SupportedVersions() {
		r, err := LookupRelease(v)
		if err != nil {
			t.Errorf("LookupRelease(%q) unexpected error: %v", v, err)
			continue
		}
		if !strings.HasPrefix(r.Platform(), "platforms;android-") {
			t.Errorf("Platform() = %q", r.Platform())
		}
		if !strings.HasPrefix(r.BuildToolsPackage(), "build-tools;") {
			t.Errorf("BuildToolsPackage() = %q", r.BuildToolsPackage())
		}
	}

	for _, bad := range []string{"", "9", "14", "13.0", "latest"} {
		_, err := LookupRelease(bad)
		var uv *UnsupportedVersionError
		if !errors.As(err, &uv) {
			t.Fatalf("LookupRelease(%q) error = %v, want *UnsupportedVersionError", bad, err)
		}
		if uv.Value != bad {
			t.Errorf("error value = %q, want %q", uv.Value, bad)
		}
		msg := err.Error()
		for _, v := range SupportedVersions() {
			if !strings.Contains(msg, v) {
				t.Errorf("error %q does not list %q", msg, v)
			}
		}
	}
}

func TestLocateGradle_Explicit(t *testing.T) {
	dir := t.TempDir()
	gradle := filepath.Join(dir, "gradle")
	touch(t, gradle)

	got, err := Toolchain{Gradle: gradle}.LocateGradle(fakeEnv(nil, nil))
	if err != nil || got != gradle {
		t.Fatalf("LocateGradle = %q, %v; want %q", got, err, gradle)
	}

	_, err = Toolchain{Gradle: filepath.Join(dir, "missing")}.LocateGradle(fakeEnv(nil, map[string]string{"gradle": "/usr/bin/gradle"}))
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Fatalf("expected ErrPrerequisiteMissing for missing explicit path, got %v", err)
	}
}

func TestLocateGradle_Precedence(t *testing.T) {
	home := t.TempDir()
	drive := t.TempDir()
	touch(t, filepath.Join(home, "bin", "gradle"))
	touch(t, filepath.Join(drive, "gradle", "bin", "gradle"))

	env := fakeEnv(map[string]string{"GRADLE_HOME": home, "HOMEDRIVE": drive}, map[string]string{"gradle": "/usr/bin/gradle"})
	got, err := Toolchain{}.LocateGradle(env)
	if err != nil || got != filepath.Join(home, "bin", "gradle") {
		t.Fatalf("expected GRADLE_HOME candidate, got %q, %v", got, err)
	}

	env = fakeEnv(map[string]string{"HOMEDRIVE": drive}, map[string]string{"gradle": "/usr/bin/gradle"})
	got, err = Toolchain{}.LocateGradle(env)
	if err != nil || got != filepath.Join(drive, "gradle", "bin", "gradle") {
		t.Fatalf("expected HOMEDRIVE candidate, got %q, %v", got, err)
	}

	env = fakeEnv(nil, map[string]string{"gradle": "/usr/bin/gradle"})
	got, err = Toolchain{}.LocateGradle(env)
	if err != nil || got != "/usr/bin/gradle" {
		t.Fatalf("expected PATH candidate, got %q, %v", got, err)
	}
}

func TestLocateGradle_NotFound(t *testing.T) {
	env := fakeEnv(map[string]string{"HOMEDRIVE": t.TempDir()}, nil)
	_, err := Toolchain{}.LocateGradle(env)

	var pe *PrerequisiteError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PrerequisiteError, got %v", err)
	}
	if pe.Hint == "" {
		t.Error("expected a remediation hint")
	}
	if len(pe.Tried) != 2 {
		t.Errorf("Tried = %v, want HOMEDRIVE candidate and PATH", pe.Tried)
	}
}

func TestLocateSDKManager(t *testing.T) {
	root := t.TempDir()
	sdkmanager := filepath.Join(root, "cmdline-tools", "latest", "bin", "sdkmanager")
	touch(t, sdkmanager)

	got, err := Toolchain{}.LocateSDKManager(fakeEnv(map[string]string{"ANDROID_HOME": root}, nil))
	if err != nil || got != sdkmanager {
		t.Fatalf("LocateSDKManager = %q, %v; want %q", got, err, sdkmanager)
	}

	_, err = Toolchain{SDKRoot: t.TempDir()}.LocateSDKManager(fakeEnv(nil, nil))
	if !errors.Is(err, ErrPrerequisiteMissing) {
		t.Fatalf("expected ErrPrerequisiteMissing, got %v", err)
	}
}

func TestResolveSDKRootPriority(t *testing.T) {
	env := fakeEnv(map[string]string{"ANDROID_SDK_ROOT": "/a", "ANDROID_HOME": "/b"}, nil)
	if got := (Toolchain{SDKRoot: "/x"}).ResolveSDKRoot(env); got != "/x" {
		t.Errorf("explicit root = %q", got)
	}
	if got := (Toolchain{}).ResolveSDKRoot(env); got != "/a" {
		t.Errorf("ANDROID_SDK_ROOT root = %q", got)
	}
	if got := (Toolchain{}).ResolveSDKRoot(fakeEnv(map[string]string{"ANDROID_HOME": "/b"}, nil)); got != "/b" {
		t.Errorf("ANDROID_HOME root = %q", got)
	}
	if got := (Toolchain{}).LocateADB(fakeEnv(nil, nil)); got != "adb" {
		t.Errorf("LocateADB without sdk = %q", got)
	}
}
