package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Env is the process environment seen by toolchain discovery. Tests supply
// their own lookups instead of mutating the real environment.
type Env struct {
	Getenv   func(string) string
	LookPath func(string) (string, error)
	GOOS     string
}

// OSEnv returns an Env backed by the running process.
func OSEnv() Env {
	return Env{
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
		GOOS:     runtime.GOOS,
	}
}

func (e Env) getenv(key string) string {
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(key)
}

func (e Env) lookPath(name string) (string, error) {
	if e.LookPath == nil {
		return "", exec.ErrNotFound
	}
	return e.LookPath(name)
}

func (e Env) windows() bool {
	return e.GOOS == "windows"
}

// Toolchain holds explicitly configured tool locations. Empty fields are
// discovered from the environment.
type Toolchain struct {
	Gradle  string `yaml:"gradle,omitempty"`
	SDKRoot string `yaml:"sdk_root,omitempty"`
}

const gradleHint = `Install Gradle from https://gradle.org/ and either put it on PATH,
set GRADLE_HOME, install it under <HOMEDRIVE>/gradle, or pass --gradle <path>.`

const sdkmanagerHint = `Install the Android command-line tools and set ANDROID_SDK_ROOT
(or ANDROID_HOME), or pass --sdk-root <dir>.`

// LocateGradle returns the Gradle binary to use. Candidates in order: the
// explicit path, $GRADLE_HOME/bin, <HOMEDRIVE>/gradle/bin, then PATH.
func (t Toolchain) LocateGradle(env Env) (string, error) {
	name := "gradle"
	if env.windows() {
		name = "gradle.bat"
	}

	if t.Gradle != "" {
		if isFile(t.Gradle) {
			return t.Gradle, nil
		}
		return "", &PrerequisiteError{Tool: "gradle", Tried: []string{t.Gradle}, Hint: gradleHint}
	}

	var tried []string
	var candidates []string
	if home := env.getenv("GRADLE_HOME"); home != "" {
		candidates = append(candidates, filepath.Join(home, "bin", name))
	}
	if drive := env.getenv("HOMEDRIVE"); drive != "" {
		candidates = append(candidates, filepath.Join(drive+string(filepath.Separator), "gradle", "bin", name))
	}
	for _, c := range candidates {
		if isFile(c) {
			return c, nil
		}
		tried = append(tried, c)
	}

	if path, err := env.lookPath("gradle"); err == nil {
		return path, nil
	}
	tried = append(tried, "gradle (PATH)")

	return "", &PrerequisiteError{Tool: "gradle", Tried: tried, Hint: gradleHint}
}

// ResolveSDKRoot returns the Android SDK root, or "" if none is configured.
// Priority: explicit > ANDROID_SDK_ROOT > ANDROID_HOME.
func (t Toolchain) ResolveSDKRoot(env Env) string {
	if t.SDKRoot != "" {
		return t.SDKRoot
	}
	if root := env.getenv("ANDROID_SDK_ROOT"); root != "" {
		return root
	}
	return env.getenv("ANDROID_HOME")
}

// LocateSDKManager returns the sdkmanager binary.
func (t Toolchain) LocateSDKManager(env Env) (string, error) {
	name := "sdkmanager"
	if env.windows() {
		name = "sdkmanager.bat"
	}

	var tried []string
	if root := t.ResolveSDKRoot(env); root != "" {
		for _, c := range []string{
			filepath.Join(root, "cmdline-tools", "latest", "bin", name),
			filepath.Join(root, "tools", "bin", name),
		} {
			if isFile(c) {
				return c, nil
			}
			tried = append(tried, c)
		}
	}

	if path, err := env.lookPath("sdkmanager"); err == nil {
		return path, nil
	}
	tried = append(tried, "sdkmanager (PATH)")

	return "", &PrerequisiteError{Tool: "sdkmanager", Tried: tried, Hint: sdkmanagerHint}
}

// LocateADB returns the adb executable. It falls back to plain "adb" and
// lets the process lookup report a missing binary.
func (t Toolchain) LocateADB(env Env) string {
	name := "adb"
	if env.windows() {
		name = "adb.exe"
	}
	if root := t.ResolveSDKRoot(env); root != "" {
		return filepath.Join(root, "platform-tools", name)
	}
	return "adb"
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
