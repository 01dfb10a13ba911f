package scaffold

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/templates"
)

var testData = templates.Data{
	AppName:     "Shell",
	PackageName: "com.example.shell",
	APILevel:    33,
	BuildTools:  "33.0.2",
	JavaVersion: 21,
}

func TestRender(t *testing.T) {
	files, err := Render(testData)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	byPath := make(map[string]File)
	for _, f := range files {
		byPath[filepath.ToSlash(f.Path)] = f
	}

	settings, ok := byPath["settings.gradle"]
	if !ok || !strings.Contains(settings.Content, `rootProject.name = "Shell"`) {
		t.Errorf("settings.gradle not rendered with project name: %+v", settings)
	}

	app := byPath["app/build.gradle"]
	for _, want := range []string{"compileSdk 33", `buildToolsVersion "33.0.2"`, `applicationId "com.example.shell"`} {
		if !strings.Contains(app.Content, want) {
			t.Errorf("app/build.gradle missing %q", want)
		}
	}

	activity, ok := byPath["app/src/main/java/com/example/shell/MainActivity.java"]
	if !ok {
		t.Fatal("MainActivity.java not rendered at package path")
	}
	if !activity.Keep {
		t.Error("MainActivity.java must be kept once present")
	}
	if !strings.HasPrefix(activity.Content, "package com.example.shell;") {
		t.Errorf("unexpected MainActivity header: %q", activity.Content[:40])
	}
}

func TestWrite_KeepsUserFiles(t *testing.T) {
	root := t.TempDir()
	files := []File{
		{Path: "build.gradle", Content: "generated"},
		{Path: filepath.Join("src", "Main.java"), Content: "generated", Keep: true},
	}

	written, err := Write(root, files)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 2 {
		t.Fatalf("first write wrote %v", written)
	}

	mainPath := filepath.Join(root, "src", "Main.java")
	if err := os.WriteFile(mainPath, []byte("edited"), 0o644); err != nil {
		t.Fatal(err)
	}

	written, err = Write(root, files)
	if err != nil {
		t.Fatal(err)
	}
	if len(written) != 1 || written[0] != "build.gradle" {
		t.Errorf("second write wrote %v, want only build.gradle", written)
	}
	data, _ := os.ReadFile(mainPath)
	if string(data) != "edited" {
		t.Errorf("kept file overwritten: %q", data)
	}
}

func TestHasWrapper(t *testing.T) {
	root := t.TempDir()
	if HasWrapper(root) {
		t.Error("expected no wrapper in empty dir")
	}
	os.WriteFile(filepath.Join(root, "gradlew"), nil, 0o755)
	if !HasWrapper(root) {
		t.Error("expected wrapper to be detected")
	}
}

func TestWriteIcons(t *testing.T) {
	resDir := t.TempDir()
	if HasIcons(resDir) {
		t.Fatal("expected no icons yet")
	}

	paths, err := WriteIcons(resDir, DefaultIcon())
	if err != nil {
		t.Fatalf("WriteIcons failed: %v", err)
	}
	if len(paths) != len(Densities) {
		t.Fatalf("wrote %d icons, want %d", len(paths), len(Densities))
	}

	for i, d := range Densities {
		f, err := os.Open(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("%s: %v", paths[i], err)
		}
		if cfg.Width != d.Size || cfg.Height != d.Size {
			t.Errorf("%s: %dx%d, want %dx%d", d.Name, cfg.Width, cfg.Height, d.Size, d.Size)
		}
	}
	if !HasIcons(resDir) {
		t.Error("HasIcons should report true after writing")
	}
}

func TestDecodeIcon(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeIcon(&buf); err != nil {
		t.Errorf("DecodeIcon failed: %v", err)
	}
	if _, err := DecodeIcon(strings.NewReader("not a png")); err == nil {
		t.Error("expected error for invalid png")
	}
}
