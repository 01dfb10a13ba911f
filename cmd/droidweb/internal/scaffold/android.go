// Package scaffold renders and writes the Android project files.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/templates"
)

// File is a rendered project file. Paths are relative to the project root.
// Keep marks user-owned files that must not be overwritten once present.
type File struct {
	Path    string
	Content string
	Keep    bool
}

// placement is where a bundled template is written, relative to the
// project root.
type placement struct {
	dir  string
	keep bool
}

func placements(data templates.Data) map[string]placement {
	srcDir := filepath.Join("app", "src", "main")
	resDir := filepath.Join(srcDir, "res")
	return map[string]placement{
		"gradle/settings.gradle.tmpl":  {"", false},
		"gradle/build.gradle.tmpl":     {"", false},
		"gradle/gradle.properties":     {"", false},
		"app/build.gradle.tmpl":        {"app", false},
		"app/AndroidManifest.xml.tmpl": {srcDir, false},
		"app/strings.xml.tmpl":         {filepath.Join(resDir, "values"), false},
		"app/activity_main.xml":        {filepath.Join(resDir, "layout"), true},
		"app/MainActivity.java.tmpl":   {filepath.Join(srcDir, "java", filepath.FromSlash(data.PackagePath())), true},
	}
}

// Render renders every bundled gradle and app template with data. Nothing
// is written.
func Render(data templates.Data) ([]File, error) {
	places := placements(data)
	subs := data.Substitutions()

	var files []File
	for _, dir := range []string{"gradle", "app"} {
		names, err := templates.ListFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s templates: %w", dir, err)
		}
		for _, name := range names {
			place, ok := places[name]
			if !ok {
				return nil, fmt.Errorf("no destination for template %s", name)
			}
			content, err := templates.Render(name, subs...)
			if err != nil {
				return nil, err
			}
			files = append(files, File{
				Path:    filepath.Join(place.dir, templates.DestName(name)),
				Content: content,
				Keep:    place.keep,
			})
		}
	}

	return files, nil
}

// Write writes files under root, creating directories as needed. It
// returns the paths that were written; kept files that already exist are
// skipped.
func Write(root string, files []File) ([]string, error) {
	var written []string
	for _, f := range files {
		dest := filepath.Join(root, f.Path)
		if f.Keep {
			if _, err := os.Stat(dest); err == nil {
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return written, fmt.Errorf("failed to create %s: %w", filepath.Dir(f.Path), err)
		}
		if err := os.WriteFile(dest, []byte(f.Content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}

// HasWrapper reports whether root already carries a Gradle wrapper, i.e.
// gradle init has run there before.
func HasWrapper(root string) bool {
	for _, name := range []string{"gradlew", "gradlew.bat"} {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return true
		}
	}
	return false
}

// ResDir returns app/src/main/res under root.
func ResDir(root string) string {
	return filepath.Join(root, "app", "src", "main", "res")
}
