// Package templates provides the embedded project templates and the
// {{id}} placeholder substitution used to render them.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"strconv"
	"strings"
)

//go:embed gradle/* app/* assets/*
var FS embed.FS

// ErrInvalidPlaceholder is returned for an identifier that cannot form a
// {{id}} token.
var ErrInvalidPlaceholder = errors.New("templates: invalid placeholder identifier")

// Placeholder identifiers used by the bundled templates.
const (
	ApplicationName   = "applicationName"
	PackageName       = "packageName"
	CompileSDK        = "compileSdk"
	BuildToolsVersion = "buildToolsVersion"
	JavaVersion       = "javaVersion"
)

// Substitution replaces every {{ID}} token with Value.
type Substitution struct {
	ID    string
	Value string
}

// Data holds the values the bundled templates are rendered with.
type Data struct {
	AppName     string // e.g. "MyAndroidApp"
	PackageName string // e.g. "com.example.myandroidapp"
	APILevel    int    // e.g. 33
	BuildTools  string // e.g. "33.0.2"
	JavaVersion int    // e.g. 21
}

// Substitutions expands d into the placeholder set.
func (d Data) Substitutions() []Substitution {
	return []Substitution{
		{ApplicationName, d.AppName},
		{PackageName, d.PackageName},
		{CompileSDK, strconv.Itoa(d.APILevel)},
		{BuildToolsVersion, d.BuildTools},
		{JavaVersion, strconv.Itoa(d.JavaVersion)},
	}
}

// PackagePath returns the package as a directory path, e.g. com/example/app.
func (d Data) PackagePath() string {
	return strings.ReplaceAll(d.PackageName, ".", "/")
}

var validPlaceholder = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidPlaceholder reports whether id can be used inside a {{id}} token.
func ValidPlaceholder(id string) bool {
	return validPlaceholder.MatchString(id)
}

// Token returns the literal {{id}} token.
func Token(id string) string {
	return "{{" + id + "}}"
}

// Substitute replaces every {{id}} in content with value.
func Substitute(content, id, value string) (string, error) {
	if !ValidPlaceholder(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlaceholder, id)
	}
	return strings.ReplaceAll(content, Token(id), value), nil
}

// Apply runs each substitution over content in order.
func Apply(content string, subs ...Substitution) (string, error) {
	var err error
	for _, s := range subs {
		if content, err = Substitute(content, s.ID, s.Value); err != nil {
			return "", err
		}
	}
	return content, nil
}

// EditStringInFile reads file from fsys and returns its content with every
// {{id}} replaced by value. The file itself is not modified; persisting
// the result is up to the caller. An invalid id is logged and reported as
// ErrInvalidPlaceholder with an empty result.
func EditStringInFile(fsys fs.FS, file, id, value string) (string, error) {
	if !ValidPlaceholder(id) {
		slog.Error("invalid placeholder identifier", "file", file, "id", id)
		return "", fmt.Errorf("%w: %q", ErrInvalidPlaceholder, id)
	}

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", file, err)
	}

	return Substitute(string(content), id, value)
}

// Render reads file from the embedded templates and applies subs. The
// first substitution is made while reading; the rest run in order over the
// result. Any {{...}} token left afterwards is an error.
func Render(file string, subs ...Substitution) (string, error) {
	var out string
	if len(subs) == 0 {
		content, err := FS.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read template %s: %w", file, err)
		}
		out = string(content)
	} else {
		var err error
		if out, err = EditStringInFile(FS, file, subs[0].ID, subs[0].Value); err != nil {
			return "", err
		}
		if out, err = Apply(out, subs[1:]...); err != nil {
			return "", fmt.Errorf("failed to process template %s: %w", file, err)
		}
	}

	if tok := Leftover(out); tok != "" {
		return "", fmt.Errorf("template %s: no value for %s", file, tok)
	}
	return out, nil
}

// ReadFile reads a file from the embedded filesystem.
func ReadFile(file string) ([]byte, error) {
	return FS.ReadFile(file)
}

// ListFiles returns all files in the embedded filesystem under dir.
func ListFiles(dir string) ([]string, error) {
	var files []string

	err := fs.WalkDir(FS, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})

	return files, err
}

// DestName strips the .tmpl suffix from a template path's base name.
func DestName(file string) string {
	return strings.TrimSuffix(path.Base(file), ".tmpl")
}

// Leftover returns the first unreplaced {{...}} token in content, or "".
func Leftover(content string) string {
	start := strings.Index(content, "{{")
	if start == -1 {
		return ""
	}
	end := strings.Index(content[start:], "}}")
	if end == -1 {
		return ""
	}
	return content[start : start+end+2]
}
