package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrMainActivityNotFound is returned when no MainActivity.java exists under
// app/src/main/java.
var ErrMainActivityNotFound = errors.New("MainActivity.java not found")

// MainActivityFile is the activity source patched by AddWebView.
const MainActivityFile = "MainActivity.java"

// Anchors and inserted code for the WebView patch.
const (
	webViewGuard   = "new WebView(this)"
	contentAnchor  = "setContentView(R.layout.activity_main);"
	bundleImport   = "import android.os.Bundle;"
	webViewImport  = "import android.webkit.WebView;"
	clientImport   = "import android.webkit.WebViewClient;"
	indexAssetURL  = "file:///android_asset/index.html"
	javaIndentStep = "    "
)

// PatchOutcome is the result of patching MainActivity.java.
type PatchOutcome int

const (
	Patched PatchOutcome = iota
	AlreadyPatched
	PatternNotFound
)

func (o PatchOutcome) String() string {
	switch o {
	case Patched:
		return "patched"
	case AlreadyPatched:
		return "already patched"
	case PatternNotFound:
		return "pattern not found"
	}
	return fmt.Sprintf("PatchOutcome(%d)", int(o))
}

// PatchResult reports what AddWebView did to the file at Path. Missing
// lists the anchor lines that could not be found when Outcome is
// PatternNotFound.
type PatchResult struct {
	Outcome PatchOutcome
	Path    string
	Missing []string
}

// FindMainActivity walks app/src/main/java depth-first in lexical order and
// returns the first file named MainActivity.java.
func (m *Manager) FindMainActivity() (string, error) {
	root := m.project.JavaSourceDir()
	if _, err := os.Stat(root); err != nil {
		return "", fmt.Errorf("%w: %s does not exist", ErrMainActivityNotFound, root)
	}

	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == MainActivityFile {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to search %s: %w", root, err)
	}
	if found == "" {
		return "", fmt.Errorf("%w under %s", ErrMainActivityNotFound, root)
	}
	return found, nil
}

// AddWebView makes MainActivity load assets/index.html in a WebView. The
// file is only written when every anchor it needs is present.
func (m *Manager) AddWebView() (*PatchResult, error) {
	path, err := m.FindMainActivity()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched, outcome, missing := PatchMainActivity(string(data))
	res := &PatchResult{Outcome: outcome, Path: path, Missing: missing}

	switch outcome {
	case AlreadyPatched:
		m.out.Success("WebView already added!")
	case PatternNotFound:
		m.out.Warn("Could not patch %s, missing: %s", filepath.Base(path), strings.Join(missing, ", "))
	case Patched:
		if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		m.out.Success("WebView added successfully!")
	}
	m.log.Debug("webview patch", "path", path, "outcome", outcome.String())
	return res, nil
}

// PatchMainActivity applies the WebView patch to src. It returns the new
// source, the outcome and, for PatternNotFound, the missing anchors. src is
// returned unchanged unless the outcome is Patched.
func PatchMainActivity(src string) (string, PatchOutcome, []string) {
	if strings.Contains(src, webViewGuard) {
		return src, AlreadyPatched, nil
	}

	needImports := !strings.Contains(src, webViewImport)

	var missing []string
	if !strings.Contains(src, contentAnchor) {
		missing = append(missing, contentAnchor)
	}
	if needImports && !strings.Contains(src, bundleImport) {
		missing = append(missing, bundleImport)
	}
	if len(missing) > 0 {
		return src, PatternNotFound, missing
	}

	nl := "\n"
	if strings.Contains(src, "\r\n") {
		nl = "\r\n"
	}

	indent := lineIndent(src, contentAnchor)
	block := strings.Join([]string{
		"WebView webView = new WebView(this);",
		"webView.getSettings().setJavaScriptEnabled(true);",
		"webView.setWebViewClient(new WebViewClient());",
		fmt.Sprintf("webView.loadUrl(%q);", indexAssetURL),
		"setContentView(webView);",
	}, nl+indent)
	out := strings.Replace(src, contentAnchor, block, 1)

	if needImports {
		imports := bundleImport + nl + webViewImport
		if !strings.Contains(out, clientImport) {
			imports += nl + clientImport
		}
		out = strings.Replace(out, bundleImport, imports, 1)
	}

	return out, Patched, nil
}

// lineIndent returns the leading whitespace of the line containing anchor.
func lineIndent(src, anchor string) string {
	i := strings.Index(src, anchor)
	if i < 0 {
		return javaIndentStep
	}
	start := strings.LastIndexByte(src[:i], '\n') + 1
	prefix := src[start:i]
	if strings.TrimSpace(prefix) != "" {
		return ""
	}
	return prefix
}

// IsWebViewPatched reports whether the activity at path already creates a
// WebView.
func IsWebViewPatched(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), webViewGuard)
}
