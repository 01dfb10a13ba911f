package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/scaffold"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/templates"
)

// IndexFile is the page loaded by the WebView.
const IndexFile = "index.html"

// EnsureAssetsFolder creates app/src/main/assets if needed and reports
// whether it did.
func (m *Manager) EnsureAssetsFolder() (bool, error) {
	dir := m.project.AssetsDir()
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create assets folder: %w", err)
	}
	m.out.Step("📂", "Created assets folder.")
	return true, nil
}

// CreateIndexHtml writes the bundled index.html into the assets folder,
// replacing any existing file.
func (m *Manager) CreateIndexHtml() error {
	if _, err := m.EnsureAssetsFolder(); err != nil {
		return err
	}

	content, err := templates.ReadFile("assets/" + IndexFile)
	if err != nil {
		return fmt.Errorf("failed to read bundled %s: %w", IndexFile, err)
	}

	dest := filepath.Join(m.project.AssetsDir(), IndexFile)
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", IndexFile, err)
	}
	m.out.Success("Created index.html in assets folder.")
	return nil
}

// GenerateIcons decodes the PNG at src and writes the launcher icon for
// every mipmap density.
func (m *Manager) GenerateIcons(src string) ([]string, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	defer f.Close()

	img, err := scaffold.DecodeIcon(f)
	if err != nil {
		return nil, err
	}

	paths, err := scaffold.WriteIcons(scaffold.ResDir(m.project.Path), img)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		rel, err := filepath.Rel(m.project.Path, p)
		if err != nil {
			rel = p
		}
		m.out.Info("Wrote %s", filepath.ToSlash(rel))
	}
	m.out.Success("Launcher icons updated!")
	return paths, nil
}
