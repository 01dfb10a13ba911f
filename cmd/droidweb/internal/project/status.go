package project

import (
	"os"
	"path/filepath"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/scaffold"
)

// Status is a snapshot of the project on disk.
type Status struct {
	Name           string
	Path           string
	AppID          string
	AndroidVersion string
	APILevel       int
	Initialized    bool // gradle wrapper present
	HasAssets      bool
	HasIndex       bool
	HasIcons       bool
	MainActivity   string // empty when not found
	WebViewPatched bool
}

// Status inspects the project directory.
func (m *Manager) Status() Status {
	p := m.project
	s := Status{
		Name:           p.Name,
		Path:           p.Path,
		AppID:          p.AppID,
		AndroidVersion: p.AndroidVersion,
		Initialized:    scaffold.HasWrapper(p.Path),
		HasIcons:       scaffold.HasIcons(scaffold.ResDir(p.Path)),
	}
	if r, err := p.Release(); err == nil {
		s.APILevel = r.APILevel
	}
	if info, err := os.Stat(p.AssetsDir()); err == nil && info.IsDir() {
		s.HasAssets = true
	}
	if _, err := os.Stat(filepath.Join(p.AssetsDir(), IndexFile)); err == nil {
		s.HasIndex = true
	}
	if path, err := m.FindMainActivity(); err == nil {
		s.MainActivity = path
		s.WebViewPatched = IsWebViewPatched(path)
	}
	return s
}
