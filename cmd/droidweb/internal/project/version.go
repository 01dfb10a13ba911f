package project

import (
	"context"
	"os"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/runner"
)

// SelectAndroidVersion records v as the project's Android version and
// persists it to droidweb.yaml when the project directory exists.
func (m *Manager) SelectAndroidVersion(v string) error {
	if err := config.ValidateVersion(v); err != nil {
		return err
	}
	m.project.AndroidVersion = v

	if info, err := os.Stat(m.project.Path); err != nil || !info.IsDir() {
		m.log.Debug("project directory missing, selection not persisted", "path", m.project.Path)
		return nil
	}
	if err := config.SaveFile(m.project.Path, m.project.ToFile()); err != nil {
		return err
	}
	m.out.Success("Android version set to %s", v)
	return nil
}

// ConfigureForVersion selects v and installs its SDK packages. The newest
// version also refreshes platform-tools. Nothing is recorded when
// sdkmanager cannot be found.
func (m *Manager) ConfigureForVersion(ctx context.Context, v string) error {
	r, err := config.LookupRelease(v)
	if err != nil {
		return err
	}
	sdkmanager, err := m.project.Toolchain.LocateSDKManager(m.env)
	if err != nil {
		return err
	}
	if err := m.SelectAndroidVersion(v); err != nil {
		return err
	}

	args := []string{"--install"}
	if config.IsLatest(v) {
		args = append(args, "platform-tools")
	}
	args = append(args, r.Platform(), r.BuildToolsPackage())

	m.out.Step("🔧", "Configuring for Android %s (API %d)...", v, r.APILevel)
	if err := m.run(ctx, runner.Command{Name: sdkmanager, Args: args}); err != nil {
		return err
	}
	m.out.Success("Configured for Android %s!", v)
	return nil
}
