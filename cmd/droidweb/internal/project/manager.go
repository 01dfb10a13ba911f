// Package project implements the project lifecycle operations: creation,
// SDK setup, build, install, assets and the WebView patch.
package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/console"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/runner"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/scaffold"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/templates"
)

// Manager runs lifecycle operations against one project directory. Every
// operation reads and writes through to disk; the manager holds no copy of
// the project beyond its configuration.
type Manager struct {
	project      *config.Project
	exec         runner.Executor
	env          config.Env
	out          *console.Printer
	log          *slog.Logger
	buildEnabled bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithEnv sets the environment used for toolchain discovery.
func WithEnv(env config.Env) Option {
	return func(m *Manager) { m.env = env }
}

// WithPrinter sets the status printer.
func WithPrinter(p *console.Printer) Option {
	return func(m *Manager) { m.out = p }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithBuildDisabled turns BuildProject into a no-op.
func WithBuildDisabled() Option {
	return func(m *Manager) { m.buildEnabled = false }
}

// New returns a Manager for p that runs external tools through exec.
func New(p *config.Project, exec runner.Executor, opts ...Option) *Manager {
	m := &Manager{
		project:      p,
		exec:         exec,
		env:          config.OSEnv(),
		out:          console.New(),
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		buildEnabled: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Project returns the project configuration.
func (m *Manager) Project() *config.Project {
	return m.project
}

// run announces and executes one external command in the project dir
// unless c.Dir is set.
func (m *Manager) run(ctx context.Context, c runner.Command) error {
	if c.Dir == "" {
		c.Dir = m.project.Path
	}
	m.out.Exec(c.String())
	m.log.Debug("executing command", "name", c.Name, "args", c.Args, "dir", c.Dir)

	res, err := m.exec.Execute(ctx, c)
	if err != nil {
		m.log.Debug("command failed", "name", c.Name, "error", err)
		return err
	}
	m.log.Debug("command finished", "name", c.Name, "duration", res.Duration)
	return nil
}

func (m *Manager) templateData() (templates.Data, error) {
	r, err := m.project.Release()
	if err != nil {
		return templates.Data{}, err
	}
	return templates.Data{
		AppName:     m.project.Name,
		PackageName: m.project.AppID,
		APILevel:    r.APILevel,
		BuildTools:  r.BuildTools,
		JavaVersion: m.project.JavaVersion,
	}, nil
}

// CreateProject creates the project directory, initialises it with gradle
// init and writes the rendered build files, Android app module, launcher
// icons and droidweb.yaml. A missing Gradle installation is returned as a
// *config.PrerequisiteError before anything is created.
func (m *Manager) CreateProject(ctx context.Context) error {
	p := m.project

	gradle, err := p.Toolchain.LocateGradle(m.env)
	if err != nil {
		return err
	}
	m.log.Debug("using gradle", "path", gradle)

	data, err := m.templateData()
	if err != nil {
		return err
	}
	files, err := scaffold.Render(data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.Path, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	m.out.Step("🚀", "Creating Android project: %s", p.Name)

	if scaffold.HasWrapper(p.Path) {
		m.out.Info("Gradle wrapper present, skipping gradle init")
	} else {
		err := m.run(ctx, runner.Command{
			Name: gradle,
			Args: []string{
				"init",
				"--type", "basic",
				"--project-name", p.Name,
				"--dsl", "groovy",
				"--java-version", fmt.Sprint(p.JavaVersion),
				"--no-split-project",
				"--incubating",
			},
		})
		if err != nil {
			return err
		}
	}

	written, err := scaffold.Write(p.Path, files)
	if err != nil {
		return err
	}
	for _, f := range written {
		m.out.Info("Created %s", filepath.ToSlash(f))
	}

	resDir := scaffold.ResDir(p.Path)
	if !scaffold.HasIcons(resDir) {
		if _, err := scaffold.WriteIcons(resDir, scaffold.DefaultIcon()); err != nil {
			return err
		}
		m.out.Info("Created launcher icons")
	}

	if err := config.SaveFile(p.Path, p.ToFile()); err != nil {
		return err
	}

	m.out.Success("Project created successfully!")
	return nil
}

// InstallDependencies installs the platform and build tools of the
// project's Android version with sdkmanager. Success is reported as soon
// as sdkmanager exits zero.
func (m *Manager) InstallDependencies(ctx context.Context) error {
	r, err := m.project.Release()
	if err != nil {
		return err
	}
	sdkmanager, err := m.project.Toolchain.LocateSDKManager(m.env)
	if err != nil {
		return err
	}

	m.out.Step("📦", "Installing Android SDK dependencies...")
	if err := m.run(ctx, runner.Command{
		Name: sdkmanager,
		Args: []string{"--install", r.Platform(), r.BuildToolsPackage()},
	}); err != nil {
		return err
	}
	m.out.Success("Dependencies installed!")
	return nil
}

// gradleCommand returns the wrapper in the project dir, falling back to the
// configured Gradle installation when no wrapper exists yet.
func (m *Manager) gradleCommand() (string, error) {
	name := "gradlew"
	if m.env.GOOS == "windows" {
		name = "gradlew.bat"
	}
	wrapper := filepath.Join(m.project.Path, name)
	if _, err := os.Stat(wrapper); err == nil {
		return wrapper, nil
	}

	m.out.Info("Note: Gradle wrapper not found, falling back to gradle")
	return m.project.Toolchain.LocateGradle(m.env)
}

// BuildProject runs the Gradle build task (assembleRelease when release
// is set). It does nothing when built WithBuildDisabled.
func (m *Manager) BuildProject(ctx context.Context, release bool) error {
	if !m.buildEnabled {
		m.log.Debug("build disabled, skipping")
		return nil
	}

	gradle, err := m.gradleCommand()
	if err != nil {
		return err
	}

	task := "build"
	if release {
		task = "assembleRelease"
	}

	m.out.Step("⚙️ ", "Building the Android project...")
	if err := m.run(ctx, runner.Command{Name: gradle, Args: []string{task}}); err != nil {
		return err
	}
	m.out.Success("Build completed successfully!")
	return nil
}

// RunApp installs the debug build on the connected device or emulator.
// With launch set, it also starts MainActivity through adb. Device
// selection is left to the tools.
func (m *Manager) RunApp(ctx context.Context, launch bool) error {
	gradle, err := m.gradleCommand()
	if err != nil {
		return err
	}

	m.out.Step("📱", "Running the Android app...")
	if err := m.run(ctx, runner.Command{Name: gradle, Args: []string{"installDebug"}}); err != nil {
		return err
	}

	if launch {
		adb := m.project.Toolchain.LocateADB(m.env)
		activity := fmt.Sprintf("%s/.MainActivity", m.project.AppID)
		if err := m.run(ctx, runner.Command{Name: adb, Args: []string{"shell", "am", "start", "-n", activity}}); err != nil {
			return err
		}
	}

	m.out.Success("App installed and running!")
	return nil
}
