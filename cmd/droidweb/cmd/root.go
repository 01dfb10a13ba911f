// Package cmd implements the droidweb CLI commands.
//
// Each subcommand registers itself with the root command from an init
// function in its own file.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/adb"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/console"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/project"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/runner"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Global flags.
var globals struct {
	project string
	gradle  string
	sdkRoot string
	async   bool
	verbose bool
}

// Collaborators replaced in tests.
var (
	toolEnv     = config.OSEnv
	newExecutor = defaultExecutor
	newCapture  = func() runner.Executor { return &runner.Async{} }
)

var rootCmd = &cobra.Command{
	Use:   "droidweb",
	Short: "droidweb - scaffold Android apps that host a WebView",
	Long: `droidweb creates Gradle based Android projects whose MainActivity
shows a local index.html in a WebView, and drives the Android toolchain
(gradle, sdkmanager, adb) to build and install them.

Use "droidweb <command> --help" for more information about a command.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("droidweb version %s (built %s)\n", Version, BuildTime))

	f := rootCmd.PersistentFlags()
	f.StringVarP(&globals.project, "project", "p", ".", "Project directory")
	f.StringVar(&globals.gradle, "gradle", "", "Path to the gradle binary (default: discovered)")
	f.StringVar(&globals.sdkRoot, "sdk-root", "", "Android SDK root (default: $ANDROID_SDK_ROOT or $ANDROID_HOME)")
	f.BoolVar(&globals.async, "async", false, "Run tools in the background with captured output")
	f.BoolVarP(&globals.verbose, "verbose", "v", false, "Enable debug logging")
}

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with os.Args. Errors are printed here; the caller
// only decides the exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		report(printerFor(rootCmd), err)
	}
	return err
}

// report prints err, preceded by the remediation hint for missing tools.
func report(p *console.Printer, err error) {
	p.Error("%v", err)

	var prereq *config.PrerequisiteError
	if errors.As(err, &prereq) && prereq.Hint != "" {
		p.Hint(prereq.Hint)
	}
	if errors.Is(err, runner.ErrCommandNotFound) {
		p.Hint("Check that the Android toolchain is installed and on PATH.")
	}
}

func printerFor(cmd *cobra.Command) *console.Printer {
	out := cmd.OutOrStdout()
	color := false
	if f, ok := out.(*os.File); ok {
		color = console.IsTerminal(f)
	}
	return &console.Printer{Out: out, Err: cmd.ErrOrStderr(), Color: color}
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	if !globals.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultExecutor(cmd *cobra.Command) runner.Executor {
	if globals.async {
		return &runner.Async{
			OnStart: func(c runner.Command) func() {
				return console.Spin("Running " + c.String())
			},
		}
	}
	return &runner.Stream{Stdin: os.Stdin, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}

// newADB returns an adb client for tc that captures parsed output and
// streams the rest through stream.
func newADB(tc config.Toolchain, stream runner.Executor) *adb.Client {
	c := adb.Locate(tc, toolEnv(), stream)
	c.Capture = newCapture()
	return c
}

// resolveProject resolves the project at dir with the global overrides.
func resolveProject(dir string, o config.Overrides) (*config.Project, error) {
	o.Gradle = globals.gradle
	o.SDKRoot = globals.sdkRoot
	return config.Resolve(dir, o)
}

// newManager builds a Manager for p wired to the command's output.
func newManager(cmd *cobra.Command, p *config.Project, opts ...project.Option) *project.Manager {
	opts = append([]project.Option{
		project.WithEnv(toolEnv()),
		project.WithPrinter(printerFor(cmd)),
		project.WithLogger(loggerFor(cmd)),
	}, opts...)
	return project.New(p, newExecutor(cmd), opts...)
}

// loadManager resolves the project selected by --project and returns its
// Manager.
func loadManager(cmd *cobra.Command) (*project.Manager, error) {
	p, err := resolveProject(globals.project, config.Overrides{})
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if p.NameFallback != "" {
		loggerFor(cmd).Debug("directory name is not a valid project name, using default",
			"dir", p.NameFallback, "name", p.Name)
	}
	return newManager(cmd, p), nil
}
