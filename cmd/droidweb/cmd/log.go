package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/runner"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Stream application logs",
	Long: `Stream logcat output of the running app (Ctrl+C to stop).

Logs are filtered by the app's process id. When the app is not running or
the device does not support --pid, WebView related tags (chromium,
WebViewConsole) and crashes are shown instead.`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	RegisterCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	m, err := loadManager(cmd)
	if err != nil {
		return err
	}
	p := m.Project()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := printerFor(cmd)
	out.Step("📜", "Streaming Android logs for %s (Ctrl+C to stop)...", p.AppID)

	// Logs always stream, even with --async.
	stream := &runner.Stream{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
	client := newADB(p.Toolchain, stream)

	filter, fallback := client.LogFilter(ctx, p.AppID)
	if fallback {
		out.Warn("Note: using tag-based filtering (includes crash logs)")
	}
	if err := client.Logcat(ctx, filter); err != nil {
		return err
	}
	if ctx.Err() != nil {
		out.Info("Log streaming stopped.")
	}
	return nil
}
