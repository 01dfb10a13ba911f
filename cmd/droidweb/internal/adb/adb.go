// Package adb wraps the Android Debug Bridge commands used for device
// listing and log streaming.
package adb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/runner"
)

// Device is one line of `adb devices -l`.
type Device struct {
	Serial string
	State  string
	Model  string
}

// Ready reports whether the device accepts commands.
func (d Device) Ready() bool {
	return d.State == "device"
}

// LogTags are the logcat filters used when the app PID is unavailable.
var LogTags = []string{
	"chromium:*",
	"WebViewConsole:*",
	"AndroidRuntime:E",
	"*:S",
}

// Client runs adb. Capture runs commands whose output is parsed, Stream
// runs commands whose output goes to the terminal.
type Client struct {
	ADB     string
	Capture runner.Executor
	Stream  runner.Executor
}

// Locate returns a Client for the adb found under the configured SDK root
// (ANDROID_SDK_ROOT, then ANDROID_HOME), or on PATH.
func Locate(t config.Toolchain, env config.Env, stream runner.Executor) *Client {
	return &Client{
		ADB:     t.LocateADB(env),
		Capture: &runner.Async{},
		Stream:  stream,
	}
}

func (c *Client) output(ctx context.Context, args ...string) (string, error) {
	res, err := c.Capture.Execute(ctx, runner.Command{Name: c.ADB, Args: args})
	if err != nil {
		return "", err
	}
	return string(res.Stdout), nil
}

// Devices lists attached devices and emulators.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	out, err := c.output(ctx, "devices", "-l")
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return ParseDevices(out), nil
}

// ParseDevices parses `adb devices -l` output. The header line and daemon
// startup messages are skipped.
func ParseDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		d := Device{Serial: parts[0], State: parts[1]}
		for _, p := range parts[2:] {
			if model, ok := strings.CutPrefix(p, "model:"); ok {
				d.Model = model
				break
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// PID returns the process id of appID on the device, or "" if it is not
// running or cannot be determined.
func (c *Client) PID(ctx context.Context, appID string) string {
	if out, err := c.output(ctx, "shell", "pidof", "-s", appID); err == nil {
		if pid := strings.TrimSpace(out); pid != "" {
			return pid
		}
	}

	// Some devices lack -s and may print several pids.
	if out, err := c.output(ctx, "shell", "pidof", appID); err == nil {
		if fields := strings.Fields(out); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// LogcatArgs returns the logcat arguments for pid, or the tag filter when
// pid is empty.
func LogcatArgs(pid string) []string {
	args := []string{"logcat", "-v", "time"}
	if pid != "" {
		return append(args, "--pid", pid)
	}
	return append(args, LogTags...)
}

// LogFilter clears the device log and returns the logcat arguments for
// appID. It filters by PID when the app is running and the device supports
// --pid, and falls back to WebView related tags otherwise; fallback reports
// which one was chosen.
func (c *Client) LogFilter(ctx context.Context, appID string) (args []string, fallback bool) {
	// Clearing is best effort.
	_, _ = c.Capture.Execute(ctx, runner.Command{Name: c.ADB, Args: []string{"logcat", "-c"}})

	pid := c.PID(ctx, appID)
	if pid != "" {
		if _, err := c.output(ctx, "logcat", "-d", "--pid", pid); err != nil {
			pid = ""
		}
	}
	return LogcatArgs(pid), pid == ""
}

// Logcat streams logcat with args until ctx is cancelled. Cancellation
// ends the stream without error.
func (c *Client) Logcat(ctx context.Context, args []string) error {
	_, err := c.Stream.Execute(ctx, runner.Command{Name: c.ADB, Args: args})
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("logcat failed: %w", err)
	}
	return nil
}
