package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected Android devices and emulators",
	Args:  cobra.NoArgs,
	RunE:  runDevices,
}

func init() {
	RegisterCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	tc := config.Toolchain{SDKRoot: globals.sdkRoot}
	client := newADB(tc, newExecutor(cmd))

	devices, err := client.Devices(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Android devices:")

	ready := 0
	for _, d := range devices {
		switch d.State {
		case "device":
			ready++
			if d.Model != "" {
				fmt.Fprintf(out, "  [%d] %s (%s)\n", ready, d.Model, d.Serial)
			} else {
				fmt.Fprintf(out, "  [%d] %s\n", ready, d.Serial)
			}
		case "unauthorized":
			fmt.Fprintf(out, "  [!] %s (unauthorized - check device for prompt)\n", d.Serial)
		default:
			fmt.Fprintf(out, "  [!] %s (%s)\n", d.Serial, d.State)
		}
	}

	if ready == 0 {
		fmt.Fprintln(out, "  No devices connected")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  To connect a device:")
		fmt.Fprintln(out, "    1. Enable USB debugging on your Android device")
		fmt.Fprintln(out, "    2. Connect via USB")
		fmt.Fprintln(out, "    3. Authorize the connection on your device")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  To start an emulator:")
		fmt.Fprintln(out, "    emulator -avd <avd-name>")
	}
	return nil
}
