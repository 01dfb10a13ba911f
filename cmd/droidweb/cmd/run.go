package cmd

import (
	"github.com/spf13/cobra"
)

var runLaunch bool

var runCmd = &cobra.Command{
	Use:     "run-app",
	Aliases: []string{"run"},
	Short:   "Install the debug build on a device or emulator",
	Long: `Install the debug build with gradlew installDebug.

With --launch, MainActivity is started afterwards through adb. The target
device is chosen by the tools; use "droidweb devices" to see what is
connected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		return m.RunApp(cmd.Context(), runLaunch)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runLaunch, "launch", false, "Start MainActivity after installing")
	RegisterCommand(runCmd)
}
