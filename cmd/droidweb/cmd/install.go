package cmd

import (
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:     "install-deps",
	Aliases: []string{"install"},
	Short:   "Install the Android SDK packages for the project",
	Long: `Install the platform and build tools of the project's Android version
with sdkmanager.

sdkmanager is looked up under --sdk-root, $ANDROID_SDK_ROOT or $ANDROID_HOME
(cmdline-tools/latest/bin, then tools/bin) and then on PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		return m.InstallDependencies(cmd.Context())
	},
}

func init() {
	RegisterCommand(installCmd)
}
