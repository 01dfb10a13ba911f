package cmd

import (
	"github.com/spf13/cobra"
)

var buildRelease bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the Android project",
	Long: `Build the project with the Gradle wrapper (gradlew build).

Falls back to the installed gradle when the project has no wrapper yet.
Use --release to run assembleRelease instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		return m.BuildProject(cmd.Context(), buildRelease)
	},
}

func init() {
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "Build the release variant (assembleRelease)")
	RegisterCommand(buildCmd)
}
