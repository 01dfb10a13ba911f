package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		s := m.Status()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Project:          %s\n", s.Name)
		fmt.Fprintf(out, "Path:             %s\n", s.Path)
		fmt.Fprintf(out, "Application ID:   %s\n", s.AppID)
		fmt.Fprintf(out, "Android version:  %s (API %d)\n", s.AndroidVersion, s.APILevel)
		fmt.Fprintf(out, "Gradle wrapper:   %s\n", yesNo(s.Initialized))
		fmt.Fprintf(out, "Assets folder:    %s\n", yesNo(s.HasAssets))
		fmt.Fprintf(out, "index.html:       %s\n", yesNo(s.HasIndex))
		fmt.Fprintf(out, "Launcher icons:   %s\n", yesNo(s.HasIcons))

		if s.MainActivity == "" {
			fmt.Fprintln(out, "MainActivity:     not found")
			return nil
		}
		rel, err := filepath.Rel(s.Path, s.MainActivity)
		if err != nil {
			rel = s.MainActivity
		}
		fmt.Fprintf(out, "MainActivity:     %s\n", filepath.ToSlash(rel))
		fmt.Fprintf(out, "WebView:          %s\n", yesNo(s.WebViewPatched))
		return nil
	},
}

func init() {
	RegisterCommand(statusCmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
