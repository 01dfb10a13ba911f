package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/project"
)

var webviewCmd = &cobra.Command{
	Use:   "add-webview",
	Short: "Make MainActivity show index.html in a WebView",
	Long: `Patch the first MainActivity.java under app/src/main/java so it creates
a WebView loading file:///android_asset/index.html.

Running it again is a no-op. If the activity no longer contains the
expected setContentView call or imports, the file is left untouched and
the command fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		res, err := m.AddWebView()
		if err != nil {
			return err
		}
		if res.Outcome == project.PatternNotFound {
			return fmt.Errorf("%s was not patched: %s", res.Path, res.Outcome)
		}
		return nil
	},
}

func init() {
	RegisterCommand(webviewCmd)
}
