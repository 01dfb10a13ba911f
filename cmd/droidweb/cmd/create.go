package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
)

var createFlags struct {
	android string
	webview bool
}

var createCmd = &cobra.Command{
	Use:     "create-project [name] [dir]",
	Aliases: []string{"create"},
	Short:   "Create a new Android project",
	Long: `Create a new Android project with Gradle and the droidweb app module.

The project is created in [dir], or in <project>/<name> when no directory is
given. The name defaults to MyAndroidApp. Gradle must be installed: it is
looked up via --gradle, $GRADLE_HOME, <HOMEDRIVE>/gradle and PATH.

With --webview the assets folder, index.html and the WebView patch are
added right away.`,
	Example: `  droidweb create-project
  droidweb create-project Shell ./shell --android 12
  droidweb create Shell --webview`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createFlags.android, "android", "", fmt.Sprintf("Android version to target (%s)", joinVersions()))
	createCmd.Flags().BoolVar(&createFlags.webview, "webview", false, "Also add index.html and the WebView to MainActivity")
	RegisterCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := config.DefaultProjectName
	if len(args) > 0 {
		name = args[0]
	}
	if err := config.ValidateProjectName(name); err != nil {
		return fmt.Errorf("invalid project name %q: %w", name, err)
	}

	dir := filepath.Join(globals.project, name)
	if len(args) > 1 {
		dir = args[1]
		if err := config.ValidateDirectory(dir); err != nil {
			return err
		}
	}

	p, err := resolveProject(dir, config.Overrides{Name: name, AndroidVersion: createFlags.android})
	if err != nil {
		return err
	}

	m := newManager(cmd, p)
	if err := m.CreateProject(cmd.Context()); err != nil {
		return err
	}

	if createFlags.webview {
		if err := m.CreateIndexHtml(); err != nil {
			return err
		}
		if _, err := m.AddWebView(); err != nil {
			return err
		}
	}

	printerFor(cmd).Markdown(nextSteps(dir))
	return nil
}

func nextSteps(dir string) string {
	return fmt.Sprintf(`
## Next steps

    cd %s
    droidweb install-deps
    droidweb create-index-html
    droidweb add-webview
    droidweb run-app --launch
`, dir)
}
