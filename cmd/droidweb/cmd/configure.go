package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/go-drift/droidweb/cmd/droidweb/internal/config"
	"github.com/go-drift/droidweb/cmd/droidweb/internal/console"
)

// errCancelled is returned when the version picker is aborted.
var errCancelled = errors.New("cancelled")

// pickVersion asks for an Android version; replaced in tests.
var pickVersion = promptVersion

var configureCmd = &cobra.Command{
	Use:   "configure [version]",
	Short: "Select an Android version and install its SDK packages",
	Long: fmt.Sprintf(`Select the Android version the project targets, record it in %s
and install its platform and build tools with sdkmanager. Configuring the
newest version also refreshes platform-tools.

Supported versions: %s. Without an argument an interactive picker is shown
when running in a terminal.`, config.FileName, joinVersions()),
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigure,
}

var selectVersionCmd = &cobra.Command{
	Use:   "select-version <version>",
	Short: "Record the Android version without installing anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		return m.SelectAndroidVersion(args[0])
	},
}

func init() {
	RegisterCommand(configureCmd)
	RegisterCommand(selectVersionCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	m, err := loadManager(cmd)
	if err != nil {
		return err
	}

	var version string
	if len(args) > 0 {
		version = args[0]
	} else {
		version, err = pickVersion(m.Project().AndroidVersion)
		if err != nil {
			return err
		}
	}

	return m.ConfigureForVersion(cmd.Context(), version)
}

func promptVersion(current string) (string, error) {
	if !console.IsTerminal(os.Stdin) || !console.IsTerminal(os.Stdout) {
		return "", fmt.Errorf("android version is required (one of %s)", joinVersions())
	}

	versions := config.SupportedVersions()
	opts := make([]huh.Option[string], len(versions))
	for i, v := range versions {
		r, _ := config.LookupRelease(v)
		opts[i] = huh.NewOption(fmt.Sprintf("Android %s (API %d)", v, r.APILevel), v)
	}

	selected := current
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Target Android version").
			Options(opts...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errCancelled
		}
		return "", fmt.Errorf("version picker: %w", err)
	}
	return selected, nil
}

func joinVersions() string {
	return strings.Join(config.SupportedVersions(), ", ")
}
