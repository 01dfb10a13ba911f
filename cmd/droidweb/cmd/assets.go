package cmd

import (
	"github.com/spf13/cobra"
)

var ensureAssetsCmd = &cobra.Command{
	Use:   "ensure-assets",
	Short: "Create app/src/main/assets if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		created, err := m.EnsureAssetsFolder()
		if err != nil {
			return err
		}
		if !created {
			printerFor(cmd).Info("Assets folder already exists.")
		}
		return nil
	},
}

var indexHTMLCmd = &cobra.Command{
	Use:   "create-index-html",
	Short: "Write the default index.html into the assets folder",
	Long: `Write the default index.html into app/src/main/assets.

The assets folder is created if needed. An existing index.html is
overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		return m.CreateIndexHtml()
	},
}

func init() {
	RegisterCommand(ensureAssetsCmd)
	RegisterCommand(indexHTMLCmd)
}
