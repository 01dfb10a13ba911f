package cmd

import (
	"github.com/spf13/cobra"
)

var iconCmd = &cobra.Command{
	Use:   "icon <png>",
	Short: "Generate launcher icons from a PNG image",
	Long: `Scale a PNG image to every launcher icon density (mdpi to xxxhdpi) and
write it as res/mipmap-<density>/ic_launcher.png. A square image of at
least 192x192 pixels gives the best result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManager(cmd)
		if err != nil {
			return err
		}
		_, err = m.GenerateIcons(args[0])
		return err
	},
}

func init() {
	RegisterCommand(iconCmd)
}
