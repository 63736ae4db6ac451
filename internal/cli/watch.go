package cli

import (
	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show live plates in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		return tui.Run(settings)
	},
}
