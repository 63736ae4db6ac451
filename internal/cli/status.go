package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"check"},
	Short:   "Show current plates and time until full",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := config.LoadPlates()
		if err != nil {
			return err
		}

		info := state.Project(time.Now())
		fmt.Fprintln(cmd.OutOrStdout(), styleValue.Render(tracker.Summary(info)))
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			styleLabel.Render("Last updated"),
			styleHint.Render(state.UpdatedAt.Local().Format("2006-01-02 15:04")),
		)
		return nil
	},
}
