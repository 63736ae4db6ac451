package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/models"
	"github.com/platewatch/platewatch/internal/reader"
	"github.com/platewatch/platewatch/internal/tracker"
)

var readSave bool

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read plates from the game window once",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		rd, err := reader.FromSettings(settings)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		fmt.Fprintln(cmd.OutOrStdout(), styleHint.Render(tracker.StatusInProgress.Label()))
		primary, overflow, err := rd.Read(ctx)
		if err != nil {
			return fmt.Errorf("%s (%w)", tracker.ClassifyFailure(err).Message(), err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleLabel.Render("Read"), styleValue.Render(fmt.Sprintf("%d/%d", primary, overflow)))
		if !readSave {
			return nil
		}
		if err := config.SavePlates(models.NewPlateState(primary, overflow, time.Now())); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render("Saved."))
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readSave, "save", false, "Save the counts that were read")
}
