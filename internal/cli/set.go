package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/platewatch/platewatch/internal/config"
	"github.com/platewatch/platewatch/internal/models"
)

var errCancelled = errors.New("cancelled")

var setCmd = &cobra.Command{
	Use:     "set [primary/overflow]",
	Aliases: []string{"update"},
	Short:   "Set plate counts by hand",
	Long: `Set the current plate counts, e.g. "platewatch set 60/255".
Without an argument the counts are asked for interactively.
A running tray picks up the change automatically.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var primary, overflow int
		var err error

		if len(args) == 1 {
			primary, overflow, err = models.ParseCounts(args[0])
		} else {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("no counts given (usage: platewatch set 60/255)")
			}
			primary, overflow, err = promptCounts(cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, errCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), styleHint.Render("Cancelled."))
				return nil
			}
		}
		if err != nil {
			return err
		}

		if err := config.SavePlates(models.NewPlateState(primary, overflow, time.Now())); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styleSuccess.Render(fmt.Sprintf("Waveplates updated: %d/%d.", primary, overflow)))
		return nil
	},
}

// promptCounts asks until the input parses or the user types "cancel".
func promptCounts(in io.Reader, out io.Writer) (int, int, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "Enter your waveplates as primary/overflow (e.g. 60/255), or type cancel.")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, 0, err
			}
			return 0, 0, errCancelled
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "cancel" {
			return 0, 0, errCancelled
		}
		primary, overflow, err := models.ParseCounts(line)
		if err == nil {
			return primary, overflow, nil
		}
		fmt.Fprintln(out, styleError.Render(err.Error()))
	}
}
