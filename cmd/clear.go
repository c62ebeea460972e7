package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded decision",
	Long: `Delete every decision from the local ledger and reset the remote
profile stats to zero. This cannot be undone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return fmt.Errorf("refusing to clear without --yes")
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.ledger.Store().Count(cmd.Context())
		if err != nil {
			return err
		}
		if err := a.ledger.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Printf("Cleared %d decision(s).\n", n)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "confirm deletion")
	rootCmd.AddCommand(clearCmd)
}
