package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/stats"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push recomputed stats to the remote profile now",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if _, ok := a.sess.UserID(); !ok {
			fmt.Println(cli.Muted("Not signed in; stats stay local. See: saveup auth login"))
			return nil
		}
		if a.remote == nil {
			return fmt.Errorf("remote store is not configured, see: saveup setup")
		}

		decisions, err := a.ledger.All(cmd.Context())
		if err != nil {
			return err
		}
		if err := stats.NewReconciler(a.sess, a.remote).Sync(cmd.Context(), decisions); err != nil {
			return fmt.Errorf("syncing stats: %w", err)
		}

		s := stats.Compute(decisions)
		fmt.Printf("Synced %d decisions (%s saved) to the remote profile.\n",
			s.TotalDecisions,
			cli.FormatCurrency(s.TotalMoneySaved, a.cfg.Profile.Currency))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
