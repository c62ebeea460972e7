package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/model"
	"github.com/saveup-app/saveup/internal/remote"
	"github.com/saveup-app/saveup/internal/stats"
)

var statsRemote bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate savings statistics",
	Long: `Show the aggregate statistics recomputed from the local ledger.

With --remote, also fetch the stats stored on the remote profile and
flag any drift between the two.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		decisions, err := a.ledger.All(cmd.Context())
		if err != nil {
			return err
		}
		local := stats.Compute(decisions)
		code := a.cfg.Profile.Currency

		fmt.Println(cli.RenderTitle("Savings Statistics"))
		fmt.Println(cli.RenderTable(statsTable(local, code)))

		counts := []struct {
			label string
			n     int
		}{
			{"Bought", local.BuyCount},
			{"Skipped", local.DontBuyCount},
			{"Saved for", local.SaveCount},
			{"Thinking", local.LetMeThinkCount},
		}
		max := 0
		for _, c := range counts {
			if c.n > max {
				max = c.n
			}
		}
		if max > 0 {
			fmt.Println()
			for _, c := range counts {
				fmt.Printf("  %-10s %s %d\n", c.label,
					cli.RenderHorizontalBar(float64(c.n), float64(max), 30), c.n)
			}
		}

		if statsRemote {
			return compareRemote(cmd, a, local, code)
		}
		return nil
	},
}

func statsTable(s model.DecisionStats, code string) cli.Table {
	return cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Money saved", cli.FormatCurrency(s.TotalMoneySaved, code)},
			{"Work time saved", cli.FormatHours(s.TotalHoursSaved)},
			{"---"},
			{"Total decisions", cli.FormatNumber(int64(s.TotalDecisions))},
			{"Bought", cli.FormatNumber(int64(s.BuyCount))},
			{"Skipped", cli.FormatNumber(int64(s.DontBuyCount))},
			{"Saved for", cli.FormatNumber(int64(s.SaveCount))},
			{"Still thinking", cli.FormatNumber(int64(s.LetMeThinkCount))},
		},
	}
}

func compareRemote(cmd *cobra.Command, a *app, local model.DecisionStats, code string) error {
	userID, ok := a.sess.UserID()
	if !ok {
		fmt.Println(cli.Muted("Not signed in; no remote profile to compare against."))
		return nil
	}
	if a.remote == nil {
		return fmt.Errorf("remote store is not configured, see: saveup setup")
	}

	profile, err := a.remote.FetchProfile(cmd.Context(), userID)
	if err != nil {
		if errors.Is(err, remote.ErrProfileNotFound) {
			fmt.Println(cli.Muted("No remote profile yet; run a sync to create one."))
			return nil
		}
		return fmt.Errorf("fetching remote profile: %w", err)
	}

	rs := profile.Stats()
	fmt.Println()
	fmt.Println(cli.RenderTitle("Remote Profile"))
	fmt.Println(cli.RenderTable(statsTable(rs, code)))
	if rs != local {
		fmt.Println(cli.WarnStyle.Render("  Remote stats differ from the local ledger. Run: saveup sync"))
	} else {
		fmt.Println(cli.Muted("  Remote profile matches the local ledger."))
	}
	return nil
}

func init() {
	statsCmd.Flags().BoolVar(&statsRemote, "remote", false, "also fetch and compare the remote profile stats")
	rootCmd.AddCommand(statsCmd)
}
