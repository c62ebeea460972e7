package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/model"
)

var resolveAs string

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List pending let-me-think reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		pending, err := a.ledger.ActiveReminders(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Println(cli.Muted("No pending reminders."))
			return nil
		}

		t := cli.Table{
			Headers: []string{"ID", "Item", "Price", "Remind At"},
		}
		code := a.cfg.Profile.Currency
		for _, d := range pending {
			t.Rows = append(t.Rows, []string{
				d.ID[:8],
				d.ItemName,
				cli.FormatCurrency(d.ItemPrice, code),
				d.RemindAt.Local().Format("Mon Jan 2 15:04"),
			})
		}
		fmt.Println(cli.RenderTitle("Pending Reminders"))
		fmt.Println(cli.RenderTable(t))
		fmt.Println(cli.Muted("Resolve with: saveup reminders resolve <id> --as buy|save"))
		return nil
	},
}

var remindersResolveCmd = &cobra.Command{
	Use:   "resolve <id>",
	Short: "Settle a deferred decision as a final buy or save",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var final model.DecisionType
		switch resolveAs {
		case "buy":
			final = model.DecisionBuy
		case "save":
			final = model.DecisionSave
		default:
			return fmt.Errorf("--as must be buy or save, got %q", resolveAs)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := expandID(cmd, a, args[0])
		if err != nil {
			return err
		}
		if err := a.ledger.Resolve(cmd.Context(), id, final); err != nil {
			return err
		}
		fmt.Printf("Resolved %s as %s.\n", id[:8], final)
		return nil
	},
}

// expandID accepts either a full decision id or the 8-char prefix shown in
// listings. Ambiguous prefixes are rejected.
func expandID(cmd *cobra.Command, a *app, id string) (string, error) {
	if len(id) >= 36 {
		return id, nil
	}
	all, err := a.ledger.All(cmd.Context())
	if err != nil {
		return "", err
	}
	var match string
	for _, d := range all {
		if len(d.ID) >= len(id) && d.ID[:len(id)] == id {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", id)
			}
			match = d.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no decision with id %q", id)
	}
	return match, nil
}

func init() {
	remindersResolveCmd.Flags().StringVar(&resolveAs, "as", "", "final decision: buy or save")
	remindersCmd.AddCommand(remindersResolveCmd)
	rootCmd.AddCommand(remindersCmd)
}
