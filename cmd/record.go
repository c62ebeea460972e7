package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/calc"
	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/ledger"
	"github.com/saveup-app/saveup/internal/model"
)

var (
	recordItem       string
	recordPrice      float64
	recordCategories []string
	recordRemindIn   time.Duration
	recordWaitSync   bool
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a spending decision",
	Long: `Record the outcome of a purchase evaluation.

The subcommand names the decision: buy, skip (decided against), save
(putting the money aside instead), or think (undecided, sets a reminder).`,
}

var recordBuyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Record a purchase you went through with",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecord(cmd, model.DecisionBuy)
	},
}

var recordSkipCmd = &cobra.Command{
	Use:   "skip",
	Short: "Record an item you decided not to buy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecord(cmd, model.DecisionDontBuy)
	},
}

var recordSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Record money you put aside instead of spending",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecord(cmd, model.DecisionSave)
	},
}

var recordThinkCmd = &cobra.Command{
	Use:   "think",
	Short: "Defer the decision and set a reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRecord(cmd, model.DecisionLetMeThink)
	},
}

func init() {
	recordCmd.PersistentFlags().StringVar(&recordItem, "item", "", "name of the item")
	recordCmd.PersistentFlags().Float64Var(&recordPrice, "price", 0, "price of the item")
	recordCmd.PersistentFlags().StringSliceVar(&recordCategories, "category", nil, "category tags (repeatable)")
	recordCmd.PersistentFlags().BoolVar(&recordWaitSync, "wait-sync", false, "wait for the remote stats push instead of detaching it")
	recordThinkCmd.Flags().DurationVar(&recordRemindIn, "remind-in", 24*time.Hour, "how long until the reminder fires")

	recordCmd.AddCommand(recordBuyCmd, recordSkipCmd, recordSaveCmd, recordThinkCmd)
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, dtype model.DecisionType) error {
	if strings.TrimSpace(recordItem) == "" {
		return fmt.Errorf("--item is required")
	}
	if recordPrice <= 0 {
		return fmt.Errorf("--price must be positive")
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	wage := a.hourlyWage()
	in := ledger.Input{
		ItemName:        recordItem,
		ItemPrice:       recordPrice,
		WorkHours:       calc.WorkHours(recordPrice, wage),
		InvestmentValue: calc.InvestmentValue(recordPrice, a.cfg.Investment.AnnualReturn, a.cfg.Investment.Years),
		DecisionType:    dtype,
		Categories:      recordCategories,
	}
	if dtype == model.DecisionLetMeThink {
		if recordRemindIn <= 0 {
			return fmt.Errorf("--remind-in must be a positive duration")
		}
		at := time.Now().Add(recordRemindIn)
		in.RemindAt = &at
	}

	var d model.SpendingDecision
	if recordWaitSync {
		d, err = a.ledger.AppendAndSync(cmd.Context(), in)
	} else {
		d, err = a.ledger.Append(cmd.Context(), in)
	}
	if err != nil {
		return err
	}

	code := a.cfg.Profile.Currency
	price := cli.FormatCurrency(d.ItemPrice, code)
	switch dtype {
	case model.DecisionBuy:
		fmt.Printf("Recorded purchase of %q for %s.\n", d.ItemName, cli.SpentStyle.Render(price))
	case model.DecisionDontBuy:
		fmt.Printf("Skipped %q and kept %s.\n", d.ItemName, cli.SavedStyle.Render(price))
	case model.DecisionSave:
		fmt.Printf("Put %s aside instead of buying %q.\n", cli.SavedStyle.Render(price), d.ItemName)
	case model.DecisionLetMeThink:
		fmt.Printf("Sleeping on %q (%s). Reminder at %s.\n",
			d.ItemName, price, d.RemindAt.Local().Format("Mon Jan 2 15:04"))
	}
	if wage > 0 && dtype != model.DecisionBuy {
		fmt.Println(cli.Muted(fmt.Sprintf("That's %s of your working time, or %s if invested for %d years.",
			cli.FormatHours(d.WorkHours),
			cli.FormatCurrency(d.InvestmentValue, code),
			a.cfg.Investment.Years)))
	}
	return nil
}
