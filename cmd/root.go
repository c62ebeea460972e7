package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/calc"
	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/config"
	"github.com/saveup-app/saveup/internal/ledger"
	"github.com/saveup-app/saveup/internal/remote"
	"github.com/saveup-app/saveup/internal/session"
	"github.com/saveup-app/saveup/internal/stats"
	"github.com/saveup-app/saveup/internal/tips"
)

var (
	flagNoSync bool
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "saveup",
	Short: "Track spending decisions and watch the savings add up",
	Long: `saveup is a decision ledger for impulse purchases.

Record whether you bought, skipped, or saved for an item and saveup
keeps a running tally of money and work hours saved. Undecided items
become reminders you can resolve later.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOverview(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoSync, "no-sync", false, "skip pushing stats to the remote profile")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path to the decision database (overrides the default location)")
}

// app bundles what every command needs: config, session, the open ledger,
// and the remote store when one is configured. Close waits for detached
// syncs before releasing the database.
type app struct {
	cfg    config.Config
	sess   *session.Provider
	ledger *ledger.Ledger
	remote remote.Store
}

func (a *app) Close() {
	if a.ledger != nil {
		a.ledger.Flush()
		a.ledger.Store().Close()
	}
	if a.remote != nil {
		a.remote.Close(context.Background())
	}
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sess, err := session.Load(config.SessionPath())
	if err != nil {
		return nil, err
	}

	dbPath := flagDBPath
	if dbPath == "" {
		userID, _ := sess.UserID()
		dbPath = config.LedgerPath(userID)
	}

	store, err := ledger.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	a := &app{cfg: cfg, sess: sess}

	var syncer ledger.Syncer
	if !flagNoSync && remoteConfigured(cfg) {
		rem, err := remote.New(ctx, remote.Options{
			Backend:     cfg.Remote.Backend,
			BaseURL:     cfg.Remote.BaseURL,
			AnonKey:     cfg.Remote.AnonKey,
			AccessToken: sess.Current().AccessToken,
			MongoURI:    cfg.Remote.MongoURI,
			MongoDB:     cfg.Remote.MongoDB,
		})
		if err != nil {
			log.Printf("saveup: remote store unavailable, stats stay local: %v", err)
		} else {
			a.remote = rem
			syncer = stats.NewReconciler(sess, rem)
		}
	}

	a.ledger = ledger.New(store, syncer)
	return a, nil
}

// remoteConfigured reports whether the config names a remote backend at
// all. A default config has none; that is the plain local-only install,
// not a failure worth logging.
func remoteConfigured(cfg config.Config) bool {
	switch cfg.Remote.Backend {
	case "", "supabase":
		return cfg.Remote.BaseURL != "" || cfg.Remote.AnonKey != ""
	default:
		return true
	}
}

func (a *app) hourlyWage() float64 {
	return calc.HourlyWage(a.cfg.Profile.SalaryAmount, a.cfg.Profile.SalaryType)
}

func runOverview(cmd *cobra.Command) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	decisions, err := a.ledger.All(cmd.Context())
	if err != nil {
		return err
	}
	s := stats.Compute(decisions)
	code := a.cfg.Profile.Currency

	fmt.Println(cli.RenderTitle("Save Up"))
	fmt.Println()

	if s.TotalDecisions == 0 {
		fmt.Println(cli.Muted("No decisions recorded yet. Try: saveup record buy --item \"coffee\" --price 4.50"))
	} else {
		fmt.Printf("  %s saved across %d decisions\n",
			cli.SavedStyle.Render(cli.FormatCurrency(s.TotalMoneySaved, code)), s.TotalDecisions)
		fmt.Printf("  %s of work time kept\n", cli.FormatHours(s.TotalHoursSaved))
		fmt.Printf("  %s bought, %s skipped, %s saved for\n",
			cli.SpentStyle.Render(fmt.Sprintf("%d", s.BuyCount)),
			cli.SavedStyle.Render(fmt.Sprintf("%d", s.DontBuyCount)),
			cli.SavedStyle.Render(fmt.Sprintf("%d", s.SaveCount)))
		if pending, err := a.ledger.ActiveReminders(cmd.Context(), time.Now()); err == nil && len(pending) > 0 {
			fmt.Printf("  %s\n", cli.WarnStyle.Render(fmt.Sprintf("%d reminder(s) pending, see: saveup reminders", len(pending))))
		}
	}

	fmt.Println()
	tip := tips.OfTheDay(time.Now())
	fmt.Println(cli.Muted(fmt.Sprintf("Tip (%s): %s", tip.Title, tip.Text)))
	return nil
}
