package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/calc"
	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/config"
	"github.com/saveup-app/saveup/internal/currency"
	"github.com/saveup-app/saveup/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Long: `Configure your salary, currency, and spending-habit profile.

Run it again anytime to change your answers. When signed in, the
answers are also pushed to your remote profile.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	salaryIn := cli.FormatNumberInput(cfg.Profile.SalaryAmount)
	if cfg.Profile.SalaryAmount == 0 {
		salaryIn = ""
	}
	salaryType := string(cfg.Profile.SalaryType)
	region := cfg.Profile.Region
	if region == "" {
		region = "US"
	}
	var answers model.QuestionnaireAnswers

	regionOpts := make([]huh.Option[string], 0, len(currency.Regions))
	for _, r := range currency.Regions {
		regionOpts = append(regionOpts, huh.NewOption(r.Name, r.Code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is your salary?").
				Description("Used to convert prices into hours of work.").
				Value(&salaryIn).
				Validate(func(s string) error {
					v, err := cli.ParseNumberInput(s)
					if err != nil {
						return err
					}
					if v <= 0 {
						return fmt.Errorf("salary must be positive")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Is that monthly or annual?").
				Options(
					huh.NewOption("Annual", string(model.SalaryAnnual)),
					huh.NewOption("Monthly", string(model.SalaryMonthly)),
				).
				Value(&salaryType),
			huh.NewSelect[string]().
				Title("Where do you live?").
				Description("Picks your default currency.").
				Options(regionOpts...).
				Value(&region),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Do you often buy things you didn't plan to?").
				Value(&answers.UnplannedPurchases),
			huh.NewConfirm().Title("Do sales and limited offers make you buy faster?").
				Value(&answers.SaleUrgency),
			huh.NewConfirm().Title("Do you regret purchases within a few days?").
				Value(&answers.PurchaseRegret),
			huh.NewConfirm().Title("Do you shop when stressed or bored?").
				Value(&answers.EmotionalShopping),
			huh.NewConfirm().Title("Do you buy without comparing prices first?").
				Value(&answers.NoPriceComparison),
			huh.NewConfirm().Title("Do you justify purchases as rewards you deserve?").
				Value(&answers.RewardJustify),
			huh.NewConfirm().Title("Do you own things you have never used?").
				Value(&answers.UnusedItems),
		).Title("Spending habits"),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	salary, err := cli.ParseNumberInput(salaryIn)
	if err != nil {
		return err
	}
	cfg.Profile.SalaryAmount = salary
	cfg.Profile.SalaryType = model.SalaryType(salaryType)
	cfg.Profile.Region = region
	cfg.Profile.Currency = currency.DefaultForRegion(region)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	wage := calc.HourlyWage(salary, cfg.Profile.SalaryType)
	score := answers.Score()

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Printf("  Your time is worth %s per hour.\n",
		cli.FormatCurrency(wage, cfg.Profile.Currency))
	switch {
	case score >= 5:
		fmt.Println(cli.WarnStyle.Render("  Habit score: high. The 24-hour rule is your friend."))
	case score >= 3:
		fmt.Println("  Habit score: moderate. Reminders should help.")
	default:
		fmt.Println(cli.SavedStyle.Render("  Habit score: low. Keep it up."))
	}

	// Push the onboarding profile upstream when signed in.
	a, err := openApp(cmd.Context())
	if err != nil {
		return nil
	}
	defer a.Close()
	if userID, ok := a.sess.UserID(); ok && a.remote != nil {
		profile := model.UserProfile{
			UserID:               userID,
			SalaryAmount:         salary,
			SalaryType:           cfg.Profile.SalaryType,
			HourlyWage:           wage,
			Currency:             cfg.Profile.Currency,
			Region:               region,
			QuestionnaireScore:   score,
			QuestionnaireAnswers: &answers,
			OnboardingCompleted:  true,
		}
		if err := a.remote.UpsertProfile(cmd.Context(), profile); err != nil {
			fmt.Println(cli.Muted(fmt.Sprintf("  Could not push profile upstream: %v", err)))
		} else {
			fmt.Println(cli.Muted("  Profile pushed to your account."))
		}
	}
	return nil
}
