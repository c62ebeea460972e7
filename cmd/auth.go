package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saveup-app/saveup/internal/cli"
	"github.com/saveup-app/saveup/internal/config"
	"github.com/saveup-app/saveup/internal/session"
	"github.com/saveup-app/saveup/internal/stats"
)

var (
	loginUserID string
	loginEmail  string
	loginToken  string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the signed-in account",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and start syncing stats to your profile",
	Long: `Store the account credentials for this device.

Decisions recorded while signed in live in a per-user database, so
signing out and back in never mixes ledgers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUserID == "" {
			return fmt.Errorf("--user-id is required")
		}

		sess, err := session.Load(config.SessionPath())
		if err != nil {
			return err
		}
		if err := sess.SignIn(session.Session{
			UserID:      loginUserID,
			Email:       loginEmail,
			AccessToken: loginToken,
		}); err != nil {
			return err
		}
		fmt.Printf("Signed in as %s.\n", loginUserID)

		// Seed the remote profile with whatever this user's ledger holds.
		a, err := openApp(cmd.Context())
		if err != nil {
			return nil
		}
		defer a.Close()
		if a.remote != nil {
			decisions, err := a.ledger.All(cmd.Context())
			if err == nil {
				if err := stats.NewReconciler(a.sess, a.remote).Sync(cmd.Context(), decisions); err == nil {
					fmt.Println(cli.Muted("Stats synced to your profile."))
				}
			}
		}
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(config.SessionPath())
		if err != nil {
			return err
		}
		userID, ok := sess.UserID()
		if !ok {
			fmt.Println(cli.Muted("Already signed out."))
			return nil
		}
		if err := sess.SignOut(); err != nil {
			return err
		}
		fmt.Printf("Signed out of %s. Your local decisions are kept.\n", userID)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(config.SessionPath())
		if err != nil {
			return err
		}
		userID, ok := sess.UserID()
		if !ok {
			fmt.Println("Signed out. Decisions are recorded locally only.")
			return nil
		}
		cur := sess.Current()
		fmt.Printf("Signed in as %s", userID)
		if cur.Email != "" {
			fmt.Printf(" (%s)", cur.Email)
		}
		fmt.Println()
		fmt.Printf("Ledger: %s\n", config.LedgerPath(userID))
		return nil
	},
}

func init() {
	authLoginCmd.Flags().StringVar(&loginUserID, "user-id", "", "account user id")
	authLoginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	authLoginCmd.Flags().StringVar(&loginToken, "token", "", "access token for the remote profile store")
	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
