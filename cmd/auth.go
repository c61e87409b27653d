package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miavoice/scheduler-mcp/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth [authCode]",
		Short: "Authorize Google Calendar access",
		Long: `Authorize Google Calendar access for an account.

Without arguments, prints the OAuth URL to visit. After granting access,
run the command again with the authorization code to save the token:

  scheduler-mcp auth
  scheduler-mcp auth <authorization-code>

Deployments using a service account (GOOGLE_SERVICE_ACCOUNT_JSON or
GOOGLE_SERVICE_ACCOUNT_FILE) do not need this flow.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if google.HasServiceAccount() {
					fmt.Println("A service account is configured; no OAuth authorization is needed.")
					return nil
				}
				if google.HasTokenForAccount(account) {
					fmt.Printf("Account %q is already authorized.\n", account)
					return nil
				}

				fmt.Printf(`To authorize Google Calendar access for account %q:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account and grant access
3. Copy the authorization code
4. Run: scheduler-mcp auth --account=%s <authorization-code>
`, account, google.GetAuthURL(), account)
				return nil
			}

			if err := google.SaveToken(cmd.Context(), account, args[0]); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}
			fmt.Printf("Authorization successful. Token saved for account %q.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Account name. Used to manage multiple Google accounts.")

	return cmd
}
