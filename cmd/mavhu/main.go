// mavhu is the terminal front-end for the Mavhu ESG portal: sign in,
// manage companies and view a company's crop-yield dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mavhu/portal"
)

var (
	apiURL string
	darkUI bool

	client *portal.Client
)

func main() {
	root := &cobra.Command{
		Use:           "mavhu",
		Short:         "Mavhu ESG portal CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := portal.DefaultTokenPath()
			if err != nil {
				return fmt.Errorf("resolve token path: %w", err)
			}
			client = portal.New(apiURL, portal.WithTokenStore(portal.FileTokenStore{Path: path}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&apiURL, "api", getenv("MAVHU_API", "http://localhost:8080"), "API base URL")
	root.PersistentFlags().BoolVar(&darkUI, "dark", true, "render for a dark terminal")

	root.AddCommand(loginCmd(), logoutCmd(), companiesCmd(), reportCmd())

	if err := root.Execute(); err != nil {
		th := resolveTheme(darkUI)
		fmt.Fprintln(os.Stderr, th.Error.Render(err.Error()))
		os.Exit(1)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Println("Signed in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the saved session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Logout()
		},
	}
}
