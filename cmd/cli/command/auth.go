package command

import (
	"fmt"
	"time"

	"cineverse/cmd/cli/authentication"
	"cineverse/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// auth.go handles signup, login, logout and whoami.

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the CineVerse API server. Supports signup, login, logout and whoami.`,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new CineVerse account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.SignupRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		resp, err := newClient().Signup(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("signup failed: %w", err)
		}

		success(cmd, "Account created! Please login to continue.")
		printf(cmd, "UserID: %s\n", resp.User.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your CineVerse account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		resp, err := newClient().Login(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		creds := &authentication.StoredCredentials{
			Token:  resp.Token,
			UserID: resp.User.ID,
			Name:   resp.User.Name,
			Email:  resp.User.Email,
		}
		if resp.ExpiresIn > 0 {
			creds.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
		}
		if err := authentication.StoreCredentials(creds); err != nil {
			return fmt.Errorf("could not store session: %w", err)
		}

		success(cmd, "Logged in as %s", resp.User.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteCredentials(); err != nil {
			return err
		}
		success(cmd, "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account behind the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		user, err := httpClient.Profile(cmd.Context())
		if err != nil {
			return err
		}

		printf(cmd, "Name:  %s\n", user.Name)
		printf(cmd, "Email: %s\n", user.Email)
		if user.CreatedAt != nil {
			printf(cmd, "Since: %s\n", user.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)

	signupCmd.Flags().StringP("name", "n", "", "Display name for the new account")
	signupCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	signupCmd.Flags().StringP("password", "p", "", "Password for the new account")
	signupCmd.MarkFlagRequired("name")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
