package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an identity token and sync your profile",
		Long: `Stores the identity token issued by the BrandKitAI sign-in flow and
syncs your profile with the server. The token is read from the --token
flag or prompted without echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = promptSecret("Identity token: ")
			}
			if token == "" {
				return fmt.Errorf("no token provided")
			}

			apiClient.SetToken(token)

			ctx := context.Background()
			if err := apiClient.Users().Sync(ctx); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			user, err := apiClient.Users().Me(ctx)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			viper.Set("auth.token", token)
			viper.Set("auth.email", user.Email)

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to save credentials: %w", err)
			}

			name := user.Email
			if user.Name != "" {
				name = user.Name
			}
			fmt.Printf("Logged in as %s (%s plan)\n", name, user.Plan)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "identity token")

	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("auth.token", "")
			viper.Set("auth.email", "")

			if err := writeConfig(); err != nil {
				return fmt.Errorf("failed to clear credentials: %w", err)
			}

			fmt.Println("Logged out successfully")
			return nil
		},
	}
}

func newAuthWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show current user info",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := apiClient.Users().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get user info: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(user)
			}

			fmt.Printf("Email:      %s\n", user.Email)
			if user.Name != "" {
				fmt.Printf("Name:       %s\n", user.Name)
			}
			fmt.Printf("Plan:       %s\n", user.Plan)
			fmt.Printf("Brand kits: %d\n", user.BrandKitCount)
			fmt.Printf("ID:         %d\n", user.ID)
			return nil
		},
	}
}

func promptInput(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptSecret(prompt string) string {
	fmt.Print(prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(secret))
}
