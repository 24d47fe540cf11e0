package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			user, err := apiClient.Users().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}
			kits, err := apiClient.BrandKits().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list brand kits: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				generated := 0
				for _, k := range kits {
					if k.Tagline != nil {
						generated++
					}
				}
				return printOutput(map[string]interface{}{
					"email":        user.Email,
					"plan":         user.Plan,
					"brand_kits":   len(kits),
					"with_tagline": generated,
				})
			}

			fmt.Println("BrandKitAI Account")
			fmt.Println(strings.Repeat("=", 40))
			fmt.Printf("  Email:       %s\n", user.Email)
			fmt.Printf("  Plan:        %s\n", user.Plan)
			fmt.Printf("  Brand kits:  %d\n", len(kits))

			if len(kits) > 0 {
				fmt.Println("\nLatest kit:")
				latest := kits[0]
				fmt.Printf("  %s", latest.BusinessName)
				if latest.Tagline != nil {
					fmt.Printf(" - %q", *latest.Tagline)
				}
				fmt.Println()
			}

			if user.Plan == "free" && len(kits) >= 1 {
				fmt.Println("\nYou have used your free brand kit. Upgrade with 'brandkit billing plan pro'.")
			}

			return nil
		},
	}
}
