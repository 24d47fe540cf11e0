package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newBillingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Plans and subscription",
	}

	cmd.AddCommand(newBillingPlansCmd())
	cmd.AddCommand(newBillingInfoCmd())
	cmd.AddCommand(newBillingPlanCmd())

	return cmd
}

func newBillingPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List available plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plans, err := apiClient.Billing().Plans(ctx)
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(plans)
			}

			table := NewTable("ID", "NAME", "PRICE", "FEATURES")
			for _, p := range plans {
				price := "free"
				if p.Price > 0 {
					price = fmt.Sprintf("$%.0f/%s", p.Price, p.Interval)
				}
				table.AddRow(p.ID, p.Name, price, truncate(strings.Join(p.Features, "; "), 60))
			}
			table.Render()
			return nil
		},
	}
}

func newBillingInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show your plan and subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			info, err := apiClient.Billing().Info(ctx)
			if err != nil {
				return fmt.Errorf("failed to get billing info: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(info)
			}

			fmt.Printf("Plan:     %s ($%.0f/%s)\n", info.Plan.Name, info.Plan.Price, info.Plan.Interval)
			if info.Subscription != nil {
				fmt.Printf("Status:   %s\n", info.Subscription.Status)
				if info.Subscription.RenewalDate != nil {
					fmt.Printf("Renews:   %s\n", info.Subscription.RenewalDate.Format("2006-01-02"))
				}
			}
			return nil
		},
	}
}

func newBillingPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <free|pro>",
		Short: "Change your plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := apiClient.Billing().ChangePlan(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to change plan: %w", err)
			}

			fmt.Printf("Plan changed to %s\n", args[0])
			return nil
		},
	}
}
