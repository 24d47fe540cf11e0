package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandkitai/brandkit/pkg/client"
)

func newKitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Manage brand kits",
	}

	cmd.AddCommand(newKitListCmd())
	cmd.AddCommand(newKitGetCmd())
	cmd.AddCommand(newKitCreateCmd())
	cmd.AddCommand(newKitGenerateCmd())

	return cmd
}

func newKitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your brand kits, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			kits, err := apiClient.BrandKits().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list brand kits: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(kits)
			}

			if len(kits) == 0 {
				fmt.Println("No brand kits yet. Create one with 'brandkit kit create'.")
				return nil
			}

			table := NewTable("ID", "BUSINESS", "INDUSTRY", "TAGLINE", "CREATED")
			for _, k := range kits {
				table.AddRow(
					strconv.FormatInt(k.ID, 10),
					truncate(k.BusinessName, 30),
					truncate(deref(k.Industry), 20),
					truncate(deref(k.Tagline), 40),
					k.CreatedAt.Format("2006-01-02"),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newKitGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one brand kit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid kit id: %s", args[0])
			}

			ctx := context.Background()
			kit, err := apiClient.BrandKits().Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get brand kit: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(kit)
			}

			fmt.Printf("Business:   %s\n", kit.BusinessName)
			fmt.Printf("Industry:   %s\n", deref(kit.Industry))
			fmt.Printf("Vibe:       %s\n", strings.Join(kit.Vibe, ", "))
			fmt.Printf("Audience:   %s\n", deref(kit.TargetAudience))
			fmt.Println()
			fmt.Printf("Tagline:    %s\n", deref(kit.Tagline))
			fmt.Printf("Summary:    %s\n", deref(kit.BrandSummary))
			fmt.Printf("Voice:      %s\n", deref(kit.BrandVoice))

			if len(kit.Colors) > 0 {
				fmt.Println("\nColors:")
				for _, c := range kit.Colors {
					fmt.Printf("  %-12s %-8s (%s)\n", c.Name, c.Hex, c.Role)
				}
			}
			if len(kit.Fonts) > 0 {
				fmt.Println("\nFonts:")
				for _, f := range kit.Fonts {
					fmt.Printf("  %-24s (%s)\n", f.Name, f.Role)
				}
			}
			return nil
		},
	}
}

func newKitCreateCmd() *cobra.Command {
	var (
		name     string
		industry string
		desc     string
		vibe     []string
		audience string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new brand kit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = promptInput("Business name: ")
			}
			if len(vibe) == 0 {
				raw := promptInput("Vibe (comma separated, e.g. playful,modern): ")
				for _, v := range strings.Split(raw, ",") {
					if trimmed := strings.TrimSpace(v); trimmed != "" {
						vibe = append(vibe, trimmed)
					}
				}
			}

			req := client.CreateBrandKitRequest{
				BusinessName: name,
				Vibe:         vibe,
			}
			if industry != "" {
				req.Industry = &industry
			}
			if desc != "" {
				req.Description = &desc
			}
			if audience != "" {
				req.TargetAudience = &audience
			}

			ctx := context.Background()
			id, err := apiClient.BrandKits().Create(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create brand kit: %w", err)
			}

			fmt.Printf("Brand kit %d created for %s\n", id, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name")
	cmd.Flags().StringVar(&industry, "industry", "", "industry (e.g. coffee, dog grooming)")
	cmd.Flags().StringVar(&desc, "description", "", "what the business does")
	cmd.Flags().StringSliceVar(&vibe, "vibe", nil, "vibe descriptors")
	cmd.Flags().StringVar(&audience, "audience", "", "target audience")

	return cmd
}

func newKitGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <id> <field>",
		Short: "Generate a narrative field with AI",
		Long: `Generates one narrative field for a brand kit and persists the result.
Field is one of: tagline, brandSummary, brandVoice.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid kit id: %s", args[0])
			}

			ctx := context.Background()
			result, err := apiClient.BrandKits().Generate(ctx, id, args[1])
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			format := getOutputFormat()
			if format != "table" {
				return printOutput(result)
			}

			fmt.Println(result.Text)
			return nil
		},
	}
}
