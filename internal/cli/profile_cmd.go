package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clerk/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Session.Profile().Get(context.Background())
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}
			fmt.Print(formatter.FormatProfile(profile))
			return nil
		},
	}

	cmd.AddCommand(newProfileEditCmd(app))
	return cmd
}

func newProfileEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit name and shipping address",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := app.Session.Profile().Get(ctx)
			if err != nil {
				return fmt.Errorf("loading profile: %w", err)
			}

			name := profile.Name
			address := profile.Address
			if err := profileEditForm(&name, &address).Run(); err != nil {
				return err
			}

			profile.Name = name
			profile.Address = address
			if err := app.Session.Profile().Update(ctx, profile); err != nil {
				return fmt.Errorf("saving profile: %w", err)
			}

			fmt.Printf("Profile updated: %s, %s\n", formatter.Bold(name), address)
			return nil
		},
	}
}
