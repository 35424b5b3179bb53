package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clerk/internal/cli/formatter"
)

func newOrdersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "List order history",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Session.Orders().List(context.Background())
			if err != nil {
				return fmt.Errorf("loading orders: %w", err)
			}
			if len(orders) == 0 {
				fmt.Println(formatter.Dim("No orders yet."))
				return nil
			}
			fmt.Print(formatter.FormatOrderTable(orders))
			return nil
		},
	}
}
