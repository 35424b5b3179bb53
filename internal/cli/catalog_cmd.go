package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/clerk/internal/cli/formatter"
	"github.com/alexanderramin/clerk/internal/domain"
)

func newCatalogCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var err error
			var products []domain.Product
			if category != "" {
				products, err = app.Session.Products().ListByCategory(ctx, category)
			} else {
				products, err = app.Session.Products().List(ctx)
			}
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			if len(products) == 0 {
				fmt.Println(formatter.Dim("No products in this category."))
				return nil
			}
			fmt.Print(formatter.FormatProductTable(products))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show products in this category")
	return cmd
}
