package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/clerk/internal/agent"
)

// App holds the wired session plus environment probes used by CLI commands.
type App struct {
	Session *agent.Session

	// IsInteractive reports whether stdin is a terminal. The chat command
	// falls back to a line-reader loop when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "clerk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "clerk",
		Short: "Text-driven storefront assistant",
	}

	root.AddCommand(
		newChatCmd(app),
		newCatalogCmd(app),
		newOrdersCmd(app),
		newProfileCmd(app),
		newInsightsCmd(app),
	)

	return root
}
