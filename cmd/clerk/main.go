package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/clerk/internal/agent"
	"github.com/alexanderramin/clerk/internal/cli"
	"github.com/alexanderramin/clerk/internal/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The store runs in-memory by default; every launch starts from the
	// seeded catalog. CLERK_DB points at a file for a persistent store.
	dbPath := os.Getenv("CLERK_DB")
	if dbPath == "" {
		dbPath = ":memory:"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var opts []agent.Option
	if os.Getenv("CLERK_LOG_TURNS") != "" {
		opts = append(opts, agent.WithObserver(agent.NewLogObserver(os.Stderr)))
	}

	app := &cli.App{
		Session: agent.NewSession(database, opts...),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
