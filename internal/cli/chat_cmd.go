package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/clerk/internal/cli/formatter"
)

// chatSession holds mutable state across the chat loop.
type chatSession struct {
	app *App

	// adminMode routes input to the admin command handler until "exit".
	// adminOpeningQuery is the customer query that opened the dashboard;
	// the exit turn is logged against it.
	adminMode         bool
	adminOpeningQuery string
	wantExit          bool
}

func newChatCmd(app *App) *cobra.Command {
	var startAdmin bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive storefront chat",
		Long: `Start the storefront assistant. Every line is classified and answered;
'open dashboard' switches into the admin sub-session until 'exit'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app, startAdmin)
		},
	}

	cmd.Flags().BoolVar(&startAdmin, "admin", false, "start directly in the admin dashboard")
	return cmd
}

func runChat(app *App, startAdmin bool) error {
	sess := &chatSession{app: app, adminMode: startAdmin}
	if startAdmin {
		// Exiting logs against a synthetic opening query, as if the
		// dashboard had been opened from chat.
		sess.adminOpeningQuery = "open dashboard"
	}

	if app.IsInteractive != nil && !app.IsInteractive() {
		return sess.runPiped(os.Stdin, os.Stdout)
	}

	fmt.Print(formatter.FormatChatWelcome())
	if sess.adminMode {
		fmt.Print(formatter.FormatAdminWelcome())
	}

	p := prompt.New(
		sess.executor,
		sess.completer,
		prompt.OptionLivePrefix(sess.livePrefix),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return sess.wantExit
		}),
		prompt.OptionTitle("clerk chat"),
		prompt.OptionPrefixTextColor(prompt.Purple),
		prompt.OptionSuggestionBGColor(prompt.DarkGray),
		prompt.OptionSuggestionTextColor(prompt.White),
		prompt.OptionSelectedSuggestionBGColor(prompt.Purple),
		prompt.OptionSelectedSuggestionTextColor(prompt.White),
		prompt.OptionDescriptionBGColor(prompt.DarkGray),
		prompt.OptionDescriptionTextColor(prompt.LightGray),
		prompt.OptionMaxSuggestion(10),
	)
	p.Run()
	return nil
}

// runPiped processes stdin line by line without prompt decoration, for use
// behind pipes and in scripts.
func (s *chatSession) runPiped(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if output := s.turn(scanner.Text()); output != "" {
			fmt.Fprint(out, output)
		}
		if s.wantExit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	// End of input closes an open dashboard the same way "exit" does, so the
	// opening query still gets its logged response.
	if s.adminMode {
		fmt.Fprint(out, s.closeDashboard())
	}
	return nil
}

func (s *chatSession) livePrefix() (string, bool) {
	if s.adminMode {
		return "admin> ", true
	}
	return "You: ", true
}

func (s *chatSession) executor(input string) {
	if output := s.turn(input); output != "" {
		fmt.Print(output)
	}
}

// turn processes one line of input and returns the rendered output.
func (s *chatSession) turn(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if s.adminMode {
		return s.adminTurn(input)
	}

	switch strings.ToLower(input) {
	case "quit", "exit":
		s.wantExit = true
		return formatter.FormatGoodbye() + "\n"
	case "help":
		return formatter.FormatChatHelp() + "\n"
	case "clear":
		return "\033[H\033[2J"
	}

	reply := s.app.Session.Respond(context.Background(), input)
	if reply.EnterDashboard {
		s.adminMode = true
		s.adminOpeningQuery = input
		return formatter.FormatAdminWelcome()
	}
	return formatter.FormatAgentReply(reply.Text)
}

func (s *chatSession) adminTurn(input string) string {
	reply := s.app.Session.HandleAdminCommand(context.Background(), input)
	if reply.Exit {
		return s.closeDashboard()
	}
	return formatter.FormatAdminReply(reply.Text)
}

// closeDashboard leaves admin mode and logs the farewell against the query
// that opened the dashboard.
func (s *chatSession) closeDashboard() string {
	s.adminMode = false
	farewell := s.app.Session.ExitDashboard(context.Background(), s.adminOpeningQuery)
	s.adminOpeningQuery = ""
	return formatter.FormatAgentReply(farewell)
}
