package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/clerk/internal/cli/formatter"
	"github.com/alexanderramin/clerk/internal/insight"
)

// insightsLoadedMsg signals that the query log has been aggregated.
type insightsLoadedMsg struct {
	tallies []insight.IntentCount
	total   int
	err     error
}

// insightsModel is a read-only dashboard over the query log. It replays the
// log through the classifier on every load, so refresh always reflects the
// latest turns.
type insightsModel struct {
	app     *App
	tallies []insight.IntentCount
	total   int
	loading bool
	err     error

	keys insightsKeyMap
}

type insightsKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func defaultInsightsKeyMap() insightsKeyMap {
	return insightsKeyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func newInsightsModel(app *App) *insightsModel {
	return &insightsModel{
		app:     app,
		loading: true,
		keys:    defaultInsightsKeyMap(),
	}
}

func (m *insightsModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *insightsModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		entries, err := app.Session.QueryLog().List(context.Background())
		if err != nil {
			return insightsLoadedMsg{err: err}
		}
		return insightsLoadedMsg{
			tallies: insight.Aggregate(entries),
			total:   len(entries),
		}
	}
}

func (m *insightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.tallies = msg.tallies
		m.total = msg.total
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadData()
		}
	}
	return m, nil
}

func (m *insightsModel) View() string {
	if m.loading {
		return formatter.Dim("Loading insights...") + "\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Customer Insights") + "\n")
	if m.total == 0 {
		b.WriteString(formatter.Dim("No queries logged yet.") + "\n")
	} else {
		rows := make([][]string, 0, len(m.tallies))
		for _, t := range m.tallies {
			rows = append(rows, []string{
				string(t.Intent),
				fmt.Sprintf("%d", t.Count),
			})
		}
		b.WriteString(formatter.RenderTable([]string{"Intent", "Queries"}, rows))
		b.WriteString(formatter.Dim(fmt.Sprintf("%d queries total", m.total)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("r refresh · q quit") + "\n")
	return b.String()
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Interactive customer insights dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(newInsightsModel(app)).Run()
			return err
		},
	}
}
