package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("COWORK_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(initialModel())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	PaddingLeft(1).
	PaddingRight(1)

var alertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
var okStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

type model struct {
	table      table.Model
	clients    int
	active     int
	salesTotal float64
	lowStock   []string
	err        error
}

func initialModel() model {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return model{err: err}
	}

	clients, err := services.Clients.List()
	if err != nil {
		return model{err: err}
	}

	stats, err := services.Stats.Statistics()
	if err != nil {
		return model{err: err}
	}

	// Setup Table
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Plan", Width: 12},
		{Title: "Visits", Width: 8},
		{Title: "Debt", Width: 10},
		{Title: "Status", Width: 10},
	}

	rows := []table.Row{}
	for _, c := range clients {
		rows = append(rows, table.Row{
			c.ID,
			c.Name,
			c.Plan.Name,
			fmt.Sprintf("%d/%d", c.VisitsUsed, c.Plan.IncludedVisits),
			fmt.Sprintf("$%.2f", c.Debt),
			string(c.Status),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))

	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))

	t.SetStyles(s)

	active := 0
	for _, c := range clients {
		if c.Status == membership.StatusActive {
			active++
		}
	}

	return model{
		table:      t,
		clients:    len(clients),
		active:     active,
		salesTotal: stats.SalesTotal,
		lowStock:   stats.LowStock,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	header := headerStyle.Render(fmt.Sprintf("Coworking Space - %d clients, %d active", m.clients, m.active))

	salesText := fmt.Sprintf("Sales total: $%.2f", m.salesTotal)

	stockView := ""
	if len(m.lowStock) > 0 {
		stockView = alertStyle.Render("\nLOW STOCK:\n")
		for _, name := range m.lowStock {
			stockView += fmt.Sprintf("- %s\n", name)
		}
	} else {
		stockView = okStyle.Render("\nInventory: OK")
	}

	return baseStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			salesText,
			"\nClients:",
			m.table.View(),
			stockView,
			"\n[q] Quit  [Up/Down] Navigate",
		),
	) + "\n"
}
