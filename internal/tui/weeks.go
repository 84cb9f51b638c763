package tui

import (
	"errors"
	"fmt"

	"zone2/internal/analysis"
	"zone2/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WeeksModel is the weekly stats screen model
type WeeksModel struct {
	queryService *service.QueryService
	rows         []analysis.WeeklyRow
	loading      bool
	err          error
}

// NewWeeksModel creates a new weekly stats model
func NewWeeksModel(qs *service.QueryService) WeeksModel {
	return WeeksModel{queryService: qs}
}

// Init initializes the weekly stats screen
func (m WeeksModel) Init() tea.Cmd {
	return m.loadData
}

func (m WeeksModel) loadData() tea.Msg {
	rows, err := m.queryService.GetWeeklyStats()
	return weeksDataMsg{rows: rows, err: err}
}

type weeksDataMsg struct {
	rows []analysis.WeeklyRow
	err  error
}

// Update handles messages
func (m WeeksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weeksDataMsg:
		m.loading = false
		m.err = msg.err
		m.rows = msg.rows
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the weekly stats table
func (m WeeksModel) View() string {
	if m.loading {
		return "\n  Loading weekly stats..."
	}

	if m.err != nil {
		if errors.Is(m.err, service.ErrNoData) {
			return "\n  No data yet. Press 's' to sync."
		}
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.rows) == 0 {
		return "\n  No complete weeks yet."
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Stats (%d weeks)", len(m.rows)))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-10s  %7s  %7s  %8s  %8s  %5s",
		"Week", "Through", "Avg RHR", "Avg HRV", "Training", "L2", "L2%"))

	var rows []string
	for _, w := range m.rows {
		row := fmt.Sprintf("%-10s  %-10s  %7s  %7s  %8s  %8s  %5s",
			w.WeekStart.Format("2006-01-02"),
			w.WeekEnd.Format("2006-01-02"),
			formatOptFloat(w.AvgRHR, 1),
			formatOptFloat(w.AvgHRV, 1),
			formatHours(w.TotalTrainingHours),
			formatHours(w.L2Hours),
			formatPct(w.L2Percentage),
		)
		rows = append(rows, tableRowStyle.Render(row))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
	help := statusStyle.Render("Press 'r' to refresh, '3' for correlations")

	return lipgloss.JoinVertical(lipgloss.Left, title, cardStyle.Render(table), help)
}
