package tui

import (
	"errors"
	"fmt"

	"zone2/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService) DashboardModel {
	return DashboardModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboardData()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		if errors.Is(m.err, service.ErrNoData) {
			return "\n  No data yet. Press 's' to sync."
		}
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  No data available. Press 's' to sync."
	}

	var sections []string

	recoveryCard := m.renderRecoveryCard()
	weekCard := m.renderWeekCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, recoveryCard, "  ", weekCard)
	sections = append(sections, topRow)

	if len(m.data.ChartHRV) > 2 {
		sections = append(sections, m.renderChart("Weekly Avg HRV (ms)", m.data.ChartHRV))
	}
	if len(m.data.ChartRHR) > 2 {
		sections = append(sections, m.renderChart("Weekly Avg RHR (bpm)", m.data.ChartRHR))
	}
	if len(m.data.ChartL2) > 2 {
		sections = append(sections, m.renderChart("Weekly L2 Hours", m.data.ChartL2))
	}

	sections = append(sections, m.renderRecentDays())

	help := statusStyle.Render("Press 'r' to refresh, 's' to sync, '2' for weekly stats")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderRecoveryCard() string {
	title := cardTitleStyle.Render("Recovery Markers")

	lines := []string{
		RenderMetric("Resting HR", formatOptInt(m.data.LatestRHR)+" bpm", ""),
		RenderMetric("HRV", formatOptFloat(m.data.LatestHRV, 0)+" ms", ""),
		"",
		statusStyle.Render(fmt.Sprintf("Data: %s to %s",
			m.data.Start.Format("Jan 2"), m.data.End.Format("Jan 2, 2006"))),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderWeekCard() string {
	title := cardTitleStyle.Render("This Week")

	lines := []string{
		RenderMetric("Training", formatHours(m.data.WeekTotalHours), ""),
		RenderMetric("L2 Volume", formatHours(m.data.WeekL2Hours), ""),
		RenderMetric("L2 Share", formatPct(m.data.WeekL2Pct), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(30).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart(title string, series []float64) string {
	graph := asciigraph.Plot(series,
		asciigraph.Height(6),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cardTitleStyle.Render(title), graph))
}

func (m DashboardModel) renderRecentDays() string {
	title := cardTitleStyle.Render("Recent Days")

	if len(m.data.RecentDays) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No days recorded yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %5s  %6s  %8s  %8s  %5s",
		"Date", "RHR", "HRV", "Training", "L2", "L2%"))

	var rows []string
	for _, d := range m.data.RecentDays {
		row := fmt.Sprintf("%-10s  %5s  %6s  %8s  %8s  %5s",
			d.Date.Format("2006-01-02"),
			formatOptFloat(d.RHR, 0),
			formatOptFloat(d.HRV, 0),
			formatHours(d.TotalDuration),
			formatHours(d.L2Duration),
			formatPct(d.L2Percentage),
		)
		rows = append(rows, tableRowStyle.Render(row))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
