package tui

import (
	"errors"
	"fmt"

	"zone2/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CorrelationsModel is the correlations screen model
type CorrelationsModel struct {
	queryService *service.QueryService
	data         *service.CorrelationData
	loading      bool
	err          error
}

// NewCorrelationsModel creates a new correlations model
func NewCorrelationsModel(qs *service.QueryService) CorrelationsModel {
	return CorrelationsModel{queryService: qs}
}

// Init initializes the correlations screen
func (m CorrelationsModel) Init() tea.Cmd {
	return m.loadData
}

func (m CorrelationsModel) loadData() tea.Msg {
	data, err := m.queryService.GetCorrelations()
	return correlationsDataMsg{data: data, err: err}
}

type correlationsDataMsg struct {
	data *service.CorrelationData
	err  error
}

// Update handles messages
func (m CorrelationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case correlationsDataMsg:
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

// View renders the correlation and trend analyses
func (m CorrelationsModel) View() string {
	if m.loading {
		return "\n  Analyzing..."
	}

	if m.err != nil {
		if errors.Is(m.err, service.ErrNoData) {
			return "\n  No data yet. Press 's' to sync."
		}
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil {
		return "\n  Nothing to analyze yet."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Correlation Analysis (%d weeks)", m.data.WeeksAnalyzed))
	sections = append(sections, title)

	sections = append(sections, m.renderSection("L2 Training and HRV", m.data.HRV.Message, m.data.HRV.Significant))
	sections = append(sections, m.renderSection("L2 Training and RHR", m.data.RHR.Message, m.data.RHR.Significant))

	laggedSignificant := (m.data.Lagged.HRV != nil && m.data.Lagged.HRV.Significant) ||
		(m.data.Lagged.RHR != nil && m.data.Lagged.RHR.Significant)
	sections = append(sections, m.renderSection("Lagged Correlation (1-Week Delay)", m.data.Lagged.Message, laggedSignificant))

	sections = append(sections, m.renderSection("Long-Term Trend", m.data.Trend.Message, false))

	help := statusStyle.Render("Press 'r' to refresh, '4' for the full report")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CorrelationsModel) renderSection(title, body string, highlight bool) string {
	head := sectionTitleStyle.Render(title)
	if highlight {
		head += "  " + successStyle.Render("significant")
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}
