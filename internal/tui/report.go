package tui

import (
	"errors"
	"fmt"

	"zone2/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReportModel is the report screen model. The rendered markdown lives
// in a scrollable viewport; 'e' exports it to a file.
type ReportModel struct {
	queryService *service.QueryService
	viewport     viewport.Model
	report       string
	loading      bool
	err          error
	exportedTo   string
	exportErr    error
	ready        bool
}

// NewReportModel creates a new report model
func NewReportModel(qs *service.QueryService) ReportModel {
	return ReportModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the report screen
func (m ReportModel) Init() tea.Cmd {
	return m.loadData
}

func (m *ReportModel) setSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if !m.ready {
		m.viewport = viewport.New(width, height-8) // Reserve space for chrome
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height - 8
	}
	m.viewport.SetContent(m.report)
}

func (m ReportModel) loadData() tea.Msg {
	report, err := m.queryService.GetReport()
	return reportDataMsg{report: report, err: err}
}

type reportDataMsg struct {
	report string
	err    error
}

type reportExportedMsg struct {
	path string
	err  error
}

// Update handles messages
func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportDataMsg:
		m.loading = false
		m.err = msg.err
		m.report = msg.report
		if m.ready {
			m.viewport.SetContent(m.report)
		}

	case reportExportedMsg:
		m.exportedTo = msg.path
		m.exportErr = msg.err

	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			m.exportedTo = ""
			m.exportErr = nil
			return m, m.loadData
		case "e":
			return m, func() tea.Msg {
				path, err := m.queryService.ExportReport()
				return reportExportedMsg{path: path, err: err}
			}
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the report screen
func (m ReportModel) View() string {
	if m.loading {
		return "\n  Building report..."
	}

	if m.err != nil {
		if errors.Is(m.err, service.ErrNoData) {
			return "\n  No data yet. Press 's' to sync."
		}
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	body := m.report
	if m.ready {
		body = m.viewport.View()
	}

	footer := statusStyle.Render("j/k or arrows to scroll, 'e' to export, 'r' to refresh")
	if m.exportErr != nil {
		footer = errorStyle.Render(fmt.Sprintf("Export failed: %v", m.exportErr))
	} else if m.exportedTo != "" {
		footer = successStyle.Render("Exported to " + m.exportedTo)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
