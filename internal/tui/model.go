// Package tui is the dashboard's presentation layer: a bubbletea program
// whose panels are fed by the scheduler through presenter messages.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/calculator"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/config"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// Controller is the scheduler surface the UI drives when the user changes
// an input. The core never holds UI handles; the UI holds this instead.
type Controller interface {
	SetSymbol(symbol string)
	SetInterval(iv model.Interval)
	SetAlertThreshold(threshold float64)
	Reschedule(refreshSeconds int) error
	RunNow()
}

// panelFocus identifies which panel receives key input.
type panelFocus int

const (
	focusMetrics panelFocus = iota
	focusChart
	focusNews
	focusFundamentals
	focusControls
	focusCount
)

// Model is the root TUI model composing all dashboard panels.
type Model struct {
	controller Controller

	metricsPanel *MetricsPanel
	chartPanel   *ChartPanel
	newsPanel    *NewsPanel
	fundPanel    *FundamentalsPanel
	controls     *ControlsPanel

	focused panelFocus

	newsLine  string
	statusMsg string
	symbol    string
	interval  model.Interval

	width  int
	height int
	ready  bool
}

// NewModel creates the root model pre-filled from config.
func NewModel(cfg *config.Config, controller Controller) *Model {
	return &Model{
		controller:   controller,
		metricsPanel: NewMetricsPanel(),
		chartPanel:   NewChartPanel(),
		newsPanel:    NewNewsPanel(),
		fundPanel:    NewFundamentalsPanel(),
		controls:     NewControlsPanel(cfg),
		focused:      focusControls,
		symbol:       cfg.Ticker,
		interval:     cfg.ParsedInterval(),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.metricsPanel.Init(),
		m.chartPanel.Init(),
		m.newsPanel.Init(),
		m.fundPanel.Init(),
		m.controls.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// "q" types into the controls panel, quits elsewhere.
			if m.focused != focusControls {
				return m, tea.Quit
			}
		case "tab":
			m.focused = (m.focused + 1) % focusCount
		case "shift+tab":
			m.focused--
			if m.focused < 0 {
				m.focused = focusCount - 1
			}
		case "r":
			if m.focused != focusControls {
				m.statusMsg = "refreshing..."
				m.controller.RunNow()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case MetricsMsg:
		m.metricsPanel.SetInsights(msg.Insights)
		m.symbol = msg.Insights.Symbol
		m.statusMsg = ""

	case ChartMsg:
		m.chartPanel.SetSeries(msg.Series)
		m.interval = msg.Series.Interval
		if msg.Series.Len() > 0 {
			m.fundPanel.SetStats(calculator.Describe(msg.Series.Bars))
		}

	case FundamentalsMsg:
		m.fundPanel.SetSummary(msg.Summary)

	case NewsMsg:
		m.newsPanel.SetItems(msg.Items)
		m.newsLine = tickerStrip(msg.Items, m.width)

	case AlertMsg:
		m.metricsPanel.SetAlert(msg.Symbol, msg.Threshold)

	case NoticeMsg:
		if msg.Level == "error" {
			m.statusMsg = errorStyle.Render(msg.Text)
		} else {
			m.statusMsg = warningStyle.Render(msg.Text)
		}

	case ApplyControlsMsg:
		m.applyControls(msg)
	}

	m.updateFocusedPanel(msg, &cmds)
	return m, tea.Batch(cmds...)
}

// applyControls pushes new inputs into the scheduler and refreshes.
func (m *Model) applyControls(msg ApplyControlsMsg) {
	m.controller.SetSymbol(msg.Symbol)
	m.controller.SetInterval(msg.Interval)
	m.controller.SetAlertThreshold(msg.AlertThreshold)
	if err := m.controller.Reschedule(msg.RefreshSeconds); err != nil {
		m.statusMsg = errorStyle.Render(fmt.Sprintf("reschedule: %v", err))
		return
	}
	m.symbol = msg.Symbol
	m.interval = msg.Interval
	m.statusMsg = fmt.Sprintf("watching %s (%s), refresh every %ds", msg.Symbol, msg.Interval, msg.RefreshSeconds)
	m.controller.RunNow()
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd
	switch m.focused {
	case focusMetrics:
		m.metricsPanel, cmd = m.metricsPanel.Update(msg)
	case focusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case focusNews:
		m.newsPanel, cmd = m.newsPanel.Update(msg)
	case focusFundamentals:
		m.fundPanel, cmd = m.fundPanel.Update(msg)
	case focusControls:
		m.controls, cmd = m.controls.Update(msg)
	}
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	m.metricsPanel.SetFocus(m.focused == focusMetrics)
	m.chartPanel.SetFocus(m.focused == focusChart)
	m.newsPanel.SetFocus(m.focused == focusNews)
	m.fundPanel.SetFocus(m.focused == focusFundamentals)
	m.controls.SetFocus(m.focused == focusControls)

	// Layout:
	// ┌──────────────────────────────────────────────┐
	// │ header + news strip                          │
	// ├────────────┬─────────────────────────────────┤
	// │  Insights  │             Chart               │
	// ├────────────┴──────────┬───────────┬──────────┤
	// │        News           │ Fundament │ Controls │
	// └───────────────────────┴───────────┴──────────┘

	header := titleStyle.Render(fmt.Sprintf("📈 Real-Time Stock Dashboard: %s (%s)", m.symbol, m.interval))

	strip := m.newsLine
	if strip == "" {
		strip = mutedStyle.Render("No news found.")
	}

	topHeight := (m.height - 5) * 3 / 5
	bottomHeight := m.height - 5 - topHeight

	leftWidth := m.width / 4
	if leftWidth < 30 {
		leftWidth = 30
	}
	m.metricsPanel.SetSize(leftWidth, topHeight)
	m.chartPanel.SetSize(m.width-leftWidth, topHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.metricsPanel.View(),
		m.chartPanel.View(),
	)

	newsWidth := m.width * 2 / 5
	fundWidth := (m.width - newsWidth) / 2
	controlsWidth := m.width - newsWidth - fundWidth
	m.newsPanel.SetSize(newsWidth, bottomHeight)
	m.fundPanel.SetSize(fundWidth, bottomHeight)
	m.controls.SetSize(controlsWidth, bottomHeight)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.newsPanel.View(),
		m.fundPanel.View(),
		m.controls.View(),
	)

	statusBar := statusBarStyle.Render(
		statusKeyStyle.Render("tab") + " focus  " +
			statusKeyStyle.Render("r") + " refresh  " +
			statusKeyStyle.Render("q") + " quit   " +
			m.statusMsg)

	return lipgloss.JoinVertical(lipgloss.Left, header, strip, topRow, bottomRow, statusBar)
}
