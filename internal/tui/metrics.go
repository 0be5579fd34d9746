package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// MetricsPanel displays the key insights: price, day change, volume,
// 52-week range, trend, and the price alert when it fires.
type MetricsPanel struct {
	insights *model.Insights
	alert    string

	focused bool
	width   int
	height  int
}

// NewMetricsPanel creates the metrics panel.
func NewMetricsPanel() *MetricsPanel {
	return &MetricsPanel{}
}

// Init initializes the panel.
func (p *MetricsPanel) Init() tea.Cmd { return nil }

// Update handles messages for the panel.
func (p *MetricsPanel) Update(msg tea.Msg) (*MetricsPanel, tea.Cmd) {
	return p, nil
}

// SetInsights replaces the displayed snapshot and clears the previous
// tick's alert (the alert re-fires each tick the condition holds).
func (p *MetricsPanel) SetInsights(ins *model.Insights) {
	p.insights = ins
	p.alert = ""
}

// SetAlert shows the crossed-threshold banner for this tick.
func (p *MetricsPanel) SetAlert(symbol string, threshold float64) {
	p.alert = fmt.Sprintf("🚨 %s crossed your target price of %.2f!", symbol, threshold)
}

// SetFocus sets the focus state of the panel.
func (p *MetricsPanel) SetFocus(focused bool) { p.focused = focused }

// SetSize sets the panel dimensions.
func (p *MetricsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel.
func (p *MetricsPanel) View() string {
	var content strings.Builder

	if p.insights == nil {
		content.WriteString(mutedStyle.Render("Waiting for data..."))
	} else {
		ins := p.insights

		changeStyle := neutralStyle
		if ins.DayChangePct > 0 {
			changeStyle = upStyle
		} else if ins.DayChangePct < 0 {
			changeStyle = downStyle
		}

		var trendStyled string
		switch ins.Trend {
		case model.TrendUp:
			trendStyled = upStyle.Render(string(ins.Trend) + " ▲")
		case model.TrendDown:
			trendStyled = downStyle.Render(string(ins.Trend) + " ▼")
		default:
			trendStyled = neutralStyle.Render(string(ins.Trend))
		}

		row := func(label, value string) {
			content.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", label)))
			content.WriteString(value)
			content.WriteString("\n")
		}
		row("Current Price", valueStyle.Render(fmt.Sprintf("$%.2f", ins.CurrentPrice)))
		row("Day Change", changeStyle.Render(fmt.Sprintf("%+.2f%%", ins.DayChangePct)))
		row("Volume", valueStyle.Render(formatVolume(ins.Volume)))
		row("52 Week High", valueStyle.Render(formatOptionalPrice(ins.High52w)))
		row("52 Week Low", valueStyle.Render(formatOptionalPrice(ins.Low52w)))
		row("Trend", trendStyled)

		if p.alert != "" {
			content.WriteString("\n")
			content.WriteString(alertStyle.Render(p.alert))
		}
	}

	style := panelStyle
	if p.focused {
		style = focusedPanelStyle
	}
	title := renderTitle("Key Insights", p.focused)
	return style.Width(p.width - 2).Height(p.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content.String()))
}

// formatVolume renders a share count with thousands separators.
func formatVolume(v float64) string {
	n := int64(v)
	if n < 0 {
		n = 0
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatOptionalPrice renders a price, or N/A when the provider omitted it.
func formatOptionalPrice(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f", v)
}
