package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/calculator"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// FundamentalsPanel displays company fundamentals and the session's
// descriptive statistics.
type FundamentalsPanel struct {
	summary *model.Summary
	stats   *calculator.SummaryStats

	focused bool
	width   int
	height  int
}

// NewFundamentalsPanel creates the fundamentals panel.
func NewFundamentalsPanel() *FundamentalsPanel {
	return &FundamentalsPanel{}
}

// Init initializes the panel.
func (p *FundamentalsPanel) Init() tea.Cmd { return nil }

// Update handles messages for the panel.
func (p *FundamentalsPanel) Update(msg tea.Msg) (*FundamentalsPanel, tea.Cmd) {
	return p, nil
}

// SetSummary replaces the displayed fundamentals.
func (p *FundamentalsPanel) SetSummary(sum *model.Summary) { p.summary = sum }

// SetStats replaces the session statistics table.
func (p *FundamentalsPanel) SetStats(st calculator.SummaryStats) { p.stats = &st }

// SetFocus sets the focus state of the panel.
func (p *FundamentalsPanel) SetFocus(focused bool) { p.focused = focused }

// SetSize sets the panel dimensions.
func (p *FundamentalsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel.
func (p *FundamentalsPanel) View() string {
	var content strings.Builder

	if p.summary == nil {
		content.WriteString(mutedStyle.Render("Waiting for data..."))
	} else {
		f := p.summary.Fundamentals
		row := func(label, value string) {
			content.WriteString(labelStyle.Render(fmt.Sprintf("%-15s", label)))
			content.WriteString(valueStyle.Render(value))
			content.WriteString("\n")
		}
		row("Previous Close", formatOptionalPrice(f.PreviousClose))
		row("Open", formatOptionalPrice(f.Open))
		row("Day Range", formatRange(f.DayLow, f.DayHigh))
		row("Market Cap", formatMarketCap(f.MarketCap))
		row("PE Ratio", formatOptionalNumber(f.PERatio))
		row("EPS", formatOptionalNumber(f.EPS))
		row("Dividend Yield", formatYield(f.DividendYield))
		row("Sector", orUnknown(f.Sector))
		row("Industry", orUnknown(f.Industry))
	}

	if p.stats != nil {
		content.WriteString("\n")
		content.WriteString(headerStyle.Render("Session Statistics"))
		content.WriteString("\n")
		content.WriteString(p.renderStats())
	}

	style := panelStyle
	if p.focused {
		style = focusedPanelStyle
	}
	title := renderTitle("Fundamentals", p.focused)
	return style.Width(p.width - 2).Height(p.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content.String()))
}

func (p *FundamentalsPanel) renderStats() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-7s %9s %9s %9s %9s", "", "mean", "std", "min", "max")))
	b.WriteString("\n")
	row := func(name string, st calculator.FieldStats) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s ", name)))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%9.2f %9.2f %9.2f %9.2f", st.Mean, st.Std, st.Min, st.Max)))
		b.WriteString("\n")
	}
	row("Open", p.stats.Open)
	row("High", p.stats.High)
	row("Low", p.stats.Low)
	row("Close", p.stats.Close)

	v := p.stats.Volume
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s ", "Volume")))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%9s %9s %9s %9s",
		compactNumber(v.Mean), compactNumber(v.Std), compactNumber(v.Min), compactNumber(v.Max))))
	return b.String()
}

func formatRange(low, high float64) string {
	if low == 0 && high == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f - %.2f", low, high)
}

func formatMarketCap(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return "$" + compactNumber(v)
}

func formatOptionalNumber(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatYield(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// compactNumber renders large values with a T/B/M/K suffix.
func compactNumber(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	}
	return fmt.Sprintf("%.0f", v)
}
