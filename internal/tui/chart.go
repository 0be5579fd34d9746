package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// ChartPanel displays the session's candlestick chart with the MA20/MA50
// overlays and a volume strip.
type ChartPanel struct {
	series *model.Series

	focused bool
	width   int
	height  int
}

// NewChartPanel creates the chart panel.
func NewChartPanel() *ChartPanel {
	return &ChartPanel{}
}

// Init initializes the panel.
func (p *ChartPanel) Init() tea.Cmd { return nil }

// Update handles messages for the panel.
func (p *ChartPanel) Update(msg tea.Msg) (*ChartPanel, tea.Cmd) {
	return p, nil
}

// SetSeries replaces the charted series.
func (p *ChartPanel) SetSeries(s *model.Series) {
	p.series = s
}

// SetFocus sets the focus state of the panel.
func (p *ChartPanel) SetFocus(focused bool) { p.focused = focused }

// SetSize sets the panel dimensions.
func (p *ChartPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel.
func (p *ChartPanel) View() string {
	titleText := "Chart"
	if p.series != nil {
		titleText = fmt.Sprintf("Chart: %s (%s)", p.series.Symbol, p.series.Interval)
	}

	var content strings.Builder
	if p.series == nil || p.series.Len() == 0 {
		content.WriteString(mutedStyle.Render("Waiting for data..."))
	} else {
		legend := lipgloss.JoinHorizontal(lipgloss.Top,
			ma20Style.Render("· MA20"), "  ", ma50Style.Render("× MA50"))
		content.WriteString(legend)
		content.WriteString("\n")
		content.WriteString(p.renderChart(p.width-4, p.height-7))
	}

	style := panelStyle
	if p.focused {
		style = focusedPanelStyle
	}
	title := renderTitle(titleText, p.focused)
	return style.Width(p.width - 2).Height(p.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content.String()))
}

func (p *ChartPanel) renderChart(width, height int) string {
	bars := p.series.Bars

	// Price axis takes 9 columns, each candle column takes 2 (candle + gap).
	chartWidth := width - 10
	if chartWidth < 10 {
		chartWidth = 10
	}
	show := chartWidth / 2
	if show < 1 {
		show = 1
	}
	offset := 0
	if len(bars) > show {
		offset = len(bars) - show
	}
	display := bars[offset:]

	// Price range over the visible window, padded 5% each side.
	minPrice, maxPrice := display[0].Low, display[0].High
	for _, b := range display {
		if b.Low < minPrice {
			minPrice = b.Low
		}
		if b.High > maxPrice {
			maxPrice = b.High
		}
	}
	span := maxPrice - minPrice
	if span == 0 {
		span = 1
	}
	minPrice -= span * 0.05
	maxPrice += span * 0.05

	// Rows: chart body + separator + volume strip + time axis.
	chartHeight := height - 3
	if chartHeight < 5 {
		chartHeight = 5
	}

	var b strings.Builder
	for row := 0; row < chartHeight; row++ {
		price := p.rowPrice(row, minPrice, maxPrice, chartHeight)
		b.WriteString(chartAxisStyle.Render(fmt.Sprintf("%8.2f │", price)))

		for i, bar := range display {
			cell := p.candleChar(bar, row, minPrice, maxPrice, chartHeight)
			cell = p.overlayMA(cell, offset+i, row, minPrice, maxPrice, chartHeight)
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	// Separator
	b.WriteString(chartAxisStyle.Render("─────────┼"))
	for range display {
		b.WriteString(chartAxisStyle.Render("──"))
	}
	b.WriteString("\n")

	// Volume strip
	b.WriteString(chartAxisStyle.Render("  volume │"))
	maxVol := 0.0
	for _, bar := range display {
		if bar.Volume > maxVol {
			maxVol = bar.Volume
		}
	}
	blocks := []rune(" ▁▂▃▄▅▆▇█")
	for _, bar := range display {
		idx := 0
		if maxVol > 0 {
			idx = int(bar.Volume / maxVol * float64(len(blocks)-1))
		}
		b.WriteString(volumeStyle.Render(string(blocks[idx])))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	// Time axis: a label every sixth candle, laid into a fixed-width row.
	axis := make([]rune, len(display)*2)
	for i := range axis {
		axis[i] = ' '
	}
	for i := 0; i < len(display); i += 6 {
		label := []rune(display[i].Time.Format("15:04"))
		pos := i * 2
		if pos+len(label) > len(axis) {
			break
		}
		copy(axis[pos:], label)
	}
	b.WriteString(chartAxisStyle.Render("          " + string(axis)))

	return b.String()
}

// candleChar returns the styled cell for a candle at a chart row.
func (p *ChartPanel) candleChar(bar model.Bar, row int, minPrice, maxPrice float64, height int) string {
	rowPrice := p.rowPrice(row, minPrice, maxPrice, height)
	tolerance := (maxPrice - minPrice) / float64(height*2)

	bodyTop, bodyBottom := bar.Open, bar.Close
	if bar.Close > bar.Open {
		bodyTop, bodyBottom = bar.Close, bar.Open
	}

	style := candleDownStyle
	if bar.Close >= bar.Open {
		style = candleUpStyle
	}

	switch {
	case rowPrice <= bodyTop+tolerance && rowPrice >= bodyBottom-tolerance:
		return style.Render("┃")
	case rowPrice <= bar.High+tolerance && rowPrice > bodyTop:
		return style.Render("│")
	case rowPrice >= bar.Low-tolerance && rowPrice < bodyBottom:
		return style.Render("│")
	}
	return " "
}

// overlayMA draws the moving-average markers into empty cells.
func (p *ChartPanel) overlayMA(cell string, barIdx, row int, minPrice, maxPrice float64, height int) string {
	if cell != " " {
		return cell
	}
	if v, ok := p.series.MA20.At(barIdx); ok && p.priceRow(v, minPrice, maxPrice, height) == row {
		return ma20Style.Render("·")
	}
	if v, ok := p.series.MA50.At(barIdx); ok && p.priceRow(v, minPrice, maxPrice, height) == row {
		return ma50Style.Render("×")
	}
	return cell
}

func (p *ChartPanel) rowPrice(row int, minPrice, maxPrice float64, height int) float64 {
	if height <= 1 {
		return minPrice
	}
	ratio := float64(row) / float64(height-1)
	return maxPrice - ratio*(maxPrice-minPrice)
}

func (p *ChartPanel) priceRow(price, minPrice, maxPrice float64, height int) int {
	if maxPrice == minPrice {
		return height / 2
	}
	ratio := (maxPrice - price) / (maxPrice - minPrice)
	row := int(ratio * float64(height-1))
	if row < 0 {
		row = 0
	}
	if row >= height {
		row = height - 1
	}
	return row
}
