package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// Item cap mirrors the original dashboard's "top news" cut.
const maxNewsShown = 10

// NewsPanel displays the classified headlines for the watched symbol.
type NewsPanel struct {
	items         []model.NewsItem
	selectedIndex int
	scrollOffset  int

	focused bool
	width   int
	height  int
}

// NewNewsPanel creates the news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd { return nil }

// Update handles messages for the panel.
func (p *NewsPanel) Update(msg tea.Msg) (*NewsPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.items)-1 {
				p.selectedIndex++
				visible := p.visibleItems()
				if p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		}
	}
	return p, nil
}

// SetItems replaces the headline list with this tick's batch.
func (p *NewsPanel) SetItems(items []model.NewsItem) {
	if len(items) > maxNewsShown {
		items = items[:maxNewsShown]
	}
	p.items = items
	if p.selectedIndex >= len(items) {
		p.selectedIndex = len(items) - 1
		if p.selectedIndex < 0 {
			p.selectedIndex = 0
		}
	}
	if p.scrollOffset > p.selectedIndex {
		p.scrollOffset = p.selectedIndex
	}
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) { p.focused = focused }

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *NewsPanel) visibleItems() int {
	// Title, borders, selected-item detail line.
	v := p.height - 6
	if v < 1 {
		v = 1
	}
	return v
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder

	if len(p.items) == 0 {
		content.WriteString(mutedStyle.Render("No recent news found."))
	} else {
		visible := p.visibleItems()
		start := p.scrollOffset
		end := start + visible
		if end > len(p.items) {
			end = len(p.items)
		}

		for i := start; i < end; i++ {
			item := p.items[i]

			headline := item.Title
			maxLen := p.width - 10
			if maxLen > 3 && len(headline) > maxLen {
				headline = headline[:maxLen-3] + "..."
			}

			line := fmt.Sprintf("%s %s", sentimentDot(item.Sentiment), headline)
			if i == p.selectedIndex && p.focused {
				line = selectedRowStyle.Render(line)
			}
			content.WriteString(line)
			content.WriteString("\n")
		}

		// Detail line for the selected item.
		sel := p.items[p.selectedIndex]
		detail := fmt.Sprintf("Publisher: %s", orUnknown(sel.Publisher))
		if !sel.PublishedAt.IsZero() {
			detail += ", " + sel.PublishedAt.Format("2006-01-02 15:04")
		}
		content.WriteString(mutedStyle.Render(detail))

		if len(p.items) > visible {
			content.WriteString(mutedStyle.Render(fmt.Sprintf("  (%d/%d)", p.selectedIndex+1, len(p.items))))
		}
	}

	style := panelStyle
	if p.focused {
		style = focusedPanelStyle
	}
	title := renderTitle("Top News", p.focused)
	return style.Width(p.width - 2).Height(p.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content.String()))
}

// sentimentDot renders the colored sentiment marker for a headline.
func sentimentDot(s model.Sentiment) string {
	switch s {
	case model.SentimentPositive:
		return upStyle.Render("●")
	case model.SentimentNegative:
		return downStyle.Render("●")
	}
	return neutralStyle.Render("●")
}

// tickerStrip joins the first headlines into the one-line scroller shown
// above the panels.
func tickerStrip(items []model.NewsItem, width int) string {
	if len(items) == 0 {
		return mutedStyle.Render("No news found.")
	}
	n := len(items)
	if n > 5 {
		n = 5
	}
	parts := make([]string, 0, n)
	for _, item := range items[:n] {
		parts = append(parts, fmt.Sprintf("%s %s", sentimentDot(item.Sentiment), item.Title))
	}
	strip := strings.Join(parts, mutedStyle.Render("  |  "))
	return lipgloss.NewStyle().MaxWidth(width).Render(strip)
}
