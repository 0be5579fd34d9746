package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/config"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// controlsField identifies the focused input row.
type controlsField int

const (
	fieldTicker controlsField = iota
	fieldInterval
	fieldRefresh
	fieldThreshold
	fieldCount
)

// ApplyControlsMsg is emitted when the user confirms the control values.
type ApplyControlsMsg struct {
	Symbol         string
	Interval       model.Interval
	RefreshSeconds int
	AlertThreshold float64
}

// ControlsPanel edits the dashboard inputs: ticker, interval, refresh
// period, and the price-alert threshold.
type ControlsPanel struct {
	tickerInput    textinput.Model
	refreshInput   textinput.Model
	thresholdInput textinput.Model
	intervalIdx    int

	field   controlsField
	errText string

	focused bool
	width   int
	height  int
}

// NewControlsPanel creates the controls panel pre-filled from config.
func NewControlsPanel(cfg *config.Config) *ControlsPanel {
	ticker := textinput.New()
	ticker.Placeholder = "MSFT"
	ticker.CharLimit = 10
	ticker.SetValue(cfg.Ticker)

	refresh := textinput.New()
	refresh.Placeholder = "15"
	refresh.CharLimit = 3
	refresh.SetValue(strconv.Itoa(cfg.RefreshSeconds))

	threshold := textinput.New()
	threshold.Placeholder = "0"
	threshold.CharLimit = 12
	threshold.SetValue(strconv.FormatFloat(cfg.AlertThreshold, 'f', -1, 64))

	intervalIdx := 0
	for i, iv := range model.Intervals {
		if string(iv) == cfg.Interval {
			intervalIdx = i
		}
	}

	p := &ControlsPanel{
		tickerInput:    ticker,
		refreshInput:   refresh,
		thresholdInput: threshold,
		intervalIdx:    intervalIdx,
	}
	p.syncInputFocus()
	return p
}

// Init initializes the panel.
func (p *ControlsPanel) Init() tea.Cmd { return textinput.Blink }

// Update handles messages for the panel.
func (p *ControlsPanel) Update(msg tea.Msg) (*ControlsPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up"))):
		p.field--
		if p.field < 0 {
			p.field = fieldCount - 1
		}
		p.syncInputFocus()
		return p, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down"))):
		p.field = (p.field + 1) % fieldCount
		p.syncInputFocus()
		return p, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "right"))):
		if p.field == fieldInterval {
			if keyMsg.String() == "left" {
				p.intervalIdx--
				if p.intervalIdx < 0 {
					p.intervalIdx = len(model.Intervals) - 1
				}
			} else {
				p.intervalIdx = (p.intervalIdx + 1) % len(model.Intervals)
			}
			return p, nil
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		return p, p.apply()
	}

	// Route typing to the active text input.
	var cmd tea.Cmd
	switch p.field {
	case fieldTicker:
		p.tickerInput, cmd = p.tickerInput.Update(msg)
	case fieldRefresh:
		p.refreshInput, cmd = p.refreshInput.Update(msg)
	case fieldThreshold:
		p.thresholdInput, cmd = p.thresholdInput.Update(msg)
	}
	return p, cmd
}

// apply validates the inputs and emits ApplyControlsMsg, or records an
// inline error and emits nothing.
func (p *ControlsPanel) apply() tea.Cmd {
	p.errText = ""

	symbol := strings.ToUpper(strings.TrimSpace(p.tickerInput.Value()))
	if symbol == "" {
		p.errText = "ticker must not be empty"
		return nil
	}

	refresh, err := strconv.Atoi(strings.TrimSpace(p.refreshInput.Value()))
	if err != nil {
		p.errText = "refresh must be a number of seconds"
		return nil
	}
	if refresh < config.MinRefreshSeconds {
		refresh = config.MinRefreshSeconds
	}
	if refresh > config.MaxRefreshSeconds {
		refresh = config.MaxRefreshSeconds
	}
	p.refreshInput.SetValue(strconv.Itoa(refresh))

	thresholdText := strings.TrimSpace(p.thresholdInput.Value())
	threshold := 0.0
	if thresholdText != "" {
		threshold, err = strconv.ParseFloat(thresholdText, 64)
		if err != nil || threshold < 0 {
			p.errText = "alert threshold must be a non-negative price"
			return nil
		}
	}

	msg := ApplyControlsMsg{
		Symbol:         symbol,
		Interval:       model.Intervals[p.intervalIdx],
		RefreshSeconds: refresh,
		AlertThreshold: threshold,
	}
	return func() tea.Msg { return msg }
}

// syncInputFocus moves textinput focus to the active field.
func (p *ControlsPanel) syncInputFocus() {
	p.tickerInput.Blur()
	p.refreshInput.Blur()
	p.thresholdInput.Blur()
	if !p.focused {
		return
	}
	switch p.field {
	case fieldTicker:
		p.tickerInput.Focus()
	case fieldRefresh:
		p.refreshInput.Focus()
	case fieldThreshold:
		p.thresholdInput.Focus()
	}
}

// SetFocus sets the focus state of the panel.
func (p *ControlsPanel) SetFocus(focused bool) {
	p.focused = focused
	p.syncInputFocus()
}

// SetSize sets the panel dimensions.
func (p *ControlsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the panel.
func (p *ControlsPanel) View() string {
	var content strings.Builder

	row := func(f controlsField, label, value string) {
		marker := "  "
		if p.focused && p.field == f {
			marker = statusKeyStyle.Render("> ")
		}
		content.WriteString(marker)
		content.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		content.WriteString(value)
		content.WriteString("\n")
	}

	row(fieldTicker, "Ticker", p.tickerInput.View())

	var ivParts []string
	for i, iv := range model.Intervals {
		s := string(iv)
		if i == p.intervalIdx {
			s = selectedRowStyle.Render(s)
		} else {
			s = mutedStyle.Render(s)
		}
		ivParts = append(ivParts, s)
	}
	row(fieldInterval, "Interval", strings.Join(ivParts, " "))

	row(fieldRefresh, "Refresh (s)", p.refreshInput.View())
	row(fieldThreshold, "Price Alert", p.thresholdInput.View())

	content.WriteString("\n")
	if p.errText != "" {
		content.WriteString(errorStyle.Render(p.errText))
	} else {
		content.WriteString(mutedStyle.Render("enter: apply  ↑/↓: field  ←/→: interval"))
	}

	style := panelStyle
	if p.focused {
		style = focusedPanelStyle
	}
	title := renderTitle("Controls", p.focused)
	return style.Width(p.width - 2).Height(p.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content.String()))
}
