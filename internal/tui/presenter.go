package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// Messages delivered into the TUI event loop, one per presenter call.
type (
	// MetricsMsg carries the tick's insights snapshot.
	MetricsMsg struct{ Insights *model.Insights }
	// ChartMsg carries the enriched series.
	ChartMsg struct{ Series *model.Series }
	// FundamentalsMsg carries the symbol summary.
	FundamentalsMsg struct{ Summary *model.Summary }
	// NewsMsg carries the filtered, classified headlines.
	NewsMsg struct{ Items []model.NewsItem }
	// AlertMsg signals that the price alert fired this tick.
	AlertMsg struct {
		Symbol    string
		Threshold float64
		Price     float64
	}
	// NoticeMsg carries a tick-level warning or error line.
	NoticeMsg struct {
		Level string // "warning" or "error"
		Text  string
	}
)

// sender is the part of *tea.Program the presenter needs.
type sender interface {
	Send(msg tea.Msg)
}

// ProgramPresenter implements scheduler.Presenter by forwarding each call
// as a message into the running bubbletea program. It is created empty and
// attached to the program once it exists, which breaks the construction
// cycle between scheduler (needs presenter) and UI model (needs scheduler).
type ProgramPresenter struct {
	prog sender
}

// NewProgramPresenter creates an unattached presenter. Calls before Attach
// are dropped.
func NewProgramPresenter() *ProgramPresenter {
	return &ProgramPresenter{}
}

// Attach binds the presenter to the program. Must happen before the
// scheduler starts.
func (p *ProgramPresenter) Attach(prog sender) { p.prog = prog }

func (p *ProgramPresenter) send(msg tea.Msg) {
	if p.prog != nil {
		p.prog.Send(msg)
	}
}

func (p *ProgramPresenter) UpdateMetrics(ins *model.Insights) {
	p.send(MetricsMsg{Insights: ins})
}

func (p *ProgramPresenter) RenderChart(s *model.Series) {
	p.send(ChartMsg{Series: s})
}

func (p *ProgramPresenter) RenderFundamentals(sum *model.Summary) {
	p.send(FundamentalsMsg{Summary: sum})
}

func (p *ProgramPresenter) RenderNews(items []model.NewsItem) {
	p.send(NewsMsg{Items: items})
}

func (p *ProgramPresenter) ShowAlert(symbol string, threshold, price float64) {
	p.send(AlertMsg{Symbol: symbol, Threshold: threshold, Price: price})
}

func (p *ProgramPresenter) ShowWarning(msg string) {
	p.send(NoticeMsg{Level: "warning", Text: msg})
}

func (p *ProgramPresenter) ShowError(msg string) {
	p.send(NoticeMsg{Level: "error", Text: msg})
}
