package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

// Palette colours the interactive progress bar.
type Palette struct {
	Primary   string // hex, e.g. "#0083ff"
	Secondary string
	NoColor   bool
}

// ProgressBar reports the advance of a fixed number of steps.
type ProgressBar interface {
	// Increment advances the progress by n and redraws the bar.
	Increment(n int)
	// SetTitle changes the label shown next to the bar.
	SetTitle(title string)
	// Done completes the bar at 100%.
	Done()
}

// Progress creates progress bars. In headless mode bars print plain log
// lines; otherwise each step renders a gradient bar.
type Progress struct {
	palette  Palette
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to w.
func NewProgress(w io.Writer, palette Palette, hm *HeadlessManager) *Progress {
	if hm == nil {
		hm = NewHeadlessManager()
	}
	return &Progress{palette: palette, headless: hm, writer: w}
}

// Start creates a determinate progress bar with the given total.
func (p *Progress) Start(title string, total int) ProgressBar {
	bar := &stepBar{title: title, total: total, writer: p.writer}
	if !p.headless.IsHeadless() && !p.palette.NoColor {
		m := progress.New(progress.WithDefaultGradient(), progress.WithWidth(24), progress.WithoutPercentage())
		if p.palette.Primary != "" && p.palette.Secondary != "" {
			m = progress.New(
				progress.WithGradient(p.palette.Secondary, p.palette.Primary),
				progress.WithWidth(24),
				progress.WithoutPercentage(),
			)
		}
		bar.bar = &m
	}
	return bar
}

// stepBar writes one line per step. The bubbles model is only used to
// render the bar, there is no event loop.
type stepBar struct {
	bar     *progress.Model // nil in headless mode
	title   string
	total   int
	current int
	writer  io.Writer
	done    bool
}

func (b *stepBar) Increment(n int) {
	if b.done {
		return
	}
	b.current = min(b.current+n, b.total)
	b.render()
}

func (b *stepBar) SetTitle(title string) {
	b.title = title
}

func (b *stepBar) Done() {
	if b.done {
		return
	}
	b.current = b.total
	b.render()
	b.done = true
}

func (b *stepBar) render() {
	if b.bar == nil {
		_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
		return
	}
	pct := 0.0
	if b.total > 0 {
		pct = float64(b.current) / float64(b.total)
	}
	_, _ = fmt.Fprintf(b.writer, "%s [%d/%d] %s\n", b.bar.ViewAs(pct), b.current, b.total, b.title)
}
