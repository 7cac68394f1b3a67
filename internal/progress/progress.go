package progress

import (
	"io"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// Tracker counts finished items of a bounded job. A Tracker built with a
// nil writer counts silently.
type Tracker struct {
	mu        sync.Mutex
	total     int
	current   int
	message   string
	startTime time.Time
	bar       *pterm.ProgressbarPrinter
}

func NewProgress(total int, message string, w io.Writer) *Tracker {
	p := &Tracker{
		total:     total,
		message:   message,
		startTime: time.Now(),
	}
	if w == nil || total <= 0 {
		return p
	}

	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(message).
		WithWriter(w).
		WithRemoveWhenDone(true).
		Start()
	if err == nil {
		p.bar = bar
	}
	return p
}

func (p *Tracker) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *Tracker) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Finish stops the bar and reports how long the job took.
func (p *Tracker) Finish() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
	return time.Since(p.startTime)
}
