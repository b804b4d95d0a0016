package renderer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/df07/go-pathtracer/pkg/core"
)

// etaFrequency is the spring's angular frequency; damping 1.0 is critically damped
const etaFrequency = 4.0

// ProgressReport is an advisory snapshot of a running render
type ProgressReport struct {
	Completed int
	Total     int
	Elapsed   time.Duration
	Remaining time.Duration // Smoothed estimate, 0 until the first unit finishes
}

// Fraction returns the completed share of work in [0,1]
func (pr ProgressReport) Fraction() float64 {
	if pr.Total == 0 {
		return 1
	}
	return float64(pr.Completed) / float64(pr.Total)
}

// Progress counts finished work units from any goroutine and estimates
// the time left. The raw estimate jumps around as segments of varying cost
// finish, so it is passed through a spring before being reported.
type Progress struct {
	total     int
	completed atomic.Int64
	start     time.Time

	mu        sync.Mutex
	spring    harmonica.Spring
	remaining float64 // seconds
	velocity  float64
	primed    bool
}

// NewProgress starts tracking total work units, expecting a report every interval
func NewProgress(total int, interval time.Duration) *Progress {
	if interval <= 0 {
		interval = time.Second
	}
	return &Progress{
		total:  total,
		start:  time.Now(),
		spring: harmonica.NewSpring(interval.Seconds(), etaFrequency, 1.0),
	}
}

// Complete records one finished unit
func (p *Progress) Complete() {
	p.completed.Add(1)
}

// Report returns the state of the render as of now
func (p *Progress) Report(now time.Time) ProgressReport {
	done := int(p.completed.Load())
	elapsed := now.Sub(p.start)

	report := ProgressReport{Completed: done, Total: p.total, Elapsed: elapsed}
	if done == 0 || done >= p.total {
		return report
	}

	raw := elapsed.Seconds() * float64(p.total-done) / float64(done)

	p.mu.Lock()
	if !p.primed {
		p.remaining = raw
		p.primed = true
	} else {
		p.remaining, p.velocity = p.spring.Update(p.remaining, p.velocity, raw)
	}
	remaining := max(0, p.remaining)
	p.mu.Unlock()

	report.Remaining = time.Duration(remaining * float64(time.Second))
	return report
}

// Run logs a report every interval until stop is closed
func (p *Progress) Run(logger core.Logger, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			report := p.Report(now)
			logger.Printf("Rendered %d/%d segments (%.1f%%), elapsed %v, remaining ~%v\n",
				report.Completed, report.Total, 100*report.Fraction(),
				report.Elapsed.Round(time.Second), report.Remaining.Round(time.Second))
		}
	}
}
