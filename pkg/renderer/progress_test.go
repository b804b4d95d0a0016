package renderer

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"
)

// recordingLogger collects log lines; safe for concurrent use
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func TestProgress_Fraction(t *testing.T) {
	p := NewProgress(4, time.Second)
	p.Complete()

	report := p.Report(p.start.Add(time.Second))
	if report.Completed != 1 || report.Total != 4 {
		t.Errorf("Expected 1/4, got %d/%d", report.Completed, report.Total)
	}
	if report.Fraction() != 0.25 {
		t.Errorf("Expected fraction 0.25, got %f", report.Fraction())
	}
	if report.Elapsed != time.Second {
		t.Errorf("Expected elapsed 1s, got %v", report.Elapsed)
	}
	// 1 unit per second with 3 to go
	if report.Remaining != 3*time.Second {
		t.Errorf("Expected first estimate of 3s, got %v", report.Remaining)
	}
}

func TestProgress_NoEstimateBeforeFirstUnitOrAfterLast(t *testing.T) {
	p := NewProgress(2, time.Second)

	if r := p.Report(p.start.Add(5 * time.Second)); r.Remaining != 0 {
		t.Errorf("Expected no estimate before any unit finished, got %v", r.Remaining)
	}

	p.Complete()
	p.Complete()
	r := p.Report(p.start.Add(5 * time.Second))
	if r.Remaining != 0 || r.Fraction() != 1 {
		t.Errorf("Expected finished render with nothing remaining, got %+v", r)
	}
}

func TestProgress_SmoothsEstimate(t *testing.T) {
	p := NewProgress(10, time.Second)
	for i := 0; i < 5; i++ {
		p.Complete()
	}

	// Raw estimate: 10s elapsed for 5 units, 5 to go
	first := p.Report(p.start.Add(10 * time.Second)).Remaining.Seconds()
	if math.Abs(first-10) > 1e-6 {
		t.Fatalf("Expected first estimate 10s, got %f", first)
	}

	// Raw estimate drops to 12s * 4/6 = 8s; the spring approaches it without jumping
	p.Complete()
	now := p.start.Add(12 * time.Second)
	second := p.Report(now).Remaining.Seconds()
	if second <= 8 || second >= 10 {
		t.Errorf("Expected smoothed estimate strictly between 8s and 10s, got %f", second)
	}

	var last float64
	for i := 0; i < 20; i++ {
		last = p.Report(now).Remaining.Seconds()
	}
	if math.Abs(last-8) > 0.05 {
		t.Errorf("Expected estimate to settle at 8s, got %f", last)
	}
}

func TestProgress_RunLogs(t *testing.T) {
	p := NewProgress(3, time.Millisecond)
	p.Complete()
	logger := &recordingLogger{}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		p.Run(logger, time.Millisecond, stop)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for len(logger.Lines()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	close(stop)
	<-done

	lines := logger.Lines()
	if len(lines) == 0 {
		t.Fatal("Expected at least one progress line")
	}
	if !strings.Contains(lines[0], "1/3 segments") {
		t.Errorf("Unexpected progress line %q", lines[0])
	}
}
