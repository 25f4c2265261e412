// Package climod supplies a terminal spinner for long-running
// subcommands; command dispatch itself is handled directly by the
// github.com/midbel/cli module.
package climod

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Spinner renders progress for a batch of Moebius sources being
// parsed concurrently: a spinning frame plus a "done/total" counter
// that advances as each source finishes, rather than a single static
// message printed once at the start.
type Spinner struct {
	frames []string
	label  string
	total  int32
	done   int32

	mu      sync.Mutex
	running bool

	stop   sync.Once
	ticker *time.Ticker
	quit   chan struct{}
}

// NewSpinner prepares a spinner for a batch of total sources, labeled
// with label (e.g. "parsing", "running").
func NewSpinner(label string, total int) *Spinner {
	return &Spinner{
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		label:  label,
		total:  int32(total),
		ticker: time.NewTicker(time.Millisecond * 90),
		quit:   make(chan struct{}),
	}
}

// Advance reports that one more source in the batch has finished;
// safe to call concurrently from the goroutines lang.Batch spawns.
func (s *Spinner) Advance() {
	atomic.AddInt32(&s.done, 1)
}

// Run starts the spinner, calls fn, and stops the spinner once fn
// returns, regardless of how fn exits.
func (s *Spinner) Run(fn func()) {
	s.Start()
	defer s.Stop()
	fn()
}

func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.quit)
		s.ticker.Stop()
		clearLine()
	})
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.run()
}

func (s *Spinner) run() {
	for i := 0; ; i++ {
		select {
		case <-s.ticker.C:
			f := s.frames[i%len(s.frames)]
			done := atomic.LoadInt32(&s.done)
			io.WriteString(os.Stdout, fmt.Sprintf("\r%s %s (%d/%d)", f, s.label, done, s.total))
		case <-s.quit:
			return
		}
	}
}

func clearLine() {
	io.WriteString(os.Stdout, "\x1b[0G\x1b[2K\x1b[0G")
}
