package app

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lakshaymaurya-felt/tempcleaner/internal/worker"
)

// sender forwards job results into the running program. It is shared by
// every copy of the Model, so jobs started before the program exists still
// reach it.
type sender struct {
	mu sync.Mutex
	fn func(tea.Msg)
}

func (s *sender) bind(fn func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
}

// Send delivers msg, or drops it when nothing is bound.
func (s *sender) Send(msg tea.Msg) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// Run opens the TempCleaner window and blocks until the user closes it.
// Jobs still running at that point are abandoned; process exit reclaims
// them.
func Run(ctx context.Context, opts Options) error {
	send := &sender{}
	exec := worker.New(ctx, nil)
	m := New(opts, exec, send)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	send.bind(p.Send)

	_, err := p.Run()
	send.bind(nil)
	if n := exec.Running(); n > 0 {
		zap.L().Info("window closed with jobs still running", zap.Int("jobs", n))
	}
	return err
}
