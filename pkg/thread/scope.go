package thread

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Scope owns the threads spawned through Go and joins whichever of them are
// still unconsumed when it closes. Typical use is
//
//	s := thread.NewScope()
//	defer s.Close()
//
// which holds on every exit path, panics included.
type Scope struct {
	mu       sync.Mutex
	settings settings
	threads  []io.Closer
	closed   bool
}

// NewScope creates a scope whose options apply to every thread spawned in it.
func NewScope(opts ...Option) *Scope {
	return &Scope{settings: buildSettings(opts)}
}

// Go spawns f inside s. Per-call options are applied on top of the scope's.
func Go[A any](s *Scope, f func() A, opts ...Option) (*Thread[A], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrScopeClosed
	}

	st := s.settings
	for _, opt := range opts {
		opt(&st)
	}

	t, err := spawn(f, st)
	if err != nil {
		return nil, err
	}
	s.threads = append(s.threads, t)
	return t, nil
}

// Close joins every unconsumed thread in reverse spawn order and reports
// their computation panics joined together. Calling it again is a no-op.
func (s *Scope) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	threads := s.threads
	s.threads = nil
	s.mu.Unlock()

	var errs []error
	for i := len(threads) - 1; i >= 0; i-- {
		if err := threads[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		s.settings.logger.Warn("scope closed with failed threads",
			zap.Int("threads", len(threads)),
			zap.Int("failed", len(errs)))
		return fmt.Errorf("thread: scope: %w", errors.Join(errs...))
	}
	return nil
}

// Len returns the number of threads spawned in s that it still tracks.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.threads)
}
