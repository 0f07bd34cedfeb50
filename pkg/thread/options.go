package thread

import "go.uber.org/zap"

type settings struct {
	provider Provider
	logger   *zap.Logger
	name     string
}

// Option configures Spawn, Go and NewScope.
type Option func(*settings)

// WithProvider runs the thread on p instead of the default native provider.
func WithProvider(p Provider) Option {
	return func(s *settings) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithLogger overrides the package logger for this thread or scope.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithName attaches a label that appears in log entries.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

func buildSettings(opts []Option) settings {
	s := settings{
		provider: DefaultProvider(),
		logger:   Logger(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
