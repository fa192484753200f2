package onebrc

import "golang.org/x/exp/slog"

type Option func(*Solver) *Solver

// WithWorkers overrides the number of parallel chunks. Values below one fall
// back to a single worker.
func WithWorkers(n int) Option {
	return func(s *Solver) *Solver {
		if n < 1 {
			n = 1
		}
		s.workers = n
		return s
	}
}

// WithLogger routes pipeline diagnostics to the given logger. Diagnostics
// are debug-level only; the result itself is always returned, never logged.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) *Solver {
		s.logger = l
		return s
	}
}
