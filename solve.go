// Package onebrc aggregates per-station temperature statistics out of very
// large <station>;<temperature> measurement files in a single parallel pass:
// the file is memory mapped, cut into record-aligned chunks, aggregated into
// one private table per worker and merged after all workers join.
package onebrc

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"onebrc/chunk"
	"onebrc/mmap"
	"onebrc/report"
	"onebrc/scan"
	"onebrc/stats"
)

// Solver runs the aggregation pipeline. The zero value is not usable; build
// one with New.
type Solver struct {
	workers int
	logger  *slog.Logger
}

func New(opts ...Option) *Solver {
	s := &Solver{
		workers: runtime.NumCPU(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

// Solve aggregates the file at path and returns the rendered result, a
// single {name=min/mean/max, ...} line. On any I/O or parse error nothing is
// rendered and the error describes the first failure; identical inputs
// produce identical output regardless of worker count.
func (s *Solver) Solve(path string) (string, error) {
	start := time.Now()

	m, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("unable to map input: %w", err)
	}
	defer m.Close()

	chunks := chunk.Plan(m.Data, s.workers)
	s.logger.Debug("planned input",
		"bytes", len(m.Data), "chunks", len(chunks), "workers", s.workers)

	tables := make([]*stats.Table, len(chunks))
	var g errgroup.Group
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			t := stats.NewTable()
			sc := scan.New(m.Data[c.Start:c.End])
			for {
				name, tenths, ok := sc.Next()
				if !ok {
					break
				}
				t.Observe(name, tenths)
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("unable to parse chunk starting at byte %d: %w", c.Start, err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	merged := stats.NewTable()
	for _, t := range tables {
		merged.Merge(t)
	}

	entries := make([]report.Entry, 0, merged.Len())
	merged.Range(func(name string, st stats.Stats) {
		entries = append(entries, report.Entry{Name: name, Stats: st})
	})

	out := report.Render(entries)
	s.logger.Debug("aggregated input",
		"stations", merged.Len(), "took", time.Since(start))
	return out, nil
}
