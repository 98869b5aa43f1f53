// Package pipeline fans line-by-line identification out across a worker
// pool while guaranteeing output order matches input order regardless of
// how many workers are configured.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ZJaume/heliport/model"
	"github.com/ZJaume/heliport/score"
)

// Pipeline scores lines against a shared, immutable model using a
// configurable number of worker goroutines.
type Pipeline struct {
	model   *model.Model
	threads int
	batch   int
}

// New creates a Pipeline. threads == 0 scores synchronously on the
// caller's goroutine; threads == 1 scores on one dedicated worker
// goroutine; threads > 1 scores across a bounded worker pool.
func New(m *model.Model, threads, batchSize int) *Pipeline {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Pipeline{model: m, threads: threads, batch: batchSize}
}

// LineResult pairs a scoring Result with the input line's original index,
// so order can be restored after concurrent scoring.
type LineResult struct {
	Index  int
	Result score.Result
}

// RunBatch scores every line in lines and returns results in the same
// order as the input, regardless of the configured thread count.
func (p *Pipeline) RunBatch(ctx context.Context, lines []string) ([]score.Result, error) {
	out := make([]score.Result, len(lines))

	switch {
	case p.threads <= 0:
		e := score.NewEngine(p.model)
		for i, line := range lines {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			out[i] = e.Identify(line)
		}
		return out, nil

	default:
		limit := p.threads
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)

		// One Engine per concurrent worker slot, reused across lines.
		engines := make(chan *score.Engine, limit)
		for j := 0; j < limit; j++ {
			engines <- score.NewEngine(p.model)
		}
		for i, line := range lines {
			i, line := i, line
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				e := <-engines
				out[i] = e.Identify(line)
				engines <- e
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return out, err
		}
		return out, nil
	}
}

// Run scores lines read from the input channel and streams LineResults,
// in strictly increasing Index order, on the returned channel. The feeder
// blocks once batch lines are in flight, providing backpressure. The
// output channel is closed once every line has been scored or ctx is
// canceled; on cancellation, no further lines are read, and lines already
// buffered are scored and emitted in order before the channel closes.
func (p *Pipeline) Run(ctx context.Context, lines <-chan string) <-chan LineResult {
	out := make(chan LineResult, p.batch)

	go func() {
		defer close(out)

		index := 0
		buf := make([]string, 0, p.batch)
		flush := func() bool {
			if len(buf) == 0 {
				return true
			}
			// Buffered lines are always scored in full, even after
			// cancellation, so no unscored slot is ever emitted.
			results, err := p.RunBatch(context.WithoutCancel(ctx), buf)
			base := index - len(buf)
			for i, r := range results {
				out <- LineResult{Index: base + i, Result: r}
			}
			buf = buf[:0]
			return err == nil && ctx.Err() == nil
		}

		for {
			select {
			case line, ok := <-lines:
				if !ok {
					flush()
					return
				}
				buf = append(buf, line)
				index++
				if len(buf) >= p.batch {
					if !flush() {
						return
					}
				}
			case <-ctx.Done():
				flush()
				return
			}
		}
	}()

	return out
}
