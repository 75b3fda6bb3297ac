package grid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SumParallel computes Sum with up to workers goroutines, each taking a
// contiguous band of lines.  Partial sums and their reduction are all
// overflow checked, so ErrOverflow is reported for exactly the inputs
// where Sum reports it.
func (s *Scanner) SumParallel(ctx context.Context, lines []string, workers int) (uint64, error) {
	workers = min(max(workers, 1), len(lines))
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return s.Sum(lines)
	}
	band := (len(lines) + workers - 1) / workers
	partial := make([]uint64, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo, hi := w*band, min((w+1)*band, len(lines))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			var total uint64
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				n, err := s.sumLine(lines, i)
				if err != nil {
					return err
				}
				if total, err = add(total, n); err != nil {
					return err
				}
			}
			partial[w] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var (
		total uint64
		err   error
	)
	for _, p := range partial {
		if total, err = add(total, p); err != nil {
			return 0, err
		}
	}
	return total, nil
}
