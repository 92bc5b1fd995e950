package runner

import (
	"context"
	"sync"

	"digital.vasic.fluent/pkg/report"
)

// parallelResult pairs a report with its original index so
// reports can be returned in submission order.
type parallelResult struct {
	index  int
	result *report.Suite
	err    error
}

// RunParallel evaluates suites concurrently with at most
// maxConcurrency suites in flight. Reports come back in the order
// of suites; suites that could not run are left out and the error
// of the earliest failed suite is returned.
func (r *Runner) RunParallel(
	ctx context.Context,
	suites []*Suite,
	maxConcurrency int,
) ([]*report.Suite, error) {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	sem := make(chan struct{}, maxConcurrency)
	resultsCh := make(chan parallelResult, len(suites))

	var wg sync.WaitGroup

	for i, s := range suites {
		wg.Add(1)
		go func(idx int, s *Suite) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				resultsCh <- parallelResult{index: idx, err: ctx.Err()}
				return
			}

			res, err := r.Run(ctx, s)
			resultsCh <- parallelResult{index: idx, result: res, err: err}
		}(i, s)
	}

	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	ordered := make([]*report.Suite, len(suites))
	errs := make([]error, len(suites))

	for pr := range resultsCh {
		ordered[pr.index] = pr.result
		errs[pr.index] = pr.err
	}

	var firstErr error
	results := make([]*report.Suite, 0, len(suites))
	for i, res := range ordered {
		if errs[i] != nil && firstErr == nil {
			firstErr = errs[i]
		}
		if res != nil {
			results = append(results, res)
		}
	}

	return results, firstErr
}
