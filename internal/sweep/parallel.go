package sweep

import (
	"context"
	"sync"
)

// Ensemble fans a sweep out across goroutines. Each step-size run is fully
// independent, so the results are identical to a sequential Run.
type Ensemble struct {
	base *Runner
}

func NewEnsemble(r *Runner) *Ensemble {
	return &Ensemble{base: r}
}

func (e *Ensemble) Run(ctx context.Context, hs []float64) ([]Point, error) {
	points := make([]Point, len(hs))
	errs := make([]error, len(hs))

	var wg sync.WaitGroup
	for i, h := range hs {
		wg.Add(1)
		go func(idx int, h float64) {
			defer wg.Done()
			_, points[idx], errs[idx] = e.base.RunOne(ctx, h)
		}(i, h)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
