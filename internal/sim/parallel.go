package sim

import (
	"context"
	"sync"
)

// Job is one headless run in a batch.
type Job struct {
	Name    string
	Scene   *Scene
	Options Options
	Metrics func() []Metric
}

// RunAll runs every job on its own goroutine. Jobs must not share scenes.
// The first error in job order is returned alongside all results.
func RunAll(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			var metrics []Metric
			if jobs[idx].Metrics != nil {
				metrics = jobs[idx].Metrics()
			}
			results[idx], errs[idx] = jobs[idx].Scene.RunHeadless(ctx, jobs[idx].Options, metrics...)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
