package extractor

import (
	"context"
	"sync"

	"github.com/use-agent/cookly/models"
)

// ExtractBatch runs Extract for every URL with at most concurrency
// extractions in flight. Results keep the order of urls.
func (x *Extractor) ExtractBatch(ctx context.Context, urls []string, concurrency int) []models.Result {
	if concurrency <= 0 {
		concurrency = 5
	}
	sem := make(chan struct{}, concurrency)
	results := make([]models.Result, len(urls))

	var wg sync.WaitGroup
	for i, rawURL := range urls {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = x.Extract(ctx, target)
		}(i, rawURL)
	}
	wg.Wait()
	return results
}

// Summarize counts successes and failures and derives the batch status.
func Summarize(results []models.Result) models.BatchResponse {
	resp := models.BatchResponse{
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.OK() {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	switch {
	case resp.Total > 0 && resp.Failed == resp.Total:
		resp.Status = models.BatchFailed
	case resp.Failed > 0:
		resp.Status = models.BatchPartial
	default:
		resp.Status = models.BatchCompleted
	}
	return resp
}
