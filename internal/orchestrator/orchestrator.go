// Package orchestrator fans document fragments out to the extraction
// oracle through a bounded worker pool and joins the results.
package orchestrator

import (
	"context"
	"sync"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
	"github.com/sumanmaity112/smart-finanza/internal/oracle"
)

// defaultWorkers keeps the pool small: each call blocks on an external
// model that is itself the throughput bottleneck, and flooding it only
// trades latency for failures.
const defaultWorkers = 2

// Result summarises one extraction run over a fragment list.
type Result struct {
	Candidates      []models.Candidate
	Fragments       int
	FragmentsFailed int
}

// Orchestrator runs per-fragment oracle calls on a worker pool.
type Orchestrator struct {
	oracle  oracle.Oracle
	log     logging.Logger
	workers int
}

// New creates an Orchestrator with the given worker count; values below
// one select the default.
func New(o oracle.Oracle, workers int, logger logging.Logger) *Orchestrator {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Orchestrator{oracle: o, log: logger, workers: workers}
}

type fragmentJob struct {
	index    int
	fragment models.Fragment
}

type fragmentResult struct {
	candidates []models.Candidate
	failed     bool
}

// ExtractAll invokes the oracle once per fragment and returns the
// concatenation of all non-empty results. Each fragment is independent
// and failure-isolated: an error on one is logged and contributes zero
// candidates without aborting the rest. No dedup happens here; that is
// the store's job.
func (o *Orchestrator) ExtractAll(ctx context.Context, fragments []models.Fragment) *Result {
	result := &Result{Fragments: len(fragments)}
	if len(fragments) == 0 {
		return result
	}

	jobs := make(chan fragmentJob)
	results := make(chan fragmentResult, len(fragments))

	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go o.worker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for i, fragment := range fragments {
			select {
			case jobs <- fragmentJob{index: i, fragment: fragment}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Workers communicate only through the results channel; the joined
	// list is assembled here, single-threaded.
	for r := range results {
		if r.failed {
			result.FragmentsFailed++
			continue
		}
		result.Candidates = append(result.Candidates, r.candidates...)
	}

	o.log.Info("Extraction complete",
		logging.Field{Key: "fragments", Value: result.Fragments},
		logging.Field{Key: "failed", Value: result.FragmentsFailed},
		logging.Field{Key: logging.FieldCount, Value: len(result.Candidates)})

	return result
}

func (o *Orchestrator) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan fragmentJob, results chan<- fragmentResult) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			results <- fragmentResult{failed: true}
			continue
		}

		candidates, err := o.oracle.Extract(ctx, job.fragment)
		if err != nil {
			o.log.WithError(err).Warn("Fragment extraction failed",
				logging.Field{Key: logging.FieldFragment, Value: job.index},
				logging.Field{Key: logging.FieldFormatHint, Value: string(job.fragment.Hint)})
			results <- fragmentResult{failed: true}
			continue
		}
		results <- fragmentResult{candidates: candidates}
	}
}
