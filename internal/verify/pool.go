package verify

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

const DefaultWorkers = 8

// Job is one external link occurrence awaiting verification.
type Job struct {
	File string
	Line int
	URL  string
}

// Outcome is the verdict for a Job. Err is nil when the link is reachable.
type Outcome struct {
	Job Job
	Err error
}

// Pool verifies jobs with bounded concurrency. Each job gets exactly one attempt and
// its outcome is written to its own slot.
type Pool struct {
	verifier Verifier
	workers  int
	logger   *slog.Logger
}

func NewPool(verifier Verifier, workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{verifier: verifier, workers: workers, logger: logger}
}

// Run verifies all jobs and returns outcomes in job order. If ctx is canceled Run
// returns ctx.Err() straight away and leaves in-flight requests to wind down on
// their own.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))
	if len(jobs) == 0 {
		return outcomes, nil
	}

	var mu sync.Mutex
	done := make(chan struct{})
	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	go func() {
		defer close(done)
		for i, job := range jobs {
			if ctx.Err() != nil {
				break
			}
			i, job := i, job
			g.Go(func() error {
				err := p.verifier.Verify(ctx, job.URL)
				if err != nil {
					p.logger.Debug("external link unreachable", "file", job.File, "url", job.URL, "error", err)
				}
				mu.Lock()
				outcomes[i] = Outcome{Job: job, Err: err}
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	return outcomes, nil
}
