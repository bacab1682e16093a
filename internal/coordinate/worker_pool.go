package coordinate

import (
	"log/slog"
	"sync"

	"github.com/codelens/codelens/internal/extract"
)

// workerPool runs fileJobs across a fixed number of goroutines and
// streams back one fileOutcome per job — the data-parallel execution
// model: one worker owns a file end to end, no cross-file
// communication, no shared mutable state during extraction.
type workerPool struct {
	numWorkers int
	jobs       chan fileJob
	outcomes   chan fileOutcome
	extractor  *extract.Extractor
	logger     *slog.Logger
	wg         sync.WaitGroup
}

func newWorkerPool(numWorkers int, ex *extract.Extractor, logger *slog.Logger) *workerPool {
	return &workerPool{
		numWorkers: numWorkers,
		jobs:       make(chan fileJob, numWorkers*2),
		outcomes:   make(chan fileOutcome, numWorkers*2),
		extractor:  ex,
		logger:     logger,
	}
}

// run processes every job in jobs across numWorkers goroutines and
// returns all outcomes once every job has been processed. Order across
// files is unspecified by design.
func (wp *workerPool) run(jobs []fileJob) []fileOutcome {
	wp.wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker(i)
	}

	go func() {
		for _, job := range jobs {
			wp.jobs <- job
		}
		close(wp.jobs)
	}()

	go func() {
		wp.wg.Wait()
		close(wp.outcomes)
	}()

	outcomes := make([]fileOutcome, 0, len(jobs))
	for outcome := range wp.outcomes {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (wp *workerPool) worker(id int) {
	defer wp.wg.Done()
	for job := range wp.jobs {
		wp.logger.Debug("worker processing file", "worker_id", id, "file", job.RelPath)
		wp.outcomes <- processJob(job, wp.extractor)
	}
}
