package media

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kingsalmon6969-svg/hermax-bot/internal/logging"
)

// Job is one unit of transcoding work. Run does the whole
// download-transcode-deliver cycle; OnError reports failure back to
// the user when Run returns an error or the job is rejected.
type Job struct {
	ID   string
	Kind string // "audio" or "gif", for logging
	Run  func(ctx context.Context) error

	// OnError is invoked (if set) when the job fails or cannot be
	// queued. Delivery of success output is Run's own business.
	OnError func(err error)
}

// Queue runs transcode jobs on a fixed pool of workers so a slow
// ffmpeg invocation never stalls event handling for other users.
type Queue struct {
	cfg  Config
	jobs chan Job

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewQueue creates a job queue. Call Start before submitting.
func NewQueue(cfg Config) *Queue {
	return &Queue{
		cfg:  cfg,
		jobs: make(chan Job, cfg.queueSize()),
	}
}

// Start launches the worker pool.
func (q *Queue) Start() {
	q.startOnce.Do(func() {
		workers := q.cfg.workers()
		logging.L_info("media: starting transcode workers", "workers", workers, "queueSize", q.cfg.queueSize())
		for i := 0; i < workers; i++ {
			q.wg.Add(1)
			go q.worker(i)
		}
	})
}

// Submit enqueues a job without blocking. When the queue is full the
// job is rejected and its OnError callback fires immediately.
func (q *Queue) Submit(job Job) bool {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	select {
	case q.jobs <- job:
		logging.L_debug("media: job queued", "id", job.ID, "kind", job.Kind)
		return true
	default:
		logging.L_warn("media: queue full, rejecting job", "id", job.ID, "kind", job.Kind)
		if job.OnError != nil {
			job.OnError(context.DeadlineExceeded)
		}
		return false
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		close(q.jobs)
		q.wg.Wait()
		logging.L_info("media: transcode workers stopped")
	})
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()

	for job := range q.jobs {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), q.cfg.jobTimeout())

		err := job.Run(ctx)
		cancel()

		if err != nil {
			logging.L_error("media: job failed", "id", job.ID, "kind", job.Kind, "worker", id, "error", err)
			if job.OnError != nil {
				job.OnError(err)
			}
			continue
		}

		logging.L_info("media: job done", "id", job.ID, "kind", job.Kind, "worker", id,
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
}
