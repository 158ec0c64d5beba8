package backend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging/events"
)

// Progress is a snapshot of a running job.
type Progress struct {
	Done    uint64
	Total   uint64
	Elapsed time.Duration
}

// Percent returns completion in hundredths of a percent, 0..10000.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	done := p.Done
	if done > p.Total {
		done = p.Total
	}
	return int(done * 10000 / p.Total)
}

// Rate returns the average throughput in bytes per second, or 0 before any
// time has passed.
func (p Progress) Rate() uint64 {
	if p.Elapsed <= 0 {
		return 0
	}
	return uint64(float64(p.Done) / p.Elapsed.Seconds())
}

// ETA estimates the time left. ok is false while the rate is unknown.
func (p Progress) ETA() (remaining time.Duration, ok bool) {
	rate := p.Rate()
	if rate == 0 || p.Total == 0 {
		return 0, false
	}
	if p.Done >= p.Total {
		return 0, true
	}
	secs := (p.Total - p.Done) / rate
	return time.Duration(secs) * time.Second, true
}

// Reporter is handed to a job to publish its progress.
type Reporter interface {
	// Add advances the done counter by n bytes.
	Add(n uint64)
	// SetTotal sets the expected total size.
	SetTotal(n uint64)
}

// Job is an operation run by a Worker. It should return when ctx ends.
type Job func(ctx context.Context, report Reporter) error

// Worker runs one job on its own goroutine. Progress counters are atomics so
// the UI goroutine can sample them every frame without locking.
type Worker struct {
	id  string
	now func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	done    atomic.Uint64
	total   atomic.Uint64
	started time.Time

	err      error
	finished chan struct{}
	wg       sync.WaitGroup
}

// Start launches job under id. Stop or cancelling parent ends it.
func Start(parent context.Context, id string, total uint64, job Job) *Worker {
	return start(parent, id, total, job, time.Now)
}

func start(parent context.Context, id string, total uint64, job Job, now func() time.Time) *Worker {
	ctx, cancel := context.WithCancel(parent)
	w := &Worker{
		id:       id,
		now:      now,
		ctx:      ctx,
		cancel:   cancel,
		started:  now(),
		finished: make(chan struct{}),
	}
	w.total.Store(total)
	events.Job.Start(id, total)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		err := job(ctx, w)
		// a job ended by Stop reports the cancellation, not its own error
		if ctx.Err() != nil && err != nil {
			err = ctx.Err()
		}
		w.err = err
		events.Job.Finish(id, w.done.Load(), w.now().Sub(w.started), err)
		close(w.finished)
	}()
	return w
}

func (w *Worker) Add(n uint64)      { w.done.Add(n) }
func (w *Worker) SetTotal(n uint64) { w.total.Store(n) }

// ID returns the job id.
func (w *Worker) ID() string { return w.id }

// Snapshot returns the current progress.
func (w *Worker) Snapshot() Progress {
	return Progress{
		Done:    w.done.Load(),
		Total:   w.total.Load(),
		Elapsed: w.now().Sub(w.started),
	}
}

// Done is closed when the job has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.finished
}

// Err returns the job's error once Done is closed, nil before.
func (w *Worker) Err() error {
	select {
	case <-w.finished:
		return w.err
	default:
		return nil
	}
}

// Stop cancels the job. The goroutine exits when the job notices; use Wait
// for a clean drain.
func (w *Worker) Stop() {
	w.cancel()
}

// Wait blocks until the job has returned and reports its error.
func (w *Worker) Wait() error {
	w.wg.Wait()
	w.cancel()
	return w.err
}
