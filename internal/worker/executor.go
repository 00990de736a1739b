// Package worker runs user-initiated actions in the background so the
// interactive surface never blocks on filesystem or shell work.
//
// Jobs are fire-and-forget: callers deliver results themselves (the TUI
// sends a message to its program). Nothing here serializes jobs, so two
// jobs may finish in any order.
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job describes a running or finished job.
type Job struct {
	ID      string
	Name    string
	Started time.Time
}

// Executor launches jobs on their own goroutines.
type Executor struct {
	ctx     context.Context
	logger  *zap.Logger
	wg      sync.WaitGroup
	running atomic.Int64
}

// New returns an Executor whose jobs receive ctx. A nil logger uses zap.L().
func New(ctx context.Context, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.L()
	}
	return &Executor{ctx: ctx, logger: logger}
}

// Go starts fn in the background and returns immediately. A panic in fn is
// logged and swallowed; it never takes the process down.
func (e *Executor) Go(name string, fn func(ctx context.Context)) Job {
	job := Job{ID: uuid.NewString(), Name: name, Started: time.Now()}
	log := e.logger.With(zap.String("job_id", job.ID), zap.String("job", name))

	e.wg.Add(1)
	e.running.Add(1)
	go func() {
		defer e.wg.Done()
		defer e.running.Add(-1)
		defer func() {
			if r := recover(); r != nil {
				log.Error("job panicked", zap.String("panic", fmt.Sprint(r)))
			}
		}()

		log.Debug("job started")
		fn(e.ctx)
		log.Debug("job finished", zap.Duration("elapsed", time.Since(job.Started)))
	}()

	return job
}

// Running returns the number of jobs that have not finished.
func (e *Executor) Running() int {
	return int(e.running.Load())
}

// Wait blocks until every job started so far has finished. The UI never
// calls it; tests and the CLI do.
func (e *Executor) Wait() {
	e.wg.Wait()
}
