package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutor_RunsJobs(t *testing.T) {
	ex := New(context.Background(), nil)

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		ex.Go("count", func(ctx context.Context) { count.Add(1) })
	}
	ex.Wait()

	if got := count.Load(); got != 5 {
		t.Fatalf("expected 5 jobs to run, got %d", got)
	}
	if ex.Running() != 0 {
		t.Errorf("expected no running jobs, got %d", ex.Running())
	}
}

func TestExecutor_DoesNotBlockCaller(t *testing.T) {
	ex := New(context.Background(), nil)
	release := make(chan struct{})

	start := time.Now()
	job := ex.Go("slow", func(ctx context.Context) { <-release })
	if time.Since(start) > time.Second {
		t.Fatal("Go blocked on the job")
	}
	if job.ID == "" || job.Name != "slow" {
		t.Errorf("unexpected job descriptor %+v", job)
	}
	if ex.Running() != 1 {
		t.Errorf("expected 1 running job, got %d", ex.Running())
	}

	close(release)
	ex.Wait()
}

func TestExecutor_RecoversPanics(t *testing.T) {
	ex := New(context.Background(), nil)
	ran := make(chan struct{})

	ex.Go("boom", func(ctx context.Context) { panic("boom") })
	ex.Go("after", func(ctx context.Context) { close(ran) })
	ex.Wait()

	select {
	case <-ran:
	default:
		t.Fatal("job after a panicking job did not run")
	}
}

func TestExecutor_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	ex := New(ctx, nil)

	var got any
	ex.Go("ctx", func(ctx context.Context) { got = ctx.Value(key{}) })
	ex.Wait()

	if got != "v" {
		t.Fatalf("expected the executor context, got %v", got)
	}
}

func TestExecutor_UniqueIDs(t *testing.T) {
	ex := New(context.Background(), nil)
	a := ex.Go("a", func(context.Context) {})
	b := ex.Go("b", func(context.Context) {})
	ex.Wait()
	if a.ID == b.ID {
		t.Fatalf("expected distinct job IDs, both %q", a.ID)
	}
}
