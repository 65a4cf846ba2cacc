package inmemory

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dvloznov/sms-ledger/internal/jobs"
)

func TestQueueDeliversPublishedJobs(t *testing.T) {
	store := NewStore()
	q := NewQueue(10, 2, store)
	defer q.Close()

	var handled atomic.Int32
	done := make(chan struct{}, 1)
	handler := func(ctx context.Context, job jobs.Job) error {
		handled.Add(1)
		done <- struct{}{}
		return nil
	}

	ctx := context.Background()
	if err := q.Start(ctx, handler); err != nil {
		t.Fatalf("Start: %v", err)
	}

	job := &jobs.ParseBatchJob{Source: "/tmp/dump.xml"}
	if err := q.PublishParseBatch(ctx, job); err != nil {
		t.Fatalf("PublishParseBatch: %v", err)
	}
	if job.JobID == "" {
		t.Fatal("publish did not assign a job ID")
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not handled")
	}
	if handled.Load() != 1 {
		t.Fatalf("handled %d jobs, want 1", handled.Load())
	}

	// The store should eventually see the job completed.
	deadline := time.Now().Add(2 * time.Second)
	for {
		saved, err := store.GetJob(ctx, job.JobID)
		if err != nil {
			t.Fatalf("GetJob: %v", err)
		}
		if saved.Status == jobs.JobStatusCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job status = %s, want completed", saved.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestQueueRetriesFailedJobs(t *testing.T) {
	q := NewQueue(10, 1, NewStore())
	defer q.Close()

	var attempts atomic.Int32
	done := make(chan struct{})
	handler := func(ctx context.Context, job jobs.Job) error {
		if attempts.Add(1) < 2 {
			return errors.New("transient failure")
		}
		close(done)
		return nil
	}

	ctx := context.Background()
	if err := q.Start(ctx, handler); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := q.PublishParseBatch(ctx, &jobs.ParseBatchJob{Source: "x"}); err != nil {
		t.Fatalf("PublishParseBatch: %v", err)
	}

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("job was not retried to success")
	}
}

func TestPublishAfterCloseFails(t *testing.T) {
	q := NewQueue(1, 1, nil)
	if err := q.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := q.PublishParseBatch(context.Background(), &jobs.ParseBatchJob{Source: "x"}); err == nil {
		t.Fatal("publish succeeded on a closed queue")
	}
}

func TestStoreFilters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, j := range []*jobs.ParseBatchJob{
		{JobID: "a", Source: "one.xml", Status: jobs.JobStatusCompleted},
		{JobID: "b", Source: "two.xml", Status: jobs.JobStatusFailed},
		{JobID: "c", Source: "one.xml", Status: jobs.JobStatusFailed},
	} {
		if err := s.SaveJob(ctx, j); err != nil {
			t.Fatalf("SaveJob: %v", err)
		}
	}

	got, err := s.ListJobs(ctx, jobs.JobFilter{Source: "one.xml"})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("by source: %d jobs, want 2", len(got))
	}

	got, err = s.ListJobs(ctx, jobs.JobFilter{Status: jobs.JobStatusFailed})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("by status: %d jobs, want 2", len(got))
	}

	got, err = s.ListJobs(ctx, jobs.JobFilter{Status: jobs.JobStatusFailed, Limit: 1})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("with limit: %d jobs, want 1", len(got))
	}
}
