package handler

import (
	"errors"
	"testing"
)

func TestBreedingJobManagerLifecycle(t *testing.T) {
	m := NewBreedingJobManager()

	job := m.NewJob()
	if job.ID == "" {
		t.Fatal("Job has no id")
	}
	if job.Status != BreedingJobQueued {
		t.Fatalf("New job should be queued, got %s", job.Status)
	}

	m.SetRunning(job.ID)
	got, ok := m.GetJob(job.ID)
	if !ok || got.Status != BreedingJobRunning {
		t.Fatalf("Expected running job, got %+v", got)
	}

	m.CompleteJob(job.ID, map[string]float64{"Bay": 1.0}, 0)
	got, _ = m.GetJob(job.ID)
	if got.Status != BreedingJobCompleted {
		t.Fatalf("Expected completed job, got %s", got.Status)
	}
	if got.Distribution["Bay"] != 1.0 {
		t.Errorf("Distribution not stored: %v", got.Distribution)
	}
	if !got.UpdatedAt.After(got.CreatedAt) && !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Error("UpdatedAt was not maintained")
	}
}

func TestBreedingJobManagerFailure(t *testing.T) {
	m := NewBreedingJobManager()

	job := m.NewJob()
	m.FailJob(job.ID, errors.New("enumeration cancelled"))

	got, _ := m.GetJob(job.ID)
	if got.Status != BreedingJobFailed {
		t.Fatalf("Expected failed job, got %s", got.Status)
	}
	if got.Error != "enumeration cancelled" {
		t.Errorf("Error message not stored: %q", got.Error)
	}

	if _, ok := m.GetJob("missing"); ok {
		t.Error("GetJob should miss unknown ids")
	}

	// updates to unknown ids are ignored
	m.SetRunning("missing")
	m.CompleteJob("missing", nil, 0)
}
