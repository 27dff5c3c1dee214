package handler

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// BreedingJobStatus represents the lifecycle of a probability request.
type BreedingJobStatus string

const (
	BreedingJobQueued    BreedingJobStatus = "queued"
	BreedingJobRunning   BreedingJobStatus = "running"
	BreedingJobCompleted BreedingJobStatus = "completed"
	BreedingJobFailed    BreedingJobStatus = "failed"
)

// BreedingJob keeps track of an offspring-distribution computation
// while the enumeration runs.
type BreedingJob struct {
	ID           string
	Status       BreedingJobStatus
	Distribution map[string]float64
	LethalChance float64
	Error        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BreedingJobManager stores job states indexed by job ID.
type BreedingJobManager struct {
	mu   sync.RWMutex
	jobs map[string]*BreedingJob
}

// NewBreedingJobManager constructs a job manager with no jobs.
func NewBreedingJobManager() *BreedingJobManager {
	return &BreedingJobManager{
		jobs: make(map[string]*BreedingJob),
	}
}

// NewJob registers a queued job.
func (m *BreedingJobManager) NewJob() *BreedingJob {
	job := &BreedingJob{
		ID:        uuid.NewString(),
		Status:    BreedingJobQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// SetRunning marks the job as running.
func (m *BreedingJobManager) SetRunning(jobID string) {
	m.updateJob(jobID, func(job *BreedingJob) {
		job.Status = BreedingJobRunning
	})
}

// CompleteJob stores the computed distribution and marks the job complete.
func (m *BreedingJobManager) CompleteJob(jobID string, dist map[string]float64, lethalChance float64) {
	m.updateJob(jobID, func(job *BreedingJob) {
		job.Status = BreedingJobCompleted
		job.Distribution = dist
		job.LethalChance = lethalChance
	})
}

// FailJob records a failure and attaches a user-facing error message.
func (m *BreedingJobManager) FailJob(jobID string, err error) {
	m.updateJob(jobID, func(job *BreedingJob) {
		job.Status = BreedingJobFailed
		job.Error = err.Error()
	})
}

// GetJob fetches a snapshot of a job by ID. A copy keeps readers off
// the state the background goroutine is still updating.
func (m *BreedingJobManager) GetJob(jobID string) (BreedingJob, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return BreedingJob{}, false
	}
	return *job, true
}

func (m *BreedingJobManager) updateJob(jobID string, update func(job *BreedingJob)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}

	update(job)
	job.UpdatedAt = time.Now()
}
