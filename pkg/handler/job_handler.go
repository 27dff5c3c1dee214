package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/equinelab/coatgen/logger"
	"github.com/equinelab/coatgen/pkg/genetics"
	"github.com/equinelab/coatgen/pkg/handler/request"
	"go.uber.org/zap"
)

// jobTimeout bounds a background enumeration; the client polls, so the
// request context cannot be used.
const jobTimeout = 2 * time.Minute

type JobResponse struct {
	JobID        string             `json:"job_id"`
	Status       string             `json:"status"`
	Phenotypes   map[string]float64 `json:"phenotypes,omitempty"`
	LethalChance float64            `json:"lethal_chance"`
	Error        string             `json:"error,omitempty"`
}

// POST /api/v1/probabilities/jobs
//
// Queues the full distribution computation and returns immediately with
// a job ID to poll.
func (dbctx *DBContext) StartProbabilityJobHandler(w http.ResponseWriter, r *http.Request) {

	var req request.ProbabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sire, dam, ok := dbctx.parseParents(w, req.Sire_Genotype, req.Dam_Genotype)
	if !ok {
		return
	}

	job := dbctx.BreedingJobs.NewJob()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		dbctx.BreedingJobs.SetRunning(job.ID)

		dist, err := genetics.OffspringDistribution(ctx, dbctx.Catalog, sire, dam)
		if err != nil {
			logger.Warn("Probability job failed", zap.String("job_id", job.ID), zap.Error(err))
			dbctx.BreedingJobs.FailJob(job.ID, err)
			return
		}
		chance, err := genetics.LethalChance(ctx, dbctx.Catalog, sire, dam)
		if err != nil {
			dbctx.BreedingJobs.FailJob(job.ID, err)
			return
		}
		dbctx.BreedingJobs.CompleteJob(job.ID, dist, chance)
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(JobResponse{JobID: job.ID, Status: string(BreedingJobQueued)})
}

// GET /api/v1/probabilities/jobs/{job_id}
func (dbctx *DBContext) GetProbabilityJobHandler(w http.ResponseWriter, r *http.Request) {

	jobID := r.PathValue("job_id")
	job, ok := dbctx.BreedingJobs.GetJob(jobID)
	if !ok {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(JobResponse{
		JobID:        job.ID,
		Status:       string(job.Status),
		Phenotypes:   job.Distribution,
		LethalChance: job.LethalChance,
		Error:        job.Error,
	})
}
