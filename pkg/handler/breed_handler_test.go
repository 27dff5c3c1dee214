package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/equinelab/coatgen/pkg/handler/request"
)

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf)))
	return rec
}

func TestBreedHandler(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	// black x chestnut, both homozygous at extension: every foal is E/e
	// on a/a, i.e. black.
	rec := postJSON(t, mux, "/api/v1/breed", request.BreedRequest{
		Sire_Genotype: genotypeText(map[string]string{"A": "a/a"}),
		Dam_Genotype:  genotypeText(map[string]string{"E": "e/e", "A": "a/a"}),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp BreedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Foal.Phenotype != "Black" {
		t.Errorf("Expected Black foal, got %q", resp.Foal.Phenotype)
	}
	if !strings.Contains(resp.Foal.Genotype, "E:E/e") {
		t.Errorf("Foal should be E/e, got %q", resp.Foal.Genotype)
	}
}

func TestBreedHandlerBadBody(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/breed", strings.NewReader("not json")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}

	rec = postJSON(t, mux, "/api/v1/breed", request.BreedRequest{Sire_Genotype: "E:E/E"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for missing dam, got %d", rec.Code)
	}
}

func TestProbabilityHandlerFullDistribution(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := postJSON(t, mux, "/api/v1/probabilities", request.ProbabilityRequest{
		Sire_Genotype: genotypeText(map[string]string{"E": "e/e", "A": "a/a"}),
		Dam_Genotype:  genotypeText(map[string]string{"A": "a/a"}),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ProbabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if math.Abs(resp.Phenotypes["Black"]-1.0) > 1e-9 {
		t.Errorf("Expected Black 1.0, got %v", resp.Phenotypes)
	}
	if resp.LethalChance != 0 {
		t.Errorf("Expected no lethal chance, got %v", resp.LethalChance)
	}
}

func TestProbabilityHandlerSingleLocus(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := postJSON(t, mux, "/api/v1/probabilities", request.ProbabilityRequest{
		Sire_Genotype: genotypeText(map[string]string{"E": "E/e"}),
		Dam_Genotype:  genotypeText(map[string]string{"E": "E/e"}),
		Locus:         "E",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ProbabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Locus != "E" {
		t.Errorf("Expected locus E, got %q", resp.Locus)
	}
	if math.Abs(resp.Genotypes["E/e"]-0.5) > 1e-9 {
		t.Errorf("Expected E/e at 0.5, got %v", resp.Genotypes)
	}
}

func TestProbabilityHandlerLethalChance(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	frame := genotypeText(map[string]string{"O": "O/n"})
	rec := postJSON(t, mux, "/api/v1/probabilities", request.ProbabilityRequest{
		Sire_Genotype: frame,
		Dam_Genotype:  frame,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ProbabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if math.Abs(resp.LethalChance-0.25) > 1e-9 {
		t.Errorf("Expected lethal chance 0.25, got %v", resp.LethalChance)
	}
}

func TestProbabilityHandlerUnknownLocus(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := postJSON(t, mux, "/api/v1/probabilities", request.ProbabilityRequest{
		Sire_Genotype: genotypeText(nil),
		Dam_Genotype:  genotypeText(nil),
		Locus:         "XYZ",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
}

func TestGuaranteedHandler(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := postJSON(t, mux, "/api/v1/guaranteed", request.BreedRequest{
		Sire_Genotype: genotypeText(map[string]string{"E": "e/e", "Dil": "Cr/Cr"}),
		Dam_Genotype:  genotypeText(map[string]string{"E": "e/e", "Dil": "Cr/Cr"}),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp GuaranteedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Traits["E"] != "e/e" || resp.Traits["Dil"] != "Cr/Cr" {
		t.Errorf("Missing guaranteed traits: %v", resp.Traits)
	}
}

func TestProbabilityJobLifecycle(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := postJSON(t, mux, "/api/v1/probabilities/jobs", request.ProbabilityRequest{
		Sire_Genotype: genotypeText(map[string]string{"E": "E/e", "A": "A/a", "Dil": "N/Cr"}),
		Dam_Genotype:  genotypeText(map[string]string{"E": "E/e"}),
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var started JobResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &started); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if started.JobID == "" {
		t.Fatal("Job ID is empty")
	}

	deadline := time.Now().Add(10 * time.Second)
	var polled JobResponse
	for {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/probabilities/jobs/"+started.JobID, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 on poll, got %d", rec.Code)
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &polled); err != nil {
			t.Fatalf("Failed to decode poll response: %v", err)
		}
		if polled.Status == string(BreedingJobCompleted) || polled.Status == string(BreedingJobFailed) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Job did not finish in time, last status %q", polled.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if polled.Status != string(BreedingJobCompleted) {
		t.Fatalf("Job failed: %s", polled.Error)
	}

	var total float64
	for _, p := range polled.Phenotypes {
		total += p
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Errorf("Distribution sums to %v", total)
	}
}

func TestGetProbabilityJobNotFound(t *testing.T) {
	mux := newTestMux(newTestContext(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/probabilities/jobs/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
}
