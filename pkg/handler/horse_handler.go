package handler

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/equinelab/coatgen/logger"
	"github.com/equinelab/coatgen/pkg/genetics"
	"github.com/equinelab/coatgen/pkg/handler/request"
)

const defaultFinderLimit = 50

// Response struct to hold a resolved horse
type HorseResponse struct {
	Genotype     string `json:"genotype"`
	Phenotype    string `json:"phenotype"`
	Lethal       bool   `json:"lethal"`
	LethalReason string `json:"lethal_reason,omitempty"`
}

type PhenotypeDetailsResponse struct {
	Genotype          string `json:"genotype"`
	Phenotype         string `json:"phenotype"`
	Base              string `json:"base"`
	PrimitiveMarkings bool   `json:"primitive_markings"`
	Graying           bool   `json:"graying"`
	Lethal            bool   `json:"lethal"`
	LethalReason      string `json:"lethal_reason,omitempty"`
}

type GenotypeSearchResponse struct {
	Phenotype string   `json:"phenotype"`
	Genotypes []string `json:"genotypes"`
}

func horseResponse(cat *genetics.Catalog, h genetics.Horse) HorseResponse {
	return HorseResponse{
		Genotype:     h.Genotype.String(cat),
		Phenotype:    h.Phenotype.Label,
		Lethal:       h.Lethal,
		LethalReason: h.LethalReason,
	}
}

// GET /api/v1/horse/random
func (dbctx *DBContext) RandomHorseHandler(w http.ResponseWriter, r *http.Request) {

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	h := genetics.RandomHorse(dbctx.Catalog, rng)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(horseResponse(dbctx.Catalog, h))
}

// GET /api/v1/phenotype?genotype=...&view=label|details
func (dbctx *DBContext) PhenotypeHandler(w http.ResponseWriter, r *http.Request) {

	text := r.URL.Query().Get("genotype")
	if text == "" {
		http.Error(w, "Missing genotype", http.StatusBadRequest)
		return
	}

	g, err := genetics.Parse(dbctx.Catalog, text)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h := genetics.NewHorse(dbctx.Catalog, g)
	view := request.NewPhenotypeView(r.URL.Query().Get("view"))

	w.Header().Set("Content-Type", "application/json")
	if view == request.PhenotypeViewDetails {
		json.NewEncoder(w).Encode(PhenotypeDetailsResponse{
			Genotype:          h.Genotype.String(dbctx.Catalog),
			Phenotype:         h.Phenotype.Label,
			Base:              h.Phenotype.Base,
			PrimitiveMarkings: h.Phenotype.PrimitiveMarkings,
			Graying:           h.Phenotype.Graying,
			Lethal:            h.Lethal,
			LethalReason:      h.LethalReason,
		})
		return
	}
	json.NewEncoder(w).Encode(horseResponse(dbctx.Catalog, h))
}

// GET /api/v1/genotypes?phenotype=...&limit=N
//
// Reverse lookup; the scan is bounded, so for pattern-heavy phenotypes
// the result is a representative subset.
func (dbctx *DBContext) GenotypeSearchHandler(w http.ResponseWriter, r *http.Request) {

	target := r.URL.Query().Get("phenotype")
	if target == "" {
		http.Error(w, "Missing phenotype", http.StatusBadRequest)
		return
	}

	limit := defaultFinderLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit needs to be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	matches, err := genetics.FindGenotypesForPhenotype(r.Context(), dbctx.Catalog, target, limit)
	if err != nil {
		logger.Error(err.Error())
		http.Error(w, "Search cancelled", http.StatusRequestTimeout)
		return
	}

	resp := GenotypeSearchResponse{Phenotype: target, Genotypes: make([]string, 0, len(matches))}
	for _, g := range matches {
		resp.Genotypes = append(resp.Genotypes, g.String(dbctx.Catalog))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
