package handler

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/equinelab/coatgen/logger"
	"github.com/equinelab/coatgen/pkg/genetics"
	"github.com/equinelab/coatgen/pkg/handler/request"
)

type BreedResponse struct {
	Foal HorseResponse `json:"foal"`
}

type ProbabilityResponse struct {
	Phenotypes   map[string]float64 `json:"phenotypes,omitempty"`
	Locus        string             `json:"locus,omitempty"`
	Genotypes    map[string]float64 `json:"genotypes,omitempty"`
	LethalChance float64            `json:"lethal_chance"`
}

type GuaranteedResponse struct {
	Traits map[string]string `json:"traits"`
}

// parseParents decodes both parent genotypes, writing a 400 on failure.
func (dbctx *DBContext) parseParents(w http.ResponseWriter, sire, dam string) (genetics.Genotype, genetics.Genotype, bool) {
	if strings.TrimSpace(sire) == "" || strings.TrimSpace(dam) == "" {
		http.Error(w, "Both sire_genotype and dam_genotype are required", http.StatusBadRequest)
		return genetics.Genotype{}, genetics.Genotype{}, false
	}
	sg, err := genetics.Parse(dbctx.Catalog, sire)
	if err != nil {
		http.Error(w, "sire_genotype: "+err.Error(), http.StatusBadRequest)
		return genetics.Genotype{}, genetics.Genotype{}, false
	}
	dg, err := genetics.Parse(dbctx.Catalog, dam)
	if err != nil {
		http.Error(w, "dam_genotype: "+err.Error(), http.StatusBadRequest)
		return genetics.Genotype{}, genetics.Genotype{}, false
	}
	return sg, dg, true
}

// POST /api/v1/breed
func (dbctx *DBContext) BreedHandler(w http.ResponseWriter, r *http.Request) {

	var req request.BreedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sire, dam, ok := dbctx.parseParents(w, req.Sire_Genotype, req.Dam_Genotype)
	if !ok {
		return
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	foal := genetics.NewHorse(dbctx.Catalog, genetics.Combine(dbctx.Catalog, sire, dam, rng))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BreedResponse{Foal: horseResponse(dbctx.Catalog, foal)})
}

// POST /api/v1/probabilities
//
// Without a locus the full offspring phenotype distribution is
// computed; with one, only that locus's genotype split.
func (dbctx *DBContext) ProbabilityHandler(w http.ResponseWriter, r *http.Request) {

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

	resp := ProbabilityResponse{}

	if req.Locus != "" {
		if !dbctx.Catalog.Has(req.Locus) {
			http.Error(w, "Unknown locus: "+req.Locus, http.StatusBadRequest)
			return
		}
		resp.Locus = req.Locus
		resp.Genotypes = make(map[string]float64)
		for pair, p := range genetics.GeneProbabilities(dbctx.Catalog, req.Locus, sire, dam) {
			resp.Genotypes[pair.String()] = p
		}
	} else {
		dist, err := genetics.OffspringDistribution(r.Context(), dbctx.Catalog, sire, dam)
		if err != nil {
			http.Error(w, "Computation cancelled", http.StatusRequestTimeout)
			return
		}
		resp.Phenotypes = dist
	}

	chance, err := genetics.LethalChance(r.Context(), dbctx.Catalog, sire, dam)
	if err != nil {
		http.Error(w, "Computation cancelled", http.StatusRequestTimeout)
		return
	}
	resp.LethalChance = chance

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// POST /api/v1/guaranteed
func (dbctx *DBContext) GuaranteedHandler(w http.ResponseWriter, r *http.Request) {

	var req request.BreedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sire, dam, ok := dbctx.parseParents(w, req.Sire_Genotype, req.Dam_Genotype)
	if !ok {
		return
	}

	traits := make(map[string]string)
	for sym, pair := range genetics.GuaranteedTraits(dbctx.Catalog, sire, dam) {
		traits[sym] = pair.String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GuaranteedResponse{Traits: traits})
}
