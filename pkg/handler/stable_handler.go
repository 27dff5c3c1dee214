package handler

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/equinelab/coatgen/logger"
	coatdb "github.com/equinelab/coatgen/pkg/db"
	"github.com/equinelab/coatgen/pkg/genetics"
	"github.com/equinelab/coatgen/pkg/handler/request"
	"go.uber.org/zap"
)

type StableHorseResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Genotype     string `json:"genotype"`
	Phenotype    string `json:"phenotype"`
	Lethal       bool   `json:"lethal"`
	LethalReason string `json:"lethal_reason,omitempty"`
}

type StableListResponse struct {
	Horses []StableHorseResponse `json:"horses"`
}

type StableBreedResponse struct {
	BreedingID string              `json:"breeding_id"`
	Foal       StableHorseResponse `json:"foal"`
}

type BreedingHistoryResponse struct {
	Breedings []BreedingEntry `json:"breedings"`
}

type BreedingEntry struct {
	ID     string `json:"id"`
	SireID string `json:"sire_id"`
	DamID  string `json:"dam_id"`
	FoalID string `json:"foal_id"`
}

func stableResponse(rec coatdb.HorseRecord, reason string) StableHorseResponse {
	return StableHorseResponse{
		ID:           rec.ID,
		Name:         rec.Name,
		Genotype:     rec.Genotype,
		Phenotype:    rec.Phenotype,
		Lethal:       rec.Lethal,
		LethalReason: reason,
	}
}

// POST /api/v1/stable
func (dbctx *DBContext) SaveHorseHandler(w http.ResponseWriter, r *http.Request) {

	var req request.SaveHorseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "Name cannot be empty", http.StatusBadRequest)
		return
	}

	g, err := genetics.Parse(dbctx.Catalog, req.Genotype)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h := genetics.NewHorse(dbctx.Catalog, g)

	rec, err := dbctx.Stable.SaveHorse(r.Context(), coatdb.HorseRecord{
		Name:      req.Name,
		Genotype:  h.Genotype.String(dbctx.Catalog),
		Phenotype: h.Phenotype.Label,
		Lethal:    h.Lethal,
	})
	if err != nil {
		logger.Error("Saving horse failed", zap.Error(err))
		http.Error(w, "Could not save horse", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(stableResponse(rec, h.LethalReason))
}

// GET /api/v1/stable
func (dbctx *DBContext) ListHorsesHandler(w http.ResponseWriter, r *http.Request) {

	recs, err := dbctx.Stable.ListHorses(r.Context())
	if err != nil {
		logger.Error("Listing horses failed", zap.Error(err))
		http.Error(w, "Could not list horses", http.StatusInternalServerError)
		return
	}

	resp := StableListResponse{Horses: make([]StableHorseResponse, 0, len(recs))}
	for _, rec := range recs {
		resp.Horses = append(resp.Horses, stableResponse(rec, ""))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GET /api/v1/stable/{horse_id}
func (dbctx *DBContext) GetHorseHandler(w http.ResponseWriter, r *http.Request) {

	rec, err := dbctx.Stable.GetHorse(r.Context(), r.PathValue("horse_id"))
	if errors.Is(err, coatdb.ErrHorseNotFound) {
		http.Error(w, "Horse not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Getting horse failed", zap.Error(err))
		http.Error(w, "Could not get horse", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stableResponse(rec, ""))
}

// DELETE /api/v1/stable/{horse_id}
func (dbctx *DBContext) DeleteHorseHandler(w http.ResponseWriter, r *http.Request) {

	err := dbctx.Stable.DeleteHorse(r.Context(), r.PathValue("horse_id"))
	if errors.Is(err, coatdb.ErrHorseNotFound) {
		http.Error(w, "Horse not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error("Deleting horse failed", zap.Error(err))
		http.Error(w, "Could not delete horse", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/stable/breed
//
// Breeds two stored horses, saves the foal and records the event.
func (dbctx *DBContext) StableBreedHandler(w http.ResponseWriter, r *http.Request) {

	var req request.StableBreedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(err.Error())
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Foal_Name) == "" {
		http.Error(w, "Foal name cannot be empty", http.StatusBadRequest)
		return
	}

	sireRec, err := dbctx.Stable.GetHorse(r.Context(), req.Sire_ID)
	if err != nil {
		http.Error(w, "Sire not found", http.StatusNotFound)
		return
	}
	damRec, err := dbctx.Stable.GetHorse(r.Context(), req.Dam_ID)
	if err != nil {
		http.Error(w, "Dam not found", http.StatusNotFound)
		return
	}

	sire, err := genetics.Parse(dbctx.Catalog, sireRec.Genotype)
	if err != nil {
		logger.Error("Stored sire genotype is corrupt", zap.String("horse_id", sireRec.ID), zap.Error(err))
		http.Error(w, "Stored genotype is corrupt", http.StatusInternalServerError)
		return
	}
	dam, err := genetics.Parse(dbctx.Catalog, damRec.Genotype)
	if err != nil {
		logger.Error("Stored dam genotype is corrupt", zap.String("horse_id", damRec.ID), zap.Error(err))
		http.Error(w, "Stored genotype is corrupt", http.StatusInternalServerError)
		return
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	foal := genetics.NewHorse(dbctx.Catalog, genetics.Combine(dbctx.Catalog, sire, dam, rng))

	foalRec, err := dbctx.Stable.SaveHorse(r.Context(), coatdb.HorseRecord{
		Name:      req.Foal_Name,
		Genotype:  foal.Genotype.String(dbctx.Catalog),
		Phenotype: foal.Phenotype.Label,
		Lethal:    foal.Lethal,
	})
	if err != nil {
		logger.Error("Saving foal failed", zap.Error(err))
		http.Error(w, "Could not save foal", http.StatusInternalServerError)
		return
	}

	breeding, err := dbctx.Stable.RecordBreeding(r.Context(), sireRec.ID, damRec.ID, foalRec.ID)
	if err != nil {
		logger.Error("Recording breeding failed", zap.Error(err))
		http.Error(w, "Could not record breeding", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(StableBreedResponse{
		BreedingID: breeding.ID,
		Foal:       stableResponse(foalRec, foal.LethalReason),
	})
}

// GET /api/v1/stable/{horse_id}/breedings
func (dbctx *DBContext) ListBreedingsHandler(w http.ResponseWriter, r *http.Request) {

	horseID := r.PathValue("horse_id")
	if _, err := dbctx.Stable.GetHorse(r.Context(), horseID); errors.Is(err, coatdb.ErrHorseNotFound) {
		http.Error(w, "Horse not found", http.StatusNotFound)
		return
	}

	recs, err := dbctx.Stable.ListBreedings(r.Context(), horseID)
	if err != nil {
		logger.Error("Listing breedings failed", zap.Error(err))
		http.Error(w, "Could not list breedings", http.StatusInternalServerError)
		return
	}

	resp := BreedingHistoryResponse{Breedings: make([]BreedingEntry, 0, len(recs))}
	for _, rec := range recs {
		resp.Breedings = append(resp.Breedings, BreedingEntry{
			ID:     rec.ID,
			SireID: rec.SireID,
			DamID:  rec.DamID,
			FoalID: rec.FoalID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
