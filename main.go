package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"path"

	"github.com/joho/godotenv"

	"github.com/equinelab/coatgen/internal/util"
	"github.com/equinelab/coatgen/logger"
	coatdb "github.com/equinelab/coatgen/pkg/db"
	"github.com/equinelab/coatgen/pkg/genetics"
	"github.com/equinelab/coatgen/pkg/handler"
	"github.com/equinelab/coatgen/pkg/middle"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "modernc.org/sqlite"
)

var (
	coatgen_data string
	coatgen_addr string
)

func main() {

	// Establish logger
	VERSION := "0.1.0"
	LOG_LEVEL := zapcore.InfoLevel

	if err := logger.InitLogger(LOG_LEVEL); err != nil {
		panic(err)
	}

	handler.Version = VERSION

	// Try load env
	dotenvErr := godotenv.Load()

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	defer logger.Sync() // Make sure that the buffered is flushed.

	coatgen_data = os.Getenv("COATGEN_DATA")

	if coatgen_data == "" {
		logger.Warn("No local environment (COATGEN_DATA), using default value (./data)")
		coatgen_data = "./data"
	}

	coatgen_addr = os.Getenv("COATGEN_ADDR")

	if coatgen_addr == "" {
		coatgen_addr = "0.0.0.0:8080"
	}

	if err := util.EnsureDir(coatgen_data); err != nil {
		logger.Fatal("Cannot create data directory", zap.String("dir", coatgen_data), zap.Error(err))
	}

	stable_sqlite := path.Join(coatgen_data, "stable.db")

	// Connect to db
	db, err := sql.Open("sqlite", stable_sqlite)
	if err != nil {
		logger.Fatal("Cannot open database", zap.String("DB_LOC", stable_sqlite), zap.Error(err))
	}

	stable := coatdb.NewStableDB(db)
	if err := stable.Init(context.Background()); err != nil {
		logger.Fatal("Cannot initialize schema", zap.Error(err))
	}

	dbctx := &handler.DBContext{
		DB:           db,
		Stable:       stable,
		Catalog:      genetics.StandardCatalog(),
		BreedingJobs: handler.NewBreedingJobManager(),
	}

	logger.Info("Start:", zap.String("Version", VERSION))
	logger.Info("Open database on", zap.String("DB_LOC", stable_sqlite))

	mux := NewRouter(dbctx)

	// Apply middleware
	wrapped := middle.RequestIDMiddleware(logger.L())(mux)
	wrapped = middle.LoggingMiddleware(logger.L())(wrapped)

	logger.Info("Server starting", zap.String("addr", coatgen_addr))
	httpErr := http.ListenAndServe(coatgen_addr, wrapped)
	if httpErr != nil {
		logger.Error("Error starting server:", zap.String("error message", httpErr.Error()))
	}
}

// Move to router.go in the next iteration
func NewRouter(dbctx *handler.DBContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Main routes
	mux.HandleFunc("GET /", dbctx.MainPage)

	// API routes
	mux.HandleFunc("GET /api/v1/health", handler.HealthCheck)

	// Resolution
	mux.HandleFunc("GET /api/v1/horse/random", dbctx.RandomHorseHandler)
	mux.HandleFunc("GET /api/v1/phenotype", dbctx.PhenotypeHandler)
	mux.HandleFunc("GET /api/v1/genotypes", dbctx.GenotypeSearchHandler)

	// Breeding
	mux.HandleFunc("POST /api/v1/breed", dbctx.BreedHandler)
	mux.HandleFunc("POST /api/v1/probabilities", dbctx.ProbabilityHandler)
	mux.HandleFunc("POST /api/v1/probabilities/jobs", dbctx.StartProbabilityJobHandler)
	mux.HandleFunc("GET /api/v1/probabilities/jobs/{job_id}", dbctx.GetProbabilityJobHandler)
	mux.HandleFunc("POST /api/v1/guaranteed", dbctx.GuaranteedHandler)

	// Stable
	mux.HandleFunc("POST /api/v1/stable", dbctx.SaveHorseHandler)
	mux.HandleFunc("GET /api/v1/stable", dbctx.ListHorsesHandler)
	mux.HandleFunc("GET /api/v1/stable/{horse_id}", dbctx.GetHorseHandler)
	mux.HandleFunc("DELETE /api/v1/stable/{horse_id}", dbctx.DeleteHorseHandler)
	mux.HandleFunc("POST /api/v1/stable/breed", dbctx.StableBreedHandler)
	mux.HandleFunc("GET /api/v1/stable/{horse_id}/breedings", dbctx.ListBreedingsHandler)

	return mux
}
