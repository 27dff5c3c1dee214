package handler

// DI for all handlers and models alike.

import (
	"database/sql"

	coatdb "github.com/equinelab/coatgen/pkg/db"
	"github.com/equinelab/coatgen/pkg/genetics"
)

type DBContext struct {
	DB           *sql.DB
	Stable       *coatdb.StableDB
	Catalog      *genetics.Catalog
	BreedingJobs *BreedingJobManager
}
