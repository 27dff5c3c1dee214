package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Defining possible error
var ErrHorseNotFound = errors.New("horse does not exist")

type StableError struct {
	Op  string
	Msg string // additional context for the error
}

func (e *StableError) Error() string {
	return fmt.Sprintf("stable %s: %s", e.Op, e.Msg)
}

// HorseRecord is a stored horse. Genotype holds the canonical text form;
// Phenotype is denormalized so list views avoid re-resolving.
type HorseRecord struct {
	ID        string
	Name      string
	Genotype  string
	Phenotype string
	Lethal    bool
	CreatedAt time.Time
}

// BreedingRecord links two stored parents to a stored foal.
type BreedingRecord struct {
	ID        string
	SireID    string
	DamID     string
	FoalID    string
	CreatedAt time.Time
}

// StableDB persists horses and their breeding history in sqlite.
type StableDB struct {
	stableSQL *sql.DB
}

func NewStableDB(db *sql.DB) *StableDB {
	return &StableDB{
		stableSQL: db,
	}
}

const stableSchema = `
CREATE TABLE IF NOT EXISTS horses (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	genotype TEXT NOT NULL,
	phenotype TEXT NOT NULL,
	lethal INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS breedings (
	id TEXT PRIMARY KEY,
	sire_id TEXT NOT NULL REFERENCES horses(id),
	dam_id TEXT NOT NULL REFERENCES horses(id),
	foal_id TEXT NOT NULL REFERENCES horses(id),
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_breedings_sire ON breedings(sire_id);
CREATE INDEX IF NOT EXISTS idx_breedings_dam ON breedings(dam_id);
`

// Init creates the schema. Safe to call on an already-initialized file.
func (sdb *StableDB) Init(ctx context.Context) error {
	if _, err := sdb.stableSQL.ExecContext(ctx, stableSchema); err != nil {
		return fmt.Errorf("%w: init schema", err)
	}
	return nil
}

func (sdb *StableDB) SaveHorse(ctx context.Context, rec HorseRecord) (HorseRecord, error) {
	if rec.Name == "" {
		return HorseRecord{}, &StableError{Op: "save", Msg: "horse name is empty"}
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	_, err := sdb.stableSQL.ExecContext(ctx,
		`INSERT INTO horses (id, name, genotype, phenotype, lethal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Genotype, rec.Phenotype, rec.Lethal, rec.CreatedAt)
	if err != nil {
		return HorseRecord{}, fmt.Errorf("%w: save horse", err)
	}
	return rec, nil
}

func (sdb *StableDB) GetHorse(ctx context.Context, id string) (HorseRecord, error) {
	var rec HorseRecord
	err := sdb.stableSQL.QueryRowContext(ctx,
		`SELECT id, name, genotype, phenotype, lethal, created_at
		 FROM horses WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &rec.Genotype, &rec.Phenotype, &rec.Lethal, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return HorseRecord{}, fmt.Errorf("%w: %s", ErrHorseNotFound, id)
	}
	if err != nil {
		return HorseRecord{}, fmt.Errorf("%w: get horse", err)
	}
	return rec, nil
}

func (sdb *StableDB) ListHorses(ctx context.Context) ([]HorseRecord, error) {
	rows, err := sdb.stableSQL.QueryContext(ctx,
		`SELECT id, name, genotype, phenotype, lethal, created_at
		 FROM horses ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: list horses", err)
	}
	defer rows.Close()

	var recs []HorseRecord
	for rows.Next() {
		var rec HorseRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Genotype, &rec.Phenotype, &rec.Lethal, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan horse", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (sdb *StableDB) DeleteHorse(ctx context.Context, id string) error {
	res, err := sdb.stableSQL.ExecContext(ctx, `DELETE FROM horses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: delete horse", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete horse", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrHorseNotFound, id)
	}
	return nil
}

// RecordBreeding stores a breeding event. All three horses must already
// be saved.
func (sdb *StableDB) RecordBreeding(ctx context.Context, sireID, damID, foalID string) (BreedingRecord, error) {
	for _, id := range []string{sireID, damID, foalID} {
		if _, err := sdb.GetHorse(ctx, id); err != nil {
			return BreedingRecord{}, err
		}
	}
	rec := BreedingRecord{
		ID:        uuid.NewString(),
		SireID:    sireID,
		DamID:     damID,
		FoalID:    foalID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := sdb.stableSQL.ExecContext(ctx,
		`INSERT INTO breedings (id, sire_id, dam_id, foal_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.SireID, rec.DamID, rec.FoalID, rec.CreatedAt)
	if err != nil {
		return BreedingRecord{}, fmt.Errorf("%w: record breeding", err)
	}
	return rec, nil
}

// ListBreedings returns the breeding history, optionally filtered to
// events where horseID was a parent. Empty horseID lists everything.
func (sdb *StableDB) ListBreedings(ctx context.Context, horseID string) ([]BreedingRecord, error) {
	query := `SELECT id, sire_id, dam_id, foal_id, created_at FROM breedings`
	args := []any{}
	if horseID != "" {
		query += ` WHERE sire_id = ? OR dam_id = ?`
		args = append(args, horseID, horseID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := sdb.stableSQL.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list breedings", err)
	}
	defer rows.Close()

	var recs []BreedingRecord
	for rows.Next() {
		var rec BreedingRecord
		if err := rows.Scan(&rec.ID, &rec.SireID, &rec.DamID, &rec.FoalID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan breeding", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
