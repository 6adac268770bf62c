package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"animal-health-service/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

const recordColumns = `
	id, animal_id,
	diagnosis, treatment, vaccine, notes,
	date, penalty, owner_username,
	created_at, updated_at
`

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (
			id, animal_id,
			diagnosis, treatment, vaccine, notes,
			date, penalty, owner_username,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		rec.ID,
		rec.AnimalID,
		rec.Diagnosis,
		rec.Treatment,
		rec.Vaccine,
		rec.Notes,
		toNullDate(rec.Date),
		toNullFloat(rec.Penalty),
		rec.OwnerUsername,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Record{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM health_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return health.Record{}, ErrNotFound
		}
		return health.Record{}, err
	}
	return rec, nil
}

func (r *HealthRepo) Update(ctx context.Context, rec health.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET
			diagnosis = $2,
			treatment = $3,
			vaccine = $4,
			notes = $5,
			date = $6,
			penalty = $7,
			owner_username = $8,
			updated_at = $9
		WHERE id = $1
	`,
		rec.ID,
		rec.Diagnosis,
		rec.Treatment,
		rec.Vaccine,
		rec.Notes,
		toNullDate(rec.Date),
		toNullFloat(rec.Penalty),
		rec.OwnerUsername,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HealthRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM health_records WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HealthRepo) ListByAnimal(ctx context.Context, animalID string) ([]health.Record, error) {
	return r.listWhere(ctx, `animal_id = $1`, animalID)
}

func (r *HealthRepo) ListByOwner(ctx context.Context, ownerUsername string) ([]health.Record, error) {
	return r.listWhere(ctx, `owner_username = $1`, ownerUsername)
}

func (r *HealthRepo) ListAll(ctx context.Context) ([]health.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM health_records
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (r *HealthRepo) listWhere(ctx context.Context, where string, arg any) ([]health.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM health_records
		WHERE `+where+`
		ORDER BY created_at ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (health.Record, error) {
	var rec health.Record
	var date sql.NullTime
	var penalty sql.NullFloat64

	if err := row.Scan(
		&rec.ID,
		&rec.AnimalID,
		&rec.Diagnosis,
		&rec.Treatment,
		&rec.Vaccine,
		&rec.Notes,
		&date,
		&penalty,
		&rec.OwnerUsername,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return health.Record{}, err
	}

	if date.Valid {
		t := date.Time
		rec.Date = &t
	}
	if penalty.Valid {
		p := penalty.Float64
		rec.Penalty = &p
	}

	return rec, nil
}

func scanRecords(rows *sql.Rows) ([]health.Record, error) {
	out := make([]health.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// date es DATE en el esquema; la pasamos como NullTime para simplificar
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
