package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BlackoutRepo handles persisted blackout ranges.
type BlackoutRepo struct {
	db *sql.DB
}

func NewBlackoutRepo(db *sql.DB) *BlackoutRepo {
	return &BlackoutRepo{db: db}
}

// Insert stores a new blackout and returns it with its generated id.
func (r *BlackoutRepo) Insert(ctx context.Context, label string, startAt, endAt time.Time) (Blackout, error) {
	b := Blackout{
		ID:      uuid.NewString(),
		Label:   label,
		StartAt: startAt.UTC(),
		EndAt:   endAt.UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO blackouts(id, label, start_at, end_at, created_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, b.ID, b.Label, b.StartAt, b.EndAt)
	if err != nil {
		return Blackout{}, err
	}
	return b, nil
}

// Delete removes one blackout by id.
func (r *BlackoutRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM blackouts WHERE id = ?`, id)
	return err
}

// DeleteBySpan removes blackouts with exactly the given bounds and reports
// how many were deleted.
func (r *BlackoutRepo) DeleteBySpan(ctx context.Context, startAt, endAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blackouts WHERE start_at = ? AND end_at = ?`,
		startAt.UTC(), endAt.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// List returns all blackouts ordered by start.
func (r *BlackoutRepo) List(ctx context.Context) ([]Blackout, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, label, start_at, end_at, created_at FROM blackouts ORDER BY start_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Blackout
	for rows.Next() {
		var b Blackout
		if err := rows.Scan(&b.ID, &b.Label, &b.StartAt, &b.EndAt, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
