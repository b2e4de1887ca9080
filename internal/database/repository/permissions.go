package repository

import (
	"context"
	"database/sql"
	"errors"
)

// PermissionRepo handles permission answers.
type PermissionRepo struct {
	db *sql.DB
}

func NewPermissionRepo(db *sql.DB) *PermissionRepo { return &PermissionRepo{db: db} }

func (r *PermissionRepo) Upsert(ctx context.Context, p PermissionRecord) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO permissions(scope, status, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(scope) DO UPDATE SET status=excluded.status, updated_at=CURRENT_TIMESTAMP;
	`, p.Scope, p.Status)
	return err
}

// Get returns nil when the scope has never been answered.
func (r *PermissionRepo) Get(ctx context.Context, scope string) (*PermissionRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT scope, status, updated_at FROM permissions WHERE scope = ?`, scope)
	var p PermissionRecord
	if err := row.Scan(&p.Scope, &p.Status, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
