package repository

import (
	"context"
	"database/sql"
	"errors"
)

// LibraryRepo handles the media library index.
type LibraryRepo struct {
	db *sql.DB
}

func NewLibraryRepo(db *sql.DB) *LibraryRepo { return &LibraryRepo{db: db} }

func (r *LibraryRepo) Insert(ctx context.Context, a LibraryAsset) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO library_assets(id, file_name, source_uri, media_type, byte_size, width, height, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?);
	`, a.ID, a.FileName, a.SourceURI, a.MediaType, a.ByteSize, a.Width, a.Height, a.CreatedAt)
	return err
}

func (r *LibraryRepo) Get(ctx context.Context, id string) (*LibraryAsset, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, file_name, source_uri, media_type, byte_size, width, height, created_at
	FROM library_assets WHERE id = ?`, id)
	a, err := scanAsset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// List returns assets newest first. A non-positive limit returns everything.
func (r *LibraryRepo) List(ctx context.Context, limit int) ([]LibraryAsset, error) {
	query := `
	SELECT id, file_name, source_uri, media_type, byte_size, width, height, created_at
	FROM library_assets ORDER BY created_at DESC, id`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LibraryAsset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *LibraryRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM library_assets`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(s scanner) (LibraryAsset, error) {
	var a LibraryAsset
	err := s.Scan(&a.ID, &a.FileName, &a.SourceURI, &a.MediaType, &a.ByteSize, &a.Width, &a.Height, &a.CreatedAt)
	return a, err
}
