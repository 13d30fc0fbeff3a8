package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"secret-casino-bot/internal/domain"
	"secret-casino-bot/internal/engine"
)

type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

func (r *SnapshotRepo) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE namespace = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, engine.ErrSnapshotNotFound
		}
		return nil, err
	}
	return DecodeSnapshot(payload)
}

func (r *SnapshotRepo) Save(ctx context.Context, key string, snap domain.Snapshot) error {
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO snapshots (namespace, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, time.Now().Unix())
	return err
}

func (r *SnapshotRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE namespace = ?`, key)
	return err
}
