package repository

import (
	"context"
	"database/sql"
	"time"

	"secret-casino-bot/internal/domain"
)

type SpinLogRepo struct {
	db *sql.DB
}

func NewSpinLogRepo(db *sql.DB) *SpinLogRepo {
	return &SpinLogRepo{db: db}
}

func (r *SpinLogRepo) Record(ctx context.Context, rec domain.SpinRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO spin_log (id, player_id, outcome, bet, coins, balance, used_bonus, jackpot, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PlayerID, rec.Outcome, rec.Bet, rec.Coins, rec.Balance,
		rec.UsedBonus, rec.Jackpot, rec.CreatedAt.UnixMilli(),
	)
	return err
}

// Recent returns the player's latest spins, newest first.
func (r *SpinLogRepo) Recent(ctx context.Context, playerID int64, limit int) ([]domain.SpinRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, player_id, outcome, bet, coins, balance, used_bonus, jackpot, created_at
		FROM spin_log
		WHERE player_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, playerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.SpinRecord
	for rows.Next() {
		var rec domain.SpinRecord
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.Outcome, &rec.Bet, &rec.Coins,
			&rec.Balance, &rec.UsedBonus, &rec.Jackpot, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt = time.UnixMilli(createdAt)
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *SpinLogRepo) DeletePlayer(ctx context.Context, playerID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM spin_log WHERE player_id = ?`, playerID)
	return err
}
