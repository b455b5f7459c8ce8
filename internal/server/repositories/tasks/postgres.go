// Package tasks provides the PostgreSQL-backed task repository.
package tasks

import (
	"context"
	"fmt"

	"braindash/internal/dbx"
	"braindash/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SelectByUser returns every task owned by userID, newest first.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID int64) ([]*models.Task, error) {
	query :=
		`SELECT id, user_id, content, category, urgency, energy_level, completed, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Task, 0)
	for rows.Next() {
		var item models.Task
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Content, &item.Category, &item.Urgency,
			&item.EnergyLevel, &item.Completed, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// InsertBatch inserts one row per parsed task, all owned by userID. Callers
// that need all-or-nothing semantics must bind the repository to a
// transaction (dbx.WithTx).
func (r *PostgresRepository) InsertBatch(ctx context.Context, userID int64, items []models.ParsedTask) error {
	query :=
		`INSERT INTO tasks (user_id, content, category, urgency, energy_level)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	for _, item := range items {
		if _, err := r.db.ExecContext(ctx, query,
			userID, item.Content, item.Category, item.Urgency, item.EnergyLevel); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

// SetCompleted updates the completion flag on the row matching both taskID
// and userID. A taskID owned by another user matches zero rows, which is not
// an error.
func (r *PostgresRepository) SetCompleted(ctx context.Context, userID, taskID int64, completed bool) error {
	query :=
		`UPDATE tasks SET completed = $1
		 WHERE id = $2 AND user_id = $3
		 `

	if _, err := r.db.ExecContext(ctx, query, completed, taskID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeleteByUser removes every task owned by userID. Deleting an empty set is
// a no-op.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM tasks WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
