package services

import (
	"context"
	"database/sql"
	"fmt"

	"braindash/internal/dbx"
	"braindash/internal/server/models"
	"braindash/internal/server/repositories/repomanager"
)

// TaskService exposes the per-account task CRUD surface. Ownership filtering
// happens in SQL; the service never sees another account's rows.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewTaskService constructs a TaskService over the shared connection pool.
func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// List returns all tasks owned by userID, newest first.
func (s *TaskService) List(ctx context.Context, userID int64) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	result, err := repo.SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// BulkInsert persists every element as a new task owned by userID inside a
// single transaction: either the whole batch lands or none of it does.
// Elements are trusted to carry valid labels; validation happens in the dump
// parser on the way in.
func (s *TaskService) BulkInsert(ctx context.Context, userID int64, items []models.ParsedTask) error {
	if len(items) == 0 {
		return nil
	}
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Tasks(tx)
		return repoTx.InsertBatch(ctx, userID, items)
	}); err != nil {
		return fmt.Errorf("error inserting tasks: %w", err)
	}
	return nil
}

// SetCompleted flips the completion flag on the task matching both taskID and
// userID. A taskID owned by another account matches zero rows and still
// reports success.
func (s *TaskService) SetCompleted(ctx context.Context, userID, taskID int64, completed bool) error {
	repo := s.repomanager.Tasks(s.db)
	if err := repo.SetCompleted(ctx, userID, taskID, completed); err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	return nil
}

// ClearAll deletes every task owned by userID. Clearing an empty set
// succeeds silently.
func (s *TaskService) ClearAll(ctx context.Context, userID int64) error {
	repo := s.repomanager.Tasks(s.db)
	if err := repo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("error clearing tasks: %w", err)
	}
	return nil
}
