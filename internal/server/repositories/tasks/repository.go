package tasks

import (
	"context"

	"braindash/internal/server/models"
)

type Repository interface {
	SelectByUser(ctx context.Context, userID int64) ([]*models.Task, error)
	InsertBatch(ctx context.Context, userID int64, items []models.ParsedTask) error
	SetCompleted(ctx context.Context, userID, taskID int64, completed bool) error
	DeleteByUser(ctx context.Context, userID int64) error
}
