package users

import (
	"context"

	"braindash/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
