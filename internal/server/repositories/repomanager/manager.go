package repomanager

import (
	"context"
	"database/sql"

	"braindash/internal/dbx"
	"braindash/internal/server/repositories/tasks"
	"braindash/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so services can run
// the same repository code against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
