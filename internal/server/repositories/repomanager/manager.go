package repomanager

import (
	"context"
	"database/sql"

	"github.com/workhive/jobboard/internal/dbx"
	"github.com/workhive/jobboard/internal/server/repositories/jobs"
	"github.com/workhive/jobboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Jobs(db dbx.DBTX) jobs.Repository
}
