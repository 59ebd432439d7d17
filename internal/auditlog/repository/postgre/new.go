package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"recipient-srv/internal/auditlog/repository"
	pkgLog "recipient-srv/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
	newID func() string
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
		newID: func() string { return uuid.New().String() },
	}
}
