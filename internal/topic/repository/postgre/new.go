package postgres

import (
	"database/sql"

	"recipient-srv/internal/topic"
	pkgLog "recipient-srv/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ topic.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB) topic.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
