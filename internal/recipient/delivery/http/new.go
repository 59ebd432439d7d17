package http

import (
	"recipient-srv/internal/recipient"
	"recipient-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc recipient.UseCase
}

func New(l log.Logger, uc recipient.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
