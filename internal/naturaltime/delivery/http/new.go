package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
	pkgLog "github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/log"
)

// Handler is the interface for the HTTP delivery handler.
type Handler interface {
	HandleParse(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc naturaltime.UseCase
}

// New creates a new HTTP delivery handler.
func New(l pkgLog.Logger, uc naturaltime.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
