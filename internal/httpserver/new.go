package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/middleware"
	parseHTTP "github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/delivery/http"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware   middleware.Middleware
	parseHandler parseHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware   middleware.Middleware
	ParseHandler parseHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		middleware:   cfg.Middleware,
		parseHandler: cfg.ParseHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parseHandler == nil {
		return errors.New("parse handler is required")
	}
	return nil
}
