package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/config"
	_ "github.com/Visma-Notification-Center/Visma-NaturalTimeParser/docs" // Swagger docs
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/httpserver"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/middleware"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/arithmetic"
	parseHTTP "github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/delivery/http"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/keyword"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/usecase"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/pkg/log"
)

// @title       Natural Time Parser API
// @description Pluggable natural-language time parser: relative expressions applied to a base timestamp.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Natural Time Parser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser plugin chain
	arithmeticPlugin := arithmetic.New()
	if len(cfg.Parser.Aliases) > 0 {
		vocab := arithmeticPlugin.Vocabulary()
		for alias, unitName := range cfg.Parser.Aliases {
			unit, ok := naturaltime.UnitFromName(unitName)
			if !ok {
				logger.Errorf(ctx, "Unknown unit %q for alias %q in parser.aliases", unitName, alias)
				return
			}
			vocab.Set(alias, unit)
		}
		logger.Infof(ctx, "Loaded %d extra unit aliases (locale %s)", len(cfg.Parser.Aliases), cfg.Parser.Locale)
	}

	plugins := []naturaltime.TokenPlugin{arithmeticPlugin}
	if cfg.Parser.Keywords {
		plugins = append([]naturaltime.TokenPlugin{keyword.New()}, plugins...)
	}

	parseUC := usecase.New(logger, plugins...)
	parseHandler := parseHTTP.New(logger, parseUC)

	// 4. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		ParseHandler: parseHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
