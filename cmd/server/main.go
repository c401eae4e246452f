package main // Entry point package

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/moviemagic/movie-magic/internal/config"
	"github.com/moviemagic/movie-magic/internal/database"
	"github.com/moviemagic/movie-magic/internal/handler"
	"github.com/moviemagic/movie-magic/internal/queue"
	"github.com/moviemagic/movie-magic/internal/repository"
	"github.com/moviemagic/movie-magic/internal/router"
	"github.com/moviemagic/movie-magic/internal/session"
	"github.com/moviemagic/movie-magic/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	log.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("open database", "driver", cfg.DBDriver, "err", err)
	}
	defer db.Close()
	if err := database.Migrate(context.Background(), db, cfg.DBDriver); err != nil {
		logger.Fatal("bootstrap schema", "err", err)
	}

	// Redis keeps the pending theater/showtime selection between the
	// booking and seating steps. When it is unreachable the app still
	// works with an in-process store; selections then do not survive a
	// restart.
	var selections session.SelectionStore
	if rdb := config.NewRedisClient(); rdb != nil {
		selections = session.NewRedisStore(rdb, cfg.SelectionTTL)
		logger.Info("selection store: redis")
	} else {
		selections = session.NewMemoryStore(cfg.SelectionTTL)
		logger.Warn("selection store: redis unreachable, using in-memory fallback")
	}

	renderer, err := view.New()
	if err != nil {
		logger.Fatal("parse templates", "err", err)
	}

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg, users, selections),
		handler.NewBookingHandler(users, bookings, selections),
		handler.NewTicketHandler(bookings),
		cfg.SessionSecret)

	// Background consumer that turns booking.confirmed events into
	// notification log lines. Runs its own reconnect loop.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			logger.Error("booking consumer stopped", "err", err)
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Env, "db", cfg.DBDriver)
	if err := e.Start(addr); err != nil {
		logger.Fatal("server", "err", err)
	}
}
