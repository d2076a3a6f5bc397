package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/jlorne/timegrid/cliparse"
	"github.com/jlorne/timegrid/middleware"
	"github.com/jlorne/timegrid/router"
	"github.com/jlorne/timegrid/session"
	"github.com/jlorne/timegrid/store"
)

func main() {
	// Local development keeps settings in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	st := store.NewPostgres(dbConn)
	if err := st.CreateSchema(context.Background()); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	svc := session.NewService(st)

	// Long-expired polls get purged nightly; expired-but-recent ones stay
	// readable for stragglers checking results.
	if cfg.PurgeRetentionDays > 0 {
		retention := time.Duration(cfg.PurgeRetentionDays) * 24 * time.Hour
		c := cron.New()
		_, err := c.AddFunc("0 3 * * *", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			purged, err := svc.PurgeExpired(ctx, retention)
			if err != nil {
				slog.Error("expired poll purge failed", "error", err)
				return
			}
			if purged > 0 {
				slog.Info("purged expired polls", "count", purged)
			}
		})
		if err != nil {
			slog.Error("failed to schedule purge", "error", err)
			os.Exit(1)
		}
		c.Start()
		defer c.Stop()
	}

	mux := router.NewRouter(svc, cfg)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
