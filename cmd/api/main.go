package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"roadservice/internal/config"
	httpx "roadservice/internal/http"
	middlewarex "roadservice/internal/http/middleware"
	intersectionsvc "roadservice/internal/services/intersection"
	roadsvc "roadservice/internal/services/road"
	signsvc "roadservice/internal/services/sign"
	"roadservice/internal/store/sqlstore"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.App)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init DB
	db := sqlstore.MustOpen(ctx, cfg.DB)
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	r := httpx.NewRouter(httpx.RouterDependencies{
		Config:        cfg,
		DB:            db,
		Metrics:       middlewarex.NewMetrics(),
		Intersections: intersectionsvc.NewService(sqlstore.NewIntersectionTable(db)),
		Roads:         roadsvc.NewService(sqlstore.NewRoadTable(db)),
		Signs:         signsvc.NewService(sqlstore.NewSignTable(db)),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().
			Str("env", cfg.App.Env).
			Str("db_type", cfg.DB.Type).
			Msgf("road service listening on :%s%s", cfg.App.Port, httpx.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	cancel()

	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}

func setupLogging(app config.AppCfg) {
	level, err := zerolog.ParseLevel(app.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if app.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
