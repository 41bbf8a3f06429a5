package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/config"
	dbpkg "github.com/ignaciosolar/TuBarberiaAPI/internal/db"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/metrics"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/routes"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/token"
)

func main() {

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg := config.Load()

	tokens, err := token.NewIssuer(cfg.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("JWT_SECRET is required")
	}

	db := dbpkg.NewDB(cfg, log)

	m := metrics.New("tubarberia")

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, log, m, rdb, tokens)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
