package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alamin-islam0/care-xyz-frontend/internal/activity"
	"github.com/alamin-islam0/care-xyz-frontend/internal/backend"
	"github.com/alamin-islam0/care-xyz-frontend/internal/config"
	"github.com/alamin-islam0/care-xyz-frontend/internal/logging"
	"github.com/alamin-islam0/care-xyz-frontend/internal/metrics"
	"github.com/alamin-islam0/care-xyz-frontend/internal/middleware"
	"github.com/alamin-islam0/care-xyz-frontend/internal/routes"
	"github.com/alamin-islam0/care-xyz-frontend/internal/session"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)

	observer := metrics.NewObserver()
	api := backend.NewClient(cfg.APIBaseURL, log, observer)

	cache, err := session.NewCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}
	if cache == nil {
		log.Info().Msg("session cache disabled, hydrating from backend on every request")
	}

	sessions := session.NewManager(api, cache, cfg.SessionSecret, cfg.Environment == "production", log)

	dispatcher := activity.NewDispatcher(log)
	defer dispatcher.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log, observer))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LoadSession(sessions))

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(r, api, sessions, dispatcher, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
