package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careslot/clinic-scheduler/internal/cache"
	"github.com/careslot/clinic-scheduler/internal/config"
	dbpkg "github.com/careslot/clinic-scheduler/internal/db"
	infraRepo "github.com/careslot/clinic-scheduler/internal/infra/repository"
	"github.com/careslot/clinic-scheduler/internal/jobs"
	"github.com/careslot/clinic-scheduler/internal/logging"
	"github.com/careslot/clinic-scheduler/internal/middleware"
	"github.com/careslot/clinic-scheduler/internal/payment"
	"github.com/careslot/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	redisCache, err := cache.New(cfg)
	if err != nil {
		// Availability falls back to direct queries; the ledger is
		// authoritative either way.
		log.Warn("redis unavailable, availability cache disabled", zap.Error(err))
		redisCache = nil
	}

	gateway, err := payment.NewMercadoPagoGateway(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatal("payment gateway init failed", zap.Error(err))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Cfg:     cfg,
		Cache:   redisCache,
		Gateway: gateway,
		Log:     log,
	})

	sweeper := jobs.NewCompletionSweeper(
		infraRepo.NewAppointmentGormRepository(db),
		redisCache,
		log,
	)
	sweeper.Start(context.Background())

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
