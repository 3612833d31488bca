package http

import (
	"finance_tracker/internal/config"
	"finance_tracker/internal/http/handlers"
	"finance_tracker/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Redis-backed limiter when configured, in-process fallback otherwise
	var rateLimit gin.HandlerFunc
	if cfg.RedisAddr != "" {
		rateLimit = middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow)
	} else {
		rateLimit = middleware.SimpleRateLimit(cfg.APIRateLimit, cfg.APIRateWindow)
	}

	tx := r.Group("/transactions")
	tx.Use(rateLimit)

	// create is the only operation that can mint a session cookie; the
	// reads all require an existing one
	tx.POST("", h.CreateTransaction)
	tx.GET("", middleware.RequireSession(), h.ListTransactions)
	tx.GET("/summary", middleware.RequireSession(), h.GetSummary)
	tx.GET("/:id", middleware.RequireSession(), h.GetTransaction)
}
