package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/middleware"
	"github.com/ktfabrics/khata_ledger_app/internal/platform/config"
)

// Credential endpoints get a tight per-IP budget; everything else is
// unthrottled.
var authRate = limiter.Rate{Period: time.Minute, Limit: 10}

// RegisterRoutes wires every handler into the engine: the public health and
// auth endpoints, the JWT-protected ledger API, and swagger outside
// production.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	NewHomeHandler().RegisterHomeRoutes(r)

	authLimiter := limiter.New(memory.NewStore(), authRate)
	authGroup := r.Group("/api", middleware.RateLimit(authLimiter))
	NewAuthHandler(services.User, cfg).RegisterAuthRoutes(authGroup)

	ledger := r.Group("/api/ledger", middleware.AuthMiddleware(cfg.JWTSecret))
	NewKhataHandler(services.Khata).RegisterKhataRoutes(ledger)
	NewBillHandler(services.Bill).RegisterBillRoutes(ledger)
	NewPartyHandler(services.Party).RegisterPartyRoutes(ledger)

	if !cfg.IsProduction {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
