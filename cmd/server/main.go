package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "recipeshare/docs" // swagger docs

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"recipeshare/internal/auth"
	"recipeshare/internal/cache"
	"recipeshare/internal/config"
	"recipeshare/internal/db"
	"recipeshare/internal/handler"
	"recipeshare/internal/metrics"
	"recipeshare/internal/repository"
	"recipeshare/internal/router"
	"recipeshare/internal/seed"
	"recipeshare/internal/service"
)

// @title Recipe Share API
// @version 1.0
// @description Recipe sharing API with JWT bearer authentication.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.RequestID())

	cfg, err := config.Load()
	if err != nil {
		e.Logger.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	// Initialize repositories
	var (
		userRepo   repository.UserRepository
		recipeRepo repository.RecipeRepository
	)
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			e.Logger.Fatalf("database init: %v", err)
		}
		if err := db.Migrate(gormDB); err != nil {
			e.Logger.Fatalf("database migrate: %v", err)
		}
		userRepo = repository.NewUserRepository(gormDB)
		recipeRepo = repository.NewRecipeRepository(gormDB)
		e.Logger.Info("using mysql store")
	default:
		userRepo = repository.NewMemoryUserRepository()
		recipeRepo = repository.NewMemoryRecipeRepository()
		if cfg.SeedSamples {
			n, err := seed.Recipes(ctx, recipeRepo)
			if err != nil {
				e.Logger.Fatalf("seed: %v", err)
			}
			e.Logger.Infof("seeded %d sample recipes", n)
		}
		e.Logger.Info("using in-memory store")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL)
	if cacheClient != nil {
		if cfg.StoreDriver != config.DriverMySQL {
			// The memory store restarts its ids on every boot.
			cacheClient = cacheClient.WithNamespace(uuid.NewString())
		}
		e.Logger.Infof("recipe cache enabled at %s", cfg.RedisAddr)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, collector)
	recipeService := service.NewRecipeService(recipeRepo, userRepo, cacheClient, collector)
	userService := service.NewUserService(authService, recipeService)

	// Register routes
	router.Register(e, cfg, jwtService, collector, reg, router.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Recipe: handler.NewRecipeHandler(recipeService),
		User:   handler.NewUserHandler(userService),
	})

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	e.Logger.Infof("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost)

	go func() {
		addr := ":" + cfg.ServerPort
		e.Logger.Infof("Server is running on http://localhost%s", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Errorf("shutdown: %v", err)
	}
}
