package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/ermekov/barbershop-booking/internal/config"
	"github.com/ermekov/barbershop-booking/internal/database"
	"github.com/ermekov/barbershop-booking/internal/handler"
	"github.com/ermekov/barbershop-booking/internal/middleware"
	"github.com/ermekov/barbershop-booking/internal/queue"
	"github.com/ermekov/barbershop-booking/internal/repository"
	"github.com/ermekov/barbershop-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid SHOP_TIMEZONE %q: %v", cfg.Timezone, err)
	}

	serviceRepo := repository.NewServiceRepo(db)
	masterRepo := repository.NewMasterRepo(db)
	productRepo := repository.NewProductRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	blackoutRepo := repository.NewBlackoutRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	financeRepo := repository.NewFinanceRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	publicHandler := handler.NewPublicHandler(serviceRepo, masterRepo, productRepo)
	bookingHandler := handler.NewBookingHandler(serviceRepo, scheduleRepo, blackoutRepo, bookingRepo, loc)
	adminHandler := handler.NewAdminHandler(serviceRepo, masterRepo, productRepo,
		scheduleRepo, blackoutRepo, bookingRepo, financeRepo)

	// Redis backs the response cache and the rate limiter; when it is
	// unreachable both middlewares become pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterPublic(e, publicHandler, bookingHandler, cacheMW, rateMW)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

	// Background consumer appends booking events to logs/booking.log and
	// reconnects on broker failures.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, tz=%s)", addr, cfg.Env, cfg.Timezone)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
