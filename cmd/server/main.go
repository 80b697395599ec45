package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"allyship/config"
	"allyship/internal/cache"
	"allyship/internal/questionnaire"
	"allyship/internal/report"
	"allyship/internal/repository"
	"allyship/internal/service"
	"allyship/internal/transport/rest"
	"allyship/internal/transport/ws"
)

// @title Actionable Allyship Self-Assessment API
// @version 1.0
// @description Likert self-assessment with scored results and PDF reports
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Compile the questionnaire; configuration defects are fatal here,
	// before anything can score against them.
	q, err := questionnaire.Build(cfg.ScaleMax)
	if err != nil {
		log.Fatal("Invalid questionnaire configuration: ", err)
	}
	tiers := report.DefaultTiers()
	if err := report.ValidateTiers(tiers); err != nil {
		log.Fatal("Invalid interpretation table: ", err)
	}
	log.Printf("Questionnaire: %d questions, %d-point scale", q.Len(), q.MaxRating)

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("allyshipdb")

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize storage
	submissionRepo := repository.NewSubmissionRepo(db)
	sessionCache := cache.NewSessionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	sessionSvc := service.NewSessionService(q, sessionCache, authSvc)
	reportSvc := service.NewReportService(q, sessionSvc, submissionRepo, tiers,
		questionnaire.Title, cfg.LogoPath, cfg.GuidePath)
	visits := service.NewVisitCounter()

	// Inject broadcaster (wsHub implements service.Broadcaster)
	sessionSvc.SetBroadcaster(wsHub)
	reportSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		Questionnaire:  q,
		AuthService:    authSvc,
		SessionService: sessionSvc,
		ReportService:  reportSvc,
		Visits:         visits,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/sessions")
		log.Println("  GET  /v1/questionnaire")
		log.Println("  PUT  /v1/sessions/answers")
		log.Println("  GET  /v1/sessions/progress")
		log.Println("  GET  /v1/sessions/summary")
		log.Println("  POST /v1/sessions/submit")
		log.Println("  GET  /v1/sessions/results.pdf")
		log.Println("  GET  /v1/guide")
		log.Println("  GET  /v1/stats/visits")
		log.Println("  WS   /v1/ws/sessions/progress")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
