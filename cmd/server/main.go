package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"asdscreen/config"
	"asdscreen/internal/handoff"
	"asdscreen/internal/repository"
	"asdscreen/internal/service"
	"asdscreen/internal/transport/rest"
	"asdscreen/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.ScorerURL != "" {
		log.Printf("Scorer: %s", cfg.ScorerURL)
	} else {
		log.Println("Scorer: NOT SET (using local threshold evaluator)")
	}

	// MongoDB connection (record archive)
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

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection (durable handoff store)
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize stores and repositories
	handoffStore := handoff.NewRedisStore(rdb)
	recordRepo := repository.NewRecordRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	predictor := service.NewPredictionClient(cfg.ScorerURL)
	intakeSvc := service.NewIntakeService(handoffStore)
	resultSvc := service.NewResultService(handoffStore, predictor, recordRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	intakeSvc.SetBroadcaster(wsHub)
	resultSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:   authSvc,
		IntakeService: intakeSvc,
		ResultService: resultSvc,
		RecordRepo:    recordRepo,
		WSHub:         wsHub,
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
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/sessions")
		log.Println("  PUT  /v1/sessions/{sessionId}/behavioral")
		log.Println("  PUT  /v1/sessions/{sessionId}/personal")
		log.Println("  GET  /v1/sessions/{sessionId}/steps/{step}")
		log.Println("  POST /v1/sessions/{sessionId}/result")
		log.Println("  GET  /v1/records")
		log.Println("  WS   /v1/ws/sessions/{sessionId}")

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
