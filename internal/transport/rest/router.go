package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"asdscreen/internal/repository"
	"asdscreen/internal/service"
	"asdscreen/internal/transport/rest/handler"
	"asdscreen/internal/transport/rest/middleware"
	"asdscreen/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	IntakeService *service.IntakeService
	ResultService *service.ResultService
	RecordRepo    repository.RecordRepository
	WSHub         *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	intakeHandler := handler.NewIntakeHandler(c.IntakeService)
	resultHandler := handler.NewResultHandler(c.ResultService)
	recordHandler := handler.NewRecordHandler(c.RecordRepo)
	wsHandler := ws.NewHandler(c.WSHub)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public wizard routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions", intakeHandler.CreateSession).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/behavioral", intakeHandler.SaveBehavioral).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/personal", intakeHandler.SavePersonal).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/steps/{step}", intakeHandler.GetStep).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/result", resultHandler.Run).Methods("POST", "OPTIONS")

	// WebSocket progress stream
	v1.HandleFunc("/ws/sessions/{sessionId}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Operator routes (require auth)
	operatorRoutes := v1.NewRoute().Subrouter()
	operatorRoutes.Use(authMW.RequireOperator)
	operatorRoutes.HandleFunc("/records", recordHandler.List).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
