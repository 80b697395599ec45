package rest

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"allyship/internal/model"
	"allyship/internal/service"
	"allyship/internal/transport/rest/handler"
	"allyship/internal/transport/rest/middleware"
	"allyship/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Questionnaire  *model.Questionnaire
	AuthService    *service.AuthService
	SessionService *service.SessionService
	ReportService  *service.ReportService
	Visits         *service.VisitCounter
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	questionnaireHandler := handler.NewQuestionnaireHandler(c.Questionnaire)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first, then the visit counter
	r.Use(corsMiddleware)
	r.Use(visitMiddleware(c.Visits))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/sessions", sessionHandler.Start).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaire", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/guide", reportHandler.Guide).Methods("GET", "OPTIONS")
	v1.HandleFunc("/stats/visits", statsHandler(c.Visits)).Methods("GET")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/sessions/progress", wsHandler.ProgressWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/sessions/answers", sessionHandler.Answer).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/progress", sessionHandler.Progress).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/summary", reportHandler.Summary).Methods("GET", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/submit", reportHandler.Submit).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/results.pdf", reportHandler.Results).Methods("GET", "OPTIONS")

	return r
}

// statsHandler exposes the process-lifetime visit counter as plain text,
// matching the original footer.
func statsHandler(visits *service.VisitCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Unique Page Visits: %d\n", visits.Count())
	}
}

func visitMiddleware(visits *service.VisitCounter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health probes and the counter itself do not count as visits.
			if r.URL.Path != "/health" && r.URL.Path != "/v1/stats/visits" {
				visits.Record()
			}
			next.ServeHTTP(w, r)
		})
	}
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
