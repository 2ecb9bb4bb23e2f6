package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wagerworks/parimutuel/internal/betpool"
	"github.com/wagerworks/parimutuel/internal/charsheet"
	"github.com/wagerworks/parimutuel/internal/eventlog"
	"github.com/wagerworks/parimutuel/internal/handler"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/metrics"
	"github.com/wagerworks/parimutuel/internal/wallet"
)

type Server struct {
	httpServer       *http.Server
	dbPool           *pgxpool.Pool
	betpoolService   betpool.Service
	walletService    wallet.Service
	charsheetService charsheet.Service
	eventlogService  eventlog.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool *pgxpool.Pool, betpoolService betpool.Service, walletService wallet.Service, charsheetService charsheet.Service, eventlogService eventlog.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack; chi executes in order defined, outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, detector))
	r.Use(RateLimitMiddleware(detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	healthHandler := handler.NewHealthHandler(dbPool)
	r.Get("/healthz", healthHandler.HandleHealthz)
	r.Get("/readyz", healthHandler.HandleReadyz)

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		roundHandler := handler.NewRoundHandler(betpoolService)
		r.Route("/round", func(r chi.Router) {
			r.Post("/", roundHandler.HandleCreateRound)
			r.Get("/", roundHandler.HandleGetRound)
			r.Get("/count", roundHandler.HandleGetRoundCount)
			r.Post("/stake", roundHandler.HandlePlaceStake)
			r.Get("/stake", roundHandler.HandleGetStake)
			r.Post("/resolve", roundHandler.HandleResolve)
			r.Post("/claim", roundHandler.HandleClaim)
			r.Get("/claimed", roundHandler.HandleGetClaimStatus)
			r.Get("/commitment", roundHandler.HandleGetCommitment)
		})

		walletHandler := handler.NewWalletHandler(walletService)
		r.Route("/wallet", func(r chi.Router) {
			r.Post("/", walletHandler.HandleCreateAccount)
			r.Post("/deposit", walletHandler.HandleDeposit)
			r.Post("/withdraw", walletHandler.HandleWithdraw)
			r.Get("/balance", walletHandler.HandleGetBalance)
		})

		charsheetHandler := handler.NewCharsheetHandler(charsheetService)
		r.Route("/charsheet", func(r chi.Router) {
			r.Post("/", charsheetHandler.HandleCreateSheet)
			r.Get("/", charsheetHandler.HandleGetSheet)
			r.Delete("/", charsheetHandler.HandleDeleteSheet)
			r.Put("/scores", charsheetHandler.HandleUpdateScores)
			r.Get("/history", charsheetHandler.HandleGetHistory)
		})

		eventLogHandler := handler.NewEventLogHandler(eventlogService)
		r.Get("/events", eventLogHandler.HandleGetEvents)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		betpoolService:   betpoolService,
		walletService:    walletService,
		charsheetService: charsheetService,
		eventlogService:  eventlogService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes would drown out real traffic in the logs
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
