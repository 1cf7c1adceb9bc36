// Package server provides the HTTP REST API for the chief-of-staff dashboard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/chief-of-staff/internal/calendar"
	"github.com/jonathan/chief-of-staff/internal/config"
	"github.com/jonathan/chief-of-staff/internal/db"
	"github.com/jonathan/chief-of-staff/internal/server/middleware"
	"github.com/jonathan/chief-of-staff/internal/server/ratelimit"
	"github.com/jonathan/chief-of-staff/internal/types"
)

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	source      calendar.Source
	profile     *types.Profile
	styleGuide  *types.StyleGuide
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string

	// Calendar inputs. At least one of CalendarPath or ICSFeed must be
	// set; when both are set their events are merged by entry ID.
	CalendarPath string
	ICSFeed      string

	// Optional paths; defaults are used when empty.
	ProfilePath    string
	StyleGuidePath string
}

// New creates a new server instance. The database is optional: when
// DatabaseURL is empty the feedback and auth endpoints respond with
// 503 and everything else works normally.
func New(cfg Config) (*Server, error) {
	source, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}

	profile := config.DefaultProfile()
	if cfg.ProfilePath != "" {
		profile, err = config.LoadProfile(cfg.ProfilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
	}

	styleGuide := config.DefaultStyleGuide()
	if cfg.StyleGuidePath != "" {
		styleGuide, err = config.LoadStyleGuide(cfg.StyleGuidePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load style guide: %w", err)
		}
	}

	s := &Server{
		source:     source,
		profile:    profile,
		styleGuide: styleGuide,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.InitSchema(context.Background()); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		s.db = database

		passwordConfig, err := config.NewPasswordConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create password config: %w", err)
		}
		s.userService = NewUserService(database, passwordConfig)

		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.authHandler = NewAuthHandler(s.userService, s.jwtService)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// buildSource assembles the calendar source from configuration.
func buildSource(cfg Config) (calendar.Source, error) {
	var sources []calendar.Source
	if cfg.CalendarPath != "" {
		sources = append(sources, calendar.CSVSource{Path: cfg.CalendarPath})
	}
	if cfg.ICSFeed != "" {
		sources = append(sources, &calendar.ICSSource{Name: "ics", Feed: cfg.ICSFeed})
	}
	if token := os.Getenv("GOOGLE_ACCESS_TOKEN"); token != "" {
		sources = append(sources, &calendar.GoogleSource{
			AccessToken: token,
			CalendarID:  os.Getenv("GOOGLE_CALENDAR_ID"),
		})
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no calendar source configured")
	}
	if len(sources) == 1 {
		return sources[0], nil
	}
	return calendar.MultiSource(sources), nil
}

// routes builds the ServeMux with all API endpoints.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/calendar-audit", s.handleCalendarAudit)
	mux.HandleFunc("GET /api/daily-briefing", s.handleDailyBriefing)
	mux.HandleFunc("GET /api/available-dates", s.handleAvailableDates)
	mux.HandleFunc("POST /api/check-style", s.handleCheckStyle)

	if s.db != nil {
		requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
		mux.Handle("POST /api/feedback", requireAuth(http.HandlerFunc(s.handleCreateFeedback)))
		mux.Handle("GET /api/feedback", requireAuth(http.HandlerFunc(s.handleListFeedback)))
		mux.HandleFunc("POST /auth/register", s.authHandler.Register)
		mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	} else {
		mux.HandleFunc("/api/feedback", s.handleNoDatabase)
		mux.HandleFunc("/auth/", s.handleNoDatabase)
	}

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNoDatabase responds for persistence-backed routes when the
// server runs without a database.
func (s *Server) handleNoDatabase(w http.ResponseWriter, _ *http.Request) {
	s.errorResponse(w, http.StatusServiceUnavailable, "database not configured")
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is spoofable without a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
