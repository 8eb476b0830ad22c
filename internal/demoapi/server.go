// Package demoapi serves a self-contained fixture of the analytics backend.
//
// Endpoints:
//   - POST /api/auth/login                 - exchange email/password for a token
//   - GET  /api/analytics                  - daily series (bearer token required)
//   - GET  /api/analytics/dashboard-stats  - aggregate snapshot (bearer token required)
//   - GET  /api/users                      - user directory (bearer token required)
//   - GET  /healthz                        - liveness
//
// The demo account is DemoEmail / DemoPassword. Issued tokens live in memory
// for the lifetime of the server.
package demoapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"statdeck/internal/platform/id"
)

const (
	DemoEmail    = "demo@statdeck.dev"
	DemoPassword = "demo"
	DemoName     = "Demo User"
)

type account struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash []byte
}

// Server holds the issued tokens and fixture data.
type Server struct {
	logger  *zap.Logger
	account account
	data    Fixture
	ids     id.Generator

	mu     sync.RWMutex
	tokens map[string]string
}

// New hashes the demo password at bcrypt.MinCost and prepares the fixture.
func New(data Fixture, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	return &Server{
		logger: logger,
		account: account{
			ID:           "u-1",
			Name:         DemoName,
			Email:        DemoEmail,
			Role:         "admin",
			PasswordHash: hash,
		},
		data:   data,
		ids:    id.UUID{},
		tokens: map[string]string{},
	}, nil
}

// Routes returns the chi router for the demo API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.handleLogin)

		api.Group(func(pr chi.Router) {
			pr.Use(s.requireBearer)
			pr.Get("/analytics", s.handleSeries)
			pr.Get("/analytics/dashboard-stats", s.handleStats)
			pr.Get("/users", s.handleUsers)
		})
	})
	return r
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !strings.EqualFold(strings.TrimSpace(in.Email), s.account.Email) ||
		bcrypt.CompareHashAndPassword(s.account.PasswordHash, []byte(in.Password)) != nil {
		s.logger.Info("login rejected", zap.String("email", in.Email))
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := s.ids.New()
	s.mu.Lock()
	s.tokens[token] = s.account.ID
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":    s.account.ID,
			"name":  s.account.Name,
			"email": s.account.Email,
			"role":  s.account.Role,
		},
	})
}

func (s *Server) handleSeries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Series)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Stats)
}

func (s *Server) handleUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Users)
}

// Valid reports whether token was issued by this server.
func (s *Server) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || !s.Valid(strings.TrimSpace(token)) {
			writeError(w, http.StatusUnauthorized, "missing or invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("demo api request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.String("client_request_id", r.Header.Get("X-Request-ID")),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
