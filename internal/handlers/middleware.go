package handlers

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"hanziclash/internal/security"
	"hanziclash/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	PlayerIDContextKey   ContextKey = "player_id"
	GuardianIDContextKey ContextKey = "guardian_id"
)

// Middleware holds dependencies for middleware functions.
type Middleware struct {
	auth    *service.AuthService
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance.
func NewMiddleware(auth *service.AuthService, limiter *security.RateLimiter) *Middleware {
	return &Middleware{auth: auth, limiter: limiter}
}

// RequirePlayer resolves the player session cookie to a player id, or
// rejects the request. Invalid cookies are cleared so the client does
// not keep retrying a dead token.
func (m *Middleware) RequirePlayer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(PlayerSessionCookie)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "not signed in", "", nil)
			return
		}

		playerID, err := m.auth.VerifyPlayerToken(cookie.Value)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r, PlayerSessionCookie))
			respondError(w, http.StatusUnauthorized, "session expired", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), PlayerIDContextKey, playerID)
		next(w, r.WithContext(ctx))
	}
}

// RequireGuardian resolves the guardian session cookie to a guardian id.
func (m *Middleware) RequireGuardian(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(GuardianSessionCookie)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "not signed in", "", nil)
			return
		}

		guardianID, err := m.auth.VerifyGuardianToken(cookie.Value)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r, GuardianSessionCookie))
			respondError(w, http.StatusUnauthorized, "session expired", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), GuardianIDContextKey, guardianID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects clients that exceed the per-IP budget. Used on the
// credential endpoints to slow PIN guessing.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.limiter.Allow(ip) {
			respondError(w, http.StatusTooManyRequests, "too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging logs HTTP requests.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets the websocket upgrade reach the underlying connection.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// PlayerIDFromContext retrieves the authenticated player id.
func PlayerIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(PlayerIDContextKey).(int64)
	return id
}

// GuardianIDFromContext retrieves the authenticated guardian id.
func GuardianIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(GuardianIDContextKey).(int64)
	return id
}
