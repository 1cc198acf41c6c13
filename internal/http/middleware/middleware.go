package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/infocomm/inventory-backend/internal/auth"
	"github.com/infocomm/inventory-backend/internal/http/rate_limiter"
	"github.com/infocomm/inventory-backend/internal/logger"
)

type contextKey string

const claimsKey = contextKey("claims")

// Auth rejects requests without a valid, non-revoked bearer token and stores
// the token claims in the request context.
func Auth(tokens *auth.TokenManager, revoker auth.Revoker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if revoker != nil && claims.ID != "" {
				revoked, err := revoker.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					http.Error(w, "could not verify token", http.StatusInternalServerError)
					return
				}
				if revoked {
					http.Error(w, "token revoked", http.StatusUnauthorized)
					return
				}
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by Auth.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// RateLimit answers 429 once the caller's IP exhausts its bucket.
func RateLimit(limiter *rate_limiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger writes one line per request once it completes.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Infof("%s %s -> %d (%s) request_id=%s",
				r.Method, r.URL.Path, ww.Status(), time.Since(start), chimw.GetReqID(r.Context()))
		})
	}
}

// clientIP expects RemoteAddr to have been normalised by chi's RealIP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
