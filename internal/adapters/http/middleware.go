package httpadapter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/solacehq/solace-api/internal/app/auth"
	"github.com/solacehq/solace-api/internal/domain"
	"github.com/solacehq/solace-api/internal/observability"
)

type ctxKey string

const ctxKeyUser ctxKey = "authenticated_user"

// withRequestLogging stitches chi's request id into the slog context and logs
// every request on the way out.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := observability.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))

		observability.LoggerFromContext(ctx).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

// withCORS adds basic CORS headers to allow calls from the web front-end.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withAuth rejects requests without a valid bearer token.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.resolveToken(w, r)
		if !ok {
			return
		}
		if user == nil {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// withOptionalAuth lets requests through without a token, but a token that is
// present must be valid.
func (s *Server) withOptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.resolveToken(w, r)
		if !ok {
			return
		}

		ctx := r.Context()
		if user != nil {
			ctx = withUser(ctx, user)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// resolveToken verifies the Authorization header if present. Returns
// (nil, true) when no header was sent; writes the 401 itself and returns
// (nil, false) when a sent token fails verification.
func (s *Server) resolveToken(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, true
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		unauthorized(w)
		return nil, false
	}

	user, err := s.auth.VerifyToken(r.Context(), token)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn("token rejected",
			"token", auth.TokenPreview(token))
		unauthorized(w)
		return nil, false
	}

	return user, true
}

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// userFrom returns the authenticated user, or nil for anonymous requests.
func userFrom(r *http.Request) *domain.User {
	user, _ := r.Context().Value(ctxKeyUser).(*domain.User)
	return user
}
