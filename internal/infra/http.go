package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/s21platform/quickchat/internal/config"
	api "github.com/s21platform/quickchat/internal/generated"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/logger"
)

// AccessTokenParam carries the session token for clients that cannot set
// headers, such as EventSource.
const AccessTokenParam = "access_token"

type TokenValidator interface {
	ValidateSessionToken(token string) (*model.SessionClaims, error)
}

// AuthInterceptorHTTP puts the user id and session id of the bearer token into
// the request context. Routes listed in public, as "METHOD /path", pass through
// without a token.
func AuthInterceptorHTTP(next http.Handler, tokens TokenValidator, public ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lo.Contains(public, r.Method+" "+r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromContext(r.Context(), config.KeyLogger)

		token := bearerToken(r)
		if token == "" {
			log.Warn("request without session token")
			writeUnauthorized(w, "missing session token")
			return
		}

		claims, err := tokens.ValidateSessionToken(token)
		if err != nil {
			log.Warn(fmt.Sprintf("invalid session token: %v", err))
			writeUnauthorized(w, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		ctx = context.WithValue(ctx, config.KeySession, claims.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggerHTTP attaches a request-scoped logger and logs every finished request.
func LoggerHTTP(next http.Handler, base *logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := base.With("request_id", uuid.NewString(), "method", r.Method, "path", r.URL.Path)
		ctx := context.WithValue(r.Context(), config.KeyLogger, reqLogger)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		reqLogger.Info(fmt.Sprintf("%d %s in %s", ww.Status(), http.StatusText(ww.Status()), time.Since(start)))
	})
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ""
		}
		return strings.TrimSpace(token)
	}
	return r.URL.Query().Get(AccessTokenParam)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
