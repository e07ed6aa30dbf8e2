package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/insight-calendar/pkg/ctxutil"
)

// UserIDHeader carries the caller's opaque user identifier.
const UserIDHeader = "X-User-Id"

// CronAuth protects scheduler-triggered endpoints with a shared bearer
// secret. In development every request passes. Outside development an unset
// secret is a server misconfiguration (500) and a wrong header is 401.
func CronAuth(secret string, development bool, logger *slog.Logger) Middleware {
	expected := "Bearer " + secret

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if development {
				next.ServeHTTP(w, asCron(r))
				return
			}

			if secret == "" {
				logger.ErrorContext(r.Context(), "cron secret is not configured")
				writeProblem(w, http.StatusInternalServerError, "Server configuration error", "CRON_SECRET is not set")
				return
			}

			got := r.Header.Get("Authorization")
			if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				logger.WarnContext(r.Context(), "cron auth rejected", slog.String("path", r.URL.Path))
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header")
				return
			}

			next.ServeHTTP(w, asCron(r))
		})
	}
}

func asCron(r *http.Request) *http.Request {
	return r.WithContext(ctxutil.WithTrigger(r.Context(), ctxutil.TriggerCron))
}

// UserID copies the X-User-Id header into the request context. Requests
// without the header pass through anonymously.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), id)))
	})
}

// writeProblem writes {"error": title, "message": message}.
func writeProblem(w http.ResponseWriter, status int, title, message string) {
	body := map[string]string{"error": title}
	if message != "" {
		body["message"] = message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
