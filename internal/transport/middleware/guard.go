package middleware

import "net/http"

// Allow rejects every request with status and an {"error": message} body
// unless allowed is true. It gates endpoints that exist only in some
// deployments, such as preview generation outside production.
func Allow(allowed bool, status int, message string) Middleware {
	return func(next http.Handler) http.Handler {
		if allowed {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeProblem(w, status, message, "")
		})
	}
}
