package middleware

import (
	"net/http"

	"github.com/jpkn-sabah/attendance-backend-go/internal/handler/http/response"
)

// SeedGate holds all data routes back with 503 until ready reports true.
// Seed status/retry routes are mounted outside the gated group so operators
// can watch and restart the load.
func SeedGate(ready func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ready() {
				response.ServiceUnavailable(w, "Data store is still being initialized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
