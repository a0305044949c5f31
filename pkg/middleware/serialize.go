package middleware

import (
	"net/http"
	"sync"
)

// Serialize runs requests one at a time. The seat inventory and ledger are
// plain in-memory structures shared by every handler.
func Serialize() func(http.Handler) http.Handler {
	var mu sync.Mutex
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
