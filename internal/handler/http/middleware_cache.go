package http

import "net/http"

// noClientCache forbids intermediary and browser caching on read endpoints
// whose payload the client edits optimistically; a cached read would undo a
// locally applied change.
func noClientCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		next.ServeHTTP(w, r)
	})
}
