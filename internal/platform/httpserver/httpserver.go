package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Timeouts are generous; every handler answers
// from memory, so slow requests mean slow clients, not slow work.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
