// Package httpserver builds the process http.Server with its transport
// limits in one place.
package httpserver

import (
	"net/http"
	"time"
)

// New returns a server for addr. Per-request deadlines are enforced by the
// router's timeout middleware, so only the connection-level limits live here.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
