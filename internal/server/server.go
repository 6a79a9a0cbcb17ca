package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	defaultPort       = "8080"
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	// Reviews are enriched one sentiment call at a time, so writes get more
	// room than a plain API would.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server owns the HTTP listener lifecycle for the review API.
type Server struct {
	httpServer *http.Server
}

// New builds a server listening on port ("8080" or ":8080"; empty means the
// default port) and serving handler.
func New(port string, handler http.Handler) *Server {
	return &Server{httpServer: &http.Server{
		Addr:              normalizeAddr(port),
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}}
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		port = defaultPort
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// Addr reports the configured listen address.
func (s *Server) Addr() string {
	if s == nil || s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

// Run blocks serving requests. A graceful Shutdown makes it return nil.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
