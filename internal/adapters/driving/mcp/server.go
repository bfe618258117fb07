package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/orgsync/internal/logger"
)

// Version is reported to clients during initialisation.
const Version = "0.1.0"

// Endpoint is the path the streamable HTTP transport is mounted on.
const Endpoint = "/mcp"

const shutdownGrace = 5 * time.Second

// Server exposes parsed outlines to MCP clients.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer builds a server and registers every tool and resource the
// ports allow.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(&mcp.Implementation{Name: "orgsync", Version: Version}, nil),
	}
	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler routes Endpoint to the MCP transport and answers /healthz.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Handle(Endpoint, mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil))
	return r
}

// requestLogger logs each request at debug level. chi's wrapper keeps
// http.Flusher so streamed responses still flush.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Debug("mcp: %s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(),
			time.Since(start).Round(time.Millisecond), middleware.GetReqID(r.Context()))
	})
}

// RunHTTP serves Handler on addr until ctx is cancelled, then drains open
// requests for a few seconds.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: shutdown: %v", err)
		}
	}()

	logger.Info("mcp: serving %s on %s", Endpoint, addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
