// Package web serves retained rate observations over HTTP and WebSocket for
// operators of an instrumented pipeline.
package web

import (
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/throughput/pkg/store"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// RateStore is the interface from which the server will get observations to
// be rendered via HTTP in JSON.
type RateStore interface {
	Observations() store.Observations
	Latest() (store.Observation, error)
}

// Server handles setting up an HTTP server and servicing HTTP requests.
type Server struct {
	lis        net.Listener
	server     *http.Server
	logWriter  io.Writer
	middleware func(http.Handler) http.Handler
	pollEvery  time.Duration
}

// NewServer opens a TCP listener and returns an initialized Server.
func NewServer(port uint16, rs RateStore, opts ...ServerOption) *Server {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		log.Fatalf("failed to start listener: %d", port)
	}

	log.Printf("server bound to %s", lis.Addr().String())

	s := &Server{
		lis:        lis,
		logWriter:  os.Stdout,
		middleware: func(h http.Handler) http.Handler { return h },
		pollEvery:  time.Second,
	}

	for _, o := range opts {
		o(s)
	}

	router := mux.NewRouter()

	router.Handle("/observations", ObservationsIndex(rs)).
		Methods(http.MethodGet)
	router.Handle("/observations/latest", ObservationsLatest(rs)).
		Methods(http.MethodGet)
	router.Handle("/observations/stream", ObservationsStream(rs, s.pollEvery)).
		Methods(http.MethodGet)

	s.server = &http.Server{
		Handler: handlers.LoggingHandler(s.logWriter, s.middleware(router)),
	}

	return s
}

// Addr returns the address that the listener is bound to.
func (s *Server) Addr() string {
	return s.lis.Addr().String()
}

// Serve serves the HTTP server on the servers Listener. This is a blocking
// method.
func (s *Server) Serve() {
	log.Println(s.server.Serve(s.lis))
}

// Stop will perform a graceful shutdown of the HTTP server.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Println(s.server.Shutdown(ctx))
}

// ServerOption is a function that can be passed to the server initializer to
// configure optional settings.
type ServerOption func(*Server)

// WithLogWriter will override the writer used for HTTP request logs.
func WithLogWriter(w io.Writer) ServerOption {
	return func(s *Server) {
		s.logWriter = w
	}
}

// WithBasicAuth protects all routes with basic authentication.
func WithBasicAuth(username, password string) ServerOption {
	return func(s *Server) {
		s.middleware = BasicAuthMiddleware(username, password)
	}
}

// WithPollInterval overrides how often the stream handler polls the store
// for a new observation.
func WithPollInterval(d time.Duration) ServerOption {
	return func(s *Server) {
		s.pollEvery = d
	}
}
