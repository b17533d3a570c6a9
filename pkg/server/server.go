package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/khalid-nowaf/seqtrie/pkg/trie"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// Server exposes a string trie over HTTP.
// Reads work on a copy-on-write snapshot, so they never hold the lock
// while walking the tree.
type Server struct {
	mu     sync.RWMutex
	words  *trie.Strings
	server *http.Server
	logger zerolog.Logger
}

type countResponse struct {
	Count int `json:"count"`
}

type collectionsResponse struct {
	Prefix      string   `json:"prefix"`
	Collections []string `json:"collections"`
}

type sequenceResponse struct {
	Sequence string `json:"sequence"`
	Contains bool   `json:"contains"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a server on addr serving words.
// The server takes ownership of words.
func NewServer(addr string, words *trie.Strings, logger zerolog.Logger) *Server {
	s := &Server{
		words:  words,
		logger: logger,
	}

	// sequences may hold any byte, '/' included, so match them on the
	// escaped path and unescape them in the handlers
	r := mux.NewRouter().UseEncodedPath().SkipClean(true)

	// request logging middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			s.logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("took", time.Since(start)).
				Msg("handled request")
		})
	})

	r.HandleFunc("/count", s.count).Methods(http.MethodGet)
	r.HandleFunc("/collections", s.collections).Methods(http.MethodGet)
	r.HandleFunc("/collections/{seq:.*}", s.contains).Methods(http.MethodGet)
	r.HandleFunc("/collections/{seq:.*}", s.insert).Methods(http.MethodPut)
	r.HandleFunc("/collections/{seq:.*}", s.remove).Methods(http.MethodDelete)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and serves until ctx is cancelled,
// then shuts the server down gracefully.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("serving trie")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	<-serveErr
	s.logger.Info().Msg("server stopped")
	return nil
}

// snapshot returns a clone of the trie the caller must Release.
func (s *Server) snapshot() *trie.Strings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words.Clone()
}

func (s *Server) count(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot()
	defer snap.Release()
	writeJSON(w, http.StatusOK, countResponse{Count: snap.Count()})
}

func (s *Server) collections(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	snap := s.snapshot()
	defer snap.Release()
	writeJSON(w, http.StatusOK, collectionsResponse{
		Prefix:      prefix,
		Collections: snap.CollectionsWithPrefix(prefix),
	})
}

func (s *Server) contains(w http.ResponseWriter, r *http.Request) {
	seq, ok := sequenceVar(w, r)
	if !ok {
		return
	}
	snap := s.snapshot()
	defer snap.Release()

	status := http.StatusOK
	found := snap.Contains(seq)
	if !found {
		status = http.StatusNotFound
	}
	writeJSON(w, status, sequenceResponse{Sequence: seq, Contains: found})
}

func (s *Server) insert(w http.ResponseWriter, r *http.Request) {
	seq, ok := sequenceVar(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	existed := s.words.Contains(seq)
	s.words.Insert(seq)
	s.mu.Unlock()

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	writeJSON(w, status, sequenceResponse{Sequence: seq, Contains: true})
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	seq, ok := sequenceVar(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	removed, found := s.words.Remove(seq)
	s.mu.Unlock()

	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("sequence %q not found", seq)})
		return
	}
	writeJSON(w, http.StatusOK, sequenceResponse{Sequence: removed, Contains: false})
}

// sequenceVar returns the unescaped {seq} path variable,
// or answers 400 and returns false when it is not a valid escape
func sequenceVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	seq, err := url.PathUnescape(mux.Vars(r)["seq"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid sequence: %v", err)})
		return "", false
	}
	return seq, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
