// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"wireless-quote/core/engine"
	"wireless-quote/core/types"
	"wireless-quote/internal/errors"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	store   *VersionStore
	version string
	log     *zap.Logger
}

// NewServer creates a new API server around a quote engine
func NewServer(eng *engine.Engine, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		store:   NewVersionStore(),
		version: version,
		log:     log,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core operations
	s.mux.HandleFunc("POST /calculate", s.handleCalculate)
	s.mux.HandleFunc("POST /optimize", s.handleOptimize)
	s.mux.HandleFunc("POST /promotions/classify", s.handleClassify)
	s.mux.HandleFunc("POST /promotions/apply", s.handleApply)

	// Quote version snapshots
	s.mux.HandleFunc("POST /quote-versions", s.handleSnapshot)
	s.mux.HandleFunc("GET /quote-versions", s.handleListVersions)
	s.mux.HandleFunc("GET /quote-versions/{id}", s.handleGetVersion)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	s.log.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("duration", time.Since(start)))
}

// ListenAndServe starts the server on addr
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.log.Info("api server listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

// handleCalculate handles POST /calculate
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var cfg types.QuoteConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	s.writeData(w, http.StatusOK, s.engine.Calculate(cfg))
}

// handleOptimize handles POST /optimize
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var cfg types.QuoteConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	s.writeData(w, http.StatusOK, s.engine.Optimize(cfg))
}

// handleClassify handles POST /promotions/classify
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var cfg types.QuoteConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	s.writeData(w, http.StatusOK, s.engine.ClassifyPromotions(cfg))
}

// ApplyRequest is the POST /promotions/apply payload
type ApplyRequest struct {
	// Config is the quote to apply the promotion to
	Config types.QuoteConfig `json:"config"`

	// PromotionID is the catalog promotion to apply
	PromotionID string `json:"promotion_id"`
}

// handleApply handles POST /promotions/apply
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !s.decode(w, r, &req) {
		return
	}
	cfg, err := s.engine.ApplyPromotion(req.Config, req.PromotionID)
	if err != nil {
		status := http.StatusInternalServerError
		code := string(errors.TypeInternal)
		if errors.IsType(err, errors.TypeNotFound) {
			status = http.StatusNotFound
			code = string(errors.TypeNotFound)
		}
		s.writeError(w, code, err.Error(), status)
		return
	}
	s.writeData(w, http.StatusOK, cfg)
}

// handleSnapshot handles POST /quote-versions
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var cfg types.QuoteConfig
	if !s.decode(w, r, &cfg) {
		return
	}
	version := s.engine.Snapshot(cfg)
	s.store.Save(version)
	s.writeData(w, http.StatusCreated, version)
}

// handleListVersions handles GET /quote-versions
func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, s.store.List())
}

// handleGetVersion handles GET /quote-versions/{id}
func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	version, ok := s.store.Get(id)
	if !ok {
		s.writeError(w, string(errors.TypeNotFound), "quote version not found: "+id, http.StatusNotFound)
		return
	}
	s.writeData(w, http.StatusOK, version)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, VersionResponse{Version: s.version})
}

// decode parses a JSON request body, writing an error response on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) writeData(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Data: data}); err != nil {
		s.log.Error("response encoding failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Error: &ErrorBody{Code: code, Message: message}})
}
