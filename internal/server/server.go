package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cszach/three.js-sketches/internal/solver"
	"github.com/cszach/three.js-sketches/pkg/scene"
	"github.com/cszach/three.js-sketches/pkg/spec"
)

// Server is the local development server: it solves the project once and
// serves the cached result until a client asks for a new solve.
type Server struct {
	projectPath string
	port        int
	log         *slog.Logger

	mu     sync.RWMutex
	spec   *spec.SketchSpec
	result *solver.Result
}

// New creates a server for the given project directory. A nil logger uses
// slog.Default.
func New(projectPath string, port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		log:         logger,
	}
}

// Reload re-reads the project spec and solves it with seed (0 keeps the
// spec seed). The previous result stays cached when loading fails; a spec
// that fails validation replaces it so clients can see the report.
func (s *Server) Reload(seed uint64) (*solver.Result, error) {
	start := time.Now()
	sp, res, err := solver.SolveProject(s.projectPath, seed)
	if sp == nil {
		s.log.Error("loading project failed", "project", s.projectPath, "err", err)
		return nil, err
	}

	s.mu.Lock()
	s.spec = sp
	s.result = res
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("solve failed", "seed", res.Seed, "summary", res.Validation.Summary)
		return res, err
	}
	s.log.Info("solved",
		"seed", res.Seed,
		"entities", len(res.Scene.Entities),
		"summary", res.Validation.Summary,
		"elapsed", time.Since(start))
	return res, nil
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/spec", s.handleSpec)
	mux.HandleFunc("POST /api/solve", s.handleSolve)
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return s.logRequests(mux)
}

// Start solves the project and launches the HTTP server.
func (s *Server) Start() error {
	if _, err := s.Reload(0); err != nil && s.current() == nil {
		return err
	}

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("sketchgen server starting", "url", "http://localhost"+addr, "project", s.projectPath)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) current() *solver.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>sketchgen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>sketchgen</h1>
<p>Scene JSON at <code>/api/scene</code> (<code>?t=seconds</code> poses the animation), statistics at <code>/api/stats</code>. <code>POST /api/solve?seed=N</code> regenerates.</p>
</div>
</body></html>`)
}

// handleScene serves the solved scene graph. With ?t=seconds the animated
// monoliths are posed at that point of their bobbing cycle.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	res := s.current()
	if res == nil || res.Scene == nil {
		writeError(w, http.StatusServiceUnavailable, "no scene available; the spec has not been solved successfully")
		return
	}
	q := r.URL.Query().Get("t")
	if q == "" {
		writeJSON(w, http.StatusOK, res.Scene)
		return
	}
	t, err := strconv.ParseFloat(q, 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid time %q", q))
		return
	}
	writeJSON(w, http.StatusOK, scene.AtTime(res.Scene, res.Fields, t))
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	res := s.current()
	if res == nil {
		writeError(w, http.StatusServiceUnavailable, "project not loaded")
		return
	}
	writeJSON(w, http.StatusOK, res.Validation)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	res := s.current()
	if res == nil || res.Analytics == nil {
		writeError(w, http.StatusServiceUnavailable, "no statistics available")
		return
	}
	writeJSON(w, http.StatusOK, res.Analytics)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	sp := s.spec
	s.mu.RUnlock()
	if sp == nil {
		writeError(w, http.StatusServiceUnavailable, "project not loaded")
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var seed uint64
	if q := r.URL.Query().Get("seed"); q != "" {
		n, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid seed %q", q))
			return
		}
		seed = n
	}

	res, err := s.Reload(seed)
	switch {
	case res == nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	case err != nil:
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"seed":       res.Seed,
			"validation": res.Validation,
		})
	default:
		writeJSON(w, http.StatusOK, map[string]any{
			"seed":       res.Seed,
			"validation": res.Validation,
			"entities":   len(res.Scene.Entities),
		})
	}
}

// writeJSON encodes v before writing the header so that an encoding
// failure turns into a 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("encoding response", "err", err)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(map[string]string{"error": "encoding response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
