// Package server exposes the renderer over HTTP: a websocket endpoint that
// runs render jobs and streams progress, plus scene listing and health
// checks. Operational endpoints (metrics, pprof) live on a separate admin
// mux.
package server

import (
	"net/http"
	"net/http/pprof"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/magus/ray-tracer/pkg/scene"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
	"golang.org/x/net/websocket"
)

// Server handles render requests for the web UI
type Server struct {
	// MaxImageHeight caps requested image sizes; larger requests are
	// rejected before rendering starts.
	MaxImageHeight int
}

// NewServer creates a render server with default limits
func NewServer() *Server {
	return &Server{MaxImageHeight: 2160}
}

// Routes registers the public API on the given mux
func (s *Server) Routes(mux *http.ServeMux) {
	mux.Handle("/api/render", websocket.Server{
		Handler: func(conn *websocket.Conn) {
			defer conn.Close()
			s.handleRender(conn)
		},
	})
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/health", handleHealthCheck)
}

// AdminRoutes registers metrics, pprof and health on the admin mux
func AdminRoutes(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", handleHealthCheck)
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/debug/pprof/heap", pprof.Handler("heap"))
}

// handleScenes lists the available scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	body, err := json.Marshal(map[string][]string{"scenes": scene.Names()})
	if err != nil {
		logs.Error(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Write(body)
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
