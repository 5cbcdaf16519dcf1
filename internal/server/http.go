// Package server serves the progress map over HTTP and keeps browser
// sessions in sync over websockets.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yildizm/TrailMap/internal/curve"
	"github.com/yildizm/TrailMap/internal/formatter"
	"github.com/yildizm/TrailMap/internal/logger"
	"github.com/yildizm/TrailMap/internal/mapview"
	"github.com/yildizm/TrailMap/internal/plan"
)

const shutdownTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Options configures a Server.
type Options struct {
	Address      string
	WriteTimeout time.Duration
	View         mapview.Config
	Progress     int
	Logger       *logger.Logger
}

// Server renders the map for plain HTTP requests and websocket sessions.
type Server struct {
	opts  Options
	cache *curve.Cache
	hub   *Hub
	log   *logger.Logger
	svg   formatter.Formatter
	json  formatter.Formatter

	mu   sync.RWMutex
	plan *plan.Plan
}

// New creates a server showing p, which may be nil for a preview map.
func New(p *plan.Plan, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logger.New("server", nil)
	}
	if opts.View.Canvas.Width == 0 || opts.View.Canvas.Height == 0 {
		opts.View = mapview.DefaultConfig()
	}
	return &Server{
		opts:  opts,
		cache: curve.NewCache(0),
		hub:   NewHub(),
		log:   opts.Logger,
		svg:   formatter.NewSVG(),
		json:  formatter.NewJSON(),
		plan:  p,
	}
}

// Plan returns the plan currently served.
func (s *Server) Plan() *plan.Plan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan
}

// SetPlan replaces the served plan and asks every session to re-render.
func (s *Server) SetPlan(p *plan.Plan) int {
	s.mu.Lock()
	s.plan = p
	s.mu.Unlock()

	n := s.hub.Broadcast(Command{Action: ActionReload})
	s.log.InfoWithFields("plan updated", []logger.Field{
		logger.Count(p.Len()),
		logger.F("sessions", n),
	})
	return n
}

// InitialProgress is the progress index new sessions start from.
func (s *Server) InitialProgress() int {
	return s.opts.Progress
}

// Hub returns the session hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

func (s *Server) newView() *mapview.View {
	return mapview.New(s.opts.View, mapview.WithCache(s.cache))
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/map.svg", s.handleSVG)
	mux.HandleFunc("/drawlist", s.handleDrawList)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWS)
	return enableCORS(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("TrailMap viewer listening on %s", s.opts.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// renderQuery renders a one-off map from ?progress= and ?open= parameters.
func (s *Server) renderQuery(r *http.Request) (*mapview.DrawList, error) {
	progress := s.opts.Progress
	if v := r.URL.Query().Get("progress"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid progress %q", v)
		}
		progress = n
	}

	in := mapview.Input{Plan: s.Plan(), Progress: progress}
	view := s.newView()
	dl := view.Render(in)

	if v := r.URL.Query().Get("open"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid open index %q", v)
		}
		if view.Activate(i) {
			dl = view.Render(in)
		}
	}
	return dl, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	dl, err := s.renderQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	svg, err := s.svg.Format(dl)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		Title: pageTitle(dl),
		// #nosec G203 - the SVG formatter escapes all plan text
		SVG: template.HTML(svg),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Warn("failed to render index page: %v", err)
	}
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	s.writeFormatted(w, r, s.svg, "image/svg+xml")
}

func (s *Server) handleDrawList(w http.ResponseWriter, r *http.Request) {
	s.writeFormatted(w, r, s.json, "application/json")
}

func (s *Server) writeFormatted(w http.ResponseWriter, r *http.Request, f formatter.Formatter, contentType string) {
	dl, err := s.renderQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	out, err := f.Format(dl)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(out); err != nil {
		s.log.Debug("failed to write response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		s.log.Debug("failed to write health response: %v", err)
	}
}

// handleWS upgrades the connection and starts the session pumps
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed: %v", err)
		return
	}

	client := newClient(s, conn)
	s.hub.Register(client)
	s.log.DebugWithFields("client connected", []logger.Field{
		logger.F("remote", r.RemoteAddr),
		logger.Count(s.hub.Count()),
	})

	go client.writePump()
	go client.session()
	go client.readPump()
}
