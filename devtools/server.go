// Package devtools serves a small inspector over HTTP: a static page plus
// a WebSocket channel that streams every Diff/Diffed/Commit Option-hook
// firing as JSON, so a developer can watch reconciliation happen live.
//
// Grounded on the teacher's pkg/server (chi-routed HTTP surface,
// gorilla/websocket upgrade-and-broadcast loop) and internal/dev's
// hot-reload channel (the same "broadcast an event to every connected
// browser tab" shape, here broadcasting diff events instead of file
// changes).
package devtools

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lumenjs/lumen"
)

// Event is one Option-hook firing, marshaled for the inspector's
// WebSocket clients.
type Event struct {
	Kind      string `json:"kind"` // "diff", "diffed", or "commit"
	Component string `json:"component,omitempty"`
	Effects   int    `json:"effects,omitempty"`
}

// Server hosts the inspector's HTTP surface: "/" (a minimal HTML page),
// "/ws" (the push channel), and "/healthz".
type Server struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan Event
}

// NewServer builds a devtools Server. Call Install to wire it to an
// engine's Option hooks, then mount Handler() under an HTTP server.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:  logger,
		clients: map[*websocket.Conn]chan Event{},
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Install chains devtools' broadcast into o's Diff/Diffed/Commit hooks,
// preserving any hooks already installed (e.g. by metrics.Recorder or
// tracing.Middleware).
func (s *Server) Install(o *lumen.Options) {
	prevDiff := o.Diff
	o.Diff = func(v *lumen.VNode) {
		if prevDiff != nil {
			prevDiff(v)
		}
		s.broadcast(Event{Kind: "diff", Component: lumen.ComponentLabel(v)})
	}

	prevDiffed := o.Diffed
	o.Diffed = func(v *lumen.VNode) {
		if prevDiffed != nil {
			prevDiffed(v)
		}
		s.broadcast(Event{Kind: "diffed", Component: lumen.ComponentLabel(v)})
	}

	prevCommit := o.Commit
	o.Commit = func(root *lumen.VNode, pendingEffects int) {
		if prevCommit != nil {
			prevCommit(root, pendingEffects)
		}
		s.broadcast(Event{Kind: "commit", Effects: pendingEffects})
	}
}

func (s *Server) broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- ev:
		default:
			// Slow client: drop the event rather than block reconciliation.
		}
	}
}

// Handler returns the chi router serving the inspector.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(inspectorPage))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("devtools websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ch := make(chan Event, 64)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	for ev := range ch {
		payload, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

const inspectorPage = `<!doctype html>
<html>
<head><title>lumen inspector</title></head>
<body>
<h1>lumen inspector</h1>
<pre id="log"></pre>
<script>
  const log = document.getElementById("log");
  const ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = (e) => { log.textContent += e.data + "\n"; };
</script>
</body>
</html>`
