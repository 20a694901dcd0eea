package debug

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// Config wires the server to the simulation it tunes
type Config struct {
	Addr   string
	Logger *log.Logger

	Tuning *engine.TuningResource
	Status *status.Registry
}

// TuningState is the JSON form of the live tuning values
type TuningState struct {
	TickMS   int64   `json:"tick_ms"`
	LerpRate float64 `json:"lerp_rate"`
}

// TuningUpdate is a partial tuning change; absent fields are left alone
type TuningUpdate struct {
	TickMS   *int64   `json:"tick_ms,omitempty"`
	LerpRate *float64 `json:"lerp_rate,omitempty"`
}

// Server exposes tuning over HTTP and streams frame snapshots over websocket
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}

	httpServer *http.Server
	listener   net.Listener

	dropped atomic.Int64
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewServer creates a server; Start opens the listener
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}
	return s
}

// Handler returns the HTTP routes: /tuning, /status and /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tuning", s.handleTuning)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Start listens on cfg.Addr and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("debug listen %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	core.Go(func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("debug server: %v", err)
		}
	})
	s.logger.Printf("debug server listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Close stops the listener and disconnects every client
func (s *Server) Close() error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Close()
	}

	s.mu.Lock()
	for c := range s.clients {
		c.conn.Close()
	}
	s.mu.Unlock()
	return err
}

// ClientCount returns the number of connected websocket clients
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Dropped returns the number of snapshots skipped for slow clients
func (s *Server) Dropped() int64 {
	return s.dropped.Load()
}

// Publish queues snap for every client without blocking
// A client whose buffer is full misses this snapshot
func (s *Server) Publish(snap engine.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Printf("debug: marshal snapshot: %v", err)
		return
	}
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.dropped.Add(1)
		}
	}
}

// Apply applies u to the tuning resource and returns the resulting state
func (s *Server) Apply(u TuningUpdate) (TuningState, error) {
	if u.TickMS != nil {
		d := s.cfg.Tuning.SetTickInterval(time.Duration(*u.TickMS) * time.Millisecond)
		s.logger.Printf("debug: tick interval set to %v", d)
	}
	if u.LerpRate != nil {
		if err := s.cfg.Tuning.SetLerpRate(*u.LerpRate); err != nil {
			return s.state(), err
		}
		s.logger.Printf("debug: lerp rate set to %.2f", s.cfg.Tuning.LerpRate())
	}
	return s.state(), nil
}

func (s *Server) state() TuningState {
	return TuningState{
		TickMS:   s.cfg.Tuning.TickInterval().Milliseconds(),
		LerpRate: s.cfg.Tuning.LerpRate(),
	}
}

func (s *Server) handleTuning(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.state())
	case http.MethodPost:
		var u TuningUpdate
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			http.Error(w, "malformed tuning update", http.StatusBadRequest)
			return
		}
		st, err := s.Apply(u)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeJSON(w, http.StatusOK, st)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Status == nil {
		writeJSON(w, http.StatusOK, map[string]float64{})
		return
	}
	writeJSON(w, http.StatusOK, s.cfg.Status.Snapshot())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("debug: upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, parameter.DebugClientBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()

	core.Go(func() { s.writeLoop(c) })

	defer s.remove(c)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var u TuningUpdate
		if err := json.Unmarshal(payload, &u); err != nil {
			s.logger.Printf("debug: discarding malformed message: %v", err)
			continue
		}
		if _, err := s.Apply(u); err != nil {
			s.logger.Printf("debug: rejected tuning update: %v", err)
		}
	}
}

func (s *Server) writeLoop(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(parameter.DebugWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			c.conn.Close()
			// Drain until remove closes the channel
			for range c.send {
			}
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

// remove unregisters c; closing send under mu keeps Publish from sending on a closed channel
func (s *Server) remove(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
