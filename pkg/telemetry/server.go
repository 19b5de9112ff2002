// Package telemetry exposes the running simulation over websockets.
// Connected clients receive JSON snapshots of the present state and
// the predicted trajectory, and can send control commands back.
package telemetry

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/opd-ai/go-orbit/pkg/health"
	"github.com/opd-ai/go-orbit/pkg/logging"
	"github.com/opd-ai/go-orbit/pkg/validation"
)

// commandBuffer bounds how many unprocessed client commands queue up
// before further ones are dropped.
const commandBuffer = 16

// Command is a control message sent by a client. Pointer fields
// distinguish absent keys from zero values.
type Command struct {
	TimeWarp *float64 `json:"timeWarp,omitempty"`
}

// Server broadcasts simulation snapshots to websocket clients and
// relays their control commands to the simulation loop. The loop calls
// Publish after each batch of ticks and drains Commands between them.
type Server struct {
	addr      string
	logger    *logging.Logger
	validator *validation.CommandValidator
	checker   *health.HealthChecker

	upgrader websocket.Upgrader

	clients   map[*websocket.Conn]*sync.Mutex
	clientsMu sync.RWMutex

	latest    Snapshot
	latestSet bool
	latestMu  sync.RWMutex

	commands chan Command

	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a telemetry server that will bind to addr.
func NewServer(addr string, logger *logging.Logger) *Server {
	s := &Server{
		addr:      addr,
		logger:    logger,
		validator: validation.NewCommandValidator(),
		checker:   health.NewHealthChecker(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Local tooling connects from arbitrary origins
				return true
			},
		},
		clients:  make(map[*websocket.Conn]*sync.Mutex),
		commands: make(chan Command, commandBuffer),
	}

	s.checker.AddCheck(health.NewTelemetryHealthCheck(s.ListenerAddr))
	return s
}

// AddHealthCheck registers an additional readiness check, such as the
// simulation's prediction cache validity.
func (s *Server) AddHealthCheck(check health.HealthCheck) {
	s.checker.AddCheck(check)
}

// Commands returns the channel of validated client commands.
func (s *Server) Commands() <-chan Command {
	return s.commands
}

// ListenerAddr returns the bound address, or empty before Start.
func (s *Server) ListenerAddr() string {
	s.latestMu.RLock()
	defer s.latestMu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Start binds the listener and serves until ctx is canceled. The bind
// happens synchronously so callers see address errors immediately.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.latestMu.Lock()
	s.listener = ln
	s.latestMu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", s.checker.LivenessHandler)
	mux.HandleFunc("/readyz", s.checker.ReadinessHandler)

	s.httpServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logError("telemetry shutdown error", err)
		}
		s.closeClients()
		s.validator.Close()
	}()

	s.logInfo("telemetry listening", "addr", ln.Addr().String())

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logError("telemetry server error", err)
		}
	}()

	return nil
}

// Publish stores the latest snapshot and broadcasts it to all clients.
// Stale connections are pruned on write failure.
func (s *Server) Publish(snap Snapshot) {
	s.latestMu.Lock()
	s.latest = snap
	s.latestSet = true
	s.latestMu.Unlock()

	s.clientsMu.RLock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
	for conn, mu := range s.clients {
		conns[conn] = mu
	}
	s.clientsMu.RUnlock()

	for conn, mu := range conns {
		mu.Lock()
		err := conn.WriteJSON(snap)
		mu.Unlock()
		if err != nil {
			s.dropClient(conn)
		}
	}
}

// handleWebSocket upgrades a connection, replays the latest snapshot,
// and reads control commands until the client disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logError("websocket upgrade failed", err)
		return
	}
	defer s.dropClient(conn)

	connMu := &sync.Mutex{}
	s.clientsMu.Lock()
	s.clients[conn] = connMu
	s.clientsMu.Unlock()

	clientID := conn.RemoteAddr().String()
	s.logInfo("telemetry client connected", "client", clientID)

	s.latestMu.RLock()
	latest, ok := s.latest, s.latestSet
	s.latestMu.RUnlock()
	if ok {
		connMu.Lock()
		err := conn.WriteJSON(latest)
		connMu.Unlock()
		if err != nil {
			return
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.logInfo("telemetry client disconnected", "client", clientID)
			return
		}
		s.handleClientMessage(data, clientID)
	}
}

// handleClientMessage validates and queues one control message.
// Commands are dropped when the queue is full rather than blocking the
// read loop.
func (s *Server) handleClientMessage(data []byte, clientID string) {
	if err := s.validator.ValidateMessage(data, clientID); err != nil {
		s.logInfo("rejected telemetry command", "client", clientID, "reason", err.Error())
		return
	}

	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		s.logInfo("malformed telemetry command", "client", clientID)
		return
	}

	if cmd.TimeWarp != nil {
		if err := validation.ValidateTimeWarp(*cmd.TimeWarp); err != nil {
			s.logInfo("rejected time warp", "client", clientID, "reason", err.Error())
			return
		}
	}

	select {
	case s.commands <- cmd:
	default:
		s.logInfo("command queue full, dropping command", "client", clientID)
	}
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	_, present := s.clients[conn]
	delete(s.clients, conn)
	s.clientsMu.Unlock()

	if present {
		conn.Close()
	}
}

func (s *Server) closeClients() {
	s.clientsMu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]*sync.Mutex)
	s.clientsMu.Unlock()
}

func (s *Server) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(context.Background(), msg, args...)
	}
}

func (s *Server) logError(msg string, err error) {
	if s.logger != nil {
		s.logger.Error(context.Background(), msg, err)
	}
}
