package bridge

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultAddr is where the action server listens unless configured
// otherwise. Loopback only: the bridge trusts its callers.
const DefaultAddr = "127.0.0.1:7436"

// Forwarder hands a decoded command to the workspace and blocks for its
// result. The app's forwarder routes through the Bubble Tea event loop, so
// agent commands and keystrokes mutate the layout on the same goroutine.
type Forwarder func(Command) Result

// Server receives agent action requests over HTTP: POST /actions with a
// JSON command payload, JSON Result back.
type Server struct {
	srv     *http.Server
	lis     net.Listener
	forward Forwarder
	log     *zap.Logger
}

// NewServer creates an action server. A nil logger disables logging.
func NewServer(addr string, forward Forwarder, log *zap.Logger) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{forward: forward, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/actions", s.handleActions)
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start binds the listen address and serves in the background. Bind errors
// are returned synchronously so a busy port fails fast at startup.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.lis = lis
	s.log.Info("action bridge listening", zap.String("addr", lis.Addr().String()))
	go func() {
		if err := s.srv.Serve(lis); err != nil && err != http.ErrServerClosed {
			s.log.Error("action bridge stopped", zap.Error(err))
		}
	}()
	return nil
}

// Addr returns the bound address, valid after Start.
func (s *Server) Addr() string {
	if s.lis == nil {
		return s.srv.Addr
	}
	return s.lis.Addr().String()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 64*1024))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cmd, err := DecodeCommand(body)
	if err != nil {
		s.log.Warn("rejected action payload", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: err.Error()})
		return
	}

	res := s.forward(cmd)
	s.log.Info("action dispatched",
		zap.String("op", string(cmd.Op)),
		zap.String("panel", string(cmd.Panel)),
		zap.Bool("success", res.Success),
	)
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
