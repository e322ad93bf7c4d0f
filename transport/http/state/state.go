// Package state tracks where the HTTP server is in its shutdown sequence.
package state

import "sync/atomic"

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

func (s ServerState) String() string {
	switch s {
	case ServerStateReady:
		return "ready"
	case ServerStateInGracePeriod:
		return "grace_period"
	case ServerStateInCleanupPeriod:
		return "cleanup_period"
	default:
		return "unknown"
	}
}

type Server struct {
	current atomic.Int32
}

// New returns a Server in the ready state.
func New() *Server {
	s := &Server{}
	s.Set(ServerStateReady)

	return s
}

func (s *Server) Set(state ServerState) {
	s.current.Store(int32(state))
}

func (s *Server) Get() ServerState {
	return ServerState(s.current.Load())
}

func (s *Server) Ready() bool {
	return s.Get() == ServerStateReady
}
