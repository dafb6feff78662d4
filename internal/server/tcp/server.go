package tcp

import (
	"log"
	"net"
	"sync"

	"github.com/filament-web/filament/http/status"
)

type OnConn func(net.Conn)

// Server accepts connections and spawns one goroutine per each of them. A
// panic inside a connection callback is recovered, so one broken connection
// never takes down the listener or its siblings.
type Server struct {
	sock     net.Listener
	onConn   OnConn
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

func NewServer(sock net.Listener, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			s.mu.Lock()
			wasShutdown := s.shutdown
			s.mu.Unlock()
			if wasShutdown {
				return status.ErrShutdown
			}

			return err
		}

		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()
		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

func (s *Server) stopListener() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts listener and ALL the connections down.
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops the listener, but leaves all the connections free to
// end their lives peacefully.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	defer func() {
		if v := recover(); v != nil {
			log.Printf("panic on connection %s: %v", conn.RemoteAddr(), v)
			_ = conn.Close()
		}

		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		wg.Done()
	}()

	s.onConn(conn)
}
