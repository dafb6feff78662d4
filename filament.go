// Package filament is a small HTTP/1.1 server exposing a fixed set of
// routes over per-connection goroutines. The protocol layer lives in
// internal/transport/http1, routing in router/prefix, and the endpoints
// themselves in routes.
package filament

import (
	"net"
	"sync/atomic"

	"github.com/filament-web/filament/config"
	"github.com/filament-web/filament/http/status"
	httpserver "github.com/filament-web/filament/internal/server/http"
	"github.com/filament-web/filament/internal/server/tcp"
	"github.com/filament-web/filament/router"
)

type App struct {
	addr  string
	cfg   config.Config
	hooks hooks
	errCh chan error
}

// New returns a new App instance bound to the given address, carrying the
// default config.
func New(addr string) *App {
	return &App{
		addr:  addr,
		cfg:   config.Default(),
		// buffered, so the accept loop can report its exit even after an
		// explicit Stop already delivered the verdict
		errCh: make(chan error, 1),
	}
}

// Tune replaces the default config. Zero values fall back to defaults.
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback at the moment the listener is up.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the server is down and no new
// connections can arrive anymore.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the server and blocks until it stops. The returned error is
// status.ErrShutdown or status.ErrGracefulShutdown after an explicit stop,
// or whatever broke the accept loop otherwise.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	httpServer := httpserver.NewServer(r, a.cfg)
	server := tcp.NewServer(sock, func(conn net.Conn) {
		buff := make([]byte, a.cfg.NET.ReadBufferSize)
		httpServer.Serve(tcp.NewClient(conn, a.cfg.NET.ReadTimeout, buff))
	})

	return a.run(server)
}

func (a *App) run(server *tcp.Server) error {
	var failSilently atomic.Bool

	go func() {
		err := server.Start()

		if failSilently.Swap(true) {
			return
		}

		a.errCh <- err
	}()

	callIfNotNil(a.hooks.OnStart)
	err := <-a.errCh
	if err == status.ErrGracefulShutdown {
		// stop accepting new clients, serve the old ones till the end
		_ = server.GracefulShutdown()
	} else {
		_ = server.Stop()
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving the old
// ones.
//
// NOTE: the call isn't blocking.
func (a *App) GracefulStop() {
	a.errCh <- status.ErrGracefulShutdown
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking.
func (a *App) Stop() {
	a.errCh <- status.ErrShutdown
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
