package http

import (
	"github.com/filament-web/filament/config"
	"github.com/filament-web/filament/http"
	"github.com/filament-web/filament/http/proto"
	"github.com/filament-web/filament/http/status"
	"github.com/filament-web/filament/internal/server/tcp"
	"github.com/filament-web/filament/internal/transport/http1"
	"github.com/filament-web/filament/kv"
	"github.com/filament-web/filament/router"
)

// Server drives a single connection through its lifecycle: parse one
// request, apply the version policy, dispatch, serialize the outcome, close.
// Connections are not reused, every one carries exactly one request.
type Server struct {
	router router.Router
	cfg    config.Config
}

func NewServer(r router.Router, cfg config.Config) *Server {
	return &Server{
		router: r,
		cfg:    cfg,
	}
}

func (s *Server) Serve(client tcp.Client) {
	defer client.Close()

	request := http.NewRequest(kv.NewPrealloc(s.cfg.HTTP.HeadersPrealloc), client.Remote())
	parser := http1.NewParser(request, s.cfg.HTTP)
	serializer := http1.NewSerializer(make([]byte, 0, s.cfg.HTTP.ResponseBuffSize))

	if err := parser.Parse(client); err != nil {
		if _, ok := err.(status.HTTPError); !ok {
			// the connection broke before producing a parseable request,
			// there's nobody to respond to
			return
		}

		_ = serializer.Write(s.router.OnError(request, err), client)
		return
	}

	if request.Proto != proto.HTTP11 {
		_ = serializer.Write(s.router.OnError(request, status.ErrUnsupportedVersion), client)
		return
	}

	_ = serializer.Write(s.router.OnRequest(request), client)
}
