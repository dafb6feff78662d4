// Package prefix implements a router dispatching on (method, path) pairs in
// strict registration order. An entry matches either the exact path or a raw
// path prefix; the first match wins, so more specific routes must be
// registered before broader ones. No match results in 404.
package prefix

import (
	"strings"

	"github.com/filament-web/filament/http"
	"github.com/filament-web/filament/http/method"
	"github.com/filament-web/filament/http/status"
)

type Handler func(request *http.Request) *http.Response

type route struct {
	method   method.Method
	path     string
	isPrefix bool
	handler  Handler
}

type Router struct {
	routes []route
}

func New() *Router {
	return new(Router)
}

// Route registers a handler for the exact path.
func (r *Router) Route(m method.Method, path string, handler Handler) *Router {
	r.routes = append(r.routes, route{
		method:  m,
		path:    path,
		handler: handler,
	})
	return r
}

// RoutePrefix registers a handler for every path beginning with the given
// prefix. The prefix is matched against the raw path, no segment awareness.
func (r *Router) RoutePrefix(m method.Method, prefix string, handler Handler) *Router {
	r.routes = append(r.routes, route{
		method:   m,
		path:     prefix,
		isPrefix: true,
		handler:  handler,
	})
	return r
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	for _, entry := range r.routes {
		if entry.method != request.Method {
			continue
		}

		if entry.isPrefix {
			if strings.HasPrefix(request.Path, entry.path) {
				return entry.handler(request)
			}
		} else if request.Path == entry.path {
			return entry.handler(request)
		}
	}

	return http.NewResponse().Code(status.NotFound)
}

func (r *Router) OnError(request *http.Request, err error) *http.Response {
	return http.NewResponse().Error(err)
}
