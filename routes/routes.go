// Package routes wires the fixed set of endpoints the server exposes onto a
// prefix router, in the precedence order that makes them behave: the index
// first, then echo, user-agent and the two file routes. Anything else falls
// through to the router's 404.
package routes

import (
	"strings"

	"github.com/filament-web/filament/blob"
	"github.com/filament-web/filament/http"
	"github.com/filament-web/filament/http/header"
	"github.com/filament-web/filament/http/method"
	"github.com/filament-web/filament/http/mime"
	"github.com/filament-web/filament/http/status"
	"github.com/filament-web/filament/router/prefix"
)

func Register(r *prefix.Router, store *blob.Store) *prefix.Router {
	return r.
		Route(method.GET, "/", Index).
		RoutePrefix(method.GET, "/echo/", Echo).
		Route(method.GET, "/user-agent", UserAgent).
		RoutePrefix(method.GET, "/files/", ReadFile(store)).
		RoutePrefix(method.POST, "/files/", WriteFile(store))
}

// Index responds 200 with no headers and no body.
func Index(*http.Request) *http.Response {
	return http.NewResponse()
}

// Echo reflects the path remainder as a plain-text body. Embedded slashes
// survive, as the remainder is rejoined from all the segments past /echo/.
func Echo(request *http.Request) *http.Response {
	return http.NewResponse().String(remainder(request.Path))
}

// UserAgent reflects the User-Agent header value. A request without the
// header is answered with 404, not 400. That is a deliberate policy.
func UserAgent(request *http.Request) *http.Response {
	agent, found := request.Headers.Get(header.UserAgent)
	if !found {
		return http.NewResponse().Code(status.NotFound)
	}

	return http.NewResponse().String(agent)
}

// ReadFile serves a stored blob as application/octet-stream. Any read
// failure, missing blob included, is collapsed into 404.
func ReadFile(store *blob.Store) prefix.Handler {
	return func(request *http.Request) *http.Response {
		data, err := store.Read(remainder(request.Path))
		if err != nil {
			return http.NewResponse().Code(status.NotFound)
		}

		return http.NewResponse().ContentType(mime.OctetStream).Bytes(data)
	}
}

// WriteFile creates a new blob from the request body. Preconditions are
// checked in the documented order: content type, then target existence, then
// body presence. The final create is atomic, so a concurrent writer racing
// past the existence check still loses with 409.
func WriteFile(store *blob.Store) prefix.Handler {
	return func(request *http.Request) *http.Response {
		if !request.IsContentType(mime.OctetStream) {
			return http.NewResponse().Code(status.BadRequest).String("unexpected content type")
		}

		key := remainder(request.Path)
		if store.Exists(key) {
			return http.NewResponse().Code(status.Conflict).String("file already exists.")
		}

		if !request.HasBody() {
			return http.NewResponse().Code(status.BadRequest).String("No body provided")
		}

		file, err := store.CreateNew(key)
		if err != nil {
			if err == blob.ErrAlreadyExists {
				return http.NewResponse().Code(status.Conflict).String("file already exists.")
			}

			return http.NewResponse().Code(status.InternalServerError).String("failed to create file.")
		}
		defer file.Close()

		if _, err = file.Write(request.Body()); err != nil {
			return http.NewResponse().Code(status.InternalServerError).String("failed to write to file.")
		}

		return http.NewResponse().Code(status.Created)
	}
}

// remainder strips the leading empty segment and the route segment off the
// path, rejoining the rest with slashes: /echo/abc/def yields abc/def.
func remainder(path string) string {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return ""
	}

	return strings.Join(segments[2:], "/")
}
