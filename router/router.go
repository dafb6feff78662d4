package router

import "github.com/filament-web/filament/http"

// Router is the interface between the connection loop and request handling.
// OnRequest dispatches a successfully parsed request, OnError converts any
// parse or policy failure into a response for the requesting connection.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(request *http.Request, err error) *http.Response
}
