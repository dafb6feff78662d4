package http

import (
	"github.com/filament-web/filament/http/mime"
	"github.com/filament-web/filament/http/status"
	"github.com/indigo-web/utils/uf"
)

const preallocRespHeaders = 2

// Fields is an exposed set of the response attributes, consumed by the
// serializer.
type Fields struct {
	Code        status.Code
	Status      status.Status
	ContentType mime.MIME
	Headers     []Header
	Body        []byte
	// HasBody distinguishes a response carrying an empty body, which is
	// still framed with Content-Type and Content-Length, from a response
	// carrying none at all.
	HasBody bool
}

// Response is a builder for an outgoing response. The zero response carries
// 200 OK, no headers and no body, and renders as a bare status line.
//
// NOTE: setting a body via String or Bytes implies Content-Type and
// Content-Length headers; a response without a body and without an explicit
// content type stays header-less.
type Response struct {
	fields Fields
}

func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code:    status.OK,
			Headers: make([]Header, 0, preallocRespHeaders),
		},
	}
}

// Code sets a response code, the reason phrase is derived from it at
// serialization time.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom reason phrase. Usually there's no need to, as the one
// derived from the code is used by default.
func (r *Response) Status(s status.Status) *Response {
	r.fields.Status = s
	return r
}

// ContentType overrides the Content-Type header value. Bodies set without an
// override are served as text/plain.
func (r *Response) ContentType(m mime.MIME) *Response {
	r.fields.ContentType = m
	return r
}

// Header appends a custom header pair.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers = append(r.fields.Headers, Header{Key: key, Value: value})
	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to the passed slice WITHOUT COPYING.
// Changing the passed slice later will affect the response by itself.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	r.fields.HasBody = true
	return r
}

// Error fills the response from an error. status.HTTPError carries its own
// code and a plain-text explanation, any other error is reported as a bare
// 500.
func (r *Response) Error(err error) *Response {
	if httpErr, ok := err.(status.HTTPError); ok {
		return r.Code(httpErr.Code).String(httpErr.Message)
	}

	return r.Code(status.InternalServerError)
}

// Reveal exposes the accumulated fields for serialization.
func (r *Response) Reveal() Fields {
	return r.fields
}

// Clear resets the response to its initial state, keeping the allocated
// headers slice.
func (r *Response) Clear() *Response {
	r.fields = Fields{
		Code:    status.OK,
		Headers: r.fields.Headers[:0],
	}
	return r
}
