package http

import (
	"net"

	"github.com/filament-web/filament/http/header"
	"github.com/filament-web/filament/http/method"
	"github.com/filament-web/filament/http/mime"
	"github.com/filament-web/filament/http/proto"
	"github.com/filament-web/filament/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single parsed HTTP request. It is built once per
// connection and owned exclusively by the goroutine handling that connection;
// it is never shared and never mutated after parsing completes.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the raw request path. It is neither normalized nor decoded.
	Path string
	// Proto is the enum of the protocol version used for the request.
	Proto proto.Proto
	// Headers holds the recognized header pairs in the order they appeared
	// on the wire. Lookup is case-insensitive, the first occurrence of a
	// repeated key wins.
	Headers Headers
	// Remote holds the remote address of the connection the request arrived
	// on.
	Remote net.Addr

	body []byte
	// hasBody distinguishes a request carrying an empty body from a request
	// carrying no body section at all.
	hasBody bool
}

func NewRequest(headers Headers, remote net.Addr) *Request {
	return &Request{
		Method:  method.Unknown,
		Proto:   proto.HTTP11,
		Headers: headers,
		Remote:  remote,
	}
}

// SetBody attaches the raw body bytes. Passing nil still marks the body as
// present; use it for requests whose body section exists but is empty.
func (r *Request) SetBody(raw []byte) {
	r.body = raw
	r.hasBody = true
}

// Body returns the raw body bytes, valid only if HasBody reports true.
func (r *Request) Body() []byte {
	return r.body
}

// HasBody reports whether the request carried a body section at all. An
// empty body still counts as present.
func (r *Request) HasBody() bool {
	return r.hasBody
}

// ContentType derives the content type from the Content-Type header. The
// second return value reports whether the header was present.
func (r *Request) ContentType() (mime.MIME, bool) {
	value, found := r.Headers.Get(header.ContentType)
	if !found {
		return "", false
	}

	return mime.Parse(value), true
}

// IsContentType structurally compares the derived content type against the
// given one. A missing Content-Type header never complies.
func (r *Request) IsContentType(m mime.MIME) bool {
	value, found := r.Headers.Get(header.ContentType)
	return found && mime.Complies(m, value)
}
