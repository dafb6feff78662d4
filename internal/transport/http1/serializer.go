package http1

import (
	"strconv"

	"github.com/filament-web/filament/http"
	"github.com/filament-web/filament/http/header"
	"github.com/filament-web/filament/http/mime"
	"github.com/filament-web/filament/http/status"
	"github.com/filament-web/filament/internal/server/tcp"
)

// Serializer renders a response into its wire form:
//
//	HTTP/1.1 SP code SP reason CRLF (header-line CRLF)* CRLF body
//
// Content-Type and Content-Length are emitted together whenever the response
// carries a body or an explicit content type; a bare response renders as just
// the status line and the terminating CRLF. The body is appended as raw
// bytes, so non-UTF8 payloads survive untouched.
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

func (s *Serializer) Write(response *http.Response, client tcp.Client) error {
	defer s.clear()

	fields := response.Reveal()
	s.renderStatusLine(fields)
	s.renderHeaders(fields)
	s.crlf()
	s.buff = append(s.buff, fields.Body...)

	return client.Write(s.buff)
}

func (s *Serializer) renderStatusLine(fields http.Fields) {
	s.buff = append(s.buff, "HTTP/1.1 "...)
	s.buff = strconv.AppendInt(s.buff, int64(fields.Code), 10)
	s.sp()

	reason := fields.Status
	if reason == "" {
		reason = status.Text(fields.Code)
	}
	s.buff = append(s.buff, reason...)
	s.crlf()
}

func (s *Serializer) renderHeaders(fields http.Fields) {
	if fields.HasBody || fields.ContentType != "" {
		contentType := fields.ContentType
		if contentType == "" {
			contentType = mime.Plain
		}

		s.buff = append(s.buff, header.ContentTypePrefix...)
		s.buff = append(s.buff, contentType...)
		s.crlf()

		s.buff = append(s.buff, header.ContentLengthPrefix...)
		s.buff = strconv.AppendInt(s.buff, int64(len(fields.Body)), 10)
		s.crlf()
	}

	for _, h := range fields.Headers {
		s.buff = append(s.buff, h.Key...)
		s.buff = append(s.buff, ':', ' ')
		s.buff = append(s.buff, h.Value...)
		s.crlf()
	}
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}
