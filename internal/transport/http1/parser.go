package http1

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/filament-web/filament/config"
	"github.com/filament-web/filament/http"
	"github.com/filament-web/filament/http/header"
	"github.com/filament-web/filament/http/method"
	"github.com/filament-web/filament/http/proto"
	"github.com/filament-web/filament/http/status"
	"github.com/filament-web/filament/internal/server/tcp"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

var crlfcrlf = []byte("\r\n\r\n")

// Parser reads a single request off the wire and fills the request object.
// It modifies the request by pointer and must not be shared across
// connections.
//
// The head section is accumulated incrementally until the blank-line
// terminator, bounded by config.HTTP.MaxHeadSize. The body is read according
// to Content-Length when the header is present, bounded by
// config.HTTP.MaxBodySize; without it, whatever bytes already followed the
// terminator become the body verbatim.
type Parser struct {
	request *http.Request
	cfg     config.HTTP
	head    []byte
}

func NewParser(request *http.Request, cfg config.HTTP) *Parser {
	return &Parser{
		request: request,
		cfg:     cfg,
	}
}

func (p *Parser) Parse(client tcp.Client) error {
	head, extra, sawSeparator, err := p.readHead(client)
	if err != nil {
		return err
	}

	lines := strings.Split(uf.B2S(head), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if err = p.parseRequestLine(lines[0]); err != nil {
		return err
	}

	p.parseHeaders(lines[1:])

	if !sawSeparator {
		// the whole stream was just a head section, there's no body to
		// speak of
		return nil
	}

	return p.readBody(client, extra)
}

// readHead consumes the stream until the first CRLFCRLF. Head bytes are
// returned without the terminator; extra holds whatever already arrived past
// it. If the stream ends before any terminator shows up, everything read so
// far is treated as the head.
func (p *Parser) readHead(client tcp.Client) (head, extra []byte, sawSeparator bool, err error) {
	scanFrom := 0

	for {
		data, readErr := client.Read()
		if readErr != nil {
			if len(p.head) == 0 {
				return nil, nil, false, readErr
			}

			return p.head, nil, false, nil
		}

		p.head = append(p.head, data...)

		if sep := bytes.Index(p.head[scanFrom:], crlfcrlf); sep != -1 {
			sep += scanFrom
			// only bytes before the terminator count against the limit,
			// body bytes buffered in the same chunk don't
			if sep > p.cfg.MaxHeadSize {
				return nil, nil, false, status.ErrTooLargeHead
			}

			return p.head[:sep], p.head[sep+len(crlfcrlf):], true, nil
		}

		if len(p.head) > p.cfg.MaxHeadSize {
			return nil, nil, false, status.ErrTooLargeHead
		}

		// the terminator may span chunk boundaries, so back off a bit
		// before scanning the next one
		scanFrom = max(0, len(p.head)-len(crlfcrlf)+1)
	}
}

// parseRequestLine splits the first head line into exactly three whitespace
// separated tokens and maps the method and version tokens through their
// closed sets. Any deviation fails the parse.
func (p *Parser) parseRequestLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return status.ErrBadRequestLine
	}

	p.request.Method = method.Parse(tokens[0])
	if p.request.Method == method.Unknown {
		return status.ErrMethodNotSupported
	}

	p.request.Path = tokens[1]

	p.request.Proto = proto.FromToken(tokens[2])
	if p.request.Proto == proto.Unknown {
		return status.ErrBadProtoToken
	}

	return nil
}

// parseHeaders stores recognized headers with trimmed values. Lines without
// a ": " separator and names outside the vocabulary are skipped silently,
// neither is an error.
func (p *Parser) parseHeaders(lines []string) {
	for _, line := range lines {
		key, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}

		name, recognized := header.Canonical(key)
		if !recognized {
			continue
		}

		p.request.Headers.Add(name, strings.TrimSpace(value))
	}
}

func (p *Parser) readBody(client tcp.Client, extra []byte) error {
	raw, hasLength := p.request.Headers.Get(header.ContentLength)
	if !hasLength {
		// no declared length: the bytes already buffered past the head
		// terminator are the body, even when there are none
		p.request.SetBody(extra)
		return nil
	}

	length, err := strconv.Atoi(raw)
	if err != nil || length < 0 {
		return status.ErrBadRequest
	}
	if length > p.cfg.MaxBodySize {
		return status.ErrBodyTooLarge
	}

	body := buffer.New(length, p.cfg.MaxBodySize)
	pending := length

	for chunk := extra; ; {
		if len(chunk) > pending {
			chunk = chunk[:pending]
		}
		if !body.Append(chunk) {
			return status.ErrBodyTooLarge
		}

		pending -= len(chunk)
		if pending == 0 {
			break
		}

		var readErr error
		chunk, readErr = client.Read()
		if readErr != nil {
			return readErr
		}
	}

	p.request.SetBody(body.Finish())

	return nil
}
