package http1

import (
	"strings"
	"testing"

	"github.com/filament-web/filament/config"
	"github.com/filament-web/filament/http"
	"github.com/filament-web/filament/http/method"
	"github.com/filament-web/filament/http/proto"
	"github.com/filament-web/filament/http/status"
	"github.com/filament-web/filament/internal/server/tcp/dummy"
	"github.com/filament-web/filament/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string, chunkSize int) (*http.Request, error) {
	t.Helper()

	request := http.NewRequest(kv.New(), nil)
	parser := NewParser(request, config.Default().HTTP)
	client := dummy.NewSplitClient([]byte(raw), chunkSize)

	return request, parser.Parse(client)
}

func TestParseRequestLine(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		request, err := parse(t, "GET / HTTP/1.1\r\n\r\n", 1024)
		require.NoError(t, err)
		require.Equal(t, method.GET, request.Method)
		require.Equal(t, "/", request.Path)
		require.Equal(t, proto.HTTP11, request.Proto)
	})

	t.Run("HTTP/1.0 parses fine", func(t *testing.T) {
		request, err := parse(t, "GET / HTTP/1.0\r\n\r\n", 1024)
		require.NoError(t, err)
		require.Equal(t, proto.HTTP10, request.Proto)
	})

	t.Run("path stays raw", func(t *testing.T) {
		request, err := parse(t, "GET /files/..%2fsecret HTTP/1.1\r\n\r\n", 1024)
		require.NoError(t, err)
		require.Equal(t, "/files/..%2fsecret", request.Path)
	})

	t.Run("wrong token count", func(t *testing.T) {
		_, err := parse(t, "GET /\r\n\r\n", 1024)
		require.Equal(t, status.ErrBadRequestLine, err)

		_, err = parse(t, "GET / HTTP/1.1 extra\r\n\r\n", 1024)
		require.Equal(t, status.ErrBadRequestLine, err)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := parse(t, "PATCH / HTTP/1.1\r\n\r\n", 1024)
		require.Equal(t, status.ErrMethodNotSupported, err)
	})

	t.Run("unknown version token", func(t *testing.T) {
		_, err := parse(t, "GET / HTTP/5.0\r\n\r\n", 1024)
		require.Equal(t, status.ErrBadProtoToken, err)

		_, err = parse(t, "GET / potato\r\n\r\n", 1024)
		require.Equal(t, status.ErrBadProtoToken, err)
	})
}

func TestParseHeaders(t *testing.T) {
	t.Run("recognized headers are stored trimmed", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nHost: localhost\r\nuser-agent:  curl/8.0  \r\n\r\n"
		request, err := parse(t, raw, 1024)
		require.NoError(t, err)
		require.Equal(t, "localhost", request.Headers.Value("Host"))
		require.Equal(t, "curl/8.0", request.Headers.Value("User-Agent"))
	})

	t.Run("unrecognized headers are dropped", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nX-Custom: value\r\nAccept: */*\r\n\r\n"
		request, err := parse(t, raw, 1024)
		require.NoError(t, err)
		require.False(t, request.Headers.Has("X-Custom"))
		require.Equal(t, 1, request.Headers.Len())
	})

	t.Run("lines without a separator are skipped", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\ngarbage line\r\nHost: localhost\r\n\r\n"
		request, err := parse(t, raw, 1024)
		require.NoError(t, err)
		require.Equal(t, "localhost", request.Headers.Value("Host"))
	})

	t.Run("first occurrence wins on repeats", func(t *testing.T) {
		raw := "GET / HTTP/1.1\r\nHost: first\r\nHost: second\r\n\r\n"
		request, err := parse(t, raw, 1024)
		require.NoError(t, err)
		require.Equal(t, "first", request.Headers.Value("Host"))
	})
}

func TestParseBody(t *testing.T) {
	t.Run("no separator means no body", func(t *testing.T) {
		request, err := parse(t, "GET / HTTP/1.1\r\nHost: localhost", 1024)
		require.NoError(t, err)
		require.False(t, request.HasBody())
	})

	t.Run("separator without content-length keeps trailing bytes", func(t *testing.T) {
		request, err := parse(t, "POST /files/a HTTP/1.1\r\n\r\ntrailing", 1024)
		require.NoError(t, err)
		require.True(t, request.HasBody())
		require.Equal(t, "trailing", string(request.Body()))
	})

	t.Run("separator alone still presents a body", func(t *testing.T) {
		request, err := parse(t, "POST /files/a HTTP/1.1\r\n\r\n", 1024)
		require.NoError(t, err)
		require.True(t, request.HasBody())
		require.Empty(t, request.Body())
	})

	t.Run("content-length drives further reads", func(t *testing.T) {
		raw := "POST /files/a HTTP/1.1\r\nContent-Length: 11\r\n\r\nhello world"
		for _, chunkSize := range []int{1, 3, 7, 1024} {
			request, err := parse(t, raw, chunkSize)
			require.NoError(t, err)
			require.True(t, request.HasBody())
			require.Equal(t, "hello world", string(request.Body()))
		}
	})

	t.Run("binary body is preserved verbatim", func(t *testing.T) {
		payload := []byte{0x00, 0xff, 0x80, 0x0a, 0x0d}
		raw := append([]byte("POST /files/a HTTP/1.1\r\nContent-Length: 5\r\n\r\n"), payload...)
		request := http.NewRequest(kv.New(), nil)
		parser := NewParser(request, config.Default().HTTP)
		require.NoError(t, parser.Parse(dummy.NewSplitClient(raw, 2)))
		require.Equal(t, payload, request.Body())
	})

	t.Run("malformed content-length", func(t *testing.T) {
		_, err := parse(t, "POST /files/a HTTP/1.1\r\nContent-Length: eleven\r\n\r\n", 1024)
		require.Equal(t, status.ErrBadRequest, err)
	})

	t.Run("oversized declared body", func(t *testing.T) {
		_, err := parse(t, "POST /files/a HTTP/1.1\r\nContent-Length: 99999999\r\n\r\n", 1024)
		require.Equal(t, status.ErrBodyTooLarge, err)

		var httpErr status.HTTPError
		require.ErrorAs(t, err, &httpErr)
		require.Equal(t, status.BadRequest, httpErr.Code)
	})
}

func TestParseLimits(t *testing.T) {
	request := http.NewRequest(kv.New(), nil)
	cfg := config.Default().HTTP
	cfg.MaxHeadSize = 64
	parser := NewParser(request, cfg)

	raw := "GET /echo/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa HTTP/1.1\r\n\r\n"
	err := parser.Parse(dummy.NewSplitClient([]byte(raw), 16))
	assert.Equal(t, status.ErrTooLargeHead, err)
}

func TestParseLimitsHeadOnly(t *testing.T) {
	// a large body arriving in the same chunk as the head terminator must
	// not count against the head limit
	body := strings.Repeat("b", 80)
	raw := "POST /files/a HTTP/1.1\r\nContent-Length: 80\r\n\r\n" + body

	request := http.NewRequest(kv.New(), nil)
	cfg := config.Default().HTTP
	cfg.MaxHeadSize = 64
	parser := NewParser(request, cfg)

	require.NoError(t, parser.Parse(dummy.NewClient([]byte(raw))))
	assert.Equal(t, []byte(body), request.Body())
}

func TestParseRoundTrip(t *testing.T) {
	for _, line := range []string{
		"GET / HTTP/1.1",
		"POST /files/foo.bin HTTP/1.1",
		"PUT /anything HTTP/1.1",
		"DELETE /files/x HTTP/1.0",
	} {
		request, err := parse(t, line+"\r\n\r\n", 1024)
		require.NoError(t, err)
		rebuilt := request.Method.String() + " " + request.Path + " " + request.Proto.String()
		require.Equal(t, line, rebuilt)
	}
}
