package http

import (
	"testing"

	"github.com/filament-web/filament/http/mime"
	"github.com/filament-web/filament/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponseBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.ContentType)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
		require.False(t, fields.HasBody)
	})

	t.Run("empty body set explicitly is still a body", func(t *testing.T) {
		require.True(t, NewResponse().String("").Reveal().HasBody)
		require.True(t, NewResponse().Bytes(nil).Reveal().HasBody)
	})

	t.Run("chaining", func(t *testing.T) {
		fields := NewResponse().
			Code(status.Created).
			ContentType(mime.OctetStream).
			Header("Hello", "world").
			String("payload").
			Reveal()

		require.Equal(t, status.Created, fields.Code)
		require.Equal(t, mime.OctetStream, fields.ContentType)
		require.Equal(t, []Header{{Key: "Hello", Value: "world"}}, fields.Headers)
		require.Equal(t, "payload", string(fields.Body))
	})

	t.Run("error from HTTPError", func(t *testing.T) {
		fields := NewResponse().Error(status.ErrUnsupportedVersion).Reveal()
		require.Equal(t, status.BadRequest, fields.Code)
		require.Equal(t, "this server only supports HTTP version 1.1.", string(fields.Body))
	})

	t.Run("error from generic error", func(t *testing.T) {
		fields := NewResponse().Error(errDummy{}).Reveal()
		require.Equal(t, status.InternalServerError, fields.Code)
		require.Empty(t, fields.Body)
	})

	t.Run("clear", func(t *testing.T) {
		response := NewResponse().Code(status.Conflict).String("conflict")
		fields := response.Clear().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Body)
		require.Empty(t, fields.Headers)
	})
}

type errDummy struct{}

func (errDummy) Error() string { return "something went wrong" }
