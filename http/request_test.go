package http

import (
	"testing"

	"github.com/filament-web/filament/http/mime"
	"github.com/filament-web/filament/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestContentType(t *testing.T) {
	t.Run("no content-type header", func(t *testing.T) {
		request := NewRequest(kv.New(), nil)
		_, found := request.ContentType()
		require.False(t, found)
		require.False(t, request.IsContentType(mime.Plain))
		require.False(t, request.IsContentType(mime.OctetStream))
	})

	t.Run("octet-stream", func(t *testing.T) {
		request := NewRequest(kv.New().Add("Content-Type", "Application/Octet-Stream"), nil)
		ct, found := request.ContentType()
		require.True(t, found)
		require.Equal(t, mime.OctetStream, ct)
		require.True(t, request.IsContentType(mime.OctetStream))
		require.False(t, request.IsContentType(mime.Plain))
	})

	t.Run("canonical key matches any stored casing", func(t *testing.T) {
		request := NewRequest(kv.New().Add("content-TYPE", "text/plain"), nil)
		ct, found := request.ContentType()
		require.True(t, found)
		require.Equal(t, mime.Plain, ct)
		require.True(t, request.IsContentType(mime.Plain))
	})

	t.Run("unrecognized value falls through lowercased", func(t *testing.T) {
		request := NewRequest(kv.New().Add("Content-Type", "Application/JSON"), nil)
		ct, found := request.ContentType()
		require.True(t, found)
		require.Equal(t, "application/json", ct)
	})
}

func TestRequestBody(t *testing.T) {
	request := NewRequest(kv.New(), nil)
	assert.False(t, request.HasBody())
	assert.Nil(t, request.Body())

	request.SetBody(nil)
	assert.True(t, request.HasBody())
	assert.Empty(t, request.Body())

	request.SetBody([]byte("hello"))
	assert.Equal(t, []byte("hello"), request.Body())
}
