package config

import (
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type (
	NET struct {
		// ReadBufferSize is a size of the buffer in bytes which will be used
		// to read from a socket.
		ReadBufferSize int `json:"read_buffer_size"`
		// ReadTimeout controls the maximal lifetime of an idle connection.
		// If no data was received in this period of time, it'll be closed.
		ReadTimeout time.Duration `json:"read_timeout"`
	}

	HTTP struct {
		// MaxHeadSize limits how many bytes the head section (request line
		// plus headers) may occupy before the request is rejected.
		MaxHeadSize int `json:"max_head_size"`
		// MaxBodySize limits the size of a request body to be buffered.
		MaxBodySize int `json:"max_body_size"`
		// HeadersPrealloc is the initial capacity of the parsed headers
		// storage.
		HeadersPrealloc int `json:"headers_prealloc"`
		// ResponseBuffSize is the initial capacity of the buffer storing a
		// serialized response.
		ResponseBuffSize int `json:"response_buff_size"`
	}
)

// Config holds settings used across the server, mainly restrictions and
// pre-allocations. Always modify defaults (returned via Default()) instead of
// instantiating the struct manually, otherwise zero limits will reject
// everything.
type Config struct {
	NET  NET  `json:"net"`
	HTTP HTTP `json:"http"`
}

func Default() Config {
	return Config{
		NET: NET{
			ReadBufferSize: 2 * 1024,
			ReadTimeout:    90 * time.Second,
		},
		HTTP: HTTP{
			MaxHeadSize:      16 * 1024,
			MaxBodySize:      512 * 1024,
			HeadersPrealloc:  5,
			ResponseBuffSize: 1 * 1024,
		},
	}
}

// Fill replaces zero values with defaults.
func Fill(cfg Config) Config {
	defaults := Default()

	cfg.NET.ReadBufferSize = override(cfg.NET.ReadBufferSize, defaults.NET.ReadBufferSize)
	cfg.NET.ReadTimeout = override(cfg.NET.ReadTimeout, defaults.NET.ReadTimeout)
	cfg.HTTP.MaxHeadSize = override(cfg.HTTP.MaxHeadSize, defaults.HTTP.MaxHeadSize)
	cfg.HTTP.MaxBodySize = override(cfg.HTTP.MaxBodySize, defaults.HTTP.MaxBodySize)
	cfg.HTTP.HeadersPrealloc = override(cfg.HTTP.HeadersPrealloc, defaults.HTTP.HeadersPrealloc)
	cfg.HTTP.ResponseBuffSize = override(cfg.HTTP.ResponseBuffSize, defaults.HTTP.ResponseBuffSize)

	return cfg
}

// Load reads a JSON config file and overlays it onto the defaults. Absent
// fields keep their default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err = jsoniter.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}

	return Fill(cfg), nil
}

func override[T comparable](value, otherwise T) T {
	var zero T
	if value == zero {
		return otherwise
	}

	return value
}
