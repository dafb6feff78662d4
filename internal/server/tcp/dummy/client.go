// Package dummy provides in-memory tcp.Client implementations for tests.
package dummy

import (
	"io"
	"net"
)

// Client replays a fixed sequence of chunks on Read and collects everything
// written into Written.
type Client struct {
	chunks  [][]byte
	Written []byte
	Closed  bool
}

func NewClient(chunks ...[]byte) *Client {
	return &Client{
		chunks: chunks,
	}
}

// NewSplitClient splits data into chunks of the given size, imitating a
// stream that arrives in pieces.
func NewSplitClient(data []byte, chunkSize int) *Client {
	var chunks [][]byte
	for len(data) > 0 {
		n := min(chunkSize, len(data))
		chunks = append(chunks, data[:n])
		data = data[n:]
	}

	return NewClient(chunks...)
}

func (c *Client) Read() ([]byte, error) {
	if len(c.chunks) == 0 {
		return nil, io.EOF
	}

	chunk := c.chunks[0]
	c.chunks = c.chunks[1:]

	return chunk, nil
}

func (c *Client) Write(b []byte) error {
	c.Written = append(c.Written, b...)
	return nil
}

func (c *Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}

func (c *Client) Close() error {
	c.Closed = true
	return nil
}
