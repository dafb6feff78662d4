package tcp

import (
	"net"
	"time"
)

// Client is a duplex byte stream of a single connection. Each instance is
// owned exclusively by the goroutine serving that connection.
type Client interface {
	Read() ([]byte, error)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		conn:    conn,
		buff:    buff,
		timeout: timeout,
	}
}

// Read returns the next chunk of the stream. The returned slice stays valid
// only until the next call.
func (c *client) Read() ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	if n == 0 {
		return nil, err
	}

	return c.buff[:n], nil
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)
	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
