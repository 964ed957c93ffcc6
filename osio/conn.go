// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package osio

import (
	"context"
	"io"
	"net"
	"time"

	"code.hybscloud.com/coreio"
)

// Conn is a net.Conn seen through the coreio interfaces.
//
// With a poll timeout set, every Read and Write gets a deadline that far in
// the future, and an expired deadline is reported as coreio.ErrWouldBlock
// so the *Policy helpers can decide whether to wait longer.
type Conn struct {
	c       net.Conn
	timeout time.Duration
}

var _ coreio.ReadWriter = (*Conn)(nil)

// NewConn wraps c. The Conn takes over closing c.
func NewConn(c net.Conn) *Conn { return &Conn{c: c} }

// Dial connects to address on the named network.
func Dial(ctx context.Context, network, address string) (*Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, network, address)
	if err != nil {
		return nil, classify(err)
	}
	return &Conn{c: c}, nil
}

// SetPollTimeout sets how long a single Read or Write may wait. Zero
// disables deadlines.
func (c *Conn) SetPollTimeout(d time.Duration) { c.timeout = d }

// Net returns the underlying net.Conn.
func (c *Conn) Net() net.Conn { return c.c }

func (c *Conn) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if c.timeout > 0 {
		if err := c.c.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return 0, classify(err)
		}
	}
	n, err := c.c.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || err == io.EOF {
		return 0, nil
	}
	return 0, classify(err)
}

func (c *Conn) Write(p []byte) (int, error) {
	if c.timeout > 0 {
		if err := c.c.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
			return 0, classify(err)
		}
	}
	n, err := c.c.Write(p)
	if n > 0 || err == nil {
		return n, nil
	}
	return 0, classify(err)
}

// Flush is a no-op: net.Conn does not buffer.
func (c *Conn) Flush() error { return nil }

// Close closes the connection.
func (c *Conn) Close() error { return classify(c.c.Close()) }
