package kv

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"time"
)

// Client implements Store over a Unix socket served by the store daemon.
type Client struct {
	socketPath string
}

func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

func (c *Client) withConn(ctx context.Context, fn func(conn net.Conn) error) error {
	conn, err := net.DialTimeout("unix", c.socketPath, 500*time.Millisecond)
	if err != nil {
		return err
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	return fn(conn)
}

func (c *Client) roundTrip(ctx context.Context, req Request) (Response, error) {
	var resp Response
	err := c.withConn(ctx, func(conn net.Conn) error {
		if err := json.NewEncoder(conn).Encode(&req); err != nil {
			return err
		}
		return json.NewDecoder(conn).Decode(&resp)
	})
	return resp, err
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := c.roundTrip(ctx, Request{Op: "get", Key: key})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		if resp.Error == ErrNotFound.Error() {
			return nil, ErrNotFound
		}
		return nil, errors.New(resp.Error)
	}
	return append([]byte(nil), resp.Value...), nil
}

func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	resp, err := c.roundTrip(ctx, Request{Op: "set", Key: key, Value: value})
	if err != nil {
		return err
	}
	if !resp.OK {
		return errors.New(resp.Error)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	resp, err := c.roundTrip(ctx, Request{Op: "delete", Key: key})
	if err != nil {
		return err
	}
	if !resp.OK {
		return errors.New(resp.Error)
	}
	return nil
}

func (c *Client) Keys(ctx context.Context, prefix string) ([]string, error) {
	resp, err := c.roundTrip(ctx, Request{Op: "keys", Prefix: prefix})
	if err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, errors.New(resp.Error)
	}
	return resp.Keys, nil
}

// Close is a no-op; connections are per-request.
func (c *Client) Close() error { return nil }
