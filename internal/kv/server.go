package kv

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/google/uuid"

	"github.com/leonardcser/offstore/internal/logger"
)

// Serve accepts connections on l and answers protocol requests against
// store. It returns when Accept fails permanently (listener closed).
func Serve(l net.Listener, store Store) {
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			continue
		}
		go HandleConn(conn, store)
	}
}

// HandleConn answers protocol requests on a single connection until the
// peer disconnects.
func HandleConn(conn net.Conn, store Store) {
	defer conn.Close()
	connID := uuid.NewString()
	ctx := context.Background()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)
	for {
		var req Request
		if err := dec.Decode(&req); err != nil {
			return
		}
		switch req.Op {
		case "get":
			v, err := store.Get(ctx, req.Key)
			if err != nil {
				_ = enc.Encode(Response{OK: false, Error: err.Error()})
				continue
			}
			_ = enc.Encode(Response{OK: true, Value: v})
		case "set":
			if err := store.Set(ctx, req.Key, req.Value); err != nil {
				logger.Errorf("conn %s: set %q failed: %v", connID, req.Key, err)
				_ = enc.Encode(Response{OK: false, Error: err.Error()})
				continue
			}
			_ = enc.Encode(Response{OK: true})
		case "delete":
			if err := store.Delete(ctx, req.Key); err != nil {
				logger.Errorf("conn %s: delete %q failed: %v", connID, req.Key, err)
				_ = enc.Encode(Response{OK: false, Error: err.Error()})
				continue
			}
			_ = enc.Encode(Response{OK: true})
		case "keys":
			keys, err := store.Keys(ctx, req.Prefix)
			if err != nil {
				_ = enc.Encode(Response{OK: false, Error: err.Error()})
				continue
			}
			_ = enc.Encode(Response{OK: true, Keys: keys})
		default:
			logger.Warnf("conn %s: unknown op %q", connID, req.Op)
			_ = enc.Encode(Response{OK: false, Error: "unknown op"})
		}
	}
}
