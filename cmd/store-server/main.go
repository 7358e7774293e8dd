package main

import (
	"net"
	"os"
	"path/filepath"

	"github.com/leonardcser/offstore/internal/config"
	"github.com/leonardcser/offstore/internal/kv"
	"github.com/leonardcser/offstore/internal/logger"
)

func main() {
	if err := logger.InitFromEnv(); err != nil {
		panic(err)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Ensure socket dir exists and remove stale socket
	_ = os.MkdirAll(filepath.Dir(cfg.SocketPath), 0o755)
	_ = os.Remove(cfg.SocketPath)

	l, err := net.Listen("unix", cfg.SocketPath)
	if err != nil {
		panic(err)
	}
	defer l.Close()
	_ = os.Chmod(cfg.SocketPath, 0o600)

	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
	store, err := kv.OpenBolt(cfg.DBPath, kv.BoltOptions{Bucket: cfg.Bucket})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	logger.Infof("store daemon listening on %s (db %s)", cfg.SocketPath, cfg.DBPath)
	kv.Serve(l, store)
}
