package main

import (
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leonardcser/offstore/internal/config"
	"github.com/leonardcser/offstore/internal/kv"
	"github.com/leonardcser/offstore/internal/logger"
	"github.com/leonardcser/offstore/internal/store"
	"github.com/leonardcser/offstore/internal/tools"
)

const daemonBinary = "store-server"

func main() {
	if err := logger.InitFromEnv(); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Infof("Starting offstore MCP server")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Connect to store daemon; start it if needed, then connect.
	logger.Infof("Attempting to connect to store daemon at %s", cfg.SocketPath)
	client, err := connectStore(cfg.SocketPath)
	if err != nil {
		logger.Warnf("Failed to connect to store daemon: %v, attempting to start daemon", err)
		if startErr := startStoreDaemon(); startErr != nil {
			logger.Errorf("Failed to start store daemon: %v", startErr)
		} else {
			logger.Infof("Store daemon started successfully")
		}
		// wait for socket to appear
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			if c2, err2 := connectStore(cfg.SocketPath); err2 == nil {
				client = c2
				err = nil
				break
			}
			time.Sleep(200 * time.Millisecond)
		}
		if client == nil {
			logger.Errorf("Failed to connect to store daemon after startup attempt: %v", err)
			panic(err)
		}
	}
	logger.Infof("Successfully connected to store daemon")

	st := store.New(client, store.Options{})

	s := server.NewMCPServer(
		"Offline Store",
		"0.1.0",
		server.WithRecovery(),
		server.WithToolCapabilities(false),
	)

	toolGet := mcp.NewTool("store-get",
		mcp.WithDescription(multiline(
			"Reads a cached entry from the offline store by name",
			"\nUsage notes:",
			"- Entries past their TTL read as absent unless allow_stale is set",
			"- The returned payload is the stored JSON value",
		)),
		mcp.WithString("name", mcp.Required(), mcp.Description("The cache entry name")),
		mcp.WithBoolean("allow_stale", mcp.Description("Return the last written value even if expired")),
	)
	s.AddTool(toolGet, tools.StoreGetHandler(st))

	toolPut := mcp.NewTool("store-put",
		mcp.WithDescription(multiline(
			"Writes a cached entry into the offline store",
			"\nUsage notes:",
			"- value must be a JSON document",
			"- ttl_seconds of 0 (or omitted) means the entry never expires",
		)),
		mcp.WithString("name", mcp.Required(), mcp.Description("The cache entry name")),
		mcp.WithString("value", mcp.Required(), mcp.Description("The JSON value to store")),
		mcp.WithNumber("ttl_seconds", mcp.Description("Time-to-live in seconds; 0 never expires")),
	)
	s.AddTool(toolPut, tools.StorePutHandler(st))

	toolInvalidate := mcp.NewTool("store-invalidate",
		mcp.WithDescription(multiline(
			"Invalidates cached entries in the offline store",
			"\nUsage notes:",
			"- With a name, removes that entry only",
			"- Without a name, clears the entire cache namespace",
			"- Session, draft, and setting records are never touched",
		)),
		mcp.WithString("name", mcp.Description("A specific cache entry name to invalidate")),
	)
	s.AddTool(toolInvalidate, tools.StoreInvalidateHandler(st))

	toolInfo := mcp.NewTool("store-info",
		mcp.WithDescription("Reports how many records each store namespace currently holds"),
	)
	s.AddTool(toolInfo, tools.StoreInfoHandler(st))

	logger.Infof("Starting MCP server on stdio")
	if err := server.ServeStdio(s); err != nil {
		logger.Errorf("server error: %v", err)
	}
}

// multiline joins lines with newlines for tool descriptions.
func multiline(lines ...string) string { return strings.Join(lines, "\n") }

func connectStore(sock string) (*kv.Client, error) {
	// quick probe
	conn, err := net.DialTimeout("unix", sock, 200*time.Millisecond)
	if err != nil {
		return nil, err
	}
	_ = conn.Close()
	return kv.NewClient(sock), nil
}

func startStoreDaemon() error {
	// 1) Try daemon binary next to this server executable (works with absolute invocation)
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		sibling := filepath.Join(exeDir, daemonBinary)
		if _, statErr := os.Stat(sibling); statErr == nil {
			cmd := exec.Command(sibling)
			cmd.Env = os.Environ()
			return cmd.Start()
		}
	}

	// 2) Try PATH binary
	if path, err := exec.LookPath(daemonBinary); err == nil {
		cmd := exec.Command(path)
		cmd.Env = os.Environ()
		return cmd.Start()
	}

	// 3) Try local binary in current working directory (best-effort)
	if _, err := os.Stat("./" + daemonBinary); err == nil {
		cmd := exec.Command("./" + daemonBinary)
		cmd.Env = os.Environ()
		return cmd.Start()
	}

	return exec.ErrNotFound
}
