package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/leonardcser/offstore/internal/store"
)

// StoreGetHandler returns the MCP tool handler for the "store-get" tool.
// It reads a cache entry by name and returns its JSON payload.
func StoreGetHandler(st *store.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		allowStale := req.GetBool("allow_stale", false)

		var payload json.RawMessage
		var ok bool
		if allowStale {
			ok = st.CacheGetStale(ctx, name, &payload)
		} else {
			ok = st.CacheGet(ctx, name, &payload)
		}
		if !ok {
			return mcp.NewToolResultText("(absent)"), nil
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}

// StorePutHandler returns the MCP tool handler for the "store-put" tool.
func StorePutHandler(st *store.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := req.RequireString("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var payload json.RawMessage
		if err := json.Unmarshal([]byte(value), &payload); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("value is not valid JSON: %v", err)), nil
		}
		ttl := time.Duration(req.GetFloat("ttl_seconds", 0)) * time.Second

		if err := st.CachePut(ctx, name, payload, ttl); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("ok"), nil
	}
}

// StoreInvalidateHandler returns the MCP tool handler for the
// "store-invalidate" tool. With no name it clears the whole cache
// namespace.
func StoreInvalidateHandler(st *store.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		name := req.GetString("name", "")
		var err error
		if name == "" {
			err = st.InvalidateCache(ctx)
		} else {
			err = st.InvalidateCache(ctx, name)
		}
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText("ok"), nil
	}
}

// StoreInfoHandler returns the MCP tool handler for the "store-info"
// tool, reporting per-namespace record counts.
func StoreInfoHandler(st *store.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if ctx.Err() != nil {
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		}
		info, err := st.Info(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := json.Marshal(info)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}
