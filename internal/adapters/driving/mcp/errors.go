// Package mcp provides an MCP (Model Context Protocol) server adapter for orgsync.
// It lets AI assistants list parsed outline files and read their node trees.
package mcp

import "errors"

// ErrMissingOutlineService is returned when the outline service is not provided.
var ErrMissingOutlineService = errors.New("mcp: outline service is required")
