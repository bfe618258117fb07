// Package driving holds the use cases offered to the CLI, the MCP server and
// the outline browser: parse, index, sync, read, search and settings.
//
// internal/core/services implements every interface here.
package driving
