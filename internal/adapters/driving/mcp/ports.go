package mcp

import (
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Outline reads parsed files back out of the store.
	Outline driving.OutlineService

	// Search finds headings across files. Optional; without it the
	// search_nodes tool is not registered.
	Search driving.SearchService

	// Sync reparses a staging directory. Optional; without it the
	// sync_dir tool is not registered.
	Sync driving.SyncService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Outline == nil {
		return ErrMissingOutlineService
	}
	return nil
}
