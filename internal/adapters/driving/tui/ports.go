// Package tui provides an interactive terminal browser for parsed outlines.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI uses.
type Ports struct {
	// Outline reads parsed files and node trees.
	Outline driving.OutlineService

	// Index provides the todo vocabulary. Optional; without it only DONE
	// is rendered as a done state.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Outline == nil {
		return ErrMissingOutlineService
	}
	return nil
}
