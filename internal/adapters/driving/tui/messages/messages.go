// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewFiles lists parsed files.
	ViewFiles ViewType = iota
	// ViewOutline shows the node tree of one file.
	ViewOutline
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// FilesLoaded carries the parsed file list.
type FilesLoaded struct {
	Files []domain.OrgFile
	Err   error
}

// FileSelected is sent when a file is opened from the list.
type FileSelected struct {
	Name string
}

// OutlineLoaded carries a rebuilt node tree.
type OutlineLoaded struct {
	Outline *driving.Outline
	Err     error
}

// VocabularyLoaded carries the stored index vocabulary.
type VocabularyLoaded struct {
	Index *domain.IndexMetadata
	Err   error
}
