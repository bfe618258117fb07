package tui

import "errors"

// ErrMissingOutlineService is returned when the outline service is not provided.
var ErrMissingOutlineService = errors.New("tui: outline service is required")
