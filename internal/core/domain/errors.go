package domain

import "errors"

// Sentinels are wrapped with %w by services and adapters; test them with
// errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates an optional collaborator, such as the
	// config store, was not wired in.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoRootNode indicates a file was handed to the parser before
	// the store assigned it a root node.
	ErrNoRootNode = errors.New("file has no root node")

	// ErrIndexMissing indicates a sync directory has no index document.
	ErrIndexMissing = errors.New("index document missing")

	// ErrTransactionClosed indicates a write against a committed or
	// rolled back node sink.
	ErrTransactionClosed = errors.New("transaction closed")
)
