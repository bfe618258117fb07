// Package domain defines the core business entities for orgsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - OrgFile: An outline document and its depth-0 root node
//   - Node: One heading of an outline
//   - Heading: The classified fields of a single heading line
//   - TimestampRecord: Scheduling markers found in a node's payload
//   - IndexMetadata: Vocabulary read from a MobileOrg index document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
