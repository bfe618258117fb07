// Package orgparser turns org outline documents into nodes.
//
// The Parser makes a single forward pass over the lines of a document.
// Heading lines (a run of '*' followed by whitespace) open nodes; every
// other non-empty line is payload for the most recently opened node.
// Nesting is rebuilt with a depth-indexed stack, sibling ordinals come from
// per-depth counters, and tags are inherited from the nearest open ancestor
// after excluded tags are filtered out.
//
// The package also holds the scans over the MobileOrg index document and
// checksum file (ParseIndex, ParseChecksums).
package orgparser
