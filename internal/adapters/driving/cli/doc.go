// Package cli implements the orgsync command-line interface with cobra.
// Commands talk to the core only through the driving ports; main wires
// the concrete services with SetServiceFactory.
package cli
