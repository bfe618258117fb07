// Package services implements the driving ports on top of the driven stores.
//
// The orgparser package does the line-by-line work; services open and close
// the store transaction around it, decide which files of a sync directory
// need parsing, and rebuild or search the stored trees.
package services
