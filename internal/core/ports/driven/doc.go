// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NodeStore: File and node persistence, opens one NodeSink per parse
//   - NodeSink: The transactional sink a single parse writes into
//   - IndexStore: Persistence of the index document vocabulary
//   - ConfigStore: Application configuration
//   - PreferenceStore: User preferences read before each parse
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or parser package
package driven
