// Package host abstracts the runtime capabilities the emission layer needs:
// an append-only event log, a ledger clock, and the identity of the emitting
// contract. Production deployments bind Host to the real chain runtime; this
// package also ships an in-memory implementation for the gateway and tests.
package host

import "github.com/stellara-labs/eventstream/internal/event"

// Host is the capability surface injected into the emitter.
type Host interface {
	// Publish appends an event to the host's log under the given topic
	// tuple. The log is append-only and ordered; payload encoding is the
	// host's concern.
	Publish(topics []string, payload any)
	// Now returns the ledger clock, monotonically non-decreasing within an
	// invocation context.
	Now() uint64
	// SelfIdentity returns the executing contract's own address. Callers
	// cannot influence this value, which is what makes event provenance
	// trustworthy.
	SelfIdentity() event.Address
}
