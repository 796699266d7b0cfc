package event

import "github.com/stellara-labs/eventstream/internal/topic"

// Address is a contract or account identity as rendered by the host.
// Validation happens upstream in domain logic; this layer treats it opaquely.
type Address string

// Event is the standardized, versioned record published for every
// state-changing domain action. It is write-once: built by the emitter,
// handed to the host event log, never mutated or read back by this layer.
//
// Data is positional: its length and element order are fixed per topic, so
// producers and consumers must agree on the layout per event type. Metadata
// carries a key-addressable view of a subset of the same values; every key
// observed so far maps to a single-element slice, but the shape allows more.
type Event struct {
	EventType       topic.Topic         `json:"event_type"`
	ContractAddress Address             `json:"contract_address"`
	UserAddress     *Address            `json:"user_address,omitempty"`
	Data            []any               `json:"data"`
	Metadata        map[topic.Key][]any `json:"metadata"`
	Timestamp       uint64              `json:"timestamp"`
	Version         uint32              `json:"version"`
}
