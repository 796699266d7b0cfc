package host

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stellara-labs/eventstream/internal/event"
	"github.com/stellara-labs/eventstream/internal/metrics"
)

// Record is one appended entry in the in-memory ledger.
type Record struct {
	Seq       uint64   `json:"seq"` // 1-based append position
	ID        string   `json:"id"`
	Topics    []string `json:"topics"`
	Payload   any      `json:"payload"`
	Timestamp uint64   `json:"timestamp"`
}

// Ledger is an append-only, ordered in-memory event log. It is safe for
// concurrent use; ordering across concurrent appenders follows lock
// acquisition order, matching the host isolation model where each
// transaction sees its own appends in sequence.
type Ledger struct {
	mu      sync.RWMutex
	records []Record
	clock   func() uint64
}

// NewLedger creates a Ledger using wall-clock seconds as the ledger clock.
func NewLedger() *Ledger {
	return NewLedgerWithClock(func() uint64 { return uint64(time.Now().Unix()) })
}

// NewLedgerWithClock creates a Ledger with a caller-supplied clock. The
// clock must be monotonically non-decreasing.
func NewLedgerWithClock(clock func() uint64) *Ledger {
	return &Ledger{clock: clock}
}

// Bind returns a Host view of the ledger scoped to one emitting contract
// identity. Multiple identities can share one ledger.
func (l *Ledger) Bind(identity event.Address) Host {
	return &boundHost{ledger: l, identity: identity}
}

func (l *Ledger) append(topics []string, payload any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, Record{
		Seq:       uint64(len(l.records) + 1),
		ID:        uuid.New().String(),
		Topics:    topics,
		Payload:   payload,
		Timestamp: l.clock(),
	})
	metrics.LedgerSize.Set(float64(len(l.records)))
}

// Len returns the number of appended records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Records returns a copy of all appended records in order.
func (l *Ledger) Records() []Record {
	return l.Since(0)
}

// Since returns a copy of all records with Seq > seq, in order.
func (l *Ledger) Since(seq uint64) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if seq >= uint64(len(l.records)) {
		return nil
	}
	out := make([]Record, len(l.records[seq:]))
	copy(out, l.records[seq:])
	return out
}

// boundHost implements Host for one identity on top of a shared Ledger.
type boundHost struct {
	ledger   *Ledger
	identity event.Address
}

func (h *boundHost) Publish(topics []string, payload any) {
	h.ledger.append(topics, payload)
}

func (h *boundHost) Now() uint64 { return h.ledger.clock() }

func (h *boundHost) SelfIdentity() event.Address { return h.identity }
