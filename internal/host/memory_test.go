package host

import (
	"testing"

	"github.com/stellara-labs/eventstream/internal/event"
)

func TestLedgerAppendOrdering(t *testing.T) {
	var now uint64 = 100
	l := NewLedgerWithClock(func() uint64 { return now })
	h := l.Bind("CCONTRACT")

	h.Publish([]string{"transfer", "GA", "GB"}, int64(5))
	now = 101
	h.Publish([]string{"mint", "GC"}, int64(7))

	recs := l.Records()
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Seq != 1 || recs[1].Seq != 2 {
		t.Errorf("sequence numbers not contiguous from 1: %d, %d", recs[0].Seq, recs[1].Seq)
	}
	if recs[0].Timestamp != 100 || recs[1].Timestamp != 101 {
		t.Errorf("timestamps not taken from the ledger clock: %d, %d", recs[0].Timestamp, recs[1].Timestamp)
	}
	if recs[0].ID == "" || recs[0].ID == recs[1].ID {
		t.Errorf("record IDs missing or not unique: %q, %q", recs[0].ID, recs[1].ID)
	}
	if recs[0].Topics[0] != "transfer" {
		t.Errorf("topics not preserved: %v", recs[0].Topics)
	}
}

func TestLedgerSince(t *testing.T) {
	l := NewLedgerWithClock(func() uint64 { return 1 })
	h := l.Bind("CCONTRACT")
	for i := 0; i < 5; i++ {
		h.Publish([]string{"burn", "GA"}, int64(i))
	}

	tail := l.Since(3)
	if len(tail) != 2 {
		t.Fatalf("Since(3): expected 2 records, got %d", len(tail))
	}
	if tail[0].Seq != 4 {
		t.Errorf("Since(3): expected first seq 4, got %d", tail[0].Seq)
	}
	if got := l.Since(5); got != nil {
		t.Errorf("Since(5): expected nil, got %d records", len(got))
	}
	if got := l.Since(99); got != nil {
		t.Errorf("Since past end: expected nil, got %d records", len(got))
	}
}

func TestBoundHostIdentity(t *testing.T) {
	l := NewLedger()
	a := l.Bind(event.Address("CTOKEN"))
	b := l.Bind(event.Address("CSTAKING"))
	if a.SelfIdentity() != "CTOKEN" || b.SelfIdentity() != "CSTAKING" {
		t.Errorf("bound identities wrong: %s, %s", a.SelfIdentity(), b.SelfIdentity())
	}

	a.Publish([]string{"stake", "GA"}, int64(1))
	b.Publish([]string{"vote", "GB"}, int64(2))
	if l.Len() != 2 {
		t.Errorf("shared ledger should hold both appends, got %d", l.Len())
	}
}
