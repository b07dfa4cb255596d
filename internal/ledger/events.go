package ledger

import "time"

// Event kinds, as recorded in the journal and surfaced to subscribers.
const (
	EventSubmitted       = "Submitted"
	EventRevealRequested = "RevealRequested"
	EventWithdrawn       = "Withdrawn"
)

// Event is a notification emitted after a state mutation commits. Events and
// direct reads are the only externally observable effects of the ledger.
type Event interface {
	Kind() string
}

// Submitted is emitted once per accepted submission.
type Submitted struct {
	Submitter string
	ID        uint64
	Timestamp time.Time
}

func (Submitted) Kind() string { return EventSubmitted }

// RevealRequested is emitted when a submitter flips their reveal flag.
type RevealRequested struct {
	Submitter string
	ID        uint64
}

func (RevealRequested) Kind() string { return EventRevealRequested }

// Withdrawn is emitted when the owner draws collected fees down. Journaled
// so a restart can subtract prior withdrawals from the replayed balance.
type Withdrawn struct {
	Owner        string
	AmountMicros int64
}

func (Withdrawn) Kind() string { return EventWithdrawn }

// EventSink receives events in commit order: publication happens after the
// state lock is released, but an emission lock keeps the event order equal
// to the mutation order. Reads proceed while a sink is publishing; sinks
// must not mutate the ledger from Publish.
type EventSink interface {
	Publish(e Event)
}
