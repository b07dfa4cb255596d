package ledger

import (
	"fmt"
	"sync"
	"time"
)

// Assessment is one submitted record: three sealed preference signals plus
// the guidance score derived from them at submission time. Submitter and
// CreatedAt are fixed at creation; RevealRequested transitions false to true
// exactly once.
type Assessment struct {
	ID              uint64
	Submitter       string
	Commitment      Commitment
	GuidanceScore   int
	FeePaidMicros   int64
	CreatedAt       time.Time
	RevealRequested bool
}

// Options parameterize a ledger. Nil values fall back to the stock score
// table, the plaintext scheme and the wall clock. Weights is a pointer so an
// explicitly configured all-zero table is honored rather than replaced.
type Options struct {
	Owner          string
	MinFeeMicros   int64
	TwoPhaseReveal bool
	Weights        *Weights
	Scheme         Scheme
	Sink           EventSink
	Clock          func() time.Time
}

// Ledger is the append-only assessment store. A single mutex guards the id
// counter, the record map, the per-submitter index and the fee balance; all
// of them mutate together, atomically, per call. Precondition checks happen
// before any mutation, so a rejected call leaves the ledger exactly as it
// was.
//
// emitMu serializes event publication. It is acquired before mu is released
// on a mutating call, so events reach the sink in commit order without
// holding the state lock across sink I/O.
type Ledger struct {
	mu          sync.Mutex
	emitMu      sync.Mutex
	opts        Options
	lastID      uint64
	records     map[uint64]*Assessment
	bySubmitter map[string][]uint64
	feesMicros  int64
}

// New creates an empty ledger. The ledger owns its state for the lifetime of
// the process; records are never deleted.
func New(opts Options) *Ledger {
	if opts.Weights == nil {
		w := DefaultWeights()
		opts.Weights = &w
	}
	if opts.Scheme == nil {
		opts.Scheme = PlaintextScheme{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Ledger{
		opts:        opts,
		records:     make(map[uint64]*Assessment),
		bySubmitter: make(map[string][]uint64),
	}
}

// Submit allocates the next sequential id, derives the guidance score,
// seals the inputs and stores the new assessment. Fails with
// ErrInsufficientPayment when the payment is below the configured minimum.
func (l *Ledger) Submit(submitter string, in Inputs, paymentMicros int64) (Assessment, error) {
	if paymentMicros < l.opts.MinFeeMicros {
		return Assessment{}, fmt.Errorf("%w: got %d, need %d", ErrInsufficientPayment, paymentMicros, l.opts.MinFeeMicros)
	}

	// Seal outside the lock; only the commit below needs serializing.
	commitment, err := l.opts.Scheme.Seal(submitter, in)
	if err != nil {
		return Assessment{}, fmt.Errorf("failed to seal inputs: %w", err)
	}

	l.mu.Lock()

	a := &Assessment{
		ID:            l.lastID + 1,
		Submitter:     submitter,
		Commitment:    commitment,
		GuidanceScore: l.opts.Weights.Score(in),
		FeePaidMicros: paymentMicros,
		CreatedAt:     l.opts.Clock(),
	}

	l.lastID = a.ID
	l.records[a.ID] = a
	l.bySubmitter[submitter] = append(l.bySubmitter[submitter], a.ID)
	l.feesMicros += paymentMicros

	result := *a
	l.commit(Submitted{Submitter: submitter, ID: a.ID, Timestamp: a.CreatedAt})
	return result, nil
}

// RequestReveal flips the one-shot reveal flag. Only the submitter may call
// it, and only once per assessment.
func (l *Ledger) RequestReveal(caller string, id uint64) error {
	l.mu.Lock()

	a, err := l.owned(caller, id)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if a.RevealRequested {
		l.mu.Unlock()
		return fmt.Errorf("assessment %d: %w", id, ErrAlreadyRequested)
	}

	a.RevealRequested = true
	l.commit(RevealRequested{Submitter: caller, ID: id})
	return nil
}

// ReadGuidance returns the guidance score computed and frozen at submission
// time. It is never the result of a decryption step: the sealed commitment
// is storage, not the score's source. In the two-phase flavor the submitter
// must have requested the reveal first.
func (l *Ledger) ReadGuidance(caller string, id uint64) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.owned(caller, id)
	if err != nil {
		return 0, err
	}
	if l.opts.TwoPhaseReveal && !a.RevealRequested {
		return 0, fmt.Errorf("assessment %d: %w", id, ErrNotYetRequested)
	}
	return a.GuidanceScore, nil
}

// Get returns a copy of the assessment. Restricted to the submitter.
func (l *Ledger) Get(caller string, id uint64) (Assessment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.owned(caller, id)
	if err != nil {
		return Assessment{}, err
	}
	return *a, nil
}

// OpenInputs recovers the original signals when the commitment scheme
// permits it (plaintext and encrypted schemes do, salted-hash does not).
// Restricted to the submitter.
func (l *Ledger) OpenInputs(caller string, id uint64) (Inputs, bool, error) {
	a, err := l.Get(caller, id)
	if err != nil {
		return Inputs{}, false, err
	}
	in, ok := l.opts.Scheme.Open(a.Commitment, a.Submitter)
	return in, ok, nil
}

// IsRevealRequested reports the reveal flag. Restricted to the submitter.
func (l *Ledger) IsRevealRequested(caller string, id uint64) (bool, error) {
	a, err := l.Get(caller, id)
	if err != nil {
		return false, err
	}
	return a.RevealRequested, nil
}

// TimestampOf returns the creation time. Restricted to the submitter.
func (l *Ledger) TimestampOf(caller string, id uint64) (time.Time, error) {
	a, err := l.Get(caller, id)
	if err != nil {
		return time.Time{}, err
	}
	return a.CreatedAt, nil
}

// CountFor returns how many assessments the submitter has created.
func (l *Ledger) CountFor(submitter string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bySubmitter[submitter])
}

// IDsFor returns the submitter's assessment ids in creation order.
func (l *Ledger) IDsFor(submitter string) []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]uint64(nil), l.bySubmitter[submitter]...)
}

// TotalCount returns the number of assessments ever created. Ids are dense
// from 1, so this equals the last assigned id.
func (l *Ledger) TotalCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastID
}

// BalanceMicros returns the undrawn fee balance. Owner only.
func (l *Ledger) BalanceMicros(caller string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.ownerOnly(caller); err != nil {
		return 0, err
	}
	return l.feesMicros, nil
}

// Withdraw draws collected fees down. Owner only; the balance never goes
// negative. Emits Withdrawn so a restart replays the drawn-down balance.
func (l *Ledger) Withdraw(caller string, amountMicros int64) (remaining int64, err error) {
	l.mu.Lock()

	if err := l.ownerOnly(caller); err != nil {
		l.mu.Unlock()
		return 0, err
	}
	if amountMicros <= 0 {
		l.mu.Unlock()
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAmount, amountMicros)
	}
	if amountMicros > l.feesMicros {
		l.mu.Unlock()
		return 0, fmt.Errorf("%w: balance %d, requested %d", ErrInsufficientFunds, l.feesMicros, amountMicros)
	}

	l.feesMicros -= amountMicros
	remaining = l.feesMicros
	l.commit(Withdrawn{Owner: caller, AmountMicros: amountMicros})
	return remaining, nil
}

// Restore seeds an empty ledger from archived assessments, in id order.
// withdrawnMicros is the journaled sum of prior withdrawals; the replayed
// balance is the collected fees minus that sum, so withdrawn fees stay
// withdrawn across restarts. Used once at startup; no events are emitted.
func (l *Ledger) Restore(records []Assessment, withdrawnMicros int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lastID != 0 {
		return fmt.Errorf("restore requires an empty ledger, have %d records", l.lastID)
	}
	if withdrawnMicros < 0 {
		return fmt.Errorf("journal is corrupt: negative withdrawn total %d", withdrawnMicros)
	}

	// Validate everything before mutating, so a bad journal leaves the
	// ledger empty rather than half-replayed.
	var collected int64
	for i := range records {
		if records[i].ID != uint64(i)+1 {
			return fmt.Errorf("journal is not dense: expected id %d, got %d", i+1, records[i].ID)
		}
		collected += records[i].FeePaidMicros
	}
	if withdrawnMicros > collected {
		return fmt.Errorf("journal is corrupt: withdrawn total %d exceeds collected fees %d", withdrawnMicros, collected)
	}

	for i := range records {
		a := records[i]
		l.records[a.ID] = &a
		l.bySubmitter[a.Submitter] = append(l.bySubmitter[a.Submitter], a.ID)
		l.lastID = a.ID
	}
	l.feesMicros = collected - withdrawnMicros
	return nil
}

// MinFeeMicros exposes the configured minimum fee.
func (l *Ledger) MinFeeMicros() int64 { return l.opts.MinFeeMicros }

// TwoPhaseReveal reports whether reads are gated behind a reveal request.
func (l *Ledger) TwoPhaseReveal() bool { return l.opts.TwoPhaseReveal }

// SchemeName exposes the active commitment scheme's name.
func (l *Ledger) SchemeName() string { return l.opts.Scheme.Name() }

// AuthorizeOwner checks the owner capability without touching state.
func (l *Ledger) AuthorizeOwner(caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ownerOnly(caller)
}

// owned looks up an assessment and enforces the submitter capability.
// Callers hold l.mu.
func (l *Ledger) owned(caller string, id uint64) (*Assessment, error) {
	a, ok := l.records[id]
	if !ok {
		return nil, fmt.Errorf("assessment %d: %w", id, ErrNotFound)
	}
	if a.Submitter != caller {
		return nil, fmt.Errorf("assessment %d: %w", id, ErrUnauthorized)
	}
	return a, nil
}

func (l *Ledger) ownerOnly(caller string) error {
	if l.opts.Owner == "" || caller != l.opts.Owner {
		return fmt.Errorf("owner capability required: %w", ErrUnauthorized)
	}
	return nil
}

// commit hands an event to the sink after releasing the state lock. The
// emission lock is taken before the state lock is dropped, so events reach
// the sink in mutation order while reads proceed during sink I/O. Callers
// hold l.mu and must not touch state afterwards.
func (l *Ledger) commit(e Event) {
	l.emitMu.Lock()
	l.mu.Unlock()
	if l.opts.Sink != nil {
		l.opts.Sink.Publish(e)
	}
	l.emitMu.Unlock()
}
