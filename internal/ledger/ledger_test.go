package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdhoang/careerledger/internal/ledger"
)

const (
	alice = "0xa11ce"
	bob   = "0xb0b"
	owner = "0x0wner"
	fee   = int64(1000)
)

type captureSink struct {
	events []ledger.Event
}

func (s *captureSink) Publish(e ledger.Event) { s.events = append(s.events, e) }

func newLedger(t *testing.T, opts ledger.Options) *ledger.Ledger {
	t.Helper()
	if opts.MinFeeMicros == 0 {
		opts.MinFeeMicros = fee
	}
	return ledger.New(opts)
}

func TestScoreDerivation(t *testing.T) {
	cases := []struct {
		name string
		in   ledger.Inputs
		want int
	}{
		{"none", ledger.Inputs{}, 50},
		{"goal only", ledger.Inputs{CareerGoal: true}, 65},
		{"skill only", ledger.Inputs{SkillLevel: true}, 70},
		{"education only", ledger.Inputs{EducationPriority: true}, 65},
		{"goal and education", ledger.Inputs{CareerGoal: true, EducationPriority: true}, 80},
		{"goal and skill", ledger.Inputs{CareerGoal: true, SkillLevel: true}, 85},
		{"skill and education", ledger.Inputs{SkillLevel: true, EducationPriority: true}, 85},
		{"all", ledger.Inputs{CareerGoal: true, SkillLevel: true, EducationPriority: true}, 100},
	}

	w := ledger.DefaultWeights()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := w.Score(c.in)
			assert.Equal(t, c.want, got)
			assert.GreaterOrEqual(t, got, w.Min())
			assert.LessOrEqual(t, got, w.Max())
		})
	}
}

func TestSubmitStoresFrozenScore(t *testing.T) {
	l := newLedger(t, ledger.Options{})

	a, err := l.Submit(alice, ledger.Inputs{CareerGoal: true, EducationPriority: true}, fee)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, alice, a.Submitter)
	assert.Equal(t, 80, a.GuidanceScore)
	assert.False(t, a.RevealRequested)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestSubmitAssignsDenseIDsAcrossSubmitters(t *testing.T) {
	l := newLedger(t, ledger.Options{})

	// A, B, A interleaved: ids stay dense in submission order.
	a1, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)
	b1, err := l.Submit(bob, ledger.Inputs{SkillLevel: true}, fee)
	require.NoError(t, err)
	a2, err := l.Submit(alice, ledger.Inputs{CareerGoal: true}, fee)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), a1.ID)
	assert.Equal(t, uint64(2), b1.ID)
	assert.Equal(t, uint64(3), a2.ID)

	assert.Equal(t, uint64(3), l.TotalCount())
	assert.Equal(t, 2, l.CountFor(alice))
	assert.Equal(t, 1, l.CountFor(bob))
	assert.Equal(t, []uint64{1, 3}, l.IDsFor(alice))
	assert.Equal(t, []uint64{2}, l.IDsFor(bob))
}

func TestSubmitInsufficientPayment(t *testing.T) {
	sink := &captureSink{}
	l := newLedger(t, ledger.Options{Sink: sink})

	_, err := l.Submit(alice, ledger.Inputs{CareerGoal: true}, fee-1)
	require.ErrorIs(t, err, ledger.ErrInsufficientPayment)

	// Rejected call left no trace: no record, no index entry, no event.
	assert.Equal(t, uint64(0), l.TotalCount())
	assert.Equal(t, 0, l.CountFor(alice))
	assert.Empty(t, sink.events)
}

func TestRequestRevealExactlyOnce(t *testing.T) {
	l := newLedger(t, ledger.Options{TwoPhaseReveal: true})

	a, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	require.NoError(t, l.RequestReveal(alice, a.ID))

	err = l.RequestReveal(alice, a.ID)
	require.ErrorIs(t, err, ledger.ErrAlreadyRequested)

	requested, err := l.IsRevealRequested(alice, a.ID)
	require.NoError(t, err)
	assert.True(t, requested, "flag must survive the rejected second call")
}

func TestNonSubmitterIsUnauthorized(t *testing.T) {
	l := newLedger(t, ledger.Options{TwoPhaseReveal: true})

	a, err := l.Submit(alice, ledger.Inputs{SkillLevel: true}, fee)
	require.NoError(t, err)

	require.ErrorIs(t, l.RequestReveal(bob, a.ID), ledger.ErrUnauthorized)
	_, err = l.ReadGuidance(bob, a.ID)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)

	// Still unauthorized after the reveal was requested by the submitter.
	require.NoError(t, l.RequestReveal(alice, a.ID))
	_, err = l.ReadGuidance(bob, a.ID)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
	_, err = l.TimestampOf(bob, a.ID)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
}

func TestUnknownAssessmentIsNotFound(t *testing.T) {
	l := newLedger(t, ledger.Options{})

	require.ErrorIs(t, l.RequestReveal(alice, 42), ledger.ErrNotFound)
	_, err := l.ReadGuidance(alice, 42)
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestTwoPhaseRevealGate(t *testing.T) {
	l := newLedger(t, ledger.Options{TwoPhaseReveal: true})

	a, err := l.Submit(alice, ledger.Inputs{CareerGoal: true, SkillLevel: true, EducationPriority: true}, fee)
	require.NoError(t, err)

	_, err = l.ReadGuidance(alice, a.ID)
	require.ErrorIs(t, err, ledger.ErrNotYetRequested)

	require.NoError(t, l.RequestReveal(alice, a.ID))

	score, err := l.ReadGuidance(alice, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestSinglePhaseReadsImmediately(t *testing.T) {
	l := newLedger(t, ledger.Options{TwoPhaseReveal: false})

	a, err := l.Submit(alice, ledger.Inputs{CareerGoal: true}, fee)
	require.NoError(t, err)

	score, err := l.ReadGuidance(alice, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 65, score)
}

func TestEventsEmittedInCommitOrder(t *testing.T) {
	sink := &captureSink{}
	l := newLedger(t, ledger.Options{Sink: sink})

	a, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)
	_, err = l.Submit(bob, ledger.Inputs{}, fee)
	require.NoError(t, err)
	require.NoError(t, l.RequestReveal(alice, a.ID))

	require.Len(t, sink.events, 3)

	sub, ok := sink.events[0].(ledger.Submitted)
	require.True(t, ok)
	assert.Equal(t, alice, sub.Submitter)
	assert.Equal(t, uint64(1), sub.ID)
	assert.False(t, sub.Timestamp.IsZero())

	sub2, ok := sink.events[1].(ledger.Submitted)
	require.True(t, ok)
	assert.Equal(t, uint64(2), sub2.ID)

	rev, ok := sink.events[2].(ledger.RevealRequested)
	require.True(t, ok)
	assert.Equal(t, alice, rev.Submitter)
	assert.Equal(t, uint64(1), rev.ID)
}

func TestCustomWeights(t *testing.T) {
	l := newLedger(t, ledger.Options{
		Weights: &ledger.Weights{Base: 10, GoalBonus: 1, SkillBonus: 2, EducationBonus: 3},
	})

	a, err := l.Submit(alice, ledger.Inputs{CareerGoal: true, EducationPriority: true}, fee)
	require.NoError(t, err)
	assert.Equal(t, 14, a.GuidanceScore)
}

func TestExplicitZeroWeightsAreHonored(t *testing.T) {
	// An all-zero table is a valid configuration, not a request for the
	// stock one.
	l := newLedger(t, ledger.Options{Weights: &ledger.Weights{}})

	a, err := l.Submit(alice, ledger.Inputs{CareerGoal: true, SkillLevel: true, EducationPriority: true}, fee)
	require.NoError(t, err)
	assert.Equal(t, 0, a.GuidanceScore)
}

func TestTimestampOfUsesInjectedClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := newLedger(t, ledger.Options{Clock: func() time.Time { return now }})

	a, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	ts, err := l.TimestampOf(alice, a.ID)
	require.NoError(t, err)
	assert.Equal(t, now, ts)
}

func TestWithdrawIsOwnerGated(t *testing.T) {
	l := newLedger(t, ledger.Options{Owner: owner})

	_, err := l.Submit(alice, ledger.Inputs{}, 2*fee)
	require.NoError(t, err)
	_, err = l.Submit(bob, ledger.Inputs{}, fee)
	require.NoError(t, err)

	_, err = l.Withdraw(alice, fee)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)

	balance, err := l.BalanceMicros(owner)
	require.NoError(t, err)
	assert.Equal(t, 3*fee, balance, "balance accrues every accepted payment")

	_, err = l.Withdraw(owner, 4*fee)
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	remaining, err := l.Withdraw(owner, 2*fee)
	require.NoError(t, err)
	assert.Equal(t, fee, remaining)
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	l := newLedger(t, ledger.Options{Owner: owner})

	_, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	_, err = l.Withdraw(owner, 0)
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)
	_, err = l.Withdraw(owner, -fee)
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)

	balance, err := l.BalanceMicros(owner)
	require.NoError(t, err)
	assert.Equal(t, fee, balance)
}

func TestWithdrawEmitsWithdrawnEvent(t *testing.T) {
	sink := &captureSink{}
	l := newLedger(t, ledger.Options{Owner: owner, Sink: sink})

	_, err := l.Submit(alice, ledger.Inputs{}, 3*fee)
	require.NoError(t, err)
	_, err = l.Withdraw(owner, 2*fee)
	require.NoError(t, err)

	require.Len(t, sink.events, 2)
	wd, ok := sink.events[1].(ledger.Withdrawn)
	require.True(t, ok)
	assert.Equal(t, ledger.EventWithdrawn, wd.Kind())
	assert.Equal(t, owner, wd.Owner)
	assert.Equal(t, 2*fee, wd.AmountMicros)
}

func TestWithdrawRejectedWithoutConfiguredOwner(t *testing.T) {
	l := newLedger(t, ledger.Options{})

	_, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	// An unset owner must not make everyone the owner.
	_, err = l.Withdraw("", fee)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
}

func TestRestoreRebuildsLedger(t *testing.T) {
	src := newLedger(t, ledger.Options{TwoPhaseReveal: true})

	a1, err := src.Submit(alice, ledger.Inputs{CareerGoal: true}, fee)
	require.NoError(t, err)
	b1, err := src.Submit(bob, ledger.Inputs{SkillLevel: true}, 2*fee)
	require.NoError(t, err)
	a2, err := src.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)
	require.NoError(t, src.RequestReveal(alice, a1.ID))
	a1.RevealRequested = true

	dst := newLedger(t, ledger.Options{TwoPhaseReveal: true, Owner: owner})
	require.NoError(t, dst.Restore([]ledger.Assessment{a1, b1, a2}, 0))

	assert.Equal(t, uint64(3), dst.TotalCount())
	assert.Equal(t, []uint64{1, 3}, dst.IDsFor(alice))
	assert.Equal(t, []uint64{2}, dst.IDsFor(bob))

	score, err := dst.ReadGuidance(alice, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, 65, score)

	_, err = dst.ReadGuidance(alice, a2.ID)
	require.ErrorIs(t, err, ledger.ErrNotYetRequested, "unrevealed records stay gated after replay")

	balance, err := dst.BalanceMicros(owner)
	require.NoError(t, err)
	assert.Equal(t, 4*fee, balance)

	// New submissions continue the dense id sequence.
	next, err := dst.Submit(bob, ledger.Inputs{}, fee)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), next.ID)
}

func TestRestoreRejectsSparseJournal(t *testing.T) {
	src := newLedger(t, ledger.Options{})
	a1, err := src.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	gap := a1
	gap.ID = 5

	dst := newLedger(t, ledger.Options{})
	require.Error(t, dst.Restore([]ledger.Assessment{gap}, 0))
}

func TestRestoreRequiresEmptyLedger(t *testing.T) {
	l := newLedger(t, ledger.Options{})
	a, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	require.Error(t, l.Restore([]ledger.Assessment{a}, 0))
}

func TestRestoreKeepsWithdrawnFeesWithdrawn(t *testing.T) {
	src := newLedger(t, ledger.Options{Owner: owner})

	a, err := src.Submit(alice, ledger.Inputs{}, 3*fee)
	require.NoError(t, err)
	remaining, err := src.Withdraw(owner, 2*fee)
	require.NoError(t, err)
	require.Equal(t, fee, remaining)

	// A restart replays the assessments plus the journaled withdrawal
	// total; the balance must come back drawn down, not refilled.
	dst := newLedger(t, ledger.Options{Owner: owner})
	require.NoError(t, dst.Restore([]ledger.Assessment{a}, 2*fee))

	balance, err := dst.BalanceMicros(owner)
	require.NoError(t, err)
	assert.Equal(t, fee, balance)
}

func TestRestoreRejectsInconsistentWithdrawnTotal(t *testing.T) {
	src := newLedger(t, ledger.Options{})
	a, err := src.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)

	dst := newLedger(t, ledger.Options{})
	require.Error(t, dst.Restore([]ledger.Assessment{a}, 2*fee), "withdrawn more than collected")
	require.Error(t, dst.Restore([]ledger.Assessment{a}, -1), "negative withdrawn total")
	require.NoError(t, dst.Restore([]ledger.Assessment{a}, fee), "rejected replays leave the ledger empty")
}

// readbackSink queries the ledger from inside Publish, as the HTTP layer may
// do while a journal append is in flight.
type readbackSink struct {
	l      *ledger.Ledger
	totals []uint64
}

func (s *readbackSink) Publish(ledger.Event) { s.totals = append(s.totals, s.l.TotalCount()) }

func TestReadsProceedDuringPublish(t *testing.T) {
	sink := &readbackSink{}
	l := newLedger(t, ledger.Options{Sink: sink})
	sink.l = l

	_, err := l.Submit(alice, ledger.Inputs{}, fee)
	require.NoError(t, err)
	_, err = l.Submit(bob, ledger.Inputs{}, fee)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2}, sink.totals)
}
