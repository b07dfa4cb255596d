package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdhoang/careerledger/internal/ledger"
)

var allInputs = []ledger.Inputs{
	{},
	{CareerGoal: true},
	{SkillLevel: true},
	{EducationPriority: true},
	{CareerGoal: true, SkillLevel: true},
	{CareerGoal: true, EducationPriority: true},
	{SkillLevel: true, EducationPriority: true},
	{CareerGoal: true, SkillLevel: true, EducationPriority: true},
}

func TestPlaintextSchemeRoundTrip(t *testing.T) {
	s := ledger.PlaintextScheme{}
	for _, in := range allInputs {
		c, err := s.Seal(alice, in)
		require.NoError(t, err)
		assert.Equal(t, ledger.SchemePlaintext, c.Scheme)

		got, ok := s.Open(c, alice)
		require.True(t, ok)
		assert.Equal(t, in, got)
	}
}

func TestSaltedHashSchemeIsOneWay(t *testing.T) {
	s := ledger.SaltedHashScheme{}
	in := ledger.Inputs{CareerGoal: true, EducationPriority: true}

	c, err := s.Seal(alice, in)
	require.NoError(t, err)
	assert.Len(t, c.Digest, 32)
	assert.NotEmpty(t, c.Nonce)

	_, ok := s.Open(c, alice)
	assert.False(t, ok, "salted-hash commitments never open")

	// Fresh nonce per seal means identical inputs yield distinct digests.
	c2, err := s.Seal(alice, in)
	require.NoError(t, err)
	assert.NotEqual(t, c.Digest, c2.Digest)
}

func TestSaltedHashSchemeVerify(t *testing.T) {
	s := ledger.SaltedHashScheme{}
	in := ledger.Inputs{SkillLevel: true}

	c, err := s.Seal(alice, in)
	require.NoError(t, err)

	assert.True(t, s.Verify(c, alice, in))
	assert.False(t, s.Verify(c, bob, in), "digest binds the submitter")
	assert.False(t, s.Verify(c, alice, ledger.Inputs{CareerGoal: true}), "digest binds the inputs")
}

func TestEncryptedSchemeRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	s, err := ledger.NewEncryptedScheme(key)
	require.NoError(t, err)

	for _, in := range allInputs {
		c, err := s.Seal(alice, in)
		require.NoError(t, err)
		assert.Equal(t, ledger.SchemeEncrypted, c.Scheme)
		assert.NotEmpty(t, c.Handle)

		got, ok := s.Open(c, alice)
		require.True(t, ok)
		assert.Equal(t, in, got)
	}
}

func TestEncryptedSchemeBindsSubmitterAndRejectsTampering(t *testing.T) {
	key := make([]byte, 32)
	s, err := ledger.NewEncryptedScheme(key)
	require.NoError(t, err)

	c, err := s.Seal(alice, ledger.Inputs{CareerGoal: true})
	require.NoError(t, err)

	_, ok := s.Open(c, bob)
	assert.False(t, ok, "handle is bound to the submitter")

	c.Handle[len(c.Handle)-1] ^= 0xff
	_, ok = s.Open(c, alice)
	assert.False(t, ok, "tampered handles do not open")
}

func TestEncryptedSchemeRequiresKey(t *testing.T) {
	_, err := ledger.NewEncryptedScheme(nil)
	require.Error(t, err)
}

func TestNewScheme(t *testing.T) {
	s, err := ledger.NewScheme("", nil)
	require.NoError(t, err)
	assert.Equal(t, ledger.SchemePlaintext, s.Name())

	s, err = ledger.NewScheme(ledger.SchemeSaltedHash, nil)
	require.NoError(t, err)
	assert.Equal(t, ledger.SchemeSaltedHash, s.Name())

	s, err = ledger.NewScheme(ledger.SchemeEncrypted, make([]byte, 32))
	require.NoError(t, err)
	assert.Equal(t, ledger.SchemeEncrypted, s.Name())

	_, err = ledger.NewScheme("homomorphic", nil)
	require.Error(t, err)
}
