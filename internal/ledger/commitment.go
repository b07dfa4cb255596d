package ledger

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// Scheme names accepted by NewScheme.
const (
	SchemePlaintext  = "plaintext"
	SchemeSaltedHash = "salted-hash"
	SchemeEncrypted  = "encrypted"
)

// commitmentLabel domain-separates salted-hash digests from any other
// Keccak use of the same inputs.
const commitmentLabel = "career-assessment-v1"

// Commitment is the stored representation of an assessment's inputs. Exactly
// one representation is populated, depending on the scheme the ledger was
// built with; representations are never mixed within one ledger.
type Commitment struct {
	Scheme string `json:"scheme"`
	Packed byte   `json:"packed,omitempty"` // plaintext: bit 0 goal, bit 1 skill, bit 2 education
	Digest []byte `json:"digest,omitempty"` // salted-hash: Keccak-256 digest
	Nonce  string `json:"nonce,omitempty"`  // salted-hash: uuid salt
	Handle []byte `json:"handle,omitempty"` // encrypted: GCM nonce || ciphertext
}

// A Scheme seals the three input signals into their stored form. Open
// recovers them when the scheme permits it; the salted-hash scheme is
// one-way and always reports false.
type Scheme interface {
	Name() string
	Seal(submitter string, in Inputs) (Commitment, error)
	Open(c Commitment, submitter string) (Inputs, bool)
}

// NewScheme builds the scheme named in configuration. key is only consulted
// for the encrypted scheme.
func NewScheme(name string, key []byte) (Scheme, error) {
	switch name {
	case SchemePlaintext, "":
		return PlaintextScheme{}, nil
	case SchemeSaltedHash:
		return SaltedHashScheme{}, nil
	case SchemeEncrypted:
		return NewEncryptedScheme(key)
	default:
		return nil, fmt.Errorf("unknown commitment scheme %q", name)
	}
}

func packInputs(in Inputs) byte {
	var b byte
	if in.CareerGoal {
		b |= 1
	}
	if in.SkillLevel {
		b |= 2
	}
	if in.EducationPriority {
		b |= 4
	}
	return b
}

func unpackInputs(b byte) Inputs {
	return Inputs{
		CareerGoal:        b&1 != 0,
		SkillLevel:        b&2 != 0,
		EducationPriority: b&4 != 0,
	}
}

// PlaintextScheme stores the signals as-is.
type PlaintextScheme struct{}

func (PlaintextScheme) Name() string { return SchemePlaintext }

func (PlaintextScheme) Seal(_ string, in Inputs) (Commitment, error) {
	return Commitment{Scheme: SchemePlaintext, Packed: packInputs(in)}, nil
}

func (PlaintextScheme) Open(c Commitment, _ string) (Inputs, bool) {
	if c.Scheme != SchemePlaintext {
		return Inputs{}, false
	}
	return unpackInputs(c.Packed), true
}

// SaltedHashScheme stores a Keccak-256 digest over
// submitter || inputs || nonce || label, with a fresh uuid nonce per
// submission. The digest cannot be opened, only verified against a claimed
// set of inputs.
type SaltedHashScheme struct{}

func (SaltedHashScheme) Name() string { return SchemeSaltedHash }

func (s SaltedHashScheme) Seal(submitter string, in Inputs) (Commitment, error) {
	nonce := uuid.NewString()
	return Commitment{
		Scheme: SchemeSaltedHash,
		Digest: s.digest(submitter, in, nonce),
		Nonce:  nonce,
	}, nil
}

func (SaltedHashScheme) Open(Commitment, string) (Inputs, bool) {
	return Inputs{}, false
}

// Verify reports whether the commitment binds the claimed inputs for the
// claimed submitter.
func (s SaltedHashScheme) Verify(c Commitment, submitter string, in Inputs) bool {
	if c.Scheme != SchemeSaltedHash {
		return false
	}
	return bytes.Equal(c.Digest, s.digest(submitter, in, c.Nonce))
}

func (SaltedHashScheme) digest(submitter string, in Inputs, nonce string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(submitter))
	h.Write([]byte{packInputs(in)})
	h.Write([]byte(nonce))
	h.Write([]byte(commitmentLabel))
	return h.Sum(nil)
}

// EncryptedScheme stores an AES-GCM handle over the packed signals, with the
// submitter bound in as associated data. The service holding the key can
// open the handle; nobody else can.
type EncryptedScheme struct {
	aead cipher.AEAD
}

func NewEncryptedScheme(key []byte) (*EncryptedScheme, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("encrypted commitment scheme requires a key")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return &EncryptedScheme{aead: aead}, nil
}

func (*EncryptedScheme) Name() string { return SchemeEncrypted }

func (s *EncryptedScheme) Seal(submitter string, in Inputs) (Commitment, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return Commitment{}, err
	}
	ciphertext := s.aead.Seal(nil, nonce, []byte{packInputs(in)}, []byte(submitter))
	return Commitment{Scheme: SchemeEncrypted, Handle: append(nonce, ciphertext...)}, nil
}

func (s *EncryptedScheme) Open(c Commitment, submitter string) (Inputs, bool) {
	if c.Scheme != SchemeEncrypted || len(c.Handle) < s.aead.NonceSize() {
		return Inputs{}, false
	}
	nonce, ciphertext := c.Handle[:s.aead.NonceSize()], c.Handle[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ciphertext, []byte(submitter))
	if err != nil || len(plain) != 1 {
		return Inputs{}, false
	}
	return unpackInputs(plain[0]), true
}
