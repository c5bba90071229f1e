package security

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/clearview/jobtracker/internal/core/domain"
)

func TestBcryptHasher_NonDeterministic(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same input must differ")
	}
	if first == "secret" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !h.Verify("secret", first) || !h.Verify("secret", second) {
		t.Fatal("both digests must verify")
	}
}

func TestBcryptHasher_RejectsWrongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	digest, _ := h.Hash("secret")

	if h.Verify("Secret", digest) {
		t.Fatal("wrong password verified")
	}
	if h.Verify("", digest) {
		t.Fatal("empty password verified")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-hash", "$2a$04$short"} {
		if h.Verify("secret", digest) {
			t.Fatalf("malformed digest %q verified", digest)
		}
	}
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	if got := NewBcryptHasher(0).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
	if got := NewBcryptHasher(bcrypt.MaxCost + 1).cost; got != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", got)
	}
}

func TestBcryptHasher_LongPasswordIsInvalidInput(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	// 40 runes, 80 bytes.
	if _, err := h.Hash(strings.Repeat("é", 40)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	digest, err := h.Hash(strings.Repeat("é", 36))
	if err != nil {
		t.Fatalf("72 byte password: %v", err)
	}
	if !h.Verify(strings.Repeat("é", 36), digest) {
		t.Fatal("72 byte password must verify")
	}
}
