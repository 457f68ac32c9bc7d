package hasher

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_RoundTrip(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatalf("digest does not verify against original password")
	}
	if h.Verify("other", digest) {
		t.Fatalf("digest verifies against a different password")
	}
}

func TestBcrypt_UniqueSalt(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password are identical; salt is not unique")
	}
}

func TestNewBcrypt_CostFallback(t *testing.T) {
	h := NewBcrypt(-1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", h.cost)
	}
	h = NewBcrypt(bcrypt.MaxCost + 1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to DefaultCost, got %d", h.cost)
	}
}
