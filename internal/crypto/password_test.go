package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash_VerifyRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if !hasher.Verify("pw123", digest) {
		t.Fatalf("expected Verify to accept the original plaintext")
	}
	if hasher.Verify("wrong", digest) {
		t.Fatalf("expected Verify to reject a different plaintext")
	}
}

func TestHash_DigestNeverEqualsPlaintext(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	plaintext := "pw123"
	digest, err := hasher.Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if digest == plaintext {
		t.Fatalf("digest must not equal the plaintext password")
	}
	if strings.Contains(digest, plaintext) {
		t.Fatalf("digest must not embed the plaintext password")
	}
}

func TestHash_SaltedOutputDiffers(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	d1, err := hasher.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	d2, err := hasher.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("expected digests of the same password to differ (random salt)")
	}
	if !hasher.Verify("pw123", d1) || !hasher.Verify("pw123", d2) {
		t.Fatalf("both digests must verify against the original password")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	if hasher.Verify("pw123", "not-a-bcrypt-digest") {
		t.Fatalf("expected Verify to reject a malformed digest")
	}
}

func TestNewPasswordHasher_DefaultCost(t *testing.T) {
	hasher := NewPasswordHasher(0).(*passwordHasher)

	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want bcrypt.DefaultCost (%d)", hasher.cost, bcrypt.DefaultCost)
	}
}
