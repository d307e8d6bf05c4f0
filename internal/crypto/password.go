// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// cost is the bcrypt work factor. Stored in the struct so it can be
	// raised per deployment target without touching call sites.
	cost int
}

// NewPasswordHasher constructs a [PasswordHasher] backed by bcrypt.
//
// A cost of 0 (or any value below bcrypt.MinCost) selects
// bcrypt.DefaultCost. The cost is the knob that keeps brute-forcing a
// stolen digest expensive; tests may pass bcrypt.MinCost to stay fast.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt generates a random 16-byte salt
// internally and encodes salt, cost, and digest into the returned string.
func (p *passwordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [PasswordHasher]. The comparison re-derives the digest
// from plaintext under the parameters embedded in digest; any mismatch or
// malformed digest yields false.
func (p *passwordHasher) Verify(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
