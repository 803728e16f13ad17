// Package id generates the short, URL-safe identifiers attached to rendered cards.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// cardAlphabet avoids '-' and '_' so ids survive chat markdown untouched.
const cardAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// cardIDLength keeps collision odds negligible for a per-request log correlator.
const cardIDLength = 12

// Generate creates a prefixed unique ID using NanoID.
// Format: prefix-nanoid (e.g., "card-8f3k2m0q9zxa").
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	raw, err := gonanoid.Generate(cardAlphabet, cardIDLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + raw, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// NewCardID returns an identifier for one compositor invocation.
func NewCardID() string {
	return MustGenerate("card")
}
