// Package content holds the static text calm shows between exercises:
// affirmations, journal prompts and activity suggestions.
package content

import (
	"fmt"
	"strconv"
	"strings"
)

// AffirmationKey is where the deck position is remembered.
const AffirmationKey = "affirmationIndex"

var affirmations = []string{
	"I am safe and in control.",
	"This feeling will pass.",
	"I am strong and capable.",
	"I am surrounded by love and support.",
	"I trust myself to handle this.",
	"I am calm and at peace.",
	"I am worthy of happiness.",
	"I am resilient and can overcome challenges.",
	"I am in charge of my thoughts and feelings.",
	"I am grateful for my strength and courage.",
}

// Affirmations returns a copy of the deck in order.
func Affirmations() []string {
	return append([]string(nil), affirmations...)
}

// Affirmation returns the card at i, wrapping modulo the deck length.
func Affirmation(i int) string {
	n := len(affirmations)
	return affirmations[((i%n)+n)%n]
}

// KV is the slice of a key-value store the deck needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// NextAffirmation returns the card at the remembered position and advances
// the position. A missing or unreadable position starts at the first card.
func NextAffirmation(kv KV) (string, error) {
	raw, ok, err := kv.Get(AffirmationKey)
	if err != nil {
		return "", fmt.Errorf("content: read affirmation index: %w", err)
	}
	i := 0
	if ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 0 {
			i = n % len(affirmations)
		}
	}
	next := (i + 1) % len(affirmations)
	if err := kv.Set(AffirmationKey, strconv.Itoa(next)); err != nil {
		return "", fmt.Errorf("content: save affirmation index: %w", err)
	}
	return affirmations[i], nil
}
