// Copyright (c) 2026 Jordan Lorne.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// deleteTokenBytes is the entropy behind a poll's delete token.
	deleteTokenBytes = 16

	// slugSuffixLen is the length of the random base-36 suffix appended to
	// every poll slug.
	slugSuffixLen = 6

	// maxSlugBodyLen truncates slugified titles so the overall URL stays
	// short.
	maxSlugBodyLen = 80

	base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateDeleteToken creates the bearer secret that authorizes deleting a
// poll. Possession of the token, not identity, is what grants the right;
// the server never re-displays it after creation.
func GenerateDeleteToken() (string, error) {
	return GenerateID(deleteTokenBytes)
}

// MatchDeleteToken compares a supplied token against the stored one in
// constant time.
func MatchDeleteToken(supplied, stored string) bool {
	if supplied == "" || stored == "" {
		return false
	}
	return hmac.Equal([]byte(supplied), []byte(stored))
}

// PollSlug derives a URL-safe slug from a poll title: the slugified title
// (lowercase, non-alphanumerics collapsed to hyphens, truncated) plus a
// random base-36 suffix. The suffix avoids collisions between polls with the
// same title but is not guaranteed unique; the store's unique index is the
// backstop and callers retry on a duplicate.
func PollSlug(title string) (string, error) {
	body := slug.Make(title)
	if len(body) > maxSlugBodyLen {
		body = strings.TrimRight(body[:maxSlugBodyLen], "-")
	}

	suffix, err := gonanoid.Generate(base36Alphabet, slugSuffixLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate slug suffix: %w", err)
	}

	if body == "" {
		return suffix, nil
	}
	return body + "-" + suffix, nil
}
