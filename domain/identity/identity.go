// Package identity maps user-supplied email addresses to canonical,
// storage-safe keys for the hierarchical document tree.
package identity

import "strings"

// replacer substitutes the characters that are illegal in document
// paths. Both '.' and '@' collapse to the same substitute, matching
// the key format of already-persisted accounts.
var replacer = strings.NewReplacer(".", "-", "@", "-")

// Normalize derives the canonical key for an email address. It is
// total, deterministic and idempotent: malformed input passes through
// unchanged, explicit validation happens at registration.
func Normalize(email string) string {
	return replacer.Replace(strings.TrimSpace(email))
}
