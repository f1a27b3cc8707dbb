// Package roster holds the per-user roster snapshot the advisor computes
// against. The advisor treats a Snapshot as read-only for the duration of
// one computation; callers re-query after any roster mutation.
package roster

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Ownership is the user's acquisition status for a character.
type Ownership string

// Ownership states.
const (
	StatusNone    Ownership = "none"
	StatusPlanned Ownership = "planned"
	StatusOwned   Ownership = "owned"
)

// Investment is the user's state for one character: ownership, eidolon
// (duplicate) count, and whether the signature light cone is owned.
type Investment struct {
	Status    Ownership
	Eidolon   int
	Signature bool
}

// Snapshot maps character id to investment state. Absent ids are treated as
// not owned.
type Snapshot map[string]Investment

// Owned reports whether the character is owned.
func (s Snapshot) Owned(id string) bool {
	return s[id].Status == StatusOwned
}

// Eidolon returns the owned eidolon count for id, 0 when not owned.
func (s Snapshot) Eidolon(id string) int {
	inv, ok := s[id]
	if !ok || inv.Status != StatusOwned {
		return 0
	}
	return inv.Eidolon
}

// OwnedIDs returns the ids of all owned characters in sorted order.
func (s Snapshot) OwnedIDs() []string {
	ids := make([]string, 0, len(s))
	for id, inv := range s {
		if inv.Status == StatusOwned {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Hash returns a stable digest of the snapshot content, used as part of the
// advisor's memoization cache key. Two snapshots with identical content hash
// identically regardless of map iteration order.
func (s Snapshot) Hash() string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		inv := s[id]
		fmt.Fprintf(h, "%s|%s|%d|%t\n", id, inv.Status, inv.Eidolon, inv.Signature)
	}
	return hex.EncodeToString(h.Sum(nil))
}
