package advisor

import "github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"

// BestTier resolves a character's most favorable tier rating for a game
// mode. A character graded for several roles keeps the best of them; ties
// resolve by scale order alone, never by role identity. Characters with no
// tier data for the mode get DefaultTier. Total and idempotent: identical
// inputs always yield identical output, and an id the knowledge base has
// never heard of is just another character with no tier data.
func BestTier(idx *kb.Index, characterID string, mode kb.GameMode) TierRating {
	best := DefaultTier
	found := false

	for _, rec := range idx.TierRecords(characterID) {
		if rec.Mode != mode {
			continue
		}
		t := normalizeTier(rec.Tier)
		if !found || BetterTier(t, best) {
			best = t
			found = true
		}
	}

	if !found {
		return DefaultTier
	}
	return best
}
