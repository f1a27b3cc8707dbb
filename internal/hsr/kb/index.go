package kb

import (
	"sort"
	"time"
)

// Index is the materialized, read-only view of the knowledge base the
// advisor computes against. The want/offer edges form a bipartite graph
// (wanting character <-> wanted teammate); rather than re-scanning the edge
// list per query, the index keeps id-keyed adjacency in both directions.
type Index struct {
	characters map[string]*Character
	wantedBy   map[string][]*TeammateRecommendation // wanted id -> edges pointing at it
	wants      map[string][]*TeammateRecommendation // wanting id -> its outgoing edges
	tiers      map[string][]*TierRecord             // character id -> tier records, all modes
	banners    []*Banner

	// Version identifies this knowledge-base content (SHA-256 of the source
	// files). It participates in the advisor's cache key.
	Version string
}

// NewIndex builds an Index from raw knowledge-base records. Edge order is
// normalized (wanting id, then wanted id, then category) so that iteration
// order never depends on input order.
func NewIndex(chars []*Character, edges []*TeammateRecommendation, tiers []*TierRecord, banners []*Banner, version string) *Index {
	idx := &Index{
		characters: make(map[string]*Character, len(chars)),
		wantedBy:   make(map[string][]*TeammateRecommendation),
		wants:      make(map[string][]*TeammateRecommendation),
		tiers:      make(map[string][]*TierRecord),
		banners:    banners,
		Version:    version,
	}

	for _, c := range chars {
		idx.characters[c.ID] = c
	}

	sorted := make([]*TeammateRecommendation, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.WantingID != b.WantingID {
			return a.WantingID < b.WantingID
		}
		if a.WantedID != b.WantedID {
			return a.WantedID < b.WantedID
		}
		return a.Category < b.Category
	})
	for _, e := range sorted {
		idx.wantedBy[e.WantedID] = append(idx.wantedBy[e.WantedID], e)
		idx.wants[e.WantingID] = append(idx.wants[e.WantingID], e)
	}

	for _, tr := range tiers {
		idx.tiers[tr.CharacterID] = append(idx.tiers[tr.CharacterID], tr)
	}

	sort.Slice(idx.banners, func(i, j int) bool { return idx.banners[i].ID < idx.banners[j].ID })

	return idx
}

// Character returns the character record for id, or nil if the knowledge
// base does not know it.
func (idx *Index) Character(id string) *Character {
	return idx.characters[id]
}

// Characters returns all character ids in sorted order.
func (idx *Index) Characters() []string {
	ids := make([]string, 0, len(idx.characters))
	for id := range idx.characters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WantedBy returns all edges whose wanted teammate is id. The slice is
// shared with the index and must not be mutated.
func (idx *Index) WantedBy(id string) []*TeammateRecommendation {
	return idx.wantedBy[id]
}

// Wants returns all outgoing edges for the wanting character id.
func (idx *Index) Wants(id string) []*TeammateRecommendation {
	return idx.wants[id]
}

// TierRecords returns all tier records for a character across modes.
func (idx *Index) TierRecords(id string) []*TierRecord {
	return idx.tiers[id]
}

// Banners returns all banners, sorted by id.
func (idx *Index) Banners() []*Banner {
	return idx.banners
}

// Banner returns the banner with the given id, or nil.
func (idx *Index) Banner(id string) *Banner {
	for _, b := range idx.banners {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// ActiveBanners returns banners whose date range covers now, sorted by id.
func (idx *Index) ActiveBanners(now time.Time) []*Banner {
	var active []*Banner
	for _, b := range idx.banners {
		if b.Active(now) {
			active = append(active, b)
		}
	}
	return active
}
