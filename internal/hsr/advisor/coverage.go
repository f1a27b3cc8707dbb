package advisor

import (
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// CoveragePenalty measures how well the roster already fills a role slot
// for a wanting character and converts that into a multiplicative decay on
// the candidate's contribution. excludeID is the candidate under
// evaluation; it never counts toward its own coverage.
//
// Coverage sums per-rating weights over the other owned characters the
// wanting character lists for the same slot. The penalty is harmonic,
// 1/(1+coverage*k): the first redundant teammate has a large marginal
// effect, further ones rapidly less. The result is always in (0, 1] and is
// exactly 1 at zero coverage.
func CoveragePenalty(idx *kb.Index, wantingID string, category kb.RoleCategory, snap roster.Snapshot, excludeID string) float64 {
	coverage := 0.0

	for _, edge := range idx.Wants(wantingID) {
		if edge.Category != category || edge.WantedID == excludeID {
			continue
		}
		if !snap.Owned(edge.WantedID) {
			continue
		}
		if idx.Character(edge.WantedID) == nil {
			// dangling reference, not real coverage
			continue
		}
		coverage += coverageWeight(EffectiveRating(edge, snap))
	}

	if coverage == 0 {
		return 1.0
	}
	return 1.0 / (1.0 + coverage*coverageDecayK)
}
