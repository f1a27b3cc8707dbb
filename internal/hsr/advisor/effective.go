package advisor

import (
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// EffectiveRating adjusts an edge's base synergy rating for the wanting
// character's current investment. An edge with no modifiers, or a wanting
// character the caller has no investment data for, keeps the base rating
// unchanged. The result is always one of the six canonical synergy values.
func EffectiveRating(edge *kb.TeammateRecommendation, snap roster.Snapshot) SynergyRating {
	base := ParseSynergyRating(edge.Rating)
	if len(edge.Modifiers) == 0 {
		return base
	}

	inv, ok := snap[edge.WantingID]
	if !ok {
		return base
	}

	mod := selectModifier(edge.Modifiers, inv.Eidolon)
	if mod == nil {
		return base
	}
	return shiftSynergy(base, mod.Delta)
}

// selectModifier picks the single modifier that matters at the given
// investment level. Among thresholds the level has reached, the one with
// the largest absolute delta wins: a small delta at a low level must not
// mask a large delta at a high level. Equal magnitudes resolve to the
// higher level. Below every threshold, the lowest one applies.
func selectModifier(mods []kb.InvestmentModifier, level int) *kb.InvestmentModifier {
	var qualified *kb.InvestmentModifier
	for i := range mods {
		m := &mods[i]
		if m.Level > level {
			continue
		}
		if qualified == nil {
			qualified = m
			continue
		}
		if abs(m.Delta) > abs(qualified.Delta) ||
			(abs(m.Delta) == abs(qualified.Delta) && m.Level > qualified.Level) {
			qualified = m
		}
	}
	if qualified != nil {
		return qualified
	}

	var lowest *kb.InvestmentModifier
	for i := range mods {
		m := &mods[i]
		if lowest == nil || m.Level < lowest.Level {
			lowest = m
		}
	}
	return lowest
}

// RequiredLevel returns the eidolon threshold of an edge's most significant
// modifier (largest absolute non-zero delta, ties to the higher level), or
// 0 when the edge carries no real requirement. The banner scoring variant
// reads this threshold against the candidate's copies.
func RequiredLevel(edge *kb.TeammateRecommendation) int {
	best := 0
	bestMag := 0
	for _, m := range edge.Modifiers {
		if m.Delta == 0 {
			continue
		}
		if abs(m.Delta) > bestMag || (abs(m.Delta) == bestMag && m.Level > best) {
			best = m.Level
			bestMag = abs(m.Delta)
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
