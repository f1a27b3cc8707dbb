package advisor

import (
	"testing"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

func TestCoveragePenaltyNoCoverage(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster() // no supports owned

	got := CoveragePenalty(idx, "seele", "amplifier", snap, "sparkle")
	if got != 1.0 {
		t.Errorf("CoveragePenalty with empty coverage = %v, want exactly 1.0", got)
	}
}

func TestCoveragePenaltyExcludesCandidate(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster()
	snap["sparkle"] = roster.Investment{Status: roster.StatusOwned}

	// Sparkle is the candidate under evaluation; owning her must not
	// penalize her own slot.
	got := CoveragePenalty(idx, "seele", "amplifier", snap, "sparkle")
	if got != 1.0 {
		t.Errorf("CoveragePenalty = %v, want 1.0 when only the candidate fills the slot", got)
	}
}

func TestCoveragePenaltyDecreasing(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster()

	none := CoveragePenalty(idx, "seele", "amplifier", snap, "nobody")

	snap["tingyun"] = roster.Investment{Status: roster.StatusOwned}
	one := CoveragePenalty(idx, "seele", "amplifier", snap, "nobody")

	snap["sparkle"] = roster.Investment{Status: roster.StatusOwned}
	two := CoveragePenalty(idx, "seele", "amplifier", snap, "nobody")

	if !(none > one && one > two) {
		t.Errorf("penalty must strictly decrease with coverage: %v, %v, %v", none, one, two)
	}
	for _, p := range []float64{none, one, two} {
		if p <= 0 || p > 1 {
			t.Errorf("penalty %v outside (0, 1]", p)
		}
	}
}

func TestCoveragePenaltyHarmonicShape(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster()

	base := CoveragePenalty(idx, "seele", "amplifier", snap, "x")

	snap["tingyun"] = roster.Investment{Status: roster.StatusOwned}
	one := CoveragePenalty(idx, "seele", "amplifier", snap, "x")

	snap["sparkle"] = roster.Investment{Status: roster.StatusOwned}
	two := CoveragePenalty(idx, "seele", "amplifier", snap, "x")

	// Harmonic decay: the first incumbent costs more than the second adds.
	firstDrop := base - one
	secondDrop := one - two
	if secondDrop >= firstDrop {
		t.Errorf("expected diminishing marginal penalty, drops %v then %v", firstDrop, secondDrop)
	}
}

func TestCoveragePenaltyIgnoresOtherCategories(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster()
	snap["fuxuan"] = roster.Investment{Status: roster.StatusOwned} // sustain, not amplifier

	got := CoveragePenalty(idx, "seele", "amplifier", snap, "sparkle")
	if got != 1.0 {
		t.Errorf("CoveragePenalty = %v, sustain coverage must not leak into the amplifier slot", got)
	}
}
