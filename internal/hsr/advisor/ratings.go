// Package advisor implements the recommendation and synergy scoring engine:
// it turns the static knowledge base plus a user's roster snapshot into
// ranked, explainable pull recommendations and banner verdicts.
//
// Every function in this package is pure and deterministic over an
// immutable kb.Index and a read-only roster.Snapshot. Missing or degraded
// data always produces a defined default, never an error.
package advisor

// SynergyRating is the six-level ordinal scale a teammate-recommendation
// edge is graded on. S+ is best, D is worst.
type SynergyRating string

// Canonical synergy ratings, best to worst.
const (
	RatingSPlus SynergyRating = "S+"
	RatingS     SynergyRating = "S"
	RatingA     SynergyRating = "A"
	RatingB     SynergyRating = "B"
	RatingC     SynergyRating = "C"
	RatingD     SynergyRating = "D"
)

// synergyScale orders the canonical ratings best-first. Index into this
// slice is the ordinal used for shifting and comparison.
var synergyScale = []SynergyRating{RatingSPlus, RatingS, RatingA, RatingB, RatingC, RatingD}

// synergyIndex returns the ordinal position of r (0 = best). Unknown values
// map to the conservative middle of the scale.
func synergyIndex(r SynergyRating) int {
	for i, s := range synergyScale {
		if s == r {
			return i
		}
	}
	return 4 // C
}

// ParseSynergyRating normalizes a knowledge-base rating string. Anything
// outside the six canonical values falls back to C rather than failing.
func ParseSynergyRating(s string) SynergyRating {
	r := SynergyRating(s)
	for _, canonical := range synergyScale {
		if r == canonical {
			return r
		}
	}
	return RatingC
}

// shiftSynergy moves r by delta ordinal steps (positive delta improves the
// rating) and clamps to the scale bounds. The result is always one of the
// six canonical values.
func shiftSynergy(r SynergyRating, delta int) SynergyRating {
	idx := synergyIndex(r) - delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(synergyScale)-1 {
		idx = len(synergyScale) - 1
	}
	return synergyScale[idx]
}

// AtLeast reports whether r is at least as good as other.
func (r SynergyRating) AtLeast(other SynergyRating) bool {
	return synergyIndex(r) <= synergyIndex(other)
}

// TierRating is a character's standalone power grade within a game mode.
// T0 is best, T5 is worst.
type TierRating string

// Canonical tiers, best to worst.
const (
	TierT0  TierRating = "T0"
	TierT05 TierRating = "T0.5"
	TierT1  TierRating = "T1"
	TierT15 TierRating = "T1.5"
	TierT2  TierRating = "T2"
	TierT25 TierRating = "T2.5"
	TierT3  TierRating = "T3"
	TierT35 TierRating = "T3.5"
	TierT4  TierRating = "T4"
	TierT5  TierRating = "T5"
)

// DefaultTier is the conservative mid-scale tier assumed for characters
// with no tier data in a mode.
const DefaultTier = TierT2

var tierScale = []TierRating{TierT0, TierT05, TierT1, TierT15, TierT2, TierT25, TierT3, TierT35, TierT4, TierT5}

// tierIndex returns the ordinal position of t (0 = best). Unknown strings
// map to the default tier's position.
func tierIndex(t TierRating) int {
	for i, s := range tierScale {
		if s == t {
			return i
		}
	}
	return tierIndex(DefaultTier)
}

// BetterTier reports whether a is strictly better than b.
func BetterTier(a, b TierRating) bool {
	return tierIndex(a) < tierIndex(b)
}

// normalizeTier maps a knowledge-base tier string onto the canonical scale,
// defaulting anything unrecognized to DefaultTier.
func normalizeTier(s string) TierRating {
	t := TierRating(s)
	for _, canonical := range tierScale {
		if t == canonical {
			return t
		}
	}
	return DefaultTier
}

// GranularRating is the twelve-band output scale recommendations are graded
// on, derived from a continuous score via the threshold ladder in
// weights.go. It is a closed enumeration with a total order.
type GranularRating string

// Canonical granular ratings, best to worst.
const (
	GranularS      GranularRating = "S"
	GranularSMinus GranularRating = "S-"
	GranularAPlus  GranularRating = "A+"
	GranularA      GranularRating = "A"
	GranularAMinus GranularRating = "A-"
	GranularBPlus  GranularRating = "B+"
	GranularB      GranularRating = "B"
	GranularBMinus GranularRating = "B-"
	GranularCPlus  GranularRating = "C+"
	GranularC      GranularRating = "C"
	GranularCMinus GranularRating = "C-"
	GranularD      GranularRating = "D"
)

var granularScale = []GranularRating{
	GranularS, GranularSMinus,
	GranularAPlus, GranularA, GranularAMinus,
	GranularBPlus, GranularB, GranularBMinus,
	GranularCPlus, GranularC, GranularCMinus,
	GranularD,
}

// granularIndex returns the ordinal position of g (0 = best). Unknown
// values sort last.
func granularIndex(g GranularRating) int {
	for i, s := range granularScale {
		if s == g {
			return i
		}
	}
	return len(granularScale) - 1
}

// BetterGranular reports whether a is strictly better than b, for sorting
// and filtering on the output scale.
func BetterGranular(a, b GranularRating) bool {
	return granularIndex(a) < granularIndex(b)
}
