package advisor

// Weight tables and thresholds for the scoring pipeline. These are
// empirically chosen domain constants, kept in one place so they can be
// retuned without touching the algorithms that consume them.

// tierWeights grade how much a wanting character's demand counts: demand
// from a top-tier unit is worth far more than demand from a bottom-tier
// one. Strictly decreasing with worse tier.
var tierWeights = map[TierRating]float64{
	TierT0:  3.0,
	TierT05: 2.6,
	TierT1:  2.2,
	TierT15: 1.9,
	TierT2:  1.6,
	TierT25: 1.3,
	TierT3:  1.0,
	TierT35: 0.8,
	TierT4:  0.6,
	TierT5:  0.4,
}

// synergyWeights convert an effective synergy rating into a score factor.
// Strictly decreasing with worse rating.
var synergyWeights = map[SynergyRating]float64{
	RatingSPlus: 3.0,
	RatingS:     2.5,
	RatingA:     1.8,
	RatingB:     1.2,
	RatingC:     0.7,
	RatingD:     0.3,
}

// candidateTierMultipliers scale the summed score by the candidate's own
// best tier: a universally strong unit is worth pulling even with middling
// demand, a weak one needs overwhelming demand to rank.
var candidateTierMultipliers = map[TierRating]float64{
	TierT0:  1.5,
	TierT05: 1.4,
	TierT1:  1.3,
	TierT15: 1.2,
	TierT2:  1.1,
	TierT25: 1.0,
	TierT3:  0.95,
	TierT35: 0.9,
	TierT4:  0.85,
	TierT5:  0.8,
}

// coverageWeights measure how strongly an already-owned incumbent fills a
// role slot. Highest for S+, lowest for D.
var coverageWeights = map[SynergyRating]float64{
	RatingSPlus: 3.0,
	RatingS:     2.5,
	RatingA:     1.5,
	RatingB:     1.0,
	RatingC:     0.5,
	RatingD:     0.25,
}

// coverageDecayK is the harmonic decay constant in penalty = 1/(1+c*k).
// Chosen so the first redundant teammate cuts the contribution hard and
// further redundancy has rapidly diminishing effect.
const coverageDecayK = 0.8

// Eidolon-requirement multiplier constants (banner scoring variant). Each
// missing eidolon level adds eidolonStepWeight; owning zero copies starts
// from eidolonUnownedBase instead of 1 because the first copy itself is
// still outstanding.
const (
	eidolonStepWeight   = 0.15
	eidolonUnownedBase  = 1.5
	eidolonSatisfiedMul = 1.0
)

// granularThresholds is the score -> GranularRating ladder. Bands are
// non-overlapping; the lower bound of each band is inclusive. Scores below
// the last entry map to D.
var granularThresholds = []struct {
	Min    float64
	Rating GranularRating
}{
	{16.0, GranularS},
	{12.0, GranularSMinus},
	{9.0, GranularAPlus},
	{7.0, GranularA},
	{5.5, GranularAMinus},
	{4.25, GranularBPlus},
	{3.25, GranularB},
	{2.5, GranularBMinus},
	{1.75, GranularCPlus},
	{1.0, GranularC},
	{0.25, GranularCMinus},
}

// granularForScore maps a numeric score onto the output scale.
func granularForScore(score float64) GranularRating {
	for _, band := range granularThresholds {
		if score >= band.Min {
			return band.Rating
		}
	}
	return GranularD
}

// tierWeight returns the demand weight for t, defaulting unknown tiers to
// the mid-scale value.
func tierWeight(t TierRating) float64 {
	if w, ok := tierWeights[t]; ok {
		return w
	}
	return tierWeights[DefaultTier]
}

// synergyWeight returns the score factor for r.
func synergyWeight(r SynergyRating) float64 {
	if w, ok := synergyWeights[r]; ok {
		return w
	}
	return synergyWeights[RatingC]
}

// candidateTierMultiplier returns the final-score multiplier for the
// candidate's own tier.
func candidateTierMultiplier(t TierRating) float64 {
	if m, ok := candidateTierMultipliers[t]; ok {
		return m
	}
	return candidateTierMultipliers[DefaultTier]
}

// coverageWeight returns the incumbent coverage weight for r.
func coverageWeight(r SynergyRating) float64 {
	if w, ok := coverageWeights[r]; ok {
		return w
	}
	return coverageWeights[RatingC]
}
