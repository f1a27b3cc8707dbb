package advisor

import (
	"math"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// Contribution is one wanting character's weighted demand for a candidate.
// Multiplier is the coverage penalty on the pull-advisor path and the
// eidolon-requirement multiplier on the banner path; the caller decides
// which variant it is running.
type Contribution struct {
	WantingID   string
	WantingTier TierRating
	Rating      SynergyRating
	Multiplier  float64
}

// Aggregate sums all contributions for one candidate, scales by the
// candidate's own tier, and maps the total onto the granular output scale.
// No contributions is a defined floor, not an error: grade D, score 0.
// Scores are rounded to two decimals so that equal inputs compare equal
// across runs.
func Aggregate(contribs []Contribution, candidateTier TierRating) (GranularRating, float64) {
	if len(contribs) == 0 {
		return GranularD, 0
	}

	sum := 0.0
	for _, c := range contribs {
		sum += tierWeight(c.WantingTier) * synergyWeight(c.Rating) * c.Multiplier
	}

	score := round2(sum * candidateTierMultiplier(candidateTier))
	return granularForScore(score), score
}

// EidolonRequirementMultiplier is the banner-path replacement for the
// coverage penalty: when a wanting character only realizes the synergy at a
// given investment level of the candidate, demand weighs heavier the
// further the user is from that level. Owning zero copies starts the
// multiplier well above 1, owning at least one collapses it toward 1 as the
// requirement is approached, and a satisfied (or absent) requirement is
// exactly neutral.
func EidolonRequirementMultiplier(edge *kb.TeammateRecommendation, snap roster.Snapshot, candidateID string) float64 {
	required := RequiredLevel(edge)
	if required == 0 {
		return eidolonSatisfiedMul
	}

	remaining := required - snap.Eidolon(candidateID)
	if remaining <= 0 {
		return eidolonSatisfiedMul
	}

	if snap.Owned(candidateID) {
		return 1.0 + eidolonStepWeight*float64(remaining)
	}
	return eidolonUnownedBase + eidolonStepWeight*float64(remaining)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
