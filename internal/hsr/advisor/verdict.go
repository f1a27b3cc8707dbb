package advisor

import (
	"fmt"
	"strings"
)

// VerdictLevel is the discrete priority a pull verdict lands on.
type VerdictLevel int

// Verdict levels, worst to best so that higher values mean higher priority.
const (
	VerdictSkip VerdictLevel = iota
	VerdictLowPriority
	VerdictConsider
	VerdictRecommended
	VerdictHighlyRecommended
	VerdictMustPull
)

// String returns the display form of the level.
func (v VerdictLevel) String() string {
	switch v {
	case VerdictMustPull:
		return "must-pull"
	case VerdictHighlyRecommended:
		return "highly recommended"
	case VerdictRecommended:
		return "recommended"
	case VerdictConsider:
		return "consider"
	case VerdictLowPriority:
		return "low priority"
	default:
		return "skip"
	}
}

// PullVerdict is the final actionable classification for a candidate:
// priority level, human-readable justification, and the numeric score used
// as the ranking key within a section.
type PullVerdict struct {
	Level  VerdictLevel
	Reason string
	Score  float64
}

// verdictForRating maps the aggregate granular rating onto a priority
// level. The mapping is monotone in the rating order, which keeps verdict
// scores and levels consistent when sorting.
func verdictForRating(rating GranularRating) VerdictLevel {
	switch rating {
	case GranularS, GranularSMinus:
		return VerdictMustPull
	case GranularAPlus, GranularA:
		return VerdictHighlyRecommended
	case GranularAMinus, GranularBPlus:
		return VerdictRecommended
	case GranularB, GranularBMinus:
		return VerdictConsider
	case GranularCPlus, GranularC, GranularCMinus:
		return VerdictLowPriority
	default:
		return VerdictSkip
	}
}

// ComputeVerdict synthesizes team analysis, the candidate's own best tier,
// and the aggregate score into a pull verdict. An owned candidate
// short-circuits to a fixed terminal skip verdict regardless of any other
// input.
func ComputeVerdict(teams []TeamAnalysis, dps *DPSTeamAnalysis, candidateTier TierRating, rating GranularRating, score float64, owned bool) PullVerdict {
	if owned {
		return PullVerdict{Level: VerdictSkip, Reason: "Already owned", Score: 0}
	}

	level := verdictForRating(rating)

	// A top-tier unit is never graded below "consider" on demand alone.
	if level < VerdictConsider && tierIndex(candidateTier) <= tierIndex(TierT05) {
		level = VerdictConsider
	}

	return PullVerdict{
		Level:  level,
		Reason: verdictReason(teams, dps, candidateTier, level),
		Score:  score,
	}
}

// verdictReason assembles the justification string from the strongest
// contributing factors: high-rating demand counts, gap filling, roster
// redundancy, and the candidate's own standing.
func verdictReason(teams []TeamAnalysis, dps *DPSTeamAnalysis, candidateTier TierRating, level VerdictLevel) string {
	var reasons []string

	sDemand, aDemand, gapFills, redundant := 0, 0, 0, 0
	for _, t := range teams {
		switch {
		case t.Rating.AtLeast(RatingS):
			sDemand++
		case t.Rating.AtLeast(RatingA):
			aDemand++
		}
		if t.FillsGap {
			gapFills++
		}
		if len(t.Overlaps) > 0 {
			redundant++
		}
	}

	if sDemand > 0 {
		reasons = append(reasons, fmt.Sprintf("S-tier synergy with %d owned character%s", sDemand, plural(sDemand)))
	}
	if aDemand > 0 {
		reasons = append(reasons, fmt.Sprintf("A-tier synergy with %d owned character%s", aDemand, plural(aDemand)))
	}
	if gapFills > 0 {
		reasons = append(reasons, fmt.Sprintf("fills an open team slot for %d character%s", gapFills, plural(gapFills)))
	}
	if redundant > 0 && redundant >= gapFills {
		reasons = append(reasons, fmt.Sprintf("role already covered for %d character%s", redundant, plural(redundant)))
	}

	if dps != nil {
		missing := 0
		for _, slot := range dps.Slots {
			if !slot.Filled {
				missing++
			}
		}
		if missing == 0 {
			reasons = append(reasons, "your roster can field a full support core")
		} else {
			reasons = append(reasons, fmt.Sprintf("%d support slot%s would remain unfilled", missing, plural(missing)))
		}
	}

	if tierIndex(candidateTier) <= tierIndex(TierT05) {
		reasons = append(reasons, fmt.Sprintf("strong standalone unit (%s)", candidateTier))
	}

	if len(reasons) == 0 {
		if level <= VerdictLowPriority {
			return "No meaningful demand from your current roster"
		}
		return "Solid pick for your roster"
	}
	return strings.Join(reasons, "; ")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
