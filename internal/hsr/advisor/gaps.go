package advisor

import (
	"sort"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// RoleOverlap records that a role slot a candidate would occupy is already
// well covered by an owned incumbent of at least A quality.
type RoleOverlap struct {
	WantingID       string
	Category        kb.RoleCategory
	IncumbentID     string
	IncumbentName   string
	IncumbentRating SynergyRating
}

// SlotGapEntry records a role slot for a wanting character that no owned
// character fills at all, independent of the candidate under evaluation.
type SlotGapEntry struct {
	WantingID string
	Category  kb.RoleCategory
}

// TeamAnalysis summarizes one wanting character's relationship to a
// candidate: the slot the candidate would occupy, the effective rating of
// that edge, what the roster already supplies there, and which of the
// wanting character's slots remain entirely open.
type TeamAnalysis struct {
	WantingID   string
	WantingName string
	WantingTier TierRating
	Category    kb.RoleCategory
	Rating      SynergyRating
	Reason      string
	Overlaps    []RoleOverlap
	Gaps        []SlotGapEntry
	Penalty     float64
	FillsGap    bool // candidate's slot is one of the open gaps
}

// supportCategories is the fixed slot order the DPS-direction analysis
// reports on.
var supportCategories = []kb.RoleCategory{kb.CategoryAmplifier, kb.CategorySustain, kb.CategorySubDPS}

// AnalyzeTeams builds a TeamAnalysis per owned wanting character that lists
// the candidate as a desirable teammate. Edges naming characters the
// knowledge base does not know are skipped; the advisor logs them. Results
// are ordered by wanting character id so identical inputs always produce
// identical output.
func AnalyzeTeams(idx *kb.Index, candidateID string, snap roster.Snapshot, mode kb.GameMode) []TeamAnalysis {
	var teams []TeamAnalysis

	for _, edge := range idx.WantedBy(candidateID) {
		wanting := idx.Character(edge.WantingID)
		if wanting == nil || !snap.Owned(edge.WantingID) {
			continue
		}

		teams = append(teams, TeamAnalysis{
			WantingID:   edge.WantingID,
			WantingName: wanting.Name,
			WantingTier: BestTier(idx, edge.WantingID, mode),
			Category:    edge.Category,
			Rating:      EffectiveRating(edge, snap),
			Reason:      edge.Reason,
			Overlaps:    overlapsFor(idx, edge, snap),
			Gaps:        gapsFor(idx, edge.WantingID, snap),
			Penalty:     CoveragePenalty(idx, edge.WantingID, edge.Category, snap, candidateID),
		})
	}

	sort.Slice(teams, func(i, j int) bool {
		if teams[i].WantingID != teams[j].WantingID {
			return teams[i].WantingID < teams[j].WantingID
		}
		return teams[i].Category < teams[j].Category
	})

	for i := range teams {
		for _, gap := range teams[i].Gaps {
			if gap.Category == teams[i].Category {
				teams[i].FillsGap = true
				break
			}
		}
	}

	return teams
}

// overlapsFor collects owned incumbents of at least A effective quality for
// the same wanting character and slot, excluding the candidate itself.
func overlapsFor(idx *kb.Index, edge *kb.TeammateRecommendation, snap roster.Snapshot) []RoleOverlap {
	var overlaps []RoleOverlap

	for _, other := range idx.Wants(edge.WantingID) {
		if other.Category != edge.Category || other.WantedID == edge.WantedID {
			continue
		}
		incumbent := idx.Character(other.WantedID)
		if incumbent == nil || !snap.Owned(other.WantedID) {
			continue
		}
		rating := EffectiveRating(other, snap)
		if !rating.AtLeast(RatingA) {
			continue
		}
		overlaps = append(overlaps, RoleOverlap{
			WantingID:       edge.WantingID,
			Category:        edge.Category,
			IncumbentID:     other.WantedID,
			IncumbentName:   incumbent.Name,
			IncumbentRating: rating,
		})
	}

	sort.Slice(overlaps, func(i, j int) bool {
		a, b := overlaps[i], overlaps[j]
		if a.IncumbentRating != b.IncumbentRating {
			return a.IncumbentRating.AtLeast(b.IncumbentRating)
		}
		return a.IncumbentID < b.IncumbentID
	})

	return overlaps
}

// gapsFor finds the wanting character's slot categories no owned character
// fills at all. The candidate is deliberately not consulted: a gap is a
// property of the current roster.
func gapsFor(idx *kb.Index, wantingID string, snap roster.Snapshot) []SlotGapEntry {
	filled := make(map[kb.RoleCategory]bool)
	listed := make(map[kb.RoleCategory]bool)

	for _, edge := range idx.Wants(wantingID) {
		if idx.Character(edge.WantedID) == nil {
			continue
		}
		listed[edge.Category] = true
		if snap.Owned(edge.WantedID) {
			filled[edge.Category] = true
		}
	}

	var gaps []SlotGapEntry
	for _, cat := range []kb.RoleCategory{kb.CategoryAmplifier, kb.CategorySustain, kb.CategorySubDPS, kb.CategoryDPS} {
		if listed[cat] && !filled[cat] {
			gaps = append(gaps, SlotGapEntry{WantingID: wantingID, Category: cat})
		}
	}
	return gaps
}

// SupportSlot reports whether the roster can field one support slot for a
// candidate DPS, and with what quality.
type SupportSlot struct {
	Category   kb.RoleCategory
	Filled     bool
	BestID     string
	BestName   string
	BestRating SynergyRating
}

// DPSTeamAnalysis is the DPS-direction counterpart of TeamAnalysis: for a
// candidate DPS, which support slots the current roster can and cannot
// provide, independent of who wants whom.
type DPSTeamAnalysis struct {
	CandidateID string
	Slots       []SupportSlot
}

// AnalyzeDPSSupport evaluates the roster's ability to support a candidate
// DPS character. Slots are reported in the fixed supportCategories order;
// each filled slot names the best owned provider by effective rating, ties
// broken by id.
func AnalyzeDPSSupport(idx *kb.Index, candidateID string, snap roster.Snapshot) DPSTeamAnalysis {
	analysis := DPSTeamAnalysis{CandidateID: candidateID}

	for _, cat := range supportCategories {
		slot := SupportSlot{Category: cat}
		for _, edge := range idx.Wants(candidateID) {
			if edge.Category != cat {
				continue
			}
			provider := idx.Character(edge.WantedID)
			if provider == nil || !snap.Owned(edge.WantedID) {
				continue
			}
			rating := EffectiveRating(edge, snap)
			if !slot.Filled ||
				synergyIndex(rating) < synergyIndex(slot.BestRating) ||
				(rating == slot.BestRating && edge.WantedID < slot.BestID) {
				slot.Filled = true
				slot.BestID = edge.WantedID
				slot.BestName = provider.Name
				slot.BestRating = rating
			}
		}
		analysis.Slots = append(analysis.Slots, slot)
	}

	return analysis
}
