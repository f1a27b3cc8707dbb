package advisor

import (
	"testing"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

func TestAnalyzeTeamsBasics(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster()

	teams := AnalyzeTeams(idx, "sparkle", snap, kb.ModeMemoryOfChaos)

	// Seele and Jingliu want Sparkle; Blade and Argenti do not.
	if len(teams) != 2 {
		t.Fatalf("len(teams) = %d, want 2", len(teams))
	}
	if teams[0].WantingID != "jingliu" || teams[1].WantingID != "seele" {
		t.Errorf("teams not ordered by wanting id: %s, %s", teams[0].WantingID, teams[1].WantingID)
	}

	for _, team := range teams {
		if team.Category != kb.CategoryAmplifier {
			t.Errorf("%s: category = %v, want amplifier", team.WantingID, team.Category)
		}
		if team.Rating != RatingS {
			t.Errorf("%s: rating = %v, want S", team.WantingID, team.Rating)
		}
		// No supports owned: the amplifier slot is an open gap the
		// candidate would fill, and there is nothing to overlap with.
		if !team.FillsGap {
			t.Errorf("%s: candidate should fill the open amplifier gap", team.WantingID)
		}
		if len(team.Overlaps) != 0 {
			t.Errorf("%s: unexpected overlaps %v", team.WantingID, team.Overlaps)
		}
		if team.Penalty != 1.0 {
			t.Errorf("%s: penalty = %v, want 1.0 with no coverage", team.WantingID, team.Penalty)
		}
	}
}

func TestAnalyzeTeamsOverlapAndGap(t *testing.T) {
	idx := newTestIndex()
	snap := ownedDPSRoster()
	snap["tingyun"] = roster.Investment{Status: roster.StatusOwned} // A-rated amplifier for Seele

	teams := AnalyzeTeams(idx, "sparkle", snap, kb.ModeMemoryOfChaos)

	var seele *TeamAnalysis
	for i := range teams {
		if teams[i].WantingID == "seele" {
			seele = &teams[i]
		}
	}
	if seele == nil {
		t.Fatal("no team analysis for seele")
	}

	if len(seele.Overlaps) != 1 {
		t.Fatalf("len(overlaps) = %d, want 1", len(seele.Overlaps))
	}
	if seele.Overlaps[0].IncumbentID != "tingyun" || seele.Overlaps[0].IncumbentRating != RatingA {
		t.Errorf("unexpected incumbent: %+v", seele.Overlaps[0])
	}

	// Tingyun fills Seele's amplifier slot, so the candidate no longer
	// closes a gap there; the sustain slot stays open.
	if seele.FillsGap {
		t.Error("amplifier slot is covered, candidate should not count as gap-filling")
	}
	foundSustainGap := false
	for _, gap := range seele.Gaps {
		if gap.Category == kb.CategorySustain {
			foundSustainGap = true
		}
		if gap.Category == kb.CategoryAmplifier {
			t.Error("amplifier slot reported as gap despite owned incumbent")
		}
	}
	if !foundSustainGap {
		t.Error("sustain slot should be reported as an open gap")
	}

	if seele.Penalty >= 1.0 {
		t.Errorf("penalty = %v, want < 1 with an owned incumbent", seele.Penalty)
	}
}

func TestAnalyzeTeamsSkipsUnownedAndUnknownWanters(t *testing.T) {
	idx := newTestIndex()
	// Only Seele owned; the "ghost" edge wanting sparkle must be ignored.
	snap := roster.Snapshot{"seele": {Status: roster.StatusOwned}}

	teams := AnalyzeTeams(idx, "sparkle", snap, kb.ModeMemoryOfChaos)
	if len(teams) != 1 || teams[0].WantingID != "seele" {
		t.Errorf("teams = %+v, want only seele", teams)
	}
}

func TestAnalyzeDPSSupport(t *testing.T) {
	idx := newTestIndex()
	snap := roster.Snapshot{
		"fuxuan":  {Status: roster.StatusOwned},
		"tingyun": {Status: roster.StatusOwned},
	}

	analysis := AnalyzeDPSSupport(idx, "seele", snap)

	if analysis.CandidateID != "seele" {
		t.Errorf("candidate id = %s", analysis.CandidateID)
	}
	if len(analysis.Slots) != 3 {
		t.Fatalf("len(slots) = %d, want 3 fixed support slots", len(analysis.Slots))
	}

	byCat := make(map[kb.RoleCategory]SupportSlot)
	for _, slot := range analysis.Slots {
		byCat[slot.Category] = slot
	}

	amp := byCat[kb.CategoryAmplifier]
	if !amp.Filled || amp.BestID != "tingyun" {
		t.Errorf("amplifier slot = %+v, want filled by tingyun", amp)
	}
	sus := byCat[kb.CategorySustain]
	if !sus.Filled || sus.BestID != "fuxuan" {
		t.Errorf("sustain slot = %+v, want filled by fuxuan", sus)
	}
	if byCat[kb.CategorySubDPS].Filled {
		t.Errorf("subdps slot should be unfilled, got %+v", byCat[kb.CategorySubDPS])
	}
}

func TestAnalyzeDPSSupportPrefersBestProvider(t *testing.T) {
	idx := newTestIndex()
	snap := roster.Snapshot{
		"sparkle": {Status: roster.StatusOwned}, // S amplifier for seele
		"tingyun": {Status: roster.StatusOwned}, // A amplifier for seele
	}

	analysis := AnalyzeDPSSupport(idx, "seele", snap)
	for _, slot := range analysis.Slots {
		if slot.Category == kb.CategoryAmplifier {
			if slot.BestID != "sparkle" || slot.BestRating != RatingS {
				t.Errorf("amplifier slot = %+v, want sparkle at S", slot)
			}
		}
	}
}
