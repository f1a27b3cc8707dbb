package main

import (
	"fmt"
	"sort"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/advisor"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// displayPullAdvice prints the two ranked recommendation views.
func displayPullAdvice(advice *advisor.PullAdvice) {
	fmt.Printf("Pull Recommendations (%s)\n", advice.Mode)
	fmt.Println("=========================")
	fmt.Println()

	fmt.Println("Teammates your DPS want:")
	displayRecommendations(advice.TeammatesForDPS)
	fmt.Println()

	fmt.Println("DPS your supports want:")
	displayRecommendations(advice.DPSForSupports)
}

func displayRecommendations(recs []advisor.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("  (no demand from your current roster)")
		return
	}

	for i, rec := range recs {
		fmt.Printf("  %2d. [%-2s] %-20s %6.2f  %s\n",
			i+1, rec.Rating, rec.Character.Name, rec.Score, rec.Verdict.Level)
		for _, w := range rec.WantedBy {
			fmt.Printf("       wanted by %s as %s (%s)\n", w.Name, w.Category, w.Rating)
		}
		for _, note := range rec.InvestmentNotes {
			fmt.Printf("       note: %s\n", note)
		}
	}
}

// displayRoster prints the persisted roster state.
func displayRoster(snap roster.Snapshot) {
	if len(snap) == 0 {
		fmt.Println("Roster is empty. Add characters with: starguide roster set ID owned [EIDOLON]")
		return
	}

	fmt.Println("Roster")
	fmt.Println("======")
	for _, id := range snap.OwnedIDs() {
		inv := snap[id]
		sig := ""
		if inv.Signature {
			sig = " +sig"
		}
		fmt.Printf("  %-20s E%d%s\n", id, inv.Eidolon, sig)
	}
	var planned []string
	for id, inv := range snap {
		if inv.Status == roster.StatusPlanned {
			planned = append(planned, id)
		}
	}
	sort.Strings(planned)
	for _, id := range planned {
		fmt.Printf("  %-20s (planned)\n", id)
	}
}
