package main

import (
	"fmt"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/advisor"
)

// displayBannerAnalysis prints one banner's grouped verdicts.
func displayBannerAnalysis(analysis *advisor.BannerAnalysis) {
	b := analysis.Banner
	fmt.Printf("Banner: %s (%s - %s)\n",
		b.Name, b.Start.Format("2006-01-02"), b.End.Format("2006-01-02"))
	fmt.Println("--------------------------------------------")

	if len(analysis.DPS) > 0 {
		fmt.Println("DPS:")
		displayBannerBucket(analysis.DPS)
	}
	if len(analysis.Supports) > 0 {
		fmt.Println("Supports:")
		displayBannerBucket(analysis.Supports)
	}
	fmt.Println()
}

func displayBannerBucket(recs []advisor.BannerRecommendation) {
	for _, rec := range recs {
		tag := ""
		if rec.New {
			tag = " [NEW]"
		}
		fmt.Printf("  [%-2s] %-20s%s %6.2f  %s\n",
			rec.Rating, rec.Character.Name, tag, rec.Score, rec.Verdict.Level)
		fmt.Printf("       %s\n", rec.Verdict.Reason)
		for _, reason := range rec.Reasons {
			fmt.Printf("       - %s\n", reason)
		}
	}
}
