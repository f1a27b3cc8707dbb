package advisor

import (
	"testing"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

func edgeWith(rating string, mods ...kb.InvestmentModifier) *kb.TeammateRecommendation {
	return &kb.TeammateRecommendation{
		WantingID: "wanter",
		WantedID:  "wanted",
		Category:  kb.CategoryAmplifier,
		Rating:    rating,
		Modifiers: mods,
	}
}

func snapWithEidolon(level int) roster.Snapshot {
	return roster.Snapshot{"wanter": {Status: roster.StatusOwned, Eidolon: level}}
}

func TestEffectiveRating(t *testing.T) {
	tests := []struct {
		name string
		edge *kb.TeammateRecommendation
		snap roster.Snapshot
		want SynergyRating
	}{
		{
			name: "no modifiers returns base",
			edge: edgeWith("A"),
			snap: snapWithEidolon(6),
			want: RatingA,
		},
		{
			name: "no investment data returns base",
			edge: edgeWith("B", kb.InvestmentModifier{Level: 2, Delta: 2}),
			snap: roster.Snapshot{},
			want: RatingB,
		},
		{
			name: "threshold reached applies delta",
			edge: edgeWith("B", kb.InvestmentModifier{Level: 2, Delta: 2}),
			snap: snapWithEidolon(2),
			want: RatingS,
		},
		{
			name: "large delta at high level beats small delta at low level",
			edge: edgeWith("B",
				kb.InvestmentModifier{Level: 1, Delta: 1},
				kb.InvestmentModifier{Level: 4, Delta: 3},
			),
			snap: snapWithEidolon(6),
			want: RatingSPlus, // B shifted +3, clamped landing exactly on S+
		},
		{
			name: "only qualified thresholds considered",
			edge: edgeWith("B",
				kb.InvestmentModifier{Level: 1, Delta: 1},
				kb.InvestmentModifier{Level: 6, Delta: 3},
			),
			snap: snapWithEidolon(2),
			want: RatingA,
		},
		{
			name: "equal magnitude prefers higher level",
			edge: edgeWith("C",
				kb.InvestmentModifier{Level: 1, Delta: -2},
				kb.InvestmentModifier{Level: 3, Delta: 2},
			),
			snap: snapWithEidolon(4),
			want: RatingA, // C shifted +2
		},
		{
			name: "below every threshold falls back to lowest",
			edge: edgeWith("A", kb.InvestmentModifier{Level: 2, Delta: 1}),
			snap: snapWithEidolon(0),
			want: RatingS,
		},
		{
			name: "zero delta modifier is a no-op",
			edge: edgeWith("S", kb.InvestmentModifier{Level: 1, Delta: 0}),
			snap: snapWithEidolon(3),
			want: RatingS,
		},
		{
			name: "negative delta demotes",
			edge: edgeWith("S", kb.InvestmentModifier{Level: 1, Delta: -2}),
			snap: snapWithEidolon(1),
			want: RatingB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveRating(tt.edge, tt.snap); got != tt.want {
				t.Errorf("EffectiveRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The resolver must stay inside the six canonical values for any
// investment level, including negative and beyond the highest threshold.
func TestEffectiveRatingAlwaysCanonical(t *testing.T) {
	edge := edgeWith("A",
		kb.InvestmentModifier{Level: 1, Delta: -10},
		kb.InvestmentModifier{Level: 3, Delta: 10},
	)

	canonical := map[SynergyRating]bool{
		RatingSPlus: true, RatingS: true, RatingA: true,
		RatingB: true, RatingC: true, RatingD: true,
	}

	for level := -3; level <= 12; level++ {
		got := EffectiveRating(edge, snapWithEidolon(level))
		if !canonical[got] {
			t.Errorf("level %d: EffectiveRating() = %q, outside the canonical scale", level, got)
		}
	}
}

func TestRequiredLevel(t *testing.T) {
	tests := []struct {
		name string
		edge *kb.TeammateRecommendation
		want int
	}{
		{"no modifiers", edgeWith("S"), 0},
		{"zero delta carries no requirement", edgeWith("S", kb.InvestmentModifier{Level: 2, Delta: 0}), 0},
		{"single requirement", edgeWith("B", kb.InvestmentModifier{Level: 2, Delta: 1}), 2},
		{
			"largest magnitude wins",
			edgeWith("B",
				kb.InvestmentModifier{Level: 1, Delta: 1},
				kb.InvestmentModifier{Level: 4, Delta: 3},
			),
			4,
		},
		{
			"equal magnitude prefers higher level",
			edgeWith("B",
				kb.InvestmentModifier{Level: 2, Delta: 2},
				kb.InvestmentModifier{Level: 5, Delta: -2},
			),
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiredLevel(tt.edge); got != tt.want {
				t.Errorf("RequiredLevel() = %d, want %d", got, tt.want)
			}
		})
	}
}
