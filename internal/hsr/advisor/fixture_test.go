package advisor

import (
	"time"

	"github.com/r3xsean/starguide-public-sub001/internal/hsr/kb"
	"github.com/r3xsean/starguide-public-sub001/internal/hsr/roster"
)

// newTestIndex builds a small knowledge base shared across engine tests:
// four DPS at descending tiers, a handful of supports, and edges covering
// the amplifier/sustain/subdps slots.
func newTestIndex() *kb.Index {
	chars := []*kb.Character{
		{ID: "seele", Name: "Seele", Element: kb.ElementQuantum, Roles: []kb.Role{kb.RoleDPS}, Rarity: 5},
		{ID: "jingliu", Name: "Jingliu", Element: kb.ElementIce, Roles: []kb.Role{kb.RoleDPS}, Rarity: 5},
		{ID: "blade", Name: "Blade", Element: kb.ElementWind, Roles: []kb.Role{kb.RoleDPS}, Rarity: 5},
		{ID: "argenti", Name: "Argenti", Element: kb.ElementPhysical, Roles: []kb.Role{kb.RoleDPS}, Rarity: 5},
		{ID: "sparkle", Name: "Sparkle", Element: kb.ElementQuantum, Roles: []kb.Role{kb.RoleAmplifier}, Rarity: 5},
		{ID: "tingyun", Name: "Tingyun", Element: kb.ElementLightning, Roles: []kb.Role{kb.RoleAmplifier}, Rarity: 4},
		{ID: "fuxuan", Name: "Fu Xuan", Element: kb.ElementQuantum, Roles: []kb.Role{kb.RoleSustain}, Rarity: 5},
		{ID: "huohuo", Name: "Huohuo", Element: kb.ElementWind, Roles: []kb.Role{kb.RoleSustain}, Rarity: 5},
		{ID: "serval", Name: "Serval", Element: kb.ElementLightning, Roles: []kb.Role{kb.RoleSupportDPS}, Rarity: 4},
	}

	edges := []*kb.TeammateRecommendation{
		{WantingID: "seele", WantedID: "sparkle", Category: kb.CategoryAmplifier, Rating: "S", Reason: "turn advance and crit damage"},
		{WantingID: "seele", WantedID: "tingyun", Category: kb.CategoryAmplifier, Rating: "A"},
		{WantingID: "seele", WantedID: "fuxuan", Category: kb.CategorySustain, Rating: "A"},
		{WantingID: "jingliu", WantedID: "sparkle", Category: kb.CategoryAmplifier, Rating: "S", Reason: "action advance"},
		{WantingID: "jingliu", WantedID: "huohuo", Category: kb.CategorySustain, Rating: "S",
			Modifiers: []kb.InvestmentModifier{{Level: 1, Delta: 1, Note: "energy funnel comes online"}}},
		{WantingID: "blade", WantedID: "huohuo", Category: kb.CategorySustain, Rating: "A"},
		{WantingID: "blade", WantedID: "serval", Category: kb.CategorySubDPS, Rating: "C"},
		{WantingID: "sparkle", WantedID: "seele", Category: kb.CategoryDPS, Rating: "S", Reason: "best quantum carry"},
		{WantingID: "tingyun", WantedID: "argenti", Category: kb.CategoryDPS, Rating: "A"},
		{WantingID: "fuxuan", WantedID: "seele", Category: kb.CategoryDPS, Rating: "A"},
		// dangling reference, must be dropped by the advisor
		{WantingID: "ghost", WantedID: "sparkle", Category: kb.CategoryAmplifier, Rating: "S"},
	}

	tiers := []*kb.TierRecord{
		{CharacterID: "seele", Mode: kb.ModeMemoryOfChaos, Role: kb.RoleDPS, Tier: "T0"},
		{CharacterID: "seele", Mode: kb.ModePureFiction, Role: kb.RoleDPS, Tier: "T3"},
		{CharacterID: "jingliu", Mode: kb.ModeMemoryOfChaos, Role: kb.RoleDPS, Tier: "T1"},
		{CharacterID: "blade", Mode: kb.ModeMemoryOfChaos, Role: kb.RoleDPS, Tier: "T2"},
		{CharacterID: "argenti", Mode: kb.ModeMemoryOfChaos, Role: kb.RoleDPS, Tier: "T3"},
		{CharacterID: "argenti", Mode: kb.ModePureFiction, Role: kb.RoleDPS, Tier: "T0"},
		{CharacterID: "sparkle", Mode: kb.ModeMemoryOfChaos, Role: kb.RoleAmplifier, Tier: "T0"},
		{CharacterID: "fuxuan", Mode: kb.ModeMemoryOfChaos, Role: kb.RoleSustain, Tier: "T1"},
	}

	banners := []*kb.Banner{
		{
			ID:       "b-2024-10",
			Name:     "Swirl of Heavenly Spear",
			Start:    time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 10, 22, 0, 0, 0, 0, time.UTC),
			Featured: []kb.FeaturedCharacter{
				{CharacterID: "jingliu", New: false},
				{CharacterID: "sparkle", New: true},
				{CharacterID: "huohuo", New: false},
			},
		},
	}

	return kb.NewIndex(chars, edges, tiers, banners, "test-v1")
}

// ownedDPSRoster owns the four DPS and nothing else.
func ownedDPSRoster() roster.Snapshot {
	return roster.Snapshot{
		"seele":   {Status: roster.StatusOwned},
		"jingliu": {Status: roster.StatusOwned},
		"blade":   {Status: roster.StatusOwned},
		"argenti": {Status: roster.StatusOwned},
	}
}
