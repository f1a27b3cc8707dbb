// Package kb holds the static knowledge base for the roster advisor:
// character records, teammate-recommendation edges, tier tables, and
// banner schedules. Records are loaded once and never mutated.
package kb

import "time"

// Element is a character's combat element.
type Element string

// Canonical elements.
const (
	ElementPhysical  Element = "Physical"
	ElementFire      Element = "Fire"
	ElementIce       Element = "Ice"
	ElementLightning Element = "Lightning"
	ElementWind      Element = "Wind"
	ElementQuantum   Element = "Quantum"
	ElementImaginary Element = "Imaginary"
)

// Role describes what a character does in a team.
type Role string

// Canonical roles. A character may carry several (e.g. a hybrid
// sub-DPS/amplifier), so Character.Roles is a set.
const (
	RoleDPS        Role = "DPS"
	RoleSupportDPS Role = "Support DPS"
	RoleAmplifier  Role = "Amplifier"
	RoleSustain    Role = "Sustain"
)

// RoleCategory scopes a teammate-recommendation edge: the slot the wanted
// teammate would fill in the wanting character's composition.
type RoleCategory string

// Canonical role categories.
const (
	CategoryAmplifier RoleCategory = "amplifier"
	CategorySustain   RoleCategory = "sustain"
	CategorySubDPS    RoleCategory = "subdps"
	CategoryDPS       RoleCategory = "dps"
)

// GameMode identifies one of the three endgame modes tier data is scoped to.
type GameMode string

// Canonical game modes.
const (
	ModeMemoryOfChaos     GameMode = "moc"
	ModePureFiction       GameMode = "pf"
	ModeApocalypticShadow GameMode = "as"
)

// Modes lists all game modes in a fixed order.
var Modes = []GameMode{ModeMemoryOfChaos, ModePureFiction, ModeApocalypticShadow}

// Valid reports whether the mode is one of the canonical modes.
func (m GameMode) Valid() bool {
	switch m {
	case ModeMemoryOfChaos, ModePureFiction, ModeApocalypticShadow:
		return true
	}
	return false
}

// Character is an immutable knowledge-base record for one character.
type Character struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Element Element `json:"element"`
	Roles   []Role  `json:"roles"`
	Rarity  int     `json:"rarity"`
}

// HasRole reports whether the character's role set contains r.
func (c *Character) HasRole(r Role) bool {
	for _, have := range c.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// IsDPS reports whether the character belongs in the DPS bucket when a
// banner's featured list is partitioned. A character with the DPS role is
// always DPS; everyone else is grouped with the supports.
func (c *Character) IsDPS() bool {
	return c.HasRole(RoleDPS)
}

// InvestmentModifier ties an eidolon threshold on the wanting character to a
// synergy-rating delta. Delta is in ordinal steps on the six-level synergy
// scale and may be zero, meaning the edge carries no real requirement.
type InvestmentModifier struct {
	Level int    `json:"level"` // eidolon threshold, 1-6
	Delta int    `json:"delta"` // rating shift in ordinal steps
	Note  string `json:"note,omitempty"`
}

// TeammateRecommendation is a directed edge from a wanting character to a
// wanted teammate, scoped by the slot the teammate would fill.
type TeammateRecommendation struct {
	WantingID string               `json:"wanting_id"`
	WantedID  string               `json:"wanted_id"`
	Category  RoleCategory         `json:"category"`
	Team      string               `json:"team,omitempty"` // named composition, optional
	Rating    string               `json:"rating"`         // base synergy rating: S+, S, A, B, C, D
	Reason    string               `json:"reason,omitempty"`
	Modifiers []InvestmentModifier `json:"modifiers,omitempty"`
}

// TierRecord grades one character in one mode for one of its roles.
type TierRecord struct {
	CharacterID string   `json:"character_id"`
	Mode        GameMode `json:"mode"`
	Role        Role     `json:"role"`
	Tier        string   `json:"tier"` // T0 (best) .. T5 (worst)
}

// FeaturedCharacter is a banner's featured high-rarity character.
type FeaturedCharacter struct {
	CharacterID string `json:"character_id"`
	New         bool   `json:"new"`
}

// Banner is a scheduled gacha banner with its featured characters.
type Banner struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Start    time.Time           `json:"start"`
	End      time.Time           `json:"end"`
	Featured []FeaturedCharacter `json:"featured"`
}

// Active reports whether the banner's date range covers now.
func (b *Banner) Active(now time.Time) bool {
	return !now.Before(b.Start) && now.Before(b.End)
}
