package enums

import "fmt"

// Rarity is the closed scarcity tier of a skin.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

// RarityAll is the filter sentinel that matches every tier. It is not a Rarity
// a skin can carry.
const RarityAll = "all"

// validRarities is ordered from least to most scarce.
var validRarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

// Rarities returns every tier in scarcity order, common first.
func Rarities() []Rarity {
	out := make([]Rarity, len(validRarities))
	copy(out, validRarities)
	return out
}

// String implements fmt.Stringer.
func (r Rarity) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Rarity.
func (r Rarity) IsValid() bool {
	return r.Rank() >= 0
}

// Rank is the scarcity rank, 0 for common up to 5 for mythic, or -1 when unknown.
func (r Rarity) Rank() int {
	for i, candidate := range validRarities {
		if candidate == r {
			return i
		}
	}
	return -1
}

// ParseRarity converts raw input into a Rarity.
func ParseRarity(value string) (Rarity, error) {
	for _, candidate := range validRarities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid rarity %q", value)
}
