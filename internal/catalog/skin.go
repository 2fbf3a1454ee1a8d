package catalog

import (
	"time"

	"github.com/angelmondragon/skinshop-backend/pkg/enums"
)

// Skin is a purchasable cosmetic catalog entry. Price is in V-Bucks.
type Skin struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Rarity      enums.Rarity `json:"rarity"`
	Price       int          `json:"price"`
	Featured    bool         `json:"featured"`
	Category    string       `json:"category"`
	ReleaseDate time.Time    `json:"release_date"`
}

// RarityCount is the number of skins in a rarity tier, or in the whole
// catalog when Rarity is enums.RarityAll.
type RarityCount struct {
	Rarity string `json:"rarity"`
	Count  int    `json:"count"`
}

// RarityCounts tallies skins per tier. The first entry is the "all" total and
// the rest follow scarcity order, including empty tiers.
func RarityCounts(skins []Skin) []RarityCount {
	tally := make(map[enums.Rarity]int, len(skins))
	for _, s := range skins {
		tally[s.Rarity]++
	}
	counts := []RarityCount{{Rarity: enums.RarityAll, Count: len(skins)}}
	for _, r := range enums.Rarities() {
		counts = append(counts, RarityCount{Rarity: r.String(), Count: tally[r]})
	}
	return counts
}
