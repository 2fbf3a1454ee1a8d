package browse

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/angelmondragon/skinshop-backend/internal/catalog"
	"github.com/angelmondragon/skinshop-backend/pkg/enums"
)

// Params are the transient inputs of a catalog view.
type Params struct {
	Search string
	Rarity string
	Sort   enums.SortKey
}

// NewParams normalises raw inputs: an empty rarity means enums.RarityAll and
// an empty or unknown sort key means enums.SortByName.
func NewParams(search, rarity, sort string) Params {
	if rarity == "" {
		rarity = enums.RarityAll
	}
	return Params{
		Search: search,
		Rarity: rarity,
		Sort:   enums.NormalizeSortKey(sort),
	}
}

func (p Params) cacheKey() string {
	return p.Search + "\x00" + p.Rarity + "\x00" + string(p.Sort)
}

// Query filters and sorts skins into a new slice. The input is never
// reordered and ties keep their filtered order.
func Query(skins []catalog.Skin, p Params) []catalog.Skin {
	out := make([]catalog.Skin, 0, len(skins))
	folder := cases.Fold()
	needle := folder.String(p.Search)
	for _, s := range skins {
		if needle != "" && !matchesSearch(folder, s, needle) {
			continue
		}
		if p.Rarity != "" && p.Rarity != enums.RarityAll && string(s.Rarity) != p.Rarity {
			continue
		}
		out = append(out, s)
	}

	slices.SortStableFunc(out, comparator(enums.NormalizeSortKey(string(p.Sort))))
	return out
}

func matchesSearch(folder cases.Caser, s catalog.Skin, needle string) bool {
	return strings.Contains(folder.String(s.Name), needle) ||
		strings.Contains(folder.String(s.Description), needle) ||
		strings.Contains(folder.String(s.Category), needle)
}

func comparator(key enums.SortKey) func(a, b catalog.Skin) int {
	switch key {
	case enums.SortByPriceAsc:
		return func(a, b catalog.Skin) int { return cmp.Compare(a.Price, b.Price) }
	case enums.SortByPriceDesc:
		return func(a, b catalog.Skin) int { return cmp.Compare(b.Price, a.Price) }
	case enums.SortByRarity:
		return func(a, b catalog.Skin) int { return cmp.Compare(b.Rarity.Rank(), a.Rarity.Rank()) }
	case enums.SortByNewest:
		return func(a, b catalog.Skin) int { return b.ReleaseDate.Compare(a.ReleaseDate) }
	default:
		// Collators keep scratch buffers, so each query gets its own.
		col := collate.New(language.Und)
		return func(a, b catalog.Skin) int { return col.CompareString(a.Name, b.Name) }
	}
}
