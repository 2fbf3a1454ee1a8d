package enums

// SortKey selects the ordering of a catalog view.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price-asc"
	SortByPriceDesc SortKey = "price-desc"
	SortByRarity    SortKey = "rarity"
	SortByNewest    SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortByName,
	SortByPriceAsc,
	SortByPriceDesc,
	SortByRarity,
	SortByNewest,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// NormalizeSortKey maps empty or unknown input to SortByName.
func NormalizeSortKey(value string) SortKey {
	key := SortKey(value)
	if key.IsValid() {
		return key
	}
	return SortByName
}
