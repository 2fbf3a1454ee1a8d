package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/angelmondragon/skinshop-backend/pkg/enums"
)

// Catalog is the immutable, ordered set of skins on sale. It is built once at
// start-up and only ever handed out as copies.
type Catalog struct {
	skins []Skin
	index map[string]int
}

// New validates skins and freezes them into a Catalog.
func New(skins []Skin) (*Catalog, error) {
	if err := Validate(skins); err != nil {
		return nil, err
	}
	owned := make([]Skin, len(skins))
	copy(owned, skins)
	index := make(map[string]int, len(owned))
	for i, s := range owned {
		index[s.ID] = i
	}
	return &Catalog{skins: owned, index: index}, nil
}

// Validate reports every problem in skins at once.
func Validate(skins []Skin) error {
	var errs error
	seen := make(map[string]struct{}, len(skins))
	for i, s := range skins {
		if strings.TrimSpace(s.ID) == "" {
			errs = multierr.Append(errs, fmt.Errorf("skin #%d: id is required", i))
		} else if _, dup := seen[s.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("skin #%d: duplicate id %q", i, s.ID))
		} else {
			seen[s.ID] = struct{}{}
		}
		if strings.TrimSpace(s.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("skin #%d: name is required", i))
		}
		if !s.Rarity.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("skin #%d: invalid rarity %q", i, s.Rarity))
		}
		if s.Price < 0 {
			errs = multierr.Append(errs, fmt.Errorf("skin #%d: price must be non-negative", i))
		}
	}
	return errs
}

// Len reports how many skins the catalog holds.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.skins)
}

// All returns every skin in catalog order.
func (c *Catalog) All() []Skin {
	if c == nil {
		return nil
	}
	out := make([]Skin, len(c.skins))
	copy(out, c.skins)
	return out
}

// ByID looks a skin up by id.
func (c *Catalog) ByID(id string) (Skin, bool) {
	if c == nil {
		return Skin{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Skin{}, false
	}
	return c.skins[i], true
}

// Featured returns the featured skins in catalog order.
func (c *Catalog) Featured() []Skin {
	return c.filter(func(s Skin) bool { return s.Featured })
}

// ByRarity returns the skins of exactly the given tier in catalog order.
func (c *Catalog) ByRarity(rarity enums.Rarity) []Skin {
	return c.filter(func(s Skin) bool { return s.Rarity == rarity })
}

func (c *Catalog) filter(keep func(Skin) bool) []Skin {
	out := []Skin{}
	if c == nil {
		return out
	}
	for _, s := range c.skins {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
