package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/angelmondragon/skinshop-backend/pkg/enums"
)

//go:embed seed.yaml
var embeddedSeed []byte

var releaseDateLayouts = []string{time.DateOnly, time.RFC3339}

type seedFile struct {
	Skins []seedSkin `yaml:"skins"`
}

type seedSkin struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Rarity      string `yaml:"rarity"`
	Price       int    `yaml:"price"`
	Featured    bool   `yaml:"featured"`
	Category    string `yaml:"category"`
	ReleaseDate string `yaml:"release_date"`
}

// Load builds the catalog from the YAML seed at path, or from the embedded
// launch catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return LoadSeed(bytes.NewReader(embeddedSeed))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog seed: %w", err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// LoadSeed decodes a YAML seed document into a validated Catalog.
func LoadSeed(r io.Reader) (*Catalog, error) {
	var doc seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}

	skins := make([]Skin, 0, len(doc.Skins))
	for i, raw := range doc.Skins {
		released, err := parseReleaseDate(raw.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("skin #%d (%s): %w", i, raw.ID, err)
		}
		rarity, err := enums.ParseRarity(strings.ToLower(strings.TrimSpace(raw.Rarity)))
		if err != nil {
			return nil, fmt.Errorf("skin #%d (%s): %w", i, raw.ID, err)
		}
		skins = append(skins, Skin{
			ID:          raw.ID,
			Name:        raw.Name,
			Description: raw.Description,
			Image:       raw.Image,
			Rarity:      rarity,
			Price:       raw.Price,
			Featured:    raw.Featured,
			Category:    raw.Category,
			ReleaseDate: released,
		})
	}
	return New(skins)
}

func parseReleaseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid release date %q", value)
}
