package card

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a single card file. The codec is picked by extension:
// .json for JSON, .yaml/.yml for YAML.
func Load(path string) (Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Card{}, fmt.Errorf("reading card file: %w", err)
	}

	var c Card
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Card{}, fmt.Errorf("parsing card file %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return Card{}, fmt.Errorf("parsing card file %s: %w", path, err)
		}
	default:
		return Card{}, fmt.Errorf("unsupported card file extension %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}

	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return c.Normalize(), nil
}

// LoadDir reads every card file in a directory (non-recursive), sorted by
// card ID. Files with unknown extensions are skipped; a file that fails to
// parse fails the whole load so bad data is noticed rather than dropped.
func LoadDir(dir string) ([]Card, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading card directory: %w", err)
	}

	var cards []Card
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		c, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}
