package kb

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Knowledge-base file names inside a KB directory.
const (
	charactersFile = "characters.json"
	tiersFile      = "tiers.json"
	bannersFile    = "banners.json"
)

// characterFile is the on-disk shape of characters.json: character records
// bundled with their outgoing teammate-recommendation edges.
type characterFile struct {
	Characters []*Character              `json:"characters"`
	Teammates  []*TeammateRecommendation `json:"teammates"`
}

type tierFile struct {
	Tiers []*TierRecord `json:"tiers"`
}

type bannerFile struct {
	Banners []*Banner `json:"banners"`
}

// Load reads the knowledge base from dir and builds the advisor index.
// The index Version is the SHA-256 over the raw file contents, so any edit
// to the KB yields a new version and therefore a new advisor cache key.
func Load(dir string) (*Index, error) {
	hash := sha256.New()

	readFile := func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		hash.Write(data)
		return data, nil
	}

	charData, err := readFile(charactersFile)
	if err != nil {
		return nil, err
	}
	var cf characterFile
	if err := json.Unmarshal(charData, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", charactersFile, err)
	}

	tierData, err := readFile(tiersFile)
	if err != nil {
		return nil, err
	}
	var tf tierFile
	if err := json.Unmarshal(tierData, &tf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", tiersFile, err)
	}

	bannerData, err := readFile(bannersFile)
	if err != nil {
		return nil, err
	}
	var bf bannerFile
	if err := json.Unmarshal(bannerData, &bf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", bannersFile, err)
	}

	if err := validate(&cf, &tf); err != nil {
		return nil, err
	}

	version := hex.EncodeToString(hash.Sum(nil))
	return NewIndex(cf.Characters, cf.Teammates, tf.Tiers, bf.Banners, version), nil
}

// validate rejects records that would make the enumerations ambiguous.
// Dangling edge references (an edge naming an unknown character) are NOT
// rejected here: the advisor drops and logs them as a data-quality
// condition rather than refusing the whole knowledge base.
func validate(cf *characterFile, tf *tierFile) error {
	seen := make(map[string]bool, len(cf.Characters))
	for _, c := range cf.Characters {
		if c.ID == "" {
			return fmt.Errorf("character %q has empty id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate character id %q", c.ID)
		}
		seen[c.ID] = true
		if len(c.Roles) == 0 {
			return fmt.Errorf("character %q has no roles", c.ID)
		}
	}

	for _, e := range cf.Teammates {
		switch e.Category {
		case CategoryAmplifier, CategorySustain, CategorySubDPS, CategoryDPS:
		default:
			return fmt.Errorf("edge %s->%s: unknown role category %q", e.WantingID, e.WantedID, e.Category)
		}
		for _, m := range e.Modifiers {
			if m.Level < 1 || m.Level > 6 {
				return fmt.Errorf("edge %s->%s: modifier level %d out of range", e.WantingID, e.WantedID, m.Level)
			}
		}
	}

	for _, tr := range tf.Tiers {
		if !tr.Mode.Valid() {
			return fmt.Errorf("tier record for %q: unknown mode %q", tr.CharacterID, tr.Mode)
		}
	}

	return nil
}
