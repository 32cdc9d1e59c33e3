package taxonomy

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk YAML shape of a taxonomy override.
type tableFile struct {
	Categories []Category `yaml:"categories"`
}

// Load reads a taxonomy override from a YAML file and builds a Table from
// it. The file replaces the built-in table wholesale.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "taxonomy: read %s", path)
	}

	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, eris.Wrapf(err, "taxonomy: parse %s", path)
	}

	if err := validate(file.Categories); err != nil {
		return nil, eris.Wrapf(err, "taxonomy: invalid table in %s", path)
	}

	zap.L().Info("taxonomy loaded from file",
		zap.String("path", path),
		zap.Int("categories", len(file.Categories)),
	)
	return New(file.Categories), nil
}

// validate checks the structural invariants of a category list: unique
// category ids, unique subcategory ids within a category, and keywords on
// every subcategory that is not an age-gated fallback.
func validate(categories []Category) error {
	if len(categories) == 0 {
		return eris.New("no categories defined")
	}
	catIDs := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return eris.New("category with empty id")
		}
		if catIDs[cat.ID] {
			return eris.Errorf("duplicate category id %q", cat.ID)
		}
		catIDs[cat.ID] = true

		subIDs := make(map[string]bool, len(cat.Subcategories))
		for _, sub := range cat.Subcategories {
			if sub.ID == "" {
				return eris.Errorf("category %q: subcategory with empty id", cat.ID)
			}
			if subIDs[sub.ID] {
				return eris.Errorf("category %q: duplicate subcategory id %q", cat.ID, sub.ID)
			}
			subIDs[sub.ID] = true

			if len(sub.Keywords) == 0 && !(sub.IsFallback && sub.AgeRequirement != nil) {
				return eris.Errorf("category %q: subcategory %q has no keywords", cat.ID, sub.ID)
			}
		}
	}
	return nil
}
