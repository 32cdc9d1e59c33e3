package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTaxonomy(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeTaxonomy(t, `
categories:
  - id: aquatics
    name: Aquatics
    icon: pool
    subcategories:
      - id: lane-swim
        name: Lane Swim
        keywords: [lane swim]
      - id: other-aquatics
        name: Other Aquatics
        keywords: [swim]
        fallback: true
`)

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Categories(), 1)

	assert.Contains(t, table.Classify("Lane Swim", "", ""),
		Label{Category: "aquatics", Subcategory: "lane-swim"})
	assert.True(t, table.Matches("Morning Swim", "aquatics", "other-aquatics", "", ""))
}

func TestLoadAgeGates(t *testing.T) {
	t.Parallel()

	path := writeTaxonomy(t, `
categories:
  - id: seniors
    name: Seniors
    icon: group
    age_requirement:
      min: 60
    subcategories:
      - id: other-seniors
        name: Other Seniors
        fallback: true
        age_requirement:
          min: 60
`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.True(t, table.Matches("Coffee Morning", "seniors", "other-seniors", "60", "None"))
	assert.False(t, table.Matches("Coffee Morning", "seniors", "other-seniors", "30", "None"))
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty", "categories: []"},
		{
			"duplicate category id",
			`
categories:
  - id: a
    name: A
    subcategories: [{id: x, name: X, keywords: [x]}]
  - id: a
    name: A again
    subcategories: [{id: y, name: Y, keywords: [y]}]
`,
		},
		{
			"duplicate subcategory id",
			`
categories:
  - id: a
    name: A
    subcategories:
      - {id: x, name: X, keywords: [x]}
      - {id: x, name: X again, keywords: [y]}
`,
		},
		{
			"keywordless non-fallback",
			`
categories:
  - id: a
    name: A
    subcategories: [{id: x, name: X}]
`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeTaxonomy(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
