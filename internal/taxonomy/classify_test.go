package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyKeywordMatch(t *testing.T) {
	t.Parallel()
	table := Default()

	labels := table.Classify("Lane Swim", "", "")
	require.NotEmpty(t, labels)
	// "lane swim" is longer than "swim", so the more specific label leads.
	assert.Equal(t, Label{Category: "swimming", Subcategory: "lane-swim"}, labels[0])
	assert.NotContains(t, labels, Label{Category: "swimming", Subcategory: "other-swimming"})
}

func TestClassifyExclusionVeto(t *testing.T) {
	t.Parallel()
	table := Default()

	labels := table.Classify("Arthritis Painting Class", "", "")
	for _, l := range labels {
		assert.NotEqual(t, "arts-crafts", l.Category,
			"the arthritis exclusion must veto every arts-crafts match")
	}
}

func TestClassifyFallback(t *testing.T) {
	t.Parallel()
	table := Default()

	t.Run("fires when no sibling matches", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Skating", "", "")
		assert.Contains(t, labels, Label{Category: "skating", Subcategory: "other-skating"})
	})

	t.Run("suppressed by a sibling match", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Leisure Skate", "", "")
		assert.Contains(t, labels, Label{Category: "skating", Subcategory: "leisure-skate"})
		assert.NotContains(t, labels, Label{Category: "skating", Subcategory: "other-skating"})
	})

	t.Run("specific sport never drags in the catch-all", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Basketball", "", "")
		assert.Contains(t, labels, Label{Category: "sports", Subcategory: "basketball"})
		assert.NotContains(t, labels, Label{Category: "sports", Subcategory: "other-sports"})
	})
}

func TestClassifyAgeLabels(t *testing.T) {
	t.Parallel()
	table := Default()

	t.Run("senior label is additive", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Yoga", "65", "None")
		assert.Contains(t, labels, Label{Category: "specialized", Subcategory: "senior"})
		assert.Contains(t, labels, Label{Category: "fitness", Subcategory: "yoga"})
	})

	t.Run("youth label from max age", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Open Gym", "13", "18")
		assert.Contains(t, labels, Label{Category: "youth", Subcategory: "other-youth"})
	})

	t.Run("early years label from max age", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Play Time", "0", "6")
		assert.Contains(t, labels, Label{Category: "family", Subcategory: "early-years"})
	})

	t.Run("no label outside the bands", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Play Time", "7", "12")
		assert.NotContains(t, labels, Label{Category: "youth", Subcategory: "other-youth"})
		assert.NotContains(t, labels, Label{Category: "family", Subcategory: "early-years"})
		assert.NotContains(t, labels, Label{Category: "specialized", Subcategory: "senior"})
	})

	t.Run("open ended max is not youth", func(t *testing.T) {
		t.Parallel()
		labels := table.Classify("Open Gym", "13", "None")
		assert.NotContains(t, labels, Label{Category: "youth", Subcategory: "other-youth"})
	})
}

func TestClassifyUncategorized(t *testing.T) {
	t.Parallel()
	table := Default()

	assert.Empty(t, table.Classify("Lunch And Learn", "", ""))

	// An uncategorized title matches no category or subcategory anywhere.
	for _, cat := range table.Categories() {
		assert.False(t, table.Matches("Lunch And Learn", cat.ID, "", "", ""), cat.ID)
		for _, sub := range cat.Subcategories {
			assert.False(t, table.Matches("Lunch And Learn", cat.ID, sub.ID, "", ""),
				"%s/%s", cat.ID, sub.ID)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()
	table := Default()

	first := table.Classify("Senior Swim", "60", "None")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, table.Classify("Senior Swim", "60", "None"))
	}
}

func TestMatchesSubcategory(t *testing.T) {
	t.Parallel()
	table := Default()

	tests := []struct {
		name        string
		title       string
		category    string
		subcategory string
		ageMin      string
		ageMax      string
		want        bool
	}{
		{"keyword hit", "Lane Swim", "swimming", "lane-swim", "", "", true},
		{"fallback suppressed by sibling", "Lane Swim", "swimming", "other-swimming", "", "", false},
		{"fallback admits without sibling", "Senior Swim", "swimming", "other-swimming", "", "", true},
		{"exclusion vetoes", "Ball Hockey", "skating", "hockey", "", "", false},
		{"same id without exclusion elsewhere", "Ball Hockey", "sports", "hockey", "", "", true},
		{"age gate admits", "Youth Basketball", "youth", "youth-sports", "13", "24", true},
		{"age gate rejects", "Youth Basketball", "youth", "youth-sports", "8", "12", false},
		{"unknown category", "Lane Swim", "diving", "", "", "", false},
		{"unknown subcategory", "Lane Swim", "swimming", "high-dive", "", "", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := table.Matches(tt.title, tt.category, tt.subcategory, tt.ageMin, tt.ageMax)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchesCategoryLevel(t *testing.T) {
	t.Parallel()
	table := Default()

	t.Run("any subcategory qualifies", func(t *testing.T) {
		t.Parallel()
		assert.True(t, table.Matches("Pickleball", "sports", "", "", ""))
	})

	t.Run("category age gate rejects", func(t *testing.T) {
		t.Parallel()
		assert.True(t, table.Matches("Basketball", "older-adult", "", "60", "None"))
		assert.False(t, table.Matches("Basketball", "older-adult", "", "8", "12"))
	})
}

func TestMatchesAgeDerivedMembership(t *testing.T) {
	t.Parallel()
	table := Default()

	// A seniors-only program belongs to specialized programs on its age range
	// alone; "senior" appears in no keyword list.
	assert.True(t, table.Matches("Senior Swim", "specialized", "", "60", "None"))
	assert.True(t, table.Matches("Senior Swim", "specialized", "senior", "60", "None"))
	assert.False(t, table.Matches("Senior Swim", "specialized", "", "18", "None"))

	assert.True(t, table.Matches("Open Gym", "youth", "other-youth", "13", "18"))
	assert.True(t, table.Matches("Story Time", "family", "early-years", "0", "5"))
}

func TestMatchesAgeGatedFallback(t *testing.T) {
	t.Parallel()
	table := Default()

	// An age-gated fallback admits by age alone, keywords or not, as long as
	// no non-fallback sibling also matches.
	assert.True(t, table.Matches("Seniors Social Hour", "older-adult", "other-older-adult", "60", "None"))
	assert.False(t, table.Matches("Seniors Social Hour", "older-adult", "other-older-adult", "30", "None"))

	// Euchre matches the games sibling, so the fallback steps aside.
	assert.False(t, table.Matches("Euchre Afternoon", "older-adult", "other-older-adult", "60", "None"))
	assert.True(t, table.Matches("Euchre Afternoon", "older-adult", "older-adult-games", "60", "None"))
}

// Categories without age gates classify and match identically when no age
// metadata is supplied.
func TestClassifyMatchesAgree(t *testing.T) {
	t.Parallel()
	table := Default()

	titles := []string{
		"Lane Swim", "Leisure Swim", "Aquatic Fitness", "Yoga", "Zumba",
		"Pickleball", "Badminton", "Leisure Skate", "Bingo", "Chess Club",
		"Painting Studio", "Line Dance",
	}
	for _, title := range titles {
		for _, l := range table.Classify(title, "", "") {
			if cat := table.Category(l.Category); cat != nil && cat.AgeRequirement == nil {
				sub := cat.Subcategory(l.Subcategory)
				if sub == nil || sub.AgeRequirement != nil {
					continue
				}
				assert.True(t, table.Matches(title, l.Category, l.Subcategory, "", ""),
					"title %q classified as %s/%s but does not match it", title, l.Category, l.Subcategory)
			}
		}
	}
}
