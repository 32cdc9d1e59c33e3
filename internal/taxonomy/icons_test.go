package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	t.Parallel()
	table := Default()

	tests := []struct {
		name   string
		title  string
		ageMin string
		ageMax string
		want   string
	}{
		{"literal activity mapping", "Basketball", "", "", "sports_basketball"},
		{"swim maps to pool", "Lane Swim", "", "", "pool"},
		{"tai chi", "Tai Chi", "", "", "taunt"},
		{"shinny maps to hockey", "Shinny", "", "", "sports_hockey"},
		{"lunch mapping", "Lunch And Learn", "", "", "flatware"},
		{"category icon when no literal matches", "Euchre Tournament", "", "", "toys_and_games"},
		{"default for the unmatchable", "Mystery Program", "", "", DefaultIcon},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, table.IconFor(tt.title, tt.ageMin, tt.ageMax))
		})
	}
}

func TestIconForAgeDerived(t *testing.T) {
	t.Parallel()
	table := Default()

	// No literal keyword matches, but the age range admits the program into
	// the older-adult fallback, so that category's icon applies.
	assert.Equal(t, "group", table.IconFor("Seniors Social Hour", "60", "None"))
}
