package taxonomy

import "strings"

// DefaultIcon is the final fallback icon token.
const DefaultIcon = "sports"

// iconMapping maps literal activity keywords to an icon token. Checked
// before any category fallback, most specific first.
type iconMapping struct {
	keywords []string
	icon     string
}

var iconMappings = []iconMapping{
	{keywords: []string{"basketball"}, icon: "sports_basketball"},
	{keywords: []string{"soccer"}, icon: "sports_soccer"},
	{keywords: []string{"volleyball"}, icon: "sports_volleyball"},
	{keywords: []string{"badminton"}, icon: "badminton"},
	{keywords: []string{"pickleball"}, icon: "pickleball"},
	{keywords: []string{"table tennis"}, icon: "padel"},
	{keywords: []string{"squash"}, icon: "sports_tennis"},
	{keywords: []string{"hockey", "shinny"}, icon: "sports_hockey"},
	{keywords: []string{"cricket"}, icon: "sports_cricket"},
	{keywords: []string{"multi-sport"}, icon: "directions_run"},
	{keywords: []string{"swimming", "swim", "aquatic fitness"}, icon: "pool"},
	{keywords: []string{"yoga"}, icon: "self_improvement"},
	{keywords: []string{"pilates"}, icon: "self_improvement"},
	{keywords: []string{"tai chi"}, icon: "taunt"},
	{keywords: []string{"strength", "gym"}, icon: "fitness_center"},
	{keywords: []string{"walk"}, icon: "directions_walk"},
	{keywords: []string{"open space"}, icon: "crop_square"},
	{keywords: []string{"dance", "zumba", "ballroom", "vogue"}, icon: "taunt"},
	{keywords: []string{"music"}, icon: "music_note"},
	{keywords: []string{"photography"}, icon: "photo_camera"},
	{keywords: []string{"archery"}, icon: "target"},
	{keywords: []string{"club"}, icon: "groups"},
	{keywords: []string{"bocce"}, icon: "scatter_plot"},
	{keywords: []string{"bowling"}, icon: "circle"},
	{keywords: []string{"bingo"}, icon: "casino"},
	{keywords: []string{"chess"}, icon: "chess_knight"},
	{keywords: []string{"cards"}, icon: "playing_cards"},
	{keywords: []string{"chop it", "cooking"}, icon: "chef_hat"},
	{keywords: []string{"snooker"}, icon: "counter_8"},
	{keywords: []string{"darts"}, icon: "target"},
	{keywords: []string{"game"}, icon: "Ifl"},
	{keywords: []string{"skateboard"}, icon: "skateboarding"},
	{keywords: []string{"lunch"}, icon: "flatware"},
	{keywords: []string{"movie"}, icon: "movie"},
	{keywords: []string{"study time"}, icon: "dictionary"},
	{keywords: []string{"hair"}, icon: "self_care"},
	{keywords: []string{"video game", "gaming"}, icon: "videogame_asset"},
}

// IconFor returns the icon token for a program title. Literal activity
// mappings win; otherwise the first matching category's icon; otherwise
// DefaultIcon. A thin layer over Matches, kept separate from Classify.
func (t *Table) IconFor(title, ageMin, ageMax string) string {
	lowerTitle := strings.ToLower(title)

	for _, m := range iconMappings {
		for _, kw := range m.keywords {
			if strings.Contains(lowerTitle, kw) {
				return m.icon
			}
		}
	}

	for i := range t.categories {
		cat := &t.categories[i]
		for j := range cat.Subcategories {
			if t.Matches(title, cat.ID, cat.Subcategories[j].ID, ageMin, ageMax) {
				return cat.Icon
			}
		}
		if t.Matches(title, cat.ID, "", ageMin, ageMax) {
			return cat.Icon
		}
	}

	return DefaultIcon
}
