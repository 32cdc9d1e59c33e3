package taxonomy

// DefaultCategories returns the built-in rule table for the municipal
// drop-in program taxonomy. Keyword lists were derived from the published
// program titles; exclusions guard against substring collisions (e.g.
// "arthritis" containing "art").
func DefaultCategories() []Category {
	return []Category{
		{
			ID:   "arts-crafts",
			Name: "Arts & Crafts",
			Icon: "palette",
			Subcategories: []Subcategory{
				{ID: "visual-arts", Name: "Visual Arts", Keywords: []string{"painting", "drawing", "photography", "visual art", "design", "colouring", "stained glass"}, Exclusions: []string{"arthritis", "arthritic"}},
				{ID: "crafts", Name: "Crafts", Keywords: []string{"craft", "sewing", "knitting", "crochet", "quilting", "decoupage", "paper tole", "bunka", "carving"}},
				{ID: "music", Name: "Music", Keywords: []string{"music", "band", "choir", "drumming", "karaoke", "drum", "open mic"}, Exclusions: []string{"no music"}},
				{ID: "dance", Name: "Dance", Keywords: []string{"dance", "tango", "ballroom", "hip hop", "line dance", "vogue"}},
				{ID: "creative-writing", Name: "Creative Writing", Keywords: []string{"creative writing", "writing"}},
				{ID: "other-arts", Name: "Other Arts Programs", Keywords: []string{"art", "bunka", "colouring", "jewellery making"}, Exclusions: []string{"arthritis", "martial arts"}, IsFallback: true},
			},
		},
		{
			ID:             "family",
			Name:           "Family Programs",
			Icon:           "family_restroom",
			AgeRequirement: &AgeRange{Max: intPtr(6)},
			Subcategories: []Subcategory{
				{ID: "family-swim", Name: "Family Swim", Keywords: []string{"family swim"}},
				{ID: "family-sports", Name: "Family Sports", Keywords: []string{"with family"}},
				{ID: "family-arts", Name: "Family Arts", Keywords: []string{"family arts"}},
				{ID: "early-years", Name: "Early Years", Keywords: []string{"early years", "preschool", "caregiver", "soccer"}, Exclusions: []string{"leisure Skate: child with caregiver"}, AgeRequirement: &AgeRange{Max: intPtr(6)}},
				{ID: "other-family-programs", Name: "Other Family Programs", Keywords: []string{"family"}, AgeRequirement: &AgeRange{Max: intPtr(6)}, IsFallback: true},
			},
		},
		{
			ID:   "fitness",
			Name: "Fitness & Wellness",
			Icon: "cardio_load",
			Subcategories: []Subcategory{
				{ID: "yoga", Name: "Yoga", Keywords: []string{"yoga"}},
				{ID: "pilates", Name: "Pilates", Keywords: []string{"pilates"}},
				{ID: "cardio", Name: "Cardio", Keywords: []string{"cardio"}},
				{ID: "zumba", Name: "Zumba", Keywords: []string{"zumba"}},
				{ID: "strength", Name: "Strength Training", Keywords: []string{"strength", "weight", "gym"}},
				{ID: "hiit", Name: "HIIT", Keywords: []string{"hiit", "boot camp"}},
				{ID: "gentle-fitness", Name: "Gentle Fitness", Keywords: []string{"gentle", "mobility", ": chair", "osteofit", "tai chi", "qigong"}},
				{ID: "walking", Name: "Walking", Keywords: []string{"walk", "running track"}, Exclusions: []string{"aquatic fitness"}},
				{ID: "other-fitness", Name: "Other Fitness & Wellness", Keywords: []string{"fitness", "wellness", "cycle", "fit", "pedal", "meditation"}, IsFallback: true},
			},
		},
		{
			ID:   "games",
			Name: "Games & Recreation",
			Icon: "toys_and_games",
			Subcategories: []Subcategory{
				{ID: "club", Name: "Clubs", Keywords: []string{"club"}},
				{ID: "board-games", Name: "Board Games", Keywords: []string{"board games", "games: board", "chess"}},
				{ID: "card-games", Name: "Card Games", Keywords: []string{"cards", "euchre", "bridge", "cribbage"}},
				{ID: "billiards", Name: "Billiards & Pool", Keywords: []string{"billiards", "snooker", "pool"}},
				{ID: "darts", Name: "Darts", Keywords: []string{"darts"}},
				{ID: "video-games", Name: "Video Games", Keywords: []string{"video game", "gaming"}},
				{ID: "bingo", Name: "Bingo", Keywords: []string{"bingo"}},
				{ID: "other-games", Name: "Other Games & Recreation", Keywords: []string{"game", "archery", "bocce", "bowling"}, IsFallback: true},
			},
		},
		{
			ID:             "older-adult",
			Name:           "Older Adult Programs",
			Icon:           "group",
			AgeRequirement: &AgeRange{Min: intPtr(60)},
			Subcategories: []Subcategory{
				{ID: "older-adult-arts-crafts", Name: "Older Adult Arts & Crafts", Keywords: []string{"painting", "drawing", "photography", "visual art", "design", "colouring", "craft", "sewing", "knitting", "crochet", "quilting", "decoupage", "paper tole", "bunka", "stained glass", "carving", "writing", "music", "band", "choir", "drumming", "karaoke", "drum", "open mic", "dance", "tango", "ballroom"}, Exclusions: []string{"dart"}, AgeRequirement: &AgeRange{Min: intPtr(60)}},
				{ID: "older-adult-games", Name: "Older Adult Games & Recreation", Keywords: []string{"club", "bingo", "bocce", "game", "cards", "bowling", "dance", "bridge", "euchre", "cribbage", "billiards", "pool", "snooker", "darts", "archery", "bowling", "karaoke", "dance", "tango", "ballroom", "hip hop", "line dance", "vogue"}, AgeRequirement: &AgeRange{Min: intPtr(60)}},
				{ID: "older-adult-swimming", Name: "Older Adult Swimming & Aquatics", Keywords: []string{"swim", "aquatic"}, AgeRequirement: &AgeRange{Min: intPtr(60)}},
				{ID: "older-adult-fitness", Name: "Older Adult Fitness & Wellness", Keywords: []string{"yoga", "pilates", "zumba", "tai chi", "fit", "strength", "walk", "cardio"}, AgeRequirement: &AgeRange{Min: intPtr(60)}},
				{ID: "older-adult-sports", Name: "Older Adult Sports", Keywords: []string{"pickleball", "basketball", "badminton", "volleyball", "soccer", "tennis", "table tennis", "multi-sport", "hockey", "shinny", "sport", "baseball", "dodgeball", "tennis", "skateboarding", "cricket", "golf"}, AgeRequirement: &AgeRange{Min: intPtr(60)}},
				{ID: "older-adult-skating", Name: "Older Adult Skating & Ice Sports", Keywords: []string{"shinny", "skate", "hockey"}, Exclusions: []string{"ball hockey", "skateboard"}, AgeRequirement: &AgeRange{Min: intPtr(60)}},
				{ID: "other-older-adult", Name: "Other Older Adult Programs", Keywords: []string{"older adult", "osteo"}, AgeRequirement: &AgeRange{Min: intPtr(60)}, IsFallback: true},
			},
		},
		{
			ID:   "skating",
			Name: "Skating & Ice Sports",
			Icon: "ice_skating",
			Subcategories: []Subcategory{
				{ID: "hockey", Name: "Hockey", Keywords: []string{"hockey", "shinny"}, Exclusions: []string{"ball hockey"}},
				{ID: "leisure-skate", Name: "Leisure Skate", Keywords: []string{"leisure skate"}},
				{ID: "figure-skating", Name: "Figure Skating", Keywords: []string{"figure skating"}},
				{ID: "roller-skating", Name: "Roller Skating", Keywords: []string{"roller skating"}},
				{ID: "other-skating", Name: "Other Skating & Ice Sports", Keywords: []string{"skate", "skating"}, IsFallback: true},
			},
		},
		{
			ID:   "specialized",
			Name: "Specialized Programs",
			Icon: "support",
			Subcategories: []Subcategory{
				{ID: "adapted", Name: "Adapted Programs", Keywords: []string{"adapted", "parasport"}},
				{ID: "lgbtq", Name: "LGBTQ+ Programs", Keywords: []string{"lgbtq", "2slgbtq"}},
				{ID: "women-only", Name: "Women Only", Keywords: []string{"women only", "(women)", "girls"}},
			},
		},
		{
			ID:   "sports",
			Name: "Sports & Athletics",
			Icon: "sports",
			Subcategories: []Subcategory{
				{ID: "basketball", Name: "Basketball", Keywords: []string{"basketball"}},
				{ID: "badminton", Name: "Badminton", Keywords: []string{"badminton"}},
				{ID: "pickleball", Name: "Pickleball", Keywords: []string{"pickleball"}},
				{ID: "soccer", Name: "Soccer", Keywords: []string{"soccer"}},
				{ID: "volleyball", Name: "Volleyball", Keywords: []string{"volleyball"}},
				{ID: "table-tennis", Name: "Table Tennis", Keywords: []string{"table tennis"}},
				{ID: "hockey", Name: "Hockey", Keywords: []string{"hockey", "shinny"}},
				{ID: "multi-sport", Name: "Multi-Sport", Keywords: []string{"multi-sport", "multi sport"}},
				{ID: "other-sports", Name: "Other Sports & Athletics", Keywords: []string{"sport", "baseball", "dodgeball", "tennis", "squash", "skateboarding", "cricket", "golf"}, IsFallback: true},
			},
		},
		{
			ID:   "swimming",
			Name: "Swimming & Aquatics",
			Icon: "pool",
			Subcategories: []Subcategory{
				{ID: "lane-swim", Name: "Lane Swim", Keywords: []string{"lane swim"}},
				{ID: "leisure-swim", Name: "Leisure Swim", Keywords: []string{"leisure swim"}},
				{ID: "family-swim", Name: "Family Swim", Keywords: []string{"family swim"}},
				{ID: "aquatic-fitness", Name: "Aquatic Fitness", Keywords: []string{"aquatic fitness", "water fitness", "water"}},
				{ID: "other-swimming", Name: "Other Swimming", Keywords: []string{"swim", "aquatic"}, IsFallback: true},
			},
		},
		{
			ID:             "youth",
			Name:           "Youth Programs",
			Icon:           "group",
			AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)},
			Subcategories: []Subcategory{
				{ID: "youth-clubs", Name: "Youth Clubs", Keywords: []string{"club", "zone", "homework"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "youth-enhanced", Name: "Enhanced Youth Spaces Programming", Keywords: []string{"amped", "chop", "building skills", "stomp", "social environmental"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "youth-arts", Name: "Youth Arts", Keywords: []string{"art", "music", "dance", "craft"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "youth-fitness", Name: "Youth Fitness & Wellness", Keywords: []string{"gym", "cardio", "wellness"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "youth-leadership", Name: "Youth Leadership", Keywords: []string{"youth leadership", "youth council"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "youth-sports", Name: "Youth Sports", Keywords: []string{"sport", "baseball", "basketball", "volleyball", "badminton", "soccer", "dodgeball", "tennis", "skateboarding", "cricket", "golf", "hockey", "shinny"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "youth-skating", Name: "Youth Skating & Ice Sports", Keywords: []string{"shinny", "skate", "hockey"}, Exclusions: []string{"ball hockey", "skateboard"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}},
				{ID: "other-youth", Name: "Other Youth Programs", Keywords: []string{"youth", "teen", "young"}, AgeRequirement: &AgeRange{Min: intPtr(13), Max: intPtr(24)}, IsFallback: true},
			},
		},
	}
}
