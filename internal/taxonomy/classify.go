package taxonomy

import (
	"strings"

	"github.com/city-rec/dropin-cli/internal/model"
)

// Age thresholds for the age-derived labels. These fire on the program's
// published age range alone, independent of any keyword.
const (
	seniorMinAge     = 60
	youthMinAge      = 13
	youthMaxAge      = 24
	earlyYearsMaxAge = 6
)

var (
	seniorLabel     = Label{Category: "specialized", Subcategory: "senior"}
	youthLabel      = Label{Category: "youth", Subcategory: "other-youth"}
	earlyYearsLabel = Label{Category: "family", Subcategory: "early-years"}
)

// ageLabels returns the labels derived purely from the program's age range.
// Absent or unparsable values produce no label.
func ageLabels(ageMin, ageMax string) []Label {
	var labels []Label
	if ageMin != "" && model.AgeMinValue(ageMin) >= seniorMinAge {
		labels = append(labels, seniorLabel)
	}
	if ageMax != "" {
		max := model.AgeMaxValue(ageMax)
		if max >= youthMinAge && max <= youthMaxAge {
			labels = append(labels, youthLabel)
		}
		if max <= earlyYearsMaxAge {
			labels = append(labels, earlyYearsLabel)
		}
	}
	return labels
}

// Classify returns every category/subcategory label that applies to a
// program title, given its optional age-range metadata. Deterministic and
// pure; case-insensitive substring matching throughout.
//
// Age-derived labels come first, then keyword matches over non-fallback
// subcategories (longest keywords evaluated first), then fallback
// subcategories for categories with no sibling match. An empty result
// means the title is uncategorized: it appears in unfiltered views only.
func (t *Table) Classify(title, ageMin, ageMax string) []Label {
	lowerTitle := strings.ToLower(title)

	var labels []Label
	seen := make(map[Label]bool)
	add := func(l Label) {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}

	for _, l := range ageLabels(ageMin, ageMax) {
		add(l)
	}

	for _, fk := range t.flat {
		if !strings.Contains(lowerTitle, fk.keyword) {
			continue
		}
		if titleHasAny(lowerTitle, fk.sub.Exclusions) {
			continue
		}
		add(Label{Category: fk.cat.ID, Subcategory: fk.sub.ID})
	}

	for i := range t.categories {
		cat := &t.categories[i]
		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]
			if !sub.IsFallback || len(sub.Keywords) == 0 {
				continue
			}
			if hasSiblingLabel(labels, cat.ID, sub.ID) {
				continue
			}
			if !titleHasAny(lowerTitle, sub.Keywords) {
				continue
			}
			if titleHasAny(lowerTitle, sub.Exclusions) {
				continue
			}
			add(Label{Category: cat.ID, Subcategory: sub.ID})
		}
	}

	return labels
}

// hasSiblingLabel reports whether any already-recorded label belongs to the
// given category under a different subcategory.
func hasSiblingLabel(labels []Label, categoryID, subcategoryID string) bool {
	for _, l := range labels {
		if l.Category == categoryID && l.Subcategory != subcategoryID {
			return true
		}
	}
	return false
}

// Matches reports whether a title (with optional age metadata) belongs to
// the given category, or to the given subcategory within it when
// subcategoryID is non-empty.
//
// Unlike Classify, Matches applies subcategory age gates, and for fallback
// subcategories it re-derives sibling matches independently since callers
// test per-candidate-subcategory without a prior Classify pass. Age-derived
// labels (senior, other-youth, early-years) count as membership even when
// the subcategory is not in the keyword table at all.
func (t *Table) Matches(title, categoryID, subcategoryID, ageMin, ageMax string) bool {
	for _, l := range ageLabels(ageMin, ageMax) {
		if l.Category == categoryID && (subcategoryID == "" || l.Subcategory == subcategoryID) {
			return true
		}
	}

	cat := t.Category(categoryID)
	if cat == nil {
		return false
	}

	courseMin := model.AgeMinValue(ageMin)
	courseMax := model.AgeMaxValue(ageMax)

	if subcategoryID == "" {
		if !cat.AgeRequirement.Allows(courseMin, courseMax) {
			return false
		}
		for i := range cat.Subcategories {
			if t.Matches(title, categoryID, cat.Subcategories[i].ID, ageMin, ageMax) {
				return true
			}
		}
		return false
	}

	sub := cat.Subcategory(subcategoryID)
	if sub == nil {
		return false
	}

	lowerTitle := strings.ToLower(title)
	if titleHasAny(lowerTitle, sub.Exclusions) {
		return false
	}

	if sub.IsFallback {
		return t.matchesFallback(cat, sub, lowerTitle, courseMin, courseMax)
	}

	if !titleHasAny(lowerTitle, sub.Keywords) {
		return false
	}
	return sub.AgeRequirement.Allows(courseMin, courseMax)
}

// matchesFallback tests a fallback subcategory. An age-gated fallback
// admits any program satisfying the gate, keywords or not; an ungated one
// requires a keyword match. Either way no non-fallback sibling may also
// match the same title/age combination.
func (t *Table) matchesFallback(cat *Category, sub *Subcategory, lowerTitle string, courseMin, courseMax int) bool {
	if sub.AgeRequirement != nil {
		if !sub.AgeRequirement.Allows(courseMin, courseMax) {
			return false
		}
	} else if !titleHasAny(lowerTitle, sub.Keywords) {
		return false
	}

	for i := range cat.Subcategories {
		other := &cat.Subcategories[i]
		if other.IsFallback || other.ID == sub.ID || len(other.Keywords) == 0 {
			continue
		}
		if !titleHasAny(lowerTitle, other.Keywords) {
			continue
		}
		if titleHasAny(lowerTitle, other.Exclusions) {
			continue
		}
		if !other.AgeRequirement.Allows(courseMin, courseMax) {
			continue
		}
		return false
	}
	return true
}
