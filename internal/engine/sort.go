package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order selects a presentation ordering for search results.
type Order string

const (
	OrderLocation Order = "location-name" // location, then title, then start
	OrderEarliest Order = "earliest"      // start, then location, then title
	OrderLatest   Order = "latest"        // end descending, then location, then title
	OrderLongest  Order = "open-longest"  // duration descending, then location, then title
)

// ParseOrder maps a user-supplied string to an Order, defaulting to
// OrderLocation for anything unrecognized.
func ParseOrder(s string) Order {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case OrderEarliest:
		return OrderEarliest
	case OrderLatest:
		return OrderLatest
	case OrderLongest:
		return OrderLongest
	default:
		return OrderLocation
	}
}

// Sort orders results in place. Every comparator chain ends in a total
// tie-break (title, then start, then end), so equal keys never produce an
// arbitrary order. Sorting is a presentation concern layered on Search,
// which itself returns dataset order.
func Sort(results []Result, order Order) {
	c := collate.New(language.English)

	byName := func(a, b Result) int { return c.CompareString(a.Location, b.Location) }
	byTitle := func(a, b Result) int { return c.CompareString(a.CourseTitle, b.CourseTitle) }

	tieBreak := func(a, b Result) int {
		if n := byTitle(a, b); n != 0 {
			return n
		}
		if n := strings.Compare(a.StartTime, b.StartTime); n != 0 {
			return n
		}
		return strings.Compare(a.EndTime, b.EndTime)
	}

	var cmp func(a, b Result) int
	switch order {
	case OrderEarliest:
		cmp = func(a, b Result) int {
			if n := strings.Compare(a.StartTime, b.StartTime); n != 0 {
				return n
			}
			if n := byName(a, b); n != 0 {
				return n
			}
			return tieBreak(a, b)
		}
	case OrderLatest:
		cmp = func(a, b Result) int {
			if n := strings.Compare(b.EndTime, a.EndTime); n != 0 {
				return n
			}
			if n := byName(a, b); n != 0 {
				return n
			}
			return tieBreak(a, b)
		}
	case OrderLongest:
		cmp = func(a, b Result) int {
			if a.Duration != b.Duration {
				if a.Duration > b.Duration {
					return -1
				}
				return 1
			}
			if n := byName(a, b); n != 0 {
				return n
			}
			return tieBreak(a, b)
		}
	default:
		cmp = func(a, b Result) int {
			if n := byName(a, b); n != 0 {
				return n
			}
			return tieBreak(a, b)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return cmp(results[i], results[j]) < 0
	})
}
