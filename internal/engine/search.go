package engine

import (
	"strconv"
	"strings"
	"time"

	"github.com/city-rec/dropin-cli/internal/model"
	"github.com/city-rec/dropin-cli/internal/taxonomy"
)

// Engine evaluates filters against a session dataset snapshot. It holds
// only the immutable taxonomy table and a clock; every query is pure with
// respect to its inputs and safe to run concurrently.
type Engine struct {
	table *taxonomy.Table
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock used for relative-date predicates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the given taxonomy table.
func New(table *taxonomy.Table, opts ...Option) *Engine {
	e := &Engine{table: table, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Table returns the engine's taxonomy table.
func (e *Engine) Table() *taxonomy.Table {
	return e.table
}

// Result is one matched session projected for presentation.
type Result struct {
	CourseTitle     string `json:"course_title"`
	Location        string `json:"location"`
	LocationID      int    `json:"location_id"`
	DayOfWeek       string `json:"day_of_week"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Date            string `json:"date"`
	LocationURL     string `json:"location_url,omitempty"`
	LocationAddress string `json:"location_address,omitempty"`
	Category        string `json:"category,omitempty"`
	Subcategory     string `json:"subcategory,omitempty"`
	AgeRange        string `json:"age_range"`
	AgeMin          string `json:"age_min"`
	AgeMax          string `json:"age_max"`
	Icon            string `json:"icon"`
	Duration        int    `json:"duration_minutes"`
}

// unknownLocation is the display fallback for a session whose location ID
// has no match in the registry. The session itself is never dropped.
const unknownLocation = "Unknown Location"

// Search evaluates the filter against the dataset and projects each match.
// Results come back in dataset order; Sort applies presentation ordering.
// No predicate ever rejects a record for being malformed: unparsable
// fields degrade to permissive values so externally sourced data cannot
// silently hide programs.
func (e *Engine) Search(sessions []model.Session, locations []model.Location, facilities map[string]model.Facility, f Filter) []Result {
	matched := sessions

	if f.Category != "" {
		matched = filterSessions(matched, func(s model.Session) bool {
			if s.CourseTitle == "" {
				return false
			}
			return e.table.Matches(s.CourseTitle, f.Category, f.Subcategory, s.AgeMin, s.AgeMax)
		})
	} else if f.Subcategory != "" {
		// Subcategory without category: resolve the owning category first.
		if owner := e.table.Owner(f.Subcategory); owner != nil {
			matched = filterSessions(matched, func(s model.Session) bool {
				if s.CourseTitle == "" {
					return false
				}
				return e.table.Matches(s.CourseTitle, owner.ID, f.Subcategory, s.AgeMin, s.AgeMax)
			})
		}
	}

	if f.CourseTitle != "" {
		matched = filterSessions(matched, func(s model.Session) bool {
			return s.CourseTitle == f.CourseTitle
		})
	}

	if len(f.Locations) > 0 {
		// Names that resolve to no registry entry are dropped silently.
		ids := resolveLocationIDs(locations, f.Locations)
		if len(ids) > 0 {
			matched = filterSessions(matched, func(s model.Session) bool {
				return ids[s.LocationID]
			})
		}
	}

	if f.Date != "" {
		if f.Date == DateThisWeek {
			windowStart, windowEnd := ThisWeekWindow(e.now())
			matched = filterSessions(matched, func(s model.Session) bool {
				// Range overlap, not containment: any session whose run
				// intersects the window qualifies.
				return s.FirstDate <= windowEnd && s.LastDate >= windowStart
			})
		} else {
			matched = filterSessions(matched, func(s model.Session) bool {
				return DateInRange(f.Date, s.DateRange)
			})
		}
	}

	if f.Time != "" && !strings.EqualFold(f.Time, TimeAny) {
		if target, ok := ParseClock(f.Time); ok {
			matched = filterSessions(matched, func(s model.Session) bool {
				// Half-open containment: start inclusive, end exclusive.
				return target >= s.StartMinutes() && target < s.EndMinutes()
			})
		}
	}

	if f.Age != "" {
		if age, err := strconv.Atoi(strings.TrimSpace(f.Age)); err == nil {
			matched = filterSessions(matched, func(s model.Session) bool {
				min, max := s.AgeBounds()
				return age >= min && age <= max
			})
		}
	}

	names := locationNames(locations)
	results := make([]Result, 0, len(matched))
	for _, s := range matched {
		results = append(results, e.project(s, names, facilities, f))
	}
	return results
}

// project joins one matched session against the location registry and the
// facility layer to produce a display record.
func (e *Engine) project(s model.Session, names map[int]string, facilities map[string]model.Facility, f Filter) Result {
	name, ok := names[s.LocationID]
	if !ok {
		name = unknownLocation
	}

	date := s.FirstDate
	if f.Date != "" && f.Date != DateThisWeek {
		date = f.Date
	}

	r := Result{
		CourseTitle: s.CourseTitle,
		Location:    name,
		LocationID:  s.LocationID,
		DayOfWeek:   DayOfWeek(s.FirstDate),
		StartTime:   s.StartClock(),
		EndTime:     s.EndClock(),
		Date:        date,
		AgeRange:    s.AgeRangeDisplay(),
		AgeMin:      s.AgeMin,
		AgeMax:      s.AgeMax,
		Icon:        e.table.IconFor(s.CourseTitle, s.AgeMin, s.AgeMax),
		Duration:    s.DurationMinutes(),
	}

	if fac, ok := facilities[strconv.Itoa(s.LocationID)]; ok {
		r.LocationURL = fac.URL
		r.LocationAddress = fac.Address
	}

	if labels := e.table.Classify(s.CourseTitle, s.AgeMin, s.AgeMax); len(labels) > 0 {
		r.Category = labels[0].Category
		r.Subcategory = labels[0].Subcategory
	}

	return r
}

// TitleOptions returns the unique program titles matching the filter's
// category/subcategory, using each session's age metadata for the
// subcategory-level check. This feeds the program autocomplete.
func (e *Engine) TitleOptions(sessions []model.Session, f Filter) []string {
	var titles []string
	seen := make(map[string]bool)
	for _, s := range sessions {
		if s.CourseTitle == "" || seen[s.CourseTitle] {
			continue
		}
		if f.Category != "" {
			if f.Subcategory != "" {
				if !e.table.Matches(s.CourseTitle, f.Category, f.Subcategory, s.AgeMin, s.AgeMax) {
					continue
				}
			} else if !e.table.Matches(s.CourseTitle, f.Category, "", "", "") {
				continue
			}
		}
		seen[s.CourseTitle] = true
		titles = append(titles, s.CourseTitle)
	}
	return titles
}

// LocationsWithPrograms returns the registry locations that have at least
// one session, preserving registry order.
func LocationsWithPrograms(sessions []model.Session, locations []model.Location) []model.Location {
	active := make(map[int]bool, len(sessions))
	for _, s := range sessions {
		active[s.LocationID] = true
	}
	out := make([]model.Location, 0, len(locations))
	for _, loc := range locations {
		if active[loc.LocationID] {
			out = append(out, loc)
		}
	}
	return out
}

func filterSessions(sessions []model.Session, keep func(model.Session) bool) []model.Session {
	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func resolveLocationIDs(locations []model.Location, names []string) map[int]bool {
	byName := make(map[string]int, len(locations))
	for _, loc := range locations {
		byName[loc.Name] = loc.LocationID
	}
	ids := make(map[int]bool, len(names))
	for _, name := range names {
		if id, ok := byName[name]; ok {
			ids[id] = true
		}
	}
	return ids
}

func locationNames(locations []model.Location) map[int]string {
	names := make(map[int]string, len(locations))
	for _, loc := range locations {
		names[loc.LocationID] = loc.Name
	}
	return names
}
