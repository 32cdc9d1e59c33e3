package engine

import (
	"net/url"
	"strings"
)

// Filter is one query's predicate set. Every field is optional; a zero
// Filter matches every session.
type Filter struct {
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	CourseTitle string   `json:"course_title,omitempty"`
	Locations   []string `json:"locations,omitempty"`
	Date        string   `json:"date,omitempty"` // "", DateThisWeek, or an ISO date
	Time        string   `json:"time,omitempty"` // "", TimeAny, or "HH:MM"
	Age         string   `json:"age,omitempty"`
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Subcategory == "" && f.CourseTitle == "" &&
		len(f.Locations) == 0 && f.Date == "" && f.Time == "" && f.Age == ""
}

// EncodeQuery serializes the filter into a shareable URL query string.
// Date and time are not persisted: a shared link opens on the recipient's
// current date and time, not the sender's.
func (f Filter) EncodeQuery() string {
	params := url.Values{}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.Subcategory != "" {
		params.Set("subcategory", f.Subcategory)
	}
	if f.CourseTitle != "" {
		params.Set("program", f.CourseTitle)
	}
	if len(f.Locations) > 0 {
		params.Set("locations", strings.Join(f.Locations, ","))
	}
	if f.Age != "" {
		params.Set("age", f.Age)
	}
	return params.Encode()
}

// DecodeQuery parses a shareable query string back into a Filter. Date and
// time come back empty; callers fill them with DefaultDate/DefaultTime.
func DecodeQuery(query string) (Filter, error) {
	params, err := url.ParseQuery(query)
	if err != nil {
		return Filter{}, err
	}
	f := Filter{
		Category:    params.Get("category"),
		Subcategory: params.Get("subcategory"),
		CourseTitle: params.Get("program"),
		Age:         params.Get("age"),
	}
	if raw := params.Get("locations"); raw != "" {
		f.Locations = strings.Split(raw, ",")
	}
	return f, nil
}
