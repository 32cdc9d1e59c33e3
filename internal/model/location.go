package model

import (
	"fmt"
	"strings"
)

// Location is one facility record from the location registry. Address
// components use the "None" sentinel for absent values.
type Location struct {
	ID               int    `json:"_id"`
	LocationID       int    `json:"Location ID"`
	ParentLocationID int    `json:"Parent Location ID"`
	Name             string `json:"Location Name"`
	Type             string `json:"Location Type"`
	Accessibility    string `json:"Accessibility"`
	Intersection     string `json:"Intersection"`
	TransitInfo      string `json:"TTC Information"`
	District         string `json:"District"`
	StreetNo         string `json:"Street No"`
	StreetNoSuffix   string `json:"Street No Suffix"`
	StreetName       string `json:"Street Name"`
	StreetType       string `json:"Street Type"`
	StreetDirection  string `json:"Street Direction"`
	PostalCode       string `json:"Postal Code"`
	Description      string `json:"Description"`
}

// StreetAddress joins the non-sentinel address components into a single
// street line, e.g. "875 Morningside Ave".
func (l Location) StreetAddress() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{l.StreetNo, l.StreetNoSuffix, l.StreetName, l.StreetType, l.StreetDirection} {
		if p != "" && p != AgeNone {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// FormatAddress renders a two-line display address with the city line, e.g.
// "875 Morningside Ave\nToronto, ON  M1C 5N9". Components marked "None" are
// omitted; with no street components only the city line is returned.
func (l Location) FormatAddress(city, province string) string {
	cityLine := fmt.Sprintf("%s, %s", city, province)
	if l.PostalCode != "" && l.PostalCode != AgeNone {
		cityLine = fmt.Sprintf("%s, %s  %s", city, province, l.PostalCode)
	}
	street := l.StreetAddress()
	if street == "" {
		return cityLine
	}
	return street + "\n" + cityLine
}
