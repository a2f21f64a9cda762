package domain

import "slices"

// Catalog lists the fixed targeting values a campaign may use.
type Catalog struct {
	AgeRanges []string `json:"age_ranges" yaml:"age_ranges"`
	Locations []string `json:"locations" yaml:"locations"`
	Interests []string `json:"interests" yaml:"interests"`
}

func (c Catalog) HasAgeRange(v string) bool { return slices.Contains(c.AgeRanges, v) }

func (c Catalog) HasLocation(v string) bool { return slices.Contains(c.Locations, v) }

func (c Catalog) HasInterest(v string) bool { return slices.Contains(c.Interests, v) }
