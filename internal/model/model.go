package model

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrNoCloseApproach marks an asteroid record whose close_approach_data
// list is empty. The feed is expected to always carry at least one entry.
var ErrNoCloseApproach = errors.New("no close approach data")

// RelativeVelocity is the speed of an asteroid relative to Earth at
// close approach. NeoWs encodes the numbers as strings.
type RelativeVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
}

// CloseApproach is a single recorded near-Earth pass of an asteroid.
type CloseApproach struct {
	FullDate         string           `json:"close_approach_date_full"`
	RelativeVelocity RelativeVelocity `json:"relative_velocity"`
}

// VelocityKmPerSec parses the string-encoded relative velocity.
func (c CloseApproach) VelocityKmPerSec() (float64, error) {
	v, err := strconv.ParseFloat(c.RelativeVelocity.KilometersPerSecond, 64)
	if err != nil {
		return 0, fmt.Errorf("parse relative velocity %q: %w", c.RelativeVelocity.KilometersPerSecond, err)
	}
	return v, nil
}

// Asteroid is a single near-earth object record from the feed.
type Asteroid struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Hazardous       bool            `json:"is_potentially_hazardous_asteroid"`
	CloseApproaches []CloseApproach `json:"close_approach_data"`
}

// FirstApproach returns the asteroid's first close-approach entry, or
// ErrNoCloseApproach on a malformed record.
func (a Asteroid) FirstApproach() (CloseApproach, error) {
	if len(a.CloseApproaches) == 0 {
		return CloseApproach{}, fmt.Errorf("asteroid %s: %w", a.ID, ErrNoCloseApproach)
	}
	return a.CloseApproaches[0], nil
}

// Feed is the decoded NeoWs feed response for one queried date range.
type Feed struct {
	NearEarthObjects map[string][]Asteroid `json:"near_earth_objects"`
}

// Dates returns the feed's date keys in ascending calendar order.
// JSON object order is lost in the map, so every walk over the feed
// iterates through this for deterministic output.
func (f *Feed) Dates() []string {
	dates := make([]string, 0, len(f.NearEarthObjects))
	for date := range f.NearEarthObjects {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
