// core/filters/filters.go
package filters

import (
	"time"

	"neoscan-core/neo"
)

// Filter keeps or drops one close approach.
type Filter func(*neo.CloseApproach) bool

// Criteria is a declarative query over close approaches. Nil pointer fields
// are "no bound". Filters that read the linked NEO (diameter, hazardous)
// require the database linkage phase to have run.
type Criteria struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	MinDistance *float64
	MaxDistance *float64
	MinVelocity *float64
	MaxVelocity *float64
	MinDiameter *float64
	MaxDiameter *float64

	Hazardous *bool

	Limit int // ≤0 = no limit
}

// Build compiles the criteria into a filter list for neodb.Query.
//
// Date bounds compare calendar dates in UTC; an approach with no time never
// matches a date-bounded query. Diameter bounds compare against the linked
// NEO's diameter, so an unknown (NaN) diameter fails every bound.
func (c Criteria) Build() []Filter {
	var fs []Filter
	if c.Date != nil {
		d := *c.Date
		fs = append(fs, onDate(func(t time.Time) bool { return sameDate(t, d) }))
	}
	if c.StartDate != nil {
		d := dateOnly(*c.StartDate)
		fs = append(fs, onDate(func(t time.Time) bool { return !dateOnly(t).Before(d) }))
	}
	if c.EndDate != nil {
		d := dateOnly(*c.EndDate)
		fs = append(fs, onDate(func(t time.Time) bool { return !dateOnly(t).After(d) }))
	}
	if c.MinDistance != nil {
		v := *c.MinDistance
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Distance >= v })
	}
	if c.MaxDistance != nil {
		v := *c.MaxDistance
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Distance <= v })
	}
	if c.MinVelocity != nil {
		v := *c.MinVelocity
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Velocity >= v })
	}
	if c.MaxVelocity != nil {
		v := *c.MaxVelocity
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Velocity <= v })
	}
	if c.MinDiameter != nil {
		v := *c.MinDiameter
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Neo.Diameter >= v })
	}
	if c.MaxDiameter != nil {
		v := *c.MaxDiameter
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Neo.Diameter <= v })
	}
	if c.Hazardous != nil {
		v := *c.Hazardous
		fs = append(fs, func(ca *neo.CloseApproach) bool { return ca.Neo.Hazardous == v })
	}
	return fs
}

// Limit returns at most n approaches from the front of list; n ≤ 0 means no
// limit.
func Limit(list []*neo.CloseApproach, n int) []*neo.CloseApproach {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}

func onDate(match func(time.Time) bool) Filter {
	return func(ca *neo.CloseApproach) bool {
		return ca.Time != nil && match(*ca.Time)
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
