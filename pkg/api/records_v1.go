// pkg/api/records_v1.go
package api

import (
	"math"
	"strconv"
)

// Diameter is a kilometre diameter whose JSON form is null when the value is
// unknown (NaN). Strict JSON has no NaN literal; null is this schema's
// convention for "unknown", and it is applied nowhere else.
type Diameter float64

func (d Diameter) MarshalJSON() ([]byte, error) {
	f := float64(d)
	if math.IsNaN(f) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// NeoV1 is the stable JSON schema for a near-Earth object. Name is the empty
// string when the NEO has no name — never null, never omitted.
// Keep fields, names, and types stable.
type NeoV1 struct {
	Designation          string   `json:"designation"`
	Name                 string   `json:"name"`
	DiameterKM           Diameter `json:"diameter_km"`
	PotentiallyHazardous bool     `json:"potentially_hazardous"`
}

// CloseApproachV1 is the stable JSON schema for one close approach with its
// NEO embedded under "neo".
type CloseApproachV1 struct {
	DatetimeUTC string  `json:"datetime_utc"`
	DistanceAU  float64 `json:"distance_au"`
	VelocityKmS float64 `json:"velocity_km_s"`
	Neo         NeoV1   `json:"neo"`
}
