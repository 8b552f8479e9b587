// core/neo/neo.go
package neo

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"neoscan-core/caldate"
)

// Record is one flat catalog record as decoded from a NASA data file.
// Values are raw strings; the empty string stands for a missing or null
// field. Extra keys are ignored by the constructors.
type Record map[string]string

// NearEarthObject is a single catalogued near-Earth object.
//
// Designation is the unique primary key and never changes after
// construction. Diameter is always a number: NaN marks an unknown diameter,
// so formatting code branches on NaN-ness, never on presence.
//
// Approaches starts empty and is populated exactly once, by the neodb
// linkage phase. No other mutation happens after construction.
type NearEarthObject struct {
	Designation string
	Name        string  // "" = no IAU name
	Diameter    float64 // km; NaN = unknown
	Hazardous   bool

	Approaches []*CloseApproach
}

// NewNearEarthObject builds a NEO from a catalog record.
//
// Field mapping: pdes (required), name (optional), diameter (optional,
// NaN when absent), pha (hazardous only when exactly "Y" — the source data
// is two-state, so "N" and absent are indistinguishable).
func NewNearEarthObject(rec Record) (*NearEarthObject, error) {
	if rec["pdes"] == "" {
		return nil, &MissingFieldError{Entity: "NearEarthObject", Field: "pdes"}
	}
	n := &NearEarthObject{
		Designation: rec["pdes"],
		Name:        rec["name"],
		Diameter:    math.NaN(),
		Hazardous:   rec["pha"] == "Y",
	}
	if v := rec["diameter"]; v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &NumericFieldError{Entity: "NearEarthObject", Field: "diameter", Value: v, Err: err}
		}
		n.Diameter = d
	}
	return n, nil
}

// Fullname is "designation (name)" when the NEO has a name, else the bare
// designation.
func (n *NearEarthObject) Fullname() string {
	if n.Name != "" {
		return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
	}
	return n.Designation
}

// String renders the NEO for humans. An unknown diameter prints as Go's NaN
// literal under %.3f.
func (n *NearEarthObject) String() string {
	verb := "is not"
	if n.Hazardous {
		verb = "is"
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s potentially hazardous.",
		n.Fullname(), n.Diameter, verb)
}

// CloseApproach is one recorded pass of an NEO near Earth.
//
// Designation is the raw catalog designation and identifies the owning NEO
// before linkage; Neo stays nil until the neodb linkage phase resolves it.
// The reference is non-owning and set exactly once.
type CloseApproach struct {
	Designation string
	Time        *time.Time // nil = source supplied no date
	Distance    float64    // au; 0.0 when the source value is missing
	Velocity    float64    // km/s; 0.0 when the source value is missing

	Neo *NearEarthObject
}

// NewCloseApproach builds a close approach from a CAD record.
//
// Field mapping: des (required), cd (optional timestamp, parse errors
// propagate), dist and v_rel (optional, 0.0 when absent — distance has a
// meaningful zero, unlike diameter).
func NewCloseApproach(rec Record) (*CloseApproach, error) {
	if rec["des"] == "" {
		return nil, &MissingFieldError{Entity: "CloseApproach", Field: "des"}
	}
	ca := &CloseApproach{Designation: rec["des"]}
	if v := rec["cd"]; v != "" {
		t, err := caldate.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("CloseApproach: field %q: %w", "cd", err)
		}
		ca.Time = &t
	}
	var err error
	if ca.Distance, err = parseFloat("dist", rec["dist"]); err != nil {
		return nil, err
	}
	if ca.Velocity, err = parseFloat("v_rel", rec["v_rel"]); err != nil {
		return nil, err
	}
	return ca, nil
}

func parseFloat(field, v string) (float64, error) {
	if v == "" {
		return 0.0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &NumericFieldError{Entity: "CloseApproach", Field: field, Value: v, Err: err}
	}
	return f, nil
}

// TimeStr renders the approach time at minute precision, or the unknown-time
// sentinel when there is none.
func (ca *CloseApproach) TimeStr() string {
	return caldate.Format(ca.Time)
}

// String renders the approach for humans. Requires a linked NEO; calling it
// before linkage is a precondition violation.
func (ca *CloseApproach) String() string {
	return fmt.Sprintf("At %s, '%s' approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		ca.TimeStr(), ca.Neo.Fullname(), ca.Distance, ca.Velocity)
}
