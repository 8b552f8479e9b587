package output

import (
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"neoscan-core/neo"
)

// Property-based checks on the CSV row policy: these must hold for any
// record the constructors accept.
func TestFormatRowCSV_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Identifier-ish strings: no commas, so the unquoted format stays intact.
	ident := gen.RegexMatch(`[A-Za-z0-9 ]{1,12}`).SuchThat(func(s string) bool {
		return strings.TrimSpace(s) != ""
	})

	makeRow := func(des, name string, dist, vel, diam float64, hazardous bool) *neo.CloseApproach {
		n := &neo.NearEarthObject{Designation: des, Name: name, Diameter: diam, Hazardous: hazardous}
		return &neo.CloseApproach{Designation: des, Distance: dist, Velocity: vel, Neo: n}
	}

	properties.Property("row always has exactly 7 fields", prop.ForAll(
		func(des, name string, dist, vel, diam float64, hazardous bool) bool {
			row := FormatRowCSV(makeRow(des, name, dist, vel, diam, hazardous))
			return len(strings.Split(row, ",")) == 7
		},
		ident, ident, gen.Float64Range(0, 100), gen.Float64Range(0, 100), gen.Float64Range(0, 1000), gen.Bool(),
	))

	properties.Property("distance field empty iff distance is exactly zero", prop.ForAll(
		func(dist float64) bool {
			row := FormatRowCSV(makeRow("x", "", dist, 1, 1, false))
			field := strings.Split(row, ",")[1]
			return (field == "") == (dist == 0)
		},
		gen.OneGenOf(gen.Float64Range(0, 10), gen.Const(0.0)),
	))

	properties.Property("unknown diameter renders NaN, never empty", prop.ForAll(
		func(dist float64) bool {
			row := FormatRowCSV(makeRow("x", "", dist, 1, math.NaN(), false))
			return strings.Split(row, ",")[5] == "NaN"
		},
		gen.Float64Range(0, 10),
	))

	properties.Property("hazardous column is always a title-case bool literal", prop.ForAll(
		func(hazardous bool) bool {
			row := FormatRowCSV(makeRow("x", "", 1, 1, 1, hazardous))
			field := strings.Split(row, ",")[6]
			return field == "True" || field == "False"
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}
