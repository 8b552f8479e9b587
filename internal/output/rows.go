// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"neoscan-core/neo"
)

// floatCSV renders a float column under the established empty-field policy:
// an exact 0 renders as the empty string, anything else as the shortest
// decimal text. NaN compares unequal to 0, so an unknown diameter still
// renders as "NaN" while an explicit zero renders empty. Compatibility rule
// for the on-disk format — do not extend it to other columns.
func floatCSV(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatRowCSV returns the 7 columns for one approach (no trailing newline).
// Plain comma join, no quoting: a field value containing a comma would
// corrupt the row, but quoting would change the established file format.
// Requires a linked NEO.
func FormatRowCSV(ca *neo.CloseApproach) string {
	hazardous := "False"
	if ca.Neo.Hazardous {
		hazardous = "True"
	}
	return strings.Join([]string{
		ca.TimeStr(),
		floatCSV(ca.Distance),
		floatCSV(ca.Velocity),
		ca.Designation,
		ca.Neo.Name,
		floatCSV(ca.Neo.Diameter),
		hazardous,
	}, ",")
}
