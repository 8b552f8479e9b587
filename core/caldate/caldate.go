// core/caldate/caldate.go
package caldate

import "time"

// NASA CAD timestamps carry minute precision only; neither layout has a
// seconds component.
const (
	inputLayout  = "2006-Jan-02 15:04"
	outputLayout = "2006-01-02 15:04"
)

// Unknown is the display form of a missing approach time.
const Unknown = "an unknown time"

// Parse converts a compact CAD calendar string ("2025-Jan-01 06:00") into a
// UTC timestamp.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(inputLayout, s, time.UTC)
}

// Format is the inverse of Parse ("2025-01-01 06:00"); nil formats as the
// Unknown sentinel.
func Format(t *time.Time) string {
	if t == nil {
		return Unknown
	}
	return t.Format(outputLayout)
}
