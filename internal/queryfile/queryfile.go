// internal/queryfile/queryfile.go

// Package queryfile loads saved query files: a small YAML document holding
// the same bounds the inline filter flags express.
package queryfile

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"neoscan-core/filters"
)

// Query is the on-disk shape of a saved query. Dates are YYYY-MM-DD strings.
type Query struct {
	Date      string `yaml:"date,omitempty"`
	StartDate string `yaml:"start_date,omitempty"`
	EndDate   string `yaml:"end_date,omitempty"`

	MinDistance *float64 `yaml:"min_distance,omitempty"`
	MaxDistance *float64 `yaml:"max_distance,omitempty"`
	MinVelocity *float64 `yaml:"min_velocity,omitempty"`
	MaxVelocity *float64 `yaml:"max_velocity,omitempty"`
	MinDiameter *float64 `yaml:"min_diameter,omitempty"`
	MaxDiameter *float64 `yaml:"max_diameter,omitempty"`

	Hazardous *bool `yaml:"hazardous,omitempty"`
	Limit     int   `yaml:"limit,omitempty"`
}

// Load reads and decodes a saved query. Unknown keys are rejected so a typo
// in a bound name cannot silently widen a query.
func Load(path string) (Query, error) {
	var q Query
	data, err := os.ReadFile(path)
	if err != nil {
		return q, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&q); err != nil {
		return q, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}

// Criteria converts the file form into query criteria, parsing the date
// bounds.
func (q Query) Criteria() (filters.Criteria, error) {
	c := filters.Criteria{
		MinDistance: q.MinDistance,
		MaxDistance: q.MaxDistance,
		MinVelocity: q.MinVelocity,
		MaxVelocity: q.MaxVelocity,
		MinDiameter: q.MinDiameter,
		MaxDiameter: q.MaxDiameter,
		Hazardous:   q.Hazardous,
		Limit:       q.Limit,
	}
	var err error
	if c.Date, err = parseDate("date", q.Date); err != nil {
		return c, err
	}
	if c.StartDate, err = parseDate("start_date", q.StartDate); err != nil {
		return c, err
	}
	if c.EndDate, err = parseDate("end_date", q.EndDate); err != nil {
		return c, err
	}
	return c, nil
}

func parseDate(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}
