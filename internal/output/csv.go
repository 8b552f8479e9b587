// internal/output/csv.go
package output

import (
	"fmt"
	"io"

	"neoscan-core/neo"
)

// WriteCSV writes a slice of approaches as CSV rows, input order preserved.
func WriteCSV(w io.Writer, list []*neo.CloseApproach, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
			return err
		}
	}
	for _, ca := range list {
		if _, err := fmt.Fprintln(w, FormatRowCSV(ca)); err != nil {
			return err
		}
	}
	return nil
}

// StreamCSV writes approaches from a channel as they arrive, one row each.
func StreamCSV(w io.Writer, in <-chan *neo.CloseApproach, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
			return err
		}
	}
	for ca := range in {
		if _, err := fmt.Fprintln(w, FormatRowCSV(ca)); err != nil {
			return err
		}
	}
	return nil
}
