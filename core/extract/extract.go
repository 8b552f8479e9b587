// core/extract/extract.go
package extract

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"neoscan-core/neo"
)

// Column subsets the constructors care about; every other column in the
// source files is ignored.
var (
	neoFields = []string{"pdes", "name", "diameter", "pha"}
	cadFields = []string{"des", "cd", "dist", "v_rel"}
)

// LoadNEOs reads a NASA small-bodies CSV (header row naming the columns) and
// builds one NearEarthObject per data row. Construction errors carry
// path:line.
func LoadNEOs(path string) ([]*neo.NearEarthObject, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", path, err)
	}
	idx := map[string]int{}
	for i, col := range header {
		idx[col] = i
	}

	var list []*neo.NearEarthObject
	line := 1
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line++
		rec := neo.Record{}
		for _, k := range neoFields {
			if i, ok := idx[k]; ok && i < len(row) {
				rec[k] = row[i]
			}
		}
		n, err := neo.NewNearEarthObject(rec)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		list = append(list, n)
	}
	return list, nil
}

// cadEnvelope is the wrapper object of a NASA close-approach-data JSON file.
// Data cells are strings or null.
type cadEnvelope struct {
	Fields []string    `json:"fields"`
	Data   [][]*string `json:"data"`
}

// LoadApproaches reads a NASA CAD JSON file and builds one CloseApproach per
// data entry, in file order.
func LoadApproaches(path string) ([]*neo.CloseApproach, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var env cadEnvelope
	if err := json.NewDecoder(fh).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	idx := map[string]int{}
	for i, col := range env.Fields {
		idx[col] = i
	}

	list := make([]*neo.CloseApproach, 0, len(env.Data))
	for i, row := range env.Data {
		rec := neo.Record{}
		for _, k := range cadFields {
			if j, ok := idx[k]; ok && j < len(row) && row[j] != nil {
				rec[k] = *row[j]
			}
		}
		ca, err := neo.NewCloseApproach(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i, err)
		}
		list = append(list, ca)
	}
	return list, nil
}
