package extract

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const neosCSV = `id,spkid,full_name,pdes,name,neo,pha,diameter
a0000433,2000433,433 Eros,433,Eros,Y,N,16.84
a0001036,2001036,1036 Ganymed,1036,Ganymed,Y,N,
a0099942,2099942,99942 Apophis,99942,Apophis,Y,Y,0.34
`

const cadJSON = `{
  "signature": {"source": "NASA/JPL SBDB Close Approach Data API", "version": "1.1"},
  "count": "3",
  "fields": ["des", "orbit_id", "jd", "cd", "dist", "dist_min", "dist_max", "v_rel", "v_inf", "t_sigma_f", "h"],
  "data": [
    ["433", "659", "2462240.5", "2025-Jan-01 06:00", "0.15", "0.14", "0.16", "5.02", "5.0", "< 1 day", "10.4"],
    ["1036", "409", "2462241.5", "2025-Feb-10 12:30", "0.3312", "0.33", "0.34", "7.5", "7.4", "< 1 day", "9.2"],
    ["99942", "199", "2462242.5", null, null, null, null, null, null, null, "19.7"]
  ]
}`

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadNEOs(t *testing.T) {
	neos, err := LoadNEOs(write(t, "neos.csv", neosCSV))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(neos) != 3 {
		t.Fatalf("expected 3 NEOs, got %d", len(neos))
	}
	if neos[0].Designation != "433" || neos[0].Name != "Eros" || neos[0].Diameter != 16.84 || neos[0].Hazardous {
		t.Fatalf("bad first NEO: %+v", neos[0])
	}
	if !math.IsNaN(neos[1].Diameter) {
		t.Fatalf("expected NaN diameter for Ganymed, got %v", neos[1].Diameter)
	}
	if !neos[2].Hazardous {
		t.Fatalf("expected Apophis hazardous")
	}
}

func TestLoadNEOs_BadRow(t *testing.T) {
	bad := "pdes,name,diameter,pha\n433,Eros,wide,N\n"
	_, err := LoadNEOs(write(t, "neos.csv", bad))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestLoadNEOs_MissingFile(t *testing.T) {
	if _, err := LoadNEOs(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadApproaches(t *testing.T) {
	approaches, err := LoadApproaches(write(t, "cad.json", cadJSON))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(approaches) != 3 {
		t.Fatalf("expected 3 approaches, got %d", len(approaches))
	}
	first := approaches[0]
	if first.Designation != "433" || first.Distance != 0.15 || first.Velocity != 5.02 {
		t.Fatalf("bad first approach: %+v", first)
	}
	if first.TimeStr() != "2025-01-01 06:00" {
		t.Fatalf("got %q", first.TimeStr())
	}
	// Null cells decode to the documented defaults.
	last := approaches[2]
	if last.Time != nil || last.Distance != 0.0 || last.Velocity != 0.0 {
		t.Fatalf("expected defaults for null cells: %+v", last)
	}
}

func TestLoadApproaches_BadEntry(t *testing.T) {
	bad := `{"fields": ["des", "cd"], "data": [["433", "not a date"]]}`
	_, err := LoadApproaches(write(t, "cad.json", bad))
	if err == nil || !strings.Contains(err.Error(), "entry 0") {
		t.Fatalf("expected entry index in error, got %v", err)
	}
}

func TestLoadApproaches_NotJSON(t *testing.T) {
	if _, err := LoadApproaches(write(t, "cad.json", "des,cd\n")); err == nil {
		t.Fatalf("expected error")
	}
}
