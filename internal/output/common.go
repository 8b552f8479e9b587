package output

// CSVHeader is the canonical header row for CSV output.
// Keep this as the single source of truth; all writers should use it.
const CSVHeader = "datetime_utc,distance_au,velocity_km_s,designation,name,diameter_km,potentially_hazardous"

// Output format names accepted on the command line.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)
