// internal/envcfg/envcfg.go
package envcfg

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment overrides for the default data file locations.
const (
	NEOPathEnv = "NEOSCAN_NEO_PATH"
	CADPathEnv = "NEOSCAN_CAD_PATH"
)

const (
	defaultNEOPath = "data/neos.csv"
	defaultCADPath = "data/cad.json"
)

// Paths are the resolved data file locations. CLI flags take precedence over
// these.
type Paths struct {
	NEOFile string
	CADFile string
}

// Load reads an optional .env from the working directory and resolves the
// data paths from the environment, falling back to the repo-relative
// defaults.
func Load() Paths {
	_ = godotenv.Load() // a missing .env is fine

	return Paths{
		NEOFile: getEnv(NEOPathEnv, defaultNEOPath),
		CADFile: getEnv(CADPathEnv, defaultCADPath),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
