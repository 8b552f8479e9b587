// core/neodb/database.go
package neodb

import (
	"fmt"

	"neoscan-core/filters"
	"neoscan-core/neo"
)

// Database holds the full in-memory record set for a run: every NEO, every
// close approach, and the designation/name indexes. Nothing is ever deleted.
type Database struct {
	neos       []*neo.NearEarthObject
	approaches []*neo.CloseApproach
	byDes      map[string]*neo.NearEarthObject
	byName     map[string]*neo.NearEarthObject
}

// New indexes the NEOs and runs the one-shot linkage phase: each approach's
// raw designation is resolved to its NEO, the approach gets its back
// reference, and the NEO's approach list grows in input order. These are the
// only two mutations the entities ever see.
//
// A duplicate NEO designation or an approach referencing an unknown
// designation is a data error, not a skippable record.
func New(neos []*neo.NearEarthObject, approaches []*neo.CloseApproach) (*Database, error) {
	db := &Database{
		neos:       neos,
		approaches: approaches,
		byDes:      make(map[string]*neo.NearEarthObject, len(neos)),
		byName:     make(map[string]*neo.NearEarthObject),
	}
	for _, n := range neos {
		if _, dup := db.byDes[n.Designation]; dup {
			return nil, fmt.Errorf("duplicate NEO designation %q", n.Designation)
		}
		db.byDes[n.Designation] = n
		if n.Name != "" {
			db.byName[n.Name] = n
		}
	}
	for _, ca := range approaches {
		n, ok := db.byDes[ca.Designation]
		if !ok {
			return nil, fmt.Errorf("close approach references unknown designation %q", ca.Designation)
		}
		ca.Neo = n
		n.Approaches = append(n.Approaches, ca)
	}
	return db, nil
}

// ByDesignation looks up an NEO by its primary designation.
func (db *Database) ByDesignation(des string) (*neo.NearEarthObject, bool) {
	n, ok := db.byDes[des]
	return n, ok
}

// ByName looks up an NEO by exact IAU name. The empty name never matches.
func (db *Database) ByName(name string) (*neo.NearEarthObject, bool) {
	if name == "" {
		return nil, false
	}
	n, ok := db.byName[name]
	return n, ok
}

// NEOs returns every NEO in load order.
func (db *Database) NEOs() []*neo.NearEarthObject { return db.neos }

// Approaches returns every close approach in load order.
func (db *Database) Approaches() []*neo.CloseApproach { return db.approaches }

// Query returns the approaches matching all filters, in insertion order.
// No filters means everything.
func (db *Database) Query(fs ...filters.Filter) []*neo.CloseApproach {
	if len(fs) == 0 {
		return db.approaches
	}
	var out []*neo.CloseApproach
	for _, ca := range db.approaches {
		keep := true
		for _, f := range fs {
			if !f(ca) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, ca)
		}
	}
	return out
}
