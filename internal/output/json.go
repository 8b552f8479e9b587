// internal/output/json.go
package output

import (
	"io"

	"neoscan/internal/jsonutil"
	"neoscan/pkg/api"

	"neoscan-core/neo"
)

// ToAPINeo converts a NEO to the stable wire schema (v1).
func ToAPINeo(n *neo.NearEarthObject) api.NeoV1 {
	return api.NeoV1{
		Designation:          n.Designation,
		Name:                 n.Name,
		DiameterKM:           api.Diameter(n.Diameter),
		PotentiallyHazardous: n.Hazardous,
	}
}

// ToAPIApproach converts a linked approach to the stable wire schema (v1),
// embedding its NEO under "neo".
func ToAPIApproach(ca *neo.CloseApproach) api.CloseApproachV1 {
	return api.CloseApproachV1{
		DatetimeUTC: ca.TimeStr(),
		DistanceAU:  ca.Distance,
		VelocityKmS: ca.Velocity,
		Neo:         ToAPINeo(ca.Neo),
	}
}

// WriteJSON writes the whole result set as one top-level JSON array in a
// single encode call. An empty input encodes as [].
func WriteJSON(w io.Writer, list []*neo.CloseApproach) error {
	out := make([]api.CloseApproachV1, 0, len(list))
	for _, ca := range list {
		out = append(out, ToAPIApproach(ca))
	}
	return jsonutil.Encode(w, out)
}
