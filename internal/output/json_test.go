package output

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoscan-core/neo"
)

func TestWriteJSON_EmptyIsLiteralArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteJSON_EndToEnd(t *testing.T) {
	ca := linked(t,
		neo.Record{"pdes": "433", "name": "Eros", "diameter": "16.84", "pha": "N"},
		neo.Record{"des": "433", "cd": "2025-Jan-01 06:00", "dist": "0.15", "v_rel": "5.02"})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []*neo.CloseApproach{ca}))
	assert.Equal(t,
		`[{"datetime_utc":"2025-01-01 06:00","distance_au":0.15,"velocity_km_s":5.02,`+
			`"neo":{"designation":"433","name":"Eros","diameter_km":16.84,"potentially_hazardous":false}}]`+"\n",
		buf.String())
}

func TestWriteJSON_UnknownDiameterIsNull(t *testing.T) {
	ca := linked(t,
		neo.Record{"pdes": "1"},
		neo.Record{"des": "1"})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []*neo.CloseApproach{ca}))
	assert.Contains(t, buf.String(), `"diameter_km":null`)
	assert.Contains(t, buf.String(), `"datetime_utc":"an unknown time"`)
	assert.Contains(t, buf.String(), `"name":""`)
}

func TestToAPIApproach(t *testing.T) {
	ca := linked(t,
		neo.Record{"pdes": "99942", "name": "Apophis", "pha": "Y"},
		neo.Record{"des": "99942", "cd": "2029-Apr-13 21:46", "dist": "0.00025", "v_rel": "7.42"})

	got := ToAPIApproach(ca)
	assert.Equal(t, "2029-04-13 21:46", got.DatetimeUTC)
	assert.Equal(t, 0.00025, got.DistanceAU)
	assert.Equal(t, 7.42, got.VelocityKmS)
	assert.Equal(t, "99942", got.Neo.Designation)
	assert.Equal(t, "Apophis", got.Neo.Name)
	assert.True(t, got.Neo.PotentiallyHazardous)
	// NaN compares unequal to itself, so check NaN-ness, not equality.
	assert.True(t, math.IsNaN(float64(got.Neo.DiameterKM)))
}
