package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolDataWithDefaults(t *testing.T) {
	d := SchoolData{Name: "A"}.WithDefaults()
	assert.Equal(t, DefaultLat, d.Lat)
	assert.Equal(t, DefaultLon, d.Lon)

	d = SchoolData{Lat: 35.1, Lon: 129.0}.WithDefaults()
	assert.Equal(t, 35.1, d.Lat)
	assert.Equal(t, 129.0, d.Lon)
}

func TestTechnicianPasswordNeverSerialized(t *testing.T) {
	raw, err := json.Marshal(Technician{Name: "Kim", LoginID: "kim", Password: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestPostNormalize(t *testing.T) {
	p := Post{Title: "t"}
	p.Normalize()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"replies":[]`)
}
