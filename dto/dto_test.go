package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeongjingoo/tech/internal/models"
)

func TestLooseSchoolData(t *testing.T) {
	body := `{"data":{"name":"Hanbit","istech":"1","total_classes":24,"teacher_room_num":301,"lat":"37.1","lng":127.5,"team":"1팀"}}`

	var req SchoolCreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, Validate(req))

	d := req.Data.ToModel()
	assert.Equal(t, "Hanbit", d.Name)
	assert.Equal(t, 1, d.IsTech)
	assert.Equal(t, 24, d.TotalClasses)
	assert.Equal(t, "301", d.TeachersRoomNum)
	assert.Equal(t, 37.1, d.Lat)
	assert.Equal(t, 127.5, d.Lon)
	assert.Equal(t, "1팀", d.Team)
}

func TestLooseNumberFallsBack(t *testing.T) {
	var req SchoolCreateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"name":"x","istech":"yes","total_classes":null}}`), &req))
	d := req.Data.ToModel()
	assert.Equal(t, 0, d.IsTech)
	assert.Equal(t, 0, d.TotalClasses)
	assert.Equal(t, models.DefaultLat, d.Lat)
	assert.Equal(t, models.DefaultLon, d.Lon)
}

func TestLooseNumberRejectsNonFinite(t *testing.T) {
	for _, in := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "1e400", "-1e400"} {
		t.Run(in, func(t *testing.T) {
			assert.Zero(t, ParseNumber(in))
			assert.Zero(t, ParseInt(in))
		})
	}

	body := `{"data":{"name":"x","lat":"NaN","lon":"Infinity","istech":1e300,"total_classes":"-1e12"}}`
	var req SchoolCreateRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	d := req.Data.ToModel()
	assert.Equal(t, models.DefaultLat, d.Lat)
	assert.Equal(t, models.DefaultLon, d.Lon)
	assert.Equal(t, 0, d.IsTech)
	assert.Equal(t, 0, d.TotalClasses)

	_, err := json.Marshal(d)
	assert.NoError(t, err)
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt(42.9))
	assert.Equal(t, -3, ToInt(-3.2))
	assert.Equal(t, 0, ToInt(3e10))
	assert.Equal(t, 0, ToInt(-3e10))
	assert.Equal(t, 1000, ParseInt("1,000"))
}

func TestValidationMessage(t *testing.T) {
	err := Validate(PostRequest{Title: "t"})
	require.Error(t, err)

	msg, ok := ValidationMessage(err)
	require.True(t, ok)
	assert.Contains(t, msg, "content is required")
	assert.Contains(t, msg, "writer is required")

	_, ok = ValidationMessage(assert.AnError)
	assert.False(t, ok)
}

func TestEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(Paged([]int{}, Pagination{Total: 0, Page: 1, Limit: 10}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[],"pagination":{"total":0,"page":1,"limit":10,"totalPages":0}}`, string(raw))

	raw, err = json.Marshal(Fail("missing id"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"missing id"}`, string(raw))
}
