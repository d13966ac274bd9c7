package models

import (
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.January, 10), d)

	for _, bad := range []string{"bad-date", "2024-1-10", "10/01/2024", "2024-13-01", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_CivilIgnoresLocation(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	scanned := Date(time.Date(2024, time.January, 10, 0, 0, 0, 0, bangkok))

	assert.Equal(t, "2024-01-10", scanned.String())
	assert.False(t, scanned.Before(NewDate(2024, time.January, 10)))
	assert.False(t, scanned.After(NewDate(2024, time.January, 10)))
}

func TestDate_JSON(t *testing.T) {
	r := Reservation{IDRoom: 1, CheckInDate: NewDate(2024, time.January, 10)}
	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"checkInDate":"2024-01-10"`)
	assert.Contains(t, string(raw), `"checkOutDate":null`)

	var back Reservation
	require.NoError(t, json.Unmarshal([]byte(`{"idRoom":1,"checkInDate":"2024-01-10","checkOutDate":"2024-01-15T00:00:00Z"}`), &back))
	assert.Equal(t, "2024-01-10", back.CheckInDate.String())
	assert.Equal(t, "2024-01-15", back.CheckOutDate.String())

	err = json.Unmarshal([]byte(`{"checkInDate":"tomorrow"}`), &back)
	assert.Error(t, err)
}

func TestDate_XML(t *testing.T) {
	r := Reservation{ID: 3, IDRoom: 1, CheckInDate: NewDate(2024, time.January, 10), CheckOutDate: NewDate(2024, time.January, 15)}
	raw, err := xml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<reservation>")
	assert.Contains(t, string(raw), "<checkInDate>2024-01-10</checkInDate>")

	var back Reservation
	require.NoError(t, xml.Unmarshal(raw, &back))
	assert.Equal(t, r.CheckOutDate.String(), back.CheckOutDate.String())
	assert.Equal(t, uint(3), back.ID)
}

func TestDate_Value(t *testing.T) {
	v, err := Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewDate(2024, time.January, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), v)

	var d Date
	require.NoError(t, d.Scan(time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-03-02", d.String())
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}
