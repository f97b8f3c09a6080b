package dateutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse("2025-06-05")
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-05", d.String())
	assert.Equal(t, New(2025, time.June, 5), d)

	_, err = Parse("05-06-2025")
	assert.Error(t, err)
	_, err = Parse("2025-6-5")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	a := New(2025, time.June, 1)
	b := New(2025, time.June, 5)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.After(b))
	assert.True(t, a.Equal(New(2025, time.June, 1)))
	assert.False(t, a.Equal(b))
}

func TestAddDaysAndDaysUntil(t *testing.T) {
	a := New(2025, time.June, 28)

	assert.Equal(t, New(2025, time.July, 3), a.AddDays(5))
	assert.Equal(t, New(2025, time.June, 27), a.AddDays(-1))
	assert.Equal(t, 5, a.DaysUntil(a.AddDays(5)))
	assert.Equal(t, 0, a.DaysUntil(a))
	assert.Equal(t, -2, a.DaysUntil(a.AddDays(-2)))
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.June, 5)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-06-05"`, string(data))

	var parsed Date
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, d.Equal(parsed))

	data, err = json.Marshal(Date{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(data))

	var empty Date
	assert.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())
}

func TestScanAndValue(t *testing.T) {
	var d Date
	assert.NoError(t, d.Scan(time.Date(2025, time.June, 5, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-06-05", d.String())

	assert.NoError(t, d.Scan("2025-07-01"))
	assert.Equal(t, "2025-07-01", d.String())

	assert.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := New(2025, time.June, 5).Value()
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), v)

	v, err = Date{}.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}
