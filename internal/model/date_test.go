package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2026, time.March, 7)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-07"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-12-31"`), &got))
	assert.Equal(t, NewDate(2026, time.December, 31), got)

	// время и число: ошибка
	assert.Error(t, json.Unmarshal([]byte(`"2026-12-31T10:00:00Z"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`20261231`), &got))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.May, 2, 13, 4, 0, 0, time.FixedZone("x", 3600))))
	assert.Equal(t, "2025-05-02", d.String())

	require.NoError(t, d.Scan("2025-06-01"))
	assert.Equal(t, "2025-06-01", d.String())

	// SQLite может вернуть дату вместе со временем
	require.NoError(t, d.Scan([]byte("2025-07-09 00:00:00+00:00")))
	assert.Equal(t, "2025-07-09", d.String())

	assert.Error(t, d.Scan("nope"))
	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, time.February, 29).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", v)
}
