package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, 3, 5))
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-05"`, string(data))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &d))
	assert.True(t, d.Equal(NewDate(2024, 3, 5)))

	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T23:10:00-06:00"`), &d))
	assert.Equal(t, "2024-03-05", d.String(), "time of day is dropped, calendar day kept")

	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12`), &d))
}

func TestDateNormalizes(t *testing.T) {
	assert.Equal(t, "2024-03-01", NewDate(2024, 2, 30).String())
	assert.Equal(t, "2024-02-29", NewDate(2024, 3, 1).AddDays(-1).String())
	assert.Equal(t, "", Date{}.String())
}
