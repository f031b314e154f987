package dateutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinusDays(t *testing.T) {
	cases := []struct {
		name string
		date string
		want string
	}{
		{"dataset latest date", "2017-08-23", "2016-08-23"},
		{"crosses leap day", "2016-03-01", "2015-03-02"},
		{"from leap day", "2016-02-29", "2015-03-01"},
		{"after leap year", "2017-03-01", "2016-03-01"},
		{"end of leap year", "2016-12-31", "2016-01-01"},
		{"year boundary", "2010-01-01", "2009-01-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MinusDays(tc.date, 365)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinusDays_InvalidDate(t *testing.T) {
	_, err := MinusDays("2017-8-23", 365)
	assert.Error(t, err)

	_, err = MinusDays("2017-02-30", 365)
	assert.Error(t, err)
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2017-01-31"))
	assert.False(t, IsISODate("2017-1-31"))
	assert.False(t, IsISODate("20170131"))
	assert.False(t, IsISODate("start"))
	assert.False(t, IsISODate(""))
}

func TestFormat_RoundTrip(t *testing.T) {
	parsed, err := Parse("2012-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2012-02-29", Format(parsed))
}
