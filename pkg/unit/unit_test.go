package unit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgrange/nextwake/pkg/unit"
)

func TestToSeconds_FixedUnits(t *testing.T) {
	now := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		count float64
		unit  unit.Unit
		want  float64
	}{
		{1, unit.Seconds, 1},
		{30, unit.Seconds, 30},
		{2, unit.Minutes, 120},
		{1, unit.Hours, 3600},
		{1.5, unit.Hours, 5400},
		{3, unit.Days, 259200},
		{2, unit.Weeks, 1209600},
	}
	for _, c := range cases {
		got, err := unit.ToSeconds(c.count, c.unit, now)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%v %v", c.count, c.unit)
	}
}

func TestToSeconds_MonthsDependOnCalendar(t *testing.T) {
	// January has 31 days
	jan := time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)
	got, err := unit.ToSeconds(1, unit.Months, jan)
	require.NoError(t, err)
	assert.Equal(t, float64(31*86400), got)

	// February 2021 has 28
	feb := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)
	got, err = unit.ToSeconds(1, unit.Months, feb)
	require.NoError(t, err)
	assert.Equal(t, float64(28*86400), got)
}

func TestToSeconds_MonthsAcrossDaylightSaving(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	// Sydney leaves daylight saving on 2 April 2017, so the wall-clock
	// month from 15 March to 15 April lasts an extra hour.
	now := time.Date(2017, 3, 15, 10, 0, 0, 0, sydney)
	got, err := unit.ToSeconds(1, unit.Months, now)
	require.NoError(t, err)
	assert.Equal(t, float64(31*86400+3600), got)
}

func TestToSeconds_MonthsRejectFractionalCount(t *testing.T) {
	now := time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := unit.ToSeconds(1.5, unit.Months, now)

	assert.ErrorIs(t, err, unit.ErrInvalidStep)
}

func TestToSeconds_UnknownUnit(t *testing.T) {
	now := time.Date(2021, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := unit.ToSeconds(1, unit.Unit(42), now)

	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
}

func TestParse_AllUnits(t *testing.T) {
	cases := map[string]unit.Unit{
		"seconds": unit.Seconds,
		"minutes": unit.Minutes,
		"hours":   unit.Hours,
		"days":    unit.Days,
		"weeks":   unit.Weeks,
		"months":  unit.Months,
	}
	for s, want := range cases {
		got, err := unit.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParse_SingularAndMixedCase(t *testing.T) {
	got, err := unit.Parse("Week")
	require.NoError(t, err)
	assert.Equal(t, unit.Weeks, got)

	got, err = unit.Parse("HOURS")
	require.NoError(t, err)
	assert.Equal(t, unit.Hours, got)
}

func TestParse_RejectsFortnights(t *testing.T) {
	_, err := unit.Parse("fortnights")

	assert.ErrorIs(t, err, unit.ErrInvalidUnit)
}

func TestUnit_Fixed(t *testing.T) {
	assert.True(t, unit.Seconds.Fixed())
	assert.True(t, unit.Weeks.Fixed())
	assert.False(t, unit.Months.Fixed())
	assert.False(t, unit.Unit(42).Fixed())
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "months", unit.Months.String())
	assert.Equal(t, "days", unit.Days.String())
}

func TestWhole(t *testing.T) {
	n, ok := unit.Whole(3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = unit.Whole(2.5)
	assert.False(t, ok)
}
