package atmalerts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielprats/atmalerts"
)

func TestDayKey(t *testing.T) {
	for _, tc := range []struct {
		name    string
		instant string
		key     string
		ok      bool
	}{
		{"rfc3339", "2025-03-10T08:30:00Z", "2025-03-10", true},
		{"offset normalized to utc", "2025-03-11T01:00:00+02:00", "2025-03-10", true},
		{"naive datetime taken as utc", "2025-03-10 23:59:59", "2025-03-10", true},
		{"naive t datetime", "2025-03-10T23:59:59", "2025-03-10", true},
		{"bare date", "2025-03-10", "2025-03-10", true},
		{"garbage", "next tuesday", "", false},
		{"blank", "", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := atmalerts.DayKey(tc.instant)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.key, key)
		})
	}
}

func TestDayRange(t *testing.T) {
	for _, tc := range []struct {
		name  string
		start string
		end   string
		days  []string
	}{
		{
			"single day",
			"2025-03-10", "2025-03-10",
			[]string{"2025-03-10"},
		},
		{
			"three consecutive days",
			"2025-03-10", "2025-03-12",
			[]string{"2025-03-10", "2025-03-11", "2025-03-12"},
		},
		{
			"instants collapse to their days",
			"2025-03-10T23:00:00Z", "2025-03-11T01:00:00Z",
			[]string{"2025-03-10", "2025-03-11"},
		},
		{
			"month boundary",
			"2025-02-27", "2025-03-02",
			[]string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"},
		},
		{
			"start after end",
			"2025-03-11", "2025-03-10",
			nil,
		},
		{
			"unparseable start",
			"not a date", "2025-03-10",
			nil,
		},
		{
			"unparseable end",
			"2025-03-10", "",
			nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.days, atmalerts.DayRange(tc.start, tc.end))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "not specified", atmalerts.FormatDate(""))
	assert.Equal(t, "invalid date", atmalerts.FormatDate("soon"))
	assert.Equal(t, "10/03/2025 08:30", atmalerts.FormatDate("2025-03-10T08:30:00Z"))
	assert.Equal(t, "10/03/2025 00:00", atmalerts.FormatDate("2025-03-10"))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "Active", atmalerts.FormatStatus("ACTIVE"))
	assert.Equal(t, "Active (old)", atmalerts.FormatStatus("ACTIVE_OLD"))
	assert.Equal(t, "Inactive", atmalerts.FormatStatus("INACTIVE"))
	assert.Equal(t, "WEIRD", atmalerts.FormatStatus("WEIRD"))
}
