package tzoffset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		seconds int
	}{
		{name: "UTC", input: "UTC+00:00", seconds: 0},
		{name: "Positive offset", input: "UTC+08:00", seconds: 8 * 3600},
		{name: "Negative offset", input: "UTC-05:00", seconds: -5 * 3600},
		{name: "Half-hour offset", input: "UTC+05:30", seconds: 5*3600 + 1800},
		{name: "Lowercase utc", input: "utc+09:00", seconds: 9 * 3600},
		{name: "Maximum offset", input: "UTC+14:00", seconds: 14 * 3600},
		{name: "Minimum offset", input: "UTC-14:00", seconds: -14 * 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Parse(tt.input)
			require.NoError(t, err)

			_, offset := time.Date(2023, 9, 1, 0, 0, 0, 0, loc).Zone()
			assert.Equal(t, tt.seconds, offset)
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"UTC",
		"UTC+08",
		"UTC+8:00",
		"UTC+08:0",
		"UTC 08:00",
		"UTC+08.00",
		"UTC+aa:bb",
		"GMT+08:00",
		"UTC+08:60",
		"UTC+15:00",
		"UTC-14:01",
		"+08:00",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}
