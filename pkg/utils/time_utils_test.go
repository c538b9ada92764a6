package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "24h morning", in: "09:30", want: 570},
		{name: "24h single digit hour", in: "9:30", want: 570},
		{name: "24h afternoon", in: "21:15", want: 1275},
		{name: "24h midnight", in: "00:00", want: 0},
		{name: "12h morning", in: "9:30 AM", want: 570},
		{name: "12h afternoon", in: "9:15 PM", want: 1275},
		{name: "12h noon", in: "12:00 PM", want: 720},
		{name: "12h midnight", in: "12:00 AM", want: 0},
		{name: "12h lowercase", in: "9:30 am", want: 570},
		{name: "12h no space", in: "9:30PM", want: 1290},
		{name: "surrounding whitespace", in: "  14:05  ", want: 845},
		{name: "empty", in: "", want: UnparseableTimeKey},
		{name: "prose", in: "after lunch", want: UnparseableTimeKey},
		{name: "hour out of range", in: "25:00", want: UnparseableTimeKey},
		{name: "minute out of range", in: "10:75", want: UnparseableTimeKey},
		{name: "12h hour zero", in: "0:30 AM", want: UnparseableTimeKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClockMinutes(tt.in))
		})
	}
}

func TestClockMinutesOrdersUnparseableLast(t *testing.T) {
	assert.Greater(t, ClockMinutes("whenever"), ClockMinutes("23:59"))
}
