package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		dob  time.Time
		now  time.Time
		want int
	}{
		{name: "birthday today after a leap year dob", dob: day(2000, time.March, 1), now: day(2025, time.March, 1), want: 25},
		{name: "day before birthday", dob: day(2000, time.March, 1), now: day(2025, time.February, 28), want: 24},
		{name: "leap year now before birthday", dob: day(1999, time.March, 1), now: day(2024, time.February, 29), want: 24},
		{name: "leap day dob in a common year", dob: day(2004, time.February, 29), now: day(2025, time.March, 1), want: 21},
		{name: "leap day dob before it comes round", dob: day(2004, time.February, 29), now: day(2025, time.February, 28), want: 20},
		{name: "later month", dob: day(1990, time.June, 15), now: day(2025, time.December, 1), want: 35},
		{name: "zero dob", dob: time.Time{}, now: day(2025, time.March, 1), want: 0},
		{name: "future dob", dob: day(2030, time.January, 1), now: day(2025, time.March, 1), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ageAt(tt.dob, tt.now))
		})
	}
}
