package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	slot := Interval{Start: at(10, 0), End: at(11, 0)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{at(10, 0), at(11, 0)}, true},
		{"starts inside", Interval{at(10, 30), at(11, 30)}, true},
		{"ends inside", Interval{at(9, 30), at(10, 30)}, true},
		{"contains", Interval{at(9, 0), at(12, 0)}, true},
		{"contained", Interval{at(10, 15), at(10, 45)}, true},
		{"touches end", Interval{at(11, 0), at(12, 0)}, false},
		{"touches start", Interval{at(9, 0), at(10, 0)}, false},
		{"disjoint", Interval{at(13, 0), at(14, 0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(slot, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, slot), "overlap must be symmetric")
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	day := Interval{Start: at(8, 0), End: at(17, 0)}

	assert.True(t, day.Contains(Interval{at(8, 0), at(9, 0)}))
	assert.True(t, day.Contains(Interval{at(16, 0), at(17, 0)}))
	assert.False(t, day.Contains(Interval{at(16, 30), at(17, 30)}))
}

func TestInterval_Valid(t *testing.T) {
	assert.True(t, NewInterval(at(8, 0), time.Hour).Valid())
	assert.False(t, Interval{at(8, 0), at(8, 0)}.Valid())
	assert.Equal(t, time.Hour, NewInterval(at(8, 0), time.Hour).Duration())
}
