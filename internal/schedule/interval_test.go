package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalOverlaps(t *testing.T) {
	busy := mustInterval("2025-11-28T09:00", "2025-11-28T10:00")

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{
			name:      "fully inside busy",
			candidate: mustInterval("2025-11-28T09:15", "2025-11-28T09:45"),
			want:      true,
		},
		{
			name:      "identical to busy",
			candidate: mustInterval("2025-11-28T09:00", "2025-11-28T10:00"),
			want:      true,
		},
		{
			name:      "straddles busy start",
			candidate: mustInterval("2025-11-28T08:30", "2025-11-28T09:30"),
			want:      true,
		},
		{
			name:      "straddles busy end",
			candidate: mustInterval("2025-11-28T09:30", "2025-11-28T10:30"),
			want:      true,
		},
		{
			name:      "contains busy",
			candidate: mustInterval("2025-11-28T08:00", "2025-11-28T11:00"),
			want:      true,
		},
		{
			name:      "ends exactly at busy start",
			candidate: mustInterval("2025-11-28T08:30", "2025-11-28T09:00"),
			want:      false,
		},
		{
			name:      "starts exactly at busy end",
			candidate: mustInterval("2025-11-28T10:00", "2025-11-28T10:30"),
			want:      false,
		},
		{
			name:      "well before",
			candidate: mustInterval("2025-11-28T07:00", "2025-11-28T08:00"),
			want:      false,
		},
		{
			name:      "well after",
			candidate: mustInterval("2025-11-28T11:00", "2025-11-28T12:00"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(busy))
			// The predicate is symmetric.
			assert.Equal(t, tt.want, busy.Overlaps(tt.candidate))
		})
	}
}

func TestIntervalConflictsWith(t *testing.T) {
	busy := []Interval{
		mustInterval("2025-11-28T09:00", "2025-11-28T10:00"),
		mustInterval("2025-11-28T09:30", "2025-11-28T11:00"), // overlaps the first; kept un-merged
		mustInterval("2025-11-28T14:00", "2025-11-28T15:00"),
	}

	candidate := mustInterval("2025-11-28T09:45", "2025-11-28T10:15")
	conflicts := candidate.conflictsWith(busy)
	assert.Len(t, conflicts, 2)
	assert.Equal(t, busy[0], conflicts[0])
	assert.Equal(t, busy[1], conflicts[1])

	free := mustInterval("2025-11-28T12:00", "2025-11-28T13:00")
	assert.Empty(t, free.conflictsWith(busy))
	assert.False(t, free.overlapsAny(busy))
}

func TestIntervalDuration(t *testing.T) {
	iv := mustInterval("2025-11-28T09:00", "2025-11-28T10:30")
	assert.Equal(t, 90, int(iv.Duration().Minutes()))
}
