package schedule

import "time"

// Interval is an ordered pair of instants with Start before End. It stands
// for a busy period, a candidate free slot, or a proposed event span.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two intervals share any time. Intervals that
// merely touch at a boundary do not overlap: a slot ending exactly when a
// busy period starts is free.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.Start.Before(o.End) && o.Start.Before(iv.End)
}

// Duration returns the interval's length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// conflictsWith returns every busy interval the candidate overlaps, in the
// busy set's own order. The busy set may contain overlapping entries; it is
// used as-is, never pre-merged.
func (iv Interval) conflictsWith(busy []Interval) []Interval {
	var conflicts []Interval
	for _, b := range busy {
		if iv.Overlaps(b) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// overlapsAny reports whether the candidate overlaps at least one busy
// interval. Same predicate as conflictsWith, without collecting.
func (iv Interval) overlapsAny(busy []Interval) bool {
	for _, b := range busy {
		if iv.Overlaps(b) {
			return true
		}
	}
	return false
}
