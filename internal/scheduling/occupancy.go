package scheduling

import "sort"

type interval struct {
	start int
	end   int
}

// OccupancyTracker holds the occupied intervals of a single civil day and
// answers conflict queries. It is built fresh for every planning call.
// Pre-existing intervals are trusted as-is: no merging, no validation.
type OccupancyTracker struct {
	intervals []interval // sorted by start
}

// NewOccupancyTracker keeps only the busy intervals that fall on the target
// date. Filtering happens here so callers can hand over their full event list.
func NewOccupancyTracker(busy []BusyInterval, date string) *OccupancyTracker {
	t := &OccupancyTracker{}
	for _, b := range busy {
		if b.Date != date {
			continue
		}
		t.Insert(b.StartMinute, b.EndMinute)
	}
	return t
}

// Conflicts reports whether [start, end) strictly overlaps any occupied
// interval. Intervals that only touch at an endpoint do not conflict.
func (t *OccupancyTracker) Conflicts(start, end int) bool {
	for _, iv := range t.intervals {
		if start < iv.end && iv.start < end {
			return true
		}
	}
	return false
}

// Insert adds [start, end), keeping the list sorted by start minute.
func (t *OccupancyTracker) Insert(start, end int) {
	i := sort.Search(len(t.intervals), func(j int) bool {
		return t.intervals[j].start > start
	})
	t.intervals = append(t.intervals, interval{})
	copy(t.intervals[i+1:], t.intervals[i:])
	t.intervals[i] = interval{start: start, end: end}
}

// Len returns the number of tracked intervals.
func (t *OccupancyTracker) Len() int {
	return len(t.intervals)
}
