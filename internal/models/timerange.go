package models

import "fmt"

// TimeRange is the reporting window as a fixed day-count enumeration.
type TimeRange int

// The closed set of selectable reporting windows.
const (
	TimeRange1Day   TimeRange = 1
	TimeRange7Days  TimeRange = 7
	TimeRange30Days TimeRange = 30
	TimeRange90Days TimeRange = 90
)

// TimeRanges lists the selectable windows in cycle order.
var TimeRanges = []TimeRange{TimeRange1Day, TimeRange7Days, TimeRange30Days, TimeRange90Days}

// Days returns the window length in trailing days.
func (r TimeRange) Days() int {
	return int(r)
}

// IsValid reports whether the range is one of the selectable windows.
func (r TimeRange) IsValid() bool {
	switch r {
	case TimeRange1Day, TimeRange7Days, TimeRange30Days, TimeRange90Days:
		return true
	}
	return false
}

// Next cycles to the following window, wrapping around.
func (r TimeRange) Next() TimeRange {
	for i, tr := range TimeRanges {
		if tr == r {
			return TimeRanges[(i+1)%len(TimeRanges)]
		}
	}
	return TimeRanges[0]
}

// String returns a short display label like "7d".
func (r TimeRange) String() string {
	return fmt.Sprintf("%dd", int(r))
}

// TimeRangeFromDays maps a day count to a TimeRange, falling back to 7 days
// when the count is not one of the selectable windows.
func TimeRangeFromDays(days int) TimeRange {
	r := TimeRange(days)
	if !r.IsValid() {
		return TimeRange7Days
	}
	return r
}
