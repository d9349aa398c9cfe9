package durationstring

import "time"

// Year is a 365.2425-day year rounded to whole seconds. It does not track
// leap seconds or calendar years.
const Year = 31_556_926 * time.Second

const (
	// Day is 24 hours, ignoring daylight saving transitions.
	Day = 24 * time.Hour
	// Week is 7 days.
	Week = 7 * Day
)

type unit struct {
	suffix string
	size   uint64
}

// units is ordered from the largest to the smallest magnitude. Format relies
// on this order to pick the coarsest exact unit.
var units = []unit{
	{"y", uint64(Year)},
	{"w", uint64(Week)},
	{"d", uint64(Day)},
	{"h", uint64(time.Hour)},
	{"m", uint64(time.Minute)},
	{"s", uint64(time.Second)},
	{"ms", uint64(time.Millisecond)},
	{"us", uint64(time.Microsecond)},
	{"ns", uint64(time.Nanosecond)},
}

func lookupUnit(suffix string) (uint64, bool) {
	for _, u := range units {
		if u.suffix == suffix {
			return u.size, true
		}
	}
	return 0, false
}

// Units returns the recognized unit suffixes, largest first.
func Units() []string {
	suffixes := make([]string, len(units))
	for i, u := range units {
		suffixes[i] = u.suffix
	}
	return suffixes
}
