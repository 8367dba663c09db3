package schedule

import (
	"fmt"
	"sort"
	"strconv"

	"dtek-shutdowns-monitor/internal/models"
)

// SlotsPerDay is the number of half-hour slots in one day.
const SlotsPerDay = 48

// Timeline holds the power state of every half-hour slot of a day,
// index 0 = 00:00-00:30, index 47 = 23:30-24:00.
type Timeline [SlotsPerDay]models.SlotStatus

// BuildTimeline maps the source's per-hour status codes onto half-hour
// slots. Keys are hour labels "1".."24" (hour 1 = 00:00-01:00). Every
// slot starts as "on"; an absent or unrecognized code marks both halves
// of its hour as "unknown".
func BuildTimeline(hours map[string]string) Timeline {
	var tl Timeline
	for i := range tl {
		tl[i] = models.SlotOn
	}
	for h := 1; h <= 24; h++ {
		first, second := splitHourCode(hours[strconv.Itoa(h)])
		tl[(h-1)*2] = first
		tl[(h-1)*2+1] = second
	}
	return tl
}

// splitHourCode resolves one hour code into the states of its two
// half-hour slots. The "first"/"second" family encodes split hours.
func splitHourCode(code string) (first, second models.SlotStatus) {
	switch code {
	case "no":
		return models.SlotOff, models.SlotOff
	case "yes":
		return models.SlotOn, models.SlotOn
	case "first":
		return models.SlotOff, models.SlotOn
	case "second":
		return models.SlotOn, models.SlotOff
	case "maybe":
		return models.SlotPossible, models.SlotPossible
	case "mfirst":
		return models.SlotPossible, models.SlotOn
	case "msecond":
		return models.SlotOn, models.SlotPossible
	default:
		return models.SlotUnknown, models.SlotUnknown
	}
}

// Intervals collapses a timeline into outage intervals: all "off" runs,
// then all "possible" runs, stable-sorted by start time. "on" and
// "unknown" slots never produce intervals.
func Intervals(tl Timeline) []models.Interval {
	intervals := mergeRuns(tl, models.SlotOff)
	intervals = append(intervals, mergeRuns(tl, models.SlotPossible)...)
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
	return intervals
}

// mergeRuns scans the timeline left to right and emits one interval per
// maximal run of the target kind.
func mergeRuns(tl Timeline, kind models.SlotStatus) []models.Interval {
	var intervals []models.Interval
	for i := 0; i < SlotsPerDay; {
		if tl[i] != kind {
			i++
			continue
		}
		j := i + 1
		for j < SlotsPerDay && tl[j] == kind {
			j++
		}
		intervals = append(intervals, models.Interval{
			Start: slotTime(i),
			End:   slotTime(j),
			Kind:  kind,
		})
		i = j
	}
	return intervals
}

// slotTime renders a slot boundary as "HH:MM". Index 48 is the
// exclusive end of day, "24:00".
func slotTime(index int) string {
	if index < 0 {
		index = 0
	}
	if index > SlotsPerDay {
		index = SlotsPerDay
	}
	minute := "00"
	if index%2 != 0 {
		minute = "30"
	}
	return fmt.Sprintf("%02d:%s", index/2, minute)
}
