package schedule

import (
	"strconv"
	"strings"

	"dtek-shutdowns-monitor/internal/models"
)

// UnknownQueue is reported when the house has no queue assignment.
const UnknownQueue = "Невідомо"

// daySeconds is what the source adds to a day key to address the next
// day. The keys behave like day-granularity epoch seconds; the unit is
// inferred from usage, not documented.
const daySeconds = 86400

// Response is the decoded body of the shutdowns ajax call.
type Response struct {
	Data map[string]HouseInfo `json:"data"`
	Fact Fact                 `json:"fact"`
}

// HouseInfo carries the queue assignment for one house.
type HouseInfo struct {
	SubTypeReason []string `json:"sub_type_reason"`
}

// Fact holds the published schedules keyed by day, then queue, then
// hour label "1".."24".
type Fact struct {
	Today int64                                   `json:"today"`
	Data  map[string]map[string]map[string]string `json:"data"`
}

// NextDayKey returns the day key addressing the day after the given one.
func NextDayKey(today int64) int64 {
	return today + daySeconds
}

// Queue resolves the outage queue assigned to a house. A house with no
// assignment yields the "unknown" placeholder; schedule lookups then
// simply find nothing.
func (r *Response) Queue(house string) string {
	info, ok := r.Data[house]
	if !ok || len(info.SubTypeReason) == 0 {
		return UnknownQueue
	}
	return strings.Join(info.SubTypeReason, ", ")
}

// TodaySchedule extracts the queue's schedule for the current day.
// A missing day key or queue entry reads as a day with no outages, the
// same as an empty schedule.
func (r *Response) TodaySchedule(queue string) models.DaySchedule {
	day := models.DaySchedule{HasData: true}
	if r.Fact.Today == 0 {
		return day
	}
	hours, ok := r.dayHours(r.Fact.Today, queue)
	if !ok {
		return day
	}
	day.Intervals = Intervals(BuildTimeline(hours))
	return day
}

// TomorrowSchedule extracts the queue's schedule for the next day.
// Until the source publishes it, HasData is false and the report shows
// a pending notice instead of "no outages".
func (r *Response) TomorrowSchedule(queue string) models.DaySchedule {
	if r.Fact.Today == 0 {
		return models.DaySchedule{}
	}
	hours, ok := r.dayHours(NextDayKey(r.Fact.Today), queue)
	if !ok {
		return models.DaySchedule{}
	}
	return models.DaySchedule{
		Intervals: Intervals(BuildTimeline(hours)),
		HasData:   true,
	}
}

func (r *Response) dayHours(key int64, queue string) (map[string]string, bool) {
	day, ok := r.Fact.Data[strconv.FormatInt(key, 10)]
	if !ok {
		return nil, false
	}
	hours, ok := day[queue]
	return hours, ok
}
