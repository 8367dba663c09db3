package models

// SlotStatus is the power state of one half-hour slot of a day.
type SlotStatus string

const (
	SlotOn       SlotStatus = "on"
	SlotOff      SlotStatus = "off"
	SlotPossible SlotStatus = "possible"
	SlotUnknown  SlotStatus = "unknown"
)

// Interval is a maximal run of slots sharing one reported status.
// Start and End are "HH:MM" clock strings; End is exclusive, so a run
// reaching the end of the day closes at "24:00".
type Interval struct {
	Start string
	End   string
	Kind  SlotStatus
}

// DaySchedule is the outage plan extracted for a single day.
// HasData is false when the source has not published that day yet.
type DaySchedule struct {
	Intervals []Interval
	HasData   bool
}

// SavedMessage is the persisted record of the last delivered report message.
type SavedMessage struct {
	MessageID int   `json:"message_id"`
	Date      int64 `json:"date"`
}
