package model

import (
	"fmt"
	"time"
)

// RawRecord mirrors one row of the reservations export. Every field is the
// string the export carried; typing happens during normalization. The parquet
// tags double as the schema for Parquet-format exports of the same data.
type RawRecord struct {
	EventID               string `parquet:"EventId"`
	Title                 string `parquet:"Title"`
	Location              string `parquet:"Location"`
	Department            string `parquet:"Department"`
	EventDate             string `parquet:"EventDate"`
	StartTime             string `parquet:"StartTime"`
	EndTime               string `parquet:"EndTime"`
	IsAllDayEvent         string `parquet:"IsAllDayEvent"`
	IsTimedEvent          string `parquet:"IsTimedEvent"`
	EventType             string `parquet:"EventType"`
	ContactName           string `parquet:"ContactName"`
	ContactEmail          string `parquet:"ContactEmail"`
	ContactPhone          string `parquet:"ContactPhone"`
	IsReOccurring         string `parquet:"IsReOccurring"`
	IsOnMultipleCalendars string `parquet:"IsOnMultipleCalendars"`
	Status                string `parquet:"Status"`
	EventTypeName         string `parquet:"EventTypeName"`
}

// Field returns the raw value for a canonical column name.
func (r *RawRecord) Field(name string) string {
	switch name {
	case ColEventID:
		return r.EventID
	case ColTitle:
		return r.Title
	case ColLocation:
		return r.Location
	case ColDepartment:
		return r.Department
	case ColEventDate:
		return r.EventDate
	case ColStartTime:
		return r.StartTime
	case ColEndTime:
		return r.EndTime
	case ColIsAllDayEvent:
		return r.IsAllDayEvent
	case ColIsTimedEvent:
		return r.IsTimedEvent
	case ColEventType:
		return r.EventType
	case ColContactName:
		return r.ContactName
	case ColContactEmail:
		return r.ContactEmail
	case ColContactPhone:
		return r.ContactPhone
	case ColIsReOccurring:
		return r.IsReOccurring
	case ColIsOnMultipleCalendars:
		return r.IsOnMultipleCalendars
	case ColStatus:
		return r.Status
	case ColEventTypeName:
		return r.EventTypeName
	}
	return ""
}

// SetField assigns the raw value for a canonical column name. Unknown names
// are ignored so readers can skip columns the schema does not carry.
func (r *RawRecord) SetField(name, value string) {
	switch name {
	case ColEventID:
		r.EventID = value
	case ColTitle:
		r.Title = value
	case ColLocation:
		r.Location = value
	case ColDepartment:
		r.Department = value
	case ColEventDate:
		r.EventDate = value
	case ColStartTime:
		r.StartTime = value
	case ColEndTime:
		r.EndTime = value
	case ColIsAllDayEvent:
		r.IsAllDayEvent = value
	case ColIsTimedEvent:
		r.IsTimedEvent = value
	case ColEventType:
		r.EventType = value
	case ColContactName:
		r.ContactName = value
	case ColContactEmail:
		r.ContactEmail = value
	case ColContactPhone:
		r.ContactPhone = value
	case ColIsReOccurring:
		r.IsReOccurring = value
	case ColIsOnMultipleCalendars:
		r.IsOnMultipleCalendars = value
	case ColStatus:
		r.Status = value
	case ColEventTypeName:
		r.EventTypeName = value
	}
}

// Clock is a time of day with minute precision, independent of any date.
type Clock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String renders the clock in the export's 12-hour form, e.g. "9:00AM".
func (c Clock) String() string {
	h := c.Hour % 12
	if h == 0 {
		h = 12
	}
	mer := "AM"
	if c.Hour >= 12 {
		mer = "PM"
	}
	return fmt.Sprintf("%d:%02d%s", h, c.Minute, mer)
}

// Record is one reservation after normalization: the raw row plus typed and
// derived fields. Derived pointers are nil when the underlying raw value was
// absent or unparsable; the record itself is always kept.
type Record struct {
	Raw RawRecord

	// EventDate is the calendar date at UTC midnight, nil when unparsable.
	EventDate *time.Time
	StartTime *Clock
	EndTime   *Clock

	// StartHour is StartTime's hour (0-23), nil iff StartTime is nil.
	StartHour *int
	// DayOfWeek is the full weekday name, empty iff EventDate is nil.
	DayOfWeek string
	// AllDay reports whether the export flagged this reservation all-day.
	AllDay bool

	// StartInstant and EndInstant combine EventDate with the respective
	// clock. Each is nil unless both the date and that clock parsed.
	// EndInstant is advanced one calendar day when the end clock precedes
	// the start clock, for reservations running past midnight.
	StartInstant *time.Time
	EndInstant   *time.Time
}
