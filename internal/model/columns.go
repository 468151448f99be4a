package model

// Canonical column names of the reservations export.
const (
	ColEventID               = "EventId"
	ColTitle                 = "Title"
	ColLocation              = "Location"
	ColDepartment            = "Department"
	ColEventDate             = "EventDate"
	ColStartTime             = "StartTime"
	ColEndTime               = "EndTime"
	ColIsAllDayEvent         = "IsAllDayEvent"
	ColIsTimedEvent          = "IsTimedEvent"
	ColEventType             = "EventType"
	ColContactName           = "ContactName"
	ColContactEmail          = "ContactEmail"
	ColContactPhone          = "ContactPhone"
	ColIsReOccurring         = "IsReOccurring"
	ColIsOnMultipleCalendars = "IsOnMultipleCalendars"
	ColStatus                = "Status"
	ColEventTypeName         = "EventTypeName"
)

// Column describes one canonical export column.
type Column struct {
	Name       string
	Required   bool // absence is a hard error
	Searchable bool // included in the free-text search
	Filterable bool // offered as a multi-select filter dimension
}

// AllColumns lists the canonical export columns in export order.
var AllColumns = []Column{
	{Name: ColEventID, Required: true},
	{Name: ColTitle, Searchable: true},
	{Name: ColLocation, Filterable: true},
	{Name: ColDepartment, Filterable: true},
	{Name: ColEventDate},
	{Name: ColStartTime},
	{Name: ColEndTime},
	{Name: ColIsAllDayEvent},
	{Name: ColIsTimedEvent},
	{Name: ColEventType},
	{Name: ColContactName, Searchable: true},
	{Name: ColContactEmail, Searchable: true},
	{Name: ColContactPhone},
	{Name: ColIsReOccurring},
	{Name: ColIsOnMultipleCalendars},
	{Name: ColStatus, Filterable: true},
	{Name: ColEventTypeName, Filterable: true},
}

// PreferredDisplayOrder is the column order for the detail view and the CSV
// export; columns not listed here follow in export order.
var PreferredDisplayOrder = []string{
	ColEventDate, ColStartTime, ColEndTime, ColTitle, ColLocation,
	ColDepartment, ColStatus, ColContactName, ColContactEmail,
	ColEventTypeName, ColEventID,
}

// ColumnNames returns the canonical column names in export order.
func ColumnNames() []string {
	names := make([]string, len(AllColumns))
	for i, c := range AllColumns {
		names[i] = c.Name
	}
	return names
}

// ColumnByName returns the Column for the given name, or ok=false.
func ColumnByName(name string) (Column, bool) {
	for _, c := range AllColumns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// SearchableColumns returns the names of columns covered by free-text search.
func SearchableColumns() []string {
	var names []string
	for _, c := range AllColumns {
		if c.Searchable {
			names = append(names, c.Name)
		}
	}
	return names
}
