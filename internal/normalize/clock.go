package normalize

import (
	"strings"
	"time"

	"github.com/campusops/resdash/internal/model"
)

// Clock formats seen in reservation exports. The 12-hour forms cover the
// export's native "9:00AM"; the 24-hour form shows up in hand-edited files.
var clockFormats = []string{
	"3:04PM",
	"3:04 PM",
	"03:04PM",
	"15:04",
	"15:04:05",
}

// ParseClock parses a time of day. The meridiem is matched case-insensitively
// and hours need no leading zero. Returns nil if the input is empty or
// unparseable.
func ParseClock(s string) *model.Clock {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	for _, f := range clockFormats {
		if t, err := time.Parse(f, s); err == nil {
			return &model.Clock{Hour: t.Hour(), Minute: t.Minute()}
		}
	}
	return nil
}
