// mkfixture generates a synthetic reservations export for tests and demos.
// It writes the same rows as CSV and/or Parquet, including a few rows with
// midnight-crossing times, all-day flags, and unparsable cells.
// Usage: go run ./cmd/mkfixture --csv testdata/reservations.csv --rows 200
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/campusops/resdash/internal/model"
)

var locations = []string{
	"Library 201", "Library 202", "Union Ballroom A", "Union Ballroom B",
	"Science 14", "Science 120", "Rec Center Court 1", "Boardroom",
}

var departments = []string{
	"Student Life", "Engineering", "Physics", "Athletics",
	"Career Services", "Facilities", "Alumni Relations",
}

var eventTypes = []string{"Meeting", "Lab", "Fair", "Practice", "Lecture"}

var contacts = []struct{ name, email string }{
	{"Ada Lovelace", "ada@example.edu"},
	{"Grace Hopper", "grace@example.edu"},
	{"Lin Chen", "lin@example.edu"},
	{"Sam Ortiz", "sam@example.edu"},
}

func main() {
	csvOut := flag.String("csv", "", "CSV output path (empty to skip)")
	parquetOut := flag.String("parquet", "", "Parquet output path (empty to skip)")
	rows := flag.Int("rows", 200, "number of rows to generate")
	seed := flag.Int("seed", 1, "random seed")
	flag.Parse()

	if *csvOut == "" && *parquetOut == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: pass --csv and/or --parquet")
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(int64(*seed)))
	records := generate(rng, *rows)

	if *csvOut != "" {
		if err := writeCSV(*csvOut, records); err != nil {
			fmt.Fprintf(os.Stderr, "write csv: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(records), *csvOut)
	}
	if *parquetOut != "" {
		if err := writeParquet(*parquetOut, records); err != nil {
			fmt.Fprintf(os.Stderr, "write parquet: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(records), *parquetOut)
	}
}

func generate(rng *rand.Rand, n int) []model.RawRecord {
	out := make([]model.RawRecord, n)
	for i := range out {
		contact := contacts[rng.Intn(len(contacts))]
		eventType := eventTypes[rng.Intn(len(eventTypes))]

		// Dates spread over a September..November term.
		month := 9 + rng.Intn(3)
		day := 1 + rng.Intn(28)
		startHour := 7 + rng.Intn(14)
		duration := 1 + rng.Intn(3)

		rec := model.RawRecord{
			EventID:       fmt.Sprintf("%d", 1000+i),
			Title:         fmt.Sprintf("%s %d", eventType, i),
			Location:      locations[rng.Intn(len(locations))],
			Department:    departments[rng.Intn(len(departments))],
			EventDate:     fmt.Sprintf("%d/%d/2025", month, day),
			StartTime:     clockString(startHour, 0),
			EndTime:       clockString((startHour+duration)%24, 0),
			IsAllDayEvent: "False",
			IsTimedEvent:  "True",
			EventType:     eventType,
			ContactName:   contact.name,
			ContactEmail:  contact.email,
			ContactPhone:  fmt.Sprintf("555-%04d", rng.Intn(10000)),
			IsReOccurring: "False",
			Status:        "Active",
			EventTypeName: eventType,
		}
		rec.IsOnMultipleCalendars = "False"

		switch {
		case i%17 == 0:
			// Late session crossing midnight.
			rec.StartTime = "11:30PM"
			rec.EndTime = "12:30AM"
		case i%23 == 0:
			rec.IsAllDayEvent = "True"
			rec.IsTimedEvent = "False"
			rec.StartTime = ""
			rec.EndTime = ""
		case i%31 == 0:
			// The occasional hand-mangled row.
			rec.EventDate = "sometime in fall"
			rec.StartTime = "morning"
		case i%13 == 0:
			rec.Status = "Cancelled"
		}
		out[i] = rec
	}
	return out
}

func clockString(hour, minute int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	mer := "AM"
	if hour >= 12 {
		mer = "PM"
	}
	return fmt.Sprintf("%d:%02d%s", h, minute, mer)
}

func writeCSV(path string, records []model.RawRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := model.ColumnNames()
	if err := w.Write(cols); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for i := range records {
		for j, col := range cols {
			row[j] = records[i].Field(col)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeParquet(path string, records []model.RawRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := goparquet.NewGenericWriter[model.RawRecord](f)
	if _, err := w.Write(records); err != nil {
		f.Close()
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
