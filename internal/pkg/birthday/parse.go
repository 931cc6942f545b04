package birthday

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	ErrSyntax      = errors.New(`wrong syntax, please use "Name" on "Date"`)
	ErrInvalidDate = errors.New("date is not valid")
)

// addPattern matches "<name> on <day> <Month> [<year>]", e.g. "Jakob on 31 March 2021"
// or "Jakob on 31 Mar".
var addPattern = regexp.MustCompile(`(.+)\s+on\s+(\d\d?)\s+([A-Z][a-z]+)\s*(\d{4})?`)

var (
	dateLayouts = []string{"2 January 2006", "2 Jan 2006"}
	yearFormat  = "2006"
)

// ParseAdd reads an add command. The year defaults to the one of now; it is
// only kept because the stored event needs a first occurrence.
func ParseAdd(text string, now time.Time) (Birthday, error) {
	match := addPattern.FindStringSubmatch(text)
	if match == nil {
		return Birthday{}, ErrSyntax
	}

	person := strings.TrimSpace(match[1])
	year := match[4]
	if year == "" {
		year = now.Format(yearFormat)
	}

	value := fmt.Sprintf("%s %s %s", match[2], match[3], year)

	date, err := parseDate(value, now.Location())
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}

	return Birthday{
		Person: person,
		Date:   date.Format(DateLayout),
	}, nil
}

type QueryKind int

const (
	ByName QueryKind = iota
	ByDate
)

// FindQuery is what a find command asks for: a date when the text reads as
// one, a name otherwise.
type FindQuery struct {
	Kind QueryKind
	Date time.Time
	Name string
}

// ParseFind tries the date grammar first and falls back to a name search.
// Dates always land in now's year and location: birthdays recur yearly, so
// an explicit year only names the day and month.
func ParseFind(text string, now time.Time) FindQuery {
	text = strings.TrimSpace(text)

	candidates := []string{text + " " + now.Format(yearFormat), text}
	for _, candidate := range candidates {
		date, err := parseDate(candidate, now.Location())
		if err == nil {
			return FindQuery{Kind: ByDate, Date: inYear(date, now.Year())}
		}
	}

	return FindQuery{Kind: ByName, Name: text}
}

// DayBounds returns the first and last instant of day in loc.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	day = day.In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)

	return start, end
}

// inYear moves date to year. A 29 February that the year lacks is kept as is.
func inYear(date time.Time, year int) time.Time {
	moved := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if moved.Month() != date.Month() {
		return date
	}

	return moved
}

func parseDate(value string, loc *time.Location) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var date time.Time
		date, err = time.ParseInLocation(layout, value, loc)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, err
}
