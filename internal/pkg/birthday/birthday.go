package birthday

import (
	"context"
	"math/rand"
	"slices"
	"strings"
	"time"
)

const (
	// DateLayout is how a birthday's date is stored in the calendar.
	DateLayout = "2006-01-02"

	// DayLayout renders a date the way it is shown in chat, e.g. "25 December".
	DayLayout = "2 January"

	listSeparator = " · "
)

var emojis = []string{"🎂", "🥳", "🍾", "🥂", "🎇", "🎉", "🎁"}

// RandomEmoji picks a decorative emoji for a list entry.
var RandomEmoji = func() string {
	return emojis[rand.Intn(len(emojis))]
}

type Birthday struct {
	Person string
	Date   string
}

// Day returns the year-agnostic rendering of the date, falling back to the
// raw value when it does not parse.
func (b Birthday) Day() string {
	t, err := time.Parse(DateLayout, b.Date)
	if err != nil {
		return b.Date
	}

	return t.Format(DayLayout)
}

// Query bounds a calendar lookup. Zero times leave that side open and a zero
// MaxItems returns every record.
type Query struct {
	TimeMin  time.Time
	TimeMax  time.Time
	MaxItems int64
}

type Store interface {
	List(ctx context.Context, query Query) ([]Birthday, error)
	Insert(ctx context.Context, b Birthday) error
}

// SortByPerson orders birthdays by name, ignoring case.
func SortByPerson(birthdays []Birthday) {
	slices.SortStableFunc(birthdays, func(a, b Birthday) int {
		return strings.Compare(strings.ToUpper(a.Person), strings.ToUpper(b.Person))
	})
}

// FilterByName keeps the birthdays whose person contains name, ignoring case.
func FilterByName(birthdays []Birthday, name string) []Birthday {
	needle := strings.ToLower(name)
	matched := make([]Birthday, 0)

	for _, b := range birthdays {
		if strings.Contains(strings.ToLower(b.Person), needle) {
			matched = append(matched, b)
		}
	}

	return matched
}

// JoinNames bolds each person and joins them: "*A*", "*A* and *B*" or
// "*A*, *B*, *C*".
func JoinNames(birthdays []Birthday) string {
	names := make([]string, 0, len(birthdays))
	for _, b := range birthdays {
		names = append(names, "*"+b.Person+"*")
	}

	if len(names) == 2 {
		return strings.Join(names, " and ")
	}

	return strings.Join(names, ", ")
}

// FormatList renders one "<emoji> <day>: <person>" entry per birthday.
func FormatList(birthdays []Birthday) string {
	entries := make([]string, 0, len(birthdays))
	for _, b := range birthdays {
		entries = append(entries, RandomEmoji()+" "+b.Day()+": "+b.Person)
	}

	return strings.Join(entries, listSeparator)
}
