package birthday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiazny/birthday-lambda/internal/pkg/birthday"
)

var now = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

func TestParseAdd(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    birthday.Birthday
		wantErr error
	}{
		{
			name: "year defaults to current year",
			text: "Alice on 5 May",
			want: birthday.Birthday{Person: "Alice", Date: "2024-05-05"},
		},
		{
			name: "explicit year and full month",
			text: "Jakob on 31 March 2021",
			want: birthday.Birthday{Person: "Jakob", Date: "2021-03-31"},
		},
		{
			name: "abbreviated month",
			text: "Jakob on 31 Mar",
			want: birthday.Birthday{Person: "Jakob", Date: "2024-03-31"},
		},
		{
			name: "multi word name",
			text: "Le P'tit Jesus on 25 Dec",
			want: birthday.Birthday{Person: "Le P'tit Jesus", Date: "2024-12-25"},
		},
		{
			name: "leap day in leap year",
			text: "Leo on 29 February",
			want: birthday.Birthday{Person: "Leo", Date: "2024-02-29"},
		},
		{
			name:    "missing on",
			text:    "Alice 5 May",
			wantErr: birthday.ErrSyntax,
		},
		{
			name:    "missing month name",
			text:    "Alice on 5",
			wantErr: birthday.ErrSyntax,
		},
		{
			name:    "lowercase month does not match grammar",
			text:    "Alice on 5 may",
			wantErr: birthday.ErrSyntax,
		},
		{
			name:    "impossible date",
			text:    "Alice on 31 February",
			wantErr: birthday.ErrInvalidDate,
		},
		{
			name:    "leap day outside leap year",
			text:    "Leo on 29 February 2023",
			wantErr: birthday.ErrInvalidDate,
		},
		{
			name:    "unknown month",
			text:    "Alice on 5 Smarch",
			wantErr: birthday.ErrInvalidDate,
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got, err := birthday.ParseAdd(tt.text, now)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, birthday.Birthday{}, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFind(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind birthday.QueryKind
		wantDate time.Time
		wantName string
	}{
		{
			name:     "full month",
			text:     "25 December",
			wantKind: birthday.ByDate,
			wantDate: time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "abbreviated month",
			text:     "1 Jan",
			wantKind: birthday.ByDate,
			wantDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "lowercase month",
			text:     " 7 july ",
			wantKind: birthday.ByDate,
			wantDate: time.Date(2024, time.July, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit year moves to current year",
			text:     "7 July 1990",
			wantKind: birthday.ByDate,
			wantDate: time.Date(2024, time.July, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "leap day with explicit year",
			text:     "29 February 2020",
			wantKind: birthday.ByDate,
			wantDate: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "name",
			text:     "ja",
			wantKind: birthday.ByName,
			wantName: "ja",
		},
		{
			name:     "name with digits",
			text:     "Agent 47",
			wantKind: birthday.ByName,
			wantName: "Agent 47",
		},
		{
			name:     "impossible date falls back to name",
			text:     "31 February",
			wantKind: birthday.ByName,
			wantName: "31 February",
		},
	}
	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got := birthday.ParseFind(tt.text, now)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantName, got.Name)
			if tt.wantKind == birthday.ByDate {
				assert.True(t, tt.wantDate.Equal(got.Date), "got %v, want %v", got.Date, tt.wantDate)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// 23:30 UTC on the 9th is already the 10th in Paris.
	instant := time.Date(2024, time.June, 9, 23, 30, 0, 0, time.UTC)

	start, end := birthday.DayBounds(instant, paris)

	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, paris), start)
	assert.Equal(t, time.Date(2024, time.June, 10, 23, 59, 59, int(999*time.Millisecond), paris), end)
}
