package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/adiazny/birthday-lambda/internal/pkg/birthday"
)

const yearlyRecurrence = "RRULE:FREQ=YEARLY"

type Config struct {
	CalendarID string
}

// Client stores birthdays as yearly all-day events of a single Google calendar.
type Client struct {
	Log     *logrus.Entry
	Config  Config
	Service *gcal.Service
}

// NewService authenticates with a service account key. Token requests go
// through httpClient so they share its timeout.
func NewService(ctx context.Context, credentialsJSON []byte, httpClient *http.Client) (*gcal.Service, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, gcal.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("error parsing google credentials %w", err)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	service, err := gcal.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("error creating calendar service %w", err)
	}

	return service, nil
}

func (client *Client) List(ctx context.Context, query birthday.Query) ([]birthday.Birthday, error) {
	call := client.Service.Events.List(client.Config.CalendarID).Context(ctx)

	if !query.TimeMin.IsZero() {
		call = call.TimeMin(query.TimeMin.Format(time.RFC3339))
	}

	if !query.TimeMax.IsZero() {
		call = call.TimeMax(query.TimeMax.Format(time.RFC3339))
	}

	birthdays := make([]birthday.Birthday, 0)

	if query.MaxItems > 0 {
		events, err := call.MaxResults(query.MaxItems).Do()
		if err != nil {
			return nil, fmt.Errorf("error listing calendar events %w", err)
		}

		birthdays = appendBirthdays(birthdays, events.Items)
	} else {
		err := call.Pages(ctx, func(events *gcal.Events) error {
			birthdays = appendBirthdays(birthdays, events.Items)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error listing calendar events %w", err)
		}
	}

	client.Log.WithField("count", len(birthdays)).Debug("listed birthdays")

	return birthdays, nil
}

func (client *Client) Insert(ctx context.Context, b birthday.Birthday) error {
	start, err := time.Parse(birthday.DateLayout, b.Date)
	if err != nil {
		return fmt.Errorf("error parsing birthday date %w", err)
	}

	event := &gcal.Event{
		Summary:    b.Person,
		Recurrence: []string{yearlyRecurrence},
		Start: &gcal.EventDateTime{
			Date: start.Format(birthday.DateLayout),
		},
		End: &gcal.EventDateTime{
			Date: start.AddDate(0, 0, 1).Format(birthday.DateLayout),
		},
	}

	created, err := client.Service.Events.Insert(client.Config.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("error inserting calendar event for %s %w", b.Person, err)
	}

	client.Log.WithFields(logrus.Fields{"event_id": created.Id, "person": b.Person}).Info("added birthday")

	return nil
}

func appendBirthdays(birthdays []birthday.Birthday, events []*gcal.Event) []birthday.Birthday {
	for _, event := range events {
		if event.Start == nil {
			continue
		}

		date := event.Start.Date
		if date == "" && len(event.Start.DateTime) >= len(birthday.DateLayout) {
			date = event.Start.DateTime[:len(birthday.DateLayout)]
		}

		birthdays = append(birthdays, birthday.Birthday{
			Person: event.Summary,
			Date:   date,
		})
	}

	return birthdays
}
