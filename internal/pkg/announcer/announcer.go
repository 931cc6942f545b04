package announcer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/adiazny/birthday-lambda/internal/pkg/birthday"
	"github.com/adiazny/birthday-lambda/internal/pkg/clock"
)

const (
	imageAltText = "Birthday GIF"
	imageTitle   = "If you know them, let them know you know! 😉"
)

type ImageSource interface {
	RandomImageURL(ctx context.Context) (string, error)
}

type Poster interface {
	Post(ctx context.Context, url string, blocks []slack.Block) error
}

type Notifier interface {
	Publish(ctx context.Context, message string) error
}

// Response is what the scheduled lambda returns: empty on success.
type Response struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Body       string `json:"body,omitempty"`
}

func Failure(err error) Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: err.Error()}
}

type Announcer struct {
	Log        *logrus.Entry
	Clock      clock.Clock
	Location   *time.Location
	Birthdays  birthday.Store
	Images     ImageSource
	Messenger  Poster
	Notifier   Notifier
	WebhookURL string
}

// Handle runs the announcement and turns a failure into a 500 result.
func (announcer *Announcer) Handle(ctx context.Context) Response {
	if err := announcer.Run(ctx); err != nil {
		announcer.Log.WithError(err).Error("announcement failed")
		return Failure(err)
	}

	return Response{}
}

// Run posts one message for everybody whose birthday is today. Nothing is sent
// on a day without birthdays.
func (announcer *Announcer) Run(ctx context.Context) error {
	today := announcer.Clock.Now().In(announcer.Location)
	start, end := birthday.DayBounds(today, announcer.Location)

	birthdays, err := announcer.Birthdays.List(ctx, birthday.Query{TimeMin: start, TimeMax: end})
	if err != nil {
		return err
	}

	log := announcer.Log.WithField("date", today.Format(birthday.DateLayout))

	if len(birthdays) == 0 {
		log.Info("no birthdays found")
		return nil
	}

	names := birthday.JoinNames(birthdays)
	log.WithField("names", names).Info("birthdays today")

	imageURL, err := announcer.Images.RandomImageURL(ctx)
	if err != nil {
		return err
	}

	err = announcer.Messenger.Post(ctx, announcer.WebhookURL, Message(names, imageURL))
	if err != nil {
		return err
	}

	if announcer.Notifier != nil {
		// The chat message already went out, so the mirror only logs.
		if err := announcer.Notifier.Publish(ctx, plainText(names)); err != nil {
			log.WithError(err).Warn("could not mirror announcement")
		}
	}

	return nil
}

func Message(names, imageURL string) []slack.Block {
	greeting := fmt.Sprintf("Happy birthday, %s! 🥳. Have a great day and lots of 🎂.", names)

	return []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, greeting, false, false), nil, nil),
		slack.NewImageBlock(imageURL, imageAltText, "", slack.NewTextBlockObject(slack.PlainTextType, imageTitle, false, false)),
	}
}

func plainText(names string) string {
	return fmt.Sprintf("Happy birthday, %s!", strings.ReplaceAll(names, "*", ""))
}
