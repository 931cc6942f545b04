package main

import (
	"context"
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/lambda"
	cfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"

	"github.com/adiazny/birthday-lambda/internal/pkg/announcer"
	"github.com/adiazny/birthday-lambda/internal/pkg/calendar"
	"github.com/adiazny/birthday-lambda/internal/pkg/clock"
	"github.com/adiazny/birthday-lambda/internal/pkg/config"
	"github.com/adiazny/birthday-lambda/internal/pkg/giphy"
	"github.com/adiazny/birthday-lambda/internal/pkg/messenger"
	"github.com/adiazny/birthday-lambda/internal/pkg/notify"
)

const component = "birthday-announcer"

func HandleRequest(ctx context.Context) (announcer.Response, error) {
	envVars, err := config.SetupAnnouncer()
	if err != nil {
		config.NewLogger("", component).WithError(err).Error("setup failed")
		return announcer.Failure(err), nil
	}

	log := config.NewLogger(envVars.LogLevel, component)
	log.Info("starting up")

	defer log.Info("shutting down")

	birthdayAnnouncer, err := newAnnouncer(ctx, log, envVars)
	if err != nil {
		log.WithError(err).Error("setup failed")
		return announcer.Failure(err), nil
	}

	return birthdayAnnouncer.Handle(ctx), nil
}

func newAnnouncer(ctx context.Context, log *logrus.Entry, envVars *config.Announcer) (*announcer.Announcer, error) {
	location, err := config.Location(envVars.Timezone)
	if err != nil {
		return nil, err
	}

	httpClient := config.HTTPClient(envVars.HTTPTimeoutSeconds)

	service, err := calendar.NewService(ctx, []byte(envVars.GoogleCredentials), httpClient)
	if err != nil {
		return nil, err
	}

	birthdayAnnouncer := &announcer.Announcer{
		Log:      log,
		Clock:    clock.System{},
		Location: location,
		Birthdays: &calendar.Client{
			Log:     log.WithField("adapter", "calendar"),
			Config:  calendar.Config{CalendarID: envVars.CalendarID},
			Service: service,
		},
		Images: &giphy.Client{
			Log: log.WithField("adapter", "giphy"),
			Config: giphy.Config{
				APIKey:      envVars.GiphyAPIKey,
				BaseAPIHost: giphy.DefaultBaseAPIHost,
				Tag:         envVars.GiphyTag,
				Rating:      envVars.GiphyRating,
			},
			HTTP: httpClient,
		},
		Messenger: &messenger.Client{
			Log:  log.WithField("adapter", "slack"),
			HTTP: httpClient,
		},
		WebhookURL: envVars.SlackWebhookURL,
	}

	if envVars.TopicARN != "" {
		awsConfig, err := cfg.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}

		birthdayAnnouncer.Notifier = &notify.Publisher{
			Log:      log.WithField("adapter", "sns"),
			TopicARN: envVars.TopicARN,
			SNS:      sns.NewFromConfig(awsConfig),
		}
	}

	return birthdayAnnouncer, nil
}

func main() {
	lambda.Start(HandleRequest)
}
