package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/slack-go/slack"

	"github.com/adiazny/birthday-lambda/internal/pkg/calendar"
	"github.com/adiazny/birthday-lambda/internal/pkg/clock"
	"github.com/adiazny/birthday-lambda/internal/pkg/command"
	"github.com/adiazny/birthday-lambda/internal/pkg/config"
	"github.com/adiazny/birthday-lambda/internal/pkg/messenger"
)

const component = "birthday-slashcommand"

// HandleRequest never fails the invocation: Slack must not see a raw error.
func HandleRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	ok := events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK}

	envVars, err := config.SetupSlashCommand()
	if err != nil {
		config.NewLogger("", component).WithError(err).Error("setup failed")
		return ok, nil
	}

	log := config.NewLogger(envVars.LogLevel, component)
	log.Info("starting up")

	defer log.Info("shutting down")

	location, err := config.Location(envVars.Timezone)
	if err != nil {
		log.WithError(err).Error("setup failed")
		return ok, nil
	}

	httpClient := config.HTTPClient(envVars.HTTPTimeoutSeconds)

	service, err := calendar.NewService(ctx, []byte(envVars.GoogleCredentials), httpClient)
	if err != nil {
		log.WithError(err).Error("setup failed")
		return ok, nil
	}

	handler := &command.Handler{
		Log:      log,
		Clock:    clock.System{},
		Location: location,
		Birthdays: &calendar.Client{
			Log:     log.WithField("adapter", "calendar"),
			Config:  calendar.Config{CalendarID: envVars.CalendarID},
			Service: service,
		},
		Messenger: &messenger.Client{
			Log:    log.WithField("adapter", "slack"),
			Config: messenger.Config{SigningSecret: envVars.SlackSigningSecret},
			HTTP:   httpClient,
			API:    slack.New(envVars.SlackBotToken, slack.OptionHTTPClient(httpClient)),
		},
	}

	return handler.Handle(ctx, event), nil
}

func main() {
	lambda.Start(HandleRequest)
}
