package config

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"
)

type Announcer struct {
	CalendarID         string `env:"CALENDAR_ID,required"`
	GoogleCredentials  string `env:"GOOGLE_CREDENTIALS,required"`
	SlackWebhookURL    string `env:"SLACK_WEBHOOK_URL,required"`
	GiphyAPIKey        string `env:"GIPHY_API_KEY,required"`
	GiphyTag           string `env:"GIPHY_TAG" envDefault:"birthday"`
	GiphyRating        string `env:"GIPHY_RATING" envDefault:"g"`
	TopicARN           string `env:"TOPIC_ARN"`
	Timezone           string `env:"TIMEZONE" envDefault:"Europe/Paris"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
}

type SlashCommand struct {
	CalendarID         string `env:"CALENDAR_ID,required"`
	GoogleCredentials  string `env:"GOOGLE_CREDENTIALS,required"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET,required"`
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required"`
	Timezone           string `env:"TIMEZONE" envDefault:"Europe/Paris"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
}

func SetupAnnouncer() (envVars *Announcer, err error) {
	envVars = &Announcer{}

	if err = setup(envVars); err != nil {
		return nil, err
	}

	return envVars, nil
}

func SetupSlashCommand() (envVars *SlashCommand, err error) {
	envVars = &SlashCommand{}

	if err = setup(envVars); err != nil {
		return nil, err
	}

	return envVars, nil
}

func setup(envVars interface{}) error {
	_, err := maxprocs.Set()
	if err != nil {
		return fmt.Errorf("error setting GOMAXPROCS %w", err)
	}

	err = env.Parse(envVars)
	if err != nil {
		return fmt.Errorf("error parsing environment variables %w", err)
	}

	return nil
}

// NewLogger writes JSON lines to stdout, tagged with the component name.
// An unknown level falls back to info.
func NewLogger(level, component string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	return logrus.NewEntry(logger).WithField("component", component)
}

func Location(name string) (*time.Location, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("error loading timezone %s %w", name, err)
	}

	return location, nil
}

func HTTPClient(timeoutSeconds int) *http.Client {
	return &http.Client{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}
