package messenger

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

var ErrUnverified = errors.New("request signature could not be verified")

type Config struct {
	SigningSecret string
}

// Client posts block messages to Slack and checks that inbound requests
// were signed by Slack.
type Client struct {
	Log    *logrus.Entry
	Config Config
	HTTP   *http.Client
	API    *slack.Client
}

// Post sends blocks to an incoming webhook or a slash command response_url.
func (client *Client) Post(ctx context.Context, url string, blocks []slack.Block) error {
	message := &slack.WebhookMessage{
		Blocks: &slack.Blocks{BlockSet: blocks},
	}

	err := slack.PostWebhookCustomHTTPContext(ctx, url, client.HTTP, message)
	if err != nil {
		return fmt.Errorf("error posting slack message %w", err)
	}

	client.Log.WithField("blocks", len(blocks)).Debug("posted message")

	return nil
}

// PostEphemeral shows text to a single user of a channel.
func (client *Client) PostEphemeral(ctx context.Context, channelID, userID, text string) error {
	_, err := client.API.PostEphemeralContext(ctx, channelID, userID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("error posting ephemeral slack message to %s in %s %w", userID, channelID, err)
	}

	client.Log.WithFields(logrus.Fields{"channel": channelID, "user": userID}).Debug("posted ephemeral message")

	return nil
}

// Verify checks the v0 signature Slack computes over the timestamp and raw body.
func (client *Client) Verify(headers map[string]string, body []byte) error {
	header := http.Header{}
	for key, value := range headers {
		header.Set(key, value)
	}

	verifier, err := slack.NewSecretsVerifier(header, client.Config.SigningSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnverified, err)
	}

	if _, err := verifier.Write(body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnverified, err)
	}

	if err := verifier.Ensure(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnverified, err)
	}

	return nil
}
