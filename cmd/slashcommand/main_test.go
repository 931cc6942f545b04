package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRequest_BadTimezone(t *testing.T) {
	t.Setenv("CALENDAR_ID", "birthdays")
	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-token")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	got, err := HandleRequest(context.Background(), events.APIGatewayV2HTTPRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.StatusCode)
}

func TestHandleRequest_SetupFailure(t *testing.T) {
	for _, key := range []string{"CALENDAR_ID", "GOOGLE_CREDENTIALS", "SLACK_SIGNING_SECRET", "SLACK_BOT_TOKEN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	got, err := HandleRequest(context.Background(), events.APIGatewayV2HTTPRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.StatusCode)
}
