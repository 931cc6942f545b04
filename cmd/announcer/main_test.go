package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiazny/birthday-lambda/internal/pkg/config"
)

func TestLocationFromEmbeddedZones(t *testing.T) {
	// Lambda runtimes may have no zoneinfo directory at all.
	t.Setenv("ZONEINFO", t.TempDir())

	location, err := config.Location("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", location.String())
}

func TestHandleRequest_SetupFailure(t *testing.T) {
	for _, key := range []string{"CALENDAR_ID", "GOOGLE_CREDENTIALS", "SLACK_WEBHOOK_URL", "GIPHY_API_KEY"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	got, err := HandleRequest(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.NotEmpty(t, got.Body)
}
