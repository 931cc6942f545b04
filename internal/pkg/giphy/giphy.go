package giphy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseAPIHost = "https://api.giphy.com"

	randomEndpoint = "v1/gifs/random"

	cacheControlHeaderKey = "Cache-Control"
	noCacheValue          = "no-cache"
)

var errNoImage = errors.New("error response contains no image url")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	APIKey      string
	BaseAPIHost string
	Tag         string
	Rating      string
}

type Client struct {
	Log    *logrus.Entry
	Config Config
	HTTP   HTTPClient
}

type Response struct {
	Data Data `json:"data"`
}

type Data struct {
	ID     string `json:"id"`
	Images Images `json:"images"`
}

type Images struct {
	Original Image `json:"original"`
}

type Image struct {
	URL string `json:"url"`
}

// RandomImageURL fetches one random GIF for the configured tag.
func (client *Client) RandomImageURL(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("api_key", client.Config.APIKey)
	params.Set("tag", client.Config.Tag)
	params.Set("rating", client.Config.Rating)

	apiEndpoint := fmt.Sprintf("%s/%s?%s",
		client.Config.BaseAPIHost,
		randomEndpoint,
		params.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiEndpoint, nil)
	if err != nil {
		return "", fmt.Errorf("error creating http request %w", err)
	}

	req.Header.Add(cacheControlHeaderKey, noCacheValue)

	resp, err := client.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("error performing http request %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("error status code is not 200 OK, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body %w", err)
	}

	giphyResponse := &Response{}

	err = json.Unmarshal(body, giphyResponse)
	if err != nil {
		return "", fmt.Errorf("error unmarshalling http response body %w", err)
	}

	imageURL := giphyResponse.Data.Images.Original.URL
	if imageURL == "" {
		return "", errNoImage
	}

	client.Log.WithField("gif_id", giphyResponse.Data.ID).Debug("fetched gif")

	return imageURL, nil
}
