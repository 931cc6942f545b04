package command

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/adiazny/birthday-lambda/internal/pkg/birthday"
	"github.com/adiazny/birthday-lambda/internal/pkg/clock"
)

var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrMissingBody      = errors.New("no POST body received")
)

const failureText = "Sorry, something went wrong while handling your command"

type Messenger interface {
	Post(ctx context.Context, url string, blocks []slack.Block) error
	PostEphemeral(ctx context.Context, channelID, userID, text string) error
	Verify(headers map[string]string, body []byte) error
}

// Request holds the slash command fields this bot reads.
type Request struct {
	Command     string
	Text        string
	ResponseURL string
	ChannelID   string
	UserID      string
}

type Handler struct {
	Log       *logrus.Entry
	Clock     clock.Clock
	Location  *time.Location
	Birthdays birthday.Store
	Messenger Messenger
}

// Handle answers one slash command. The HTTP status is always 200: the reply
// is posted to the response_url and failures reach the user as an ephemeral
// message only.
func (handler *Handler) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	ok := events.APIGatewayV2HTTPResponse{StatusCode: http.StatusOK}

	request, err := handler.parse(event)
	if err != nil {
		handler.Log.WithError(err).Error("rejected request")
		return ok
	}

	route, argument := Match(request.Text)
	log := handler.Log.WithFields(logrus.Fields{
		"route":   route.String(),
		"user":    request.UserID,
		"channel": request.ChannelID,
	})

	blocks, err := handler.dispatch(ctx, request, route, argument)
	if err == nil {
		err = handler.Messenger.Post(ctx, request.ResponseURL, blocks)
	}

	if err != nil {
		log.WithError(err).Error("command failed")

		text := fmt.Sprintf("%s: %v", failureText, err)
		if ephemeralErr := handler.Messenger.PostEphemeral(ctx, request.ChannelID, request.UserID, text); ephemeralErr != nil {
			log.WithError(ephemeralErr).Error("could not report failure")
		}

		return ok
	}

	log.Info("command handled")

	return ok
}

func (handler *Handler) parse(event events.APIGatewayV2HTTPRequest) (Request, error) {
	if event.RequestContext.HTTP.Method != http.MethodPost {
		return Request{}, fmt.Errorf("%w: %s", ErrMethodNotAllowed, event.RequestContext.HTTP.Method)
	}

	if event.Body == "" {
		return Request{}, ErrMissingBody
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return Request{}, fmt.Errorf("error decoding request body %w", err)
		}
		body = decoded
	}

	if err := handler.Messenger.Verify(event.Headers, body); err != nil {
		return Request{}, err
	}

	params, err := url.ParseQuery(string(body))
	if err != nil {
		return Request{}, fmt.Errorf("error parsing request body %w", err)
	}

	return Request{
		Command:     params.Get("command"),
		Text:        params.Get("text"),
		ResponseURL: params.Get("response_url"),
		ChannelID:   params.Get("channel_id"),
		UserID:      params.Get("user_id"),
	}, nil
}

func (handler *Handler) dispatch(ctx context.Context, request Request, route Route, argument string) ([]slack.Block, error) {
	switch route {
	case RouteList:
		return handler.list(ctx)
	case RouteFind:
		return handler.find(ctx, argument)
	case RouteAdd:
		return handler.add(ctx, argument)
	case RouteHelp:
		return helpMessage(request.Command), nil
	default:
		return pongMessage(), nil
	}
}

func (handler *Handler) list(ctx context.Context) ([]slack.Block, error) {
	birthdays, err := handler.Birthdays.List(ctx, birthday.Query{})
	if err != nil {
		return nil, err
	}

	birthday.SortByPerson(birthdays)

	return listMessage(birthdays), nil
}

// find looks the text up as a date when it reads as one, by name otherwise.
func (handler *Handler) find(ctx context.Context, text string) ([]slack.Block, error) {
	query := birthday.ParseFind(text, handler.now())

	if query.Kind == birthday.ByDate {
		start, end := birthday.DayBounds(query.Date, handler.Location)

		birthdays, err := handler.Birthdays.List(ctx, birthday.Query{TimeMin: start, TimeMax: end})
		if err != nil {
			return nil, err
		}

		day := query.Date.Format(birthday.DayLayout)
		if len(birthdays) == 0 {
			return notFoundByDateMessage(day), nil
		}

		return foundByDateMessage(birthdays, day), nil
	}

	all, err := handler.Birthdays.List(ctx, birthday.Query{})
	if err != nil {
		return nil, err
	}

	matched := birthday.FilterByName(all, query.Name)
	if len(matched) == 0 {
		return notFoundByNameMessage(query.Name), nil
	}

	birthday.SortByPerson(matched)

	return foundByNameMessage(matched), nil
}

func (handler *Handler) add(ctx context.Context, text string) ([]slack.Block, error) {
	b, err := birthday.ParseAdd(text, handler.now())
	if errors.Is(err, birthday.ErrSyntax) || errors.Is(err, birthday.ErrInvalidDate) {
		handler.Log.WithError(err).WithField("text", text).Info("could not parse add command")
		return notUnderstoodMessage(err), nil
	}
	if err != nil {
		return nil, err
	}

	if err := handler.Birthdays.Insert(ctx, b); err != nil {
		return nil, err
	}

	return addedMessage(b), nil
}

func (handler *Handler) now() time.Time {
	return handler.Clock.Now().In(handler.Location)
}
