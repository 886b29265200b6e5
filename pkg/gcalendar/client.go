package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// maxAttempts bounds retries at the calendar boundary
	maxAttempts = 3

	// retryDelay is the fixed wait between attempts
	retryDelay = time.Second
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials
// JSON. Service Account keys are used directly; OAuth installed-app
// credentials require an adjacent token.json (see scripts/gcal-auth).
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("credentials are OAuth installed-app type but no token.json found: run scripts/gcal-auth first")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event from an already-validated
// event body. Insert failures are retried with a fixed delay up to the
// bounded attempt count; the last error is surfaced.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*CreateEventResult, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Location:    req.Location,
		Description: req.Description,
		ColorId:     req.ColorID,
		Recurrence:  req.Recurrence,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.DateTime,
			TimeZone: req.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.DateTime,
			TimeZone: req.End.TimeZone,
		},
	}

	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
		if err != nil {
			lastErr = err
			continue
		}

		return &CreateEventResult{
			EventID:  created.Id,
			HTMLLink: created.HtmlLink,
		}, nil
	}

	return nil, fmt.Errorf("failed to create calendar event after %d attempts: %w", maxAttempts, lastErr)
}

// ListUpcoming returns events starting after now, soonest first.
func (c *Client) ListUpcoming(ctx context.Context, req ListUpcomingRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := c.service.Events.List(calendarID).
			TimeMin(time.Now().UTC().Format(time.RFC3339)).
			MaxResults(maxResults).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx).
			Do()
		if err != nil {
			lastErr = err
			continue
		}

		events := make([]Event, 0, len(result.Items))
		for _, item := range result.Items {
			e := Event{
				ID:       item.Id,
				Summary:  item.Summary,
				HTMLLink: item.HtmlLink,
			}
			if item.Start != nil {
				if item.Start.DateTime != "" {
					e.Start = item.Start.DateTime
				} else {
					e.Start = item.Start.Date
					e.AllDay = true
				}
			}
			events = append(events, e)
		}
		return events, nil
	}

	return nil, fmt.Errorf("failed to list calendar events after %d attempts: %w", maxAttempts, lastErr)
}
