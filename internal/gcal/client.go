// Package gcal is the calendar client adapter. It owns the authenticated
// session to Google Calendar and translates between the local meeting shape
// and the provider's event shape.
package gcal

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"calendarbot/internal/meeting"
)

const defaultTimeout = 30 * time.Second

// Options configures the adapter's event settings.
type Options struct {
	CalendarID        string
	SendNotifications bool
	AddMeetLink       bool
	ReminderMinutes   int64
	MaxResults        int64
	Timeout           time.Duration
}

// Client talks to Google Calendar. A client constructed without a token is
// unauthenticated: IsEnabled reports false and every operation fails soft
// with ErrNotAuthenticated instead of reaching the network.
type Client struct {
	opts Options

	mu  sync.RWMutex
	svc *calendar.Service
}

// New builds a client. conf and tok may be nil, which leaves the client
// unauthenticated until Authenticate is called (for example after the OAuth
// callback completes).
func New(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token, opts Options) (*Client, error) {
	if opts.CalendarID == "" {
		opts.CalendarID = "primary"
	}
	if opts.ReminderMinutes <= 0 {
		opts.ReminderMinutes = 15
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 100
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	c := &Client{opts: opts}
	if conf == nil || tok == nil {
		return c, nil
	}
	if err := c.Authenticate(ctx, conf, tok); err != nil {
		return nil, err
	}
	return c, nil
}

// Authenticate builds the calendar service from a token. The oauth2 token
// source refreshes expired tokens silently as long as a refresh token is
// present.
func (c *Client) Authenticate(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token) error {
	httpClient := oauth2.NewClient(ctx, conf.TokenSource(ctx, tok))
	httpClient.Timeout = c.opts.Timeout

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.svc = svc
	c.mu.Unlock()
	log.Println("Google Calendar authenticated")
	return nil
}

// IsEnabled reports whether the adapter holds an authenticated session.
func (c *Client) IsEnabled() bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.svc != nil
}

func (c *Client) service() (*calendar.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.svc == nil {
		return nil, ErrNotAuthenticated
	}
	return c.svc, nil
}

// CreateEvent inserts the meeting as a provider event and returns the
// provider's event id.
func (c *Client) CreateEvent(ctx context.Context, m meeting.Meeting) (string, error) {
	svc, err := c.service()
	if err != nil {
		return "", err
	}

	event, err := toEvent(m, c.opts)
	if err != nil {
		return "", err
	}

	call := svc.Events.Insert(c.opts.CalendarID, event).
		SendNotifications(c.opts.SendNotifications).
		Context(ctx)
	if c.opts.AddMeetLink {
		call = call.ConferenceDataVersion(1)
	}

	created, err := call.Do()
	if err != nil {
		err = classify(err)
		log.Printf("Failed to create calendar event: %v", err)
		return "", err
	}

	log.Printf("Created calendar event %s (%s)", created.Id, created.HtmlLink)
	return created.Id, nil
}

// UpdateEvent overwrites the full event body at the given provider id.
// Callers must backfill unchanged fields first; this is not a partial patch.
func (c *Client) UpdateEvent(ctx context.Context, m meeting.Meeting, eventID string) error {
	svc, err := c.service()
	if err != nil {
		return err
	}

	event, err := toEvent(m, c.opts)
	if err != nil {
		return err
	}

	_, err = svc.Events.Update(c.opts.CalendarID, eventID, event).
		SendNotifications(c.opts.SendNotifications).
		Context(ctx).
		Do()
	if err != nil {
		err = classify(err)
		log.Printf("Failed to update calendar event %s: %v", eventID, err)
		return err
	}

	log.Printf("Updated calendar event %s", eventID)
	return nil
}

// DeleteEvent removes the event by provider id. Deleting an id the provider
// no longer knows surfaces as an error, not a silent success.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	svc, err := c.service()
	if err != nil {
		return err
	}

	err = svc.Events.Delete(c.opts.CalendarID, eventID).
		SendNotifications(c.opts.SendNotifications).
		Context(ctx).
		Do()
	if err != nil {
		err = classify(err)
		log.Printf("Failed to delete calendar event %s: %v", eventID, err)
		return err
	}

	log.Printf("Deleted calendar event %s", eventID)
	return nil
}

// ListEvents returns the meetings in the half-open window [timeMin, timeMax),
// provider-sorted by start time with recurring entries expanded. Events whose
// start time cannot be parsed are dropped with a log line.
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]meeting.Meeting, error) {
	svc, err := c.service()
	if err != nil {
		return nil, err
	}

	events, err := svc.Events.List(c.opts.CalendarID).
		TimeMin(timeMin.UTC().Format(time.RFC3339)).
		TimeMax(timeMax.UTC().Format(time.RFC3339)).
		MaxResults(c.opts.MaxResults).
		ShowDeleted(false).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		err = classify(err)
		log.Printf("Failed to list calendar events: %v", err)
		return nil, err
	}

	meetings := make([]meeting.Meeting, 0, len(events.Items))
	for _, e := range events.Items {
		m, ok := fromEvent(e)
		if !ok {
			log.Printf("Skipping event %s: unparseable start time", e.Id)
			continue
		}
		meetings = append(meetings, m)
	}
	return meetings, nil
}
