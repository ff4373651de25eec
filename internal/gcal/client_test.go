package gcal

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"calendarbot/internal/meeting"
)

func TestUnauthenticatedClientFailsSoft(t *testing.T) {
	c, err := New(context.Background(), nil, nil, Options{})
	require.NoError(t, err)

	assert.False(t, c.IsEnabled())

	_, err = c.CreateEvent(context.Background(), meeting.Meeting{Title: "x", Date: "2025-06-10", Time: "10:00"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = c.UpdateEvent(context.Background(), meeting.Meeting{Title: "x", Date: "2025-06-10", Time: "10:00"}, "ev1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = c.DeleteEvent(context.Background(), "ev1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.ListEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestNilClientIsDisabled(t *testing.T) {
	var c *Client
	assert.False(t, c.IsEnabled())
}

func TestClassify(t *testing.T) {
	notFound := &googleapi.Error{Code: http.StatusNotFound}
	assert.ErrorIs(t, classify(notFound), ErrCalendarNotFound)

	rateLimited := &googleapi.Error{Code: http.StatusTooManyRequests}
	assert.NotErrorIs(t, classify(rateLimited), ErrCalendarNotFound)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, classify(plain))
}

func TestNewDefaultsOptions(t *testing.T) {
	c, err := New(context.Background(), nil, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "primary", c.opts.CalendarID)
	assert.Equal(t, int64(15), c.opts.ReminderMinutes)
	assert.Equal(t, int64(100), c.opts.MaxResults)
	assert.Equal(t, 30*time.Second, c.opts.Timeout)
}
