package gcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"

	"calendarbot/internal/meeting"
)

func testOptions() Options {
	return Options{
		CalendarID:      "primary",
		ReminderMinutes: 15,
		AddMeetLink:     true,
	}
}

func TestToEventTimes(t *testing.T) {
	m := meeting.Meeting{
		ID:    "abc12345",
		Title: "Team sync",
		Date:  "2025-06-10",
		Time:  "14:00",
	}

	ev, err := toEvent(m, testOptions())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10T14:00:00Z", ev.Start.DateTime)
	assert.Equal(t, "2025-06-10T15:00:00Z", ev.End.DateTime, "fixed 60-minute duration")
	assert.Equal(t, "UTC", ev.Start.TimeZone)
	assert.Equal(t, "abc12345", ev.ExtendedProperties.Private["local_id"])
	assert.Equal(t, "calendarbot", ev.ExtendedProperties.Private["created_by"])
}

func TestToEventPartitionsParticipants(t *testing.T) {
	m := meeting.Meeting{
		ID:           "abc12345",
		Title:        "Planning",
		Date:         "2025-06-10",
		Time:         "09:00",
		Participants: meeting.NewParticipants([]string{"alice@example.com", "Bob"}),
	}

	ev, err := toEvent(m, testOptions())
	require.NoError(t, err)

	require.Len(t, ev.Attendees, 1)
	assert.Equal(t, "alice@example.com", ev.Attendees[0].Email)
	assert.Equal(t, "Participants: Bob", ev.Description)
}

func TestToEventAppendsParticipantsToDescription(t *testing.T) {
	m := meeting.Meeting{
		ID:           "abc12345",
		Title:        "Planning",
		Date:         "2025-06-10",
		Time:         "09:00",
		Description:  "Quarterly review",
		Participants: meeting.NewParticipants([]string{"Bob", "Carol"}),
	}

	ev, err := toEvent(m, testOptions())
	require.NoError(t, err)
	assert.Equal(t, "Quarterly review\n\nParticipants: Bob, Carol", ev.Description)
}

func TestToEventMeetLink(t *testing.T) {
	m := meeting.Meeting{ID: "abc12345", Title: "x", Date: "2025-06-10", Time: "09:00"}

	ev, err := toEvent(m, testOptions())
	require.NoError(t, err)
	require.NotNil(t, ev.ConferenceData)
	assert.Equal(t, "meet-abc12345", ev.ConferenceData.CreateRequest.RequestId)

	opts := testOptions()
	opts.AddMeetLink = false
	ev, err = toEvent(m, opts)
	require.NoError(t, err)
	assert.Nil(t, ev.ConferenceData)
}

func TestToEventRejectsBadStart(t *testing.T) {
	_, err := toEvent(meeting.Meeting{Title: "x", Date: "June 10", Time: "14:00"}, testOptions())
	assert.Error(t, err)
}

func TestFromEvent(t *testing.T) {
	ev := &calendar.Event{
		Id:      "gevent1",
		Summary: "Team sync",
		Start:   &calendar.EventDateTime{DateTime: "2025-06-10T14:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2025-06-10T15:00:00Z"},
		Attendees: []*calendar.EventAttendee{
			{Email: "alice@example.com"},
			{Email: "bob@example.com", DisplayName: "Bob B"},
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{"local_id": "abc12345"},
		},
		HtmlLink:    "https://calendar.google.com/event?eid=x",
		HangoutLink: "https://meet.google.com/xyz",
	}

	m, ok := fromEvent(ev)
	require.True(t, ok)
	assert.Equal(t, "abc12345", m.ID)
	assert.Equal(t, "gevent1", m.GoogleEventID)
	assert.Equal(t, "Team sync", m.Title)
	assert.Equal(t, "2025-06-10", m.Date)
	assert.Equal(t, "14:00", m.Time)
	require.Len(t, m.Participants, 2)
	assert.Equal(t, "alice", m.Participants[0].Value, "email without display name uses the local part")
	assert.Equal(t, "Bob B", m.Participants[1].Value)
	assert.Equal(t, "https://meet.google.com/xyz", m.MeetLink)
}

func TestFromEventFallbacks(t *testing.T) {
	// No extended properties: provider id doubles as local id.
	m, ok := fromEvent(&calendar.Event{
		Id:    "gevent2",
		Start: &calendar.EventDateTime{Date: "2025-06-10"},
	})
	require.True(t, ok)
	assert.Equal(t, "gevent2", m.ID)
	assert.Equal(t, "Untitled", m.Title)
	assert.Equal(t, "00:00", m.Time, "all-day events read as midnight")

	// Unparseable or absent start times are dropped.
	_, ok = fromEvent(&calendar.Event{Id: "x", Start: &calendar.EventDateTime{DateTime: "junk"}})
	assert.False(t, ok)
	_, ok = fromEvent(&calendar.Event{Id: "x"})
	assert.False(t, ok)
}
