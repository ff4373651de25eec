package gcal

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"calendarbot/internal/meeting"
	"calendarbot/internal/timeparse"
)

const createdByMarker = "calendarbot"

// toEvent converts the local meeting into a provider event body. Every event
// is exactly one hour wide regardless of anything in the meeting. Participant
// entries that are not email addresses are demoted into the description under
// a "Participants: " marker instead of being rejected.
func toEvent(m meeting.Meeting, opts Options) (*calendar.Event, error) {
	start, err := timeparse.Combine(m.Date, m.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid meeting start %q %q: %w", m.Date, m.Time, err)
	}
	end := start.Add(meeting.DefaultDuration)

	var attendees []*calendar.EventAttendee
	var names []string
	for _, p := range m.Participants {
		switch p.Kind {
		case meeting.Email:
			attendees = append(attendees, &calendar.EventAttendee{Email: p.Value})
		default:
			names = append(names, p.Value)
		}
	}

	description := m.Description
	if len(names) > 0 {
		marker := "Participants: " + strings.Join(names, ", ")
		if description != "" {
			description += "\n\n" + marker
		} else {
			description = marker
		}
	}

	title := m.Title
	if title == "" {
		title = "Untitled Meeting"
	}

	event := &calendar.Event{
		Summary:     title,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: opts.ReminderMinutes},
				{Method: "popup", Minutes: opts.ReminderMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				"local_id":   m.ID,
				"created_by": createdByMarker,
			},
		},
		Attendees: attendees,
	}

	if opts.AddMeetLink {
		event.ConferenceData = &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: "meet-" + m.ID,
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		}
	}

	return event, nil
}

// fromEvent converts a provider event back into the local meeting shape.
// The second return is false when the event's start time cannot be parsed.
func fromEvent(e *calendar.Event) (meeting.Meeting, bool) {
	if e == nil || e.Start == nil {
		return meeting.Meeting{}, false
	}

	raw := e.Start.DateTime
	if raw == "" {
		raw = e.Start.Date
	}
	if raw == "" {
		return meeting.Meeting{}, false
	}

	var start time.Time
	var err error
	if strings.Contains(raw, "T") {
		start, err = time.Parse(time.RFC3339, raw)
	} else {
		start, err = time.Parse(time.DateOnly, raw)
	}
	if err != nil {
		return meeting.Meeting{}, false
	}

	var participants []meeting.Participant
	for _, a := range e.Attendees {
		name := a.DisplayName
		if name == "" {
			name = strings.SplitN(a.Email, "@", 2)[0]
		}
		participants = append(participants, meeting.NewParticipant(name))
	}

	localID := ""
	if e.ExtendedProperties != nil && e.ExtendedProperties.Private != nil {
		localID = e.ExtendedProperties.Private["local_id"]
	}
	if localID == "" {
		localID = e.Id
	}

	title := e.Summary
	if title == "" {
		title = "Untitled"
	}

	return meeting.Meeting{
		ID:            localID,
		Title:         title,
		Date:          start.Format("2006-01-02"),
		Time:          start.Format("15:04"),
		Participants:  participants,
		Description:   e.Description,
		GoogleEventID: e.Id,
		GoogleLink:    e.HtmlLink,
		MeetLink:      e.HangoutLink,
	}, true
}
