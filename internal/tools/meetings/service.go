// Package meetings implements the five calendar operations exposed to the
// model and wraps each in a langchaingo tool.
package meetings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"calendarbot/internal/meeting"
	"calendarbot/internal/rules"
	"calendarbot/internal/timeparse"
)

// upcomingWindow is how far ahead queries look when no date filter is given.
const upcomingWindow = 30 * 24 * time.Hour

// CalendarClient is the adapter surface the handlers need; satisfied by
// *gcal.Client.
type CalendarClient interface {
	IsEnabled() bool
	CreateEvent(ctx context.Context, m meeting.Meeting) (string, error)
	UpdateEvent(ctx context.Context, m meeting.Meeting, eventID string) error
	DeleteEvent(ctx context.Context, eventID string) error
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]meeting.Meeting, error)
}

// Service implements the calendar operations behind the tools. One instance
// per calendar client; handlers hold it by reference.
type Service struct {
	client            CalendarClient
	rules             *rules.Engine
	conflictDetection bool
	now               func() time.Time
}

func NewService(client CalendarClient, engine *rules.Engine, conflictDetection bool) *Service {
	return &Service{
		client:            client,
		rules:             engine,
		conflictDetection: conflictDetection,
		now:               time.Now,
	}
}

func (s *Service) disabled() *Result {
	if s.client.IsEnabled() {
		return nil
	}
	r := failure("Google Calendar integration is not enabled or authenticated")
	return &r
}

// ScheduleInput carries the schedule_meeting arguments.
type ScheduleInput struct {
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
	Description  string   `json:"description"`
}

// Schedule validates, checks business rules, and creates the meeting in the
// remote calendar. Creation is not transactional: if the remote call fails
// no local record survives.
func (s *Service) Schedule(ctx context.Context, in ScheduleInput) Result {
	if r := s.disabled(); r != nil {
		return *r
	}

	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return failure("Missing required fields (title, date, time)")
	}

	date, ok := timeparse.ParseDate(in.Date)
	if !ok {
		return failure("Invalid date format '%s'. Use YYYY-MM-DD", in.Date)
	}

	clock, ok := timeparse.ParseTime(in.Time)
	if !ok {
		return failure("Invalid time format '%s'. Use HH:MM or 12-hour format", in.Time)
	}

	if !s.rules.ValidateFuture(date, clock) {
		return failure("Cannot schedule meetings in the past")
	}

	if s.conflictDetection {
		if conflict := s.rules.CheckConflict(ctx, date, clock, ""); conflict != nil {
			return failure("Time conflict with '%s' at %s %s", conflict.Title, conflict.Date, conflict.Time)
		}
	}

	m := meeting.Meeting{
		ID:           meeting.NewID(),
		Title:        in.Title,
		Date:         date,
		Time:         clock,
		Participants: meeting.NewParticipants(in.Participants),
		Description:  in.Description,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}

	eventID, err := s.client.CreateEvent(ctx, m)
	if err != nil {
		return failure("Failed to create event in Google Calendar")
	}
	m.GoogleEventID = eventID

	return Result{
		Success: true,
		Meeting: &m,
		Message: "Successfully scheduled '" + m.Title + "' on " + m.Date + " at " + m.Time + " (synced to Google Calendar)",
	}
}

// GetInput carries the get_meeting_details filters. All are optional and
// applied conjunctively.
type GetInput struct {
	Date        string `json:"date"`
	Participant string `json:"participant"`
	Title       string `json:"title"`
	MeetingID   string `json:"meeting_id"`
}

// GetDetails lists the relevant window (a single day when a date filter is
// given, otherwise the next 30 days) and filters the result. An empty match
// set is still a success.
func (s *Service) GetDetails(ctx context.Context, in GetInput) Result {
	if r := s.disabled(); r != nil {
		return *r
	}

	var timeMin, timeMax time.Time
	if in.Date != "" {
		date, ok := timeparse.ParseDate(in.Date)
		if !ok {
			return failure("Invalid date format '%s'. Use YYYY-MM-DD", in.Date)
		}
		timeMin, _ = timeparse.Combine(date, "00:00")
		timeMax = timeMin.Add(24 * time.Hour)
	} else {
		timeMin = s.now()
		timeMax = timeMin.Add(upcomingWindow)
	}

	found, err := s.client.ListEvents(ctx, timeMin, timeMax)
	if err != nil {
		return failure("Error retrieving meetings: %v", err)
	}

	filtered := found
	if in.Participant != "" {
		filtered = filterMeetings(filtered, func(m meeting.Meeting) bool {
			for _, p := range m.Participants {
				if strings.Contains(strings.ToLower(p.Value), strings.ToLower(in.Participant)) {
					return true
				}
			}
			return false
		})
	}
	if in.Title != "" {
		filtered = filterMeetings(filtered, func(m meeting.Meeting) bool {
			return strings.Contains(strings.ToLower(m.Title), strings.ToLower(in.Title))
		})
	}
	if in.MeetingID != "" {
		filtered = filterMeetings(filtered, func(m meeting.Meeting) bool {
			return m.GoogleEventID == in.MeetingID || m.ID == in.MeetingID
		})
	}

	msg := "No meetings found"
	if len(filtered) > 0 {
		msg = fmt.Sprintf("Found %d meeting(s) in Google Calendar", len(filtered))
	}
	return Result{
		Success:  true,
		Meetings: filtered,
		Count:    len(filtered),
		Message:  msg,
	}
}

// ListAll returns the next 30 days of meetings sorted by date and time.
// When any entry's date or time is unparseable the provider order is kept.
func (s *Service) ListAll(ctx context.Context) Result {
	if r := s.disabled(); r != nil {
		return *r
	}

	timeMin := s.now()
	found, err := s.client.ListEvents(ctx, timeMin, timeMin.Add(upcomingWindow))
	if err != nil {
		return failure("Error listing meetings: %v", err)
	}

	if len(found) == 0 {
		return Result{Success: true, Meetings: []meeting.Meeting{}, Count: 0, Message: "No upcoming meetings in Google Calendar"}
	}

	sorted := sortByStart(found)
	return Result{
		Success:  true,
		Meetings: sorted,
		Count:    len(sorted),
		Message:  fmt.Sprintf("Found %d upcoming meeting(s) in Google Calendar", len(sorted)),
	}
}

// UpdateInput carries the update_meeting arguments. Absent fields keep
// their previously stored values; Description distinguishes absent from
// explicitly empty.
type UpdateInput struct {
	MeetingID    string   `json:"meeting_id"`
	Title        string   `json:"title"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Participants []string `json:"participants"`
	Description  *string  `json:"description"`
}

// Update resolves the target meeting, merges the supplied fields onto it,
// re-checks conflicts when the slot moved, and overwrites the full remote
// event body.
func (s *Service) Update(ctx context.Context, in UpdateInput) Result {
	if r := s.disabled(); r != nil {
		return *r
	}
	if strings.TrimSpace(in.MeetingID) == "" {
		return failure("Missing required field meeting_id")
	}

	m, r := s.resolve(ctx, in.MeetingID)
	if r != nil {
		return *r
	}
	eventID := m.GoogleEventID
	if eventID == "" {
		return failure("Cannot update meeting: Google event ID not found")
	}

	if in.Title != "" {
		m.Title = in.Title
	}
	if in.Date != "" {
		date, ok := timeparse.ParseDate(in.Date)
		if !ok {
			return failure("Invalid date format '%s'", in.Date)
		}
		m.Date = date
	}
	if in.Time != "" {
		clock, ok := timeparse.ParseTime(in.Time)
		if !ok {
			return failure("Invalid time format '%s'", in.Time)
		}
		m.Time = clock
	}
	if len(in.Participants) > 0 {
		m.Participants = meeting.NewParticipants(in.Participants)
	}
	if in.Description != nil {
		m.Description = *in.Description
	}

	if s.conflictDetection && (in.Date != "" || in.Time != "") {
		if conflict := s.rules.CheckConflict(ctx, m.Date, m.Time, eventID); conflict != nil {
			return failure("Time conflict with '%s' at %s %s", conflict.Title, conflict.Date, conflict.Time)
		}
	}

	if err := s.client.UpdateEvent(ctx, m, eventID); err != nil {
		return failure("Failed to update event in Google Calendar")
	}

	return Result{
		Success: true,
		Meeting: &m,
		Message: "Successfully updated meeting '" + m.Title + "' in Google Calendar",
	}
}

// Delete resolves the target meeting and removes it from the remote
// calendar, returning its snapshot for confirmation display.
func (s *Service) Delete(ctx context.Context, meetingID string) Result {
	if r := s.disabled(); r != nil {
		return *r
	}
	if strings.TrimSpace(meetingID) == "" {
		return failure("Missing required field meeting_id")
	}

	m, r := s.resolve(ctx, meetingID)
	if r != nil {
		return *r
	}
	if m.GoogleEventID == "" {
		return failure("Cannot delete meeting: Google event ID not found")
	}

	if err := s.client.DeleteEvent(ctx, m.GoogleEventID); err != nil {
		return failure("Failed to delete event from Google Calendar")
	}

	return Result{
		Success:        true,
		DeletedMeeting: &m,
		Message:        "Successfully deleted meeting '" + m.Title + "' from Google Calendar",
	}
}

// resolve finds the meeting matching the id (remote or local). When the
// provider returns more than one match the first wins.
func (s *Service) resolve(ctx context.Context, meetingID string) (meeting.Meeting, *Result) {
	lookup := s.GetDetails(ctx, GetInput{MeetingID: meetingID})
	if !lookup.Success {
		return meeting.Meeting{}, &lookup
	}
	if len(lookup.Meetings) == 0 {
		r := failure("Meeting with ID '%s' not found in Google Calendar", meetingID)
		return meeting.Meeting{}, &r
	}
	return lookup.Meetings[0], nil
}

func filterMeetings(in []meeting.Meeting, keep func(meeting.Meeting) bool) []meeting.Meeting {
	out := make([]meeting.Meeting, 0, len(in))
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// sortByStart sorts by combined date+time. If any entry fails to parse the
// input order (the provider's) is returned unchanged.
func sortByStart(in []meeting.Meeting) []meeting.Meeting {
	keys := make([]time.Time, len(in))
	for i, m := range in {
		t, err := timeparse.Combine(m.Date, m.Time)
		if err != nil {
			return in
		}
		keys[i] = t
	}

	out := make([]meeting.Meeting, len(in))
	idx := make([]int, len(in))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]].Before(keys[idx[b]]) })
	for i, j := range idx {
		out[i] = in[j]
	}
	return out
}

