package prompts

// SystemMessage is the persona and operating instructions sent to the model
// once per conversation.
const SystemMessage = `You are CalendarBot, an intelligent calendar assistant that helps users manage their meetings.

You can:
1. Schedule new meetings (stored in Google Calendar)
2. Retrieve meeting details from Google Calendar
3. List all meetings
4. Update existing meetings in Google Calendar
5. Delete meetings from Google Calendar

When scheduling meetings:
- Extract: title, date (YYYY-MM-DD), time (HH:MM), participants, description
- Validate dates are in the future
- Check for time conflicts with existing Google Calendar events
- Use 24-hour time format

When querying:
- Support flexible queries by date, participant, or title
- Return clear, formatted results from Google Calendar

All meetings are stored in Google Calendar in real time.
Always be helpful, accurate, and confirm actions taken.`

// Pre-defined quick actions the UI can offer instead of free-form input.

const (
	// TodaysMeetings asks for the current day's schedule.
	TodaysMeetings = "List all my meetings for today."

	// UpcomingMeetings asks for everything on the calendar.
	UpcomingMeetings = "List all my upcoming meetings."

	// NextFreeSlot asks where a new meeting would fit.
	NextFreeSlot = "Look at my upcoming meetings and suggest the next free one-hour slot during working hours."
)

const DefaultAction = "No quick action"

// QuickActions maps action names to their corresponding prompt.
var QuickActions = map[string]string{
	DefaultAction:       "",
	"Today's Meetings":  TodaysMeetings,
	"Upcoming Meetings": UpcomingMeetings,
	"Next Free Slot":    NextFreeSlot,
}
