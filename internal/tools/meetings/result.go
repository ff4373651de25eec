package meetings

import (
	"encoding/json"
	"fmt"

	"calendarbot/internal/meeting"
)

// Result is the uniform envelope every tool operation returns. It is
// relayed verbatim to the model as the tool response. A failed result
// always carries Error; a successful one never does.
type Result struct {
	Success        bool              `json:"success"`
	Meeting        *meeting.Meeting  `json:"meeting,omitempty"`
	Meetings       []meeting.Meeting `json:"meetings,omitempty"`
	DeletedMeeting *meeting.Meeting  `json:"deleted_meeting,omitempty"`
	Count          int               `json:"count,omitempty"`
	Message        string            `json:"message,omitempty"`
	Error          string            `json:"error,omitempty"`
}

func failure(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// JSON renders the envelope for the model-facing tool response channel.
func (r Result) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		// A Result is always marshalable; this path guards future fields.
		return `{"success":false,"error":"internal: could not encode result"}`
	}
	return string(b)
}
