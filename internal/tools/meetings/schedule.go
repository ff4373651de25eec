package meetings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/tools"
)

// ScheduleTool exposes schedule_meeting to the model.
type ScheduleTool struct {
	svc *Service
}

var _ tools.Tool = &ScheduleTool{}

func NewScheduleTool(svc *Service) *ScheduleTool {
	return &ScheduleTool{svc: svc}
}

func (t *ScheduleTool) Name() string {
	return "schedule_meeting"
}

func (t *ScheduleTool) Description() string {
	return `Schedule a new meeting in Google Calendar. Participants are optional - only include if provided; entries that are valid email addresses become attendees, the rest are noted in the description. Returns success status and meeting details.`
}

func (t *ScheduleTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Meeting title or subject",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Meeting date in YYYY-MM-DD format",
			},
			"time": map[string]interface{}{
				"type":        "string",
				"description": "Meeting time in HH:MM format (24-hour) or 12-hour with AM/PM",
			},
			"participants": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Optional list of participants. Valid email addresses are invited as attendees.",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Optional meeting description",
			},
		},
		"required": []string{"title", "date", "time"},
	}
}

func (t *ScheduleTool) Call(ctx context.Context, input string) (string, error) {
	var in ScheduleInput
	if err := json.Unmarshal([]byte(strings.TrimSpace(input)), &in); err != nil {
		return failure("Invalid schedule_meeting arguments; expected a JSON object: %v", err).JSON(), nil
	}
	return t.svc.Schedule(ctx, in).JSON(), nil
}
