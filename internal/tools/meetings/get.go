package meetings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/tools"
)

// GetTool exposes get_meeting_details to the model.
type GetTool struct {
	svc *Service
}

var _ tools.Tool = &GetTool{}

func NewGetTool(svc *Service) *GetTool {
	return &GetTool{svc: svc}
}

func (t *GetTool) Name() string {
	return "get_meeting_details"
}

func (t *GetTool) Description() string {
	return `Get meeting details from Google Calendar with optional filters (date, participant, title, or meeting_id).`
}

func (t *GetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"date": map[string]interface{}{
				"type":        "string",
				"description": "Filter by date (YYYY-MM-DD format)",
			},
			"participant": map[string]interface{}{
				"type":        "string",
				"description": "Filter by participant name",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Filter by meeting title (partial match)",
			},
			"meeting_id": map[string]interface{}{
				"type":        "string",
				"description": "Get a specific meeting by its event ID",
			},
		},
	}
}

func (t *GetTool) Call(ctx context.Context, input string) (string, error) {
	var in GetInput
	if trimmed := strings.TrimSpace(input); trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &in); err != nil {
			return failure("Invalid get_meeting_details arguments; expected a JSON object: %v", err).JSON(), nil
		}
	}
	return t.svc.GetDetails(ctx, in).JSON(), nil
}
