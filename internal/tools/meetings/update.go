package meetings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/tools"
)

// UpdateTool exposes update_meeting to the model.
type UpdateTool struct {
	svc *Service
}

var _ tools.Tool = &UpdateTool{}

func NewUpdateTool(svc *Service) *UpdateTool {
	return &UpdateTool{svc: svc}
}

func (t *UpdateTool) Name() string {
	return "update_meeting"
}

func (t *UpdateTool) Description() string {
	return `Update an existing meeting in Google Calendar by ID. Only provided fields are changed; everything else keeps its stored value.`
}

func (t *UpdateTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"meeting_id": map[string]interface{}{
				"type":        "string",
				"description": "Event ID of the meeting to update",
			},
			"title": map[string]interface{}{
				"type":        "string",
				"description": "New meeting title",
			},
			"date": map[string]interface{}{
				"type":        "string",
				"description": "New date (YYYY-MM-DD)",
			},
			"time": map[string]interface{}{
				"type":        "string",
				"description": "New time (HH:MM)",
			},
			"participants": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "New participant list",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "New description",
			},
		},
		"required": []string{"meeting_id"},
	}
}

func (t *UpdateTool) Call(ctx context.Context, input string) (string, error) {
	var in UpdateInput
	if err := json.Unmarshal([]byte(strings.TrimSpace(input)), &in); err != nil {
		return failure("Invalid update_meeting arguments; expected a JSON object: %v", err).JSON(), nil
	}
	return t.svc.Update(ctx, in).JSON(), nil
}
