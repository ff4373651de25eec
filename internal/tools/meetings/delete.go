package meetings

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tmc/langchaingo/tools"
)

// DeleteTool exposes delete_meeting to the model.
type DeleteTool struct {
	svc *Service
}

var _ tools.Tool = &DeleteTool{}

func NewDeleteTool(svc *Service) *DeleteTool {
	return &DeleteTool{svc: svc}
}

func (t *DeleteTool) Name() string {
	return "delete_meeting"
}

func (t *DeleteTool) Description() string {
	return `Delete a meeting from Google Calendar by its ID. Returns the deleted meeting so the user can confirm what was removed.`
}

func (t *DeleteTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"meeting_id": map[string]interface{}{
				"type":        "string",
				"description": "Event ID of the meeting to delete",
			},
		},
		"required": []string{"meeting_id"},
	}
}

type deleteInput struct {
	MeetingID string `json:"meeting_id"`
}

func (t *DeleteTool) Call(ctx context.Context, input string) (string, error) {
	var in deleteInput
	if err := json.Unmarshal([]byte(strings.TrimSpace(input)), &in); err != nil {
		return failure("Invalid delete_meeting arguments; expected a JSON object: %v", err).JSON(), nil
	}
	return t.svc.Delete(ctx, in.MeetingID).JSON(), nil
}
