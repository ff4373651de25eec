package meetings

import (
	"context"

	"github.com/tmc/langchaingo/tools"
)

// ListTool exposes list_all_meetings to the model.
type ListTool struct {
	svc *Service
}

var _ tools.Tool = &ListTool{}

func NewListTool(svc *Service) *ListTool {
	return &ListTool{svc: svc}
}

func (t *ListTool) Name() string {
	return "list_all_meetings"
}

func (t *ListTool) Description() string {
	return `List all upcoming meetings from Google Calendar for the next 30 days, sorted by date and time.`
}

func (t *ListTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ListTool) Call(ctx context.Context, _ string) (string, error) {
	return t.svc.ListAll(ctx).JSON(), nil
}
