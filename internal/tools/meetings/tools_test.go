package meetings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsHaveUniqueNames(t *testing.T) {
	svc := newTestService(newFakeClient())
	seen := map[string]bool{}
	for _, tool := range Tools(svc) {
		assert.False(t, seen[tool.Name()], "duplicate tool name %s", tool.Name())
		seen[tool.Name()] = true
	}
	assert.Len(t, seen, 5)
}

func TestScheduleToolCall(t *testing.T) {
	svc := newTestService(newFakeClient())
	tool := NewScheduleTool(svc)

	out, err := tool.Call(context.Background(), `{"title":"Sync","date":"2025-06-10","time":"14:00"}`)
	require.NoError(t, err)

	var r Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Success, r.Error)
	require.NotNil(t, r.Meeting)
	assert.Equal(t, "Sync", r.Meeting.Title)
}

func TestToolCallBadJSONIsStructuredFailure(t *testing.T) {
	svc := newTestService(newFakeClient())

	for _, tool := range []interface {
		Call(context.Context, string) (string, error)
	}{NewScheduleTool(svc), NewUpdateTool(svc), NewDeleteTool(svc)} {
		out, err := tool.Call(context.Background(), "not json")
		require.NoError(t, err, "tool errors must stay in the envelope")

		var r Result
		require.NoError(t, json.Unmarshal([]byte(out), &r))
		assert.False(t, r.Success)
		assert.NotEmpty(t, r.Error)
	}
}

func TestGetToolEmptyInput(t *testing.T) {
	svc := newTestService(newFakeClient())
	tool := NewGetTool(svc)

	out, err := tool.Call(context.Background(), "")
	require.NoError(t, err)

	var r Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Success)
	assert.Equal(t, "No meetings found", r.Message)
}

func TestResultEnvelopeInvariant(t *testing.T) {
	ok := Result{Success: true, Message: "done"}
	assert.Empty(t, ok.Error)

	bad := failure("broke: %s", "why")
	assert.False(t, bad.Success)
	assert.Equal(t, "broke: why", bad.Error)

	var back Result
	require.NoError(t, json.Unmarshal([]byte(bad.JSON()), &back))
	assert.Equal(t, bad, back)
}
