package meeting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	tests := []struct {
		in   string
		kind ParticipantKind
	}{
		{"alice@example.com", Email},
		{" bob@corp.io ", Email},
		{"Bob", DisplayName},
		{"bob@localhost", DisplayName}, // no dot
		{"www.example.com", DisplayName}, // no at
	}
	for _, tt := range tests {
		p := NewParticipant(tt.in)
		assert.Equal(t, tt.kind, p.Kind, "input %q", tt.in)
	}
}

func TestNewParticipantsDropsBlanks(t *testing.T) {
	ps := NewParticipants([]string{"alice@example.com", "", "  ", "Bob"})
	require.Len(t, ps, 2)
	assert.Equal(t, "alice@example.com", ps[0].Value)
	assert.Equal(t, Email, ps[0].Kind)
	assert.Equal(t, "Bob", ps[1].Value)
	assert.Equal(t, DisplayName, ps[1].Kind)
}

func TestParticipantJSONRoundTrip(t *testing.T) {
	m := Meeting{
		ID:           "abc12345",
		Title:        "Team sync",
		Date:         "2025-06-10",
		Time:         "14:00",
		Participants: NewParticipants([]string{"alice@example.com", "Bob"}),
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"participants":["alice@example.com","Bob"]`)

	var back Meeting
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back.Participants, 2)
	assert.Equal(t, Email, back.Participants[0].Kind)
	assert.Equal(t, DisplayName, back.Participants[1].Kind)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
