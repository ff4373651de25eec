// Package meeting holds the local meeting representation shared by the
// calendar client, the scheduling rules, and the tool handlers.
package meeting

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is the width of every meeting. No duration is ever read
// from user input; the calendar adapter and the conflict check both assume
// exactly one hour.
const DefaultDuration = 60 * time.Minute

// Meeting is the canonical local shape. It is constructed ephemerally inside
// a handler call and reconstructed from the remote event on every read; the
// remote calendar is the only system of record.
type Meeting struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Time          string        `json:"time"` // HH:MM, 24-hour
	Participants  []Participant `json:"participants"`
	Description   string        `json:"description"`
	CreatedAt     string        `json:"created_at,omitempty"`
	GoogleEventID string        `json:"google_event_id,omitempty"`
	GoogleLink    string        `json:"google_link,omitempty"`
	MeetLink      string        `json:"meet_link,omitempty"`
}

// ParticipantKind tags whether a participant entry is an email address or
// free-text display name.
type ParticipantKind int

const (
	DisplayName ParticipantKind = iota
	Email
)

// Participant is a tagged participant value. The kind is decided once, at
// the boundary where the string enters the system, instead of re-inspecting
// the content at every conversion.
type Participant struct {
	Value string
	Kind  ParticipantKind
}

// NewParticipant classifies a raw participant string. Anything containing
// both "@" and "." is treated as an email address; everything else is a
// display name that the adapter demotes into the event description.
func NewParticipant(raw string) Participant {
	v := strings.TrimSpace(raw)
	if strings.Contains(v, "@") && strings.Contains(v, ".") {
		return Participant{Value: v, Kind: Email}
	}
	return Participant{Value: v, Kind: DisplayName}
}

// NewParticipants classifies a list of raw strings, dropping blanks.
func NewParticipants(raw []string) []Participant {
	out := make([]Participant, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		out = append(out, NewParticipant(r))
	}
	return out
}

// MarshalJSON keeps the wire shape a plain string array.
func (p Participant) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value)
}

// UnmarshalJSON re-classifies on the way in.
func (p *Participant) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*p = NewParticipant(s)
	return nil
}

// NewID generates a short opaque local meeting id.
func NewID() string {
	return uuid.NewString()[:8]
}
