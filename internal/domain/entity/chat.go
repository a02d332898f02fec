package entity

import (
	"maps"
	"slices"
	"time"
)

// LawBotID is the sender id used for messages written by the legal assistant.
const LawBotID = "LAWBOT"

// ChatIDForRequest derives the chat id for an accepted request.
func ChatIDForRequest(requestID string) string {
	return "chat-" + requestID
}

// Participant is the display snapshot of a chat member.
type Participant struct {
	Name          string `json:"name"`
	ProfilePicURL string `json:"profilePicUrl"`
}

// Chat is a two-party message thread.
type Chat struct {
	ID             string                 `json:"id"`
	ParticipantIDs []string               `json:"participantIds"`
	Participants   map[string]Participant `json:"participants"`
	Messages       []ChatMessage          `json:"messages"`
}

// ChatMessage is immutable once appended. SenderID may be LawBotID.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewChat creates an empty chat between the two parties.
func NewChat(id string, a, b PartySnapshot) *Chat {
	return &Chat{
		ID:             id,
		ParticipantIDs: []string{a.ID, b.ID},
		Participants: map[string]Participant{
			a.ID: {Name: a.Name, ProfilePicURL: a.ProfilePicURL},
			b.ID: {Name: b.Name, ProfilePicURL: b.ProfilePicURL},
		},
		Messages: []ChatMessage{},
	}
}

// HasParticipant reports whether userID is a member of the chat.
func (c *Chat) HasParticipant(userID string) bool {
	return slices.Contains(c.ParticipantIDs, userID)
}

// Counterpart returns the other member's id, or "" if userID is not a member.
func (c *Chat) Counterpart(userID string) string {
	if !c.HasParticipant(userID) {
		return ""
	}

	for _, id := range c.ParticipantIDs {
		if id != userID {
			return id
		}
	}

	return ""
}

// Clone returns a deep copy of the chat.
func (c *Chat) Clone() *Chat {
	if c == nil {
		return nil
	}

	out := *c
	out.ParticipantIDs = slices.Clone(c.ParticipantIDs)
	out.Participants = maps.Clone(c.Participants)
	out.Messages = slices.Clone(c.Messages)

	return &out
}
