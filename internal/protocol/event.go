package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-oceania/internal/game"
)

// Event is a server-originated message. Events are serialized once and the
// same bytes are fanned out to every recipient.
type Event interface {
	EventKind() string
}

// Welcome is the first message a client receives, carrying its assigned
// identity and the current full snapshot.
type Welcome struct {
	PlayerID        string         `json:"player_id"`
	InitialSnapshot *game.Snapshot `json:"initial_snapshot"`
}

type PlayerJoined struct {
	PlayerID  string          `json:"player_id"`
	Character *game.Character `json:"character"`
}

type PlayerLeft struct {
	PlayerID string `json:"player_id"`
}

type GameStateUpdate struct {
	Snapshot *game.Snapshot `json:"snapshot"`
}

type NarrativeUpdate struct {
	Text string `json:"text"`
}

// ErrorEvent is informational; it never closes the connection.
type ErrorEvent struct {
	Text string `json:"text"`
}

type ForbiddenTextFound struct {
	Texts []string `json:"texts"`
}

type ForbiddenTextContent struct {
	TextID                string `json:"text_id"`
	Title                 string `json:"title"`
	Content               string `json:"content"`
	Language              string `json:"language"`
	UnderstandingIncrease int    `json:"understanding_increase"`
	SuspicionIncrease     int    `json:"suspicion_increase"`
}

type KnowledgeShared struct {
	Success        bool   `json:"success"`
	TargetReaction string `json:"target_reaction"`
	Consequence    string `json:"consequence"`
}

func (*Welcome) EventKind() string              { return "welcome" }
func (*PlayerJoined) EventKind() string         { return "player_joined" }
func (*PlayerLeft) EventKind() string           { return "player_left" }
func (*GameStateUpdate) EventKind() string      { return "game_state_update" }
func (*NarrativeUpdate) EventKind() string      { return "narrative_update" }
func (*ErrorEvent) EventKind() string           { return "error" }
func (*ForbiddenTextFound) EventKind() string   { return "forbidden_text_found" }
func (*ForbiddenTextContent) EventKind() string { return "forbidden_text_content" }
func (*KnowledgeShared) EventKind() string      { return "knowledge_shared" }

// EncodeEvent wraps an event in its tagged envelope.
func EncodeEvent(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", e.EventKind(), err)
	}
	return json.Marshal(envelope{Type: e.EventKind(), Data: data})
}
