package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Intent is a client-originated request to change game state. The set of
// kinds is closed on the server side, but unknown tags are tolerated on the
// wire so that newer clients do not break older servers.
type Intent interface {
	IntentKind() string
}

// ErrUnknownIntent marks a message whose tag the server does not recognize.
// Callers drop these without terminating the connection.
var ErrUnknownIntent = errors.New("unknown intent kind")

type CreateCharacter struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
}

type Move struct {
	TargetLocation string `json:"target_location"`
}

type Interact struct {
	NpcName         string `json:"npc_name"`
	InteractionType int    `json:"interaction_type"`
}

type JournalWrite struct {
	Entry string `json:"entry"`
}

type Search struct{}

type Work struct{}

type Rest struct{}

// Fly carries the latest flight control deflections, each nominally in
// [-1,1]. Out-of-range values are clamped by the integrator, never rejected.
type Fly struct {
	Pitch          float64 `json:"pitch"`
	Roll           float64 `json:"roll"`
	Yaw            float64 `json:"yaw"`
	ThrottleChange float64 `json:"throttle_change"`
}

type SearchTexts struct{}

type ReadText struct {
	TextID string `json:"text_id"`
}

// Approach is how a character broaches forbidden knowledge with an NPC.
// The four approaches form a strict ladder: each step up transfers more
// understanding and carries more risk.
type Approach string

const (
	ApproachSubtle      Approach = "subtle"
	ApproachQuestioning Approach = "questioning"
	ApproachMetaphoric  Approach = "metaphoric"
	ApproachDirect      Approach = "direct"
)

// Rank orders approaches from safest (0) to boldest (3). Unknown approaches
// rank below subtle so a malformed value never unlocks extra transfer.
func (a Approach) Rank() int {
	switch a {
	case ApproachSubtle:
		return 0
	case ApproachQuestioning:
		return 1
	case ApproachMetaphoric:
		return 2
	case ApproachDirect:
		return 3
	default:
		return -1
	}
}

func (a Approach) Valid() bool {
	return a.Rank() >= 0
}

type ShareKnowledge struct {
	TargetNpc string   `json:"target_npc"`
	Topic     string   `json:"knowledge_topic"`
	Approach  Approach `json:"approach"`
}

func (CreateCharacter) IntentKind() string { return "request_character_creation" }
func (Move) IntentKind() string            { return "move_request" }
func (Interact) IntentKind() string        { return "interact_request" }
func (JournalWrite) IntentKind() string    { return "journal_write_request" }
func (Search) IntentKind() string          { return "search_request" }
func (Work) IntentKind() string            { return "work_request" }
func (Rest) IntentKind() string            { return "rest_request" }
func (Fly) IntentKind() string             { return "fly_input" }
func (SearchTexts) IntentKind() string     { return "search_forbidden_texts" }
func (ReadText) IntentKind() string        { return "read_forbidden_text" }
func (ShareKnowledge) IntentKind() string  { return "share_forbidden_knowledge" }

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// DecodeIntent parses one client message. A missing or unknown tag returns
// ErrUnknownIntent; a malformed payload returns a wrapped unmarshal error.
// Both are protocol faults the session layer logs and drops.
func DecodeIntent(raw []byte) (Intent, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}

	var intent Intent
	switch env.Type {
	case "request_character_creation":
		intent = &CreateCharacter{}
	case "move_request":
		intent = &Move{}
	case "interact_request":
		intent = &Interact{}
	case "journal_write_request":
		intent = &JournalWrite{}
	case "search_request":
		intent = &Search{}
	case "work_request":
		intent = &Work{}
	case "rest_request":
		intent = &Rest{}
	case "fly_input":
		intent = &Fly{}
	case "search_forbidden_texts":
		intent = &SearchTexts{}
	case "read_forbidden_text":
		intent = &ReadText{}
	case "share_forbidden_knowledge":
		intent = &ShareKnowledge{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, env.Type)
	}

	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, intent); err != nil {
			return nil, fmt.Errorf("decoding %s payload: %w", env.Type, err)
		}
	}

	return intent, nil
}
