package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDecodeIntent(t *testing.T) {
	tests := map[string]struct {
		raw   string
		check func(*testing.T, Intent)
	}{
		"character creation": {
			raw: `{"type":"request_character_creation","data":{"name":"Winston","occupation":"Records Department Worker"}}`,
			check: func(t *testing.T, i Intent) {
				cc, ok := i.(*CreateCharacter)
				if !ok {
					t.Fatalf("wrong type %T", i)
				}
				testutil.AssertEqual(t, "name", cc.Name, "Winston")
				testutil.AssertEqual(t, "occupation", cc.Occupation, "Records Department Worker")
			},
		},
		"move": {
			raw: `{"type":"move_request","data":{"target_location":"victory-square"}}`,
			check: func(t *testing.T, i Intent) {
				m, ok := i.(*Move)
				if !ok {
					t.Fatalf("wrong type %T", i)
				}
				testutil.AssertEqual(t, "target", m.TargetLocation, "victory-square")
			},
		},
		"fly input": {
			raw: `{"type":"fly_input","data":{"pitch":1,"roll":-0.5,"yaw":0,"throttle_change":0.25}}`,
			check: func(t *testing.T, i Intent) {
				f, ok := i.(*Fly)
				if !ok {
					t.Fatalf("wrong type %T", i)
				}
				testutil.AssertEqual(t, "pitch", f.Pitch, 1.0)
				testutil.AssertEqual(t, "roll", f.Roll, -0.5)
			},
		},
		"empty payload": {
			raw: `{"type":"rest_request"}`,
			check: func(t *testing.T, i Intent) {
				if _, ok := i.(*Rest); !ok {
					t.Fatalf("wrong type %T", i)
				}
			},
		},
		"share knowledge": {
			raw: `{"type":"share_forbidden_knowledge","data":{"target_npc":"julia","knowledge_topic":"free-market","approach":"direct"}}`,
			check: func(t *testing.T, i Intent) {
				s, ok := i.(*ShareKnowledge)
				if !ok {
					t.Fatalf("wrong type %T", i)
				}
				testutil.AssertEqual(t, "approach", s.Approach, ApproachDirect)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			intent, err := DecodeIntent([]byte(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, intent)
		})
	}
}

func TestDecodeIntent_UnknownTagIgnorable(t *testing.T) {
	_, err := DecodeIntent([]byte(`{"type":"hologram_request","data":{}}`))
	if !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("expected ErrUnknownIntent, got %v", err)
	}

	_, err = DecodeIntent([]byte(`{"data":{}}`))
	if !errors.Is(err, ErrUnknownIntent) {
		t.Errorf("expected ErrUnknownIntent for missing tag, got %v", err)
	}
}

func TestDecodeIntent_Malformed(t *testing.T) {
	_, err := DecodeIntent([]byte(`{not json`))
	if err == nil {
		t.Error("expected error for malformed envelope")
	}

	_, err = DecodeIntent([]byte(`{"type":"move_request","data":"not an object"}`))
	if err == nil {
		t.Error("expected error for malformed payload")
	}
	if errors.Is(err, ErrUnknownIntent) {
		t.Error("malformed payload should not be reported as unknown intent")
	}
}

func TestEncodeEvent_RoundTripEnvelope(t *testing.T) {
	raw, err := EncodeEvent(&NarrativeUpdate{Text: "The chocolate ration has been reduced."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var env struct {
		Type string `json:"type"`
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("unmarshalling envelope: %v", err)
	}
	testutil.AssertEqual(t, "type", env.Type, "narrative_update")
	testutil.AssertEqual(t, "text", env.Data.Text, "The chocolate ration has been reduced.")
}

func TestApproachRank_StrictLadder(t *testing.T) {
	ladder := []Approach{ApproachSubtle, ApproachQuestioning, ApproachMetaphoric, ApproachDirect}
	for i := 1; i < len(ladder); i++ {
		if ladder[i].Rank() <= ladder[i-1].Rank() {
			t.Errorf("%s should rank above %s", ladder[i], ladder[i-1])
		}
	}

	if Approach("whispered").Valid() {
		t.Error("unknown approach should be invalid")
	}
}
