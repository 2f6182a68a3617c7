package world

import (
	"testing"

	"github.com/pixil98/go-oceania/internal/storage"
)

func testContent() (storage.MapStore[*Location], storage.MapStore[*Npc], storage.MapStore[*ForbiddenText]) {
	locations := storage.MapStore[*Location]{
		"victory-mansions": &Location{
			Name:        "Victory Mansions",
			Description: "Your dilapidated apartment building.",
			Safety:      3,
			Connections: []storage.Identifier{"victory-square"},
		},
		"victory-square": &Location{
			Name:        "Victory Square",
			Description: "The central square.",
			Safety:      1,
			Connections: []storage.Identifier{"victory-mansions"},
		},
	}
	npcs := storage.MapStore[*Npc]{
		"parsons": &Npc{
			Name:     "Parsons",
			Trust:    20,
			Location: "victory-mansions",
			Responses: []Response{
				{Text: "Parsons beams with approval.", Loyalty: 5},
			},
		},
	}
	texts := storage.MapStore[*ForbiddenText]{
		"freedom-eng": &ForbiddenText{
			Title:         "The Path to Freedom",
			Content:       "We want only to live freely in peace.",
			Language:      "english",
			Topic:         "voluntary-exchange",
			Difficulty:    3,
			SuspicionRisk: 7,
			Locations:     []storage.Identifier{"victory-square"},
		},
	}
	return locations, npcs, texts
}

func TestNew_ValidContent(t *testing.T) {
	locations, npcs, texts := testContent()

	w, err := New(locations, npcs, texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Location("victory-square") == nil {
		t.Error("expected victory-square to resolve")
	}
	if !w.Location("victory-mansions").ConnectsTo("victory-square") {
		t.Error("expected victory-mansions to connect to victory-square")
	}
}

func TestNew_DanglingReferences(t *testing.T) {
	tests := map[string]func(storage.MapStore[*Location], storage.MapStore[*Npc], storage.MapStore[*ForbiddenText]){
		"dangling connection": func(l storage.MapStore[*Location], _ storage.MapStore[*Npc], _ storage.MapStore[*ForbiddenText]) {
			l["victory-square"].Connections = append(l["victory-square"].Connections, "room-101")
		},
		"dangling npc location": func(_ storage.MapStore[*Location], n storage.MapStore[*Npc], _ storage.MapStore[*ForbiddenText]) {
			n["parsons"].Location = "room-101"
		},
		"dangling text location": func(_ storage.MapStore[*Location], _ storage.MapStore[*Npc], x storage.MapStore[*ForbiddenText]) {
			x["freedom-eng"].Locations = []storage.Identifier{"room-101"}
		},
	}

	for name, corrupt := range tests {
		t.Run(name, func(t *testing.T) {
			locations, npcs, texts := testContent()
			corrupt(locations, npcs, texts)

			_, err := New(locations, npcs, texts)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNpcsAt(t *testing.T) {
	locations, npcs, texts := testContent()
	w, err := New(locations, npcs, texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := w.NpcsAt("victory-mansions")
	if len(at) != 1 {
		t.Fatalf("expected 1 npc at victory-mansions, got %d", len(at))
	}
	if at["parsons"] == nil {
		t.Error("expected parsons at victory-mansions")
	}

	if len(w.NpcsAt("victory-square")) != 0 {
		t.Error("expected no npcs at victory-square")
	}
}

func TestTextsAt(t *testing.T) {
	locations, npcs, texts := testContent()
	w, err := New(locations, npcs, texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := w.TextsAt("victory-square")
	if len(at) != 1 {
		t.Fatalf("expected 1 text at victory-square, got %d", len(at))
	}

	if len(w.TextsAt("victory-mansions")) != 0 {
		t.Error("expected no texts at victory-mansions")
	}
}

func TestLocationValidate(t *testing.T) {
	tests := map[string]struct {
		loc    Location
		expErr bool
	}{
		"valid":          {loc: Location{Name: "Canteen", Safety: 2}},
		"missing name":   {loc: Location{Safety: 2}, expErr: true},
		"safety too low": {loc: Location{Name: "Canteen", Safety: -1}, expErr: true},
		"safety too big": {loc: Location{Name: "Canteen", Safety: 6}, expErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.loc.Validate()
			if tt.expErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNpcValidate(t *testing.T) {
	valid := Npc{
		Name:     "Syme",
		Location: "canteen",
		Trust:    50,
		Responses: []Response{
			{Text: "Syme nods eagerly.", Loyalty: 5},
		},
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	gated := valid
	gated.Responses = []Response{{Text: "ok", MinTrust: 20}}
	if err := gated.Validate(); err == nil {
		t.Error("expected error for min_trust without refusal_text")
	}

	empty := valid
	empty.Responses = nil
	if err := empty.Validate(); err == nil {
		t.Error("expected error for npc without responses")
	}
}
