package resolver

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/go-oceania/internal/game"
	"github.com/pixil98/go-oceania/internal/world"
)

// templateFuncs provides utility functions for narrative templates.
var templateFuncs = sprig.TxtFuncMap()

// dialogueData is what NPC response templates see.
type dialogueData struct {
	Actor *game.Character
	Npc   *world.Npc
}

// expandDialogue expands an NPC response template against the acting
// character. Content without template markers passes through untouched.
func expandDialogue(tmplStr string, actor *game.Character, npc *world.Npc) (string, error) {
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing dialogue template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, &dialogueData{Actor: actor, Npc: npc})
	if err != nil {
		return "", fmt.Errorf("executing dialogue template: %w", err)
	}

	return buf.String(), nil
}
