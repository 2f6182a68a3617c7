package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-oceania/internal/storage"
)

// ForbiddenText is a fragment of banned literature hidden somewhere in the
// world. Reading one trades suspicion for understanding of its topic.
type ForbiddenText struct {
	Title         string               `json:"title"`
	Content       string               `json:"content"`
	Language      string               `json:"language"` // e.g. "czech", "english"
	Topic         string               `json:"topic"`
	Difficulty    int                  `json:"difficulty"`     // 1-10, understanding gained
	SuspicionRisk int                  `json:"suspicion_risk"` // 1-10, risk of being caught with it
	Locations     []storage.Identifier `json:"locations"`
}

func (t *ForbiddenText) Validate() error {
	el := errors.NewErrorList()

	if t.Title == "" {
		el.Add(fmt.Errorf("title is required"))
	}

	if t.Topic == "" {
		el.Add(fmt.Errorf("topic is required"))
	}

	if t.Difficulty < 1 || t.Difficulty > 10 {
		el.Add(fmt.Errorf("difficulty must be between 1 and 10"))
	}

	if t.SuspicionRisk < 1 || t.SuspicionRisk > 10 {
		el.Add(fmt.Errorf("suspicion_risk must be between 1 and 10"))
	}

	if len(t.Locations) == 0 {
		el.Add(fmt.Errorf("at least one location is required"))
	}

	return el.Err()
}

// HiddenAt reports whether the text can be found at the given location.
func (t *ForbiddenText) HiddenAt(loc storage.Identifier) bool {
	for _, l := range t.Locations {
		if l == loc {
			return true
		}
	}
	return false
}
