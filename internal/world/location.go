package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-oceania/internal/storage"
)

const (
	// SafetyMin marks a location under total surveillance.
	SafetyMin = 0
	// SafetyMax marks a location effectively free of surveillance.
	SafetyMax = 5
)

// Location is one place on the RPG map. Locations are static content;
// nothing in the simulation mutates them.
type Location struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Safety      int                  `json:"safety"`
	Connections []storage.Identifier `json:"connections"`
}

func (l *Location) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}

	if l.Safety < SafetyMin || l.Safety > SafetyMax {
		el.Add(fmt.Errorf("safety must be between %d and %d", SafetyMin, SafetyMax))
	}

	return el.Err()
}

// ConnectsTo reports whether target is directly reachable from this location.
func (l *Location) ConnectsTo(target storage.Identifier) bool {
	for _, c := range l.Connections {
		if c == target {
			return true
		}
	}
	return false
}
