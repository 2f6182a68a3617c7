package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type ListenerConfig struct {
	Port uint16 `json:"port"`
}

func (c *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if c.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}

	return el.Err()
}
