package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-oceania/internal/engine"
)

type GameConfig struct {
	TickInterval      string `json:"tick_interval"`
	TicksPerDay       int    `json:"ticks_per_day"`
	QueueSize         int    `json:"queue_size"`
	Seed              int64  `json:"seed"`
	StartLocation     string `json:"start_location"`
	PersistCharacters bool   `json:"persist_characters"`
}

func (c *GameConfig) validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Millisecond {
			el.Add(fmt.Errorf("tick_interval must be at least 1ms"))
		}
	}

	if c.TicksPerDay < 0 {
		el.Add(fmt.Errorf("ticks_per_day must not be negative"))
	}

	if c.QueueSize < 0 {
		el.Add(fmt.Errorf("queue_size must not be negative"))
	}

	if c.StartLocation == "" {
		el.Add(fmt.Errorf("start_location is required"))
	}

	return el.Err()
}

func (c *GameConfig) engineOpts() ([]engine.EngineOpt, error) {
	var opts []engine.EngineOpt

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		opts = append(opts, engine.WithTickInterval(d))
	}
	if c.TicksPerDay > 0 {
		opts = append(opts, engine.WithTicksPerDay(c.TicksPerDay))
	}
	if c.QueueSize > 0 {
		opts = append(opts, engine.WithQueueSize(c.QueueSize))
	}
	opts = append(opts, engine.WithCharacterPersistence(c.PersistCharacters))

	return opts, nil
}
