package engine

import "time"

type EngineOpt func(*Engine)

func WithTickInterval(interval time.Duration) EngineOpt {
	return func(e *Engine) {
		e.tickInterval = interval
	}
}

func WithTicksPerDay(ticks int) EngineOpt {
	return func(e *Engine) {
		e.ticksPerDay = ticks
	}
}

func WithQueueSize(size int) EngineOpt {
	return func(e *Engine) {
		e.queueSize = size
	}
}

func WithCharacterPersistence(persist bool) EngineOpt {
	return func(e *Engine) {
		e.persistCharacters = persist
	}
}
