package game

// Stat is a bounded character attribute. Every mutation goes through Add,
// which clamps to [0,100]; a stat can never leave its range no matter how
// large the attempted delta.
type Stat int

const (
	StatMin Stat = 0
	StatMax Stat = 100
)

// Add returns the stat moved by delta, clamped to [StatMin, StatMax].
func (s Stat) Add(delta int) Stat {
	v := int(s) + delta
	if v < int(StatMin) {
		return StatMin
	}
	if v > int(StatMax) {
		return StatMax
	}
	return Stat(v)
}
