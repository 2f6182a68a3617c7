package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestStatAdd_Clamps(t *testing.T) {
	tests := map[string]struct {
		start Stat
		delta int
		exp   Stat
	}{
		"normal increase":  {start: 50, delta: 10, exp: 60},
		"normal decrease":  {start: 50, delta: -10, exp: 40},
		"clamp at max":     {start: 95, delta: 10, exp: 100},
		"clamp at min":     {start: 5, delta: -10, exp: 0},
		"huge delta":       {start: 50, delta: 100000, exp: 100},
		"huge negative":    {start: 50, delta: -100000, exp: 0},
		"no-op at ceiling": {start: 100, delta: 1, exp: 100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "stat", tt.start.Add(tt.delta), tt.exp)
		})
	}
}

func TestParseOccupation(t *testing.T) {
	if _, ok := ParseOccupation("Records Department Worker"); !ok {
		t.Error("expected known occupation to parse")
	}
	if _, ok := ParseOccupation("Inner Party Chairman"); ok {
		t.Error("expected unknown occupation to be rejected")
	}
	if _, ok := ParseOccupation(""); ok {
		t.Error("expected empty occupation to be rejected")
	}
}

func TestNewCharacter_OccupationAdjustments(t *testing.T) {
	tests := map[string]struct {
		occupation      Occupation
		expLoyalty      Stat
		expSuspicion    Stat
		expThoughtcrime Stat
	}{
		"records worker": {
			occupation:      OccupationRecordsWorker,
			expLoyalty:      45,
			expSuspicion:    0,
			expThoughtcrime: 10,
		},
		"maintenance": {
			occupation:      OccupationMaintenance,
			expLoyalty:      50,
			expSuspicion:    0,
			expThoughtcrime: 0,
		},
		"spy instructor": {
			occupation:      OccupationSpyInstructor,
			expLoyalty:      65,
			expSuspicion:    0, // -10 clamps at floor
			expThoughtcrime: 0,
		},
		"fiction writer": {
			occupation:      OccupationFictionWriter,
			expLoyalty:      50,
			expSuspicion:    0,
			expThoughtcrime: 15,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCharacter("Winston", tt.occupation, "victory-mansions")

			testutil.AssertEqual(t, "loyalty", c.Loyalty, tt.expLoyalty)
			testutil.AssertEqual(t, "suspicion", c.Suspicion, tt.expSuspicion)
			testutil.AssertEqual(t, "thoughtcrime", c.Thoughtcrime, tt.expThoughtcrime)
			testutil.AssertEqual(t, "health", c.Health, Stat(100))
			testutil.AssertEqual(t, "location", string(c.Location), "victory-mansions")
			testutil.AssertEqual(t, "topics", len(c.Knowledge), len(KnowledgeTopics))
		})
	}
}

func TestCharacterTrust_Clamps(t *testing.T) {
	c := NewCharacter("Winston", OccupationRecordsWorker, "victory-mansions")

	c.AddTrust("julia", 150)
	testutil.AssertEqual(t, "trust ceiling", c.Trust("julia"), 100)

	c.AddTrust("charrington", -300)
	testutil.AssertEqual(t, "trust floor", c.Trust("charrington"), -100)

	testutil.AssertEqual(t, "unknown npc", c.Trust("obrien"), 0)
}

func TestCharacterLearn(t *testing.T) {
	c := NewCharacter("Winston", OccupationRecordsWorker, "victory-mansions")

	c.Learn("free-market", 10)
	testutil.AssertEqual(t, "understanding", c.Understanding("free-market"), Stat(10))
	testutil.AssertEqual(t, "economic freedom", c.EconomicFreedom, Stat(5))

	c.Learn("free-market", 100000)
	testutil.AssertEqual(t, "understanding clamped", c.Understanding("free-market"), Stat(100))
}

func TestCharacterEndStates(t *testing.T) {
	c := NewCharacter("Winston", OccupationRecordsWorker, "victory-mansions")
	if c.Dead() || c.Arrested() {
		t.Fatal("fresh character should be alive and free")
	}

	c.Health = c.Health.Add(-200)
	if !c.Dead() {
		t.Error("expected dead at zero health")
	}

	c2 := NewCharacter("Julia", OccupationFictionWriter, "victory-mansions")
	c2.Suspicion = c2.Suspicion.Add(500)
	if !c2.Arrested() {
		t.Error("expected arrest at max suspicion")
	}
}
