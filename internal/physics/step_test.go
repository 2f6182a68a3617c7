package physics

import (
	"math"
	"math/rand"
	"testing"
)

const dt = 1.0 / 30.0

func TestStep_OrientationStaysUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(1984))
	c := NewCraft()

	for i := 0; i < 3000; i++ {
		c.Input = ControlInput{
			Pitch:          rng.Float64()*2 - 1,
			Roll:           rng.Float64()*2 - 1,
			Yaw:            rng.Float64()*2 - 1,
			ThrottleChange: rng.Float64()*2 - 1,
		}
		c = Step(c, dt)

		if n := c.Orientation.Norm(); math.Abs(n-1) > 1e-9 {
			t.Fatalf("tick %d: orientation norm %v, want 1", i, n)
		}
	}
}

func TestStep_InputClamping(t *testing.T) {
	c := NewCraft()
	c.Input = ControlInput{Pitch: 5, Roll: -40, Yaw: 2, ThrottleChange: 100}

	c = Step(c, dt)

	if c.Input.Pitch != 1 || c.Input.Roll != -1 || c.Input.Yaw != 1 || c.Input.ThrottleChange != 1 {
		t.Errorf("input not clamped: %+v", c.Input)
	}
}

func TestStep_ThrottleBounds(t *testing.T) {
	c := NewCraft()
	c.Input = ControlInput{ThrottleChange: 1}
	for i := 0; i < 300; i++ {
		c = Step(c, dt)
	}
	if c.Throttle != 1 {
		t.Errorf("throttle %v after sustained increase, want 1", c.Throttle)
	}

	c.Input = ControlInput{ThrottleChange: -1}
	for i := 0; i < 300; i++ {
		c = Step(c, dt)
	}
	if c.Throttle != 0 {
		t.Errorf("throttle %v after sustained decrease, want 0", c.Throttle)
	}
}

func TestStep_PitchResponseMonotonic(t *testing.T) {
	c := NewCraft()
	c.Input = ControlInput{Pitch: 1}

	// One second of full pitch input rotates the nose steadily on one axis.
	prev := c.Orientation.Forward().Y
	for i := 0; i < 30; i++ {
		c = Step(c, dt)
		cur := c.Orientation.Forward().Y
		if cur >= prev {
			t.Fatalf("tick %d: forward.Y %v did not keep moving (prev %v)", i, cur, prev)
		}
		prev = cur
	}

	// Under zero input the craft falls toward drag equilibrium: the speed
	// change per tick shrinks until drag balances gravity. Start high so
	// the fall never reaches the ground plane.
	c.Input = ControlInput{}
	c.Position = Vec3{Y: 5000}
	for i := 0; i < 600; i++ {
		c = Step(c, dt)
	}
	before := c.Velocity.Length()
	c = Step(c, dt)
	after := c.Velocity.Length()
	if math.Abs(after-before) > 0.01 {
		t.Errorf("speed still changing by %v per tick, want near equilibrium", math.Abs(after-before))
	}
	terminal := Gravity / DragCoeff
	if math.Abs(after-terminal) > 0.5 {
		t.Errorf("equilibrium speed %v, want near terminal %v", after, terminal)
	}
}

func TestStep_GroundPlane(t *testing.T) {
	c := NewCraft()
	c.Position = Vec3{Y: 0.1}
	c.Velocity = Vec3{X: 10, Y: -50, Z: 3}

	c = Step(c, dt)

	if c.Position.Y != 0 {
		t.Errorf("position.Y %v, want 0 on ground contact", c.Position.Y)
	}
	if c.Velocity.Y != 0 {
		t.Errorf("velocity.Y %v, want 0 on ground contact", c.Velocity.Y)
	}
	if c.Velocity.X >= 10 {
		t.Errorf("velocity.X %v, want ground friction applied", c.Velocity.X)
	}
}

func TestStep_ThrustAccelerates(t *testing.T) {
	c := NewCraft()
	c.Throttle = 1

	c = Step(c, dt)

	if c.Velocity.Z <= 0 {
		t.Errorf("velocity.Z %v, want forward acceleration under full throttle", c.Velocity.Z)
	}
}

func TestQuat_RotateRoundTrip(t *testing.T) {
	q := AxisAngle(Vec3{Y: 1}, math.Pi/2)
	v := q.Rotate(Vec3{Z: 1})

	// +Z rotated a quarter turn about +Y lands on +X.
	if math.Abs(v.X-1) > 1e-9 || math.Abs(v.Y) > 1e-9 || math.Abs(v.Z) > 1e-9 {
		t.Errorf("rotated vector %+v, want (1,0,0)", v)
	}
}
