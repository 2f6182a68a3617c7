package physics

// Tuning constants for the flight model. Mass is folded into the force
// terms (unit mass), matching the simple model the clients expect.
const (
	Gravity        = 9.81 // m/s^2, world -Y
	ThrustMax      = 20.0 // N at full throttle
	DragCoeff      = 0.5  // linear drag
	RotationRate   = 1.5  // rad/s at full deflection
	ThrottleSlew   = 2.0  // throttle units per second at full input
	GroundFriction = 0.9  // horizontal velocity retained per tick on the ground
)

// ControlInput is the last flight input received from a client. Components
// are expected in [-1,1]; Clamped bounds them before integration, so
// out-of-range client values steer at full deflection instead of erroring.
type ControlInput struct {
	Pitch          float64 `json:"pitch"`
	Roll           float64 `json:"roll"`
	Yaw            float64 `json:"yaw"`
	ThrottleChange float64 `json:"throttle_change"`
}

// Clamped returns the input with every component bounded to [-1,1].
func (in ControlInput) Clamped() ControlInput {
	return ControlInput{
		Pitch:          clamp(in.Pitch, -1, 1),
		Roll:           clamp(in.Roll, -1, 1),
		Yaw:            clamp(in.Yaw, -1, 1),
		ThrottleChange: clamp(in.ThrottleChange, -1, 1),
	}
}

// Craft is one simulated vehicle's kinematic state.
type Craft struct {
	Position    Vec3         `json:"position"`
	Velocity    Vec3         `json:"velocity"`
	Orientation Quat         `json:"orientation"`
	Throttle    float64      `json:"throttle"`
	Input       ControlInput `json:"input"`
}

// NewCraft returns a craft at rest on the origin, nose level.
func NewCraft() Craft {
	return Craft{
		Position:    Vec3{Y: 1.7},
		Orientation: IdentityQuat(),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
