package physics

// Step advances one craft by dt seconds under its current control input and
// returns the new state. It is a total function: any input produces a valid
// state, out-of-range controls are clamped, and the returned orientation is
// always unit length.
//
// Integration is semi-implicit Euler: forces update velocity first, then the
// updated velocity moves the position. Orientation composes small per-axis
// rotations in body frame, then renormalizes.
func Step(c Craft, dt float64) Craft {
	in := c.Input.Clamped()

	c.Throttle = clamp(c.Throttle+in.ThrottleChange*ThrottleSlew*dt, 0, 1)

	pitch := AxisAngle(c.Orientation.Right(), in.Pitch*RotationRate*dt)
	roll := AxisAngle(c.Orientation.Forward(), in.Roll*RotationRate*dt)
	yaw := AxisAngle(c.Orientation.Up(), in.Yaw*RotationRate*dt)
	c.Orientation = yaw.Mul(pitch).Mul(roll).Mul(c.Orientation).Normalize()

	thrust := c.Orientation.Forward().Scale(ThrustMax * c.Throttle)
	drag := c.Velocity.Scale(-DragCoeff)
	gravity := Vec3{Y: -Gravity}

	accel := thrust.Add(drag).Add(gravity)
	c.Velocity = c.Velocity.Add(accel.Scale(dt))
	c.Position = c.Position.Add(c.Velocity.Scale(dt))

	// Ground plane at y=0: land, bleed off horizontal speed.
	if c.Position.Y < 0 {
		c.Position.Y = 0
		if c.Velocity.Y < 0 {
			c.Velocity.Y = 0
		}
		c.Velocity.X *= GroundFriction
		c.Velocity.Z *= GroundFriction
	}

	c.Input = in
	return c
}
