package physics

import "math"

// Quat is a rotation quaternion. All quaternions handed to or returned by
// this package are unit length; Step renormalizes every tick so float drift
// never accumulates.
type Quat struct {
	W float64 `json:"w"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func IdentityQuat() Quat {
	return Quat{W: 1}
}

// AxisAngle builds a rotation of angle radians around axis. The axis must be
// non-zero; it is normalized here.
func AxisAngle(axis Vec3, angle float64) Quat {
	l := axis.Length()
	if l == 0 {
		return IdentityQuat()
	}
	s := math.Sin(angle/2) / l
	return Quat{
		W: math.Cos(angle / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Mul composes rotations: (q.Mul(p)) applies p first, then q.
func (q Quat) Mul(p Quat) Quat {
	return Quat{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns the unit quaternion in q's direction. A degenerate
// zero quaternion normalizes to identity rather than NaN.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n == 0 {
		return IdentityQuat()
	}
	return Quat{q.W / n, q.X / n, q.Y / n, q.Z / n}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = q * (0,v) * q^-1, expanded
	t := Vec3{
		X: 2 * (q.Y*v.Z - q.Z*v.Y),
		Y: 2 * (q.Z*v.X - q.X*v.Z),
		Z: 2 * (q.X*v.Y - q.Y*v.X),
	}
	cross := Vec3{
		X: q.Y*t.Z - q.Z*t.Y,
		Y: q.Z*t.X - q.X*t.Z,
		Z: q.X*t.Y - q.Y*t.X,
	}
	return v.Add(t.Scale(q.W)).Add(cross)
}

// Forward returns the craft's nose direction (body +Z) in world space.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3{Z: 1})
}

// Right returns the body +X axis in world space.
func (q Quat) Right() Vec3 {
	return q.Rotate(Vec3{X: 1})
}

// Up returns the body +Y axis in world space.
func (q Quat) Up() Vec3 {
	return q.Rotate(Vec3{Y: 1})
}
