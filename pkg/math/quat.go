package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Normalize returns a normalized quaternion.
// Degenerate input normalizes to identity.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Neg returns -q, which encodes the same rotation.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Slerp performs spherical linear interpolation between two quaternions
// along the shortest arc. t in [0, 1] interpolates; values outside that
// range continue along the same great circle.
func (q Quat) Slerp(other Quat, t float32) Quat {
	cosTheta := float64(q.Dot(other))

	// Negate one side to take the shorter path
	if cosTheta < 0 {
		other = other.Neg()
		cosTheta = -cosTheta
	}

	// Nearly parallel: sin(theta) is too small to divide by
	if cosTheta > 0.9995 {
		return q.blend(other, 1-t, t).Normalize()
	}

	theta := math.Atan2(math.Sqrt(1-cosTheta*cosTheta), cosTheta)
	sinTheta := math.Sin(theta)
	tt := float64(t)
	a := float32(math.Sin((1-tt)*theta) / sinTheta)
	b := float32(math.Sin(tt*theta) / sinTheta)

	return q.blend(other, a, b).Normalize()
}

// blend returns a*q + b*other component-wise.
func (q Quat) blend(other Quat, a, b float32) Quat {
	return Quat{
		X: a*q.X + b*other.X,
		Y: a*q.Y + b*other.Y,
		Z: a*q.Z + b*other.Z,
		W: a*q.W + b*other.W,
	}
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// SameRotation reports whether q and other encode the same rotation
// within eps, treating q and -q as equal.
func (q Quat) SameRotation(other Quat, eps float32) bool {
	d := absf(q.Normalize().Dot(other.Normalize()))
	return 1-d <= eps
}

// ToMat4 converts the quaternion to a column-major rotation matrix.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()

	// Doubled components keep the products below free of factors of two
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2

	var m Mat4
	m[0], m[1], m[2] = 1-(yy+zz), xy+wz, xz-wy
	m[4], m[5], m[6] = xy-wz, 1-(xx+zz), yz+wx
	m[8], m[9], m[10] = xz+wy, yz-wx, 1-(xx+yy)
	m[15] = 1
	return m
}
