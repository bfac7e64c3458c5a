// Package geom provides the floating point vector, matrix and rectangle
// value types the simulation is expressed in. Zone space has its origin at
// the top-left corner and y grows downward.
package geom

import "math"

// Vector is an immutable 2D point or direction.
type Vector struct {
	X float64
	Y float64
}

// Zero is the null vector.
var Zero = Vector{}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Norm returns the euclidean length of v.
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector pointing like v.
// The zero vector normalizes to itself.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return Zero
	}
	return Vector{X: v.X / n, Y: v.Y / n}
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Transform applies the linear map m to v.
func (v Vector) Transform(m Matrix) Vector {
	return Vector{
		X: m.M11*v.X + m.M12*v.Y,
		Y: m.M21*v.X + m.M22*v.Y,
	}
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Matrix is a 2x2 linear transform in row-major order.
type Matrix struct {
	M11, M12 float64
	M21, M22 float64
}

// Identity leaves vectors unchanged.
var Identity = Matrix{M11: 1, M22: 1}

// Rotation returns the matrix rotating vectors by theta radians.
// With y pointing down a positive theta turns clockwise on screen.
func Rotation(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{
		M11: cos, M12: -sin,
		M21: sin, M22: cos,
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
