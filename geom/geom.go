// Package geom provides the small amount of 2D vector math the simulation
// needs. Vectors are plain values; all operations return new vectors.
package geom

import "math"

type Vec struct{ X, Y float64 }

func (a Vec) Add(b Vec) Vec       { return Vec{a.X + b.X, a.Y + b.Y} }
func (a Vec) Sub(b Vec) Vec       { return Vec{a.X - b.X, a.Y - b.Y} }
func (a Vec) Scale(s float64) Vec { return Vec{a.X * s, a.Y * s} }
func (a Vec) Dot(b Vec) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec) Len2() float64       { return a.X*a.X + a.Y*a.Y }
func (a Vec) Len() float64        { return math.Sqrt(a.Len2()) }

// IsZero reports whether both components are exactly zero.
func (a Vec) IsZero() bool { return a.X == 0 && a.Y == 0 }

// Normalize returns the unit vector in a's direction, or the zero vector
// when a is zero.
func (a Vec) Normalize() Vec {
	l2 := a.Len2()
	if l2 == 0 {
		return Vec{}
	}
	inv := 1 / math.Sqrt(l2)
	return Vec{a.X * inv, a.Y * inv}
}

// Limit caps a's length at max. max <= 0 yields the zero vector.
func (a Vec) Limit(max float64) Vec {
	if max <= 0 {
		return Vec{}
	}
	l2 := a.Len2()
	if l2 > max*max {
		inv := max / math.Sqrt(l2)
		return Vec{a.X * inv, a.Y * inv}
	}
	return a
}

// Rotate treats heading as a unit direction and rotates a by the angle
// heading makes with the +X axis.
func (a Vec) Rotate(heading Vec) Vec {
	return Vec{
		X: a.X*heading.X - a.Y*heading.Y,
		Y: a.X*heading.Y + a.Y*heading.X,
	}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec) float64 { return a.Sub(b).Len() }

// IsFinite reports whether both components are finite numbers.
func (a Vec) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}
