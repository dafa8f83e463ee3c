// Package gamemath provides small vector helpers shared by the simulation
// systems. It has no dependencies on donburi or ebitengine — pure math only.
package gamemath

import "math"

// Vector is a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns the unit vector in the direction of v. The zero vector
// normalizes to the zero vector rather than dividing by zero.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// DistanceSquared returns the squared distance between two points. Range
// checks compare against squared radii to avoid the sqrt.
func DistanceSquared(a, b Vector) float64 {
	return a.Sub(b).LengthSquared()
}
