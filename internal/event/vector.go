package event

import "math"

// Vector3 is a detector-coordinate three-vector. Components are in the
// units of the field it was read from (cm for positions, MeV/c for momenta).
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{s * v.X, s * v.Y, s * v.Z}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Mag() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns the unit vector along v. For a zero vector every component is
// NaN; callers that cannot tolerate the sentinel must check Mag first.
func (v Vector3) Unit() Vector3 {
	m := v.Mag()
	if m == 0 {
		nan := math.NaN()
		return Vector3{nan, nan, nan}
	}
	return v.Scale(1 / m)
}

// Transverse returns the component of v perpendicular to a unit axis:
// v - (v . axis) axis.
func (v Vector3) Transverse(axis Vector3) Vector3 {
	return v.Sub(axis.Scale(v.Dot(axis)))
}
