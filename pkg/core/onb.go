package core

import "math"

// OrthoNormalBasis is a set of three mutually orthogonal unit vectors,
// used to map local hemisphere samples into world space
type OrthoNormalBasis struct {
	U, V, W Vec3
}

// NewONBFromW constructs a basis whose W axis is the given vector.
// The input does not need to be normalized.
func NewONBFromW(w Vec3) OrthoNormalBasis {
	w = w.Normalize()

	// Pick a helper axis that is not nearly parallel to w
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return OrthoNormalBasis{U: u, V: v, W: w}
}

// Transform maps a vector expressed in this basis into world space
func (b OrthoNormalBasis) Transform(local Vec3) Vec3 {
	return b.U.Multiply(local.X).
		Add(b.V.Multiply(local.Y)).
		Add(b.W.Multiply(local.Z))
}
