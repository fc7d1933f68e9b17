package material

import (
	"github.com/user/go-sample-pathtracer/pkg/core"
)

// Reflectivity selects how reflective a surface is: either a fixed
// coefficient in [0,1], or a physically derived Fresnel reflectance
// computed per-hit from the indices of refraction.
type Reflectivity struct {
	fresnel bool
	value   float64
}

// FixedReflectivity returns a constant reflectivity in [0,1]
func FixedReflectivity(value float64) Reflectivity {
	return Reflectivity{value: value}
}

// FresnelReflectivity returns a reflectivity derived from the Fresnel
// equations at each hit
func FresnelReflectivity() Reflectivity {
	return Reflectivity{fresnel: true}
}

// IsFresnel reports whether the reflectivity is Fresnel-derived
func (r Reflectivity) IsFresnel() bool {
	return r.fresnel
}

// Value returns the fixed reflectivity coefficient. Only meaningful when
// IsFresnel is false.
func (r Reflectivity) Value() float64 {
	return r.value
}

// Material describes a surface response: diffuse albedo, self-emission,
// reflectivity, index of refraction, and the cone angle that blurs
// reflected rays (0 = perfect mirror).
type Material struct {
	Diffuse             core.Vec3
	Emission            core.Vec3
	Reflectivity        Reflectivity
	IOR                 float64
	ReflectionConeAngle float64 // radians
}

// Diffuse creates a matte material with the given albedo
func Diffuse(color core.Vec3) Material {
	return Material{Diffuse: color, IOR: 1.0}
}

// Light creates an emissive material
func Light(emission core.Vec3) Material {
	return Material{Emission: emission, IOR: 1.0}
}

// Reflective creates a material with a fixed reflectivity coefficient
func Reflective(color core.Vec3, reflectivity float64) Material {
	return Material{
		Diffuse:      color,
		Reflectivity: FixedReflectivity(reflectivity),
		IOR:          1.0,
	}
}

// ShinyFresnel creates a glossy material whose reflectivity follows the
// Fresnel equations for the given index of refraction
func ShinyFresnel(color core.Vec3, ior, coneAngle float64) Material {
	return Material{
		Diffuse:             color,
		Reflectivity:        FresnelReflectivity(),
		IOR:                 ior,
		ReflectionConeAngle: coneAngle,
	}
}
