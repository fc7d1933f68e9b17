package geometry

import (
	"math"
	"math/rand"

	"github.com/user/go-sample-pathtracer/pkg/core"
)

// Camera generates primary rays for rendering. It is a pinhole camera by
// default; SetFocus turns on depth of field via a thin-lens aperture.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	width, height   int
	viewportWidth   float64
	viewportHeight  float64
	focusDistance   float64
	lensRadius      float64
}

// NewCamera creates a camera from a position, look-at point, up vector,
// image dimensions and a vertical field of view in degrees
func NewCamera(lookFrom, lookAt, up core.Vec3, width, height int, verticalFov float64) *Camera {
	theta := verticalFov * math.Pi / 180
	h := math.Tan(theta / 2)
	aspectRatio := float64(width) / float64(height)

	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	c := &Camera{
		origin:         lookFrom,
		u:              u,
		v:              v,
		w:              w,
		width:          width,
		height:         height,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		focusDistance:  1.0,
		lensRadius:     0,
	}
	c.recompute()
	return c
}

// SetFocus focuses the camera on the given point and opens the aperture
// to the given radius, enabling depth of field
func (c *Camera) SetFocus(focalPoint core.Vec3, apertureRadius float64) {
	c.focusDistance = focalPoint.Subtract(c.origin).Length()
	c.lensRadius = apertureRadius
	c.recompute()
}

func (c *Camera) recompute() {
	c.horizontal = c.u.Multiply(c.viewportWidth * c.focusDistance)
	c.vertical = c.v.Multiply(c.viewportHeight * c.focusDistance)
	c.lowerLeftCorner = c.origin.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(c.w.Multiply(c.focusDistance))
}

// GetRay generates a ray for viewport coordinates (s, t) in [0,1].
// With a non-zero aperture the ray origin is offset by a random point on
// the lens disk.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// RandomRay generates a camera ray through pixel (px, py), jittered
// uniformly within the pixel. Pixel (0,0) is the top-left corner.
func (c *Camera) RandomRay(px, py int, random *rand.Rand) core.Ray {
	s := (float64(px) + random.Float64()) / float64(c.width)
	t := 1.0 - (float64(py)+random.Float64())/float64(c.height)
	return c.GetRay(s, t, random)
}
