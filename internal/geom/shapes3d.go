package geom

import "math"

// Sphere is a solid ball
type Sphere struct {
	Center Vec3
	Radius float64
}

// AABB3 is an axis-aligned box
type AABB3 struct {
	Mins Vec3
	Maxs Vec3
}

// OBB3 is a box whose local axes are the orthonormal IBasis, JBasis, KBasis
type OBB3 struct {
	Center   Vec3
	IBasis   Vec3
	JBasis   Vec3
	KBasis   Vec3
	HalfDims Vec3
}

// ZCylinder is an upright cylinder standing on Base and extending Height along +Z
type ZCylinder struct {
	Base   Vec3
	Radius float64
	Height float64
}

// Plane3 holds the points p with p·Normal == Distance
type Plane3 struct {
	Normal   Vec3
	Distance float64
}

// NewOBB3 builds an oriented box from i and j; k completes a right-handed frame.
// Degenerate axes fall back to the world frame.
func NewOBB3(center, iBasis, jBasis, halfDims Vec3) OBB3 {
	i := Normalize3(iBasis)
	if i == (Vec3{}) {
		i = Vec3{1, 0, 0}
	}
	k := Normalize3(i.Cross(jBasis))
	if k == (Vec3{}) {
		k = Normalize3(i.Cross(Vec3{0, 0, 1}))
		if k == (Vec3{}) {
			k = Normalize3(i.Cross(Vec3{0, 1, 0}))
		}
	}
	j := k.Cross(i)
	return OBB3{Center: center, IBasis: i, JBasis: j, KBasis: k, HalfDims: halfDims}
}

// NewPlane3 builds a plane from a normal and a point on it
func NewPlane3(normal, point Vec3) Plane3 {
	n := Normalize3(normal)
	if n == (Vec3{}) {
		n = Vec3{0, 0, 1}
	}
	return Plane3{Normal: n, Distance: point.Dot(n)}
}

// Center returns the midpoint of the box
func (b AABB3) Center() Vec3 {
	return b.Mins.Add(b.Maxs).Mul(0.5)
}

// HalfDims returns half the box extents
func (b AABB3) HalfDims() Vec3 {
	return b.Maxs.Sub(b.Mins).Mul(0.5)
}

// ToLocal expresses a world point in the box frame
func (b OBB3) ToLocal(p Vec3) Vec3 {
	d := p.Sub(b.Center)
	return Vec3{d.Dot(b.IBasis), d.Dot(b.JBasis), d.Dot(b.KBasis)}
}

// ToWorld is the inverse of ToLocal
func (b OBB3) ToWorld(local Vec3) Vec3 {
	return b.Center.
		Add(b.IBasis.Mul(local.X())).
		Add(b.JBasis.Mul(local.Y())).
		Add(b.KBasis.Mul(local.Z()))
}

// ToWorldDirection rotates a local direction into the world
func (b OBB3) ToWorldDirection(local Vec3) Vec3 {
	return b.IBasis.Mul(local.X()).Add(b.JBasis.Mul(local.Y())).Add(b.KBasis.Mul(local.Z()))
}

// Corners returns the eight corners; bit n of the index picks +HalfDims on axis n
func (b OBB3) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := range corners {
		var local Vec3
		for axis := 0; axis < 3; axis++ {
			local[axis] = -b.HalfDims[axis]
			if i&(1<<axis) != 0 {
				local[axis] = b.HalfDims[axis]
			}
		}
		corners[i] = b.ToWorld(local)
	}
	return corners
}

// ProjectedRadius is the half-length of the box's shadow on a unit axis
func (b OBB3) ProjectedRadius(axis Vec3) float64 {
	return b.HalfDims.X()*math.Abs(b.IBasis.Dot(axis)) +
		b.HalfDims.Y()*math.Abs(b.JBasis.Dot(axis)) +
		b.HalfDims.Z()*math.Abs(b.KBasis.Dot(axis))
}

// Top returns the z of the cylinder's upper cap
func (c ZCylinder) Top() float64 {
	return c.Base.Z() + c.Height
}

// Altitude returns the signed distance of p above the plane
func (p Plane3) Altitude(point Vec3) float64 {
	return point.Dot(p.Normal) - p.Distance
}

// NearestPoint returns p when inside, else the closest point on the surface
func (s Sphere) NearestPoint(p Vec3) Vec3 {
	return s.Center.Add(ClampLength3(p.Sub(s.Center), s.Radius))
}

// Contains reports whether p lies inside or on the sphere
func (s Sphere) Contains(p Vec3) bool {
	return DistanceSquared3(p, s.Center) <= s.Radius*s.Radius
}

// NearestPoint clamps p into the box
func (b AABB3) NearestPoint(p Vec3) Vec3 {
	return Vec3{
		Clamp(p.X(), b.Mins.X(), b.Maxs.X()),
		Clamp(p.Y(), b.Mins.Y(), b.Maxs.Y()),
		Clamp(p.Z(), b.Mins.Z(), b.Maxs.Z()),
	}
}

// Contains reports whether p lies inside or on the box
func (b AABB3) Contains(p Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Mins[axis] || p[axis] > b.Maxs[axis] {
			return false
		}
	}
	return true
}

// NearestPoint clamps p into the box in local space
func (b OBB3) NearestPoint(p Vec3) Vec3 {
	local := b.ToLocal(p)
	for axis := 0; axis < 3; axis++ {
		local[axis] = Clamp(local[axis], -b.HalfDims[axis], b.HalfDims[axis])
	}
	return b.ToWorld(local)
}

// Contains reports whether p lies inside or on the box
func (b OBB3) Contains(p Vec3) bool {
	local := b.ToLocal(p)
	for axis := 0; axis < 3; axis++ {
		if math.Abs(local[axis]) > b.HalfDims[axis] {
			return false
		}
	}
	return true
}

// NearestPoint clamps height to the caps and the horizontal offset to the radius
func (c ZCylinder) NearestPoint(p Vec3) Vec3 {
	z := Clamp(p.Z(), c.Base.Z(), c.Top())
	offset := ClampLength2(Vec2{p.X() - c.Base.X(), p.Y() - c.Base.Y()}, c.Radius)
	return Vec3{c.Base.X() + offset.X(), c.Base.Y() + offset.Y(), z}
}

// Contains reports whether p lies inside or on the cylinder
func (c ZCylinder) Contains(p Vec3) bool {
	if p.Z() < c.Base.Z() || p.Z() > c.Top() {
		return false
	}
	dx, dy := p.X()-c.Base.X(), p.Y()-c.Base.Y()
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// NearestPoint projects p onto the plane
func (p Plane3) NearestPoint(point Vec3) Vec3 {
	return point.Sub(p.Normal.Mul(p.Altitude(point)))
}
