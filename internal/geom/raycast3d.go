package geom

import "math"

// RaycastResult3D describes a ray query in 3D; impact fields are only
// meaningful when DidImpact is set.
type RaycastResult3D struct {
	DidImpact    bool
	ImpactDist   float64
	ImpactPos    Vec3
	ImpactNormal Vec3

	RayStart     Vec3
	RayFwdNormal Vec3
	RayMaxLength float64
}

// Ray3 is a normalised ray with a maximum length
type Ray3 struct {
	Start   Vec3
	Fwd     Vec3
	MaxDist float64
}

// NewRay3 normalises fwd; ok is false for a degenerate direction
func NewRay3(start, fwd Vec3, maxDist float64) (Ray3, bool) {
	n := Normalize3(fwd)
	return Ray3{Start: start, Fwd: n, MaxDist: maxDist}, n != (Vec3{})
}

func (r Ray3) miss() RaycastResult3D {
	return RaycastResult3D{RayStart: r.Start, RayFwdNormal: r.Fwd, RayMaxLength: r.MaxDist}
}

func (r Ray3) hit(dist float64, normal Vec3) RaycastResult3D {
	res := r.miss()
	res.DidImpact = true
	res.ImpactDist = dist
	res.ImpactPos = r.Start.Add(r.Fwd.Mul(dist))
	res.ImpactNormal = normal
	return res
}

// RaycastVsSphere3D casts against a solid sphere
func RaycastVsSphere3D(start, fwd Vec3, maxDist float64, s Sphere) RaycastResult3D {
	ray, ok := NewRay3(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	if s.Contains(ray.Start) {
		return ray.hit(0, ray.Fwd.Mul(-1))
	}

	toCenter := s.Center.Sub(ray.Start)
	along := toCenter.Dot(ray.Fwd)
	acrossSq := toCenter.Dot(toCenter) - along*along
	if acrossSq >= s.Radius*s.Radius {
		return ray.miss()
	}
	dist := along - math.Sqrt(s.Radius*s.Radius-acrossSq)
	if dist < 0 || dist > ray.MaxDist {
		return ray.miss()
	}
	res := ray.hit(dist, Vec3{})
	res.ImpactNormal = Normalize3(res.ImpactPos.Sub(s.Center))
	return res
}

// RaycastVsAABB3D casts against a solid box using the slab method
func RaycastVsAABB3D(start, fwd Vec3, maxDist float64, box AABB3) RaycastResult3D {
	ray, ok := NewRay3(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	if box.Contains(ray.Start) {
		return ray.hit(0, ray.Fwd.Mul(-1))
	}
	enter, axis, ok := raycastSlabs(ray.Start[:], ray.Fwd[:], box.Mins[:], box.Maxs[:], ray.MaxDist)
	if !ok {
		return ray.miss()
	}
	var normal Vec3
	normal[axis] = -math.Copysign(1, ray.Fwd[axis])
	return ray.hit(enter, normal)
}

// RaycastVsOBB3D casts against an oriented box in its local frame
func RaycastVsOBB3D(start, fwd Vec3, maxDist float64, box OBB3) RaycastResult3D {
	ray, ok := NewRay3(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	localStart := box.ToLocal(ray.Start)
	localFwd := Vec3{ray.Fwd.Dot(box.IBasis), ray.Fwd.Dot(box.JBasis), ray.Fwd.Dot(box.KBasis)}
	local := RaycastVsAABB3D(localStart, localFwd, maxDist,
		AABB3{Mins: box.HalfDims.Mul(-1), Maxs: box.HalfDims})
	if !local.DidImpact {
		return ray.miss()
	}
	return ray.hit(local.ImpactDist, box.ToWorldDirection(local.ImpactNormal))
}

// RaycastVsPlane3D casts against an infinite plane; the normal faces the ray
func RaycastVsPlane3D(start, fwd Vec3, maxDist float64, p Plane3) RaycastResult3D {
	ray, ok := NewRay3(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	approach := ray.Fwd.Dot(p.Normal)
	if math.Abs(approach) < Epsilon {
		return ray.miss()
	}
	dist := -p.Altitude(ray.Start) / approach
	if dist < 0 || dist > ray.MaxDist {
		return ray.miss()
	}
	normal := p.Normal
	if approach > 0 {
		normal = normal.Mul(-1)
	}
	return ray.hit(dist, normal)
}

// RaycastVsZCylinder3D intersects the cap slab interval with the side interval
func RaycastVsZCylinder3D(start, fwd Vec3, maxDist float64, c ZCylinder) RaycastResult3D {
	ray, ok := NewRay3(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	if c.Contains(ray.Start) {
		return ray.hit(0, ray.Fwd.Mul(-1))
	}

	capEnter, capExit := math.Inf(-1), math.Inf(1)
	if math.Abs(ray.Fwd.Z()) < Epsilon {
		if ray.Start.Z() < c.Base.Z() || ray.Start.Z() > c.Top() {
			return ray.miss()
		}
	} else {
		capEnter = (c.Base.Z() - ray.Start.Z()) / ray.Fwd.Z()
		capExit = (c.Top() - ray.Start.Z()) / ray.Fwd.Z()
		if capEnter > capExit {
			capEnter, capExit = capExit, capEnter
		}
	}

	sideEnter, sideExit := math.Inf(-1), math.Inf(1)
	offset := Vec2{ray.Start.X() - c.Base.X(), ray.Start.Y() - c.Base.Y()}
	flat := Vec2{ray.Fwd.X(), ray.Fwd.Y()}
	a := flat.Dot(flat)
	cc := offset.Dot(offset) - c.Radius*c.Radius
	if a < Epsilon {
		if cc > 0 {
			return ray.miss()
		}
	} else {
		b := 2 * offset.Dot(flat)
		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return ray.miss()
		}
		root := math.Sqrt(discriminant)
		sideEnter = (-b - root) / (2 * a)
		sideExit = (-b + root) / (2 * a)
	}

	enter := math.Max(capEnter, sideEnter)
	exit := math.Min(capExit, sideExit)
	if enter > exit || enter < 0 || enter > ray.MaxDist {
		return ray.miss()
	}
	res := ray.hit(enter, Vec3{})
	if capEnter >= sideEnter {
		res.ImpactNormal = Vec3{0, 0, -math.Copysign(1, ray.Fwd.Z())}
	} else {
		rim := Normalize2(Vec2{res.ImpactPos.X() - c.Base.X(), res.ImpactPos.Y() - c.Base.Y()})
		res.ImpactNormal = Vec3{rim.X(), rim.Y(), 0}
	}
	return res
}

// NearestHit3D returns the index of the closest impact, or -1. Earlier results
// win ties.
func NearestHit3D(results []RaycastResult3D) int {
	best := -1
	for i, r := range results {
		if !r.DidImpact {
			continue
		}
		if best < 0 || r.ImpactDist < results[best].ImpactDist {
			best = i
		}
	}
	return best
}
