package geom

import "math"

// RaycastResult2D describes a ray query. ImpactDist, ImpactPos and ImpactNormal
// are only meaningful when DidImpact is set.
type RaycastResult2D struct {
	DidImpact    bool
	ImpactDist   float64
	ImpactPos    Vec2
	ImpactNormal Vec2

	RayStart     Vec2
	RayFwdNormal Vec2
	RayMaxLength float64
}

// Ray2 is a normalised ray with a maximum length
type Ray2 struct {
	Start   Vec2
	Fwd     Vec2
	MaxDist float64
}

// NewRay2 normalises fwd; the returned ok is false for a degenerate direction
func NewRay2(start, fwd Vec2, maxDist float64) (Ray2, bool) {
	n := Normalize2(fwd)
	return Ray2{Start: start, Fwd: n, MaxDist: maxDist}, n != (Vec2{})
}

// RayBetween2 builds the ray from start towards end, with length |end-start|
func RayBetween2(start, end Vec2) (Ray2, bool) {
	return NewRay2(start, end.Sub(start), end.Sub(start).Len())
}

func (r Ray2) miss() RaycastResult2D {
	return RaycastResult2D{RayStart: r.Start, RayFwdNormal: r.Fwd, RayMaxLength: r.MaxDist}
}

func (r Ray2) hit(dist float64, normal Vec2) RaycastResult2D {
	res := r.miss()
	res.DidImpact = true
	res.ImpactDist = dist
	res.ImpactPos = r.Start.Add(r.Fwd.Mul(dist))
	res.ImpactNormal = normal
	return res
}

// RaycastVsDisc2D casts against a solid disc. A ray starting inside hits at
// distance zero facing back along the ray.
func RaycastVsDisc2D(start, fwd Vec2, maxDist float64, disc Disc2) RaycastResult2D {
	ray, ok := NewRay2(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	if disc.Contains(ray.Start) {
		return ray.hit(0, ray.Fwd.Mul(-1))
	}

	toCenter := disc.Center.Sub(ray.Start)
	along := toCenter.Dot(ray.Fwd)
	across := toCenter.Dot(Rotated90(ray.Fwd))
	if math.Abs(across) >= disc.Radius {
		return ray.miss()
	}
	dist := along - math.Sqrt(disc.Radius*disc.Radius-across*across)
	if dist < 0 || dist > ray.MaxDist {
		return ray.miss()
	}
	res := ray.hit(dist, Vec2{})
	res.ImpactNormal = Normalize2(res.ImpactPos.Sub(disc.Center))
	return res
}

// RaycastVsAABB2D casts against a solid box using the slab method
func RaycastVsAABB2D(start, fwd Vec2, maxDist float64, box AABB2) RaycastResult2D {
	ray, ok := NewRay2(start, fwd, maxDist)
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
	var normal Vec2
	normal[axis] = -math.Copysign(1, ray.Fwd[axis])
	return ray.hit(enter, normal)
}

// RaycastVsOBB2D casts against an oriented box by solving in its local frame
func RaycastVsOBB2D(start, fwd Vec2, maxDist float64, box OBB2) RaycastResult2D {
	ray, ok := NewRay2(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	localStart := box.ToLocal(ray.Start)
	localFwd := Vec2{ray.Fwd.Dot(box.IBasis), ray.Fwd.Dot(box.JBasis())}
	local := RaycastVsAABB2D(localStart, localFwd, maxDist,
		AABB2{Mins: box.HalfDims.Mul(-1), Maxs: box.HalfDims})
	if !local.DidImpact {
		return ray.miss()
	}
	n := local.ImpactNormal
	worldNormal := box.IBasis.Mul(n.X()).Add(box.JBasis().Mul(n.Y()))
	return ray.hit(local.ImpactDist, worldNormal)
}

// RaycastVsLineSegment2D casts against a segment; the normal faces the ray start
func RaycastVsLineSegment2D(start, fwd Vec2, maxDist float64, seg LineSegment2) RaycastResult2D {
	ray, ok := NewRay2(start, fwd, maxDist)
	if !ok {
		return ray.miss()
	}
	span := ray.Fwd.Mul(ray.MaxDist)
	bone := seg.End.Sub(seg.Start)
	denom := cross2(span, bone)
	if math.Abs(denom) < Epsilon {
		return ray.miss()
	}
	toSeg := seg.Start.Sub(ray.Start)
	t := cross2(toSeg, bone) / denom
	u := cross2(toSeg, span) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return ray.miss()
	}
	normal := Normalize2(Rotated90(bone))
	if normal.Dot(ray.Fwd) > 0 {
		normal = normal.Mul(-1)
	}
	return ray.hit(t*ray.MaxDist, normal)
}

// NearestHit2D returns the index of the closest impact, or -1. Earlier results
// win ties.
func NearestHit2D(results []RaycastResult2D) int {
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

// raycastSlabs intersects a ray starting outside a box with each axis slab and
// returns the entry distance and the axis of the face that was entered.
func raycastSlabs(start, fwd, mins, maxs []float64, maxDist float64) (float64, int, bool) {
	enter, exit := math.Inf(-1), math.Inf(1)
	enterAxis := 0
	for axis := range start {
		s, d := start[axis], fwd[axis]
		lo, hi := mins[axis], maxs[axis]
		if math.Abs(d) < Epsilon {
			if s < lo || s > hi {
				return 0, 0, false
			}
			continue
		}
		t1, t2 := (lo-s)/d, (hi-s)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > enter {
			enter, enterAxis = t1, axis
		}
		exit = math.Min(exit, t2)
	}
	if enter > exit || exit < 0 || enter < 0 || enter > maxDist {
		return 0, 0, false
	}
	return enter, enterAxis, true
}
