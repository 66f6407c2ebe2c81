package geom

import "math"

// Disc2 is a solid circle
type Disc2 struct {
	Center Vec2
	Radius float64
}

// AABB2 is an axis-aligned rectangle
type AABB2 struct {
	Mins Vec2
	Maxs Vec2
}

// OBB2 is a rectangle rotated so its local X axis lies along IBasis.
// IBasis must be unit length; NewOBB2 guarantees that.
type OBB2 struct {
	Center   Vec2
	IBasis   Vec2
	HalfDims Vec2
}

// Capsule2 is the set of points within Radius of the bone Start-End
type Capsule2 struct {
	Start  Vec2
	End    Vec2
	Radius float64
}

// LineSegment2 is the bounded segment Start-End
type LineSegment2 struct {
	Start Vec2
	End   Vec2
}

// Triangle2 holds three corners, normally counter-clockwise
type Triangle2 struct {
	Points [3]Vec2
}

// NewAABB2 builds a box from any two opposite corners
func NewAABB2(a, b Vec2) AABB2 {
	return AABB2{
		Mins: Vec2{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y())},
		Maxs: Vec2{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y())},
	}
}

// NewOBB2 builds an oriented box rotated angleDegrees counter-clockwise
func NewOBB2(center Vec2, angleDegrees float64, halfDims Vec2) OBB2 {
	return OBB2{Center: center, IBasis: PolarDegrees(angleDegrees, 1), HalfDims: halfDims}
}

// NewOBB2FromBasis builds an oriented box from an arbitrary i basis; a zero basis
// falls back to +X
func NewOBB2FromBasis(center, iBasis, halfDims Vec2) OBB2 {
	i := Normalize2(iBasis)
	if i == (Vec2{}) {
		i = Vec2{1, 0}
	}
	return OBB2{Center: center, IBasis: i, HalfDims: halfDims}
}

// Center returns the midpoint of the box
func (b AABB2) Center() Vec2 {
	return b.Mins.Add(b.Maxs).Mul(0.5)
}

// Dimensions returns width and height
func (b AABB2) Dimensions() Vec2 {
	return b.Maxs.Sub(b.Mins)
}

// PointAtUV maps normalised (u,v) in [0,1]² onto the box
func (b AABB2) PointAtUV(uv Vec2) Vec2 {
	return Vec2{
		Lerp(b.Mins.X(), b.Maxs.X(), uv.X()),
		Lerp(b.Mins.Y(), b.Maxs.Y(), uv.Y()),
	}
}

// JBasis is IBasis rotated a quarter turn
func (b OBB2) JBasis() Vec2 {
	return Rotated90(b.IBasis)
}

// ToLocal expresses a world point in the box's (i, j) frame around its center
func (b OBB2) ToLocal(p Vec2) Vec2 {
	d := p.Sub(b.Center)
	return Vec2{d.Dot(b.IBasis), d.Dot(b.JBasis())}
}

// ToWorld is the inverse of ToLocal
func (b OBB2) ToWorld(local Vec2) Vec2 {
	return b.Center.Add(b.IBasis.Mul(local.X())).Add(b.JBasis().Mul(local.Y()))
}

// Corners returns the four corners counter-clockwise from (-i,-j)
func (b OBB2) Corners() [4]Vec2 {
	hx, hy := b.HalfDims.X(), b.HalfDims.Y()
	return [4]Vec2{
		b.ToWorld(Vec2{-hx, -hy}),
		b.ToWorld(Vec2{hx, -hy}),
		b.ToWorld(Vec2{hx, hy}),
		b.ToWorld(Vec2{-hx, hy}),
	}
}

// Bone returns the capsule's center segment
func (c Capsule2) Bone() LineSegment2 {
	return LineSegment2{Start: c.Start, End: c.End}
}

// NearestPoint returns p when inside the disc, else the closest point on its rim
func (d Disc2) NearestPoint(p Vec2) Vec2 {
	return d.Center.Add(ClampLength2(p.Sub(d.Center), d.Radius))
}

// Contains reports whether p lies inside or on the disc
func (d Disc2) Contains(p Vec2) bool {
	return DistanceSquared2(p, d.Center) <= d.Radius*d.Radius
}

// NearestPoint clamps p into the box
func (b AABB2) NearestPoint(p Vec2) Vec2 {
	return Vec2{
		Clamp(p.X(), b.Mins.X(), b.Maxs.X()),
		Clamp(p.Y(), b.Mins.Y(), b.Maxs.Y()),
	}
}

// Contains reports whether p lies inside or on the box
func (b AABB2) Contains(p Vec2) bool {
	return p.X() >= b.Mins.X() && p.X() <= b.Maxs.X() &&
		p.Y() >= b.Mins.Y() && p.Y() <= b.Maxs.Y()
}

// NearestPoint clamps p into the box in local space
func (b OBB2) NearestPoint(p Vec2) Vec2 {
	local := b.ToLocal(p)
	return b.ToWorld(Vec2{
		Clamp(local.X(), -b.HalfDims.X(), b.HalfDims.X()),
		Clamp(local.Y(), -b.HalfDims.Y(), b.HalfDims.Y()),
	})
}

// Contains reports whether p lies inside or on the box
func (b OBB2) Contains(p Vec2) bool {
	local := b.ToLocal(p)
	return math.Abs(local.X()) <= b.HalfDims.X() && math.Abs(local.Y()) <= b.HalfDims.Y()
}

// NearestPoint returns the closest point on the segment; a zero-length segment
// collapses to its start
func (s LineSegment2) NearestPoint(p Vec2) Vec2 {
	bone := s.End.Sub(s.Start)
	lengthSq := bone.Dot(bone)
	if lengthSq < Epsilon*Epsilon {
		return s.Start
	}
	t := ClampZeroToOne(p.Sub(s.Start).Dot(bone) / lengthSq)
	return s.Start.Add(bone.Mul(t))
}

// NearestPointOnInfiniteLine projects p onto the unbounded line through the segment
func (s LineSegment2) NearestPointOnInfiniteLine(p Vec2) Vec2 {
	bone := s.End.Sub(s.Start)
	lengthSq := bone.Dot(bone)
	if lengthSq < Epsilon*Epsilon {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(bone) / lengthSq
	return s.Start.Add(bone.Mul(t))
}

// NearestPoint finds the nearest bone point and clamps the offset to the radius,
// so interior points return themselves
func (c Capsule2) NearestPoint(p Vec2) Vec2 {
	onBone := c.Bone().NearestPoint(p)
	return onBone.Add(ClampLength2(p.Sub(onBone), c.Radius))
}

// Contains reports whether p lies inside or on the capsule
func (c Capsule2) Contains(p Vec2) bool {
	onBone := c.Bone().NearestPoint(p)
	return DistanceSquared2(p, onBone) <= c.Radius*c.Radius
}

// Contains reports whether p lies inside or on the triangle, for either winding
func (t Triangle2) Contains(p Vec2) bool {
	var pos, neg bool
	for i := 0; i < 3; i++ {
		a, b := t.Points[i], t.Points[(i+1)%3]
		c := cross2(b.Sub(a), p.Sub(a))
		if c > 0 {
			pos = true
		} else if c < 0 {
			neg = true
		}
	}
	return !(pos && neg)
}

// NearestPoint returns p when inside, else the closest point on the nearest edge
func (t Triangle2) NearestPoint(p Vec2) Vec2 {
	if t.Contains(p) {
		return p
	}
	best := t.Points[0]
	bestDistSq := math.Inf(1)
	for i := 0; i < 3; i++ {
		edge := LineSegment2{Start: t.Points[i], End: t.Points[(i+1)%3]}
		candidate := edge.NearestPoint(p)
		if d := DistanceSquared2(p, candidate); d < bestDistSq {
			best, bestDistSq = candidate, d
		}
	}
	return best
}

func cross2(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}
