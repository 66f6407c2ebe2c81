package geom

import "math"

// SpheresOverlap reports whether two spheres intersect
func SpheresOverlap(a, b Sphere) bool {
	radiusSum := a.Radius + b.Radius
	return DistanceSquared3(a.Center, b.Center) < radiusSum*radiusSum
}

// AABB3sOverlap reports whether two boxes intersect
func AABB3sOverlap(a, b AABB3) bool {
	for axis := 0; axis < 3; axis++ {
		if a.Mins[axis] >= b.Maxs[axis] || a.Maxs[axis] <= b.Mins[axis] {
			return false
		}
	}
	return true
}

// SphereAndAABB3Overlap reports whether a sphere and a box intersect
func SphereAndAABB3Overlap(s Sphere, b AABB3) bool {
	return DistanceSquared3(s.Center, b.NearestPoint(s.Center)) < s.Radius*s.Radius
}

// ZCylindersOverlap requires overlapping height ranges and overlapping footprints
func ZCylindersOverlap(a, b ZCylinder) bool {
	if a.Base.Z() >= b.Top() || b.Base.Z() >= a.Top() {
		return false
	}
	return DiscsOverlap(a.footprint(), b.footprint())
}

// ZCylinderAndSphereOverlap reports whether a cylinder and a sphere intersect
func ZCylinderAndSphereOverlap(c ZCylinder, s Sphere) bool {
	return DistanceSquared3(s.Center, c.NearestPoint(s.Center)) < s.Radius*s.Radius
}

// ZCylinderAndAABB3Overlap checks the height ranges, then the footprint against
// the box's XY rectangle
func ZCylinderAndAABB3Overlap(c ZCylinder, b AABB3) bool {
	if c.Base.Z() >= b.Maxs.Z() || b.Mins.Z() >= c.Top() {
		return false
	}
	rect := AABB2{Mins: Vec2{b.Mins.X(), b.Mins.Y()}, Maxs: Vec2{b.Maxs.X(), b.Maxs.Y()}}
	return DiscAndAABB2Overlap(c.footprint(), rect)
}

// ZCylinderAndOBB3Overlap clips the box to the cylinder's height range and
// tests the footprint disc against the XY shadow of what remains.
func ZCylinderAndOBB3Overlap(c ZCylinder, b OBB3) bool {
	zExtent := b.ProjectedRadius(Vec3{0, 0, 1})
	if c.Base.Z() >= b.Center.Z()+zExtent || b.Center.Z()-zExtent >= c.Top() {
		return false
	}
	shadow := convexHull2(b.sliceXY(c.Base.Z(), c.Top()))
	return discAndConvexPolygonOverlap(c.footprint(), shadow)
}

// OBB3AndSphereOverlap reports whether an oriented box and a sphere intersect
func OBB3AndSphereOverlap(b OBB3, s Sphere) bool {
	return DistanceSquared3(s.Center, b.NearestPoint(s.Center)) < s.Radius*s.Radius
}

// OBB3AndPlaneOverlap reports whether the plane cuts through the box
func OBB3AndPlaneOverlap(b OBB3, p Plane3) bool {
	return math.Abs(p.Altitude(b.Center)) < b.ProjectedRadius(p.Normal)
}

// PlaneAndSphereOverlap reports whether the plane cuts through the sphere
func PlaneAndSphereOverlap(p Plane3, s Sphere) bool {
	return math.Abs(p.Altitude(s.Center)) < s.Radius
}

// PlaneAndAABB3Overlap reports whether the plane cuts through the box
func PlaneAndAABB3Overlap(p Plane3, b AABB3) bool {
	h := b.HalfDims()
	r := h.X()*math.Abs(p.Normal.X()) + h.Y()*math.Abs(p.Normal.Y()) + h.Z()*math.Abs(p.Normal.Z())
	return math.Abs(p.Altitude(b.Center())) < r
}

func (c ZCylinder) footprint() Disc2 {
	return Disc2{Center: Vec2{c.Base.X(), c.Base.Y()}, Radius: c.Radius}
}

// sliceXY projects onto XY every vertex of the box clipped to lo <= z <= hi:
// the corners inside the range plus the edge crossings of both bounds.
func (b OBB3) sliceXY(lo, hi float64) []Vec2 {
	corners := b.Corners()
	points := make([]Vec2, 0, 24)
	for _, p := range corners {
		if p.Z() >= lo && p.Z() <= hi {
			points = append(points, Vec2{p.X(), p.Y()})
		}
	}
	for i := range corners {
		for axis := 0; axis < 3; axis++ {
			bit := 1 << axis
			if i&bit != 0 {
				continue
			}
			p, q := corners[i], corners[i|bit]
			for _, z := range [2]float64{lo, hi} {
				if (p.Z() < z) == (q.Z() < z) {
					continue
				}
				t := (z - p.Z()) / (q.Z() - p.Z())
				points = append(points, Vec2{Lerp(p.X(), q.X(), t), Lerp(p.Y(), q.Y(), t)})
			}
		}
	}
	return points
}
