package geom

import (
	"cmp"
	"slices"
)

// Overlap tests treat touching shapes as not overlapping. Each pair has its own
// closed-form test; there is no generic dispatcher.

// DiscsOverlap reports whether two discs intersect
func DiscsOverlap(a, b Disc2) bool {
	radiusSum := a.Radius + b.Radius
	return DistanceSquared2(a.Center, b.Center) < radiusSum*radiusSum
}

// AABB2sOverlap reports whether two boxes intersect
func AABB2sOverlap(a, b AABB2) bool {
	return a.Mins.X() < b.Maxs.X() && a.Maxs.X() > b.Mins.X() &&
		a.Mins.Y() < b.Maxs.Y() && a.Maxs.Y() > b.Mins.Y()
}

// DiscAndAABB2Overlap reports whether a disc and a box intersect
func DiscAndAABB2Overlap(d Disc2, b AABB2) bool {
	nearest := b.NearestPoint(d.Center)
	return DistanceSquared2(d.Center, nearest) < d.Radius*d.Radius
}

// DiscAndOBB2Overlap reports whether a disc and an oriented box intersect
func DiscAndOBB2Overlap(d Disc2, b OBB2) bool {
	nearest := b.NearestPoint(d.Center)
	return DistanceSquared2(d.Center, nearest) < d.Radius*d.Radius
}

// DiscAndCapsule2Overlap reports whether a disc and a capsule intersect
func DiscAndCapsule2Overlap(d Disc2, c Capsule2) bool {
	onBone := c.Bone().NearestPoint(d.Center)
	radiusSum := d.Radius + c.Radius
	return DistanceSquared2(d.Center, onBone) < radiusSum*radiusSum
}

// convexHull2 returns the counter-clockwise hull of points with collinear
// points dropped. Collinear input yields its two extremes.
func convexHull2(points []Vec2) []Vec2 {
	if len(points) < 3 {
		return points
	}
	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b Vec2) int {
		if c := cmp.Compare(a.X(), b.X()); c != 0 {
			return c
		}
		return cmp.Compare(a.Y(), b.Y())
	})

	// Lower chain, then upper chain, each dropping its last point
	hull := make([]Vec2, 0, len(sorted)+1)
	for pass := 0; pass < 2; pass++ {
		chainStart := len(hull)
		for _, p := range sorted {
			for len(hull) >= chainStart+2 {
				a, b := hull[len(hull)-2], hull[len(hull)-1]
				if cross2(b.Sub(a), p.Sub(a)) > 0 {
					break
				}
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		hull = hull[:len(hull)-1]
		slices.Reverse(sorted)
	}
	if len(hull) == 0 {
		return sorted[:1]
	}
	return hull
}

// discAndConvexPolygonOverlap tests a disc against a counter-clockwise convex
// polygon. One or two vertices describe a point or a segment.
func discAndConvexPolygonOverlap(d Disc2, polygon []Vec2) bool {
	switch len(polygon) {
	case 0:
		return false
	case 1:
		return DistanceSquared2(d.Center, polygon[0]) < d.Radius*d.Radius
	}

	inside := len(polygon) >= 3
	for i, a := range polygon {
		b := polygon[(i+1)%len(polygon)]
		if cross2(b.Sub(a), d.Center.Sub(a)) < 0 {
			inside = false
		}
		edge := LineSegment2{Start: a, End: b}
		if DistanceSquared2(d.Center, edge.NearestPoint(d.Center)) < d.Radius*d.Radius {
			return true
		}
	}
	return inside
}
