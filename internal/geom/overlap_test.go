package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscsOverlap_Symmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Disc2
		want bool
	}{
		{"apart", Disc2{Radius: 1}, Disc2{Center: Vec2{3, 0}, Radius: 1}, false},
		{"touching", Disc2{Radius: 1}, Disc2{Center: Vec2{2, 0}, Radius: 1}, false},
		{"overlapping", Disc2{Radius: 1}, Disc2{Center: Vec2{1.5, 0}, Radius: 1}, true},
		{"nested", Disc2{Radius: 5}, Disc2{Center: Vec2{1, 1}, Radius: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DiscsOverlap(tt.a, tt.b))
			require.Equal(t, tt.want, DiscsOverlap(tt.b, tt.a), "symmetry")
		})
	}
}

func TestAABB2sOverlap_Symmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB2
		want bool
	}{
		{"basic", AABB2{Maxs: Vec2{5, 5}}, AABB2{Mins: Vec2{3, 3}, Maxs: Vec2{7, 7}}, true},
		{"inside", AABB2{Maxs: Vec2{10, 10}}, AABB2{Mins: Vec2{3, 3}, Maxs: Vec2{7, 7}}, true},
		{"separate", AABB2{Maxs: Vec2{5, 5}}, AABB2{Mins: Vec2{0, 6}, Maxs: Vec2{5, 10}}, false},
		{"shared edge", AABB2{Maxs: Vec2{5, 5}}, AABB2{Mins: Vec2{5, 0}, Maxs: Vec2{10, 5}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AABB2sOverlap(tt.a, tt.b))
			require.Equal(t, tt.want, AABB2sOverlap(tt.b, tt.a), "symmetry")
		})
	}
}

func TestDiscVsShapeOverlap(t *testing.T) {
	disc := Disc2{Center: Vec2{0, 0}, Radius: 2}

	require.True(t, DiscAndAABB2Overlap(disc, AABB2{Mins: Vec2{1, -1}, Maxs: Vec2{3, 1}}))
	require.False(t, DiscAndAABB2Overlap(disc, AABB2{Mins: Vec2{2, 2}, Maxs: Vec2{3, 3}}))
	require.True(t, DiscAndOBB2Overlap(disc, NewOBB2(Vec2{3, 0}, 45, Vec2{1, 1})))
	require.False(t, DiscAndOBB2Overlap(disc, NewOBB2(Vec2{4, 0}, 0, Vec2{1, 1})))
	require.True(t, DiscAndCapsule2Overlap(disc, Capsule2{Start: Vec2{-5, 3}, End: Vec2{5, 3}, Radius: 1.5}))
	require.False(t, DiscAndCapsule2Overlap(disc, Capsule2{Start: Vec2{-5, 4}, End: Vec2{5, 4}, Radius: 1.5}))
}

func TestSpheresAndBoxesOverlap_Symmetric(t *testing.T) {
	a := Sphere{Center: Vec3{0, 0, 0}, Radius: 1}
	b := Sphere{Center: Vec3{1.5, 0, 0}, Radius: 1}
	require.True(t, SpheresOverlap(a, b))
	require.True(t, SpheresOverlap(b, a))

	boxA := AABB3{Maxs: Vec3{1, 1, 1}}
	boxB := AABB3{Mins: Vec3{0, 0, 2}, Maxs: Vec3{1, 1, 3}}
	require.False(t, AABB3sOverlap(boxA, boxB))
	require.False(t, AABB3sOverlap(boxB, boxA))
	boxB.Mins[2] = 0.5
	require.True(t, AABB3sOverlap(boxA, boxB))
	require.True(t, AABB3sOverlap(boxB, boxA))

	require.True(t, SphereAndAABB3Overlap(Sphere{Center: Vec3{2, 0.5, 0.5}, Radius: 1.5}, boxA))
	require.False(t, SphereAndAABB3Overlap(Sphere{Center: Vec3{3, 3, 3}, Radius: 1}, boxA))
}

func TestZCylinderOverlaps(t *testing.T) {
	cyl := ZCylinder{Base: Vec3{0, 0, 0}, Radius: 2, Height: 4}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"cylinders side by side", ZCylindersOverlap(cyl, ZCylinder{Base: Vec3{3, 0, 1}, Radius: 1.5, Height: 1}), true},
		{"cylinders stacked", ZCylindersOverlap(cyl, ZCylinder{Base: Vec3{0, 0, 4}, Radius: 2, Height: 1}), false},
		{"cylinders swapped", ZCylindersOverlap(ZCylinder{Base: Vec3{3, 0, 1}, Radius: 1.5, Height: 1}, cyl), true},
		{"sphere beside", ZCylinderAndSphereOverlap(cyl, Sphere{Center: Vec3{3, 0, 2}, Radius: 1.5}), true},
		{"sphere above", ZCylinderAndSphereOverlap(cyl, Sphere{Center: Vec3{0, 0, 6}, Radius: 1.5}), false},
		{"aabb corner", ZCylinderAndAABB3Overlap(cyl, AABB3{Mins: Vec3{1, 1, 1}, Maxs: Vec3{3, 3, 2}}), true},
		{"aabb off corner", ZCylinderAndAABB3Overlap(cyl, AABB3{Mins: Vec3{1.5, 1.5, 1}, Maxs: Vec3{3, 3, 2}}), false},
		{"aabb below", ZCylinderAndAABB3Overlap(cyl, AABB3{Mins: Vec3{-1, -1, -3}, Maxs: Vec3{1, 1, -1}}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestZCylinderAndOBB3Overlap(t *testing.T) {
	axisBox := NewOBB3(Vec3{3, 0, 2}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{1, 1, 1})
	diamond := NewOBB3(Vec3{3, 0, 2}, Vec3{1, 1, 0}, Vec3{-1, 1, 0}, Vec3{1, 1, 1})

	tests := []struct {
		name   string
		radius float64
		box    OBB3
		want   bool
	}{
		{"axis aligned reaching", 2.5, axisBox, true},
		{"axis aligned short", 1.5, axisBox, false},
		{"rotated reaching corner", 1.7, diamond, true},
		{"rotated short of corner", 1.5, diamond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyl := ZCylinder{Radius: tt.radius, Height: 4}
			require.Equal(t, tt.want, ZCylinderAndOBB3Overlap(cyl, tt.box))
		})
	}

	high := NewOBB3(Vec3{0, 0, 10}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{1, 1, 1})
	require.False(t, ZCylinderAndOBB3Overlap(ZCylinder{Radius: 5, Height: 4}, high))
}

func TestZCylinderAndOBB3Overlap_ShallowRotated(t *testing.T) {
	cyl := ZCylinder{Radius: 2, Height: 4}
	tilted := func(center Vec3) OBB3 {
		return NewOBB3(center, Vec3{1, 1, 1}, Vec3{-1, 1, 0}, Vec3{1, 0.5, 2})
	}
	spun := func(center Vec3) OBB3 {
		return NewOBB3(center, Vec3{1, 2, 0}, Vec3{-2, 1, 0.5}, Vec3{2, 0.5, 1})
	}

	tests := []struct {
		name string
		cyl  ZCylinder
		box  OBB3
		want bool
	}{
		{"tilted just inside", cyl, tilted(Vec3{2.376, 3.168, 2}), true},
		{"tilted just outside", cyl, tilted(Vec3{2.436, 3.248, 2}), false},
		{"spun near top just inside", cyl, spun(Vec3{2.976, 0, 3.5}), true},
		{"spun near top just outside", cyl, spun(Vec3{3.076, 0, 3.5}), false},
		{
			"corner dips below the rim",
			ZCylinder{Radius: 2.778, Height: 3.443},
			NewOBB3(Vec3{3.038, -4.188, 0.558}, Vec3{-0.441, 0.062, -0.895}, Vec3{-0.433, -0.889, 0.151}, Vec3{2.696, 0.895, 2.084}),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ZCylinderAndOBB3Overlap(tt.cyl, tt.box))
		})
	}
}

func TestZCylinderAndOBB3Overlap_SharedPointImpliesOverlap(t *testing.T) {
	cyl := ZCylinder{Radius: 2.778, Height: 3.443}
	box := NewOBB3(Vec3{3.038, -4.188, 0.558}, Vec3{-0.441, 0.062, -0.895}, Vec3{-0.433, -0.889, 0.151}, Vec3{2.696, 0.895, 2.084})
	shared := Vec3{1.21, -2.44, 0.06}

	require.True(t, cyl.Contains(shared))
	require.True(t, box.Contains(shared))
	require.True(t, ZCylinderAndOBB3Overlap(cyl, box))
}

func TestConvexHull2(t *testing.T) {
	square := []Vec2{{0, 0}, {2, 2}, {1, 1}, {2, 0}, {0, 2}, {1, 0}}
	hull := convexHull2(square)
	require.Len(t, hull, 4)
	require.ElementsMatch(t, []Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, hull)
	for i, a := range hull {
		b, c := hull[(i+1)%len(hull)], hull[(i+2)%len(hull)]
		require.Positive(t, cross2(b.Sub(a), c.Sub(b)), "counter-clockwise")
	}

	require.Equal(t, []Vec2{{0, 0}, {3, 0}}, convexHull2([]Vec2{{1, 0}, {3, 0}, {0, 0}, {2, 0}}))
	require.Equal(t, []Vec2{{1, 1}}, convexHull2([]Vec2{{1, 1}, {1, 1}, {1, 1}}))
}

func TestDiscAndConvexPolygonOverlap(t *testing.T) {
	square := []Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	tests := []struct {
		name    string
		disc    Disc2
		polygon []Vec2
		want    bool
	}{
		{"center inside", Disc2{Center: Vec2{1, 1}, Radius: 0.1}, square, true},
		{"crossing an edge", Disc2{Center: Vec2{2.5, 1}, Radius: 1}, square, true},
		{"touching an edge", Disc2{Center: Vec2{3, 1}, Radius: 1}, square, false},
		{"off a corner", Disc2{Center: Vec2{3, 3}, Radius: 1.2}, square, false},
		{"segment", Disc2{Center: Vec2{1, 0.5}, Radius: 1}, []Vec2{{0, 0}, {2, 0}}, true},
		{"point", Disc2{Center: Vec2{1, 0.5}, Radius: 1}, []Vec2{{1, 0}}, true},
		{"empty", Disc2{Radius: 10}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, discAndConvexPolygonOverlap(tt.disc, tt.polygon))
		})
	}
}

func TestPlaneOverlaps(t *testing.T) {
	box := NewOBB3(Vec3{}, Vec3{1, 1, 0}, Vec3{-1, 1, 0}, Vec3{1, 1, 1})
	cutting := NewPlane3(Vec3{0, 0, 1}, Vec3{0, 0, 0.5})
	above := NewPlane3(Vec3{0, 0, 1}, Vec3{0, 0, 2})

	require.True(t, OBB3AndPlaneOverlap(box, cutting))
	require.False(t, OBB3AndPlaneOverlap(box, above))
	require.True(t, PlaneAndSphereOverlap(cutting, Sphere{Radius: 1}))
	require.False(t, PlaneAndSphereOverlap(above, Sphere{Radius: 1}))
	require.True(t, PlaneAndAABB3Overlap(cutting, AABB3{Mins: Vec3{-1, -1, -1}, Maxs: Vec3{1, 1, 1}}))
	require.False(t, PlaneAndAABB3Overlap(above, AABB3{Mins: Vec3{-1, -1, -1}, Maxs: Vec3{1, 1, 1}}))
	require.True(t, OBB3AndSphereOverlap(box, Sphere{Center: Vec3{2, 0, 0}, Radius: 1}))
	require.False(t, OBB3AndSphereOverlap(box, Sphere{Center: Vec3{4, 0, 0}, Radius: 1}))
}
