// Package physics resolves disc contacts and schedules simulation steps.
package physics

import (
	"math"

	"github.com/diegok/pachinko/internal/geom"
)

// Body is a moving disc
type Body struct {
	Pos        geom.Vec2
	Vel        geom.Vec2
	Radius     float64
	Elasticity float64
}

// Disc returns the body's current footprint
func (b *Body) Disc() geom.Disc2 {
	return geom.Disc2{Center: b.Pos, Radius: b.Radius}
}

// BounceDiscsOffEachOther2D separates two overlapping bodies along their
// centre line and, if they are closing, exchanges their normal velocity
// components scaled by each receiver's own elasticity. Tangential components
// are untouched. Returns false when the discs do not overlap.
func BounceDiscsOffEachOther2D(a, b *Body) bool {
	if !geom.DiscsOverlap(a.Disc(), b.Disc()) {
		return false
	}

	offset := b.Pos.Sub(a.Pos)
	dist := offset.Len()
	normal := geom.Vec2{1, 0}
	if dist > geom.Epsilon {
		normal = offset.Mul(1 / dist)
	}

	push := (a.Radius + b.Radius - dist) / 2
	a.Pos = a.Pos.Sub(normal.Mul(push))
	b.Pos = b.Pos.Add(normal.Mul(push))

	aNormal := a.Vel.Dot(normal)
	bNormal := b.Vel.Dot(normal)
	if bNormal-aNormal >= 0 {
		return true
	}
	aTangent := a.Vel.Sub(normal.Mul(aNormal))
	bTangent := b.Vel.Sub(normal.Mul(bNormal))
	a.Vel = aTangent.Add(normal.Mul(bNormal * a.Elasticity))
	b.Vel = bTangent.Add(normal.Mul(aNormal * b.Elasticity))
	return true
}

// BounceDiscOffFixedPoint2D pushes the body out so it touches point and
// reflects the approaching normal velocity, damped by the product of both
// elasticities. Returns false when the point is outside the body.
func BounceDiscOffFixedPoint2D(b *Body, point geom.Vec2, fixedElasticity float64) bool {
	offset := b.Pos.Sub(point)
	if offset.Dot(offset) >= b.Radius*b.Radius {
		return false
	}

	normal := geom.Normalize2(offset)
	if normal == (geom.Vec2{}) {
		// centre sits on the contact: back out the way it came
		normal = geom.Normalize2(b.Vel.Mul(-1))
		if normal == (geom.Vec2{}) {
			normal = geom.Vec2{0, 1}
		}
	}
	b.Pos = point.Add(normal.Mul(b.Radius))
	reflect(b, normal, fixedElasticity)
	return true
}

// BounceDiscOffFixedSurface2D bounces the body off the half-plane behind
// point whose outward normal is normal. Bodies that have already crossed the
// surface are pushed back out along the normal.
func BounceDiscOffFixedSurface2D(b *Body, point, normal geom.Vec2, fixedElasticity float64) bool {
	normal = geom.Normalize2(normal)
	altitude := b.Pos.Sub(point).Dot(normal)
	if altitude >= b.Radius {
		return false
	}
	b.Pos = b.Pos.Add(normal.Mul(b.Radius - altitude))
	reflect(b, normal, fixedElasticity)
	return true
}

// BounceDiscOffFixedDisc2D bounces the body off a fixed disc, including the
// case where the body's centre has already entered it.
func BounceDiscOffFixedDisc2D(b *Body, fixed geom.Disc2, fixedElasticity float64) bool {
	if !geom.DiscsOverlap(b.Disc(), fixed) {
		return false
	}
	normal := geom.Normalize2(b.Pos.Sub(fixed.Center))
	if normal == (geom.Vec2{}) {
		normal = geom.Vec2{0, 1}
	}
	contact := fixed.Center.Add(normal.Mul(fixed.Radius))
	b.Pos = contact.Add(normal.Mul(b.Radius))
	reflect(b, normal, fixedElasticity)
	return true
}

// BounceDiscOffFixedCapsule2D uses the capsule's nearest point as the contact
func BounceDiscOffFixedCapsule2D(b *Body, fixed geom.Capsule2, fixedElasticity float64) bool {
	if !geom.DiscAndCapsule2Overlap(b.Disc(), fixed) {
		return false
	}
	bone := fixed.Bone().NearestPoint(b.Pos)
	return BounceDiscOffFixedDisc2D(b, geom.Disc2{Center: bone, Radius: fixed.Radius}, fixedElasticity)
}

// BounceDiscOffFixedOBB2D uses the box's nearest point as the contact. A body
// whose centre is inside the box leaves through the closest face.
func BounceDiscOffFixedOBB2D(b *Body, fixed geom.OBB2, fixedElasticity float64) bool {
	if !geom.DiscAndOBB2Overlap(b.Disc(), fixed) {
		return false
	}
	if !fixed.Contains(b.Pos) {
		return BounceDiscOffFixedPoint2D(b, fixed.NearestPoint(b.Pos), fixedElasticity)
	}
	contact, normal := exitFace(fixed, b.Pos)
	b.Pos = contact.Add(normal.Mul(b.Radius))
	reflect(b, normal, fixedElasticity)
	return true
}

// exitFace returns the closest surface point and outward normal for a point
// inside the box
func exitFace(box geom.OBB2, p geom.Vec2) (geom.Vec2, geom.Vec2) {
	local := box.ToLocal(p)
	gapX := box.HalfDims.X() - math.Abs(local.X())
	gapY := box.HalfDims.Y() - math.Abs(local.Y())
	if gapX < gapY {
		sign := math.Copysign(1, local.X())
		local[0] = sign * box.HalfDims.X()
		return box.ToWorld(local), box.IBasis.Mul(sign)
	}
	sign := math.Copysign(1, local.Y())
	local[1] = sign * box.HalfDims.Y()
	return box.ToWorld(local), box.JBasis().Mul(sign)
}

func reflect(b *Body, normal geom.Vec2, fixedElasticity float64) {
	approach := b.Vel.Dot(normal)
	if approach >= 0 {
		return
	}
	e := b.Elasticity * fixedElasticity
	b.Vel = b.Vel.Sub(normal.Mul(approach * (1 + e)))
}
