// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"
)

// Point is a point on a twisted Edwards curve in extended projective
// coordinates (X:Y:T:Z), representing the affine point (X/Z, Y/Z) when Z ≠ 0.
//
// The coordinates of a well formed point satisfy T·Z = X·Y. Every constructor
// and every curve operation maintains this invariant; a Point assembled by
// hand may violate it and is rejected by Curve.IsOnCurve.
type Point struct {
	X, Y, T, Z fr.Element
}

// PointAffine is a point in affine coordinates.
type PointAffine struct {
	X, Y fr.Element
}

// SetAffine lifts the affine point (x, y) to extended coordinates
// (x, y, x·y, 1) and returns p. It does not check that (x, y) is on any
// particular curve.
func (p *Point) SetAffine(x, y *fr.Element) *Point {
	p.X.Set(x)
	p.Y.Set(y)
	p.T.Mul(x, y)
	p.Z.SetOne()
	return p
}

// SetZero sets p to the neutral element (0, 1, 0, 1) and returns p.
func (p *Point) SetZero() *Point {
	p.X.SetZero()
	p.Y.SetOne()
	p.T.SetZero()
	p.Z.SetOne()
	return p
}

// Set sets p to q and returns p.
func (p *Point) Set(q *Point) *Point {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.T.Set(&q.T)
	p.Z.Set(&q.Z)
	return p
}

// Equal reports whether p and q denote the same affine point. The test
// cross-multiplies (x1·z2 == x2·z1 and y1·z2 == y2·z1) so that no field
// inversion is needed; it is valid for any representatives with nonzero Z.
func (p *Point) Equal(q *Point) bool {
	var lhs, rhs fr.Element
	lhs.Mul(&p.X, &q.Z)
	rhs.Mul(&q.X, &p.Z)
	if !lhs.Equal(&rhs) {
		return false
	}
	lhs.Mul(&p.Y, &q.Z)
	rhs.Mul(&q.Y, &p.Z)
	return lhs.Equal(&rhs)
}

// IsZero reports whether p is in the class of the neutral element, that is
// X = 0 and Y = Z.
func (p *Point) IsZero() bool {
	return p.X.IsZero() && p.Y.Equal(&p.Z)
}

// Neg sets p to -q = (-x, y, -t, z) and returns p. Negating X and T together
// keeps T·Z = X·Y, since (-t)·z = (-x)·y.
func (p *Point) Neg(q *Point) *Point {
	p.X.Neg(&q.X)
	p.Y.Set(&q.Y)
	p.T.Neg(&q.T)
	p.Z.Set(&q.Z)
	return p
}

// FromExtended normalizes q to affine coordinates and returns p. This is the
// only operation performing a field inversion; callers chaining group
// operations should convert once at the boundary (see BatchFromExtended).
//
// q.Z must be nonzero. This holds for every point produced by the package;
// only an externally fabricated point can violate it.
func (p *PointAffine) FromExtended(q *Point) *PointAffine {
	var zInv fr.Element
	zInv.Inverse(&q.Z)
	p.X.Mul(&q.X, &zInv)
	p.Y.Mul(&q.Y, &zInv)
	return p
}

func (p *Point) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", p.X.String(), p.Y.String(), p.T.String(), p.Z.String())
}

func (p *PointAffine) String() string {
	return fmt.Sprintf("(%s, %s)", p.X.String(), p.Y.String())
}

// MarshalZerologObject dumps the raw coordinates of p, implementing
// zerolog.LogObjectMarshaler for diagnostic logging.
func (p Point) MarshalZerologObject(e *zerolog.Event) {
	e.Str("x", p.X.String()).
		Str("y", p.Y.String()).
		Str("t", p.T.String()).
		Str("z", p.Z.String())
}

// MarshalZerologObject dumps the affine coordinates of p.
func (p PointAffine) MarshalZerologObject(e *zerolog.Event) {
	e.Str("x", p.X.String()).
		Str("y", p.Y.String())
}
