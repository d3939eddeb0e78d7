// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"errors"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/twistededwards/logger"
)

var (
	// ErrZeroCoefficient is returned by NewCurve when a or d is zero.
	ErrZeroCoefficient = errors.New("twistededwards: curve coefficients a and d must be nonzero")
	// ErrEqualCoefficients is returned by NewCurve when a equals d, which
	// degenerates the curve equation.
	ErrEqualCoefficients = errors.New("twistededwards: curve coefficients a and d must differ")
	// ErrBaseNotOnCurve is returned by NewCurve when the base point does not
	// satisfy the curve equation.
	ErrBaseNotOnCurve = errors.New("twistededwards: base point is not on the curve")
)

// Curve describes a twisted Edwards curve a·x² + y² = 1 + d·x²·y² together
// with a base point. A Curve obtained from NewCurve (or Deserialize) is
// guaranteed valid; group law methods do not revalidate their operands.
//
// Order and Cofactor are metadata about the subgroup generated by Base. They
// are not needed by the group law and are left at zero when unknown.
type Curve struct {
	A, D fr.Element
	Base Point

	Order    big.Int
	Cofactor big.Int
}

// NewCurve returns a validated curve descriptor. It fails when a = 0, d = 0,
// a = d, or when base does not satisfy the curve equation. This check runs
// exactly once; no operation downstream re-validates.
func NewCurve(a, d fr.Element, base Point) (Curve, error) {
	if a.IsZero() || d.IsZero() {
		return Curve{}, ErrZeroCoefficient
	}
	if a.Equal(&d) {
		return Curve{}, ErrEqualCoefficients
	}
	curve := Curve{A: a, D: d, Base: base}
	if !curve.IsOnCurve(&base) {
		return Curve{}, ErrBaseNotOnCurve
	}

	log := logger.Logger()
	log.Debug().Str("a", a.String()).Str("d", d.String()).Msg("twisted Edwards curve initialized")

	return curve, nil
}

// IsOnCurve reports whether p is a well formed point of the curve. It returns
// false when Z = 0 or when the extended coordinate invariant T·Z = X·Y is
// broken; otherwise it tests the homogeneous curve equation
//
//	a·X²·Z² + Y²·Z² = Z⁴ + d·X²·Y²
//
// obtained from the affine equation by x → X/Z, y → Y/Z and clearing
// denominators. The predicate is total and inversion free.
func (curve *Curve) IsOnCurve(p *Point) bool {
	if p.Z.IsZero() {
		return false
	}

	var tz, xy fr.Element
	tz.Mul(&p.T, &p.Z)
	xy.Mul(&p.X, &p.Y)
	if !tz.Equal(&xy) {
		return false
	}

	var xx, yy, zz, lhs, rhs, dxxyy fr.Element
	xx.Square(&p.X)
	yy.Square(&p.Y)
	zz.Square(&p.Z)

	lhs.Mul(&curve.A, &xx).
		Add(&lhs, &yy).
		Mul(&lhs, &zz)

	dxxyy.Mul(&curve.D, &xx).
		Mul(&dxxyy, &yy)
	rhs.Square(&zz).
		Add(&rhs, &dxxyy)

	return lhs.Equal(&rhs)
}

// Add returns p1 + p2. The formula is the unified addition in extended
// coordinates from https://eprint.iacr.org/2008/522 (add-2008-hwcd); it is
// complete for the curves of interest and handles the neutral element and
// doubling without branching.
func (curve *Curve) Add(p1, p2 *Point) Point {
	var A, B, C, D, E, F, G, H, tmp fr.Element

	A.Mul(&p1.X, &p2.X)
	B.Mul(&p1.Y, &p2.Y)
	C.Mul(&p1.T, &p2.T).
		Mul(&C, &curve.D)
	D.Mul(&p1.Z, &p2.Z)

	// E = (X1+Y1)·(X2+Y2) − A − B = X1·Y2 + X2·Y1
	E.Add(&p1.X, &p1.Y)
	tmp.Add(&p2.X, &p2.Y)
	E.Mul(&E, &tmp).
		Sub(&E, &A).
		Sub(&E, &B)

	F.Sub(&D, &C)
	G.Add(&D, &C)

	// H = B − a·A
	H.Mul(&curve.A, &A)
	H.Sub(&B, &H)

	var p Point
	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)
	return p
}

// Sub returns p1 - p2.
func (curve *Curve) Sub(p1, p2 *Point) Point {
	var n Point
	n.Neg(p2)
	return curve.Add(p1, &n)
}

// Double returns 2·p1 using the dedicated doubling formula (dbl-2008-hwcd),
// cheaper than Add(p1, p1).
func (curve *Curve) Double(p1 *Point) Point {
	var A, B, C, D, E, F, G, H fr.Element

	A.Square(&p1.X)
	B.Square(&p1.Y)
	C.Square(&p1.Z).
		Double(&C)
	D.Mul(&curve.A, &A)

	// E = (X1+Y1)² − A − B
	E.Add(&p1.X, &p1.Y).
		Square(&E).
		Sub(&E, &A).
		Sub(&E, &B)

	G.Add(&D, &B)
	F.Sub(&G, &C)
	H.Sub(&D, &B)

	var p Point
	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)
	return p
}

// MulBits returns k·p1 where k is the non-negative integer whose little
// endian bit decomposition is bits (bits.Test(0) is the least significant
// bit). The loop always runs over the full fixed width bits.Len(), from the
// most significant bit down: double, then add when the bit is set. An all
// zero bitset yields the neutral element.
func (curve *Curve) MulBits(p1 *Point, bits *bitset.BitSet) Point {
	var p Point
	p.SetZero()
	for i := int(bits.Len()) - 1; i >= 0; i-- {
		p = curve.Double(&p)
		if bits.Test(uint(i)) {
			p = curve.Add(&p, p1)
		}
	}
	return p
}

// Mul returns scalar·p1. The scalar is decomposed over the scalar field's
// full bit width fr.Bits, little endian, and handed to MulBits.
func (curve *Curve) Mul(p1 *Point, scalar *fr.Element) Point {
	var k big.Int
	scalar.BigInt(&k)

	bits := bitset.New(uint(fr.Bits))
	for i := 0; i < fr.Bits; i++ {
		if k.Bit(i) == 1 {
			bits.Set(uint(i))
		}
	}
	return curve.MulBits(p1, bits)
}
