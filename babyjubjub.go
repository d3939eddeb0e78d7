// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// babyJubjub is the twisted Edwards curve of EIP-2494, defined over BN254's
// scalar field.
var babyJubjub Curve

func init() {
	// a = 168700
	// d = 168696
	// Cofactor = 8
	// Order = 2736030358979909402780800718157159386076813972158567259200215660948447373041
	// BASE_X = 5299619240641551281634865583518297030282874472190772894086521144482721001553
	// BASE_Y = 16950150798460657717958625567821834550301663161624707787222815936182638968203
	var a, d, x, y fr.Element
	a.SetUint64(168700)
	d.SetUint64(168696)
	x.SetString("5299619240641551281634865583518297030282874472190772894086521144482721001553")
	y.SetString("16950150798460657717958625567821834550301663161624707787222815936182638968203")

	var base Point
	base.SetAffine(&x, &y)

	curve, err := NewCurve(a, d, base)
	if err != nil {
		panic(err)
	}
	curve.Order.SetString("2736030358979909402780800718157159386076813972158567259200215660948447373041", 10)
	curve.Cofactor.SetUint64(8)

	babyJubjub = curve
}

// GetEdwardsCurve returns the Baby Jubjub curve.
func GetEdwardsCurve() Curve {
	// copy to keep the package instance immutable
	var res Curve
	res.A.Set(&babyJubjub.A)
	res.D.Set(&babyJubjub.D)
	res.Base.Set(&babyJubjub.Base)
	res.Order.Set(&babyJubjub.Order)
	res.Cofactor.Set(&babyJubjub.Cofactor)
	return res
}
