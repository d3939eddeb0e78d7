// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package twistededwards implements group arithmetic for twisted Edwards
// curves in extended projective coordinates.
//
// A curve is described by the affine equation a·x² + y² = 1 + d·x²·y². Points
// are kept in extended coordinates (X:Y:T:Z) with T·Z = X·Y so that the group
// law never needs a field inversion; the only inversion in the package is the
// final conversion back to affine coordinates.
//
// Coordinates live in the scalar field Fr of BN254 (the field Baby Jubjub is
// defined over); scalars are Fr elements decomposed over the field's full bit
// width. The package ships the Baby Jubjub instance (EIP-2494) and accepts
// arbitrary curve coefficients through NewCurve, which validates them once at
// construction.
package twistededwards

import (
	"github.com/blang/semver/v4"
)

// Version of the library. Serialized curve descriptors embed it, see
// Serialize and Deserialize.
var Version = semver.MustParse("0.1.0")
