// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"errors"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"
)

// ErrBatchLengthMismatch is returned by BatchMul when points and scalars have
// different lengths.
var ErrBatchLengthMismatch = errors.New("twistededwards: points and scalars must have the same length")

// BatchMul computes scalars[i]·points[i] for all i. The multiplications are
// independent pure computations and run in parallel.
func (curve *Curve) BatchMul(points []Point, scalars []fr.Element) ([]Point, error) {
	if len(points) != len(scalars) {
		return nil, ErrBatchLengthMismatch
	}

	res := make([]Point, len(points))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range points {
		i := i
		g.Go(func() error {
			res[i] = curve.Mul(&points[i], &scalars[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// BatchFromExtended normalizes points to affine coordinates using a single
// batch inversion instead of one inversion per point. All points must have
// nonzero Z, which holds for any point produced by this package.
func BatchFromExtended(points []Point) []PointAffine {
	zs := make([]fr.Element, len(points))
	for i := range points {
		zs[i].Set(&points[i].Z)
	}
	zInvs := fr.BatchInvert(zs)

	res := make([]PointAffine, len(points))
	for i := range points {
		res[i].X.Mul(&points[i].X, &zInvs[i])
		res[i].Y.Mul(&points[i].Y, &zInvs[i])
	}
	return res
}
