// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBatchMul(t *testing.T) {
	assert := require.New(t)

	ed := GetEdwardsCurve()

	const n = 16
	points := make([]Point, n)
	scalars := make([]fr.Element, n)
	var k fr.Element
	for i := range points {
		k.SetUint64(uint64(i + 1))
		points[i] = ed.Mul(&ed.Base, &k)
		_, err := scalars[i].SetRandom()
		assert.NoError(err)
	}

	got, err := ed.BatchMul(points, scalars)
	assert.NoError(err)

	want := make([]Point, n)
	for i := range points {
		want[i] = ed.Mul(&points[i], &scalars[i])
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("batch result mismatch (-want +got):\n%s", diff)
	}

	_, err = ed.BatchMul(points, scalars[:1])
	assert.ErrorIs(err, ErrBatchLengthMismatch)
}

func TestBatchFromExtended(t *testing.T) {
	assert := require.New(t)

	ed := GetEdwardsCurve()

	const n = 8
	points := make([]Point, n)
	var k fr.Element
	for i := range points {
		k.SetUint64(uint64(3*i + 1))
		points[i] = ed.Mul(&ed.Base, &k)
	}

	got := BatchFromExtended(points)
	assert.Len(got, n)

	for i := range points {
		var want PointAffine
		want.FromExtended(&points[i])
		assert.True(got[i].X.Equal(&want.X), "x mismatch at %d", i)
		assert.True(got[i].Y.Equal(&want.Y), "y mismatch at %d", i)
	}
}
