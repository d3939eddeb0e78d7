// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestSerializationRoundTrip(t *testing.T) {
	assert := require.New(t)

	ed := GetEdwardsCurve()

	var buf bytes.Buffer
	assert.NoError(Serialize(&buf, &ed))

	got, err := Deserialize(&buf)
	assert.NoError(err)

	assert.True(got.A.Equal(&ed.A))
	assert.True(got.D.Equal(&ed.D))
	assert.True(got.Base.Equal(&ed.Base))
	assert.Zero(got.Order.Cmp(&ed.Order))
	assert.Zero(got.Cofactor.Cmp(&ed.Cofactor))
}

// babyJubjubDescriptor returns a valid wire descriptor tests can tamper with.
func babyJubjubDescriptor() curveDescriptor {
	return curveDescriptor{
		Version:  Version.String(),
		Modulus:  fr.Modulus().String(),
		A:        "168700",
		D:        "168696",
		BaseX:    "5299619240641551281634865583518297030282874472190772894086521144482721001553",
		BaseY:    "16950150798460657717958625567821834550301663161624707787222815936182638968203",
		Order:    "2736030358979909402780800718157159386076813972158567259200215660948447373041",
		Cofactor: "8",
	}
}

func encodeDescriptor(t *testing.T, desc curveDescriptor) *bytes.Buffer {
	t.Helper()
	em, err := cbor.CanonicalEncOptions().EncMode()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, em.NewEncoder(&buf).Encode(&desc))
	return &buf
}

func TestDeserializeRejectsForeignField(t *testing.T) {
	assert := require.New(t)

	desc := babyJubjubDescriptor()
	desc.Modulus = "7"

	_, err := Deserialize(encodeDescriptor(t, desc))
	assert.ErrorIs(err, errInvalidModulus)
}

func TestDeserializeRevalidates(t *testing.T) {
	assert := require.New(t)

	desc := babyJubjubDescriptor()
	desc.A = "0"
	_, err := Deserialize(encodeDescriptor(t, desc))
	assert.ErrorIs(err, ErrZeroCoefficient)

	desc = babyJubjubDescriptor()
	desc.D = desc.A
	_, err = Deserialize(encodeDescriptor(t, desc))
	assert.ErrorIs(err, ErrEqualCoefficients)

	desc = babyJubjubDescriptor()
	desc.BaseY = "1"
	_, err = Deserialize(encodeDescriptor(t, desc))
	assert.ErrorIs(err, ErrBaseNotOnCurve)

	desc = babyJubjubDescriptor()
	desc.A = "not a number"
	_, err = Deserialize(encodeDescriptor(t, desc))
	assert.Error(err)
}
