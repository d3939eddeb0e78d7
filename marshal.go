// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package twistededwards

import (
	"errors"
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/twistededwards/logger"
)

var errInvalidModulus = errors.New("trying to deserialize a curve defined over another field")

// curveDescriptor is the CBOR wire form of a Curve. Field elements and big
// integers travel as decimal strings, the field's own textual serialization.
type curveDescriptor struct {
	Version  string
	Modulus  string
	A        string
	D        string
	BaseX    string
	BaseY    string
	Order    string
	Cofactor string
}

// Serialize writes curve to w, CBOR encoded with canonical options. The
// descriptor embeds the library version and the coordinate field modulus so
// that Deserialize can reject descriptors from another field.
func Serialize(w io.Writer, curve *Curve) error {
	var base PointAffine
	base.FromExtended(&curve.Base)

	desc := curveDescriptor{
		Version:  Version.String(),
		Modulus:  fr.Modulus().String(),
		A:        curve.A.String(),
		D:        curve.D.String(),
		BaseX:    base.X.String(),
		BaseY:    base.Y.String(),
		Order:    curve.Order.String(),
		Cofactor: curve.Cofactor.String(),
	}

	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return err
	}
	return em.NewEncoder(w).Encode(&desc)
}

// Deserialize reads a curve descriptor from r. The descriptor is re-validated
// through NewCurve, so malformed or tampered bytes cannot produce an invalid
// Curve value. A version mismatch is logged as a warning; a field modulus
// mismatch is a hard error.
func Deserialize(r io.Reader) (Curve, error) {
	var desc curveDescriptor
	if err := cbor.NewDecoder(r).Decode(&desc); err != nil {
		return Curve{}, err
	}

	if desc.Modulus != fr.Modulus().String() {
		return Curve{}, errInvalidModulus
	}

	objectVersion, err := semver.Parse(desc.Version)
	if err != nil || objectVersion.Compare(Version) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", Version.String()).Str("object", desc.Version).Msg("library version mismatch with serialized curve. there are no guarantees on compatibility")
	}

	var a, d, x, y fr.Element
	if _, err := a.SetString(desc.A); err != nil {
		return Curve{}, fmt.Errorf("invalid coefficient a: %w", err)
	}
	if _, err := d.SetString(desc.D); err != nil {
		return Curve{}, fmt.Errorf("invalid coefficient d: %w", err)
	}
	if _, err := x.SetString(desc.BaseX); err != nil {
		return Curve{}, fmt.Errorf("invalid base point x: %w", err)
	}
	if _, err := y.SetString(desc.BaseY); err != nil {
		return Curve{}, fmt.Errorf("invalid base point y: %w", err)
	}

	var base Point
	base.SetAffine(&x, &y)

	curve, err := NewCurve(a, d, base)
	if err != nil {
		return Curve{}, err
	}
	if _, ok := curve.Order.SetString(desc.Order, 10); !ok {
		return Curve{}, fmt.Errorf("invalid subgroup order %q", desc.Order)
	}
	if _, ok := curve.Cofactor.SetString(desc.Cofactor, 10); !ok {
		return Curve{}, fmt.Errorf("invalid cofactor %q", desc.Cofactor)
	}
	return curve, nil
}
