// Copyright (c) 2015-2024 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"encoding/hex"
)

// References:
//   [SECG]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf
//
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

// All group operations are performed using Jacobian coordinates.  For a given
// (x, y) position on the curve, the Jacobian coordinates are (x1, y1, z1)
// where x = x1/z1^2 and y = y1/z1^3.

// hexToFieldVal converts the passed hex string into a FieldVal and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToFieldVal(s string) *FieldVal {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	var f FieldVal
	if overflow := f.SetByteSlice(b); overflow {
		panic("hex in source file overflows mod P: " + s)
	}
	return &f
}

// hexToModNScalar converts the passed hex string into a ModNScalar and will
// panic if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected. It will only (and
// must only) be called with hard-coded values.
func hexToModNScalar(s string) *ModNScalar {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	var scalar ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow {
		panic("hex in source file overflows mod N scalar: " + s)
	}
	return &scalar
}

var (
	// The following variables provide convenient access to the coordinates of
	// the secp256k1 curve base point G as defined in [SECG] along with that
	// point expressed in Jacobian projective coordinates.
	curveGx = hexToFieldVal("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	curveGy = hexToFieldVal("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	fieldOne  = new(FieldVal).SetInt(1)
	basePoint = MakeJacobianPoint(curveGx, curveGy, fieldOne)
)

// JacobianPoint is an element of the group formed by the secp256k1 curve in
// Jacobian projective coordinates and thus represents a point on the curve.
type JacobianPoint struct {
	// The X coordinate in Jacobian projective coordinates.  The affine point is
	// X/z^2.
	X FieldVal

	// The Y coordinate in Jacobian projective coordinates.  The affine point is
	// Y/z^3.
	Y FieldVal

	// The Z coordinate in Jacobian projective coordinates.
	Z FieldVal
}

// MakeJacobianPoint returns a Jacobian point with the provided X, Y, and Z
// coordinates.
func MakeJacobianPoint(x, y, z *FieldVal) JacobianPoint {
	var p JacobianPoint
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.Set(z)
	return p
}

// Set sets the Jacobian point to the provided point.
func (p *JacobianPoint) Set(other *JacobianPoint) {
	p.X.Set(&other.X)
	p.Y.Set(&other.Y)
	p.Z.Set(&other.Z)
}

// cmov conditionally moves the passed point into p in constant time depending
// on the provided mask, which must either be all ones to move the value or all
// zeros to leave p unmodified.
func (p *JacobianPoint) cmov(other *JacobianPoint, mask uint64) {
	p.X.cmov(&other.X, mask)
	p.Y.cmov(&other.Y, mask)
	p.Z.cmov(&other.Z, mask)
}

// ToAffine reduces the Z value of the existing point to 1 effectively making
// it an affine coordinate in constant time.
func (p *JacobianPoint) ToAffine() {
	// Inversions are expensive and both point addition and point doubling
	// are faster when working with points that have a z value of one.  So,
	// if the point needs to be converted to affine, go ahead and convert the
	// point itself at the same time as the calculation is the same.
	var zInv, tempZ FieldVal
	zInv.Set(&p.Z).Inverse()  // zInv = Z^-1
	tempZ.SquareVal(&zInv)    // tempZ = Z^-2
	p.X.Mul(&tempZ)           // X = X/Z^2
	p.Y.Mul(tempZ.Mul(&zInv)) // Y = Y/Z^3
	p.Z.SetInt(1)             // Z = 1
}

// addZ1AndZ2EqualsOne adds two Jacobian points that are already known to have
// z values of 1 and stores the result in the provided result param.  That is to
// say result = p1 + p2.  It performs faster addition than the generic add
// routine since less arithmetic is needed due to the ability to avoid the z
// value multiplications.
func addZ1AndZ2EqualsOne(p1, p2, result *JacobianPoint) {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-mmadd-2007-bl
	//
	// In particular it performs the calculations using the following:
	// H = X2-X1, HH = H^2, I = 4*HH, J = H*I, r = 2*(Y2-Y1), V = X1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*Y1*J, Z3 = 2*H
	//
	// This results in a cost of 4 field multiplications, 2 field squarings,
	// 6 field additions, and 5 integer multiplications.
	x1, y1 := &p1.X, &p1.Y
	x2, y2 := &p2.X, &p2.Y
	x3, y3, z3 := &result.X, &result.Y, &result.Z

	// When the x coordinates are the same for two points on the curve, the
	// y coordinates either must be the same, in which case it is point
	// doubling, or they are opposite and the result is the point at
	// infinity per the group law for elliptic curve cryptography.
	if x1.Equals(x2) {
		if y1.Equals(y2) {
			// Since x1 == x2 and y1 == y2, point doubling must be
			// done, otherwise the addition would end up dividing
			// by zero.
			DoubleNonConst(p1, result)
			return
		}

		// Since x1 == x2 and y1 == -y2, the sum is the point at
		// infinity per the group law.
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	// Calculate X3, Y3, and Z3 according to the intermediate elements
	// breakdown above.
	var h, i, j, r, v FieldVal
	var negJ, neg2V, negX3 FieldVal
	h.Set(x1).Negate().Add(x2)                 // H = X2-X1
	i.SquareVal(&h).MulInt(4)                  // I = 4*H^2
	j.Mul2(&h, &i)                             // J = H*I
	r.Set(y1).Negate().Add(y2).MulInt(2)       // r = 2*(Y2-Y1)
	v.Mul2(x1, &i)                             // V = X1*I
	negJ.Set(&j).Negate()                      // negJ = -J
	neg2V.Set(&v).MulInt(2).Negate()           // neg2V = -(2*V)
	x3.Set(&r).Square().Add(&negJ).Add(&neg2V) // X3 = r^2-J-2*V
	negX3.Set(x3).Negate()                     // negX3 = -X3
	j.Mul(y1).MulInt(2).Negate()               // J = -(2*Y1*J)
	y3.Set(&v).Add(&negX3).Mul(&r).Add(&j)     // Y3 = r*(V-X3)-2*Y1*J
	z3.Set(&h).MulInt(2)                       // Z3 = 2*H
}

// addZ1EqualsZ2 adds two Jacobian points that are already known to have the
// same z value and stores the result in the provided result param.  That is to
// say result = p1 + p2.  It performs faster addition than the generic add
// routine since less arithmetic is needed due to the known equivalence.
func addZ1EqualsZ2(p1, p2, result *JacobianPoint) {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using a slightly modified version
	// of the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-zadd-2007-m
	//
	// In particular it performs the calculations using the following:
	// A = X2-X1, B = A^2, C=Y2-Y1, D = C^2, E = X1*B, F = X2*B
	// X3 = D-E-F, Y3 = C*(E-X3)-Y1*(F-E), Z3 = Z1*A
	//
	// This results in a cost of 5 field multiplications, 2 field squarings,
	// 9 field additions, and 0 integer multiplications.
	x1, y1, z1 := &p1.X, &p1.Y, &p1.Z
	x2, y2 := &p2.X, &p2.Y
	x3, y3, z3 := &result.X, &result.Y, &result.Z

	// When the x coordinates are the same for two points on the curve, the
	// y coordinates either must be the same, in which case it is point
	// doubling, or they are opposite and the result is the point at
	// infinity per the group law for elliptic curve cryptography.
	if x1.Equals(x2) {
		if y1.Equals(y2) {
			// Since x1 == x2 and y1 == y2, point doubling must be
			// done, otherwise the addition would end up dividing
			// by zero.
			DoubleNonConst(p1, result)
			return
		}

		// Since x1 == x2 and y1 == -y2, the sum is the point at
		// infinity per the group law.
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	// Calculate X3, Y3, and Z3 according to the intermediate elements
	// breakdown above.
	var a, b, c, d, e, f FieldVal
	var negX1, negY1, negE, negX3 FieldVal
	negX1.Set(x1).Negate()              // negX1 = -X1
	negY1.Set(y1).Negate()              // negY1 = -Y1
	a.Set(&negX1).Add(x2)               // A = X2-X1
	b.SquareVal(&a)                     // B = A^2
	c.Set(&negY1).Add(y2)               // C = Y2-Y1
	d.SquareVal(&c)                     // D = C^2
	e.Mul2(x1, &b)                      // E = X1*B
	negE.Set(&e).Negate()               // negE = -E
	f.Mul2(x2, &b)                      // F = X2*B
	x3.Add2(&e, &f).Negate().Add(&d)    // X3 = D-E-F
	negX3.Set(x3).Negate()              // negX3 = -X3
	y3.Set(y1).Mul(f.Add(&negE)).Negate() // Y3 = -(Y1*(F-E))
	y3.Add(e.Add(&negX3).Mul(&c))       // Y3 = C*(E-X3)+Y3
	z3.Mul2(z1, &a)                     // Z3 = Z1*A
}

// addZ2EqualsOne adds two Jacobian points when the second point is already
// known to have a z value of 1 (and the z value for the first point is not 1)
// and stores the result in the provided result param.  That is to say result =
// p1 + p2.  It performs faster addition than the generic add routine since
// less arithmetic is needed due to the ability to avoid multiplications by the
// second point's z value.
func addZ2EqualsOne(p1, p2, result *JacobianPoint) {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-madd-2007-bl
	//
	// In particular it performs the calculations using the following:
	// Z1Z1 = Z1^2, U2 = X2*Z1Z1, S2 = Y2*Z1*Z1Z1, H = U2-X1, HH = H^2,
	// I = 4*HH, J = H*I, r = 2*(S2-Y1), V = X1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*Y1*J, Z3 = (Z1+H)^2-Z1Z1-HH
	//
	// This results in a cost of 7 field multiplications, 4 field squarings,
	// 9 field additions, and 4 integer multiplications.
	x1, y1, z1 := &p1.X, &p1.Y, &p1.Z
	x2, y2 := &p2.X, &p2.Y
	x3, y3, z3 := &result.X, &result.Y, &result.Z

	// When the x coordinates are the same for two points on the curve, the
	// y coordinates either must be the same, in which case it is point
	// doubling, or they are opposite and the result is the point at
	// infinity per the group law for elliptic curve cryptography.  Since
	// any number of Jacobian coordinates can represent the same affine
	// point, the x and y values need to be converted to like terms.  Due to
	// the assumption made for this function that the second point has a z
	// value of 1 (z2=1), the first point is already "converted".
	var z1z1, u2, s2 FieldVal
	z1z1.SquareVal(z1)            // Z1Z1 = Z1^2
	u2.Set(x2).Mul(&z1z1)         // U2 = X2*Z1Z1
	s2.Set(y2).Mul(&z1z1).Mul(z1) // S2 = Y2*Z1*Z1Z1
	if x1.Equals(&u2) {
		if y1.Equals(&s2) {
			// Since x1 == x2 and y1 == y2, point doubling must be
			// done, otherwise the addition would end up dividing
			// by zero.
			DoubleNonConst(p1, result)
			return
		}

		// Since x1 == x2 and y1 == -y2, the sum is the point at
		// infinity per the group law.
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	// Calculate X3, Y3, and Z3 according to the intermediate elements
	// breakdown above.
	var h, hh, i, j, r, rr, v FieldVal
	var negX1, negY1, negX3 FieldVal
	negX1.Set(x1).Negate()              // negX1 = -X1
	h.Add2(&u2, &negX1)                 // H = U2-X1
	hh.SquareVal(&h)                    // HH = H^2
	i.Set(&hh).MulInt(4)                // I = 4 * HH
	j.Mul2(&h, &i)                      // J = H*I
	negY1.Set(y1).Negate()              // negY1 = -Y1
	r.Set(&s2).Add(&negY1).MulInt(2)    // r = 2*(S2-Y1)
	rr.SquareVal(&r)                    // rr = r^2
	v.Mul2(x1, &i)                      // V = X1*I
	x3.Set(&v).MulInt(2).Add(&j).Negate() // X3 = -(J+2*V)
	x3.Add(&rr)                         // X3 = r^2+X3
	negX3.Set(x3).Negate()              // negX3 = -X3
	y3.Set(y1).Mul(&j).MulInt(2).Negate() // Y3 = -(2*Y1*J)
	y3.Add(v.Add(&negX3).Mul(&r))       // Y3 = r*(V-X3)+Y3
	z3.Add2(z1, &h).Square()            // Z3 = (Z1+H)^2
	z3.Add(z1z1.Add(&hh).Negate())      // Z3 = Z3-(Z1Z1+HH)
}

// addGeneric adds two Jacobian points without any assumptions about the z
// values of the two points and stores the result in the provided result param.
// That is to say result = p1 + p2.  It is the slowest of the add routines due
// to requiring the most arithmetic.
func addGeneric(p1, p2, result *JacobianPoint) {
	// To compute the point addition efficiently, this implementation splits
	// the equation into intermediate elements which are used to minimize
	// the number of field multiplications using the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#addition-add-2007-bl
	//
	// In particular it performs the calculations using the following:
	// Z1Z1 = Z1^2, Z2Z2 = Z2^2, U1 = X1*Z2Z2, U2 = X2*Z1Z1, S1 = Y1*Z2*Z2Z2
	// S2 = Y2*Z1*Z1Z1, H = U2-U1, I = (2*H)^2, J = H*I, r = 2*(S2-S1)
	// V = U1*I
	// X3 = r^2-J-2*V, Y3 = r*(V-X3)-2*S1*J, Z3 = ((Z1+Z2)^2-Z1Z1-Z2Z2)*H
	//
	// This results in a cost of 11 field multiplications, 5 field squarings,
	// 9 field additions, and 4 integer multiplications.
	x1, y1, z1 := &p1.X, &p1.Y, &p1.Z
	x2, y2, z2 := &p2.X, &p2.Y, &p2.Z
	x3, y3, z3 := &result.X, &result.Y, &result.Z

	// When the x coordinates are the same for two points on the curve, the
	// y coordinates either must be the same, in which case it is point
	// doubling, or they are opposite and the result is the point at
	// infinity.  Since any number of Jacobian coordinates can represent the
	// same affine point, the x and y values need to be converted to like
	// terms.
	var z1z1, z2z2, u1, u2, s1, s2 FieldVal
	z1z1.SquareVal(z1)            // Z1Z1 = Z1^2
	z2z2.SquareVal(z2)            // Z2Z2 = Z2^2
	u1.Set(x1).Mul(&z2z2)         // U1 = X1*Z2Z2
	u2.Set(x2).Mul(&z1z1)         // U2 = X2*Z1Z1
	s1.Set(y1).Mul(&z2z2).Mul(z2) // S1 = Y1*Z2*Z2Z2
	s2.Set(y2).Mul(&z1z1).Mul(z1) // S2 = Y2*Z1*Z1Z1
	if u1.Equals(&u2) {
		if s1.Equals(&s2) {
			// Since x1 == x2 and y1 == y2, point doubling must be
			// done, otherwise the addition would end up dividing
			// by zero.
			DoubleNonConst(p1, result)
			return
		}

		// Since x1 == x2 and y1 == -y2, the sum is the point at
		// infinity per the group law.
		x3.SetInt(0)
		y3.SetInt(0)
		z3.SetInt(0)
		return
	}

	// Calculate X3, Y3, and Z3 according to the intermediate elements
	// breakdown above.
	var h, i, j, r, rr, v FieldVal
	var negU1, negS1, negX3 FieldVal
	negU1.Set(&u1).Negate()             // negU1 = -U1
	h.Add2(&u2, &negU1)                 // H = U2-U1
	i.Set(&h).MulInt(2).Square()        // I = (2*H)^2
	j.Mul2(&h, &i)                      // J = H*I
	negS1.Set(&s1).Negate()             // negS1 = -S1
	r.Set(&s2).Add(&negS1).MulInt(2)    // r = 2*(S2-S1)
	rr.SquareVal(&r)                    // rr = r^2
	v.Mul2(&u1, &i)                     // V = U1*I
	x3.Set(&v).MulInt(2).Add(&j).Negate() // X3 = -(J+2*V)
	x3.Add(&rr)                         // X3 = r^2+X3
	negX3.Set(x3).Negate()              // negX3 = -X3
	y3.Mul2(&s1, &j).MulInt(2).Negate() // Y3 = -(2*S1*J)
	y3.Add(v.Add(&negX3).Mul(&r))       // Y3 = r*(V-X3)+Y3
	z3.Add2(z1, z2).Square()            // Z3 = (Z1+Z2)^2
	z3.Add(z1z1.Add(&z2z2).Negate())    // Z3 = Z3-(Z1Z1+Z2Z2)
	z3.Mul(&h)                          // Z3 = Z3*H
}

// AddNonConst adds the passed Jacobian points together and stores the result
// in the provided result param in *non-constant* time.
func AddNonConst(p1, p2, result *JacobianPoint) {
	// The point at infinity is the identity according to the group law for
	// elliptic curve cryptography.  Thus, ∞ + P = P and P + ∞ = P.
	if (p1.X.IsZero() && p1.Y.IsZero()) || p1.Z.IsZero() {
		result.Set(p2)
		return
	}
	if (p2.X.IsZero() && p2.Y.IsZero()) || p2.Z.IsZero() {
		result.Set(p1)
		return
	}

	// Faster point addition can be achieved when certain assumptions are
	// met.  For example, when both points have the same z value, arithmetic
	// on the z values can be avoided.  This section thus checks for these
	// conditions and calls an appropriate add function which is accelerated
	// by using those assumptions.
	isZ1One := p1.Z.IsOne()
	isZ2One := p2.Z.IsOne()
	switch {
	case isZ1One && isZ2One:
		addZ1AndZ2EqualsOne(p1, p2, result)
		return
	case p1.Z.Equals(&p2.Z):
		addZ1EqualsZ2(p1, p2, result)
		return
	case isZ2One:
		addZ2EqualsOne(p1, p2, result)
		return
	}

	// None of the above assumptions are true, so fall back to generic
	// point addition.
	addGeneric(p1, p2, result)
}

// doubleZ1EqualsOne performs point doubling on the passed Jacobian point when
// the point is already known to have a z value of 1 and stores the result in
// the provided result param.  That is to say result = 2*p.  It performs faster
// point doubling than the generic routine since less arithmetic is needed due
// to the ability to avoid multiplication by the z value.
func doubleZ1EqualsOne(p, result *JacobianPoint) {
	// This function uses the assumptions that z1 is 1, thus the point
	// doubling formulas reduce to:
	//
	// X3 = (3*X1^2)^2 - 8*X1*Y1^2
	// Y3 = (3*X1^2)*(4*X1*Y1^2 - X3) - 8*Y1^4
	// Z3 = 2*Y1
	//
	// To compute the above efficiently, this implementation splits the
	// equation into intermediate elements which are used to minimize the
	// number of field multiplications in favor of field squarings which
	// are roughly 35% faster than field multiplications with the current
	// implementation at the time this was written.
	//
	// This uses a slightly modified version of the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-mdbl-2007-bl
	//
	// In particular it performs the calculations using the following:
	// A = X1^2, B = Y1^2, C = B^2, D = 2*((X1+B)^2-A-C)
	// E = 3*A, F = E^2, X3 = F-2*D, Y3 = E*(D-X3)-8*C
	// Z3 = 2*Y1
	//
	// This results in a cost of 1 field multiplication, 5 field squarings,
	// 6 field additions, and 5 integer multiplications.
	x1, y1 := &p.X, &p.Y
	x3, y3, z3 := &result.X, &result.Y, &result.Z
	var a, b, c, d, e, f FieldVal
	z3.Set(y1).MulInt(2)            // Z3 = 2*Y1
	a.SquareVal(x1)                 // A = X1^2
	b.SquareVal(y1)                 // B = Y1^2
	c.SquareVal(&b)                 // C = B^2
	b.Add(x1).Square()              // B = (X1+B)^2
	d.Set(&a).Add(&c).Negate()      // D = -(A+C)
	d.Add(&b).MulInt(2)             // D = 2*(B+D)
	e.Set(&a).MulInt(3)             // E = 3*A
	f.SquareVal(&e)                 // F = E^2
	x3.Set(&d).MulInt(2).Negate()   // X3 = -(2*D)
	x3.Add(&f)                      // X3 = F+X3
	f.Set(x3).Negate().Add(&d)      // F = D-X3
	y3.Set(&c).MulInt(8).Negate()   // Y3 = -(8*C)
	y3.Add(f.Mul(&e))               // Y3 = E*F+Y3
}

// doubleGeneric performs point doubling on the passed Jacobian point without
// any assumptions about the z value and stores the result in the provided
// result param.  That is to say result = 2*p.  It is the slowest of the point
// doubling routines due to requiring the most arithmetic.
func doubleGeneric(p, result *JacobianPoint) {
	// Point doubling formula for Jacobian coordinates for the secp256k1
	// curve:
	//
	// X3 = (3*X1^2)^2 - 8*X1*Y1^2
	// Y3 = (3*X1^2)*(4*X1*Y1^2 - X3) - 8*Y1^4
	// Z3 = 2*Y1*Z1
	//
	// To compute the above efficiently, this implementation splits the
	// equation into intermediate elements which are used to minimize the
	// number of field multiplications in favor of field squarings which
	// are roughly 35% faster than field multiplications with the current
	// implementation at the time this was written.
	//
	// This uses a slightly modified version of the method shown at:
	// https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian-0.html#doubling-dbl-2009-l
	//
	// In particular it performs the calculations using the following:
	// A = X1^2, B = Y1^2, C = B^2, D = 2*((X1+B)^2-A-C)
	// E = 3*A, F = E^2, X3 = F-2*D, Y3 = E*(D-X3)-8*C
	// Z3 = 2*Y1*Z1
	//
	// This results in a cost of 1 field multiplication, 5 field squarings,
	// 6 field additions, and 5 integer multiplications.
	x1, y1, z1 := &p.X, &p.Y, &p.Z
	x3, y3, z3 := &result.X, &result.Y, &result.Z
	var a, b, c, d, e, f FieldVal
	z3.Mul2(y1, z1).MulInt(2)       // Z3 = 2*Y1*Z1
	a.SquareVal(x1)                 // A = X1^2
	b.SquareVal(y1)                 // B = Y1^2
	c.SquareVal(&b)                 // C = B^2
	b.Add(x1).Square()              // B = (X1+B)^2
	d.Set(&a).Add(&c).Negate()      // D = -(A+C)
	d.Add(&b).MulInt(2)             // D = 2*(B+D)
	e.Set(&a).MulInt(3)             // E = 3*A
	f.SquareVal(&e)                 // F = E^2
	x3.Set(&d).MulInt(2).Negate()   // X3 = -(2*D)
	x3.Add(&f)                      // X3 = F+X3
	f.Set(x3).Negate().Add(&d)      // F = D-X3
	y3.Set(&c).MulInt(8).Negate()   // Y3 = -(8*C)
	y3.Add(f.Mul(&e))               // Y3 = E*F+Y3
}

// DoubleNonConst doubles the passed Jacobian point and stores the result in
// the provided result parameter in *non-constant* time.
func DoubleNonConst(p, result *JacobianPoint) {
	// Doubling the point at infinity is still infinity.
	if p.Y.IsZero() || p.Z.IsZero() {
		result.X.SetInt(0)
		result.Y.SetInt(0)
		result.Z.SetInt(0)
		return
	}

	// Slightly faster point doubling can be achieved when the z value is 1
	// by avoiding the multiplication on the z value.  This section calls
	// a point doubling function which is accelerated by using that
	// assumption when possible.
	if p.Z.IsOne() {
		doubleZ1EqualsOne(p, result)
		return
	}

	// Fall back to generic point doubling which works with arbitrary z
	// values.
	doubleGeneric(p, result)
}

// ScalarMultNonConst multiplies k*P where k is a scalar modulo the curve order
// and P is a point in Jacobian projective coordinates and stores the result in
// the provided Jacobian point.
func ScalarMultNonConst(k *ModNScalar, point, result *JacobianPoint) {
	// This uses the standard left-to-right double-and-add approach described
	// by algorithm 3.27 in [GECC] to compute the multiplication.
	//
	// Point Q = ∞ (point at infinity).
	var q JacobianPoint
	kb := k.Bytes()
	for _, b := range kb {
		for bit := 7; bit >= 0; bit-- {
			// Q = 2 * Q
			DoubleNonConst(&q, &q)
			if b>>uint(bit)&1 == 1 {
				// Q = Q + P
				AddNonConst(&q, point, &q)
			}
		}
	}
	result.Set(&q)
}

// ScalarMultConst multiplies k*P where k is a scalar modulo the curve order
// and P is a point in Jacobian projective coordinates and stores the result in
// the provided Jacobian point.
//
// Unlike ScalarMultNonConst, the sequence of point doublings and additions is
// fixed and the conditional selection of each intermediate sum is done with
// masked moves so the bits of the scalar do not influence which curve
// operations are performed.  It is therefore the variant to use when the
// scalar is a secret such as a private key or ECDH multiplication.
func ScalarMultConst(k *ModNScalar, point, result *JacobianPoint) {
	// Double-and-add-always over the bits of the scalar from most to least
	// significant.  A candidate sum is computed for every bit and either
	// kept or discarded via a constant-time conditional move, so exactly
	// 256 doublings and 256 additions take place no matter the scalar.
	var q, sum JacobianPoint
	kb := k.Bytes()
	for _, b := range kb {
		for bit := 7; bit >= 0; bit-- {
			DoubleNonConst(&q, &q)
			AddNonConst(&q, point, &sum)
			q.cmov(&sum, -uint64(b>>uint(bit)&1))
		}
	}
	result.Set(&q)
	zeroArray32(&kb)
}

// ScalarBaseMultNonConst multiplies k*G where k is a scalar modulo the curve
// order and G is the base point of the group and stores the result in the
// provided Jacobian point.
func ScalarBaseMultNonConst(k *ModNScalar, result *JacobianPoint) {
	ScalarMultNonConst(k, &basePoint, result)
}

// ScalarBaseMultConst multiplies k*G where k is a scalar modulo the curve
// order and G is the base point of the group and stores the result in the
// provided Jacobian point using a fixed sequence of curve operations.  See
// ScalarMultConst for details on when this variant is appropriate.
func ScalarBaseMultConst(k *ModNScalar, result *JacobianPoint) {
	ScalarMultConst(k, &basePoint, result)
}

// isOnCurve returns whether or not the affine point (x,y) is on the curve.
func isOnCurve(fx, fy *FieldVal) bool {
	// Elliptic curve equation for secp256k1 is: y^2 = x^3 + 7
	y2 := new(FieldVal).SquareVal(fy)
	result := new(FieldVal).SquareVal(fx).Mul(fx).AddInt(7)
	return y2.Equals(result)
}

// DecompressY attempts to calculate the Y coordinate for the given X
// coordinate such that the result pair is a point on the secp256k1 curve.  It
// adjusts Y based on the desired oddness and returns whether or not it was
// successful since not all X coordinates are valid.
func DecompressY(x *FieldVal, odd bool, resultY *FieldVal) bool {
	// The curve equation for secp256k1 is: y^2 = x^3 + 7.  Thus
	// y = +-sqrt(x^3 + 7).
	//
	// The x coordinate must be invalid if there is no square root for the
	// calculated rhs because it means the X coordinate is not for a point on
	// the curve.
	x3PlusB := new(FieldVal).SquareVal(x).Mul(x).AddInt(7)
	if hasSqrt := resultY.SquareRootVal(x3PlusB); !hasSqrt {
		return false
	}
	if resultY.IsOdd() != odd {
		resultY.Negate()
	}
	return true
}
