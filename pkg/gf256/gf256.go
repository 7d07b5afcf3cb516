/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gf256 implements arithmetic over the finite field GF(2^8),
// together with the constant-time primitives the arithmetic relies on to
// avoid branching on secret-derived values.
package gf256

// Add combines two field elements. Addition and subtraction are the same
// operation in a characteristic-2 field, so this serves as both.
func Add(a, b uint8) uint8 {
	return a ^ b
}

// Mult multiplies two field elements.
func Mult(a, b uint8) uint8 {
	logA := int(logTable[a])
	logB := int(logTable[b])
	sum := (logA + logB) % 255

	ret := int(expTable[sum])

	// Zero has no logarithm, so the lookup above is meaningless whenever an
	// operand is zero. Those cases resolve through selects rather than
	// branches: the operands can be secret-derived polynomial coefficients.
	ret = ConstantTimeSelect(byteEq(int(a), 0), 0, ret)
	ret = ConstantTimeSelect(byteEq(int(b), 0), 0, ret)

	return uint8(ret)
}

// Div divides a by b. A zero divisor means duplicate x-coordinates slipped
// past the caller's uniqueness checks; that state is unreachable on valid
// input, so it panics rather than returning a corrupted value.
func Div(a, b uint8) uint8 {
	if b == 0 {
		// The branch leaks timing, but this path signals an internal bug and
		// is never taken for valid shares.
		panic("divide by zero")
	}

	logA := int(logTable[a])
	logB := int(logTable[b])
	diff := ((logA - logB) + 255) % 255

	ret := int(expTable[diff])

	ret = ConstantTimeSelect(byteEq(int(a), 0), 0, ret)

	return uint8(ret)
}
