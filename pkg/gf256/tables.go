/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gf256

// Log/exp tables for GF(2^8) under the generator polynomial
// x^8 + x^4 + x^3 + x + 1. expTable[i] holds g^i for the generator element
// g = x + 1; logTable[i] holds the discrete log of element i. expTable[255]
// wraps back to expTable[0] so exponent lookups never need a reduction
// branch. logTable[0] is never read: zero has no logarithm, and the
// arithmetic routines resolve zero operands with constant-time selects
// instead of indexing it.
// nolint:gochecknoglobals // fixed tables, filled once at init and never mutated
var (
	expTable [256]uint8
	logTable [256]uint8
)

// nolint:gochecknoinits // table generation must happen before any field op
func init() {
	poly := 1

	for i := 0; i < 255; i++ {
		expTable[i] = uint8(poly)
		logTable[poly] = uint8(i)

		// multiply poly by the generator element x + 1
		poly = (poly << 1) ^ poly

		// reduce modulo x^8 + x^4 + x^3 + x + 1
		if poly&0x100 != 0 {
			poly ^= 0x11B
		}
	}

	expTable[255] = expTable[0]
}
