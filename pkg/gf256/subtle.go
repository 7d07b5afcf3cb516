/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gf256

import "fmt"

// byteEq reports whether x == y for values already known to fit in a byte,
// without a comparison branch: the XOR is zero only on equality, and
// subtracting one then borrows into the top bit exactly in that case.
func byteEq(x, y int) int {
	diff := uint32(x ^ y)

	return int((diff - 1) >> 31)
}

// ConstantTimeByteEq returns 1 if x equals y and 0 otherwise, computed with
// an XOR-and-zero-test rather than a comparison branch. Both inputs must be
// in 0..255; the range check is a usage contract rather than a timing
// concern, so it is allowed to branch.
func ConstantTimeByteEq(x, y int) (int, error) {
	if x < 0 || x > 255 {
		return 0, fmt.Errorf("byte equality operand out of range: %d", x)
	}

	if y < 0 || y > 255 {
		return 0, fmt.Errorf("byte equality operand out of range: %d", y)
	}

	return byteEq(x, y), nil
}

// ConstantTimeSelect returns x when v == 1 and y when v == 0, using bitwise
// masking so the selection itself does not leak which value was chosen. Any
// other selector is a contract violation by the caller and panics: an
// attempted recovery here could silently corrupt a secret byte.
func ConstantTimeSelect(v, x, y int) int {
	if v != 0 && v != 1 {
		panic(fmt.Sprintf("constant-time select: selector out of range: %d", v))
	}

	return ^(v-1)&x | (v-1)&y
}
