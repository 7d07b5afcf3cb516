/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import "errors"

// Validation errors: caller mistakes discoverable from the shape of the
// input alone. The messages are stable and part of the public contract.
// nolint:golint,stylecheck // message casing is part of the public contract
var (
	// ErrThresholdTooSmall is returned when fewer than two shares would be required to reconstruct.
	ErrThresholdTooSmall = errors.New("Threshold must be at least 2")

	// ErrThresholdTooLarge is returned when the threshold does not fit the one-byte x-coordinate space.
	ErrThresholdTooLarge = errors.New("Threshold cannot exceed 255")

	// ErrTooFewParts is returned when fewer shares are requested than the threshold needs.
	ErrTooFewParts = errors.New("Parts cannot be less than threshold")

	// ErrTooManyParts is returned when more shares are requested than there are distinct x-coordinates.
	ErrTooManyParts = errors.New("Parts cannot exceed 255")

	// ErrEmptySecret is returned when there is nothing to split.
	ErrEmptySecret = errors.New("Cannot split an empty secret")

	// ErrTooFewShares is returned when fewer than two shares are supplied to Combine.
	ErrTooFewShares = errors.New("Less than two parts cannot be used to reconstruct the secret")

	// ErrShareTooShort is returned when a share cannot hold both a sample and its x-coordinate tag.
	ErrShareTooShort = errors.New("Parts must be at least two bytes")

	// ErrShareLengthMismatch is returned when the supplied shares differ in length.
	ErrShareLengthMismatch = errors.New("All parts must be the same length")
)

// ErrDuplicatePart is fatal rather than a shape problem: two shares carrying
// the same x-coordinate tag would put a zero denominator into the Lagrange
// basis, so Combine aborts immediately instead of attempting recovery.
// nolint:golint,stylecheck // message casing is part of the public contract
var ErrDuplicatePart = errors.New("Duplicate part detected")
