/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package shamir implements Shamir's Secret Sharing over GF(2^8). A secret
// is split into parts shares of which any threshold reconstruct it exactly,
// while fewer reveal nothing about it. All functions are pure over their
// inputs and the field tables, so they are safe for concurrent use.
package shamir

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ShareOverhead is the byte size overhead of each share compared to the
// secret: the one-byte x-coordinate tag appended by Split.
const ShareOverhead = 1

// perm returns a uniformly random permutation of 0..n-1 built with the
// inside-out Fisher-Yates shuffle, drawing every bounded index from the
// secure source.
func perm(n int) ([]int, error) {
	m := make([]int, n)

	for i := 0; i < n; i++ {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i)+1))
		if err != nil {
			return nil, err
		}

		m[i] = m[j.Int64()]
		m[j.Int64()] = i
	}

	return m, nil
}

// Split takes an arbitrarily long secret and generates a parts number of
// shares, threshold of which are required to reconstruct it. Parts and
// threshold must both fit in 2..255 with parts at least the threshold. Each
// returned share is one byte longer than the secret: the layout is
// [y_0, .., y_{n-1}, x] with the trailing x-coordinate tag in 1..255, unique
// within the returned set. Callers must not read meaning into share order;
// every share is self-describing through its tag.
func Split(secret []byte, parts, threshold int) ([][]byte, error) {
	if threshold < 2 {
		return nil, ErrThresholdTooSmall
	}

	if threshold > 255 {
		return nil, ErrThresholdTooLarge
	}

	if parts < threshold {
		return nil, ErrTooFewParts
	}

	if parts > 255 {
		return nil, ErrTooManyParts
	}

	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	// Random, distinct x-coordinates for the shares. The +1 keeps them in
	// 1..255: zero stays reserved as the evaluation point that recovers the
	// intercept, and with permutation values in 0..254 the shift cannot
	// leave the byte range.
	xCoordinates, err := perm(255)
	if err != nil {
		return nil, fmt.Errorf("generate x-coordinates: %w", err)
	}

	out := make([][]byte, parts)
	for idx := range out {
		out[idx] = make([]byte, len(secret)+1)
		out[idx][len(secret)] = uint8(xCoordinates[idx]) + 1
	}

	// One independently random polynomial per secret byte: the field only
	// fits a single byte as the intercept, and reusing randomness across
	// byte positions would void the fewer-than-threshold secrecy guarantee.
	for idx, val := range secret {
		p, err := makePolynomial(val, uint8(threshold-1))
		if err != nil {
			return nil, fmt.Errorf("generate polynomial: %w", err)
		}

		for i := 0; i < parts; i++ {
			x := uint8(xCoordinates[i]) + 1
			out[i][idx] = p.evaluate(x)
		}
	}

	return out, nil
}

// Combine reverses a Split, reconstructing the secret once a threshold
// number of shares are available. Any subset of at least threshold valid
// shares works, in any order.
func Combine(parts [][]byte) ([]byte, error) {
	if len(parts) < 2 {
		return nil, ErrTooFewShares
	}

	firstPartLen := len(parts[0])
	if firstPartLen < 2 {
		return nil, ErrShareTooShort
	}

	for i := 1; i < len(parts); i++ {
		if len(parts[i]) != firstPartLen {
			return nil, ErrShareLengthMismatch
		}
	}

	secret := make([]byte, firstPartLen-1)

	xSamples := make([]uint8, len(parts))
	ySamples := make([]uint8, len(parts))

	// A duplicate tag would put a zero denominator into the interpolation;
	// abort here instead of letting the field division panic mid-recovery.
	seen := map[byte]bool{}

	for i, part := range parts {
		sample := part[firstPartLen-1]
		if seen[sample] {
			return nil, ErrDuplicatePart
		}

		seen[sample] = true
		xSamples[i] = sample
	}

	// Recover one byte per position by interpolating that position's column
	// of samples at the origin.
	for idx := range secret {
		for i, part := range parts {
			ySamples[i] = part[idx]
		}

		secret[idx] = interpolatePolynomial(xSamples, ySamples, 0)
	}

	return secret, nil
}
