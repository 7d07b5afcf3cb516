/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir

import (
	"crypto/rand"

	"github.com/trustbloc/sss-core/pkg/gf256"
)

// polynomial represents a polynomial of arbitrary degree over GF(2^8). The
// intercept is coefficient zero; everything above it is random. One is built
// per secret byte during a split and discarded after evaluation.
type polynomial struct {
	coefficients []uint8
}

// makePolynomial constructs a random polynomial of the given degree with the
// provided intercept. Each coefficient above the intercept is drawn
// independently from the secure source; the fewer-than-threshold secrecy
// guarantee depends on that independence.
func makePolynomial(intercept, degree uint8) (polynomial, error) {
	p := polynomial{
		coefficients: make([]byte, degree+1),
	}

	p.coefficients[0] = intercept

	if _, err := rand.Read(p.coefficients[1:]); err != nil {
		return p, err
	}

	return p, nil
}

// evaluate returns the value of the polynomial at the given x using
// Horner's method.
func (p *polynomial) evaluate(x uint8) uint8 {
	// The origin is the intercept; returning it directly also avoids field
	// multiplications on the sensitive coefficient.
	if x == 0 {
		return p.coefficients[0]
	}

	degree := len(p.coefficients) - 1

	out := p.coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		out = gf256.Add(gf256.Mult(out, x), p.coefficients[i])
	}

	return out
}

// interpolatePolynomial takes N sample points and returns the value at the
// given x using Lagrange interpolation. The x-coordinates of the samples
// must be distinct: a duplicate puts a zero denominator into a basis term,
// which panics in the field division.
func interpolatePolynomial(xSamples, ySamples []uint8, x uint8) uint8 {
	limit := len(xSamples)

	var result uint8

	for i := 0; i < limit; i++ {
		basis := uint8(1)

		for j := 0; j < limit; j++ {
			if i == j {
				continue
			}

			num := gf256.Add(x, xSamples[j])
			denom := gf256.Add(xSamples[i], xSamples[j])
			basis = gf256.Mult(basis, gf256.Div(num, denom))
		}

		result = gf256.Add(result, gf256.Mult(ySamples[i], basis))
	}

	return result
}
