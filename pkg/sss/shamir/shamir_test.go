/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package shamir // nolint:testpackage // references internal implementation details

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitValidation(t *testing.T) {
	t.Run("threshold below 2", func(t *testing.T) {
		_, err := Split([]byte("secret"), 0, 0)
		require.Equal(t, ErrThresholdTooSmall, err)
	})

	t.Run("threshold above 255", func(t *testing.T) {
		_, err := Split([]byte("secret"), 1000, 1000)
		require.Equal(t, ErrThresholdTooLarge, err)
	})

	t.Run("parts below threshold", func(t *testing.T) {
		_, err := Split([]byte("secret"), 2, 3)
		require.Equal(t, ErrTooFewParts, err)
	})

	t.Run("parts above 255", func(t *testing.T) {
		_, err := Split([]byte("secret"), 1000, 3)
		require.Equal(t, ErrTooManyParts, err)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := Split([]byte{}, 3, 2)
		require.Equal(t, ErrEmptySecret, err)
	})
}

func TestSplit(t *testing.T) {
	secret := []byte("test")

	out, err := Split(secret, 5, 2)
	require.NoError(t, err)
	require.Len(t, out, 5)

	for _, share := range out {
		require.Len(t, share, len(secret)+ShareOverhead)
	}
}

func TestSplitShareTags(t *testing.T) {
	secret := []byte("tagged")

	out, err := Split(secret, 255, 2)
	require.NoError(t, err)

	seen := map[byte]bool{}

	for _, share := range out {
		tag := share[len(share)-1]
		require.NotZero(t, tag)
		require.False(t, seen[tag], "tags must be pairwise distinct")
		seen[tag] = true
	}
}

func TestSplitIsRandomized(t *testing.T) {
	secret := []byte("test")

	first, err := Split(secret, 5, 3)
	require.NoError(t, err)

	second, err := Split(secret, 5, 3)
	require.NoError(t, err)

	// With fresh polynomials and x-coordinates per call, two splits of the
	// same secret should essentially never coincide.
	require.NotEqual(t, first, second)
}

func TestCombineValidation(t *testing.T) {
	t.Run("no shares", func(t *testing.T) {
		_, err := Combine(nil)
		require.Equal(t, ErrTooFewShares, err)
	})

	t.Run("single share", func(t *testing.T) {
		_, err := Combine([][]byte{[]byte("foo")})
		require.Equal(t, ErrTooFewShares, err)
	})

	t.Run("share too short", func(t *testing.T) {
		_, err := Combine([][]byte{[]byte("a"), []byte("b")})
		require.Equal(t, ErrShareTooShort, err)
	})

	t.Run("mismatched share lengths", func(t *testing.T) {
		_, err := Combine([][]byte{[]byte("foo"), []byte("ba")})
		require.Equal(t, ErrShareLengthMismatch, err)
	})

	t.Run("duplicate share", func(t *testing.T) {
		_, err := Combine([][]byte{[]byte("foo"), []byte("foo")})
		require.Equal(t, ErrDuplicatePart, err)
	})
}

func TestSplitCombine(t *testing.T) {
	secret := []byte("test test")

	out, err := Split(secret, 5, 3)
	require.NoError(t, err)
	require.Len(t, out, 5)

	for _, share := range out {
		require.Len(t, share, len(secret)+1)
	}

	t.Run("every 3-share subset reconstructs", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			for j := i + 1; j < 5; j++ {
				for k := j + 1; k < 5; k++ {
					recovered, err := Combine([][]byte{out[i], out[j], out[k]})
					require.NoError(t, err)
					require.Equal(t, secret, recovered)
				}
			}
		}
	})

	t.Run("4 and 5 share subsets reconstruct", func(t *testing.T) {
		recovered, err := Combine(out[1:])
		require.NoError(t, err)
		require.Equal(t, secret, recovered)

		recovered, err = Combine(out)
		require.NoError(t, err)
		require.Equal(t, secret, recovered)
	})

	t.Run("share order does not matter", func(t *testing.T) {
		recovered, err := Combine([][]byte{out[4], out[0], out[2]})
		require.NoError(t, err)
		require.Equal(t, secret, recovered)

		recovered, err = Combine([][]byte{out[2], out[4], out[0]})
		require.NoError(t, err)
		require.Equal(t, secret, recovered)
	})
}

func TestSplitCombineSingleByte(t *testing.T) {
	for b := 0; b < 256; b += 17 {
		secret := []byte{uint8(b)}

		out, err := Split(secret, 3, 2)
		require.NoError(t, err)

		recovered, err := Combine(out[:2])
		require.NoError(t, err)
		require.Equal(t, secret, recovered)
	}
}

func TestSplitCombineMaxParts(t *testing.T) {
	secret := []byte("max")

	out, err := Split(secret, 255, 255)
	require.NoError(t, err)
	require.Len(t, out, 255)

	recovered, err := Combine(out)
	require.NoError(t, err)
	require.Equal(t, secret, recovered)
}

func TestPerm(t *testing.T) {
	t.Run("is a bijection over 0..n-1", func(t *testing.T) {
		m, err := perm(255)
		require.NoError(t, err)
		require.Len(t, m, 255)

		seen := make([]bool, 255)

		for _, v := range m {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 255)
			require.False(t, seen[v])
			seen[v] = true
		}
	})

	t.Run("two draws differ", func(t *testing.T) {
		first, err := perm(255)
		require.NoError(t, err)

		second, err := perm(255)
		require.NoError(t, err)

		require.NotEqual(t, first, second)
	})
}
