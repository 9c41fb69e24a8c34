package p256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt256_ReduceOnce(t *testing.T) {
	require.Equal(t, int256Zero, int256Zero.reduceOnce(0))
	require.Equal(t, int256Zero, p256Prime.reduceOnce(0))
}

func TestInt256_AddSubRoundTrip(t *testing.T) {
	vectors := []int256{
		int256Zero,
		int256One,
		{v: [limbs]uint32{2, 0, 0, 0, 0, 0, 0, 0}},
		{v: [limbs]uint32{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, a := range vectors {
		for _, b := range vectors {
			require.False(t, a.add(b).sub(b).notEqual(a))
		}
	}
}

func TestInt256_MultIdentityAndZero(t *testing.T) {
	vectors := []int256{
		int256One,
		{v: [limbs]uint32{2, 0, 0, 0, 0, 0, 0, 0}},
		{v: [limbs]uint32{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, a := range vectors {
		require.False(t, a.mult(int256One).notEqual(a))
		require.False(t, a.mult(int256Zero).notEqual(int256Zero))
	}
}

func TestInt256_InverseRoundTrip(t *testing.T) {
	require.False(t, int256One.inverse().notEqual(int256One))

	vectors := []int256{
		int256One,
		{v: [limbs]uint32{2, 0, 0, 0, 0, 0, 0, 0}},
		{v: [limbs]uint32{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, a := range vectors {
		inv := a.inverse()
		require.False(t, inv.mult(a).notEqual(int256One))
	}
}

func TestInt256_BytesRoundTrip(t *testing.T) {
	vectors := []int256{
		int256Zero,
		int256One,
		{v: [limbs]uint32{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, a := range vectors {
		got := int256FromBytes(a.toBytes())
		require.Equal(t, a, got)
	}

	var oneBytes [32]byte
	oneBytes[31] = 1
	require.Equal(t, int256One, int256FromBytes(oneBytes))
}
