// Package p256 implements NIST P-256 (secp256r1) Diffie-Hellman key
// exchange over a custom fixed-width field and Jacobian curve arithmetic,
// rather than delegating to crypto/elliptic.
package p256

import "github.com/go-primit/primit/primit/endian"

const limbs = 8

// int256 represents a field element modulo p256 as eight 32-bit limbs in
// 2^32-radix, least-significant limb first: value = v[0] + 2^32 v[1] + ...
// A well-formed int256 is always < p256.
type int256 struct {
	v [limbs]uint32
}

// p256Prime is P = 2^256 - 2^224 + 2^192 + 2^96 - 1.
var p256Prime = int256{v: [limbs]uint32{
	0xffffffff, 0xffffffff, 0xffffffff, 0x00000000,
	0x00000000, 0x00000000, 0x00000001, 0xffffffff,
}}

var int256Zero = int256{}

var int256One = int256{v: [limbs]uint32{1, 0, 0, 0, 0, 0, 0, 0}}

// notEqual reports whether a and b differ.
func (a int256) notEqual(b int256) bool {
	return a.v != b.v
}

// chooseInt256 returns a if flag is false, b if flag is true.
func chooseInt256(flag bool, a, b int256) int256 {
	if !flag {
		return a
	}
	return b
}

// addNoReduce returns (a+b mod 2^256, carry) where carry is 1 iff a+b
// overflowed 256 bits, i.e. a+b == value + 2^256*carry.
func (a int256) addNoReduce(b int256) (int256, uint32) {
	var v int256
	var carry uint64
	for i := 0; i < limbs; i++ {
		add := uint64(a.v[i]) + uint64(b.v[i]) + carry
		v.v[i] = uint32(add)
		carry = add >> 32
	}
	return v, uint32(carry)
}

// subNoReduce returns (a-b mod 2^256, borrow) where borrow is 1 iff a < b,
// i.e. a-b == value - 2^256*borrow.
func (a int256) subNoReduce(b int256) (int256, uint32) {
	var v int256
	var borrow uint64
	for i := 0; i < limbs; i++ {
		sub := uint64(a.v[i]) - uint64(b.v[i]) - borrow
		borrow = (sub >> 63) & 1
		v.v[i] = uint32(sub)
	}
	return v, uint32(borrow)
}

// reduceOnce returns (self + carry*2^256) mod p256. Its precondition is
// self + carry*2^256 < 2*p256.
func (a int256) reduceOnce(carry uint32) int256 {
	v, borrow := a.subNoReduce(p256Prime)
	chooseNew := carry ^ borrow
	return chooseInt256(chooseNew != 0, v, a)
}

func (a int256) reduceOnceZero() int256 {
	return a.reduceOnce(0)
}

func (a int256) add(b int256) int256 {
	v, carry := a.addNoReduce(b)
	return v.reduceOnce(carry)
}

func (a int256) double() int256 {
	return a.add(a)
}

func (a int256) sub(b int256) int256 {
	v, borrow := a.subNoReduce(b)
	v2, _ := v.addNoReduce(p256Prime)
	return chooseInt256(borrow != 0, v, v2)
}

// mult multiplies two field elements and reduces the 512-bit product
// modulo p256 via the Solinas-style reduction specific to the P-256 prime
// shape (2^256 - 2^224 + 2^192 + 2^96 - 1).
func (a int256) mult(b int256) int256 {
	var w [limbs * 2]uint64
	for i := 0; i < limbs; i++ {
		for j := 0; j < limbs; j++ {
			ij := i + j
			vij := uint64(a.v[i]) * uint64(b.v[j])
			vijLow := vij & 0xffffffff
			vijHigh := vij >> 32
			wij := w[ij] + vijLow
			wijLow := wij & 0xffffffff
			wijHigh := vijHigh + (wij >> 32)
			w[ij] = wijLow
			w[ij+1] += wijHigh
		}
	}

	var vv [limbs * 2]uint32
	var carry uint64
	for i := 0; i < limbs*2; i++ {
		sum := w[i] + carry
		vv[i] = uint32(sum)
		carry = sum >> 32
	}

	var buf int256
	copy(buf.v[:limbs], vv[:limbs])
	t := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[3:8], vv[11:16])
	s1 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[3:7], vv[12:16])
	s2 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[0:3], vv[8:11])
	buf.v[6] = vv[14]
	buf.v[7] = vv[15]
	s3 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[0:3], vv[9:12])
	copy(buf.v[3:6], vv[13:16])
	buf.v[6] = vv[13]
	buf.v[7] = vv[8]
	s4 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[0:3], vv[11:14])
	buf.v[6] = vv[8]
	buf.v[7] = vv[10]
	d1 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[0:4], vv[12:16])
	buf.v[6] = vv[9]
	buf.v[7] = vv[11]
	d2 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[0:3], vv[13:16])
	copy(buf.v[3:6], vv[8:11])
	buf.v[7] = vv[12]
	d3 := buf.reduceOnceZero()

	buf = int256Zero
	copy(buf.v[3:6], vv[9:12])
	buf.v[7] = vv[13]
	buf.v[0] = vv[14]
	buf.v[1] = vv[15]
	d4 := buf.reduceOnceZero()

	r := t.add(s1.double()).add(s2.double()).add(s3).add(s4)
	return r.sub(d1.add(d2).add(d3).add(d4))
}

func (a int256) square() int256 {
	return a.mult(a)
}

// inverse returns a^-1 = a^(p256-2) via an addition-chain exponentiation,
// built from repeated applications of a^(2^n-1) -> a^(2^(n+1)-1).
func (a int256) inverse() int256 {
	squareN := func(x int256, n int) int256 {
		y := x
		for i := 0; i < n; i++ {
			y = y.square()
		}
		return y
	}

	// zN computes z^(2^n+1); if z == a^(2^n-1), returns a^(2^(2n)-1).
	zN := func(z int256, n int) int256 {
		y := squareN(z, n)
		return y.mult(z)
	}

	// z1 advances z_n = a^(2^n-1) to z_(n+1) = a^(2^(n+1)-1).
	z1 := func(z, base int256) int256 {
		return z.square().mult(base)
	}

	z2 := zN(a, 1)
	z4 := zN(z2, 2)
	z8 := zN(z4, 4)
	z16 := zN(z8, 8)
	z32 := zN(z16, 16)

	z5 := z1(z4, a)

	z10 := zN(z5, 5)
	z11 := z1(z10, a)

	z22 := zN(z11, 11)
	z23 := z1(z22, a)

	z46 := zN(z23, 23)
	z47 := z1(z46, a)

	z94 := zN(z47, 47)
	z95 := z1(z94, a)

	y96x2 := z95.square()
	z96 := y96x2.mult(a)

	z192 := zN(z96, 96)

	y256x224 := squareN(z32, 224)

	return y256x224.mult(z192).mult(y96x2)
}

// toBytes serializes a as 32 big-endian bytes.
func (a int256) toBytes() [32]byte {
	var r [32]byte
	endian.LittleEndianToBytes(r[:], a.v[:])
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r
}

// int256FromBytes parses 32 big-endian bytes into an int256. It does not
// reduce or validate that the value is < p256; callers that need a
// canonical field element must check notEqual against the reduced form.
func int256FromBytes(b [32]byte) int256 {
	var rev [32]byte
	for i := range b {
		rev[i] = b[len(b)-1-i]
	}
	var r int256
	endian.LittleEndianFromBytes(r.v[:], rev[:])
	return r
}
