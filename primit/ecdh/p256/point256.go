package p256

// point256 is a point on y^2 = x^3 - 3x + b (mod p256) in Jacobian
// coordinates: (X,Y,Z) represents the affine point (X/Z^2, Y/Z^3). The
// identity element is (1, 1, 0).
type point256 struct {
	x, y, z int256
}

// generator is the NIST P-256 base point G.
var generator = point256{
	x: int256{v: [limbs]uint32{
		0xd898c296, 0xf4a13945, 0x2deb33a0, 0x77037d81,
		0x63a440f2, 0xf8bce6e5, 0xe12c4247, 0x6b17d1f2,
	}},
	y: int256{v: [limbs]uint32{
		0x37bf51f5, 0xcbb64068, 0x6b315ece, 0x2bce3357,
		0x7c0f9e16, 0x8ee7eb4a, 0xfe1a7f9b, 0x4fe342e2,
	}},
	z: int256One,
}

// curveB is the P-256 curve equation constant b.
var curveB = int256{v: [limbs]uint32{
	0x27d2604b, 0x3bce3c3e, 0xcc53b0f6, 0x651d06b0,
	0x769886bc, 0xb3ebbd55, 0xaa3a93e7, 0x5ac635d8,
}}

var infinity = point256{x: int256One, y: int256One, z: int256Zero}

// normalizedPoint is a point in affine coordinates.
type normalizedPoint struct {
	x, y int256
}

// normalize converts a Jacobian point to affine coordinates. p.z must be
// nonzero.
func (p point256) normalize() normalizedPoint {
	invZ := p.z.inverse()
	invZ2 := invZ.square()
	invZ3 := invZ2.mult(invZ)
	return normalizedPoint{
		x: p.x.mult(invZ2),
		y: p.y.mult(invZ3),
	}
}

// double computes p+p via the dbl-2009-l formulas. p.z must be nonzero.
func (p point256) double() point256 {
	delta := p.z.square()
	gamma := p.y.square()
	beta := p.x.mult(gamma)
	alpha := p.x.sub(delta).mult(p.x.add(delta))
	alpha = alpha.add(alpha).add(alpha)

	beta4 := beta.double().double()
	x := alpha.square().sub(beta4.double())
	z := p.y.add(p.z).square().sub(gamma).sub(delta)

	gammaSq8 := gamma.square().double().double().double()
	y := alpha.mult(beta4.sub(x)).sub(gammaSq8)

	return point256{x: x, y: y, z: z}
}

// add computes p+q via the add-2007-bl formulas. It is not complete: it
// does not special-case p == q or either operand being the identity.
func (p point256) add(q point256) point256 {
	z1z1 := p.z.square()
	z2z2 := q.z.square()
	u1 := p.x.mult(z2z2)
	u2 := q.x.mult(z1z1)
	s1 := p.y.mult(q.z).mult(z2z2)
	s2 := q.y.mult(p.z).mult(z1z1)
	h := u2.sub(u1)
	i := h.double().square()
	j := h.mult(i)
	r := s2.sub(s1).double()
	v := u1.mult(i)
	x := r.square().sub(j).sub(v.double())
	y := r.mult(v.sub(x)).sub(s1.mult(j).double())
	z := p.z.add(q.z).square().sub(z1z1).sub(z2z2).mult(h)

	return point256{x: x, y: y, z: z}
}

// multScalar computes n*p via MSB-to-LSB double-and-add. n's bits are
// scanned in the same 2^32-radix limb order as int256 storage, most
// significant limb first.
func (p point256) multScalar(n int256) point256 {
	ret := infinity
	for i := limbs - 1; i >= 0; i-- {
		for j := 31; j >= 0; j-- {
			bit := (n.v[i] >> uint(j)) & 1
			ret2 := ret.double()
			switch {
			case bit == 0:
				ret = ret2
			case ret2 == infinity:
				ret = p
			default:
				ret = ret2.add(p)
			}
		}
	}
	return ret
}

func (np normalizedPoint) toPoint() point256 {
	return point256{x: np.x, y: np.y, z: int256One}
}

// normalizedPointFromUncompressedBytes parses an SEC1 uncompressed point
// encoding (0x04 || X || Y, 65 bytes) and validates that both coordinates
// are below p256 and satisfy the curve equation y^2 + 3x == x^3 + b.
func normalizedPointFromUncompressedBytes(data [65]byte) (normalizedPoint, bool) {
	if data[0] != 0x04 {
		return normalizedPoint{}, false
	}

	var xb, yb [32]byte
	copy(xb[:], data[1:33])
	copy(yb[:], data[33:65])
	x := int256FromBytes(xb)
	y := int256FromBytes(yb)
	if x.notEqual(x.reduceOnceZero()) || y.notEqual(y.reduceOnceZero()) {
		return normalizedPoint{}, false
	}

	p := normalizedPoint{x: x, y: y}

	y2 := y.square()
	lhs := y2.add(x.double().add(x))

	x3 := x.square().mult(x)
	rhs := x3.add(curveB)

	if lhs.notEqual(rhs) {
		return normalizedPoint{}, false
	}

	return p, true
}

// toUncompressedBytes serializes np as 0x04 || X || Y (big-endian), 65
// bytes total.
func (np normalizedPoint) toUncompressedBytes() [65]byte {
	var b [65]byte
	b[0] = 0x04
	xb := np.x.toBytes()
	yb := np.y.toBytes()
	copy(b[1:33], xb[:])
	copy(b[33:65], yb[:])
	return b
}
