package ring

import (
	"github.com/zeebo/blake3"
)

// testRNG derives deterministic randomness from a blake3 XOF so that every
// test is reproducible from its seed literal.
type testRNG struct {
	xof *blake3.Digest
}

func newTestRNG(seed string) *testRNG {
	hasher := blake3.New()
	hasher.Write([]byte(seed))
	return &testRNG{xof: hasher.Digest()}
}

func (g *testRNG) read(buf []byte) {
	g.xof.Read(buf)
}

func (g *testRNG) byte() byte {
	var b [1]byte
	g.read(b[:])
	return b[0]
}

// uint16Below returns a uniform value in [0, bound) by 16-bit rejection
// sampling from the XOF.
func (g *testRNG) uint16Below(bound uint32) uint16 {
	mask := uint32(1)
	for mask < bound {
		mask <<= 1
	}
	mask--
	for {
		var b [2]byte
		g.read(b[:])
		v := (uint32(b[0]) | uint32(b[1])<<8) & mask
		if v < bound {
			return uint16(v)
		}
	}
}

// canonicalPoly returns a polynomial with uniform coefficients in [0, Q).
func (g *testRNG) canonicalPoly() *Poly {
	p := new(Poly)
	for i := 0; i < N; i++ {
		p.Coeffs[i] = int16(g.uint16Below(Q))
	}
	return p
}

// boundedPoly returns a polynomial with uniform coefficients in
// (-bound, bound).
func (g *testRNG) boundedPoly(bound int32) *Poly {
	p := new(Poly)
	for i := 0; i < N; i++ {
		p.Coeffs[i] = int16(int32(g.uint16Below(uint32(2*bound-1))) - (bound - 1))
	}
	return p
}

func absInt16(x int16) int32 {
	v := int32(x)
	if v < 0 {
		v = -v
	}
	return v
}

func (g *testRNG) seed() *[SeedBytes]byte {
	var s [SeedBytes]byte
	g.read(s[:])
	return &s
}

// absBound reports whether every coefficient of p is strictly below bound
// in absolute value.
func absBound(p *Poly, bound int32) bool {
	for i := 0; i < N; i++ {
		c := int32(p.Coeffs[i])
		if c < 0 {
			c = -c
		}
		if c >= bound {
			return false
		}
	}
	return true
}

// modQ maps x to its canonical representative in [0, Q).
func modQ(x int64) int16 {
	x %= Q
	if x < 0 {
		x += Q
	}
	return int16(x)
}

// negacyclicMul computes the schoolbook product of a and b in
// Z_q[X]/(X^256+1) with canonical coefficients, as an NTT-free reference.
func negacyclicMul(a, b *Poly) *Poly {
	var acc [N]int64
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			prod := int64(a.Coeffs[i]) * int64(b.Coeffs[j]) % Q
			if i+j < N {
				acc[i+j] += prod
			} else {
				acc[i+j-N] -= prod
			}
		}
	}
	r := new(Poly)
	for i := 0; i < N; i++ {
		r.Coeffs[i] = modQ(acc[i])
	}
	return r
}
