package ring

// Poly is a polynomial of R_q, stored as its 256 signed 16-bit
// coefficients. The zero value is the zero polynomial.
//
// The bound satisfied by the coefficients depends on where the polynomial
// sits in the computation and is part of every operation's contract. The
// caller holds exclusive ownership during any mutating call; the receiver
// of a writing method must not alias any other operand.
type Poly struct {
	Coeffs [N]int16
}

// MulCache holds the precomputed twiddle-weighted odd coefficients of a
// polynomial in the NTT domain, consumed by BasemulMontgomeryCached.
// Entry 2i is b[4i+1]*zeta_i and entry 2i+1 is b[4i+3]*(-zeta_i), both in
// Montgomery form and bounded by Q in absolute value.
type MulCache struct {
	Coeffs [N / 2]int16
}

// CopyNew returns a copy of p.
func (p *Poly) CopyNew() *Poly {
	q := *p
	return &q
}

// Equal reports whether p and other have identical coefficients. Equality
// is strict: congruent but distinct representatives compare unequal.
func (p *Poly) Equal(other *Poly) bool {
	return p.Coeffs == other.Coeffs
}

// Add adds b to p coefficient-wise, without reduction. Keeping the sums
// inside int16 is the caller's responsibility.
func (p *Poly) Add(b *Poly) {
	for i := 0; i < N; i++ {
		p.Coeffs[i] += b.Coeffs[i]
	}
}

// Sub subtracts b from p coefficient-wise, without reduction. Keeping the
// differences inside int16 is the caller's responsibility.
func (p *Poly) Sub(b *Poly) {
	for i := 0; i < N; i++ {
		p.Coeffs[i] -= b.Coeffs[i]
	}
}

// ToMont multiplies every coefficient by 2^16 mod Q, converting the
// polynomial to Montgomery form. Output coefficients are bounded by Q in
// absolute value.
func (p *Poly) ToMont() {
	// 1353 = 2^32 mod Q, so the 2^-16 of the reduction leaves 2^16.
	const f = 1353
	for i := 0; i < N; i++ {
		p.Coeffs[i] = FqMul(p.Coeffs[i], f)
	}
}

// Reduce brings every coefficient to its canonical representative in
// [0, Q).
func (p *Poly) Reduce() {
	for i := 0; i < N; i++ {
		t := BarrettReduce(p.Coeffs[i])
		p.Coeffs[i] = int16(SignedToUnsignedQ(t))
	}
}
