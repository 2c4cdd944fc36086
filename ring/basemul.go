package ring

// After the forward NTT, R_q factors as the product of the 128 quadratic
// rings Z_q[X]/(X^2 - zeta_i), zeta_i ranging over the odd powers of the
// 256-th root of unity in bitreversed order. Multiplying two degree-1
// polynomials (a0 + a1 X)(b0 + b1 X) mod (X^2 - zeta) gives
//
//	r0 = a0 b0 + zeta a1 b1
//	r1 = a0 b1 + a1 b0
//
// The mulcache stores zeta*b1 per factor so that zeta never has to be
// reloaded during a base multiplication.

// basemulCached multiplies one quadratic factor. a must be bounded by 4095
// in absolute value; b and bCached are arbitrary. The results carry the
// 2^-16 factor of the Montgomery reduction and are bounded by 2Q-1 in
// absolute value.
func basemulCached(r, a, b []int16, bCached int16) {
	t0 := int32(a[1]) * int32(bCached)
	t0 += int32(a[0]) * int32(b[0])
	t1 := int32(a[0]) * int32(b[1])
	t1 += int32(a[1]) * int32(b[0])

	// |t0|, |t1| <= 2*4095*2^15, so each reduction returns a value bounded
	// by 4095 + Q/2 < 2Q in absolute value.
	r[0] = MontgomeryReduce(t0)
	r[1] = MontgomeryReduce(t1)
}

// BasemulMontgomeryCached sets p to the product of a and b in the NTT
// domain, using the mulcache previously computed from b.
//
// The coefficients of a must be bounded by 4095 in absolute value; b and
// the cache are arbitrary. Output coefficients are bounded by 2Q-1 in
// absolute value and carry the 2^-16 Montgomery factor.
func (p *Poly) BasemulMontgomeryCached(a, b *Poly, cache *MulCache) {
	for i := 0; i < N/4; i++ {
		basemulCached(p.Coeffs[4*i:4*i+2], a.Coeffs[4*i:4*i+2], b.Coeffs[4*i:4*i+2], cache.Coeffs[2*i])
		basemulCached(p.Coeffs[4*i+2:4*i+4], a.Coeffs[4*i+2:4*i+4], b.Coeffs[4*i+2:4*i+4], cache.Coeffs[2*i+1])
	}
}

// Compute fills c with the twiddle-weighted odd coefficients of a, which
// must be in the NTT domain. Output entries are bounded by Q in absolute
// value.
func (c *MulCache) Compute(a *Poly) {
	for i := 0; i < N/4; i++ {
		c.Coeffs[2*i] = FqMul(a.Coeffs[4*i+1], zetasLayer7[i])
		c.Coeffs[2*i+1] = FqMul(a.Coeffs[4*i+3], -zetasLayer7[i])
	}
}
