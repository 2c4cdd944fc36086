package ring

// Forward NTT
// ===========
//
// Cooley-Tukey decimation-in-time with seven butterfly layers, operating in
// place. Layers 1-3 are merged in nttLayer123, layers 4 and 5 in
// nttLayer45; layers 6 and 7 stand alone. The butterfly (a, b) ->
// (a + zeta*b, a - zeta*b) Montgomery-reduces only the product, so each
// layer grows the coefficient bound additively by Q:
//
//	input <= Q-1, after layer 3 <= 4Q-1, after layer 5 <= 6Q-1,
//	after layer 6 <= 7Q-1, after layer 7 <= 8Q-1 = NTTBound.
//
// Inner loops touch at most 8 coefficient pairs per iteration, which keeps
// them within one 128-bit vector register on targets whose compiler
// auto-vectorizes them.

// nttLayer123 performs layers 1, 2 and 3. Inputs must be bounded by Q-1,
// outputs are bounded by 4Q-1.
func nttLayer123(r *[N]int16) {
	for j := 0; j < 32; j++ {
		ci1 := j
		ci2 := j + 32
		ci3 := j + 64
		ci4 := j + 96
		ci5 := j + 128
		ci6 := j + 160
		ci7 := j + 192
		ci8 := j + 224

		var t1, t2 int16

		// Layer 1
		t1 = FqMul(r[ci5], zetaL1)
		t2 = r[ci1]
		r[ci5] = t2 - t1
		r[ci1] = t2 + t1

		t1 = FqMul(r[ci7], zetaL1)
		t2 = r[ci3]
		r[ci7] = t2 - t1
		r[ci3] = t2 + t1

		t1 = FqMul(r[ci6], zetaL1)
		t2 = r[ci2]
		r[ci6] = t2 - t1
		r[ci2] = t2 + t1

		t1 = FqMul(r[ci8], zetaL1)
		t2 = r[ci4]
		r[ci8] = t2 - t1
		r[ci4] = t2 + t1

		// Layer 2
		t1 = FqMul(r[ci3], zetaL2Even)
		t2 = r[ci1]
		r[ci3] = t2 - t1
		r[ci1] = t2 + t1

		t1 = FqMul(r[ci7], zetaL2Odd)
		t2 = r[ci5]
		r[ci7] = t2 - t1
		r[ci5] = t2 + t1

		t1 = FqMul(r[ci4], zetaL2Even)
		t2 = r[ci2]
		r[ci4] = t2 - t1
		r[ci2] = t2 + t1

		t1 = FqMul(r[ci8], zetaL2Odd)
		t2 = r[ci6]
		r[ci8] = t2 - t1
		r[ci6] = t2 + t1

		// Layer 3
		t1 = FqMul(r[ci2], zetaL3a)
		t2 = r[ci1]
		r[ci2] = t2 - t1
		r[ci1] = t2 + t1

		t1 = FqMul(r[ci4], zetaL3b)
		t2 = r[ci3]
		r[ci4] = t2 - t1
		r[ci3] = t2 + t1

		t1 = FqMul(r[ci6], zetaL3c)
		t2 = r[ci5]
		r[ci6] = t2 - t1
		r[ci5] = t2 + t1

		t1 = FqMul(r[ci8], zetaL3d)
		t2 = r[ci7]
		r[ci8] = t2 - t1
		r[ci7] = t2 + t1
	}
}

// nttLayer45Butterfly performs layers 4 and 5 on the 32-coefficient
// sub-tree at start, raising its bound from 4Q-1 to 6Q-1.
func nttLayer45Butterfly(r *[N]int16, subTree, start int) {
	z1 := zetasLayer4[subTree]
	z2 := zetasLayer5Even[subTree]
	z3 := zetasLayer5Odd[subTree]

	for j := 0; j < 8; j++ {
		ci1 := start + j
		ci2 := ci1 + 8
		ci3 := ci1 + 16
		ci4 := ci1 + 24

		var t1, t2 int16

		// Layer 4
		t1 = FqMul(r[ci3], z1)
		t2 = r[ci1]
		r[ci3] = t2 - t1
		r[ci1] = t2 + t1

		t1 = FqMul(r[ci4], z1)
		t2 = r[ci2]
		r[ci4] = t2 - t1
		r[ci2] = t2 + t1

		// Layer 5
		t1 = FqMul(r[ci2], z2)
		t2 = r[ci1]
		r[ci2] = t2 - t1
		r[ci1] = t2 + t1

		t1 = FqMul(r[ci4], z3)
		t2 = r[ci3]
		r[ci4] = t2 - t1
		r[ci3] = t2 + t1
	}
}

// nttLayer45 performs layers 4 and 5. The eight sub-trees are independent;
// the unrolled calls let the compiler partially apply the twiddles.
func nttLayer45(r *[N]int16) {
	nttLayer45Butterfly(r, 0, 0)
	nttLayer45Butterfly(r, 1, 32)
	nttLayer45Butterfly(r, 2, 64)
	nttLayer45Butterfly(r, 3, 96)
	nttLayer45Butterfly(r, 4, 128)
	nttLayer45Butterfly(r, 5, 160)
	nttLayer45Butterfly(r, 6, 192)
	nttLayer45Butterfly(r, 7, 224)
}

// nttLayer6 performs layer 6 on 32 groups of 8 coefficients, raising the
// bound from 6Q-1 to 7Q-1.
func nttLayer6(r *[N]int16) {
	for i := 0; i < 32; i++ {
		zeta := zetasLayer6[i]
		start := i * 8
		for j := 0; j < 4; j++ {
			ci1 := start + j
			ci2 := ci1 + 4
			t := FqMul(r[ci2], zeta)
			t2 := r[ci1]
			r[ci2] = t2 - t
			r[ci1] = t2 + t
		}
	}
}

// nttLayer7 performs layer 7 on 64 groups of 4 coefficients, raising the
// bound from 7Q-1 to 8Q-1. Coefficients are read and written in order of
// increasing memory location.
func nttLayer7(r *[N]int16) {
	for i := 0; i < 64; i++ {
		zeta := zetasLayer7[i]
		ci0 := i * 4
		ci1 := ci0 + 1
		ci2 := ci0 + 2
		ci3 := ci0 + 3

		c0 := r[ci0]
		c1 := r[ci1]
		c2 := r[ci2]
		c3 := r[ci3]

		zc2 := FqMul(c2, zeta)
		zc3 := FqMul(c3, zeta)

		r[ci0] = c0 + zc2
		r[ci1] = c1 + zc3
		r[ci2] = c0 - zc2
		r[ci3] = c1 - zc3
	}
}

func nttStandard(r *[N]int16) {
	nttLayer123(r)
	nttLayer45(r)
	nttLayer6(r)
	nttLayer7(r)
}

// NTT computes the forward number-theoretic transform of p in place.
//
// The input must be in normal order with coefficients bounded by Q in
// absolute value. The output is in bitreversed order with coefficients
// bounded by the transformer's declared forward bound, at most NTTBound.
func (p *Poly) NTT() {
	transformer.Forward(p)
}
