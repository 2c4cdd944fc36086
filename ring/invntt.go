package ring

// Inverse NTT
// ===========
//
// Gentleman-Sande decimation-in-time, operating in place on a polynomial in
// bitreversed order. The butterfly (a, b) -> (a + b, (b - a)*zeta) grows
// the "b minus a" side multiplicatively, so the reduction strategy differs
// from the forward transform:
//
//   - Layer 7 multiplies every coefficient by MontF on first read, folding
//     the 1/128 normalization and the Montgomery conversion into the
//     butterfly, and reduces; it accepts arbitrary int16 inputs and leaves
//     coefficients bounded by Q-1.
//   - Layer 6 defers reduction: bound 2Q-1.
//   - Layers 5 and 4 are merged: layer 5 defers (bound 4Q-1 on entry to
//     layer 4), layer 4 Barrett-reduces back to Q-1.
//   - Layers 3, 2 and 1 are merged and all defer: bound 8Q-1 = InvNTTBound.
//
// Each layer walks the same zeta tables as the forward transform with the
// intra-layer index reversed.

// invNTTLayer7InvertButterfly inverts, normalizes and reduces the four
// coefficients at start.
func invNTTLayer7InvertButterfly(r *[N]int16, zetaIndex, start int) {
	zeta := zetasLayer7[zetaIndex]
	ci0 := start
	ci1 := ci0 + 1
	ci2 := ci0 + 2
	ci3 := ci0 + 3

	// Multiplying by MontF here means any int16 value is accepted and all
	// later layers start from coefficients bounded by Q-1.
	c0 := FqMul(r[ci0], MontF)
	c1 := FqMul(r[ci1], MontF)
	c2 := FqMul(r[ci2], MontF)
	c3 := FqMul(r[ci3], MontF)

	r[ci0] = BarrettReduce(c0 + c2)
	r[ci2] = FqMul(c2-c0, zeta)

	r[ci1] = BarrettReduce(c1 + c3)
	r[ci3] = FqMul(c3-c1, zeta)
}

// invNTTLayer7Invert performs layer 7, leaving all coefficients bounded by
// Q-1.
func invNTTLayer7Invert(r *[N]int16) {
	for i := 0; i < 64; i++ {
		invNTTLayer7InvertButterfly(r, 63-i, i*4)
	}
}

// invNTTLayer6 performs layer 6 with deferred reduction, raising the bound
// from Q-1 to 2Q-1.
func invNTTLayer6(r *[N]int16) {
	for i := 0; i < 32; i++ {
		zeta := zetasLayer6[31-i]
		ci0 := i * 8

		c0 := r[ci0]
		c1 := r[ci0+1]
		c2 := r[ci0+2]
		c3 := r[ci0+3]
		c4 := r[ci0+4]
		c5 := r[ci0+5]
		c6 := r[ci0+6]
		c7 := r[ci0+7]

		r[ci0] = c0 + c4
		r[ci0+4] = FqMul(c4-c0, zeta)

		r[ci0+1] = c1 + c5
		r[ci0+5] = FqMul(c5-c1, zeta)

		r[ci0+2] = c2 + c6
		r[ci0+6] = FqMul(c6-c2, zeta)

		r[ci0+3] = c3 + c7
		r[ci0+7] = FqMul(c7-c3, zeta)
	}
}

// invNTTLayer54Butterfly performs layers 5 and 4 on the 32-coefficient
// sub-tree at start. Layer 5 defers reduction; layer 4 Barrett-reduces so
// the sub-tree leaves with coefficients bounded by Q-1.
func invNTTLayer54Butterfly(r *[N]int16, zetaIndex, start int) {
	l4zeta := zetasLayer4[zetaIndex]
	l5zeta1 := zetasLayer5Even[zetaIndex]
	l5zeta2 := zetasLayer5Odd[zetaIndex]

	for j := 0; j < 8; j++ {
		ci0 := start + j
		ci8 := ci0 + 8
		ci16 := ci0 + 16
		ci24 := ci0 + 24

		// Layer 5
		{
			c0 := r[ci0]
			c8 := r[ci8]
			c16 := r[ci16]
			c24 := r[ci24]

			r[ci0] = c0 + c8
			r[ci8] = FqMul(c8-c0, l5zeta2)

			r[ci16] = c16 + c24
			r[ci24] = FqMul(c24-c16, l5zeta1)
		}

		// Layer 4
		{
			c0 := r[ci0]
			c8 := r[ci8]
			c16 := r[ci16]
			c24 := r[ci24]

			r[ci0] = BarrettReduce(c0 + c16)
			r[ci16] = FqMul(c16-c0, l4zeta)

			r[ci8] = BarrettReduce(c8 + c24)
			r[ci24] = FqMul(c24-c8, l4zeta)
		}
	}
}

func invNTTLayer54(r *[N]int16) {
	invNTTLayer54Butterfly(r, 7, 0)
	invNTTLayer54Butterfly(r, 6, 32)
	invNTTLayer54Butterfly(r, 5, 64)
	invNTTLayer54Butterfly(r, 4, 96)
	invNTTLayer54Butterfly(r, 3, 128)
	invNTTLayer54Butterfly(r, 2, 160)
	invNTTLayer54Butterfly(r, 1, 192)
	invNTTLayer54Butterfly(r, 0, 224)
}

// invNTTLayer321 performs layers 3, 2 and 1 with fully deferred reduction,
// raising the bound from Q-1 to 8Q-1.
func invNTTLayer321(r *[N]int16) {
	for j := 0; j < 32; j++ {
		ci0 := j
		ci32 := j + 32
		ci64 := j + 64
		ci96 := j + 96
		ci128 := j + 128
		ci160 := j + 160
		ci192 := j + 192
		ci224 := j + 224

		// Layer 3
		{
			c0 := r[ci0]
			c32 := r[ci32]
			c64 := r[ci64]
			c96 := r[ci96]
			c128 := r[ci128]
			c160 := r[ci160]
			c192 := r[ci192]
			c224 := r[ci224]

			r[ci0] = c0 + c32
			r[ci32] = FqMul(c32-c0, zetaL3d)

			r[ci64] = c64 + c96
			r[ci96] = FqMul(c96-c64, zetaL3c)

			r[ci128] = c128 + c160
			r[ci160] = FqMul(c160-c128, zetaL3b)

			r[ci192] = c192 + c224
			r[ci224] = FqMul(c224-c192, zetaL3a)
		}

		// Layer 2
		{
			c0 := r[ci0]
			c32 := r[ci32]
			c64 := r[ci64]
			c96 := r[ci96]
			c128 := r[ci128]
			c160 := r[ci160]
			c192 := r[ci192]
			c224 := r[ci224]

			r[ci0] = c0 + c64
			r[ci64] = FqMul(c64-c0, zetaL2Odd)

			r[ci32] = c32 + c96
			r[ci96] = FqMul(c96-c32, zetaL2Odd)

			r[ci128] = c128 + c192
			r[ci192] = FqMul(c192-c128, zetaL2Even)

			r[ci160] = c160 + c224
			r[ci224] = FqMul(c224-c160, zetaL2Even)
		}

		// Layer 1
		{
			c0 := r[ci0]
			c32 := r[ci32]
			c64 := r[ci64]
			c96 := r[ci96]
			c128 := r[ci128]
			c160 := r[ci160]
			c192 := r[ci192]
			c224 := r[ci224]

			r[ci0] = c0 + c128
			r[ci128] = FqMul(c128-c0, zetaL1)

			r[ci32] = c32 + c160
			r[ci160] = FqMul(c160-c32, zetaL1)

			r[ci64] = c64 + c192
			r[ci192] = FqMul(c192-c64, zetaL1)

			r[ci96] = c96 + c224
			r[ci224] = FqMul(c224-c96, zetaL1)
		}
	}
}

func invNTTStandard(r *[N]int16) {
	invNTTLayer7Invert(r)
	invNTTLayer6(r)
	invNTTLayer54(r)
	invNTTLayer321(r)
}

// InvNTTToMont computes the inverse number-theoretic transform of p in
// place, folding in the multiplication by MontF that undoes the transform
// normalization.
//
// The input must be in bitreversed order and may hold arbitrary int16
// coefficients. The output is in normal order with coefficients bounded by
// the transformer's declared backward bound, at most InvNTTBound.
func (p *Poly) InvNTTToMont() {
	transformer.Backward(p)
}
