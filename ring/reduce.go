package ring

//============================
//=== MONTGOMERY REDUCTION ===
//============================

// MontgomeryReduce returns a representative r of a*2^-16 mod Q with
// -Q < r < Q. It requires |a| < Q*2^15.
func MontgomeryReduce(a int32) int16 {
	t := int16(uint16(a) * QInv)
	return int16((a - int32(t)*Q) >> 16)
}

// FqMul returns a representative of a*b*2^-16 mod Q in (-Q, Q).
// It requires |a*b| < Q*2^15, which holds in particular whenever one
// operand is bounded by Q in absolute value.
func FqMul(a, b int16) int16 {
	return MontgomeryReduce(int32(a) * int32(b))
}

//==========================
//=== BARRETT REDUCTION  ===
//==========================

// BarrettReduce returns the representative r of a mod Q closest to zero,
// with -Q/2 < r <= Q/2. It accepts any int16 input.
func BarrettReduce(a int16) int16 {
	// 20159 = round(2^26/Q)
	const v = ((1 << 26) + Q/2) / Q
	t := int16((v*int32(a) + (1 << 25)) >> 26)
	return a - t*Q
}

// SignedToUnsignedQ maps a representative a in (-Q, Q) to its canonical
// unsigned representative in [0, Q) by a branchless conditional addition
// of Q.
func SignedToUnsignedQ(a int16) uint16 {
	return uint16(a + ((a >> 15) & Q))
}
