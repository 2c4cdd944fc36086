// Package ring implements arithmetic in the ring R_q = Z_q[X]/(X^256+1)
// with q = 3329, the polynomial core of ML-KEM (FIPS 203).
//
// The package provides the forward and inverse number-theoretic transforms,
// base multiplication in the NTT domain, Montgomery and Barrett modular
// reduction, coefficient compression and decompression, byte serialization,
// message encoding and centred binomial noise sampling.
//
// Coefficients are signed 16-bit integers. Every operation states the bound
// its inputs must satisfy and the bound its outputs are guaranteed to
// satisfy; these bounds are correctness invariants, not hints, and the layer
// merging of the transforms depends on them. All operations on potentially
// secret data run in time independent of coefficient values.
package ring

// Ring parameters. N and Q are fixed; the package supports no other
// dimension or modulus.
const (
	// N is the ring dimension.
	N = 256

	// Q is the modulus.
	Q = 3329

	// HalfQ is the representative of 1/2 in Z_q, used by the message
	// codec.
	HalfQ = (Q + 1) / 2

	// QInv is Q^-1 mod 2^16, the constant of the Montgomery reduction.
	QInv = 62209

	// MontF = 2^32/128 mod Q. Multiplying by MontF under Montgomery
	// reduction applies both the 1/128 normalization of the inverse NTT
	// and the conversion to Montgomery form in a single step.
	MontF = 1441
)

// Coefficient bounds of the layer-merged transforms, in absolute value.
const (
	// NTTBound bounds the coefficients of a polynomial returned by the
	// forward NTT.
	NTTBound = 8*Q - 1

	// InvNTTBound bounds the coefficients of a polynomial returned by the
	// inverse NTT.
	InvNTTBound = 8*Q - 1
)

// Sizes of the byte-level formats.
const (
	// PolyBytes is the size of the 12-bit serialization of a polynomial.
	PolyBytes = 384

	// MsgBytes is the size of an encoded 256-bit message.
	MsgBytes = 32

	// SeedBytes is the size of the seed consumed by the PRF.
	SeedBytes = 32
)
