package ring

import (
	"fmt"
)

// ErrNonCanonical is returned by FromBytesCanonical when a decoded
// coefficient is not below Q.
var ErrNonCanonical = fmt.Errorf("ring: coefficient out of canonical range [0, %d)", Q)

// ToBytes packs the 256 coefficients of p into out, three bytes per two
// coefficients, little-endian:
//
//	out[3i+0] = t0[7:0]
//	out[3i+1] = t0[11:8] | t1[3:0]<<4
//	out[3i+2] = t1[11:4]
//
// The coefficients must be canonical in [0, Q); out must have length
// PolyBytes.
func (p *Poly) ToBytes(out []byte) {
	if len(out) != PolyBytes {
		panic("ring: invalid serialization buffer length")
	}
	for i := 0; i < N/2; i++ {
		t0 := uint16(p.Coeffs[2*i])
		t1 := uint16(p.Coeffs[2*i+1])
		out[3*i+0] = byte(t0)
		out[3*i+1] = byte(t0>>8) | byte(t1<<4)
		out[3*i+2] = byte(t1 >> 4)
	}
}

// FromBytes is the inverse of ToBytes. The decoded coefficients lie in
// [0, 4096) and are NOT necessarily canonical: values in [Q, 4096) pass
// through unreduced, and reducing or tolerating them is the caller's
// responsibility. Use FromBytesCanonical when the input must be a valid
// FIPS 203 encoding.
func (p *Poly) FromBytes(in []byte) {
	if len(in) != PolyBytes {
		panic("ring: invalid serialization buffer length")
	}
	for i := 0; i < N/2; i++ {
		t0 := in[3*i+0]
		t1 := in[3*i+1]
		t2 := in[3*i+2]
		p.Coeffs[2*i+0] = int16(t0) | int16(t1&0x0F)<<8
		p.Coeffs[2*i+1] = int16(t1>>4) | int16(t2)<<4
	}
}

// FromBytesCanonical decodes like FromBytes but additionally performs the
// FIPS 203 modulus check, rejecting encodings with any coefficient at or
// above Q. On error the polynomial contents are unspecified.
//
// The check runs over public data (serialized polynomials are public), so
// it need not be constant time.
func (p *Poly) FromBytesCanonical(in []byte) error {
	p.FromBytes(in)
	for i := 0; i < N; i++ {
		if uint16(p.Coeffs[i]) >= Q {
			return fmt.Errorf("%w (index %d)", ErrNonCanonical, i)
		}
	}
	return nil
}
