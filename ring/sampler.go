package ring

import (
	"golang.org/x/crypto/sha3"
)

// PRF is the pseudorandom function consumed by noise sampling: a pure
// function of a 32-byte seed and a one-byte nonce yielding an
// arbitrary-length byte stream. ML-KEM instantiates it with
// SHAKE-256(seed || nonce); ShakePRF provides that instantiation.
// Implementations must be deterministic and infallible.
type PRF interface {
	// Stream fills out with the stream derived from seed and nonce.
	Stream(out []byte, seed *[SeedBytes]byte, nonce uint8)
}

// PRFX4 is an optional batched extension of PRF producing four streams
// from four nonces in one call, the natural interface for 4-way
// vectorized Keccak backends.
type PRFX4 interface {
	// StreamX4 fills each outI with the stream of (seed, nonceI).
	StreamX4(out0, out1, out2, out3 []byte, seed *[SeedBytes]byte, n0, n1, n2, n3 uint8)
}

// ShakePRF is the SHAKE-256 instantiation of PRF.
type ShakePRF struct{}

// Stream fills out with SHAKE-256(seed || nonce).
func (ShakePRF) Stream(out []byte, seed *[SeedBytes]byte, nonce uint8) {
	h := sha3.NewShake256()
	h.Write(seed[:])
	h.Write([]byte{nonce})
	h.Read(out)
}

// NoiseSampler draws centred binomial noise polynomials from a PRF. The
// batched methods use the PRF's 4-way interface when it provides one and
// fall back to four scalar calls otherwise.
//
// A NoiseSampler keeps no state between calls; it may be shared across
// goroutines as long as the underlying PRF is stateless, which ShakePRF
// is. Its stream buffers are fixed-size arrays handed to the PRF through
// an interface call, so the compiler may place them on the heap, and
// ShakePRF creates a fresh SHAKE state for every stream.
type NoiseSampler struct {
	prf PRF
	x4  PRFX4
}

// NewNoiseSampler returns a sampler drawing from prf.
func NewNoiseSampler(prf PRF) *NoiseSampler {
	s := &NoiseSampler{prf: prf}
	if x4, ok := prf.(PRFX4); ok {
		s.x4 = x4
	}
	return s
}

func (s *NoiseSampler) streamX4(out0, out1, out2, out3 []byte, seed *[SeedBytes]byte, n0, n1, n2, n3 uint8) {
	if s.x4 != nil {
		s.x4.StreamX4(out0, out1, out2, out3, seed, n0, n1, n2, n3)
		return
	}
	s.prf.Stream(out0, seed, n0)
	s.prf.Stream(out1, seed, n1)
	s.prf.Stream(out2, seed, n2)
	s.prf.Stream(out3, seed, n3)
}

// GetNoiseEta1 samples one CBD_eta1 polynomial from (seed, nonce). eta1
// must be 2 or 3. Output coefficients lie in [-eta1, eta1].
func (s *NoiseSampler) GetNoiseEta1(p *Poly, seed *[SeedBytes]byte, nonce uint8, eta1 int) {
	var buf [3 * N / 4]byte
	stream := buf[:eta1*N/4]
	s.prf.Stream(stream, seed, nonce)
	p.FromCBD(stream, eta1)
}

// GetNoiseEta2 samples one CBD_2 polynomial from (seed, nonce).
func (s *NoiseSampler) GetNoiseEta2(p *Poly, seed *[SeedBytes]byte, nonce uint8) {
	var buf [2 * N / 4]byte
	s.prf.Stream(buf[:], seed, nonce)
	p.FromCBD(buf[:], 2)
}

// GetNoiseEta1X4 samples four CBD_eta1 polynomials from four nonces in one
// batched PRF pass.
func (s *NoiseSampler) GetNoiseEta1X4(r0, r1, r2, r3 *Poly, seed *[SeedBytes]byte, n0, n1, n2, n3 uint8, eta1 int) {
	var buf [4][3 * N / 4]byte
	l := eta1 * N / 4
	s.streamX4(buf[0][:l], buf[1][:l], buf[2][:l], buf[3][:l], seed, n0, n1, n2, n3)
	r0.FromCBD(buf[0][:l], eta1)
	r1.FromCBD(buf[1][:l], eta1)
	r2.FromCBD(buf[2][:l], eta1)
	r3.FromCBD(buf[3][:l], eta1)
}

// GetNoiseEta1122X4 samples two CBD_eta1 polynomials (r0, r1) and two
// CBD_2 polynomials (r2, r3) from four nonces. When eta1 equals 2 the four
// streams share one batched PRF pass; otherwise the two stream lengths
// differ and each polynomial gets its own scalar call.
func (s *NoiseSampler) GetNoiseEta1122X4(r0, r1, r2, r3 *Poly, seed *[SeedBytes]byte, n0, n1, n2, n3 uint8, eta1 int) {
	const eta2 = 2
	if eta1 == eta2 {
		s.GetNoiseEta1X4(r0, r1, r2, r3, seed, n0, n1, n2, n3, eta1)
		return
	}
	var buf1 [2][3 * N / 4]byte
	var buf2 [2][eta2 * N / 4]byte
	l1 := eta1 * N / 4
	s.prf.Stream(buf1[0][:l1], seed, n0)
	s.prf.Stream(buf1[1][:l1], seed, n1)
	s.prf.Stream(buf2[0][:], seed, n2)
	s.prf.Stream(buf2[1][:], seed, n3)
	r0.FromCBD(buf1[0][:l1], eta1)
	r1.FromCBD(buf1[1][:l1], eta1)
	r2.FromCBD(buf2[0][:], eta2)
	r3.FromCBD(buf2[1][:], eta2)
}
