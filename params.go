package mlkem

import (
	"fmt"

	"github.com/pqlattice/mlkem/ring"
)

// ParameterSet bundles the parameters distinguishing the three ML-KEM
// security levels. The ring arithmetic is identical across sets; only the
// module rank K, the noise parameter eta1 and the compression widths
// dU and dV vary.
type ParameterSet struct {
	// Name is the FIPS 203 name of the parameter set.
	Name string
	// K is the rank of the module over the base ring.
	K int
	// Eta1 is the noise parameter for secrets and, in encryption, the
	// first error vector.
	Eta1 int
	// Eta2 is the noise parameter for the remaining error terms. It is 2
	// for all parameter sets.
	Eta2 int
	// DU and DV are the compression bit-widths of the two ciphertext
	// components.
	DU, DV int
}

// The three parameter sets of FIPS 203.
var (
	MLKEM512  = ParameterSet{Name: "ML-KEM-512", K: 2, Eta1: 3, Eta2: 2, DU: 10, DV: 4}
	MLKEM768  = ParameterSet{Name: "ML-KEM-768", K: 3, Eta1: 2, Eta2: 2, DU: 10, DV: 4}
	MLKEM1024 = ParameterSet{Name: "ML-KEM-1024", K: 4, Eta1: 2, Eta2: 2, DU: 11, DV: 5}
)

// ParamsForK returns the parameter set of rank k.
func ParamsForK(k int) (ParameterSet, error) {
	switch k {
	case 2:
		return MLKEM512, nil
	case 3:
		return MLKEM768, nil
	case 4:
		return MLKEM1024, nil
	default:
		return ParameterSet{}, fmt.Errorf("mlkem: no parameter set with k = %d", k)
	}
}

// PolyCompressedBytesDU returns the size in bytes of one polynomial
// compressed at width DU.
func (p ParameterSet) PolyCompressedBytesDU() int {
	return p.DU * ring.N / 8
}

// PolyCompressedBytesDV returns the size in bytes of one polynomial
// compressed at width DV.
func (p ParameterSet) PolyCompressedBytesDV() int {
	return p.DV * ring.N / 8
}

// PolyVecBytes returns the size in bytes of a serialized module element.
func (p ParameterSet) PolyVecBytes() int {
	return p.K * ring.PolyBytes
}

// PublicKeyBytes returns the size in bytes of an encapsulation key.
func (p ParameterSet) PublicKeyBytes() int {
	return p.PolyVecBytes() + ring.SeedBytes
}

// SecretKeyBytes returns the size in bytes of a decapsulation key, which
// stores the IND-CPA secret, the public key, H(pk) and the implicit
// rejection seed.
func (p ParameterSet) SecretKeyBytes() int {
	return p.PolyVecBytes() + p.PublicKeyBytes() + 2*ring.SeedBytes
}

// CiphertextBytes returns the size in bytes of a ciphertext.
func (p ParameterSet) CiphertextBytes() int {
	return p.K*p.PolyCompressedBytesDU() + p.PolyCompressedBytesDV()
}
