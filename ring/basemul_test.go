package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// nttMul multiplies a and b through the transform pipeline: forward NTT,
// canonical reduction of the first operand (as after deserialization),
// cached base multiplication, inverse NTT, canonical reduction.
func nttMul(a, b *Poly) *Poly {
	ah := a.CopyNew()
	ah.NTT()
	ah.Reduce()

	bh := b.CopyNew()
	bh.NTT()

	var cache MulCache
	cache.Compute(bh)

	r := new(Poly)
	r.BasemulMontgomeryCached(ah, bh, &cache)
	r.InvNTTToMont()
	r.Reduce()
	return r
}

func TestBasemulAgainstSchoolbook(t *testing.T) {
	for i := 0; i < 5; i++ {
		rng := newTestRNG(fmt.Sprintf("basemul schoolbook %d", i))
		a := rng.canonicalPoly()
		b := rng.canonicalPoly()

		want := negacyclicMul(a, b)
		got := nttMul(a, b)

		require.True(t, got.Equal(want), "NTT product disagrees with schoolbook product")
	}
}

func TestBasemulOutputBound(t *testing.T) {
	rng := newTestRNG("basemul bound")
	a := rng.canonicalPoly()
	b := rng.canonicalPoly()

	a.NTT()
	a.Reduce()
	b.NTT()

	var cache MulCache
	cache.Compute(b)

	var r Poly
	r.BasemulMontgomeryCached(a, b, &cache)
	require.True(t, absBound(&r, 2*Q), "base multiplication bound exceeded")
}

func TestMulCacheBound(t *testing.T) {
	rng := newTestRNG("mulcache bound")
	b := rng.canonicalPoly()
	b.NTT()

	var cache MulCache
	cache.Compute(b)
	for i, c := range cache.Coeffs {
		require.Less(t, absInt16(c), int32(Q), "cache entry %d out of range", i)
	}
}

// TestBasemulAccumulate exercises the a*b + c*d flow of the IND-CPA layer:
// two cached base multiplications accumulated with Add before a single
// inverse transform.
func TestBasemulAccumulate(t *testing.T) {
	rng := newTestRNG("basemul accumulate")
	a := rng.canonicalPoly()
	b := rng.canonicalPoly()
	c := rng.canonicalPoly()
	d := rng.canonicalPoly()

	want := negacyclicMul(a, b)
	want.Add(negacyclicMul(c, d))
	want.Reduce()

	mulHat := func(x, y *Poly) *Poly {
		xh := x.CopyNew()
		xh.NTT()
		xh.Reduce()
		yh := y.CopyNew()
		yh.NTT()
		var cache MulCache
		cache.Compute(yh)
		r := new(Poly)
		r.BasemulMontgomeryCached(xh, yh, &cache)
		return r
	}

	got := mulHat(a, b)
	got.Add(mulHat(c, d))
	got.InvNTTToMont()
	got.Reduce()

	require.True(t, got.Equal(want), "accumulated product disagrees with schoolbook reference")
}
