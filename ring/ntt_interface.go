package ring

// NumberTheoreticTransformer is an interface to provide flexibility on what
// implementation computes the transforms of this package. Hand-tuned
// backends may replace the portable one at start-up, and may achieve
// tighter output bounds; each implementation declares the bounds it
// guarantees so downstream bound reasoning can consume its contract rather
// than the worst case.
type NumberTheoreticTransformer interface {
	// Forward computes the forward NTT in place. Inputs are bounded by Q
	// in absolute value; outputs are bounded by ForwardBound.
	Forward(p *Poly)

	// Backward computes the inverse NTT in place, including the MontF
	// normalization. Inputs are arbitrary; outputs are bounded by
	// BackwardBound.
	Backward(p *Poly)

	// ForwardBound returns the absolute coefficient bound guaranteed by
	// Forward. It is at most NTTBound.
	ForwardBound() int16

	// BackwardBound returns the absolute coefficient bound guaranteed by
	// Backward. It is at most InvNTTBound.
	BackwardBound() int16
}

// NumberTheoreticTransformerStandard is the portable layer-merged
// implementation of the transforms.
type NumberTheoreticTransformerStandard struct{}

func (NumberTheoreticTransformerStandard) Forward(p *Poly)  { nttStandard(&p.Coeffs) }
func (NumberTheoreticTransformerStandard) Backward(p *Poly) { invNTTStandard(&p.Coeffs) }

func (NumberTheoreticTransformerStandard) ForwardBound() int16  { return NTTBound }
func (NumberTheoreticTransformerStandard) BackwardBound() int16 { return InvNTTBound }

var transformer NumberTheoreticTransformer = NumberTheoreticTransformerStandard{}

// SetNumberTheoreticTransformer replaces the transformer used by Poly.NTT
// and Poly.InvNTTToMont. It is intended for build-time backend selection
// and must not be called concurrently with transform operations.
func SetNumberTheoreticTransformer(t NumberTheoreticTransformer) {
	transformer = t
}
