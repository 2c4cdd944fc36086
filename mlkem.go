/*
Package mlkem provides the polynomial arithmetic core of ML-KEM (FIPS 203):
arithmetic in the ring Z_q[X]/(X^256+1) with q = 3329, including the forward
and inverse number-theoretic transforms, base multiplication in the NTT
domain, coefficient compression, byte serialization and centred binomial
noise sampling.

The arithmetic itself lives in the sub-package ring. This package exposes the
three ML-KEM parameter sets as values; the ring routines are parametric only
in the compression width d and the noise parameter eta, so a KEM layer built
on top of this module selects buffer sizes and eta1 through a ParameterSet
and dispatches at its own boundary.
*/
package mlkem
