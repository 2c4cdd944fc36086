package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMsgVector(t *testing.T) {
	msg := make([]byte, MsgBytes)
	msg[0] = 0xFF

	var p Poly
	p.FromMsg(msg)

	for i := 0; i < 8; i++ {
		require.Equal(t, int16(HalfQ), p.Coeffs[i], "coefficient %d", i)
	}
	for i := 8; i < N; i++ {
		require.Zero(t, p.Coeffs[i], "coefficient %d", i)
	}
}

func TestToMsgFromMsgRoundTrip(t *testing.T) {
	for i := 0; i < 10; i++ {
		rng := newTestRNG(fmt.Sprintf("message round trip %d", i))
		msg := make([]byte, MsgBytes)
		rng.read(msg)

		var p Poly
		p.FromMsg(msg)

		out := make([]byte, MsgBytes)
		p.ToMsg(out)
		require.Equal(t, msg, out)
	}
}

func TestFromMsgToMsgOnBitPoly(t *testing.T) {
	// A polynomial with coefficients in {0, HalfQ} survives the
	// encode-decode cycle unchanged.
	rng := newTestRNG("bit poly round trip")
	var p Poly
	for i := 0; i < N; i++ {
		if rng.byte()&1 == 1 {
			p.Coeffs[i] = HalfQ
		}
	}

	msg := make([]byte, MsgBytes)
	p.ToMsg(msg)

	var q Poly
	q.FromMsg(msg)
	require.True(t, p.Equal(&q))
}

func TestCtSelInt16(t *testing.T) {
	require.Equal(t, int16(HalfQ), ctSelInt16(HalfQ, 0, 1))
	require.Equal(t, int16(0), ctSelInt16(HalfQ, 0, 0))
	require.Equal(t, int16(-7), ctSelInt16(-7, 13, 0x8000))
	require.Equal(t, int16(13), ctSelInt16(-7, 13, 0))
}
