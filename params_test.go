package mlkem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterSetSizes(t *testing.T) {
	for _, tc := range []struct {
		params               ParameterSet
		du, dv               int
		publicKey, secretKey int
		ciphertext           int
	}{
		{MLKEM512, 320, 128, 800, 1632, 768},
		{MLKEM768, 320, 128, 1184, 2400, 1088},
		{MLKEM1024, 352, 160, 1568, 3168, 1568},
	} {
		t.Run(tc.params.Name, func(t *testing.T) {
			require.Equal(t, tc.du, tc.params.PolyCompressedBytesDU())
			require.Equal(t, tc.dv, tc.params.PolyCompressedBytesDV())
			require.Equal(t, tc.publicKey, tc.params.PublicKeyBytes())
			require.Equal(t, tc.secretKey, tc.params.SecretKeyBytes())
			require.Equal(t, tc.ciphertext, tc.params.CiphertextBytes())
		})
	}
}

func TestParamsForK(t *testing.T) {
	for _, want := range []ParameterSet{MLKEM512, MLKEM768, MLKEM1024} {
		got, err := ParamsForK(want.K)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParamsForK(5)
	require.Error(t, err)
}

func TestEta1(t *testing.T) {
	// Only the rank-2 parameter set uses the wider noise.
	require.Equal(t, 3, MLKEM512.Eta1)
	require.Equal(t, 2, MLKEM768.Eta1)
	require.Equal(t, 2, MLKEM1024.Eta1)
	for _, p := range []ParameterSet{MLKEM512, MLKEM768, MLKEM1024} {
		require.Equal(t, 2, p.Eta2)
	}
}
