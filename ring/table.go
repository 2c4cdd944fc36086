package ring

// Twiddle factors of the seven NTT layers, split per layer in the order the
// layer-merged transforms consume them. All values are powers of zeta = 17,
// a primitive 256-th root of unity mod Q, stored in Montgomery form
// (multiplied by 2^16 mod Q) and taken in the symmetric range (-Q/2, Q/2].
//
// With the forward layer-L butterfly at block b using the bitreversed
// exponent of the standard table, layer 1 holds the single entry for the
// 128-distance split, layer 2 the two 64-distance entries, and so on down
// to the 64 entries of layer 7. Layer 5 is split into even and odd
// sub-tables because the merged layer-4/5 pass consumes, per 32-coefficient
// sub-tree, one layer-4 value and the two layer-5 values covering its
// halves.

const (
	zetaL1 = -758

	zetaL2Even = -359
	zetaL2Odd  = -1517

	zetaL3a = 1493
	zetaL3b = 1422
	zetaL3c = 287
	zetaL3d = 202
)

var zetasLayer4 = [8]int16{
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
}

var zetasLayer5Even = [8]int16{
	573, 264, -829, -1602, -681, 732, -1542, -205,
}

var zetasLayer5Odd = [8]int16{
	-1325, 383, 1458, -130, 1017, 608, 411, -1571,
}

var zetasLayer6 = [32]int16{
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
}

// zetasLayer7 also parameterizes the 128 quadratic factors
// Z_q[X]/(X^2 - zeta_i) of the NTT domain: after the forward transform,
// entry i is the twiddle of the factor holding coefficients 4i and 4i+1,
// and its negation that of the factor holding 4i+2 and 4i+3. The mulcache
// computation indexes it directly.
var zetasLayer7 = [64]int16{
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}
