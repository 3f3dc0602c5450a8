package astc

func scaleDown257(c Color4) Color4 {
	return Color4{c.R / 257, c.G / 257, c.B / 257, c.A / 257}
}

// tryQuantizeRGBBlueContract attempts the inverse blue-contraction transform
// R' = 2R-B, G' = 2G-B, B' = B on both endpoints, then quantizes. It fails if
// any transformed component falls outside [0, 255], or if the transformed
// endpoint 1 does not retain a strictly greater component sum than endpoint 0
// after the round trip.
//
// Note: unlike tryQuantizeRGBDelta's ">= 0" sign test, this predicate and its
// RGBA sibling are the only place in this family that test for strict ">"; do
// not "simplify" it to match the delta encoders' tests.
//
// On success the emitted endpoints are swapped (stored endpoint 0 holds input
// endpoint 1's data, and vice versa) so the decoder recognizes blue-contraction
// by the reversed sum-order. Ported from try_quantize_rgb_blue_contract() in
// Source/astcenc_color_quantize.cpp.
func tryQuantizeRGBBlueContract(t *QuantTables, color0, color1 Color4, level quantMethod) (out [6]uint8, ok bool) {
	c0 := scaleDown257(color0)
	c1 := scaleDown257(color1)

	r0 := 2*c0.R - c0.B
	g0 := 2*c0.G - c0.B
	b0 := c0.B
	r1 := 2*c1.R - c1.B
	g1 := 2*c1.G - c1.B
	b1 := c1.B

	for _, v := range [...]float32{r0, g0, b0, r1, g1, b1} {
		if v < 0 || v > 255 {
			return out, false
		}
	}

	ri0 := cqtLookup(t, level, flt2intRTN(r0))
	gi0 := cqtLookup(t, level, flt2intRTN(g0))
	bi0 := cqtLookup(t, level, flt2intRTN(b0))
	ri1 := cqtLookup(t, level, flt2intRTN(r1))
	gi1 := cqtLookup(t, level, flt2intRTN(g1))
	bi1 := cqtLookup(t, level, flt2intRTN(b1))

	sum0 := int(t.U[level][ri0]) + int(t.U[level][gi0]) + int(t.U[level][bi0])
	sum1 := int(t.U[level][ri1]) + int(t.U[level][gi1]) + int(t.U[level][bi1])
	if sum1 <= sum0 {
		return out, false
	}

	out = [6]uint8{ri1, ri0, gi1, gi0, bi1, bi0}
	return out, true
}

// tryQuantizeRGBABlueContract is tryQuantizeRGBBlueContract plus a direct
// alpha pair, stored swapped to match the RGB swap (output[6] holds endpoint
// 1's alpha, output[7] holds endpoint 0's, the reverse of quantizeRGBA's
// direct A0/A1 order). Ported from try_quantize_rgba_blue_contract() in
// Source/astcenc_color_quantize.cpp.
func tryQuantizeRGBABlueContract(t *QuantTables, color0, color1 Color4, level quantMethod) (out [8]uint8, ok bool) {
	rgb, ok := tryQuantizeRGBBlueContract(t, color0, color1, level)
	if !ok {
		return out, false
	}

	a0 := flt2intRTN(clampF32(color0.A/257, 0, 255))
	a1 := flt2intRTN(clampF32(color1.A/257, 0, 255))

	copy(out[:6], rgb[:])
	out[6] = cqtLookup(t, level, a1)
	out[7] = cqtLookup(t, level, a0)
	return out, true
}
