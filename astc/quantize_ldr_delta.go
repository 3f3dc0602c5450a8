package astc

// deltaEncodeChannel implements the single-channel 9-bit-base/7-bit-delta
// procedure shared by every delta trial encoder (spec §4.4, steps 1-5 and 7).
// v0, v1 are pre-scaled channel values in [0, 255]. It returns the quantized
// index of the base channel, the quantized index of the packed delta byte,
// the sign-extended delta recovered after the round trip, and whether every
// bit-preservation and range check passed.
func deltaEncodeChannel(t *QuantTables, level quantMethod, v0, v1 float32) (baseIdx, deltaIdx uint8, signedDelta int, ok bool) {
	b0 := clampInt(flt2intRTN(v0), 0, 255)
	b1 := clampInt(flt2intRTN(v1), 0, 255)

	shifted0 := b0 << 1
	topBit := shifted0 & 0x100
	low8 := shifted0 & 0xFF

	baseIdx = cqtLookup(t, level, low8)
	bref := int(t.U[level][baseIdx]) | topBit

	shifted1 := b1 << 1
	rawDelta := shifted1 - bref
	if rawDelta < -64 || rawDelta > 63 {
		return 0, 0, 0, false
	}

	topBitFlag := (topBit >> 8) & 1
	packedByte := uint8((rawDelta & 0x7F) | (topBitFlag << 7))

	deltaIdx = cqtLookup(t, level, int(packedByte))
	u2 := t.U[level][deltaIdx]
	if (u2 & 0xC0) != (packedByte & 0xC0) {
		return 0, 0, 0, false
	}

	low7 := int(u2) & 0x7F
	signedDelta = low7
	if low7&0x40 != 0 {
		signedDelta = low7 - 0x80
	}

	total := bref + signedDelta
	if total < 0 || total > 0x1FF {
		return 0, 0, 0, false
	}

	return baseIdx, deltaIdx, signedDelta, true
}

// tryQuantizeRGBDelta encodes endpoint 0 as a 9-bit base and endpoint 1 as a
// signed delta, per channel. Succeeds only if the summed signed delta is
// non-negative, which is how a decoder distinguishes plain delta from
// blue-contracted delta. Ported from try_quantize_rgb_delta() in
// Source/astcenc_color_quantize.cpp.
//
// Output order: [R0base, R1delta, G0base, G1delta, B0base, B1delta].
func tryQuantizeRGBDelta(t *QuantTables, color0, color1 Color4, level quantMethod) (out [6]uint8, ok bool) {
	c0 := scaleDown257(color0)
	c1 := scaleDown257(color1)

	rBase, rDelta, dR, ok1 := deltaEncodeChannel(t, level, c0.R, c1.R)
	gBase, gDelta, dG, ok2 := deltaEncodeChannel(t, level, c0.G, c1.G)
	bBase, bDelta, dB, ok3 := deltaEncodeChannel(t, level, c0.B, c1.B)
	if !ok1 || !ok2 || !ok3 {
		return out, false
	}
	if dR+dG+dB < 0 {
		return out, false
	}

	out = [6]uint8{rBase, rDelta, gBase, gDelta, bBase, bDelta}
	return out, true
}

// tryQuantizeRGBDeltaBlueContract is tryQuantizeRGBDelta over the
// blue-contracted, role-swapped endpoints. Unlike the plain-delta sign test,
// this variant requires the summed signed delta be strictly negative; the
// two inequalities are intentionally opposite (spec design notes), not a typo.
// Ported from try_quantize_rgb_delta_blue_contract() in
// Source/astcenc_color_quantize.cpp.
func tryQuantizeRGBDeltaBlueContract(t *QuantTables, color0, color1 Color4, level quantMethod) (out [6]uint8, ok bool) {
	c0 := scaleDown257(color0)
	c1 := scaleDown257(color1)

	r0, g0, b0 := 2*c0.R-c0.B, 2*c0.G-c0.B, c0.B
	r1, g1, b1 := 2*c1.R-c1.B, 2*c1.G-c1.B, c1.B
	for _, v := range [...]float32{r0, g0, b0, r1, g1, b1} {
		if v < 0 || v > 255 {
			return out, false
		}
	}

	rBase, rDelta, dR, ok1 := deltaEncodeChannel(t, level, r1, r0)
	gBase, gDelta, dG, ok2 := deltaEncodeChannel(t, level, g1, g0)
	bBase, bDelta, dB, ok3 := deltaEncodeChannel(t, level, b1, b0)
	if !ok1 || !ok2 || !ok3 {
		return out, false
	}
	if dR+dG+dB >= 0 {
		return out, false
	}

	out = [6]uint8{rBase, rDelta, gBase, gDelta, bBase, bDelta}
	return out, true
}

// tryQuantizeAlphaDelta applies deltaEncodeChannel to the alpha channel of
// color0 (base) and color1 (delta target). Ported from
// try_quantize_alpha_delta() in Source/astcenc_color_quantize.cpp.
func tryQuantizeAlphaDelta(t *QuantTables, color0, color1 Color4, level quantMethod) (baseIdx, deltaIdx uint8, ok bool) {
	baseIdx, deltaIdx, _, ok = deltaEncodeChannel(t, level, color0.A/257, color1.A/257)
	return baseIdx, deltaIdx, ok
}

// tryQuantizeLuminanceAlphaDelta applies deltaEncodeChannel independently to
// luminance (average of R, G, B) and alpha. Ported from
// try_quantize_luminance_alpha_delta() in Source/astcenc_color_quantize.cpp.
//
// Output order: [L0base, L1delta, A0base, A1delta].
func tryQuantizeLuminanceAlphaDelta(t *QuantTables, color0, color1 Color4, level quantMethod) (out [4]uint8, ok bool) {
	lum0 := (color0.R + color0.G + color0.B) / 3 / 257
	lum1 := (color1.R + color1.G + color1.B) / 3 / 257

	lBase, lDelta, _, ok1 := deltaEncodeChannel(t, level, lum0, lum1)
	aBase, aDelta, _, ok2 := deltaEncodeChannel(t, level, color0.A/257, color1.A/257)
	if !ok1 || !ok2 {
		return out, false
	}

	out = [4]uint8{lBase, lDelta, aBase, aDelta}
	return out, true
}

// tryQuantizeRGBADelta composes tryQuantizeAlphaDelta with tryQuantizeRGBDelta;
// both must succeed. Ported from try_quantize_rgba_delta() in
// Source/astcenc_color_quantize.cpp.
func tryQuantizeRGBADelta(t *QuantTables, color0, color1 Color4, level quantMethod) (out [8]uint8, ok bool) {
	a0, a1, ok1 := tryQuantizeAlphaDelta(t, color0, color1, level)
	rgb, ok2 := tryQuantizeRGBDelta(t, color0, color1, level)
	if !ok1 || !ok2 {
		return out, false
	}

	copy(out[:6], rgb[:])
	out[6] = a0
	out[7] = a1
	return out, true
}

// tryQuantizeRGBADeltaBlueContract composes an alpha delta call with
// color0/color1 swapped (matching the RGB blue-contract role swap) with
// tryQuantizeRGBDeltaBlueContract. Ported from
// try_quantize_rgba_delta_blue_contract() in Source/astcenc_color_quantize.cpp.
func tryQuantizeRGBADeltaBlueContract(t *QuantTables, color0, color1 Color4, level quantMethod) (out [8]uint8, ok bool) {
	aBase, aDelta, ok1 := tryQuantizeAlphaDelta(t, color1, color0, level)
	rgb, ok2 := tryQuantizeRGBDeltaBlueContract(t, color0, color1, level)
	if !ok1 || !ok2 {
		return out, false
	}

	copy(out[:6], rgb[:])
	out[6] = aBase
	out[7] = aDelta
	return out, true
}
