package astc

var hdrRGBModeBits = [8][4]int{
	{9, 7, 6, 7},
	{9, 8, 6, 6},
	{10, 6, 7, 7},
	{10, 7, 7, 6},
	{11, 8, 6, 5},
	{11, 6, 8, 6},
	{12, 7, 7, 5},
	{12, 6, 7, 6},
}

var hdrRGBModeCutoffs = [8][3]float32{
	{16384, 8192, 8192},
	{32768, 8192, 4096},
	{4096, 8192, 4096},
	{8192, 8192, 2048},
	{8192, 2048, 512},
	{2048, 8192, 1024},
	{2048, 2048, 256},
	{1024, 2048, 512},
}

var hdrRGBModeScales = [8]float32{
	1.0 / 128, 1.0 / 128, 1.0 / 64, 1.0 / 64, 1.0 / 32, 1.0 / 32, 1.0 / 16, 1.0 / 16,
}
var hdrRGBModeRScales = [8]float32{128, 128, 64, 64, 32, 32, 16, 16}

// hdrRGBBit0*/hdrRGBBit1* tables reproduce the irregular per-mode placement of
// the bit0/bit1 cross-channel discriminator bits in quantize_hdr_rgb3(),
// restructured as lookup tables rather than inline switches (spec design
// notes). bit2 and bit3 are resolved by the hdrRGBDBit switch.
var hdrRGBBit0FromB = [8]bool{true, true, false, true, true, false, true, false}
var hdrRGBBit0Shift = [8]int{6, 6, 9, 6, 6, 9, 6, 9}

var hdrRGBBit1FromB = [8]bool{true, true, false, true, true, false, true, false}
var hdrRGBBit1FromC = [8]bool{false, false, true, false, false, false, false, false}
var hdrRGBBit1Shift = [8]int{6, 6, 6, 6, 6, 10, 6, 10}

func quantizeHDRRGB(t *QuantTables, color0, color1 Color4, level quantMethod) [6]uint8 {
	c0 := Color4{
		R: clampF32(color0.R, 0, 65535),
		G: clampF32(color0.G, 0, 65535),
		B: clampF32(color0.B, 0, 65535),
		A: color0.A,
	}
	c1 := Color4{
		R: clampF32(color1.R, 0, 65535),
		G: clampF32(color1.G, 0, 65535),
		B: clampF32(color1.B, 0, 65535),
		A: color1.A,
	}
	c0Bak := c0
	c1Bak := c1

	majcomp := 0
	if c1.R > c1.G && c1.R > c1.B {
		majcomp = 0
	} else if c1.G > c1.B {
		majcomp = 1
	} else {
		majcomp = 2
	}

	switch majcomp {
	case 1:
		c0 = Color4{c0.G, c0.R, c0.B, c0.A}
		c1 = Color4{c1.G, c1.R, c1.B, c1.A}
	case 2:
		c0 = Color4{c0.B, c0.G, c0.R, c0.A}
		c1 = Color4{c1.B, c1.G, c1.R, c1.A}
	}

	aBase := clampF32(c1.R, 0, 65535)
	b0Base := aBase - c1.G
	b1Base := aBase - c1.B
	cBase := aBase - c0.R
	d0Base := aBase - b0Base - cBase - c0.G
	d1Base := aBase - b1Base - cBase - c0.B

	for mode := 7; mode >= 0; mode-- {
		cutoffs := hdrRGBModeCutoffs[mode]
		bCutoff, cCutoff, dCutoff := cutoffs[0], cutoffs[1], cutoffs[2]
		if b0Base > bCutoff || b1Base > bCutoff || cBase > cCutoff ||
			absF32(d0Base) > dCutoff || absF32(d1Base) > dCutoff {
			continue
		}

		bits := hdrRGBModeBits[mode]
		modeScale := hdrRGBModeScales[mode]
		modeRScale := hdrRGBModeRScales[mode]
		bIntCutoff := 1 << bits[1]
		cIntCutoff := 1 << bits[2]
		dIntCutoff := 1 << (bits[3] - 1)

		aIntval := flt2intRTN(aBase * modeScale)
		aLowbits := aIntval & 0xFF
		aQuantval := t.Q[level][aLowbits]
		aUquantval := t.U[level][aQuantval]
		aIntval = (aIntval &^ 0xFF) | int(aUquantval)
		aFval := float32(aIntval) * modeRScale

		cFval := clampF32(aFval-c0.R, 0, 65535)
		cIntval := flt2intRTN(cFval * modeScale)
		if cIntval >= cIntCutoff {
			continue
		}
		cLowbits := (cIntval & 0x3F) | ((mode & 1) << 7) | ((aIntval & 0x100) >> 2)
		cQuantval, cUquantval := quantizeAndUnquantizeRetainTopTwoBits(t, level, uint8(cLowbits))
		cIntval = (cIntval &^ 0x3F) | (int(cUquantval) & 0x3F)
		cFval = float32(cIntval) * modeRScale

		b0Fval := clampF32(aFval-c1.G, 0, 65535)
		b1Fval := clampF32(aFval-c1.B, 0, 65535)
		b0Intval := flt2intRTN(b0Fval * modeScale)
		b1Intval := flt2intRTN(b1Fval * modeScale)
		if b0Intval >= bIntCutoff || b1Intval >= bIntCutoff {
			continue
		}

		b0Lowbits := b0Intval & 0x3F
		b1Lowbits := b1Intval & 0x3F

		var bit0, bit1 int
		if hdrRGBBit0FromB[mode] {
			bit0 = (b0Intval >> hdrRGBBit0Shift[mode]) & 1
		} else {
			bit0 = (aIntval >> hdrRGBBit0Shift[mode]) & 1
		}
		switch {
		case hdrRGBBit1FromB[mode]:
			bit1 = (b1Intval >> hdrRGBBit1Shift[mode]) & 1
		case hdrRGBBit1FromC[mode]:
			bit1 = (cIntval >> hdrRGBBit1Shift[mode]) & 1
		default:
			bit1 = (aIntval >> hdrRGBBit1Shift[mode]) & 1
		}

		b0Lowbits |= bit0<<6 | ((mode>>1)&1)<<7
		b1Lowbits |= bit1<<6 | ((mode>>2)&1)<<7

		b0Quantval, b0Uquantval := quantizeAndUnquantizeRetainTopTwoBits(t, level, uint8(b0Lowbits))
		b1Quantval, b1Uquantval := quantizeAndUnquantizeRetainTopTwoBits(t, level, uint8(b1Lowbits))
		b0Intval = (b0Intval &^ 0x3F) | (int(b0Uquantval) & 0x3F)
		b1Intval = (b1Intval &^ 0x3F) | (int(b1Uquantval) & 0x3F)
		b0Fval = float32(b0Intval) * modeRScale
		b1Fval = float32(b1Intval) * modeRScale

		d0Fval := clampF32(aFval-b0Fval-cFval-c0.G, -65535, 65535)
		d1Fval := clampF32(aFval-b1Fval-cFval-c0.B, -65535, 65535)
		d0Intval := flt2intRTN(d0Fval * modeScale)
		d1Intval := flt2intRTN(d1Fval * modeScale)
		if absInt(d0Intval) >= dIntCutoff || absInt(d1Intval) >= dIntCutoff {
			continue
		}

		d0Lowbits := d0Intval & 0x1F
		d1Lowbits := d1Intval & 0x1F

		bit2 := hdrRGBDBit(mode, 0, aIntval, b0Intval, b1Intval, cIntval, d0Intval, d1Intval)
		bit3 := hdrRGBDBit(mode, 1, aIntval, b0Intval, b1Intval, cIntval, d0Intval, d1Intval)

		var bit4, bit5 int
		if mode == 4 || mode == 6 {
			bit4 = (aIntval >> 9) & 1
			bit5 = (aIntval >> 10) & 1
		} else {
			bit4 = (d0Intval >> 5) & 1
			bit5 = (d1Intval >> 5) & 1
		}

		d0Lowbits |= bit2<<6 | bit4<<5 | (majcomp&1)<<7
		d1Lowbits |= bit3<<6 | bit5<<5 | ((majcomp>>1)&1)<<7

		d0Quantval, _ := quantizeAndUnquantizeRetainTopFourBits(t, level, uint8(d0Lowbits))
		d1Quantval, _ := quantizeAndUnquantizeRetainTopFourBits(t, level, uint8(d1Lowbits))

		return [6]uint8{aQuantval, cQuantval, b0Quantval, b1Quantval, d0Quantval, d1Quantval}
	}

	// Flat fallback: direct per-component quantization with no sub-mode
	// search; the 128 added to both blue values marks this layout for the
	// decoder.
	vals := [6]float32{c0Bak.R, c1Bak.R, c0Bak.G, c1Bak.G, c0Bak.B, c1Bak.B}
	var out [6]uint8
	for i := 0; i < 4; i++ {
		v := clampF32(vals[i], 0, 65020)
		out[i] = t.Q[level][flt2intRTN(v/256)]
	}
	for i := 4; i < 6; i++ {
		v := clampF32(vals[i], 0, 65020)
		idx := flt2intRTN(v/512) + 128
		q, _ := quantizeAndUnquantizeRetainTopTwoBits(t, level, uint8(idx))
		out[i] = q
	}
	return out
}

// hdrRGBDBit resolves the bit2/bit3 discriminator placement for d0/d1 low
// bits, which draws from a, b0, b1, c or d itself depending on mode. which
// selects bit2 (0) or bit3 (1).
func hdrRGBDBit(mode, which int, aIntval, b0Intval, b1Intval, cIntval, d0Intval, d1Intval int) int {
	if which == 0 {
		switch mode {
		case 0, 2:
			return (d0Intval >> 6) & 1
		case 1, 4:
			return (b0Intval >> 7) & 1
		case 3:
			return (aIntval >> 9) & 1
		case 5:
			return (cIntval >> 7) & 1
		default: // 6, 7
			return (aIntval >> 11) & 1
		}
	}
	switch mode {
	case 0, 2:
		return (d1Intval >> 6) & 1
	case 1, 4:
		return (b1Intval >> 7) & 1
	default: // 3, 5, 6, 7
		return (cIntval >> 6) & 1
	}
}

// quantizeHDRRGBLDRAlpha composes quantizeHDRRGB with a directly-quantized LDR
// alpha pair (scaled by /257, unlike the HDR RGB channels). Ported from
// quantize_hdr_rgb_ldr_alpha3() in Source/astcenc_color_quantize.cpp.
//
// Output order: [A, C, B0, B1, D0, D1, Alpha0, Alpha1].
func quantizeHDRRGBLDRAlpha(t *QuantTables, color0, color1 Color4, level quantMethod) [8]uint8 {
	rgb := quantizeHDRRGB(t, color0, color1, level)

	a0 := clampF32(color0.A/257, 0, 255)
	a1 := clampF32(color1.A/257, 0, 255)
	ai0 := t.Q[level][flt2intRTN(a0)]
	ai1 := t.Q[level][flt2intRTN(a1)]

	var out [8]uint8
	copy(out[:6], rgb[:])
	out[6] = ai0
	out[7] = ai1
	return out
}
