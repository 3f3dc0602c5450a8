package astc

var hdrRGBOModeBits = [5][3]int{
	{11, 5, 7},
	{11, 6, 5},
	{10, 5, 8},
	{9, 6, 7},
	{8, 7, 6},
}

var hdrRGBOModeCutoffs = [5][2]float32{
	{1024, 4096},
	{2048, 1024},
	{2048, 16384},
	{8192, 16384},
	{32768, 16384},
}

var hdrRGBOModeRScales = [5]float32{32, 32, 64, 128, 256}
var hdrRGBOModeScales = [5]float32{1.0 / 32, 1.0 / 32, 1.0 / 64, 1.0 / 128, 1.0 / 256}

// hdrRGBOBit0..hdrRGBOBit3 encode the irregular per-mode placement of the
// cross-channel mode-discriminator bits, reproducing the 6-case switches in
// quantize_hdr_rgbo3() as small lookup tables (spec design notes: table-driven
// placement over inline branches, to make the structure auditable).
//
// Each entry names which intermediate value (r, g or b) and bit position the
// mode bit is read from.
type hdrRGBOBitSource struct {
	fromR, fromG, fromB bool
	shift               int
}

var hdrRGBOBit0 = [6]hdrRGBOBitSource{
	{fromR: true, shift: 9}, // mode 0
	{fromR: true, shift: 8}, // mode 1
	{fromR: true, shift: 9}, // mode 2
	{fromR: true, shift: 8}, // mode 3
	{fromG: true, shift: 6}, // mode 4
	{fromG: true, shift: 6}, // mode 5 (unused, flat fallback)
}

var hdrRGBOBit1 = [6]hdrRGBOBitSource{
	{fromR: true, shift: 8},
	{fromG: true, shift: 5},
	{fromR: true, shift: 8},
	{fromG: true, shift: 5},
	{fromG: true, shift: 5},
	{},
}

var hdrRGBOBit2 = [6]hdrRGBOBitSource{
	{fromR: true, shift: 7},
	{fromR: true, shift: 7},
	{fromR: true, shift: 7},
	{fromR: true, shift: 7},
	{fromB: true, shift: 6},
	{},
}

var hdrRGBOBit3 = [6]hdrRGBOBitSource{
	{fromR: true, shift: 10},
	{fromB: true, shift: 5},
	{fromR: true, shift: 6},
	{fromB: true, shift: 5},
	{fromB: true, shift: 5},
	{},
}

func (s hdrRGBOBitSource) read(r, g, b int) int {
	switch {
	case s.fromR:
		return (r >> s.shift) & 1
	case s.fromG:
		return (g >> s.shift) & 1
	case s.fromB:
		return (b >> s.shift) & 1
	default:
		return 0
	}
}

// quantizeHDRRGBScale packs an RGB+offset HDR endpoint into one of 5
// sub-modes of decreasing precision, falling back to a flat representation if
// none fit. Ported from quantize_hdr_rgbo3() in
// Source/astcenc_color_quantize.cpp.
//
// Output order: [R, G, B, Scale].
func quantizeHDRRGBScale(t *QuantTables, rgbo Color4, level quantMethod) [4]uint8 {
	c := Color4{
		R: rgbo.R + rgbo.A,
		G: rgbo.G + rgbo.A,
		B: rgbo.B + rgbo.A,
		A: rgbo.A,
	}
	c.R = clampF32(c.R, 0, 65535)
	c.G = clampF32(c.G, 0, 65535)
	c.B = clampF32(c.B, 0, 65535)
	c.A = clampF32(c.A, 0, 65535)

	cBak := c

	majcomp := 0
	if c.R > c.G && c.R > c.B {
		majcomp = 0
	} else if c.G > c.B {
		majcomp = 1
	} else {
		majcomp = 2
	}

	switch majcomp {
	case 1:
		c = Color4{c.G, c.R, c.B, c.A}
	case 2:
		c = Color4{c.B, c.G, c.R, c.A}
	}

	rBase := c.R
	gBase := c.R - c.G
	bBase := c.R - c.B
	sBase := c.A

	for mode := 0; mode < 5; mode++ {
		cutoffs := hdrRGBOModeCutoffs[mode]
		if gBase > cutoffs[0] || bBase > cutoffs[0] || sBase > cutoffs[1] {
			continue
		}

		modeEnc := mode | (majcomp << 2)
		if mode >= 4 {
			modeEnc = majcomp | 0xC
		}

		modeScale := hdrRGBOModeScales[mode]
		modeRScale := hdrRGBOModeRScales[mode]
		gbIntCutoff := 1 << hdrRGBOModeBits[mode][1]
		sIntCutoff := 1 << hdrRGBOModeBits[mode][2]

		rIntval := flt2intRTN(rBase * modeScale)
		rLowbits := rIntval & 0x3F
		rLowbits |= (modeEnc & 3) << 6

		rQuantval, rUquantval := quantizeAndUnquantizeRetainTopTwoBits(t, level, uint8(rLowbits))
		rIntval = (rIntval &^ 0x3F) | (int(rUquantval) & 0x3F)
		rFval := float32(rIntval) * modeRScale

		gFval := clampF32(rFval-c.G, 0, 65535)
		bFval := clampF32(rFval-c.B, 0, 65535)

		gIntval := flt2intRTN(gFval * modeScale)
		bIntval := flt2intRTN(bFval * modeScale)
		if gIntval >= gbIntCutoff || bIntval >= gbIntCutoff {
			continue
		}

		gLowbits := gIntval & 0x1F
		bLowbits := bIntval & 0x1F

		bit0 := hdrRGBOBit0[mode].read(rIntval, gIntval, bIntval)
		bit1 := hdrRGBOBit1[mode].read(rIntval, gIntval, bIntval)
		bit2 := hdrRGBOBit2[mode].read(rIntval, gIntval, bIntval)
		bit3 := hdrRGBOBit3[mode].read(rIntval, gIntval, bIntval)

		gLowbits |= (modeEnc & 0x4) << 5
		bLowbits |= (modeEnc & 0x8) << 4
		gLowbits |= bit0 << 6
		gLowbits |= bit1 << 5
		bLowbits |= bit2 << 6
		bLowbits |= bit3 << 5

		gQuantval, gUquantval := quantizeAndUnquantizeRetainTopFourBits(t, level, uint8(gLowbits))
		bQuantval, bUquantval := quantizeAndUnquantizeRetainTopFourBits(t, level, uint8(bLowbits))

		gIntval = (gIntval &^ 0x1F) | (int(gUquantval) & 0x1F)
		bIntval = (bIntval &^ 0x1F) | (int(bUquantval) & 0x1F)
		gFval = float32(gIntval) * modeRScale
		bFval = float32(bIntval) * modeRScale

		rgbErrorsum := (rFval - c.R) + (rFval - gFval - c.G) + (rFval - bFval - c.B)
		sFval := clampF32(sBase+rgbErrorsum/3, 0, 1e9)

		sIntval := flt2intRTN(sFval * modeScale)
		if sIntval >= sIntCutoff {
			continue
		}

		sLowbits := sIntval & 0x1F

		var bit4, bit5, bit6 int
		if mode == 1 {
			bit6 = (rIntval >> 9) & 1
		} else {
			bit6 = (sIntval >> 5) & 1
		}
		switch mode {
		case 4:
			bit5 = (rIntval >> 7) & 1
		case 1:
			bit5 = (rIntval >> 10) & 1
		default:
			bit5 = (sIntval >> 6) & 1
		}
		if mode == 2 {
			bit4 = (sIntval >> 7) & 1
		} else {
			bit4 = (rIntval >> 6) & 1
		}

		sLowbits |= bit6 << 5
		sLowbits |= bit5 << 6
		sLowbits |= bit4 << 7

		sQuantval, _ := quantizeAndUnquantizeRetainTopFourBits(t, level, uint8(sLowbits))

		return [4]uint8{rQuantval, gQuantval, bQuantval, sQuantval}
	}

	// No mode fit: flat fallback encoding (mode 5).
	vals := [3]float32{cBak.R, cBak.G, cBak.B}
	var ivals [4]int
	var cvals [3]float32
	for i := 0; i < 3; i++ {
		vals[i] = clampF32(vals[i], 0, 65020)
		ivals[i] = flt2intRTN(vals[i] / 512)
		cvals[i] = float32(ivals[i]) * 512
	}

	rgbErrorsum := (cvals[0] - vals[0]) + (cvals[1] - vals[1]) + (cvals[2] - vals[2])
	a3 := clampF32(cBak.A+rgbErrorsum/3, 0, 65020)
	ivals[3] = flt2intRTN(a3 / 512)

	encvals := [4]int{
		(ivals[0] & 0x3F) | 0xC0,
		(ivals[1] & 0x7F) | 0x80,
		(ivals[2] & 0x7F) | 0x80,
		(ivals[3] & 0x7F) | ((ivals[0] & 0x40) << 1),
	}

	var out [4]uint8
	for i := 0; i < 4; i++ {
		q, _ := quantizeAndUnquantizeRetainTopFourBits(t, level, uint8(encvals[i]))
		out[i] = q
	}
	return out
}
