package astc

func avgRGB(c Color4) float32 {
	return (c.R + c.G + c.B) / 3
}

// quantizeLuminance averages R+G+B per endpoint, forces lum0 <= lum1 by
// averaging the two if reversed, and quantizes both. Ported from
// quantize_luminance() in Source/astcenc_color_quantize.cpp.
func quantizeLuminance(t *QuantTables, color0, color1 Color4, level quantMethod) [2]uint8 {
	lum0 := avgRGB(color0) / 257
	lum1 := avgRGB(color1) / 257

	if lum0 > lum1 {
		avg := (lum0 + lum1) / 2
		lum0, lum1 = avg, avg
	}

	l0 := cqtLookup(t, level, flt2intRTN(clampF32(lum0, 0, 255)))
	l1 := cqtLookup(t, level, flt2intRTN(clampF32(lum1, 0, 255)))
	return [2]uint8{l0, l1}
}

// quantizeLuminanceAlpha is quantizeLuminance plus a direct alpha pair. Above
// quantization level 18, luminance (or alpha) pairs closer than 3 units apart
// are spread by +-0.5 to exploit otherwise-wasted precision, which matters for
// normal maps encoded as luminance+alpha. Ported from
// quantize_luminance_alpha() in Source/astcenc_color_quantize.cpp.
func quantizeLuminanceAlpha(t *QuantTables, color0, color1 Color4, level quantMethod) [4]uint8 {
	lum0 := clampF32(avgRGB(color0)/257, 0, 255)
	lum1 := clampF32(avgRGB(color1)/257, 0, 255)
	a0 := clampF32(color0.A/257, 0, 255)
	a1 := clampF32(color1.A/257, 0, 255)

	if level > 18 && absF32(lum0-lum1) < 3 {
		if lum0 < lum1 {
			lum0, lum1 = lum0-0.5, lum1+0.5
		} else {
			lum0, lum1 = lum0+0.5, lum1-0.5
		}
		lum0 = clampF32(lum0, 0, 255)
		lum1 = clampF32(lum1, 0, 255)
	}
	if level > 18 && absF32(a0-a1) < 3 {
		if a0 < a1 {
			a0, a1 = a0-0.5, a1+0.5
		} else {
			a0, a1 = a0+0.5, a1-0.5
		}
		a0 = clampF32(a0, 0, 255)
		a1 = clampF32(a1, 0, 255)
	}

	l0 := cqtLookup(t, level, flt2intRTN(clampF32(lum0, 0, 255)))
	l1 := cqtLookup(t, level, flt2intRTN(clampF32(lum1, 0, 255)))
	a0i := cqtLookup(t, level, flt2intRTN(clampF32(a0, 0, 255)))
	a1i := cqtLookup(t, level, flt2intRTN(clampF32(a1, 0, 255)))
	return [4]uint8{l0, l1, a0i, a1i}
}

// quantizeRGBScale quantizes rgbsColor's RGB as a scale base, then derives a
// separate scale byte from the caller-supplied hint packed into rgbsColor.A
// (range [0, 1]) so that re-expanding base*scale/256 approximates the
// original dynamic range despite the base's own quantization error. Ported
// from quantize_rgbs_new() in Source/astcenc_color_quantize.cpp.
//
// Output order: [Rbase, Gbase, Bbase, Scale].
func quantizeRGBScale(t *QuantTables, rgbsColor Color4, level quantMethod) [4]uint8 {
	r := clampF32(rgbsColor.R/257, 0, 255)
	g := clampF32(rgbsColor.G/257, 0, 255)
	b := clampF32(rgbsColor.B/257, 0, 255)
	a := clampF32(rgbsColor.A, 0, 1)

	ri := cqtLookup(t, level, flt2intRTN(r))
	gi := cqtLookup(t, level, flt2intRTN(g))
	bi := cqtLookup(t, level, flt2intRTN(b))

	oldSum := r + g + b
	newSum := float32(t.U[level][ri]) + float32(t.U[level][gi]) + float32(t.U[level][bi])

	scale := clampF32(a*(oldSum+1e-10)/(newSum+1e-10), 0, 1)
	scaleVal := clampInt(flt2intRTN(scale*256), 0, 255)
	si := cqtLookup(t, level, scaleVal)

	return [4]uint8{ri, gi, bi, si}
}

// quantizeRGBScaleAlpha composes quantizeRGBScale with a direct alpha pair.
// Ported from quantize_rgbs_alpha_new() in Source/astcenc_color_quantize.cpp.
//
// Output order: [Rbase, Gbase, Bbase, Scale, A0, A1].
func quantizeRGBScaleAlpha(t *QuantTables, rgbsColor Color4, alpha0, alpha1 float32, level quantMethod) [6]uint8 {
	base := quantizeRGBScale(t, rgbsColor, level)

	a0i := cqtLookup(t, level, flt2intRTN(clampF32(alpha0/257, 0, 255)))
	a1i := cqtLookup(t, level, flt2intRTN(clampF32(alpha1/257, 0, 255)))

	return [6]uint8{base[0], base[1], base[2], base[3], a0i, a1i}
}
