package astc

// maxPerturbIterations caps the quantizeRGB perturbation loop. The offsets
// move by 0.2 per iteration, so after about 1275 iterations endpoint 0 has
// been pushed down to 0 and endpoint 1 up to 255 by the [0, 255] clamp and the
// ordering holds; the cap sits just above that, as defense in depth, and is
// not reached for any table with U[Q[0]] <= U[Q[255]].
const maxPerturbIterations = 1280

// quantizeRGB quantizes an RGB endpoint pair, guaranteeing that the
// dequantized component sum of endpoint 0 is <= that of endpoint 1. This
// encoder cannot fail: it is the unconditional fallback for the RGB format
// family. Ported from quantize_rgb() in Source/astcenc_color_quantize.cpp.
//
// Output order: [R0q, R1q, G0q, G1q, B0q, B1q].
func quantizeRGB(t *QuantTables, color0, color1 Color4, level quantMethod) [6]uint8 {
	c0 := Color4{clampF32(color0.R/257, 0, 255), clampF32(color0.G/257, 0, 255), clampF32(color0.B/257, 0, 255), 0}
	c1 := Color4{clampF32(color1.R/257, 0, 255), clampF32(color1.G/257, 0, 255), clampF32(color1.B/257, 0, 255), 0}

	rgb0Addon := float32(0.5)
	rgb1Addon := float32(0.5)

	var out [6]uint8
	for i := 0; i < maxPerturbIterations; i++ {
		ri0 := flt2intRD(clampF32(c0.R+rgb0Addon, 0, 255))
		gi0 := flt2intRD(clampF32(c0.G+rgb0Addon, 0, 255))
		bi0 := flt2intRD(clampF32(c0.B+rgb0Addon, 0, 255))
		ri1 := flt2intRD(clampF32(c1.R+rgb1Addon, 0, 255))
		gi1 := flt2intRD(clampF32(c1.G+rgb1Addon, 0, 255))
		bi1 := flt2intRD(clampF32(c1.B+rgb1Addon, 0, 255))

		ri0q := cqtLookup(t, level, ri0)
		gi0q := cqtLookup(t, level, gi0)
		bi0q := cqtLookup(t, level, bi0)
		ri1q := cqtLookup(t, level, ri1)
		gi1q := cqtLookup(t, level, gi1)
		bi1q := cqtLookup(t, level, bi1)

		sum0 := int(t.U[level][ri0q]) + int(t.U[level][gi0q]) + int(t.U[level][bi0q])
		sum1 := int(t.U[level][ri1q]) + int(t.U[level][gi1q]) + int(t.U[level][bi1q])

		out = [6]uint8{ri0q, ri1q, gi0q, gi1q, bi0q, bi1q}
		if sum0 <= sum1 {
			return out
		}

		rgb0Addon -= 0.2
		rgb1Addon += 0.2
	}
	return out
}

// quantizeRGBA quantizes an RGBA endpoint pair. Alpha is quantized directly
// (round-to-nearest, no ordering constraint); RGB follows quantizeRGB.
// Ported from quantize_rgba() in Source/astcenc_color_quantize.cpp.
//
// Output order: [R0q, R1q, G0q, G1q, B0q, B1q, A0q, A1q].
func quantizeRGBA(t *QuantTables, color0, color1 Color4, level quantMethod) [8]uint8 {
	a0 := flt2intRTN(clampF32(color0.A/257, 0, 255))
	a1 := flt2intRTN(clampF32(color1.A/257, 0, 255))

	rgb := quantizeRGB(t, color0, color1, level)

	var out [8]uint8
	copy(out[:6], rgb[:])
	out[6] = cqtLookup(t, level, a0)
	out[7] = cqtLookup(t, level, a1)
	return out
}
