package astc

// quantizeHDRRGBA composes quantizeHDRRGB with quantizeHDRAlpha on the alpha
// channel of both endpoints. Ported from quantize_hdr_rgb_alpha3() in
// Source/astcenc_color_quantize.cpp.
//
// Output order: [A, C, B0, B1, D0, D1, Alpha0, Alpha1].
func quantizeHDRRGBA(t *QuantTables, color0, color1 Color4, level quantMethod) [8]uint8 {
	rgb := quantizeHDRRGB(t, color0, color1, level)
	alpha := quantizeHDRAlpha(t, color0.A, color1.A, level)

	var out [8]uint8
	copy(out[:6], rgb[:])
	out[6] = alpha[0]
	out[7] = alpha[1]
	return out
}
