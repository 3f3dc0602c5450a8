package astc

// EndpointFormat is one of the 16 ASTC color endpoint storage formats. Values
// are specified by ASTC and must not be reordered.
type EndpointFormat uint8

const (
	FormatLuminance              EndpointFormat = fmtLuminance
	FormatLuminanceDelta         EndpointFormat = fmtLuminanceDelta
	FormatHDRLuminanceLargeRange EndpointFormat = fmtHDRLuminanceLargeRange
	FormatHDRLuminanceSmallRange EndpointFormat = fmtHDRLuminanceSmallRange
	FormatLuminanceAlpha         EndpointFormat = fmtLuminanceAlpha
	FormatLuminanceAlphaDelta    EndpointFormat = fmtLuminanceAlphaDelta
	FormatRGBScale               EndpointFormat = fmtRGBScale
	FormatHDRRGBScale            EndpointFormat = fmtHDRRGBScale
	FormatRGB                    EndpointFormat = fmtRGB
	FormatRGBDelta               EndpointFormat = fmtRGBDelta
	FormatRGBScaleAlpha          EndpointFormat = fmtRGBScaleAlpha
	FormatHDRRGB                 EndpointFormat = fmtHDRRGB
	FormatRGBA                   EndpointFormat = fmtRGBA
	FormatRGBADelta              EndpointFormat = fmtRGBADelta
	FormatHDRRGBLDRAlpha         EndpointFormat = fmtHDRRGBLDRAlpha
	FormatHDRRGBA                EndpointFormat = fmtHDRRGBA
)

func (f EndpointFormat) String() string {
	names := [...]string{
		"Luminance", "LuminanceDelta", "HDRLuminanceLargeRange", "HDRLuminanceSmallRange",
		"LuminanceAlpha", "LuminanceAlphaDelta", "RGBScale", "HDRRGBScale",
		"RGB", "RGBDelta", "RGBScaleAlpha", "HDRRGB",
		"RGBA", "RGBADelta", "HDRRGBLDRAlpha", "HDRRGBA",
	}
	if int(f) < len(names) {
		return names[f]
	}
	return "Unknown"
}

// QuantLevel is an ASTC integer-sequence quantization mode index in [0, 20],
// where 0 is the coarsest (2 levels) and 20 is the finest (256 levels).
type QuantLevel = quantMethod

// PackColorEndpoints quantizes a pair of float4 color endpoints into an
// output index vector using one of the ASTC endpoint formats. The caller
// requests a format; this dispatches through the format's fallible trial
// encoders (blue-contraction, delta) before falling back to its unconditional
// direct encoder, and returns the format that was actually emitted into
// output, which may differ from the one requested. Ported from
// pack_color_endpoints() in Source/astcenc_color_quantize.cpp.
//
// rgbsColor and rgboColor carry the caller-computed RGB-scale and
// RGB-offset hints used by the FMT_RGB_SCALE/FMT_RGB_SCALE_ALPHA and
// FMT_HDR_RGB_SCALE formats respectively; they are ignored for formats that
// don't use them.
//
// checkQuantLevel panics with a *Error if level is not in [0, 20], and a
// requested format this function does not accept (the four delta formats,
// which it only returns) panics with an ErrBadFormat *Error; these are the
// only user-visible failure modes.
func PackColorEndpoints(t *QuantTables, color0, color1, rgbsColor, rgboColor Color4, format EndpointFormat, level QuantLevel) (output []uint8, chosen EndpointFormat) {
	checkQuantLevel(level)

	color0 = color0.clampNonNegative()
	color1 = color1.clampNonNegative()

	switch format {
	case FormatRGB:
		if level <= quant160 {
			if out, ok := tryQuantizeRGBDeltaBlueContract(t, color0, color1, level); ok {
				return out[:], FormatRGBDelta
			}
			if out, ok := tryQuantizeRGBDelta(t, color0, color1, level); ok {
				return out[:], FormatRGBDelta
			}
		}
		if out, ok := tryQuantizeRGBBlueContract(t, color0, color1, level); ok {
			return out[:], FormatRGB
		}
		out := quantizeRGB(t, color0, color1, level)
		return out[:], FormatRGB

	case FormatRGBA:
		if level <= quant160 {
			if out, ok := tryQuantizeRGBADeltaBlueContract(t, color0, color1, level); ok {
				return out[:], FormatRGBADelta
			}
			if out, ok := tryQuantizeRGBADelta(t, color0, color1, level); ok {
				return out[:], FormatRGBADelta
			}
		}
		if out, ok := tryQuantizeRGBABlueContract(t, color0, color1, level); ok {
			return out[:], FormatRGBA
		}
		out := quantizeRGBA(t, color0, color1, level)
		return out[:], FormatRGBA

	case FormatRGBScale:
		out := quantizeRGBScale(t, rgbsColor, level)
		return out[:], FormatRGBScale

	case FormatHDRRGBScale:
		out := quantizeHDRRGBScale(t, rgboColor, level)
		return out[:], FormatHDRRGBScale

	case FormatHDRRGB:
		out := quantizeHDRRGB(t, color0, color1, level)
		return out[:], FormatHDRRGB

	case FormatRGBScaleAlpha:
		out := quantizeRGBScaleAlpha(t, rgbsColor, color0.A, color1.A, level)
		return out[:], FormatRGBScaleAlpha

	case FormatHDRLuminanceLargeRange, FormatHDRLuminanceSmallRange:
		if out, ok := tryQuantizeHDRLuminanceSmallRange(t, color0, color1, level); ok {
			return out[:], FormatHDRLuminanceSmallRange
		}
		out := quantizeHDRLuminanceLargeRange(t, color0, color1, level)
		return out[:], FormatHDRLuminanceLargeRange

	case FormatLuminance:
		out := quantizeLuminance(t, color0, color1, level)
		return out[:], FormatLuminance

	case FormatLuminanceAlpha:
		if level <= quant160 {
			if out, ok := tryQuantizeLuminanceAlphaDelta(t, color0, color1, level); ok {
				return out[:], FormatLuminanceAlphaDelta
			}
		}
		out := quantizeLuminanceAlpha(t, color0, color1, level)
		return out[:], FormatLuminanceAlpha

	case FormatHDRRGBLDRAlpha:
		out := quantizeHDRRGBLDRAlpha(t, color0, color1, level)
		return out[:], FormatHDRRGBLDRAlpha

	case FormatHDRRGBA:
		out := quantizeHDRRGBA(t, color0, color1, level)
		return out[:], FormatHDRRGBA

	default:
		panic(newError(ErrBadFormat, "unsupported endpoint format"))
	}
}
