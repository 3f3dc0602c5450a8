package astc

// Color4 is a four-component color endpoint (R, G, B, A). For LDR paths
// components are nominally in [0, 65535] (scaled by 1/257 during
// quantization); for HDR paths components are LNS-encoded values in
// [0, 65535]. Negative components are clamped to zero by every encoder in
// this package.
type Color4 struct {
	R, G, B, A float32
}

func (c Color4) clampNonNegative() Color4 {
	return Color4{
		R: clampF32(c.R, 0, 1<<31),
		G: clampF32(c.G, 0, 1<<31),
		B: clampF32(c.B, 0, 1<<31),
		A: clampF32(c.A, 0, 1<<31),
	}
}
