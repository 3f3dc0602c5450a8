package astc

import "testing"

func TestNewQuantTables_RoundTripIsClose(t *testing.T) {
	tables := NewQuantTables()

	for level := quant2; level <= quant256; level++ {
		steps := quantLevel(level)
		maxErr := 255/steps + 1

		for v := 0; v < 256; v++ {
			q := cqtLookup(tables, level, v)
			u := int(tables.U[level][q])
			if diff := u - v; diff > maxErr || diff < -maxErr {
				t.Fatalf("level %d: cqtLookup(%d) round-trips to %d, error %d exceeds %d", level, v, u, diff, maxErr)
			}
		}
	}
}

func TestCheckQuantLevel_PanicsOutsideRange(t *testing.T) {
	cases := []quantMethod{quantMethod(255), quantMethod(21)}
	for _, level := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("checkQuantLevel(%d): expected panic", level)
				}
			}()
			checkQuantLevel(level)
		}()
	}

	// In-range levels must not panic.
	for level := quant2; level <= quant256; level++ {
		checkQuantLevel(level)
	}
}

func TestQuantizeAndUnquantizeRetainTopTwoBits_PreservesTopBits(t *testing.T) {
	tables := NewQuantTables()
	for level := quant6; level <= quant256; level++ {
		for v := 0; v < 256; v++ {
			q, u := quantizeAndUnquantizeRetainTopTwoBits(tables, level, uint8(v))
			if u&0xC0 != uint8(v)&0xC0 {
				t.Fatalf("level %d, v=%d: top 2 bits not preserved, got %#x want %#x", level, v, u&0xC0, uint8(v)&0xC0)
			}
			if tables.U[level][q] != u {
				t.Fatalf("level %d, v=%d: quantizeAndUnquantizeRetainTopTwoBits returned u=%d inconsistent with U[q]=%d", level, v, u, tables.U[level][q])
			}
		}
	}
}

func TestQuantizeAndUnquantizeRetainTopFourBits_PreservesTopBits(t *testing.T) {
	tables := NewQuantTables()
	for level := quant6; level <= quant256; level++ {
		for v := 0; v < 256; v++ {
			_, u := quantizeAndUnquantizeRetainTopFourBits(tables, level, uint8(v))
			if u&0xF0 != uint8(v)&0xF0 {
				t.Fatalf("level %d, v=%d: top 4 bits not preserved, got %#x want %#x", level, v, u&0xF0, uint8(v)&0xF0)
			}
		}
	}
}

func TestDeltaEncodeChannel_ReconstructsCloseToInput(t *testing.T) {
	tables := NewQuantTables()
	level := quant256

	baseIdx, _, signedDelta, ok := deltaEncodeChannel(tables, level, 100, 110)
	if !ok {
		t.Fatalf("deltaEncodeChannel(100, 110): unexpected failure")
	}

	topBit := (100 << 1) & 0x100
	bref := int(tables.U[level][baseIdx]) | topBit
	total := bref + signedDelta
	got := total >> 1

	if diff := got - 110; diff > 2 || diff < -2 {
		t.Fatalf("deltaEncodeChannel(100, 110): reconstructed %d, want close to 110", got)
	}
}

func TestTryQuantizeRGBDelta_SignTestsAreOpposite(t *testing.T) {
	tables := NewQuantTables()
	level := quant256

	// The blue-contract variant swaps the endpoint roles, so for a pair with
	// endpoint 0 below endpoint 1 both encoders succeed; what differs is the
	// sign of the encoded delta sum: >= 0 for plain delta, strictly negative
	// for blue-contract delta, per the documented asymmetry in
	// quantize_ldr_delta.go.
	color0 := Color4{R: 10, G: 10, B: 10, A: 255}
	color1 := Color4{R: 200, G: 200, B: 200, A: 255}

	outPlain, okPlain := tryQuantizeRGBDelta(tables, color0, color1, level)
	outBlue, okBlue := tryQuantizeRGBDeltaBlueContract(tables, color0, color1, level)

	if !okPlain || !okBlue {
		t.Fatalf("tryQuantizeRGBDelta ok=%v, tryQuantizeRGBDeltaBlueContract ok=%v; want both to succeed for an ordered pair", okPlain, okBlue)
	}
	if sum := encodedDeltaSum(tables, level, outPlain); sum < 0 {
		t.Fatalf("tryQuantizeRGBDelta: encoded delta sum %d, want >= 0", sum)
	}
	if sum := encodedDeltaSum(tables, level, outBlue); sum >= 0 {
		t.Fatalf("tryQuantizeRGBDeltaBlueContract: encoded delta sum %d, want < 0", sum)
	}
}

// encodedDeltaSum sign-extends the low 7 bits of the unquantized R, G and B
// delta bytes of a delta encoder's output and returns their sum.
func encodedDeltaSum(tables *QuantTables, level quantMethod, out [6]uint8) int {
	sum := 0
	for _, i := range [3]int{1, 3, 5} {
		d := int(tables.U[level][out[i]]) & 0x7F
		if d&0x40 != 0 {
			d -= 0x80
		}
		sum += d
	}
	return sum
}

func TestQuantizeRGB_EndpointOrderingInvariant(t *testing.T) {
	tables := NewQuantTables()
	color0 := Color4{R: 200, G: 200, B: 200, A: 255}
	color1 := Color4{R: 10, G: 10, B: 10, A: 255}

	for level := quant2; level <= quant256; level++ {
		out := quantizeRGB(tables, color0, color1, level)
		sum0 := int(tables.U[level][out[0]]) + int(tables.U[level][out[2]]) + int(tables.U[level][out[4]])
		sum1 := int(tables.U[level][out[1]]) + int(tables.U[level][out[3]]) + int(tables.U[level][out[5]])
		if sum0 > sum1 {
			t.Fatalf("level %d: quantizeRGB violated ordering invariant: sum0=%d > sum1=%d", level, sum0, sum1)
		}
	}
}

func TestQuantizeLuminanceAlpha_SpreadIsDirectionDependent(t *testing.T) {
	tables := NewQuantTables()
	level := quant256

	// Two near-identical endpoints in each direction must not collapse to
	// the same index once spread, and the spread direction must track which
	// endpoint started lower.
	lowFirst := quantizeLuminanceAlpha(tables, Color4{R: 100, G: 100, B: 100, A: 100}, Color4{R: 101, G: 101, B: 101, A: 101}, level)
	highFirst := quantizeLuminanceAlpha(tables, Color4{R: 101, G: 101, B: 101, A: 101}, Color4{R: 100, G: 100, B: 100, A: 100}, level)

	if lowFirst[0] >= lowFirst[1] {
		t.Fatalf("quantizeLuminanceAlpha: expected spread to separate near-identical luminance pair with endpoint 0 below endpoint 1, got %v", lowFirst)
	}
	if highFirst[0] <= highFirst[1] {
		t.Fatalf("quantizeLuminanceAlpha: expected spread to separate near-identical luminance pair with endpoint 0 above endpoint 1, got %v", highFirst)
	}
}

func TestQuantizeHDRAlpha_FallbackNeverPanics(t *testing.T) {
	tables := NewQuantTables()
	for level := quant2; level <= quant256; level++ {
		// Values chosen to defeat all 3 delta sub-modes and force the flat
		// fallback path.
		out := quantizeHDRAlpha(tables, 0, 65280, level)
		if out[0] == 0 && out[1] == 0 {
			t.Fatalf("level %d: quantizeHDRAlpha fallback returned all-zero output for a wide-range pair", level)
		}
	}
}
