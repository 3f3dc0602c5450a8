package astc

// UnpackForTest exposes unpackColorEndpoints to astc_test for round-trip
// verification of PackColorEndpoints output.
func UnpackForTest(profile Profile, format uint8, input []uint8) (output0, output1 [4]int) {
	_, _, o0, o1 := unpackColorEndpoints(profile, format, input)
	return [4]int(o0), [4]int(o1)
}

// StepsForTest exposes the ISE step count for a quantization level, used by
// astc_test to size round-trip tolerances.
func StepsForTest(level QuantLevel) int {
	return quantLevel(level)
}
