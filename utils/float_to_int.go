package utils

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float32ToInt32 widens Float32ToInt16's clamp-and-scale convention to the
// 32-bit sample width channel.Sample uses internally.
func Float32ToInt32(x float32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int32(float64(x) * 2147483647.0)
}
