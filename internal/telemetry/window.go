package telemetry

import "math"

// Window statistics over the rolling telemetry slices. These are the
// shared building blocks for fatigue detection and recovery scoring.

// Mean returns the arithmetic mean of samples, or 0 for an empty slice.
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum int64
	for _, v := range samples {
		sum += v
	}
	return float64(sum) / float64(len(samples))
}

// Variance returns the population variance of samples, or 0 when fewer
// than two samples exist.
func Variance(samples []int64) float64 {
	if len(samples) < 2 {
		return 0
	}
	mean := Mean(samples)
	var sum float64
	for _, v := range samples {
		d := float64(v) - mean
		sum += d * d
	}
	return sum / float64(len(samples))
}

// CoefficientOfVariation returns stddev/mean for samples, or 0 when the
// mean is zero. High values mean erratic response times.
func CoefficientOfVariation(samples []int64) float64 {
	mean := Mean(samples)
	if mean == 0 {
		return 0
	}
	return math.Sqrt(Variance(samples)) / mean
}

// Accuracy returns the fraction of true values, or 0 for an empty slice.
func Accuracy(flags []bool) float64 {
	if len(flags) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range flags {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(flags))
}

// LastN returns the trailing n samples, or the whole slice when it is
// shorter. The result aliases the input; callers must not mutate it.
func LastN(samples []int64, n int) []int64 {
	if len(samples) <= n {
		return samples
	}
	return samples[len(samples)-n:]
}

// PriorN returns up to n samples immediately preceding the trailing n,
// or nil when no samples precede the trailing window.
func PriorN(samples []int64, n int) []int64 {
	if len(samples) <= n {
		return nil
	}
	start := len(samples) - 2*n
	if start < 0 {
		start = 0
	}
	return samples[start : len(samples)-n]
}

// LastNBools and PriorNBools mirror LastN/PriorN for correctness flags.

func LastNBools(flags []bool, n int) []bool {
	if len(flags) <= n {
		return flags
	}
	return flags[len(flags)-n:]
}

func PriorNBools(flags []bool, n int) []bool {
	if len(flags) <= n {
		return nil
	}
	start := len(flags) - 2*n
	if start < 0 {
		start = 0
	}
	return flags[start : len(flags)-n]
}
