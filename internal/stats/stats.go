// Package stats reshapes mastery columns into the series the charts draw.
package stats

import "sort"

// LevelCounts returns the distinct levels in ascending order together with
// how often each occurs.
func LevelCounts(levels []int) ([]int, []int) {
	counts := map[int]int{}
	for _, l := range levels {
		counts[l]++
	}

	distinct := make([]int, 0, len(counts))
	for l := range counts {
		distinct = append(distinct, l)
	}
	sort.Ints(distinct)

	out := make([]int, len(distinct))
	for i, l := range distinct {
		out[i] = counts[l]
	}
	return distinct, out
}

// ImpliedZeroLevel is the number of champions that never show up in a
// player's table. It is never negative.
func ImpliedZeroLevel(counts []int, total int) int {
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum >= total {
		return 0
	}
	return total - sum
}

// WithZeroLevel prepends a level 0 bucket holding the champions missing from
// the table. Tables never list level 0 themselves, so a 0 already present in
// levels is merged into the bucket.
func WithZeroLevel(levels, counts []int, total int) ([]int, []int) {
	zero := ImpliedZeroLevel(counts, total)
	outLevels := []int{0}
	outCounts := []int{zero}
	for i, l := range levels {
		if l == 0 {
			outCounts[0] += counts[i]
			continue
		}
		outLevels = append(outLevels, l)
		outCounts = append(outCounts, counts[i])
	}
	return outLevels, outCounts
}

// PadAscending reverses a points column, which the page lists in descending
// order, and left pads it with zeros up to total. A column longer than total
// is only reversed.
func PadAscending(points []int, total int) []int {
	n := total
	if len(points) > n {
		n = len(points)
	}
	out := make([]int, n)
	for i, p := range points {
		out[n-1-i] = p
	}
	return out
}

// TopN returns the last n entries of an ascending series.
func TopN(series []int, n int) []int {
	if n <= 0 {
		return []int{}
	}
	if n >= len(series) {
		return append([]int{}, series...)
	}
	return append([]int{}, series[len(series)-n:]...)
}

// NormalizedRanks spreads n positions evenly over [0, 1].
func NormalizedRanks(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

func Floats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
