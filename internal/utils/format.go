package utils

import (
	"fmt"
	"math"
	"strconv"
)

// CreateRankList creates a slice of ranks based on position.
// The rank starts at 1 for the first item and increments for subsequent items.
// Ranks saturate at math.MaxUint16.
func CreateRankList(count int) []uint16 {
	if count <= 0 {
		return []uint16{}
	}
	ranks := make([]uint16, count)
	for i := range ranks {
		ranks[i] = uint16(min(i+1, math.MaxUint16))
	}
	return ranks
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if n < 1000 {
		return str
	}

	result := make([]byte, 0, len(str)+len(str)/3)
	for i := 0; i < len(str); i++ {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, str[i])
	}
	return string(result)
}

// FormatScore prints a word score compactly; tiny scores switch to
// scientific notation.
func FormatScore(score float64) string {
	if score != 0 && math.Abs(score) < 1e-4 {
		return fmt.Sprintf("%.3e", score)
	}
	return fmt.Sprintf("%.4f", score)
}
