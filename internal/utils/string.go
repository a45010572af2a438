package utils

import (
	"strings"
	"sync"
)

// Capital letter processing uses a pool to reduce allocations
var capitalInfoPool = sync.Pool{
	New: func() any {
		return &CapitalInfo{
			positions: make([]int, 0, 4),
			chars:     make([]rune, 0, 4),
		}
	},
}

// CapitalInfo holds the positions of uppercase letters in a typed prefix.
type CapitalInfo struct {
	positions []int
	chars     []rune
	allUpper  bool
}

// Reset resets the CapitalInfo for reuse
func (ci *CapitalInfo) Reset() {
	ci.positions = ci.positions[:0]
	ci.chars = ci.chars[:0]
	ci.allUpper = false
}

// ProcessCapitals returns the lowercase form of s and where its capitals were.
// info is nil when s has no capitals; otherwise it must be handed back with
// ReleaseCapitals once the words are rewritten.
func ProcessCapitals(s string) (lower string, info *CapitalInfo) {
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if info == nil {
				info = capitalInfoPool.Get().(*CapitalInfo)
				info.Reset()
			}
			info.positions = append(info.positions, i)
			info.chars = append(info.chars, r)
		}
	}
	// "CA" shouts the whole word, "Ca" only the typed positions
	if info != nil && len(info.positions) > 1 && len(info.positions) == len(s) {
		info.allUpper = true
	}
	return strings.ToLower(s), info
}

// ApplyCapitals re-applies the capitalization pattern in info to word.
func ApplyCapitals(word string, info *CapitalInfo) string {
	if info == nil {
		return word
	}
	if info.allUpper {
		return strings.ToUpper(word)
	}

	b := []byte(word)
	for i, pos := range info.positions {
		if pos < len(b) && b[pos] >= 'a' && b[pos] <= 'z' {
			b[pos] = byte(info.chars[i])
		}
	}
	return string(b)
}

// ReleaseCapitals returns info to the pool.
func ReleaseCapitals(info *CapitalInfo) {
	if info != nil {
		capitalInfoPool.Put(info)
	}
}
