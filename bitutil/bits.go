/*
Package bitutil provides bit operations on 32-bit words and the string hash
used by the persistent hash trie.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bitutil

import (
	"math/bits"
	"unicode/utf16"
)

const (
	// StageBits is the number of hash bits consumed per trie level.
	StageBits = 5
	// StageMask masks a single stage index out of a hash.
	StageMask = 1<<StageBits - 1
	// MaxStages is the number of full stages a 32-bit hash provides.
	// Only 30 of the 32 bits are consumed.
	MaxStages = 32 / StageBits
)

// IsSet reports whether bit i of x is set.
func IsSet(x uint32, i uint) bool {
	return x&(1<<i) != 0
}

// Set returns x with bit i set.
func Set(x uint32, i uint) uint32 {
	return x | 1<<i
}

// Clear returns x with bit i cleared.
func Clear(x uint32, i uint) uint32 {
	return x &^ (1 << i)
}

// PopCount returns the number of set bits (Hamming weight) of x.
func PopCount(x uint32) int {
	return bits.OnesCount32(x)
}

// Lowest returns the index of the lowest set bit of x, or 32 for x == 0.
func Lowest(x uint32) uint {
	return uint(bits.TrailingZeros32(x))
}

// Rank returns the number of bits set in mask below bit i. For a bitmap
// indexing a compacted array this is the array position of slot i.
func Rank(mask uint32, i uint) int {
	return bits.OnesCount32(mask & (1<<i - 1))
}

// Stage extracts the 5-bit slot index for trie level `level` from hash.
// Level 0 uses the least significant bits.
func Stage(hash uint32, level int) uint {
	return uint(hash>>(uint(level)*StageBits)) & StageMask
}

// Hash computes a deterministic 32-bit hash for s. It is the classic
// polynomial rolling hash with multiplier 31 over UTF-16 code units,
// wrapping around like 32-bit integer arithmetic. Interpreted as an int32 it
// equals Java's String.hashCode.
func Hash(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 { // non-ASCII: fall back to code units
			return hashUnits(h, s[i:])
		}
		h = 31*h + uint32(c)
	}
	return h
}

func hashUnits(h uint32, s string) uint32 {
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + uint32(u)
	}
	return h
}
