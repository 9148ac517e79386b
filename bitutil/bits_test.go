package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClearIsSet(t *testing.T) {
	var x uint32
	x = Set(x, 0)
	x = Set(x, 31)
	x = Set(x, 7)
	assert.True(t, IsSet(x, 0))
	assert.True(t, IsSet(x, 7))
	assert.True(t, IsSet(x, 31))
	assert.False(t, IsSet(x, 8))
	assert.Equal(t, 3, PopCount(x))
	x = Clear(x, 7)
	assert.False(t, IsSet(x, 7))
	assert.Equal(t, 2, PopCount(x))
	assert.Equal(t, x, Clear(x, 7), "clearing an unset bit is a no-op")
}

func TestRank(t *testing.T) {
	mask := uint32(0b1011_0010)
	cases := []struct {
		bit  uint
		rank int
	}{
		{0, 0}, {1, 0}, {2, 1}, {4, 1}, {5, 2}, {7, 3}, {8, 4}, {31, 4},
	}
	for _, c := range cases {
		if r := Rank(mask, c.bit); r != c.rank {
			t.Errorf("Rank(%b, %d) = %d, want %d", mask, c.bit, r, c.rank)
		}
	}
	assert.Equal(t, 31, Rank(0xffffffff, 31))
	assert.Equal(t, uint(1), Lowest(mask))
	assert.Equal(t, uint(32), Lowest(0))
}

func TestStage(t *testing.T) {
	h := uint32(0b11_00001_00010_00011_00100_00101_11111)
	want := []uint{31, 5, 4, 3, 2, 1}
	for level, w := range want {
		assert.Equal(t, w, Stage(h, level), "level %d", level)
	}
	assert.Equal(t, 6, MaxStages)
}

func TestHashMatchesJavaHashCode(t *testing.T) {
	cases := []struct {
		s    string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		{"hello", 99162322},
		{"Hello World", -862545276},
		{"Aa", 2112},
		{"BB", 2112},
		{"ä", 228},
	}
	for _, c := range cases {
		if h := int32(Hash(c.s)); h != c.want {
			t.Errorf("Hash(%q) = %d, want %d", c.s, h, c.want)
		}
	}
}

func TestHashSurrogatePairs(t *testing.T) {
	// U+1F600 is encoded as two UTF-16 code units 0xD83D 0xDE00
	want := uint32(0xD83D)*31 + 0xDE00
	assert.Equal(t, want, Hash("\U0001F600"))
	assert.Equal(t, 31*31*uint32('x')+want, Hash("x\U0001F600"))
}
