package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroFilled(t *testing.T) {
	b, err := New(4, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, RGB{}, b.GetPixel(x, y))
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, tc := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}} {
		_, err := New(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidDimension, "dims %v", tc)
	}
}

func TestOutOfRangeAccessIsIgnored(t *testing.T) {
	b, err := New(4, 4)
	require.NoError(t, err)
	red := RGB{R: 255}
	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}, {-5, -5}} {
		b.SetPixel(pt[0], pt[1], red)
		assert.Equal(t, RGB{}, b.GetPixel(pt[0], pt[1]), "coords %v", pt)
	}
	// nothing in range was touched
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, RGB{}, b.GetPixel(x, y))
		}
	}
}

func TestFillAndClear(t *testing.T) {
	b, _ := New(3, 3)
	c := RGB{R: 10, G: 20, B: 30}
	b.Fill(c)
	assert.Equal(t, c, b.GetPixel(2, 2))
	b.Clear()
	assert.Equal(t, RGB{}, b.GetPixel(2, 2))
}

func TestCloneIsDeep(t *testing.T) {
	b, _ := New(2, 2)
	b.SetPixel(1, 1, RGB{R: 9})
	cp := b.Clone()
	b.SetPixel(1, 1, RGB{G: 7})
	assert.Equal(t, RGB{R: 9}, cp.GetPixel(1, 1))
	cp.SetPixel(0, 0, RGB{B: 3})
	assert.Equal(t, RGB{}, b.GetPixel(0, 0))
}

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want RGB
	}{
		{"#FF0000", RGB{R: 255}},
		{"00ff00", RGB{G: 255}},
		{"#0000FF", RGB{B: 255}},
		{"#123abc", RGB{R: 0x12, G: 0x3a, B: 0xbc}},
	} {
		got, err := ParseHex(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	for _, bad := range []string{"", "#", "#FF00", "#GG0000", "red", "#FF00000"} {
		_, err := ParseHex(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestScaleTruncates(t *testing.T) {
	c := RGB{R: 255}
	assert.Equal(t, RGB{}, c.Scale(0))
	assert.Equal(t, c, c.Scale(255))
	assert.Equal(t, RGB{R: 127}, c.Scale(128))
}
