package encoders

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDVSEncoder(t *testing.T) {
	for res, shift := range map[int]int{1: 0, 16: 4, 32: 5, 128: 7, 256: 8} {
		e, err := NewDVSEncoder(res)
		require.NoError(t, err)
		assert.Equal(t, shift, e.Shift())
	}

	_, err := NewDVSEncoder(1 << 15)
	assert.NoError(t, err)

	for _, res := range []int{0, -4, 3, 100, 1 << 16} {
		_, err := NewDVSEncoder(res)
		assert.True(t, errors.Is(err, ErrInvalidResolution), "res %v", res)
	}
}

func TestDecode(t *testing.T) {
	e, err := NewDVSEncoder(16)
	require.NoError(t, err)

	// col 3, row 9, positive: 3<<5 | 9<<1 | 1
	row, col, pol := e.Decode(115)
	assert.Equal(t, 9, row)
	assert.Equal(t, 3, col)
	assert.Equal(t, Positive, pol)

	row, col, pol = e.Decode(0)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.Equal(t, Negative, pol)
}

func TestEncodeRoundTrip(t *testing.T) {
	e, err := NewDVSEncoder(32)
	require.NoError(t, err)

	for row := 0; row < 32; row++ {
		for col := 0; col < 32; col++ {
			for _, pol := range []Polarity{Negative, Positive} {
				r, c, p := e.Decode(e.Encode(row, col, pol))
				assert.Equal(t, row, r)
				assert.Equal(t, col, c)
				assert.Equal(t, pol, p)
			}
		}
	}
}

func TestChannel(t *testing.T) {
	ch, err := ParseChannel("merged")
	assert.NoError(t, err)
	assert.Equal(t, Merged, ch)
	assert.Equal(t, "DOWN", Down.String())
	assert.Equal(t, "Channel(7)", Channel(7).String())

	_, err = ParseChannel("sideways")
	assert.True(t, errors.Is(err, ErrUnknownChannel))

	assert.Equal(t, "+", Positive.String())
	assert.Equal(t, "-", Negative.String())
}
