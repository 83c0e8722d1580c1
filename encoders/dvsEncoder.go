package encoders

import (
	"fmt"

	"github.com/cznic/mathutil"
)

/*
 DVSEncoder packs and unpacks dynamic vision sensor event keys.
A key is laid out as [col][row][polarity] where row occupies
log2(resolution) bits and polarity is the lowest bit:

	col      = key >> (shift+1)
	row      = (key >> 1) & (1<<shift - 1)
	polarity = key & 1

The column is not masked, keys from a larger sensor decode to
columns past the grid. Resolutions are capped at 1<<15 so a full
key, 2*log2(res)+1 bits, fits in 32 bits.
*/
type DVSEncoder struct {
	Resolution int
	shift      uint
}

func NewDVSEncoder(resolution int) (*DVSEncoder, error) {
	if resolution <= 0 || resolution&(resolution-1) != 0 || resolution > 1<<15 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResolution, resolution)
	}

	e := new(DVSEncoder)
	e.Resolution = resolution
	e.shift = uint(mathutil.Log2Uint32(uint32(resolution)))
	return e, nil
}

//Bits used by the row field
func (e *DVSEncoder) Shift() int {
	return int(e.shift)
}

func (e *DVSEncoder) GetName() string {
	return fmt.Sprintf("[dvs:%v]", e.Resolution)
}

//Splits an event key into row, column and polarity
func (e *DVSEncoder) Decode(key int) (row, col int, polarity Polarity) {
	col = key >> (e.shift + 1)
	row = (key >> 1) & ((1 << e.shift) - 1)
	polarity = Polarity(key & 1)
	return
}

//Inverse of Decode for in-range row and column
func (e *DVSEncoder) Encode(row, col int, polarity Polarity) int {
	return col<<(e.shift+1) | row<<1 | int(polarity&1)
}
