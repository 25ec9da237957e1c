// Package lanes provides lane-group box-sum kernels written in pure Go.
//
// Samples are processed in blocks of [BlockSize]. A block is split into two
// halves of eight lanes; each half lives in two uint64 words holding four
// 16-bit lanes (SWAR). The inclusive scan runs in 16-bit lanes, which cannot
// overflow inside a block since 16*255 < 1<<16, and is widened to 32 bits
// only when the running block carry is added. Remainders that do not fill a
// block fall back to a scalar loop.
package lanes

import "encoding/binary"

const (
	// BlockSize is the number of samples consumed per prefix iteration and the
	// number of outputs produced per interior iteration.
	BlockSize = 16

	halfSize = BlockSize / 2

	laneMask = 0x00FF00FF00FF00FF
	pairMask = 0x0000FFFF0000FFFF

	// broadcast multiplier: x*laneOnes copies a 16-bit x into all four lanes.
	laneOnes = 0x0001000100010001
)

// Prefix writes the inclusive running sum of src into dst.
func Prefix(dst []uint32, src []uint8) {
	n := len(src)
	dst = dst[:n]

	var carry uint32

	i := 0
	for ; i+BlockSize <= n; i += BlockSize {
		lo := binary.LittleEndian.Uint64(src[i:])
		hi := binary.LittleEndian.Uint64(src[i+halfSize:])

		// half 0: lanes 0..7
		w0 := scan4(spread4(uint32(lo)))
		w1 := scan4(spread4(uint32(lo >> 32)))
		w1 += broadcast(lane3(w0))

		// half 1: lanes 8..15
		w2 := scan4(spread4(uint32(hi)))
		w3 := scan4(spread4(uint32(hi >> 32)))
		w3 += broadcast(lane3(w2))

		// Seam between the halves.
		seam := broadcast(lane3(w1))
		w2 += seam
		w3 += seam

		out := dst[i : i+BlockSize : i+BlockSize]
		widen4(out[0:4], w0, carry)
		widen4(out[4:8], w1, carry)
		widen4(out[8:12], w2, carry)
		widen4(out[12:16], w3, carry)

		carry += uint32(lane3(w3))
	}

	for ; i < n; i++ {
		carry += uint32(src[i])
		dst[i] = carry
	}
}

// spread4 moves four packed bytes into the low byte of four 16-bit lanes.
func spread4(x uint32) uint64 {
	v := uint64(x)
	v = (v | v<<16) & pairMask
	v = (v | v<<8) & laneMask
	return v
}

// scan4 is a Hillis-Steele inclusive scan across the four 16-bit lanes of w.
func scan4(w uint64) uint64 {
	w += w << 16
	w += w << 32
	return w
}

func lane3(w uint64) uint64 {
	return w >> 48
}

func broadcast(x uint64) uint64 {
	return x * laneOnes
}

// widen4 zero-extends the four 16-bit lanes of w and adds carry.
func widen4(dst []uint32, w uint64, carry uint32) {
	dst = dst[:4]
	dst[0] = uint32(uint16(w)) + carry
	dst[1] = uint32(uint16(w>>16)) + carry
	dst[2] = uint32(uint16(w>>32)) + carry
	dst[3] = uint32(uint16(w>>48)) + carry
}
