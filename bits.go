package dawg

import (
	"errors"
	"io"
)

// bitWriter packs values most significant bit first. The first write error
// sticks and is reported by flush.
type bitWriter struct {
	w       io.Writer
	cache   uint8
	used    int
	written int64
	err     error
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

func (w *bitWriter) writeBits(data uint64, n int) {
	for n > 0 && w.err == nil {
		chunk := n
		if chunk+w.used > 8 {
			chunk = 8 - w.used
		}

		mask := uint8(uint16(1<<chunk) - 1)
		w.used += chunk
		w.cache = (w.cache << chunk) | byte(data>>(n-chunk))&mask

		if w.used == 8 {
			w.emit(w.cache)
			w.cache = 0
			w.used = 0
		}

		n -= chunk
	}
}

func (w *bitWriter) emit(b byte) {
	_, w.err = w.w.Write([]byte{b})
	w.written++
}

// flush pads the last partial byte with zeros.
func (w *bitWriter) flush() error {
	if w.used > 0 && w.err == nil {
		w.emit(w.cache << (8 - w.used))
		w.cache = 0
		w.used = 0
	}
	return w.err
}

var maskTop = []byte{
	0xff,
	0x7f,
	0x3f,
	0x1f,
	0x0f,
	0x07,
	0x03,
	0x01,
	0x00,
}

// bitReader reads bits from an io.ReaderAt at a position counted in bits.
// A short read sticks in err and makes every later read return zero.
type bitReader struct {
	r   io.ReaderAt
	p   int64
	buf [1]byte
	err error
}

func newBitReader(r io.ReaderAt) *bitReader {
	return &bitReader{r: r}
}

func (r *bitReader) nextByte() byte {
	if r.err != nil {
		return 0
	}
	n, err := r.r.ReadAt(r.buf[:], r.p>>3)
	if n < 1 {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		r.err = err
		return 0
	}
	return r.buf[0]
}

func (r *bitReader) readBits(n int) uint64 {
	off := int(r.p & 7)
	if off+n <= 8 {
		ret := uint64((r.nextByte() & maskTop[off]) >> (8 - off - n))
		r.p += int64(n)
		return ret
	}

	// bits lie incompletely in the current byte
	result := uint64(r.nextByte() & maskTop[off])

	l := 8 - off
	r.p += int64(l)
	n -= l

	for n >= 8 {
		result = (result << 8) | uint64(r.nextByte())
		r.p += 8
		n -= 8
	}

	if n > 0 {
		result = (result << n) | uint64(r.nextByte()>>(8-n))
		r.p += int64(n)
	}

	return result
}

func (r *bitReader) seek(p int64) {
	r.p = p
}

func (r *bitReader) tell() int64 {
	return r.p
}

/*
7code is an unsigned that is written in groups of 7 bits, most significant
group first. Every byte but the last has its top bit set:

result = 0
for {
	data = next 8 bits
	result = result << 7 | data & 0x7f
	if data & 0x80 == 0 break
}
*/

const maxUnsignedLength = 10

func writeUnsigned(w *bitWriter, n uint64) {
	var groups [maxUnsignedLength]byte
	i := len(groups)
	for {
		i--
		groups[i] = byte(n & 0x7f)
		n >>= 7
		if n == 0 {
			break
		}
	}

	for ; i < len(groups)-1; i++ {
		w.writeBits(uint64(groups[i]|0x80), 8)
	}
	w.writeBits(uint64(groups[len(groups)-1]), 8)
}

func readUnsigned(r *bitReader) (uint64, error) {
	var result uint64
	for i := 0; i < maxUnsignedLength; i++ {
		d := r.readBits(8)
		result = (result << 7) | d&0x7f
		if d&0x80 == 0 {
			return result, r.err
		}
	}
	return 0, errors.New("7code longer than 10 bytes")
}

func unsignedLength(n uint64) int {
	length := 1
	for n >>= 7; n != 0; n >>= 7 {
		length++
	}
	return length
}
