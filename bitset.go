package framewire

import "fmt"

// Bitset holds up to 64 bits, stored on the wire as the smallest of
// {1,2,4,8} bytes that fits its declared width -- the same sizing rule
// the original's bitset<N> writeNext/readNext overloads use, and the
// same shape as the teacher's zc.buildHotBitmap, which packs up to 8
// field-presence bits into a single byte ahead of a vtable.
type Bitset struct {
	bits  uint64
	width int
}

// NewBitset creates a Bitset holding width bits, 1 <= width <= 64.
func NewBitset(width int) (*Bitset, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("framewire: bitset width %d out of range [1,64]", width)
	}
	return &Bitset{width: width}, nil
}

func (b *Bitset) Width() int { return b.width }

// Set assigns bit i (0 = least significant).
func (b *Bitset) Set(i int, v bool) {
	if i < 0 || i >= b.width {
		return
	}
	if v {
		b.bits |= 1 << uint(i)
	} else {
		b.bits &^= 1 << uint(i)
	}
}

// Get reads bit i.
func (b *Bitset) Get(i int) bool {
	if i < 0 || i >= b.width {
		return false
	}
	return b.bits&(1<<uint(i)) != 0
}

// storageBytes returns the smallest of {1,2,4,8} that can hold width
// bits.
func storageBytes(width int) int {
	switch {
	case width <= 8:
		return 1
	case width <= 16:
		return 2
	case width <= 32:
		return 4
	default:
		return 8
	}
}

// WriteBitset writes b using the narrowest of {1,2,4,8} storage bytes
// that fits its width.
func (w *Writer) WriteBitset(b *Bitset) error {
	switch storageBytes(b.width) {
	case 1:
		return w.WriteUint8(uint8(b.bits))
	case 2:
		return w.WriteUint16(uint16(b.bits))
	case 4:
		return w.WriteUint32(uint32(b.bits))
	default:
		return w.WriteUint64(b.bits)
	}
}

// ReadBitset reads a bitset of the given width, using the same
// narrowest-storage rule as WriteBitset.
func (r *Reader) ReadBitset(width int) (*Bitset, error) {
	b, err := NewBitset(width)
	if err != nil {
		return nil, err
	}
	switch storageBytes(width) {
	case 1:
		v, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		b.bits = uint64(v)
	case 2:
		v, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		b.bits = uint64(v)
	case 4:
		v, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		b.bits = uint64(v)
	default:
		v, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		b.bits = v
	}
	return b, nil
}
