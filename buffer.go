package framewire

import "fmt"

// Endian selects the wire byte order for a Buffer. It mirrors flag bit 0
// of the envelope Flags octet: 0 is big endian, 1 is little endian.
type Endian uint8

const (
	BigEndian    Endian = 0
	LittleEndian Endian = 1
)

func (e Endian) String() string {
	if e == LittleEndian {
		return "little"
	}
	return "big"
}

func (e Endian) valid() bool {
	return e == BigEndian || e == LittleEndian
}

// The endian-aware scalar encoders (WriteUint16, ReadUint16 and the rest)
// live in scalar.go; Buffer only owns storage, cursor and endianness.

// Buffer is the shared cursor-based byte store underneath Reader and
// Writer. It is never used directly by callers; Reader and Writer embed
// it. Buffer is not safe for concurrent use by multiple goroutines, the
// same way a single reader or writer is never shared across threads in
// the source this was ported from.
type Buffer struct {
	data   []byte
	cursor int
	endian Endian
	ready  bool
}

func newBuffer(endian Endian) (Buffer, error) {
	if !endian.valid() {
		return Buffer{}, fmt.Errorf("%w: %d", ErrInvalidEndian, endian)
	}
	return Buffer{endian: endian}, nil
}

// Endian reports the buffer's declared byte order.
func (b *Buffer) Endian() Endian { return b.endian }

// IsReady reports whether the buffer has received all of its data
// (Reader) or has been finalized (Writer). A Buffer built directly from a
// byte slice is ready immediately.
func (b *Buffer) IsReady() bool { return b.ready }

// Len returns the total number of bytes currently stored.
func (b *Buffer) Len() int { return len(b.data) }

// Cursor returns the current read/write position.
func (b *Buffer) Cursor() int { return b.cursor }

// SetCursor moves the cursor to an absolute position. It fails if pos is
// outside [0, Len()].
func (b *Buffer) SetCursor(pos int) bool {
	if pos < 0 || pos > len(b.data) {
		return false
	}
	b.cursor = pos
	return true
}

// CursorToStart rewinds the cursor to position 0.
func (b *Buffer) CursorToStart() { b.cursor = 0 }

// CursorToEnd moves the cursor to the end of the stored data.
func (b *Buffer) CursorToEnd() { b.cursor = len(b.data) }

// HasDataLeft reports whether at least n unread bytes remain ahead of the
// cursor.
func (b *Buffer) HasDataLeft(n int) bool {
	return n >= 0 && b.cursor+n <= len(b.data)
}

// UnreadBytes returns the number of bytes between the cursor and the end
// of the buffer.
func (b *Buffer) UnreadBytes() int {
	if b.cursor >= len(b.data) {
		return 0
	}
	return len(b.data) - b.cursor
}

// BorrowBytes returns a read-only view of [start, start+length) without
// copying and without moving the cursor. It returns nil if the requested
// span is out of range.
func (b *Buffer) BorrowBytes(start, length int) []byte {
	if start < 0 || length < 0 {
		return nil
	}
	end := start + length
	if end > len(b.data) {
		return nil
	}
	return b.data[start:end]
}

// ReleaseBytes hands off ownership of the underlying storage to the
// caller and leaves the Buffer empty. Used to move a Writer's finished
// payload into a Reader, a file, or a stream frame without copying.
func (b *Buffer) ReleaseBytes() []byte {
	out := b.data
	b.data = nil
	b.cursor = 0
	b.ready = false
	return out
}

// NextBytesEqual reports whether the unread bytes starting at the cursor
// equal pattern, without advancing the cursor.
func (b *Buffer) NextBytesEqual(pattern []byte) bool {
	got := b.BorrowBytes(b.cursor, len(pattern))
	if got == nil {
		return false
	}
	for i, v := range pattern {
		if got[i] != v {
			return false
		}
	}
	return true
}

// AdvanceCursor moves the cursor forward by n bytes if that many remain,
// returning false otherwise.
func (b *Buffer) AdvanceCursor(n int) bool {
	if !b.HasDataLeft(n) {
		return false
	}
	b.cursor += n
	return true
}

// AdvanceCursorIfEqual advances past pattern only if the unread bytes
// match it exactly.
func (b *Buffer) AdvanceCursorIfEqual(pattern []byte) bool {
	if !b.NextBytesEqual(pattern) {
		return false
	}
	b.cursor += len(pattern)
	return true
}

// FindNextBytesAndAdvance scans forward from the cursor for pattern and,
// if found, advances the cursor to just past it. It returns false and
// leaves the cursor untouched if pattern never occurs.
func (b *Buffer) FindNextBytesAndAdvance(pattern []byte) bool {
	if len(pattern) == 0 {
		return true
	}
	for start := b.cursor; start+len(pattern) <= len(b.data); start++ {
		match := true
		for i, v := range pattern {
			if b.data[start+i] != v {
				match = false
				break
			}
		}
		if match {
			b.cursor = start + len(pattern)
			return true
		}
	}
	return false
}
