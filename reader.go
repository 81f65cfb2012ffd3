package framewire

import "fmt"

// Reader walks a fixed byte slice (or one assembled incrementally via
// AddData) left to right with bounds-checked reads. Like Writer, a Reader
// is not safe for concurrent use.
type Reader struct {
	Buffer
}

// NewReader wraps data as an already-ready Reader. The slice is not
// copied; callers must not mutate it afterwards.
func NewReader(data []byte, endian Endian) (*Reader, error) {
	buf, err := newBuffer(endian)
	if err != nil {
		return nil, err
	}
	buf.data = data
	buf.ready = true
	return &Reader{Buffer: buf}, nil
}

// NewStreamingReader builds a Reader with no data yet; callers must call
// AddData (with final=true on the last chunk) before reading.
func NewStreamingReader(endian Endian) (*Reader, error) {
	buf, err := newBuffer(endian)
	if err != nil {
		return nil, err
	}
	return &Reader{Buffer: buf}, nil
}

// AddData appends more bytes to a streaming Reader. It fails once the
// Reader is already ready (all data has been declared final) or when
// data is nil.
func (r *Reader) AddData(data []byte, final bool) error {
	if data == nil {
		return fmt.Errorf("%w: nil data", ErrNullInput)
	}
	if r.ready {
		return fmt.Errorf("%w: reader already has all its data", ErrAlreadyReady)
	}
	r.data = append(r.data, data...)
	r.ready = final
	return nil
}

// readBytes returns the next n bytes starting at the cursor and advances
// it. It returns ErrBufferUnderflow if fewer than n bytes remain.
func (r *Reader) readBytes(n int) ([]byte, error) {
	if !r.HasDataLeft(n) {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferUnderflow, n, r.UnreadBytes())
	}
	out := r.data[r.cursor : r.cursor+n]
	r.cursor += n
	return out, nil
}

func (r *Reader) readByte() (byte, error) {
	b, err := r.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
