// Package stream multiplexes multiple framewire-encoded records over a
// single io.Writer/io.Reader connection. It adapts the teacher's
// pkg/compactwire data-frame format (magic preamble, reserved length
// field, flags byte, trailing CRC32) to carry a whole envelope-wrapped
// record as its payload instead of an opaque byte slice, so a caller
// streaming several records back-to-back on one socket does not have to
// invent its own delimiter.
//
// This sits outside the envelope's own checksum (see the root package's
// checksum.go): a corrupted frame is caught here, before the envelope
// header is even parsed.
package stream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
)

// magic is the 2-byte frame preamble, matching compactwire's
// writePreamble convention of a short fixed tag ahead of the length
// field.
var magic = [2]byte{'F', 'W'}

const (
	// headerSize is magic(2) + length(4) + flags(1).
	headerSize = 2 + 4 + 1
	trailerSize = 4 // crc32
)

var (
	// ErrBadMagic means the frame preamble did not match, i.e. the
	// stream is desynchronized or not a framewire stream at all.
	ErrBadMagic = errors.New("stream: bad frame magic")
	// ErrCRCMismatch means the frame's trailing CRC32 does not match
	// its contents; the frame was corrupted in transit.
	ErrCRCMismatch = errors.New("stream: crc mismatch")
	// ErrFrameTooLarge guards against a corrupted length field causing
	// an unbounded allocation.
	ErrFrameTooLarge = errors.New("stream: frame exceeds max size")
)

// MaxFrameSize bounds how large a single frame's declared length may be
// before WriteFrame/ReadFrame refuse to honor it.
const MaxFrameSize = 64 << 20 // 64 MiB

// WriteFrame writes one frame containing payload (typically the output
// of EncodeRecord) to w. flags is reserved for future compression or
// encryption selectors, mirroring the envelope's own reserved bits, and
// is never interpreted here.
func WriteFrame(w io.Writer, payload []byte, flags byte) error {
	total := headerSize + len(payload) + trailerSize
	if total > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, total)
	}
	buf := make([]byte, headerSize, total)
	copy(buf[0:2], magic[:])
	binary.LittleEndian.PutUint32(buf[2:6], uint32(total))
	buf[6] = flags
	buf = append(buf, payload...)

	crc := crc32.ChecksumIEEE(buf[2:])
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], crc)
	buf = append(buf, trailer[:]...)

	_, err := w.Write(buf)
	return err
}

// ReadFrame reads one frame from r and returns its payload and flags
// byte.
func ReadFrame(r io.Reader) (payload []byte, flags byte, err error) {
	var hdr [headerSize]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, err
	}
	if hdr[0] != magic[0] || hdr[1] != magic[1] {
		return nil, 0, ErrBadMagic
	}
	total := binary.LittleEndian.Uint32(hdr[2:6])
	if total > MaxFrameSize || int(total) < headerSize+trailerSize {
		return nil, 0, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, total)
	}
	flags = hdr[6]

	rest := make([]byte, int(total)-headerSize)
	if _, err = io.ReadFull(r, rest); err != nil {
		return nil, 0, err
	}
	payload = rest[:len(rest)-trailerSize]
	wantCRC := binary.LittleEndian.Uint32(rest[len(rest)-trailerSize:])

	full := append(append([]byte{}, hdr[2:]...), payload...)
	gotCRC := crc32.ChecksumIEEE(full)
	if gotCRC != wantCRC {
		return nil, 0, ErrCRCMismatch
	}
	return payload, flags, nil
}

// Writer buffers frames written to an underlying io.Writer, flushing on
// demand.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }

func (s *Writer) WriteFrame(payload []byte, flags byte) error {
	return WriteFrame(s.w, payload, flags)
}

func (s *Writer) Flush() error { return s.w.Flush() }

// Reader reads frames one at a time from an underlying io.Reader.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader { return &Reader{r: bufio.NewReader(r)} }

func (s *Reader) ReadFrame() (payload []byte, flags byte, err error) {
	return ReadFrame(s.r)
}
