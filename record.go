package framewire

import (
	"fmt"
	"time"

	"github.com/rawbytedev/framewire/internal/logging"
)

// Record is the four-method contract every serializable type implements:
// a stable identity (RecordID, RecordVersion) plus a pair of body
// codecs. This replaces the original's abstract Serializable base class
// with a capability interface, per the redesign guidance to map runtime
// polymorphism of records onto Go interfaces instead of virtual
// dispatch.
type Record interface {
	RecordID() uint16
	RecordVersion() uint8
	SerializeBody(w *Writer) error
	DeserializeBody(r *Reader) error
}

// EncodeOptions controls the envelope flags EncodeRecord sets. The zero
// value enables both checksum and timestamp, matching the default flags
// the original always sets when serializing.
type EncodeOptions struct {
	// StrictMode, when true, sets the header's strict bit so that a
	// decoder treats a version mismatch as fatal instead of a warning.
	StrictMode bool
	// DisableChecksum skips computing and verifying the integrity hash.
	DisableChecksum bool
	// DisableTimestamp omits the wall-clock stamp (it is still written
	// as zero, matching NoTimestamp).
	DisableTimestamp bool
	// Logger receives decode-path diagnostics. A nil Logger is treated
	// as logging.NoopLogger.
	Logger logging.Logger
}

func (o EncodeOptions) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NoopLogger{}
	}
	return o.Logger
}

// EncodeRecord performs the two-pass envelope serialize described in
// §4.4: reserve header space, write the body, rewind and write the real
// header (size, flags, timestamp), then back-fill the checksum computed
// over the header tail plus body, restoring the cursor to just past the
// body. This is a direct port of Serializable::serialize in the source,
// generalized from a virtual method to a free function operating on any
// Record.
func EncodeRecord(w *Writer, rec Record, opts EncodeOptions) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrNullInput)
	}
	p0 := w.Cursor()
	pAfterChecksum := p0 + ChecksumFieldSize
	pAfterHeader := p0 + HeaderSize

	if err := w.growIfNeeded(HeaderSize); err != nil {
		return err
	}
	if !w.SetCursor(pAfterHeader) {
		return fmt.Errorf("%w: cannot reserve header space", ErrBufferOverflow)
	}

	if err := rec.SerializeBody(w); err != nil {
		return err
	}
	p1 := w.Cursor()
	bodySize := uint64(p1 - pAfterHeader)

	var flags Flags
	flags.SetEndian(w.Endian())
	flags.SetChecksumEnabled(!opts.DisableChecksum)
	flags.SetTimestampEnabled(!opts.DisableTimestamp)
	flags.SetStrictMode(opts.StrictMode)

	header := Header{
		Checksum: NoChecksum,
		ID:       rec.RecordID(),
		Version:  rec.RecordVersion(),
		Flags:    flags,
		BodySize: bodySize,
	}
	if !opts.DisableTimestamp {
		header.Timestamp = time.Now().UnixMilli()
	}

	if !w.SetCursor(p0) {
		return fmt.Errorf("%w: cannot rewind to header start", ErrBufferOverflow)
	}
	if err := header.marshal(w); err != nil {
		return err
	}

	if !opts.DisableChecksum {
		covered := w.BorrowBytes(pAfterChecksum, p1-pAfterChecksum)
		checksum := calculateChecksum(bodySize, covered)
		if !w.SetCursor(p0) {
			return fmt.Errorf("%w: cannot rewind to checksum field", ErrBufferOverflow)
		}
		if err := w.WriteInt32(checksum); err != nil {
			return err
		}
	}

	if !w.SetCursor(p1) {
		return fmt.Errorf("%w: cannot restore cursor past body", ErrBufferOverflow)
	}
	return nil
}

// DecodeRecord performs the validating envelope deserialize described in
// §4.4: checks endianness, id and version against rec's declared
// identity, checks body_size against the bytes actually consumed by
// DeserializeBody, and finally recomputes and compares the checksum if
// the header's checksum bit is set. It is a direct port of
// Serializable::deserialize, with one deliberate behavior change from
// the source: a version mismatch is only a warning when the header's
// strict bit is clear, and fatal when it is set (spec resolution of an
// open question the source left as warn-always).
func DecodeRecord(r *Reader, rec Record, opts EncodeOptions) error {
	if rec == nil {
		return fmt.Errorf("%w: nil record", ErrNullInput)
	}
	log := opts.logger()

	header, err := unmarshalHeader(r)
	if err != nil {
		logging.Error(log, "failed to read envelope header: "+err.Error())
		return err
	}

	if header.Flags.Endian() != r.Endian() {
		logging.Error(log, fmt.Sprintf("endian mismatch: header=%s reader=%s", header.Flags.Endian(), r.Endian()))
		return fmt.Errorf("%w: header declares %s, reader is %s", ErrInvalidEndian, header.Flags.Endian(), r.Endian())
	}

	if header.ID != rec.RecordID() {
		logging.Error(log, fmt.Sprintf("id mismatch: header=%d record=%d", header.ID, rec.RecordID()))
		return fmt.Errorf("%w: header id %d, record id %d", ErrInvalidID, header.ID, rec.RecordID())
	}

	if header.Version != rec.RecordVersion() {
		msg := fmt.Sprintf("version mismatch: header=%d record=%d", header.Version, rec.RecordVersion())
		if header.Flags.StrictMode() {
			logging.Error(log, msg)
			return fmt.Errorf("%w: header version %d, record version %d", ErrVersionMismatch, header.Version, rec.RecordVersion())
		}
		logging.Warn(log, msg)
	}

	if !r.HasDataLeft(int(header.BodySize)) {
		logging.Error(log, fmt.Sprintf("body_size %d exceeds remaining %d bytes", header.BodySize, r.UnreadBytes()))
		return fmt.Errorf("%w: body_size %d exceeds remaining %d bytes", ErrBufferUnderflow, header.BodySize, r.UnreadBytes())
	}

	pAfterHeader := r.Cursor()
	if err := rec.DeserializeBody(r); err != nil {
		logging.Error(log, "body decode failed: "+err.Error())
		return err
	}
	p1 := r.Cursor()
	readBytes := uint64(p1 - pAfterHeader)

	if readBytes != header.BodySize {
		logging.Error(log, fmt.Sprintf("size mismatch: declared %d, consumed %d", header.BodySize, readBytes))
		return fmt.Errorf("%w: declared body_size %d, consumed %d", ErrSizeMismatch, header.BodySize, readBytes)
	}

	if !header.Flags.ChecksumEnabled() {
		return nil
	}

	pAfterChecksum := pAfterHeader - HeaderSize + ChecksumFieldSize
	covered := r.BorrowBytes(pAfterChecksum, p1-pAfterChecksum)
	checksum := calculateChecksum(header.BodySize, covered)
	if checksum != header.Checksum {
		logging.Error(log, fmt.Sprintf("checksum mismatch: header=%d computed=%d", header.Checksum, checksum))
		return fmt.Errorf("%w: header checksum %d, computed %d", ErrChecksumMismatch, header.Checksum, checksum)
	}
	return nil
}

// PeekHeader reads and returns the 24-octet header at the reader's
// current cursor, advancing past it, without invoking any body decoder.
// This mirrors Serializable::deserializeHeader in the source: a
// dispatcher can inspect id/version before picking which concrete Record
// to decode into, then must itself rewind the reader (SetCursor) before
// calling DecodeRecord, since DecodeRecord expects to read the header
// itself.
func PeekHeader(r *Reader) (Header, error) {
	return unmarshalHeader(r)
}
