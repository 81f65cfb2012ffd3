package framewire

import (
	"cmp"
	"fmt"

	"github.com/rawbytedev/framewire/internal/wideconv"
	"github.com/rawbytedev/framewire/pkg/container"
)

// WriteString writes s as a SizeWire byte length followed by its raw
// UTF-8 bytes. No validation is performed at this level and no null
// terminator is written, matching the original's writeNext(string):
// length-prefixed, raw bytes, nothing more.
func (w *Writer) WriteString(s string) error {
	if err := w.WriteSize(uint64(len(s))); err != nil {
		return err
	}
	return w.writeBytes([]byte(s))
}

// ReadString reads a SizeWire length then that many raw bytes as a
// string. No UTF-8 validation is performed here; that is only enforced
// by the wide-string bridge, matching the asymmetry in the original
// source where string is a raw byte carrier and wstring is the
// validating boundary.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadSizeAsInt()
	if err != nil {
		return "", err
	}
	b, err := r.readBytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteWideString16 writes s on the wire exactly like WriteString (a
// SizeWire byte length followed by raw UTF-8 bytes): a wide string has no
// distinct wire encoding of its own, matching BinaryDataWriter.hpp's
// wstring overload, which converts to UTF-8 before ever touching the
// buffer. s is validated as representable in UTF-16 (surrogate pairs for
// non-BMP code points) before being written, so an unencodable string is
// rejected here rather than by whatever reads it back.
func (w *Writer) WriteWideString16(s string) error {
	if _, err := wideconv.ToUTF16(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	return w.WriteString(s)
}

// ReadWideString16 reads a SizeWire byte length and that many UTF-8
// bytes, the same wire shape as ReadString, then validates the result is
// representable in UTF-16 -- this is where the inbound UTF-8 rejection
// classes (overlong encodings, UTF-8-encoded surrogates, truncated
// sequences, out-of-range code points) actually get exercised, since the
// wire never carries raw code units.
func (r *Reader) ReadWideString16() (string, error) {
	s, err := r.ReadString()
	if err != nil {
		return "", err
	}
	if _, err := wideconv.ToUTF16(s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	return s, nil
}

// WriteWideString32 writes s on the wire exactly like WriteString; see
// WriteWideString16. s is validated as a sequence of UTF-32 code points
// before being written.
func (w *Writer) WriteWideString32(s string) error {
	if _, err := wideconv.ToUTF32(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	return w.WriteString(s)
}

// ReadWideString32 reads a SizeWire byte length and that many UTF-8
// bytes, then validates the result as a sequence of UTF-32 code points.
// See ReadWideString16.
func (r *Reader) ReadWideString32() (string, error) {
	s, err := r.ReadString()
	if err != nil {
		return "", err
	}
	if _, err := wideconv.ToUTF32(s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUTF8, err)
	}
	return s, nil
}

// WriteOptional writes a present flag and, when v is non-nil, the
// encoded value, mirroring optional<T>'s wire form: bool then T if
// present.
func WriteOptional[T any](w *Writer, v *T, enc func(*Writer, T) error) error {
	if v == nil {
		return w.WriteBool(false)
	}
	if err := w.WriteBool(true); err != nil {
		return err
	}
	return enc(w, *v)
}

// ReadOptional reads a present flag and, if set, decodes and returns a
// pointer to the value; otherwise it returns nil.
func ReadOptional[T any](r *Reader, dec func(*Reader) (T, error)) (*T, error) {
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	v, err := dec(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// WriteVariantIndex writes the SizeWire index of the selected
// alternative out of n. Callers write the chosen alternative's payload
// immediately after, the same way a discriminated union's wire form is
// index-then-payload with no length prefix on the payload itself.
func WriteVariantIndex(w *Writer, index, n uint64) error {
	if index >= n {
		return fmt.Errorf("%w: index %d >= %d alternatives", ErrInvalidVariantIndex, index, n)
	}
	return w.WriteSize(index)
}

// ReadVariantIndex reads the selected alternative's index and validates
// it against n, the number of known alternatives; callers dispatch the
// payload decode themselves (Go has no closed sum type to decode into
// generically).
func ReadVariantIndex(r *Reader, n uint64) (uint64, error) {
	idx, err := r.ReadSize()
	if err != nil {
		return 0, err
	}
	if idx >= n {
		return 0, fmt.Errorf("%w: index %d >= %d alternatives", ErrInvalidVariantIndex, idx, n)
	}
	return idx, nil
}

// WritePair writes a and b in order with no prefix.
func WritePair[A, B any](w *Writer, a A, b B, encA func(*Writer, A) error, encB func(*Writer, B) error) error {
	if err := encA(w, a); err != nil {
		return err
	}
	return encB(w, b)
}

// ReadPair reads a and b in order.
func ReadPair[A, B any](r *Reader, decA func(*Reader) (A, error), decB func(*Reader) (B, error)) (A, B, error) {
	var a A
	var b B
	a, err := decA(r)
	if err != nil {
		return a, b, err
	}
	b, err = decB(r)
	return a, b, err
}

// WriteTuple3 writes three fields in order with no prefix.
func WriteTuple3[A, B, C any](w *Writer, a A, b B, c C, encA func(*Writer, A) error, encB func(*Writer, B) error, encC func(*Writer, C) error) error {
	if err := encA(w, a); err != nil {
		return err
	}
	if err := encB(w, b); err != nil {
		return err
	}
	return encC(w, c)
}

// ReadTuple3 reads three fields in order.
func ReadTuple3[A, B, C any](r *Reader, decA func(*Reader) (A, error), decB func(*Reader) (B, error), decC func(*Reader) (C, error)) (A, B, C, error) {
	var a A
	var b B
	var c C
	a, err := decA(r)
	if err != nil {
		return a, b, c, err
	}
	b, err = decB(r)
	if err != nil {
		return a, b, c, err
	}
	c, err = decC(r)
	return a, b, c, err
}

// WriteTuple4 writes four fields in order with no prefix.
func WriteTuple4[A, B, C, D any](w *Writer, a A, b B, c C, d D, encA func(*Writer, A) error, encB func(*Writer, B) error, encC func(*Writer, C) error, encD func(*Writer, D) error) error {
	if err := encA(w, a); err != nil {
		return err
	}
	if err := encB(w, b); err != nil {
		return err
	}
	if err := encC(w, c); err != nil {
		return err
	}
	return encD(w, d)
}

// ReadTuple4 reads four fields in order.
func ReadTuple4[A, B, C, D any](r *Reader, decA func(*Reader) (A, error), decB func(*Reader) (B, error), decC func(*Reader) (C, error), decD func(*Reader) (D, error)) (A, B, C, D, error) {
	var a A
	var b B
	var c C
	var d D
	a, err := decA(r)
	if err != nil {
		return a, b, c, d, err
	}
	b, err = decB(r)
	if err != nil {
		return a, b, c, d, err
	}
	c, err = decC(r)
	if err != nil {
		return a, b, c, d, err
	}
	d, err = decD(r)
	return a, b, c, d, err
}

// WriteFixedArray writes exactly len(arr) encodings with no count
// prefix, matching array<T,N>'s wire form.
func WriteFixedArray[T any](w *Writer, arr []T, enc func(*Writer, T) error) error {
	for _, v := range arr {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadFixedArray reads exactly n encodings with no count prefix; n must
// be known out of band (the fixed array's size), matching array<T,N>.
func ReadFixedArray[T any](r *Reader, n int, dec func(*Reader) (T, error)) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteVector writes a SizeWire count followed by each element in order,
// matching vector<T>/list<T>/deque<T>'s wire form.
func WriteVector[T any](w *Writer, items []T, enc func(*Writer, T) error) error {
	if err := w.WriteSize(uint64(len(items))); err != nil {
		return err
	}
	for _, v := range items {
		if err := enc(w, v); err != nil {
			return err
		}
	}
	return nil
}

// capCount validates a wire-declared element/pair count against the
// bytes actually left to read before any caller preallocates against it.
// Every element consumes at least one byte, so a count larger than the
// remaining bytes can never be satisfied and is rejected here instead of
// driving an unbounded make() off a corrupt or truncated length prefix.
func capCount(r *Reader, n int) error {
	if n < 0 || n > r.UnreadBytes() {
		return fmt.Errorf("%w: declared count %d exceeds %d remaining bytes", ErrBufferUnderflow, n, r.UnreadBytes())
	}
	return nil
}

// ReadVector reads a SizeWire count then that many elements. The count
// is capped against the reader's remaining bytes before any allocation,
// so a corrupt length prefix fails instead of crashing.
func ReadVector[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := r.ReadSizeAsInt()
	if err != nil {
		return nil, err
	}
	if err := capCount(r, n); err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := dec(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// WriteList writes l the same way as a vector.
func WriteList[T any](w *Writer, l *container.List[T], enc func(*Writer, T) error) error {
	return WriteVector(w, l.Items(), enc)
}

// ReadList reads a list the same way as a vector.
func ReadList[T any](r *Reader, dec func(*Reader) (T, error)) (*container.List[T], error) {
	items, err := ReadVector(r, dec)
	if err != nil {
		return nil, err
	}
	return container.ListFromSlice(items), nil
}

// WriteDeque writes d the same way as a vector.
func WriteDeque[T any](w *Writer, d *container.Deque[T], enc func(*Writer, T) error) error {
	return WriteVector(w, d.Items(), enc)
}

// ReadDeque reads a deque the same way as a vector.
func ReadDeque[T any](r *Reader, dec func(*Reader) (T, error)) (*container.Deque[T], error) {
	items, err := ReadVector(r, dec)
	if err != nil {
		return nil, err
	}
	return container.DequeFromSlice(items), nil
}

// WriteSet writes s as a SizeWire count followed by each element;
// duplicate elements cannot occur since Set de-duplicates on insert.
func WriteSet[T comparable](w *Writer, s *container.Set[T], enc func(*Writer, T) error) error {
	return WriteVector(w, s.Items(), enc)
}

// ReadSet reads a SizeWire count then that many elements into a Set,
// tolerating duplicate wire elements by construction.
func ReadSet[T comparable](r *Reader, dec func(*Reader) (T, error)) (*container.Set[T], error) {
	items, err := ReadVector(r, dec)
	if err != nil {
		return nil, err
	}
	s := container.NewSet[T]()
	for _, v := range items {
		s.Add(v)
	}
	return s, nil
}

// WriteOrderedSet writes s in ascending element order.
func WriteOrderedSet[T cmp.Ordered](w *Writer, s *container.OrderedSet[T], enc func(*Writer, T) error) error {
	return WriteVector(w, s.Items(), enc)
}

// ReadOrderedSet reads a SizeWire count then that many elements into an
// OrderedSet.
func ReadOrderedSet[T cmp.Ordered](r *Reader, dec func(*Reader) (T, error)) (*container.OrderedSet[T], error) {
	items, err := ReadVector(r, dec)
	if err != nil {
		return nil, err
	}
	s := container.NewOrderedSet[T]()
	for _, v := range items {
		s.Add(v)
	}
	return s, nil
}

// WriteMap writes m as a SizeWire count followed by alternating key,
// value pairs.
func WriteMap[K comparable, V any](w *Writer, m *container.Map[K, V], encK func(*Writer, K) error, encV func(*Writer, V) error) error {
	entries := m.Entries()
	if err := w.WriteSize(uint64(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := encK(w, e.Key); err != nil {
			return err
		}
		if err := encV(w, e.Val); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap reads a SizeWire count then that many key/value pairs,
// first-write-wins on a duplicate key.
func ReadMap[K comparable, V any](r *Reader, decK func(*Reader) (K, error), decV func(*Reader) (V, error)) (*container.Map[K, V], error) {
	n, err := r.ReadSizeAsInt()
	if err != nil {
		return nil, err
	}
	if err := capCount(r, n); err != nil {
		return nil, err
	}
	m := container.NewMap[K, V]()
	for i := 0; i < n; i++ {
		k, err := decK(r)
		if err != nil {
			return nil, err
		}
		v, err := decV(r)
		if err != nil {
			return nil, err
		}
		if _, exists := m.Get(k); !exists {
			m.Set(k, v)
		}
	}
	return m, nil
}

// WriteOrderedMap writes m as a SizeWire count followed by alternating
// key, value pairs in ascending key order.
func WriteOrderedMap[K cmp.Ordered, V any](w *Writer, m *container.OrderedMap[K, V], encK func(*Writer, K) error, encV func(*Writer, V) error) error {
	entries := m.Entries()
	if err := w.WriteSize(uint64(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		if err := encK(w, e.Key); err != nil {
			return err
		}
		if err := encV(w, e.Val); err != nil {
			return err
		}
	}
	return nil
}

// ReadOrderedMap reads a SizeWire count then that many key/value pairs,
// first-write-wins on a duplicate key.
func ReadOrderedMap[K cmp.Ordered, V any](r *Reader, decK func(*Reader) (K, error), decV func(*Reader) (V, error)) (*container.OrderedMap[K, V], error) {
	n, err := r.ReadSizeAsInt()
	if err != nil {
		return nil, err
	}
	if err := capCount(r, n); err != nil {
		return nil, err
	}
	m := container.NewOrderedMap[K, V]()
	for i := 0; i < n; i++ {
		k, err := decK(r)
		if err != nil {
			return nil, err
		}
		v, err := decV(r)
		if err != nil {
			return nil, err
		}
		if _, exists := m.Get(k); !exists {
			m.Set(k, v)
		}
	}
	return m, nil
}
